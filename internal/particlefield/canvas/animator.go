//go:build js && wasm

package canvas

import (
	"syscall/js"

	"github.com/amlsafe/landing/internal/particlefield"
)

// Animator owns one mounted particle field and its frame loop.
type Animator struct {
	window  js.Value
	canvas  js.Value
	field   *particlefield.Field
	surface *Surface

	frame    js.Func
	onResize js.Func
	frameID  js.Value
	stopped  bool
}

// Mount sizes canvas to the viewport, generates the particles and starts the
// frame loop. It returns false, doing nothing, when the canvas or its 2D
// context is unavailable.
func Mount(canvas js.Value, opts ...particlefield.Option) (*Animator, bool) {
	if canvas.IsUndefined() || canvas.IsNull() {
		return nil, false
	}
	ctx := canvas.Call("getContext", "2d")
	if ctx.IsUndefined() || ctx.IsNull() {
		return nil, false
	}
	window := js.Global().Get("window")
	width, height := viewport(window)
	canvas.Set("width", width)
	canvas.Set("height", height)

	a := &Animator{
		window:  window,
		canvas:  canvas,
		field:   particlefield.New(width, height, opts...),
		surface: NewSurface(ctx, width, height),
	}
	a.frame = js.FuncOf(func(js.Value, []js.Value) any {
		if a.stopped {
			return nil
		}
		a.frameID = a.window.Call("requestAnimationFrame", a.frame)
		a.field.Frame(a.surface)
		return nil
	})
	a.onResize = js.FuncOf(func(js.Value, []js.Value) any {
		a.resize()
		return nil
	})
	window.Call("addEventListener", "resize", a.onResize)
	a.frameID = window.Call("requestAnimationFrame", a.frame)
	return a, true
}

// Field exposes the mounted field.
func (a *Animator) Field() *particlefield.Field { return a.field }

// Stop cancels the pending frame, removes the resize listener and releases
// the callbacks. It is safe to call more than once.
func (a *Animator) Stop() {
	if a == nil || a.stopped {
		return
	}
	a.stopped = true
	if !a.frameID.IsUndefined() {
		a.window.Call("cancelAnimationFrame", a.frameID)
	}
	a.window.Call("removeEventListener", "resize", a.onResize)
	a.frame.Release()
	a.onResize.Release()
}

func (a *Animator) resize() {
	width, height := viewport(a.window)
	a.canvas.Set("width", width)
	a.canvas.Set("height", height)
	a.surface.resize(width, height)
	a.field.Resize(width, height)
}

func viewport(window js.Value) (float64, float64) {
	return window.Get("innerWidth").Float(), window.Get("innerHeight").Float()
}
