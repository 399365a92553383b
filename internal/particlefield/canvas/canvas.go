//go:build js && wasm

// Package canvas drives a particle field on an HTML canvas from WebAssembly.
package canvas

import (
	"math"
	"syscall/js"

	"github.com/amlsafe/landing/internal/particlefield"
)

// Surface draws onto a CanvasRenderingContext2D.
type Surface struct {
	ctx           js.Value
	width, height float64
}

// NewSurface wraps a 2D rendering context.
func NewSurface(ctx js.Value, width, height float64) *Surface {
	return &Surface{ctx: ctx, width: width, height: height}
}

// Clear erases the whole canvas.
func (s *Surface) Clear() {
	s.ctx.Call("clearRect", 0, 0, s.width, s.height)
}

// FillCircle fills an arc of the given radius.
func (s *Surface) FillCircle(x, y, radius float64, tone particlefield.Tone) {
	s.ctx.Call("beginPath")
	s.ctx.Call("arc", x, y, radius, 0, 2*math.Pi)
	s.ctx.Set("fillStyle", tone.CSS())
	s.ctx.Call("fill")
}

// StrokeLine strokes a single segment.
func (s *Surface) StrokeLine(x1, y1, x2, y2, width float64, tone particlefield.Tone) {
	s.ctx.Call("beginPath")
	s.ctx.Set("strokeStyle", tone.CSS())
	s.ctx.Set("lineWidth", width)
	s.ctx.Call("moveTo", x1, y1)
	s.ctx.Call("lineTo", x2, y2)
	s.ctx.Call("stroke")
}

func (s *Surface) resize(width, height float64) {
	s.width, s.height = width, height
}
