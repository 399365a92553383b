//go:build js && wasm

// Package main is the browser client of the landing page. It animates the
// particle canvas, rotates testimonials, fades sections in and counts the
// statistics up. The server-rendered page is complete without it.
package main

import (
	"context"
	"log"
	"syscall/js"
	"time"

	"github.com/amlsafe/landing/internal/particlefield"
	"github.com/amlsafe/landing/internal/particlefield/canvas"
)

const canvasID = "particle-field"

func main() {
	log.SetFlags(0)
	log.SetPrefix("[WASM] ")

	ctx, cancel := context.WithCancel(context.Background())
	document := js.Global().Get("document")

	el := document.Call("getElementById", canvasID)
	animator, ok := canvas.Mount(el, particlefield.WithSeed(uint64(time.Now().UnixNano())))
	if ok {
		// The live field replaces the server-rendered poster.
		el.Get("style").Set("backgroundImage", "none")
		log.Printf("particle canvas mounted particles=%d", animator.Field().Len())
	} else {
		log.Printf("particle canvas unavailable")
	}

	stopCarousel := startCarousel(ctx, document)
	stopReveal := startReveal(ctx, document)

	onHide := js.FuncOf(func(js.Value, []js.Value) any {
		cancel()
		return nil
	})
	js.Global().Get("window").Call("addEventListener", "pagehide", onHide)

	<-ctx.Done()
	animator.Stop()
	stopCarousel()
	stopReveal()
	js.Global().Get("window").Call("removeEventListener", "pagehide", onHide)
	onHide.Release()
}

// queryAll returns the elements matching selector under root.
func queryAll(root js.Value, selector string) []js.Value {
	list := root.Call("querySelectorAll", selector)
	out := make([]js.Value, 0, list.Length())
	for i := 0; i < list.Length(); i++ {
		out = append(out, list.Index(i))
	}
	return out
}

// intData reads an integer data attribute, returning fallback when absent.
func intData(el js.Value, name string, fallback int) int {
	v := el.Get("dataset").Get(name)
	if v.IsUndefined() {
		return fallback
	}
	n := js.Global().Call("parseInt", v, 10)
	if js.Global().Get("Number").Call("isNaN", n).Bool() {
		return fallback
	}
	return n.Int()
}
