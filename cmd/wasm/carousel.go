//go:build js && wasm

package main

import (
	"context"
	"log"
	"syscall/js"
	"time"

	"github.com/amlsafe/landing/internal/carousel"
)

// startCarousel rotates the testimonials of the first [data-carousel] and
// wires its indicator buttons. The returned func releases the callbacks.
func startCarousel(ctx context.Context, document js.Value) func() {
	root := document.Call("querySelector", "[data-carousel]")
	if root.IsNull() {
		return func() {}
	}
	figures := queryAll(root, "[data-testimonial]")
	buttons := queryAll(root, "[data-testimonial-select]")
	rotation, err := carousel.New(len(figures))
	if err != nil {
		log.Printf("carousel disabled err=%v", err)
		return func() {}
	}

	show := func(active int) {
		for i, fig := range figures {
			fig.Get("classList").Call("toggle", "active", i == active)
			if i == active {
				fig.Call("removeAttribute", "aria-hidden")
			} else {
				fig.Call("setAttribute", "aria-hidden", "true")
			}
		}
		for i, btn := range buttons {
			btn.Get("classList").Call("toggle", "active", i == active)
			if i == active {
				btn.Call("setAttribute", "aria-current", "true")
			} else {
				btn.Call("removeAttribute", "aria-current")
			}
		}
	}

	callbacks := make([]js.Func, 0, len(buttons))
	for _, btn := range buttons {
		index := intData(btn, "testimonialSelect", -1)
		onClick := js.FuncOf(func(js.Value, []js.Value) any {
			if err := rotation.Select(index); err != nil {
				log.Printf("select testimonial index=%d err=%v", index, err)
				return nil
			}
			show(index)
			return nil
		})
		btn.Call("addEventListener", "click", onClick)
		callbacks = append(callbacks, onClick)
	}

	interval := time.Duration(intData(root, "intervalMs", int(carousel.DefaultInterval.Milliseconds()))) * time.Millisecond
	go rotation.RunEvery(ctx, interval, show)

	return func() {
		for i, btn := range buttons {
			btn.Call("removeEventListener", "click", callbacks[i])
			callbacks[i].Release()
		}
	}
}
