//go:build js && wasm

package main

import (
	"context"
	"strconv"
	"syscall/js"
	"time"

	"github.com/amlsafe/landing/internal/countup"
	"github.com/amlsafe/landing/internal/reveal"
	"golang.org/x/text/language"
)

// startReveal fades [data-reveal] elements in once through an
// IntersectionObserver and starts the count-up of any statistic inside a
// revealed element. Without IntersectionObserver everything is shown at once.
func startReveal(ctx context.Context, document js.Value) func() {
	elements := queryAll(document, "[data-reveal]")
	if len(elements) == 0 {
		return func() {}
	}
	observerCtor := js.Global().Get("IntersectionObserver")
	if observerCtor.IsUndefined() {
		for _, el := range elements {
			show(ctx, el)
		}
		return func() {}
	}

	threshold := reveal.DefaultThreshold
	if raw := elements[0].Get("dataset").Get("revealThreshold"); !raw.IsUndefined() {
		if v, err := strconv.ParseFloat(raw.String(), 64); err == nil {
			threshold = v
		}
	}
	tracker := reveal.NewTracker(threshold)
	for i, el := range elements {
		el.Get("dataset").Set("revealId", strconv.Itoa(i))
	}

	var observer js.Value
	onIntersect := js.FuncOf(func(_ js.Value, args []js.Value) any {
		entries := args[0]
		for i := 0; i < entries.Length(); i++ {
			entry := entries.Index(i)
			target := entry.Get("target")
			id := target.Get("dataset").Get("revealId").String()
			if tracker.Observe(id, entry.Get("intersectionRatio").Float()) {
				observer.Call("unobserve", target)
				show(ctx, target)
			}
		}
		return nil
	})
	options := js.Global().Get("Object").New()
	options.Set("threshold", threshold)
	observer = observerCtor.New(onIntersect, options)

	document.Get("documentElement").Get("classList").Call("add", "js-reveal")
	for _, el := range elements {
		observer.Call("observe", el)
	}

	return func() {
		observer.Call("disconnect")
		onIntersect.Release()
	}
}

func show(ctx context.Context, el js.Value) {
	el.Get("classList").Call("add", "revealed")
	targets := queryAll(el, "[data-countup]")
	if !el.Get("dataset").Get("countup").IsUndefined() {
		targets = append(targets, el)
	}
	for _, target := range targets {
		animateCount(ctx, target)
	}
}

// animateCount counts target from zero to its data-countup value, one step
// per animation frame.
func animateCount(ctx context.Context, target js.Value) {
	end := intData(target, "countup", 0)
	duration := time.Duration(intData(target, "countupMs", int(countup.DefaultDuration.Milliseconds()))) * time.Millisecond
	tag := language.Make(target.Get("dataset").Get("locale").String())

	window := js.Global().Get("window")
	start := window.Get("performance").Call("now").Float()
	var frame js.Func
	frame = js.FuncOf(func(_ js.Value, args []js.Value) any {
		now := args[0].Float()
		elapsed := time.Duration((now - start) * float64(time.Millisecond))
		v := countup.Value(end, elapsed, duration)
		target.Set("textContent", countup.Format(tag, v))
		if v == end || ctx.Err() != nil {
			frame.Release()
			return nil
		}
		window.Call("requestAnimationFrame", frame)
		return nil
	})
	target.Set("textContent", countup.Format(tag, 0))
	window.Call("requestAnimationFrame", frame)
}
