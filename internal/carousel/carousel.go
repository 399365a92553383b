// Package carousel cycles the active testimonial on a fixed interval, with
// manual selection overriding the index until the next tick.
package carousel

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// DefaultInterval is how often the active testimonial advances.
const DefaultInterval = 5 * time.Second

// Rotation tracks the active index among count items.
type Rotation struct {
	mu     sync.Mutex
	count  int
	active int
}

// New creates a rotation over count items starting at index 0.
func New(count int) (*Rotation, error) {
	if count <= 0 {
		return nil, fmt.Errorf("carousel needs at least one item, got %d", count)
	}
	return &Rotation{count: count}, nil
}

// Len returns the number of items.
func (r *Rotation) Len() int { return r.count }

// Active returns the active index.
func (r *Rotation) Active() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active
}

// Advance moves to the next item, wrapping around, and returns it.
func (r *Rotation) Advance() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.active = (r.active + 1) % r.count
	return r.active
}

// Select makes index i active immediately.
func (r *Rotation) Select(i int) error {
	if i < 0 || i >= r.count {
		return fmt.Errorf("carousel index %d out of range [0, %d)", i, r.count)
	}
	r.mu.Lock()
	r.active = i
	r.mu.Unlock()
	return nil
}

// Run advances the rotation on every tick until ctx is done, calling
// onChange with the new index.
func (r *Rotation) Run(ctx context.Context, ticks <-chan time.Time, onChange func(int)) {
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-ticks:
			if !ok {
				return
			}
			next := r.Advance()
			if onChange != nil {
				onChange(next)
			}
		}
	}
}

// RunEvery drives the rotation with a ticker firing every interval.
func (r *Rotation) RunEvery(ctx context.Context, interval time.Duration, onChange func(int)) {
	if interval <= 0 {
		interval = DefaultInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	r.Run(ctx, ticker.C, onChange)
}
