// Package reveal tracks page sections that fade in once they scroll into
// view and then stay visible.
package reveal

import "sync"

// DefaultThreshold is the visible fraction that reveals an element.
const DefaultThreshold = 0.1

// Tracker remembers which elements have been revealed.
type Tracker struct {
	threshold float64
	mu        sync.Mutex
	visible   map[string]bool
}

// NewTracker returns a tracker with the given threshold; non-positive values
// use DefaultThreshold.
func NewTracker(threshold float64) *Tracker {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultThreshold
	}
	return &Tracker{threshold: threshold, visible: make(map[string]bool)}
}

// Observe records an intersection ratio for id and reports whether this
// observation revealed it.
func (t *Tracker) Observe(id string, ratio float64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.visible[id] || ratio < t.threshold {
		return false
	}
	t.visible[id] = true
	return true
}

// Visible reports whether id has been revealed.
func (t *Tracker) Visible(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.visible[id]
}
