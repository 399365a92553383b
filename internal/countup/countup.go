// Package countup animates the landing statistics from zero to their value.
package countup

import (
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultDuration is how long a counter takes to reach its end value.
const DefaultDuration = 2500 * time.Millisecond

// Value returns the counter value after elapsed time, easing out
// exponentially towards end.
func Value(end int, elapsed, duration time.Duration) int {
	if duration <= 0 {
		duration = DefaultDuration
	}
	if elapsed <= 0 {
		return 0
	}
	if elapsed >= duration {
		return end
	}
	progress := float64(elapsed) / float64(duration)
	eased := (1 - math.Pow(2, -10*progress)) * 1024 / 1023
	v := int(math.Round(float64(end) * eased))
	if (end >= 0 && v > end) || (end < 0 && v < end) {
		return end
	}
	return v
}

// Format renders v with the digit grouping of tag.
func Format(tag language.Tag, v int) string {
	return message.NewPrinter(tag).Sprint(number.Decimal(v))
}
