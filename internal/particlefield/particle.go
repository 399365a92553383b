// Package particlefield implements the ambient particle animation drawn behind
// the landing page: a drifting point cloud whose nearby points are joined by
// faint lines.
//
// A Field owns its particles. Frame drivers (browser canvas, ebiten window,
// PNG poster) call Frame, or Step and Draw separately, against a Surface.
package particlefield

import (
	"fmt"
	"image/color"
	"math"
)

// Tone is a translucent RGB color with a fractional alpha, matching how the
// page styles its canvas strokes.
type Tone struct {
	R, G, B uint8
	Alpha   float64
}

// NRGBA converts the tone to a non-premultiplied color.
func (t Tone) NRGBA() color.NRGBA {
	return color.NRGBA{R: t.R, G: t.G, B: t.B, A: uint8(math.Round(clamp01(t.Alpha) * 255))}
}

// CSS renders the tone as a CSS rgba() value.
func (t Tone) CSS() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", t.R, t.G, t.B, clamp01(t.Alpha))
}

// WithAlpha returns a copy of t with a different alpha.
func (t Tone) WithAlpha(alpha float64) Tone {
	t.Alpha = alpha
	return t
}

// Palette holds the three particle tones, assigned by creation index mod 3.
var Palette = [3]Tone{
	{R: 245, G: 215, B: 66, Alpha: 0.3},
	{R: 229, G: 57, B: 53, Alpha: 0.2},
	{R: 255, G: 255, B: 255, Alpha: 0.1},
}

// LinkTone is the base color of connecting lines; alpha is set per link.
var LinkTone = Tone{R: 245, G: 215, B: 66}

// Particle is one point of the field.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Tone   Tone
}

// ToneFor returns the palette tone for the i-th created particle.
func ToneFor(i int) Tone {
	n := len(Palette)
	return Palette[(i%n+n)%n]
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
