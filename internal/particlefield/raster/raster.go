// Package raster draws a particle field into an in-memory image so it can be
// served as a static poster behind the canvas.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/amlsafe/landing/internal/particlefield"
	"golang.org/x/image/vector"
)

// Background is the page background the poster is painted on.
var Background = color.NRGBA{R: 0, G: 0, B: 0, A: 255}

const circleSegments = 24

// Surface rasterizes particle shapes onto an RGBA image. Each shape is
// rasterized within its own bounding box.
type Surface struct {
	img        *image.RGBA
	z          *vector.Rasterizer
	background image.Image
	path       []point
}

type point struct {
	x, y float64
}

// NewSurface allocates a surface of the given pixel size.
func NewSurface(width, height int) *Surface {
	width, height = max(width, 1), max(height, 1)
	return &Surface{
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		z:          vector.NewRasterizer(0, 0),
		background: image.NewUniform(Background),
		path:       make([]point, 0, circleSegments),
	}
}

// Image returns the backing image.
func (s *Surface) Image() *image.RGBA { return s.img }

// Clear paints the whole surface with the background color.
func (s *Surface) Clear() {
	draw.Draw(s.img, s.img.Bounds(), s.background, image.Point{}, draw.Src)
}

// FillCircle draws a filled polygonal approximation of a circle.
func (s *Surface) FillCircle(x, y, radius float64, tone particlefield.Tone) {
	if radius <= 0 {
		return
	}
	s.path = s.path[:0]
	for i := 0; i < circleSegments; i++ {
		angle := 2 * math.Pi * float64(i) / circleSegments
		s.path = append(s.path, point{x: x + radius*math.Cos(angle), y: y + radius*math.Sin(angle)})
	}
	s.fill(tone)
}

// StrokeLine draws a line segment as a thin quad.
func (s *Surface) StrokeLine(x1, y1, x2, y2, width float64, tone particlefield.Tone) {
	length := math.Hypot(x2-x1, y2-y1)
	if length == 0 || width <= 0 {
		return
	}
	nx := -(y2 - y1) / length * width / 2
	ny := (x2 - x1) / length * width / 2
	s.path = append(s.path[:0],
		point{x: x1 + nx, y: y1 + ny},
		point{x: x2 + nx, y: y2 + ny},
		point{x: x2 - nx, y: y2 - ny},
		point{x: x1 - nx, y: y1 - ny},
	)
	s.fill(tone)
}

// bounds returns the pixel box covering the current path, clipped to the
// image.
func (s *Surface) bounds() image.Rectangle {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range s.path {
		minX, maxX = math.Min(minX, p.x), math.Max(maxX, p.x)
		minY, maxY = math.Min(minY, p.y), math.Max(maxY, p.y)
	}
	for _, v := range [...]float64{minX, minY, maxX, maxY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return image.Rectangle{}
		}
	}
	b := s.img.Bounds()
	// Clamp before converting so far-off coordinates cannot overflow int.
	box := image.Rect(
		int(math.Floor(clampTo(minX, b.Min.X, b.Max.X))),
		int(math.Floor(clampTo(minY, b.Min.Y, b.Max.Y))),
		int(math.Ceil(clampTo(maxX, b.Min.X, b.Max.X))),
		int(math.Ceil(clampTo(maxY, b.Min.Y, b.Max.Y))),
	)
	return box.Intersect(b)
}

// fill rasterizes the closed path into its bounding box and composites it
// over the image.
func (s *Surface) fill(tone particlefield.Tone) {
	if len(s.path) < 3 {
		return
	}
	box := s.bounds()
	if box.Empty() {
		return
	}
	s.z.Reset(box.Dx(), box.Dy())
	s.z.DrawOp = draw.Over
	ox, oy := float64(box.Min.X), float64(box.Min.Y)
	s.z.MoveTo(float32(s.path[0].x-ox), float32(s.path[0].y-oy))
	for _, p := range s.path[1:] {
		s.z.LineTo(float32(p.x-ox), float32(p.y-oy))
	}
	s.z.ClosePath()
	s.z.Draw(s.img, box, image.NewUniform(tone.NRGBA()), image.Point{})
}

func clampTo(v float64, lo, hi int) float64 {
	return math.Max(float64(lo), math.Min(float64(hi), v))
}
