// Package ebitenfield runs a particle field inside an ebiten window.
package ebitenfield

import (
	"context"
	"image/color"

	"github.com/amlsafe/landing/internal/particlefield"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var background = color.RGBA{R: 0, G: 0, B: 0, A: 255}

// Game adapts a particle field to ebiten's update/draw/layout loop.
type Game struct {
	ctx   context.Context
	field *particlefield.Field
}

// NewGame wraps field. The game terminates once ctx is done.
func NewGame(ctx context.Context, field *particlefield.Field) *Game {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Game{ctx: ctx, field: field}
}

// Update advances the field one frame.
func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	g.field.Step()
	return nil
}

// Draw paints the field onto the screen.
func (g *Game) Draw(screen *ebiten.Image) {
	s := &surface{dst: screen}
	s.Clear()
	g.field.Draw(s)
}

// Layout follows the window size; a changed size regenerates the particles.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.field.Fit(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

type surface struct {
	dst *ebiten.Image
}

func (s *surface) Clear() {
	s.dst.Fill(background)
}

func (s *surface) FillCircle(x, y, radius float64, tone particlefield.Tone) {
	vector.DrawFilledCircle(s.dst, float32(x), float32(y), float32(radius), tone.NRGBA(), true)
}

func (s *surface) StrokeLine(x1, y1, x2, y2, width float64, tone particlefield.Tone) {
	vector.StrokeLine(s.dst, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), tone.NRGBA(), true)
}
