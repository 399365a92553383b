package particlefield

import (
	"math"
	"math/rand/v2"
)

const (
	// MaxParticles caps the particle count regardless of surface width.
	MaxParticles = 100
	// WidthPerParticle is the surface width that earns one particle.
	WidthPerParticle = 10.0
	// LinkDistance is the distance below which two particles are joined.
	LinkDistance = 100.0
	// LinkWidth is the stroke width of connecting lines.
	LinkWidth = 0.5

	linkBaseAlpha = 0.1
	linkFade      = 1000.0

	minSize    = 0.5
	sizeJitter = 2.0
	speedRange = 0.3
)

// Count returns the number of particles for a surface of the given width:
// one per started WidthPerParticle, capped at MaxParticles.
func Count(width float64) int {
	if math.IsNaN(width) || width <= 0 {
		return 0
	}
	n := math.Ceil(width / WidthPerParticle)
	if n > MaxParticles {
		return MaxParticles
	}
	return int(n)
}

// LinkOpacity returns the opacity of the line joining two particles at
// distance d, and false when they are too far apart to be joined.
func LinkOpacity(d float64) (float64, bool) {
	if math.IsNaN(d) || d < 0 || d >= LinkDistance {
		return 0, false
	}
	return linkBaseAlpha - d/linkFade, true
}

// Option configures a Field.
type Option func(*Field)

// WithSeed makes particle generation deterministic.
func WithSeed(seed uint64) Option {
	return func(f *Field) {
		f.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithRand sets the random source used to generate particles.
func WithRand(rng *rand.Rand) Option {
	return func(f *Field) {
		if rng != nil {
			f.rng = rng
		}
	}
}

// Field is one instance of the animation: a surface size and the particles
// generated for it.
type Field struct {
	width, height float64
	particles     []Particle
	rng           *rand.Rand
	generation    uint64
}

// New creates a field sized to the surface and generates its particles.
func New(width, height float64, opts ...Option) *Field {
	f := &Field{}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	if f.rng == nil {
		f.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	f.Resize(width, height)
	return f
}

// Width returns the current surface width.
func (f *Field) Width() float64 { return f.width }

// Height returns the current surface height.
func (f *Field) Height() float64 { return f.height }

// Len returns the number of live particles.
func (f *Field) Len() int { return len(f.particles) }

// Generation increases every time the particle set is regenerated.
func (f *Field) Generation() uint64 { return f.generation }

// Particles returns a copy of the current particles.
func (f *Field) Particles() []Particle {
	out := make([]Particle, len(f.particles))
	copy(out, f.particles)
	return out
}

// Resize discards every particle and regenerates the set for the new size.
func (f *Field) Resize(width, height float64) {
	f.width = sanitizeExtent(width)
	f.height = sanitizeExtent(height)
	n := Count(f.width)
	f.particles = make([]Particle, n)
	for i := range f.particles {
		f.particles[i] = Particle{
			X:    f.rng.Float64() * f.width,
			Y:    f.rng.Float64() * f.height,
			Size: f.rng.Float64()*sizeJitter + minSize,
			VX:   (f.rng.Float64() - 0.5) * speedRange,
			VY:   (f.rng.Float64() - 0.5) * speedRange,
			Tone: ToneFor(i),
		}
	}
	f.generation++
}

// Fit resizes the field only when the dimensions changed. It reports whether
// the particle set was regenerated.
func (f *Field) Fit(width, height float64) bool {
	width, height = sanitizeExtent(width), sanitizeExtent(height)
	if width == f.width && height == f.height {
		return false
	}
	f.Resize(width, height)
	return true
}

// Step advances every particle by its velocity, reflecting off the edges.
func (f *Field) Step() {
	for i := range f.particles {
		p := &f.particles[i]
		p.X, p.VX = advance(p.X, p.VX, f.width)
		p.Y, p.VY = advance(p.Y, p.VY, f.height)
	}
}

// Draw paints the particles and then the links between close pairs.
func (f *Field) Draw(s Surface) {
	if s == nil {
		return
	}
	for _, p := range f.particles {
		s.FillCircle(p.X, p.Y, p.Size, p.Tone)
	}
	f.EachLink(func(a, b Particle, opacity float64) {
		s.StrokeLine(a.X, a.Y, b.X, b.Y, LinkWidth, LinkTone.WithAlpha(opacity))
	})
}

// Frame clears the surface, advances the particles and draws them.
func (f *Field) Frame(s Surface) {
	if s != nil {
		s.Clear()
	}
	f.Step()
	f.Draw(s)
}

// EachLink calls fn for every unordered pair of distinct particles closer
// than LinkDistance.
func (f *Field) EachLink(fn func(a, b Particle, opacity float64)) {
	if fn == nil {
		return
	}
	ps := f.particles
	for i := 0; i < len(ps); i++ {
		for j := i + 1; j < len(ps); j++ {
			opacity, ok := LinkOpacity(math.Hypot(ps[i].X-ps[j].X, ps[i].Y-ps[j].Y))
			if !ok {
				continue
			}
			fn(ps[i], ps[j], opacity)
		}
	}
}

// advance moves pos by vel along an axis of the given extent. On overflow the
// velocity is inverted and the overshoot mirrored back inside the bounds.
func advance(pos, vel, extent float64) (float64, float64) {
	pos += vel
	switch {
	case pos < 0:
		pos, vel = -pos, -vel
	case pos > extent:
		pos, vel = 2*extent-pos, -vel
	default:
		return pos, vel
	}
	// A step longer than the extent can still overshoot after mirroring.
	if pos < 0 {
		pos = 0
	} else if pos > extent {
		pos = extent
	}
	return pos, vel
}

func sanitizeExtent(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
