package particlefield

import (
	"math"
	"testing"
)

type recordedLine struct {
	x1, y1, x2, y2, width float64
	tone                  Tone
}

type recordingSurface struct {
	clears  int
	circles []Particle
	lines   []recordedLine
}

func (s *recordingSurface) Clear() {
	s.clears++
	s.circles = nil
	s.lines = nil
}

func (s *recordingSurface) FillCircle(x, y, radius float64, tone Tone) {
	s.circles = append(s.circles, Particle{X: x, Y: y, Size: radius, Tone: tone})
}

func (s *recordingSurface) StrokeLine(x1, y1, x2, y2, width float64, tone Tone) {
	s.lines = append(s.lines, recordedLine{x1: x1, y1: y1, x2: x2, y2: y2, width: width, tone: tone})
}

func TestCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		width float64
		want  int
	}{
		{width: 1000, want: 100},
		{width: 300, want: 30},
		{width: 305, want: 31},
		{width: 999, want: 100},
		{width: 991, want: 100},
		{width: 990, want: 99},
		{width: 9, want: 1},
		{width: 1, want: 1},
		{width: 0, want: 0},
		{width: -40, want: 0},
		{width: math.NaN(), want: 0},
		{width: 4000, want: 100},
	}
	for _, tc := range tests {
		if got := Count(tc.width); got != tc.want {
			t.Fatalf("Count(%v) = %d, want %d", tc.width, got, tc.want)
		}
	}
}

func TestCountMatchesFormulaForAllWidths(t *testing.T) {
	t.Parallel()

	for w := 0; w <= 2000; w++ {
		got := Count(float64(w))
		want := min((w+9)/10, 100)
		if got != want {
			t.Fatalf("Count(%d) = %d, want %d", w, got, want)
		}
		if got < 0 {
			t.Fatalf("Count(%d) = %d, want non-negative", w, got)
		}
	}
}

func TestLinkOpacity(t *testing.T) {
	t.Parallel()

	got, ok := LinkOpacity(50)
	if !ok {
		t.Fatal("LinkOpacity(50) reported no link")
	}
	if math.Abs(got-0.05) > 1e-12 {
		t.Fatalf("LinkOpacity(50) = %v, want 0.05", got)
	}
	if got, ok := LinkOpacity(0); !ok || math.Abs(got-0.1) > 1e-12 {
		t.Fatalf("LinkOpacity(0) = %v, %t, want 0.1, true", got, ok)
	}
	for _, d := range []float64{100, 100.5, 250} {
		if _, ok := LinkOpacity(d); ok {
			t.Fatalf("LinkOpacity(%v) linked, want no line", d)
		}
	}
}

func TestNewGeneratesParticlesInsideSurface(t *testing.T) {
	t.Parallel()

	f := New(640, 480, WithSeed(7))
	if f.Len() != 64 {
		t.Fatalf("Len() = %d, want 64", f.Len())
	}
	for i, p := range f.Particles() {
		if p.X < 0 || p.X > 640 || p.Y < 0 || p.Y > 480 {
			t.Fatalf("particle %d at (%v, %v) outside surface", i, p.X, p.Y)
		}
		if p.Size < 0.5 || p.Size > 2.5 {
			t.Fatalf("particle %d size = %v, want within [0.5, 2.5]", i, p.Size)
		}
		if math.Abs(p.VX) > 0.15 || math.Abs(p.VY) > 0.15 {
			t.Fatalf("particle %d velocity = (%v, %v), want within ±0.15", i, p.VX, p.VY)
		}
		if p.Tone != Palette[i%3] {
			t.Fatalf("particle %d tone = %+v, want %+v", i, p.Tone, Palette[i%3])
		}
	}
}

func TestStepKeepsParticlesInsideBounds(t *testing.T) {
	t.Parallel()

	f := New(320, 90, WithSeed(42))
	for frame := 0; frame < 20000; frame++ {
		f.Step()
		for i, p := range f.particles {
			if p.X < 0 || p.X > f.Width() || p.Y < 0 || p.Y > f.Height() {
				t.Fatalf("frame %d: particle %d at (%v, %v) outside %vx%v", frame, i, p.X, p.Y, f.Width(), f.Height())
			}
		}
	}
}

func TestStepReflectsVelocityAtEdges(t *testing.T) {
	t.Parallel()

	f := New(100, 100, WithSeed(1))
	f.particles = []Particle{
		{X: 99.9, Y: 50, VX: 0.2, VY: 0},
		{X: 50, Y: 0.05, VX: 0, VY: -0.1},
		{X: 0.1, Y: 99.95, VX: -0.15, VY: 0.1},
	}
	f.Step()

	right := f.particles[0]
	if right.VX != -0.2 {
		t.Fatalf("right edge VX = %v, want -0.2", right.VX)
	}
	if right.X > 100 {
		t.Fatalf("right edge X = %v, want <= 100", right.X)
	}
	top := f.particles[1]
	if top.VY != 0.1 || top.Y < 0 {
		t.Fatalf("top edge = (%v, VY %v), want Y >= 0 and VY 0.1", top.Y, top.VY)
	}
	corner := f.particles[2]
	if corner.VX != 0.15 || corner.VY != -0.1 {
		t.Fatalf("corner velocity = (%v, %v), want (0.15, -0.1)", corner.VX, corner.VY)
	}
}

func TestStepOnDegenerateSurface(t *testing.T) {
	t.Parallel()

	f := New(200, 0, WithSeed(3))
	if f.Len() != 20 {
		t.Fatalf("Len() = %d, want 20", f.Len())
	}
	for i := 0; i < 100; i++ {
		f.Step()
	}
	for _, p := range f.particles {
		if p.Y != 0 {
			t.Fatalf("Y = %v, want 0 on zero-height surface", p.Y)
		}
	}
}

func TestResizeRegeneratesWholeSet(t *testing.T) {
	t.Parallel()

	f := New(1200, 800, WithSeed(9))
	before := f.Particles()
	gen := f.Generation()

	f.Resize(300, 600)
	if f.Len() != 30 {
		t.Fatalf("Len() after resize = %d, want 30", f.Len())
	}
	if f.Generation() != gen+1 {
		t.Fatalf("Generation() = %d, want %d", f.Generation(), gen+1)
	}
	for _, p := range f.Particles() {
		for _, old := range before {
			if p == old {
				t.Fatalf("particle %+v survived resize", p)
			}
		}
		if p.X > 300 || p.Y > 600 {
			t.Fatalf("particle (%v, %v) outside resized surface", p.X, p.Y)
		}
	}
}

func TestFitOnlyRegeneratesOnChange(t *testing.T) {
	t.Parallel()

	f := New(500, 500, WithSeed(11))
	gen := f.Generation()
	if f.Fit(500, 500) {
		t.Fatal("Fit() with same size regenerated particles")
	}
	if f.Generation() != gen {
		t.Fatalf("Generation() = %d, want %d", f.Generation(), gen)
	}
	if !f.Fit(800, 500) {
		t.Fatal("Fit() with new width did not regenerate")
	}
	if f.Len() != 80 {
		t.Fatalf("Len() = %d, want 80", f.Len())
	}
}

func TestFieldsDoNotShareParticles(t *testing.T) {
	t.Parallel()

	a := New(400, 400, WithSeed(5))
	b := New(400, 400, WithSeed(5))
	a.Step()
	if a.particles[0] == b.particles[0] {
		t.Fatal("stepping one field moved the other")
	}
}

func TestFrameDrawsParticlesThenLinks(t *testing.T) {
	t.Parallel()

	f := New(100, 100, WithSeed(2))
	f.particles = []Particle{
		{X: 10, Y: 10, Size: 1, Tone: Palette[0]},
		{X: 60, Y: 10, Size: 2, Tone: Palette[1]},
		{X: 90, Y: 90, Size: 1.5, Tone: Palette[2]},
	}
	s := &recordingSurface{}
	f.Frame(s)

	if s.clears != 1 {
		t.Fatalf("clears = %d, want 1", s.clears)
	}
	if len(s.circles) != 3 {
		t.Fatalf("circles = %d, want 3", len(s.circles))
	}
	if s.circles[1].Size != 2 || s.circles[1].Tone != Palette[1] {
		t.Fatalf("circle = %+v, want size 2 with palette tone 1", s.circles[1])
	}
	// (10,10)-(60,10) is 50 apart; (60,10)-(90,90) is ~85.4; (10,10)-(90,90) is ~113.
	if len(s.lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(s.lines))
	}
	first := s.lines[0]
	if math.Abs(first.tone.Alpha-0.05) > 1e-12 {
		t.Fatalf("first line alpha = %v, want 0.05", first.tone.Alpha)
	}
	if first.width != LinkWidth {
		t.Fatalf("line width = %v, want %v", first.width, LinkWidth)
	}
	if first.tone.R != 245 || first.tone.G != 215 || first.tone.B != 66 {
		t.Fatalf("line tone = %+v, want link tone", first.tone)
	}
}

func TestDrawSkipsFarPairs(t *testing.T) {
	t.Parallel()

	f := New(400, 400, WithSeed(2))
	f.particles = []Particle{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 300, Y: 300}}
	s := &recordingSurface{}
	f.Draw(s)
	if len(s.lines) != 0 {
		t.Fatalf("lines = %d, want 0", len(s.lines))
	}
}

func TestFrameWithoutSurfaceStillAdvances(t *testing.T) {
	t.Parallel()

	f := New(100, 100, WithSeed(4))
	f.particles = []Particle{{X: 50, Y: 50, VX: 0.1, VY: 0.1}}
	f.Frame(nil)
	if got := f.particles[0]; math.Abs(got.X-50.1) > 1e-9 || math.Abs(got.Y-50.1) > 1e-9 {
		t.Fatalf("particle = (%v, %v), want (50.1, 50.1)", got.X, got.Y)
	}
}

func TestToneCSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tone Tone
		want string
	}{
		{tone: Palette[0], want: "rgba(245, 215, 66, 0.3)"},
		{tone: Palette[1], want: "rgba(229, 57, 53, 0.2)"},
		{tone: Palette[2], want: "rgba(255, 255, 255, 0.1)"},
		{tone: LinkTone.WithAlpha(0.05), want: "rgba(245, 215, 66, 0.05)"},
	}
	for _, tc := range tests {
		if got := tc.tone.CSS(); got != tc.want {
			t.Fatalf("CSS() = %q, want %q", got, tc.want)
		}
	}
	if got := Palette[0].NRGBA().A; got != 77 {
		t.Fatalf("NRGBA().A = %d, want 77", got)
	}
}

func TestToneForCyclesPalette(t *testing.T) {
	t.Parallel()

	tests := []struct {
		i    int
		want Tone
	}{
		{i: 0, want: Palette[0]},
		{i: 4, want: Palette[1]},
		{i: -1, want: Palette[2]},
		{i: math.MinInt, want: Palette[((math.MinInt%3)+3)%3]},
		{i: math.MaxInt, want: Palette[math.MaxInt%3]},
	}
	for _, tc := range tests {
		if got := ToneFor(tc.i); got != tc.want {
			t.Fatalf("ToneFor(%d) = %+v, want %+v", tc.i, got, tc.want)
		}
	}
}
