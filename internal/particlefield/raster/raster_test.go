package raster

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/png"
	"sync"
	"testing"
	"time"

	"github.com/amlsafe/landing/internal/particlefield"
	"github.com/amlsafe/landing/internal/platform/timeouts"
)

func TestClearPaintsBackground(t *testing.T) {
	t.Parallel()

	s := NewSurface(8, 8)
	s.Clear()
	got := s.Image().RGBAAt(3, 3)
	if got.R != 0 || got.G != 0 || got.B != 0 || got.A != 255 {
		t.Fatalf("pixel = %+v, want opaque black", got)
	}
}

func TestFillCircleTintsCenter(t *testing.T) {
	t.Parallel()

	s := NewSurface(20, 20)
	s.Clear()
	s.FillCircle(10, 10, 4, particlefield.Tone{R: 255, G: 255, B: 255, Alpha: 1})
	if got := s.Image().RGBAAt(10, 10); got.R < 200 {
		t.Fatalf("center pixel = %+v, want bright", got)
	}
	if got := s.Image().RGBAAt(1, 1); got.R != 0 {
		t.Fatalf("corner pixel = %+v, want untouched", got)
	}
}

func TestStrokeLineIgnoresDegenerateSegments(t *testing.T) {
	t.Parallel()

	s := NewSurface(10, 10)
	s.Clear()
	s.StrokeLine(5, 5, 5, 5, 1, particlefield.Tone{R: 255, Alpha: 1})
	s.StrokeLine(1, 1, 9, 9, 0, particlefield.Tone{R: 255, Alpha: 1})
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if got := s.Image().RGBAAt(x, y); got.R != 0 {
				t.Fatalf("pixel (%d,%d) = %+v, want untouched", x, y, got)
			}
		}
	}
}

func TestStrokeLineTintsPath(t *testing.T) {
	t.Parallel()

	s := NewSurface(20, 20)
	s.Clear()
	s.StrokeLine(0, 10, 20, 10, 2, particlefield.Tone{R: 255, Alpha: 1})
	if got := s.Image().RGBAAt(10, 10); got.R == 0 {
		t.Fatalf("pixel on line = %+v, want tinted", got)
	}
}

func TestRenderPosterEncodesPNG(t *testing.T) {
	t.Parallel()

	data, err := RenderPoster(64, 48, PosterOptions{Seed: 1, Warmup: 10})
	if err != nil {
		t.Fatalf("RenderPoster() error = %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
		t.Fatalf("bounds = %v, want 64x48", b)
	}
}

func TestRenderPosterIsDeterministicForSeed(t *testing.T) {
	t.Parallel()

	a, err := RenderPoster(96, 64, PosterOptions{Seed: 3})
	if err != nil {
		t.Fatalf("RenderPoster() error = %v", err)
	}
	b, err := RenderPoster(96, 64, PosterOptions{Seed: 3})
	if err != nil {
		t.Fatalf("RenderPoster() error = %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatal("posters with the same seed differ")
	}
}

func TestRenderPosterRejectsEmptySize(t *testing.T) {
	t.Parallel()

	if _, err := RenderPoster(0, 10, PosterOptions{}); err == nil {
		t.Fatal("expected error for zero width")
	}
}

func TestNormalizeSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		w, h         int
		wantW, wantH int
	}{
		{w: 1280, h: 720, wantW: 1280, wantH: 720},
		{w: 1281, h: 719, wantW: 1296, wantH: 720},
		{w: 0, h: -5, wantW: 16, wantH: 16},
		{w: 99999, h: 99999, wantW: MaxPosterWidth, wantH: MaxPosterHeight},
	}
	for _, tc := range tests {
		gotW, gotH := NormalizeSize(tc.w, tc.h)
		if gotW != tc.wantW || gotH != tc.wantH {
			t.Fatalf("NormalizeSize(%d, %d) = %d, %d, want %d, %d", tc.w, tc.h, gotW, gotH, tc.wantW, tc.wantH)
		}
	}
}

func TestPosterCacheReusesAndEvicts(t *testing.T) {
	t.Parallel()

	c := NewPosterCache(PosterOptions{Seed: 1, CacheEntries: 2})
	first, err := c.Poster(context.Background(), 30, 30)
	if err != nil {
		t.Fatalf("Poster() error = %v", err)
	}
	if first.Width != 32 || first.Height != 32 {
		t.Fatalf("size = %dx%d, want 32x32", first.Width, first.Height)
	}
	if first.Cached {
		t.Fatal("first render reported as cached")
	}
	again, err := c.Poster(context.Background(), 32, 31)
	if err != nil {
		t.Fatalf("Poster() error = %v", err)
	}
	if !again.Cached || !bytes.Equal(first.PNG, again.PNG) {
		t.Fatal("expected cached poster for the same normalized size")
	}
	if err := c.Warm(context.Background(), [2]int{64, 64}, [2]int{128, 64}); err != nil {
		t.Fatalf("Warm() error = %v", err)
	}
	if got := c.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}
	evicted, err := c.Poster(context.Background(), 32, 32)
	if err != nil {
		t.Fatalf("Poster() error = %v", err)
	}
	if evicted.Cached {
		t.Fatal("oldest entry should have been evicted")
	}
}

func TestPosterCacheSharesConcurrentRenders(t *testing.T) {
	t.Parallel()

	c := NewPosterCache(PosterOptions{Seed: 5})
	var wg sync.WaitGroup
	results := make([][]byte, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r, err := c.Poster(context.Background(), 200, 100)
			if err != nil {
				t.Errorf("Poster() error = %v", err)
				return
			}
			results[i] = r.PNG
		}(i)
	}
	wg.Wait()
	for i := 1; i < len(results); i++ {
		if !bytes.Equal(results[0], results[i]) {
			t.Fatalf("result %d differs from result 0", i)
		}
	}
	if got := c.Len(); got != 1 {
		t.Fatalf("Len() = %d, want 1", got)
	}
}

func TestFillCircleClipsAtImageEdges(t *testing.T) {
	t.Parallel()

	s := NewSurface(20, 20)
	s.Clear()
	white := particlefield.Tone{R: 255, G: 255, B: 255, Alpha: 1}
	s.FillCircle(0, 0, 4, white)
	s.FillCircle(20, 20, 4, white)
	s.FillCircle(-50, -50, 4, white)
	if got := s.Image().RGBAAt(0, 0); got.R < 200 {
		t.Fatalf("top-left pixel = %+v, want bright", got)
	}
	if got := s.Image().RGBAAt(19, 19); got.R < 200 {
		t.Fatalf("bottom-right pixel = %+v, want bright", got)
	}
	if got := s.Image().RGBAAt(10, 10); got.R != 0 {
		t.Fatalf("center pixel = %+v, want untouched", got)
	}
}

func TestFillCircleOffOriginMatchesShape(t *testing.T) {
	t.Parallel()

	s := NewSurface(40, 40)
	s.Clear()
	s.FillCircle(30, 12, 3, particlefield.Tone{R: 255, G: 255, B: 255, Alpha: 1})
	if got := s.Image().RGBAAt(30, 12); got.R < 200 {
		t.Fatalf("circle center = %+v, want bright", got)
	}
	for _, p := range [][2]int{{25, 12}, {35, 12}, {30, 7}, {30, 17}} {
		if got := s.Image().RGBAAt(p[0], p[1]); got.R != 0 {
			t.Fatalf("pixel %v = %+v, want outside the circle", p, got)
		}
	}
}

func TestRenderPosterMaxSizeWithinRenderTimeout(t *testing.T) {
	t.Parallel()

	start := time.Now()
	data, err := RenderPoster(MaxPosterWidth, MaxPosterHeight, PosterOptions{Seed: 1337, Warmup: 120})
	if err != nil {
		t.Fatalf("RenderPoster() error = %v", err)
	}
	if elapsed := time.Since(start); elapsed >= timeouts.PosterRender {
		t.Fatalf("RenderPoster(%d, %d) took %s, want under %s", MaxPosterWidth, MaxPosterHeight, elapsed, timeouts.PosterRender)
	}
	if len(data) == 0 {
		t.Fatal("RenderPoster() returned no data")
	}
}

func TestRenderPosterContextStopsWhenDone(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := RenderPosterContext(ctx, 64, 64, PosterOptions{Warmup: 10}); !errors.Is(err, context.Canceled) {
		t.Fatalf("RenderPosterContext() error = %v, want context.Canceled", err)
	}
}

func TestPosterCacheRejectsRendersOverLimit(t *testing.T) {
	t.Parallel()

	c := NewPosterCache(PosterOptions{MaxRenders: 2})
	started := make(chan struct{}, 2)
	release := make(chan struct{})
	c.render = func(ctx context.Context, width, height int, _ PosterOptions) ([]byte, error) {
		started <- struct{}{}
		<-release
		return []byte(fmt.Sprintf("%dx%d", width, height)), nil
	}

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, size := range [][2]int{{160, 160}, {320, 320}} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = c.Poster(context.Background(), size[0], size[1])
		}()
	}
	<-started
	<-started

	if _, err := c.Poster(context.Background(), 640, 640); !errors.Is(err, ErrRenderBusy) {
		t.Fatalf("third render error = %v, want ErrRenderBusy", err)
	}

	close(release)
	wg.Wait()
	for i, err := range errs {
		if err != nil {
			t.Fatalf("render %d error = %v", i, err)
		}
	}
	if _, err := c.Poster(context.Background(), 640, 640); err != nil {
		t.Fatalf("render after release error = %v", err)
	}
	if got := c.Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3", got)
	}
}

func TestPosterCacheReturnsWhenContextDone(t *testing.T) {
	t.Parallel()

	c := NewPosterCache(PosterOptions{})
	c.render = func(ctx context.Context, _, _ int, _ PosterOptions) ([]byte, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := c.Poster(ctx, 64, 64); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Poster() error = %v, want context.DeadlineExceeded", err)
	}
	if got := c.Len(); got != 0 {
		t.Fatalf("Len() = %d, want 0 after a cancelled render", got)
	}
}
