package raster

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/png"
	"strconv"
	"sync"

	"golang.org/x/sync/semaphore"
	"golang.org/x/sync/singleflight"

	"github.com/amlsafe/landing/internal/particlefield"
)

const (
	// MaxPosterWidth caps poster width in pixels.
	MaxPosterWidth = 2560
	// MaxPosterHeight caps poster height in pixels.
	MaxPosterHeight = 1600
	// PosterStep is the pixel grid poster sizes are rounded up to.
	PosterStep = 16

	defaultCacheEntries = 64
	defaultRenderLimit  = 2
)

// ErrRenderBusy is returned when every render slot is taken.
var ErrRenderBusy = errors.New("poster renders at capacity")

// PosterOptions controls how posters are generated.
type PosterOptions struct {
	// Seed fixes particle placement so repeated requests match.
	Seed uint64
	// Warmup is the number of frames advanced before the snapshot.
	Warmup int
	// CacheEntries bounds the number of encoded posters kept in memory.
	CacheEntries int
	// MaxRenders bounds how many distinct posters render at once.
	MaxRenders int
}

// RenderPoster renders one frame of a seeded field and encodes it as PNG.
func RenderPoster(width, height int, opts PosterOptions) ([]byte, error) {
	return RenderPosterContext(context.Background(), width, height, opts)
}

// RenderPosterContext is RenderPoster stopping early once ctx is done.
func RenderPosterContext(ctx context.Context, width, height int, opts PosterOptions) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("poster size %dx%d must be positive", width, height)
	}
	field := particlefield.New(float64(width), float64(height), particlefield.WithSeed(opts.Seed))
	for i := 0; i < opts.Warmup; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		field.Step()
	}
	surface := NewSurface(width, height)
	surface.Clear()
	field.Draw(surface)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, surface.Image()); err != nil {
		return nil, fmt.Errorf("encode poster: %w", err)
	}
	return buf.Bytes(), nil
}

// NormalizeSize clamps a requested poster size to the supported range and
// rounds it up to the poster grid.
func NormalizeSize(width, height int) (int, int) {
	return normalizeExtent(width, MaxPosterWidth), normalizeExtent(height, MaxPosterHeight)
}

func normalizeExtent(v, limit int) int {
	if v < 1 {
		v = 1
	}
	if v > limit {
		v = limit
	}
	if rem := v % PosterStep; rem != 0 {
		v += PosterStep - rem
	}
	return min(v, limit)
}

type posterKey struct {
	width, height int
}

func (k posterKey) String() string {
	return strconv.Itoa(k.width) + "x" + strconv.Itoa(k.height)
}

// Rendered is an encoded poster and the size it was rendered at.
type Rendered struct {
	PNG    []byte
	Width  int
	Height int
	// Cached reports whether the bytes came from the cache.
	Cached bool
}

type renderFunc func(ctx context.Context, width, height int, opts PosterOptions) ([]byte, error)

// PosterCache renders posters on demand and keeps a bounded set of results.
// Concurrent requests for the same size share one render, and at most
// MaxRenders distinct sizes render at once; requests beyond that fail with
// ErrRenderBusy instead of queueing.
type PosterCache struct {
	opts   PosterOptions
	render renderFunc
	slots  *semaphore.Weighted
	flight singleflight.Group
	mu     sync.Mutex
	items  map[posterKey][]byte
	order  []posterKey
}

// NewPosterCache builds a poster cache.
func NewPosterCache(opts PosterOptions) *PosterCache {
	if opts.CacheEntries <= 0 {
		opts.CacheEntries = defaultCacheEntries
	}
	if opts.MaxRenders <= 0 {
		opts.MaxRenders = defaultRenderLimit
	}
	if opts.Warmup < 0 {
		opts.Warmup = 0
	}
	return &PosterCache{
		opts:   opts,
		render: RenderPosterContext,
		slots:  semaphore.NewWeighted(int64(opts.MaxRenders)),
		items:  make(map[posterKey][]byte),
	}
}

// Poster returns the encoded poster for the normalized size. A render shared
// with other callers runs under the context of the caller that started it.
func (c *PosterCache) Poster(ctx context.Context, width, height int) (Rendered, error) {
	width, height = NormalizeSize(width, height)
	key := posterKey{width: width, height: height}

	if data, ok := c.lookup(key); ok {
		return Rendered{PNG: data, Width: width, Height: height, Cached: true}, nil
	}

	ch := c.flight.DoChan(key.String(), func() (any, error) {
		if data, ok := c.lookup(key); ok {
			return data, nil
		}
		if !c.slots.TryAcquire(1) {
			return nil, ErrRenderBusy
		}
		defer c.slots.Release(1)
		data, err := c.render(ctx, width, height, c.opts)
		if err != nil {
			return nil, err
		}
		c.store(key, data)
		return data, nil
	})
	select {
	case <-ctx.Done():
		return Rendered{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return Rendered{}, res.Err
		}
		return Rendered{PNG: res.Val.([]byte), Width: width, Height: height}, nil
	}
}

// Warm renders the given sizes ahead of the first request.
func (c *PosterCache) Warm(ctx context.Context, sizes ...[2]int) error {
	for _, size := range sizes {
		if _, err := c.Poster(ctx, size[0], size[1]); err != nil {
			return err
		}
	}
	return nil
}

func (c *PosterCache) lookup(key posterKey) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, ok := c.items[key]
	return data, ok
}

func (c *PosterCache) store(key posterKey, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[key]; ok {
		return
	}
	if len(c.order) >= c.opts.CacheEntries {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.items, oldest)
	}
	c.items[key] = data
	c.order = append(c.order, key)
}

// Len returns the number of cached posters.
func (c *PosterCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}
