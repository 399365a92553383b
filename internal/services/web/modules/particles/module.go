// Package particles serves still renders of the particle field. The page
// paints one behind the canvas until the browser client takes over, and
// clients without wasm keep it as the background.
package particles

import (
	"context"
	"net/http"

	"github.com/amlsafe/landing/internal/particlefield/raster"
	module "github.com/amlsafe/landing/internal/services/web/module"
	"github.com/amlsafe/landing/internal/services/web/routepath"
)

// PosterSource renders or looks up an encoded poster. Implementations stop
// once ctx is done.
type PosterSource interface {
	Poster(ctx context.Context, width, height int) (raster.Rendered, error)
}

// PosterObserver records poster lookups.
type PosterObserver interface {
	ObservePoster(hit bool)
}

// Module provides the poster route.
type Module struct {
	posters  PosterSource
	observer PosterObserver
}

// New returns a particles module backed by posters. observer may be nil.
func New(posters PosterSource, observer PosterObserver) Module {
	return Module{posters: posters, observer: observer}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "particles" }

// Healthy reports whether posters can be served.
func (m Module) Healthy() bool { return m.posters != nil }

// Mount wires particle route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	svc := newService(m.posters, m.observer)
	h := newHandlers(svc)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.ParticlesPrefix, Handler: mux}, nil
}
