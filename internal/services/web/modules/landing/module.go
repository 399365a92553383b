// Package landing serves the marketing page and the localized not found page.
package landing

import (
	"net/http"

	module "github.com/amlsafe/landing/internal/services/web/module"
	"github.com/amlsafe/landing/internal/services/web/platform/pagerender"
	"github.com/amlsafe/landing/internal/services/web/platform/publichandler"
	"github.com/amlsafe/landing/internal/services/web/routepath"
)

// Module provides the landing page routes.
type Module struct {
	source pagerender.ContentSource
	opts   []publichandler.Option
}

// New returns a landing module rendering copy from source.
func New(source pagerender.ContentSource, opts ...publichandler.Option) Module {
	return Module{source: source, opts: opts}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "landing" }

// Healthy reports whether page copy is available.
func (m Module) Healthy() bool { return m.source != nil }

// Mount wires landing route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	svc := newService(m.source)
	h := newHandlers(svc, publichandler.NewBase(m.source, m.opts...))
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
