// Package assets serves the embedded stylesheet and client loader.
package assets

import (
	"io/fs"
	"net/http"

	module "github.com/amlsafe/landing/internal/services/web/module"
	"github.com/amlsafe/landing/internal/services/web/routepath"
	"github.com/amlsafe/landing/internal/services/web/static"
)

const assetCacheControl = "public, max-age=3600"

// Module provides static asset routes.
type Module struct {
	files fs.FS
}

// New returns an assets module over the embedded static files.
func New() Module { return Module{files: static.FS} }

// NewWithFS returns an assets module over files.
func NewWithFS(files fs.FS) Module { return Module{files: files} }

// ID returns a stable module identifier.
func (Module) ID() string { return "assets" }

// Mount wires static asset handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, m.files)
	return module.Mount{Prefix: routepath.StaticPrefix, Handler: mux}, nil
}
