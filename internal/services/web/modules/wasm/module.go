// Package wasm serves the compiled browser client from a directory built
// next to the server (landing.wasm plus the toolchain's wasm_exec.js).
package wasm

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"

	module "github.com/amlsafe/landing/internal/services/web/module"
	"github.com/amlsafe/landing/internal/services/web/routepath"
)

// Module provides the wasm client routes.
type Module struct {
	files fs.FS
}

// New returns a module serving dir. An empty dir leaves the module
// unmountable.
func New(dir string) Module {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return Module{}
	}
	return Module{files: os.DirFS(dir)}
}

// NewWithFS returns a module serving files.
func NewWithFS(files fs.FS) Module { return Module{files: files} }

// ID returns a stable module identifier.
func (Module) ID() string { return "wasm" }

// Healthy reports whether the client binary is present.
func (m Module) Healthy() bool {
	if m.files == nil {
		return false
	}
	_, err := fs.Stat(m.files, path.Base(routepath.WasmBinary))
	return err == nil
}

// Mount wires wasm file handlers.
func (m Module) Mount() (module.Mount, error) {
	if m.files == nil {
		return module.Mount{}, errors.New("wasm directory is not configured")
	}
	mux := http.NewServeMux()
	registerRoutes(mux, m.files)
	return module.Mount{Prefix: routepath.WasmPrefix, Handler: mux}, nil
}
