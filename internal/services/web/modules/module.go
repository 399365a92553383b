// Package modules defines web module registry helpers.
package modules

import (
	module "github.com/amlsafe/landing/internal/services/web/module"
	"github.com/amlsafe/landing/internal/services/web/modules/particles"
	"github.com/amlsafe/landing/internal/services/web/platform/pagerender"
	"github.com/amlsafe/landing/internal/services/web/platform/publichandler"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// Dependencies carries what the registry needs to compose the page modules.
// Each field is typed as the narrow interface defined by the consuming
// module.
type Dependencies struct {
	Content pagerender.ContentSource

	// Posters renders the particle background; PosterObserver may be nil.
	Posters        particles.PosterSource
	PosterObserver particles.PosterObserver

	// WasmDir holds the compiled browser client. Empty serves the page
	// without it.
	WasmDir string
}

func (d Dependencies) pageOptions() []publichandler.Option {
	opts := []publichandler.Option{publichandler.WithWasm(d.WasmDir != "")}
	if d.Posters == nil {
		opts = append(opts, publichandler.WithoutPoster())
	}
	return opts
}
