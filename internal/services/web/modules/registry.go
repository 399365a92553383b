package modules

import (
	"strings"

	"github.com/amlsafe/landing/internal/services/web/modules/assets"
	"github.com/amlsafe/landing/internal/services/web/modules/landing"
	"github.com/amlsafe/landing/internal/services/web/modules/particles"
	"github.com/amlsafe/landing/internal/services/web/modules/wasm"
)

// DefaultModules returns the modules serving the landing page. The wasm
// module is only included when a client directory is configured.
func DefaultModules(deps Dependencies) []Module {
	deps.WasmDir = strings.TrimSpace(deps.WasmDir)
	mods := []Module{
		assets.New(),
		particles.New(deps.Posters, deps.PosterObserver),
	}
	if deps.WasmDir != "" {
		mods = append(mods, wasm.New(deps.WasmDir))
	}
	return append(mods, landing.New(deps.Content, deps.pageOptions()...))
}
