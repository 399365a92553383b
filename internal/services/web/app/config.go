// Package app composes web modules into the root handler.
package app

import (
	"net/http"

	module "github.com/amlsafe/landing/internal/services/web/module"
)

// Config lists the modules served by the root handler.
type Config struct {
	Modules []module.Module
}

// BuildRootHandler composes a root mux from the configured modules.
func BuildRootHandler(cfg Config) (http.Handler, error) {
	return Compose(ComposeInput{Modules: cfg.Modules})
}
