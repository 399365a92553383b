// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strconv"
)

const (
	Root            = "/"
	Health          = "/healthz"
	Metrics         = "/metrics"
	ParticlesPrefix = "/particles/"
	Poster          = "/particles/poster.png"
	StaticPrefix    = "/static/"
	LandingCSS      = "/static/landing.css"
	LandingJS       = "/static/landing.js"
	WasmPrefix      = "/wasm/"
	WasmBinary      = "/wasm/landing.wasm"
	WasmExec        = "/wasm/wasm_exec.js"
)

// Query keys accepted by the poster route.
const (
	PosterWidthKey  = "w"
	PosterHeightKey = "h"
)

// PosterURL returns the poster route for a viewport size.
func PosterURL(width, height int) string {
	query := url.Values{}
	query.Set(PosterWidthKey, strconv.Itoa(width))
	query.Set(PosterHeightKey, strconv.Itoa(height))
	return (&url.URL{Path: Poster, RawQuery: query.Encode()}).String()
}
