package wasm

import (
	"io/fs"
	"net/http"
	"strings"

	"github.com/amlsafe/landing/internal/services/web/platform/httpx"
	"github.com/amlsafe/landing/internal/services/web/routepath"
)

// The binary changes on every deploy under the same name.
const wasmCacheControl = "no-cache"

func registerRoutes(mux *http.ServeMux, files fs.FS) {
	if mux == nil || files == nil {
		return
	}
	fileServer := http.StripPrefix(strings.TrimSuffix(routepath.WasmPrefix, "/"), http.FileServer(http.FS(files)))
	mux.Handle(http.MethodGet+" "+routepath.WasmPrefix, httpx.Chain(fileServer, httpx.CacheControl(wasmCacheControl)))
	mux.HandleFunc(routepath.WasmPrefix, httpx.MethodNotAllowed(http.MethodGet))
}
