package assets

import (
	"io/fs"
	"net/http"
	"strings"

	"github.com/amlsafe/landing/internal/services/web/platform/httpx"
	"github.com/amlsafe/landing/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, files fs.FS) {
	if mux == nil || files == nil {
		return
	}
	fileServer := http.StripPrefix(strings.TrimSuffix(routepath.StaticPrefix, "/"), http.FileServer(http.FS(files)))
	mux.Handle(http.MethodGet+" "+routepath.StaticPrefix, httpx.Chain(fileServer, httpx.CacheControl(assetCacheControl)))
	mux.HandleFunc(routepath.StaticPrefix, httpx.MethodNotAllowed(http.MethodGet))
}
