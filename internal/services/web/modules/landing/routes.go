package landing

import (
	"net/http"

	"github.com/amlsafe/landing/internal/services/web/platform/httpx"
	"github.com/amlsafe/landing/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleIndex)
	mux.HandleFunc(routepath.Root+"{$}", httpx.MethodNotAllowed(http.MethodGet))
	mux.HandleFunc(routepath.Root, h.handleNotFound)
}
