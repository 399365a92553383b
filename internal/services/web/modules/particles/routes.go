package particles

import (
	"net/http"

	"github.com/amlsafe/landing/internal/services/web/platform/httpx"
	"github.com/amlsafe/landing/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Poster, h.handlePoster)
	mux.HandleFunc(routepath.Poster, httpx.MethodNotAllowed(http.MethodGet))
	mux.HandleFunc(routepath.ParticlesPrefix, http.NotFound)
}
