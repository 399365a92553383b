package particles

import (
	"context"
	"log"
	"net/http"

	"github.com/amlsafe/landing/internal/platform/timeouts"
	"github.com/amlsafe/landing/internal/services/web/platform/httpx"
	"github.com/amlsafe/landing/internal/services/web/routepath"
)

// posterCacheControl lets browsers and proxies keep posters for a day; a
// given size always renders the same image for one seed.
const posterCacheControl = "public, max-age=86400"

type handlers struct {
	service service
}

func newHandlers(s service) handlers {
	return handlers{service: s}
}

func (h handlers) handlePoster(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(httpx.RequestContext(r), timeouts.PosterRender)
	defer cancel()

	query := r.URL.Query()
	rendered, err := h.service.poster(ctx, query.Get(routepath.PosterWidthKey), query.Get(routepath.PosterHeightKey))
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	w.Header().Set("Cache-Control", posterCacheControl)
	if err := httpx.WriteBytes(w, http.StatusOK, "image/png", rendered.PNG); err != nil {
		log.Printf("write poster width=%d height=%d err=%v", rendered.Width, rendered.Height, err)
	}
}
