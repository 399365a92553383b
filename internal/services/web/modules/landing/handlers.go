package landing

import (
	"net/http"

	"github.com/amlsafe/landing/internal/services/web/platform/publichandler"
	webtemplates "github.com/amlsafe/landing/internal/services/web/templates"
)

type handlers struct {
	publichandler.Base
	service service
}

func newHandlers(s service, base publichandler.Base) handlers {
	return handlers{Base: base, service: s}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.prepare(h.Page(w, r))
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.WritePage(w, r, page, http.StatusOK, webtemplates.LandingPage(page))
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.WriteNotFound(w, r)
}
