// Package weberror renders localized error pages for web modules.
package weberror

import (
	"log"
	"net/http"

	apperrors "github.com/amlsafe/landing/internal/services/web/platform/errors"
	"github.com/amlsafe/landing/internal/services/web/platform/pagerender"
	webtemplates "github.com/amlsafe/landing/internal/services/web/templates"
)

// ShouldRenderPage reports whether status gets the full error page rather
// than a plain-text body.
func ShouldRenderPage(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// WritePage writes the localized error page for statusCode inside the page
// layout.
func WritePage(w http.ResponseWriter, r *http.Request, page webtemplates.PageView, statusCode int) {
	if w == nil {
		return
	}
	if !ShouldRenderPage(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	view := webtemplates.NewErrorView(page, statusCode)
	if err := pagerender.WritePage(w, r, statusCode, webtemplates.ErrorPage(view)); err != nil {
		log.Printf("render error page status=%d err=%v", statusCode, err)
		http.Error(w, http.StatusText(statusCode), statusCode)
	}
}

// Write maps err to a status and writes the matching response: a localized
// page for not found and server failures, plain text otherwise.
func Write(w http.ResponseWriter, r *http.Request, page webtemplates.PageView, err error) {
	if err == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if ShouldRenderPage(statusCode) {
		WritePage(w, r, page, statusCode)
		return
	}
	http.Error(w, err.Error(), statusCode)
}
