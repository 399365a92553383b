// Package publichandler provides a shared base for the public page handlers.
// It centralizes language resolution, page rendering and error pages that
// would otherwise be duplicated across modules.
package publichandler

import (
	"log"
	"net/http"

	"github.com/a-h/templ"

	"github.com/amlsafe/landing/internal/services/web/platform/pagerender"
	"github.com/amlsafe/landing/internal/services/web/platform/weberror"
	webtemplates "github.com/amlsafe/landing/internal/services/web/templates"
)

// Base provides page construction and error handling for public modules.
// Embed it in handler structs.
type Base struct {
	source pagerender.ContentSource
	opts   pagerender.Options
}

// Option configures a Base.
type Option func(*Base)

// WithWasm adds the browser client scripts to rendered pages.
func WithWasm(enabled bool) Option {
	return func(b *Base) { b.opts.WasmEnabled = enabled }
}

// WithoutPoster drops the background poster from rendered pages.
func WithoutPoster() Option {
	return func(b *Base) { b.opts.PosterDisabled = true }
}

// WithPageOptions replaces the page options wholesale.
func WithPageOptions(opts pagerender.Options) Option {
	return func(b *Base) { b.opts = opts }
}

// NewBase builds a public handler base over source.
func NewBase(source pagerender.ContentSource, opts ...Option) Base {
	b := Base{source: source}
	for _, o := range opts {
		if o != nil {
			o(&b)
		}
	}
	return b
}

// Page builds the page view for the request.
func (b Base) Page(w http.ResponseWriter, r *http.Request) webtemplates.PageView {
	return pagerender.NewPageView(w, r, b.source, b.opts)
}

// WritePage renders component, falling back to the server error page when
// rendering fails.
func (b Base) WritePage(w http.ResponseWriter, r *http.Request, page webtemplates.PageView, statusCode int, component templ.Component) {
	if err := pagerender.WritePage(w, r, statusCode, component); err != nil {
		log.Printf("render page path=%s err=%v", requestPath(r), err)
		weberror.WritePage(w, r, page, http.StatusInternalServerError)
	}
}

// WriteNotFound renders the localized 404 page.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WritePage(w, r, b.Page(w, r), http.StatusNotFound)
}

// WriteError renders a user-safe error response: localized pages for not
// found and server errors, plain text for everything else.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	if w == nil || err == nil {
		return
	}
	weberror.Write(w, r, b.Page(w, r), err)
}

func requestPath(r *http.Request) string {
	if r == nil || r.URL == nil {
		return ""
	}
	return r.URL.Path
}
