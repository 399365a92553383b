// Package pagerender centralizes landing page rendering for web modules.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"golang.org/x/text/language"

	"github.com/amlsafe/landing/internal/content"
	"github.com/amlsafe/landing/internal/services/web/platform/httpx"
	webi18n "github.com/amlsafe/landing/internal/services/web/platform/i18n"
	"github.com/amlsafe/landing/internal/services/web/routepath"
	webtemplates "github.com/amlsafe/landing/internal/services/web/templates"
)

// Default poster size requested by the first paint. The client replaces the
// poster with the live canvas once it mounts.
const (
	DefaultPosterWidth  = 1280
	DefaultPosterHeight = 720
)

// ContentSource resolves the page copy for a language.
type ContentSource interface {
	Landing(language.Tag) content.Landing
}

// Options controls page chrome shared by every rendered page.
type Options struct {
	// WasmEnabled adds the browser client scripts.
	WasmEnabled bool
	// PosterDisabled drops the server-rendered background poster.
	PosterDisabled bool
	// Now overrides the clock used for the footer year.
	Now func() time.Time
}

// NewPageView resolves the request language, persisting an explicit choice,
// and builds the view shared by the landing and error pages.
func NewPageView(w http.ResponseWriter, r *http.Request, source ContentSource, opts Options) webtemplates.PageView {
	tag := webi18n.Resolve(w, r)
	path, rawQuery := "/", ""
	if r != nil && r.URL != nil {
		path, rawQuery = r.URL.Path, r.URL.RawQuery
	}
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	page := webtemplates.PageView{
		Tag:         tag,
		Languages:   webi18n.LanguageOptions(tag, path, rawQuery),
		Year:        now().Year(),
		WasmEnabled: opts.WasmEnabled,
	}
	if source != nil {
		page.Copy = source.Landing(tag)
	}
	if !opts.PosterDisabled {
		page.PosterURL = routepath.PosterURL(DefaultPosterWidth, DefaultPosterHeight)
	}
	return page
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WritePage renders component fully before writing so a render failure can
// still produce a clean error status.
func WritePage(w http.ResponseWriter, r *http.Request, statusCode int, component templ.Component) error {
	if w == nil {
		return nil
	}
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	if component == nil {
		component = emptyComponent{}
	}
	var buf bytes.Buffer
	if err := component.Render(httpx.RequestContext(r), &buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	if r != nil && r.Method == http.MethodHead {
		return nil
	}
	_, err := w.Write(buf.Bytes())
	return err
}
