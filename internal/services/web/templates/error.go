package templates

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/a-h/templ"

	"github.com/amlsafe/landing/internal/services/web/routepath"
)

// ErrorPage renders a localized error inside the page layout.
func ErrorPage(view ErrorView) templ.Component {
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw("<section class=\"error-page\"><div class=\"container\">")
		h.elem("span", "badge", strconv.Itoa(view.StatusCode))
		h.elem("h1", "", view.Heading)
		h.elem("p", "", view.Message)
		if view.Action != "" {
			h.link(routepath.Root, "button button-primary", view.Action)
		}
		h.raw("</div></section>")
		return h.err
	})
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return Layout(view.Page).Render(templ.WithChildren(ctx, body), w)
	})
}

// NewErrorView picks the localized copy for status.
func NewErrorView(page PageView, status int) ErrorView {
	view := ErrorView{Page: page, StatusCode: status}
	c := page.Copy
	if status == http.StatusNotFound {
		view.Heading = c.NotFoundTitle
		view.Message = c.NotFoundBody
		view.Action = c.NotFoundAction
	} else {
		view.Heading = c.ServerErrorTitle
		view.Message = c.ServerErrorBody
	}
	if view.Heading == "" {
		view.Heading = http.StatusText(status)
	}
	view.Page.Copy.Meta.Title = view.Heading + " | " + c.Brand
	return view
}
