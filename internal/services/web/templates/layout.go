package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/amlsafe/landing/internal/services/web/routepath"
)

// ParticleCanvasID is the id of the full-viewport particle canvas.
const ParticleCanvasID = "particle-field"

// Layout renders the document shell around the context children: head,
// particle canvas, header and footer.
func Layout(page PageView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw("<!doctype html><html")
		h.attr("lang", page.Lang())
		h.raw("><head><meta charset=\"utf-8\"><meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">")
		h.elem("title", "", page.Title())
		if page.Copy.Meta.Description != "" {
			h.raw("<meta name=\"description\"")
			h.attr("content", page.Copy.Meta.Description)
			h.raw(">")
		}
		h.raw("<link rel=\"stylesheet\"")
		h.attr("href", routepath.LandingCSS)
		h.raw("></head><body>")

		particleCanvas(h, page)
		header(h, page)
		if h.err != nil {
			return h.err
		}
		h.raw("<main>")
		if h.err != nil {
			return h.err
		}
		if err := templ.GetChildren(ctx).Render(ctx, w); err != nil {
			return err
		}
		h.raw("</main>")
		footer(h, page)

		if page.WasmEnabled {
			h.raw("<script")
			h.attr("src", routepath.WasmExec)
			h.raw("></script><script")
			h.attr("src", routepath.LandingJS)
			h.attr("data-wasm", routepath.WasmBinary)
			h.raw(" defer></script>")
		}
		h.raw("</body></html>")
		return h.err
	})
}

// particleCanvas sits behind all content and ignores pointer events.
func particleCanvas(h *htmlWriter, page PageView) {
	h.raw("<canvas")
	h.attr("id", ParticleCanvasID)
	h.attr("class", "particle-field")
	h.attr("aria-hidden", "true")
	if page.PosterURL != "" {
		h.attr("data-poster", page.PosterURL)
		h.attr("style", "background-image:url('"+page.PosterURL+"')")
	}
	h.raw("></canvas>")
}

func header(h *htmlWriter, page PageView) {
	c := page.Copy
	h.raw("<header class=\"site-header\"><div class=\"container header-row\">")
	brand(h, c.Brand)
	h.raw("<nav class=\"site-nav\" aria-label=\"Primary\">")
	for _, item := range c.Nav {
		h.link(item.Href, "nav-link", item.Label)
	}
	h.raw("</nav><div class=\"header-actions\">")
	if len(page.Languages) > 0 {
		h.raw("<ul class=\"language-switcher\">")
		for _, option := range page.Languages {
			h.raw("<li>")
			h.raw("<a")
			h.attr("href", option.URL)
			h.attr("hreflang", option.Tag)
			if option.Active {
				h.attr("class", "active")
				h.attr("aria-current", "true")
			}
			h.raw(">")
			h.text(option.Label)
			h.raw("</a></li>")
		}
		h.raw("</ul>")
	}
	h.link("#pricing", "button button-primary", c.GetStarted)
	h.raw("</div></div></header>")
}

func brand(h *htmlWriter, name string) {
	h.raw("<a href=\"/\" class=\"brand\">")
	h.icon("shield", "brand-icon")
	h.elem("span", "brand-name", name)
	h.raw("</a>")
}

func footer(h *htmlWriter, page PageView) {
	c := page.Copy
	h.raw("<footer class=\"site-footer\"><div class=\"container footer-grid\"><div class=\"footer-brand\">")
	brand(h, c.Brand)
	h.elem("p", "footer-tagline", c.Footer.Tagline)
	h.raw("<ul class=\"socials\">")
	for _, social := range c.Footer.Socials {
		h.raw("<li>")
		h.link(social.Href, "social-link", social.Label)
		h.raw("</li>")
	}
	h.raw("</ul></div>")
	for _, column := range c.Footer.Columns {
		h.raw("<div class=\"footer-column\">")
		h.elem("h3", "", column.Title)
		h.raw("<ul>")
		for _, item := range column.Links {
			h.raw("<li>")
			h.link(item.Href, "", item.Label)
			h.raw("</li>")
		}
		h.raw("</ul></div>")
	}
	h.raw("</div><div class=\"container footer-bottom\">")
	h.elem("p", "copyright", c.Copyright(page.Year))
	h.raw("<ul class=\"legal\">")
	for _, item := range c.Footer.Legal {
		h.raw("<li>")
		h.link(item.Href, "", item.Label)
		h.raw("</li>")
	}
	h.raw("</ul></div></footer>")
}
