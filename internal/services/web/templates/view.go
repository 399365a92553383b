// Package templates renders the landing page as templ components.
package templates

import (
	"github.com/amlsafe/landing/internal/content"
	webi18n "github.com/amlsafe/landing/internal/services/web/platform/i18n"
	"golang.org/x/text/language"
)

// PageView is everything the page layout and sections need for one render.
type PageView struct {
	Tag       language.Tag
	Copy      content.Landing
	Languages []webi18n.LanguageOption
	Year      int
	// PosterURL is painted behind the particle canvas until the client
	// takes over. Empty disables it.
	PosterURL string
	// WasmEnabled adds the browser client scripts.
	WasmEnabled bool
	// ActiveTestimonial is the testimonial shown on first paint.
	ActiveTestimonial int
}

// Lang returns the value of the html lang attribute.
func (p PageView) Lang() string {
	if p.Tag == language.Und {
		return "en-US"
	}
	return p.Tag.String()
}

// Title returns the document title.
func (p PageView) Title() string {
	if p.Copy.Meta.Title != "" {
		return p.Copy.Meta.Title
	}
	return p.Copy.Brand
}

// ErrorView describes an error page.
type ErrorView struct {
	Page       PageView
	StatusCode int
	Heading    string
	Message    string
	Action     string
}
