package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/amlsafe/landing/internal/carousel"
	"github.com/amlsafe/landing/internal/content"
	"github.com/amlsafe/landing/internal/countup"
	"github.com/amlsafe/landing/internal/reveal"
)

// LandingPage renders the full page: the layout wrapping every section.
func LandingPage(page PageView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return Layout(page).Render(templ.WithChildren(ctx, Sections(page)), w)
	})
}

// Sections renders the page body in document order.
func Sections(page PageView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		hero(h, page)
		stats(h, page)
		features(h, page.Copy)
		howItWorks(h, page.Copy)
		testimonials(h, page)
		chains(h, page.Copy)
		callToAction(h, page.Copy)
		return h.err
	})
}

// revealAttrs marks an element for the fade-in the client runs once it is
// reveal.DefaultThreshold visible.
func (h *htmlWriter) revealAttrs() {
	h.raw(" data-reveal")
	h.attr("data-reveal-threshold", strconv.FormatFloat(reveal.DefaultThreshold, 'f', -1, 64))
}

func sectionHeading(h *htmlWriter, heading content.SectionHeading) {
	h.raw("<div class=\"section-heading\"")
	h.revealAttrs()
	h.raw(">")
	h.elem("span", "badge", heading.Badge)
	h.raw("<h2>")
	h.text(heading.Title)
	if heading.TitleAccent != "" {
		h.raw(" ")
		h.elem("span", "accent", heading.TitleAccent)
	}
	h.raw("</h2>")
	h.elem("p", "section-subtitle", heading.Subtitle)
	h.raw("</div>")
}

func hero(h *htmlWriter, page PageView) {
	c := page.Copy.Hero
	h.raw("<section id=\"product\" class=\"hero\"><div class=\"container hero-grid\"><div class=\"hero-copy\"")
	h.revealAttrs()
	h.raw(">")
	h.raw("<span class=\"badge\">")
	h.icon("shield", "badge-icon")
	h.text(c.Badge)
	h.raw("</span><h1>")
	h.text(c.TitleLead)
	h.raw(" ")
	h.elem("span", "accent", c.TitleAccent)
	h.raw("</h1>")
	h.elem("p", "tagline", c.Tagline)
	h.raw("<div class=\"hero-actions\">")
	h.link("#pricing", "button button-primary", c.PrimaryAction)
	h.link("#how-it-works", "button button-outline", c.SecondaryAction)
	h.raw("</div><p class=\"trusted\">")
	h.text(c.TrustedLead)
	h.raw(" ")
	h.elem("strong", "", countup.Format(page.Tag, c.TrustedCount)+"+")
	h.raw(" ")
	h.text(c.TrustedTail)
	h.raw("</p></div>")
	riskCard(h, c.Card)
	h.raw("</div></section>")
}

// riskCard is decorative; the score is static copy.
func riskCard(h *htmlWriter, card content.RiskCard) {
	h.raw("<div class=\"risk-card\" aria-hidden=\"true\"><div class=\"risk-card-header\">")
	h.elem("span", "risk-card-label", card.Label)
	h.elem("span", "live", card.Live)
	h.raw("</div><div class=\"risk-score\">")
	h.elem("span", "risk-score-value", strconv.Itoa(card.Score))
	h.elem("span", "risk-score-max", "/"+strconv.Itoa(card.ScoreMax))
	h.raw("</div><div class=\"risk-meter\"><span")
	percent := 0
	if card.ScoreMax > 0 {
		percent = card.Score * 100 / card.ScoreMax
	}
	h.attr("style", "width:"+strconv.Itoa(percent)+"%")
	h.raw("></span></div><ul class=\"risk-checks\">")
	for _, check := range card.Checks {
		h.raw("<li class=\"risk-check\">")
		h.icon(check.Icon, "risk-check-icon")
		h.raw("<div>")
		h.elem("span", "risk-check-asset", check.Asset)
		h.elem("code", "risk-check-address", check.Address)
		h.raw("</div>")
		h.elem("span", "risk-level risk-level-"+check.Level, check.Label)
		h.raw("</li>")
	}
	h.raw("</ul>")
	h.raw("<span class=\"button button-block\">")
	h.text(card.ReportAction)
	h.raw("</span></div>")
}

func stats(h *htmlWriter, page PageView) {
	h.raw("<section class=\"stats\"><div class=\"container stats-grid\">")
	for _, stat := range page.Copy.Stats {
		h.raw("<div class=\"stat\"")
		h.revealAttrs()
		h.raw(">")
		h.icon(stat.Icon, "stat-icon")
		h.raw("<span class=\"stat-value\"")
		h.intAttr("data-countup", stat.Value)
		h.attr("data-countup-ms", strconv.FormatInt(countup.DefaultDuration.Milliseconds(), 10))
		h.attr("data-locale", page.Lang())
		h.raw(">")
		h.text(countup.Format(page.Tag, stat.Value))
		h.raw("</span><span class=\"stat-suffix\">+</span>")
		h.elem("p", "stat-label", stat.Label)
		h.raw("</div>")
	}
	h.raw("</div></section>")
}

func features(h *htmlWriter, c content.Landing) {
	h.raw("<section id=\"features\" class=\"features\"><div class=\"container\">")
	sectionHeading(h, c.Features)
	h.raw("<div class=\"feature-grid\">")
	for _, item := range c.FeatureItems {
		h.raw("<article class=\"feature-card\"")
		h.revealAttrs()
		h.raw(">")
		h.icon(item.Icon, "feature-icon")
		h.elem("h3", "", item.Title)
		h.elem("p", "", item.Description)
		h.raw("</article>")
	}
	h.raw("</div></div></section>")
}

func howItWorks(h *htmlWriter, c content.Landing) {
	h.raw("<section id=\"how-it-works\" class=\"steps\"><div class=\"container\">")
	sectionHeading(h, c.Steps)
	h.raw("<ol class=\"step-list\">")
	for _, step := range c.StepItems {
		h.raw("<li class=\"step\"")
		h.revealAttrs()
		h.raw(">")
		h.elem("span", "step-number", strconv.Itoa(step.Number))
		h.elem("h3", "", step.Title)
		h.elem("p", "", step.Description)
		h.raw("</li>")
	}
	h.raw("</ol></div></section>")
}

func testimonials(h *htmlWriter, page PageView) {
	c := page.Copy
	active := page.ActiveTestimonial
	if active < 0 || active >= len(c.TestimonialItems) {
		active = 0
	}
	h.raw("<section id=\"testimonials\" class=\"testimonials\"><div class=\"container\">")
	sectionHeading(h, c.Testimonials)
	h.raw("<div class=\"carousel\" data-carousel")
	h.attr("data-interval-ms", strconv.FormatInt(carousel.DefaultInterval.Milliseconds(), 10))
	h.raw(">")
	for i, item := range c.TestimonialItems {
		h.raw("<figure")
		class := "testimonial"
		if i == active {
			class += " active"
		}
		h.attr("class", class)
		h.intAttr("data-testimonial", i)
		if i != active {
			h.attr("aria-hidden", "true")
		}
		h.raw(">")
		h.icon("quote", "quote-icon")
		h.raw("<div class=\"rating\"")
		h.attr("aria-label", strconv.Itoa(item.Rating)+"/"+strconv.Itoa(content.MaxRating))
		h.raw(">")
		for star := 0; star < content.MaxRating; star++ {
			class := "star"
			if star < item.Rating {
				class += " filled"
			}
			h.icon("star", class)
		}
		h.raw("</div>")
		h.elem("blockquote", "", item.Quote)
		h.raw("<figcaption>")
		h.elem("span", "author", item.Author)
		h.elem("span", "position", item.Position)
		h.raw("</figcaption></figure>")
	}
	h.raw("<div class=\"carousel-indicators\">")
	for i := range c.TestimonialItems {
		h.raw("<button type=\"button\"")
		class := "indicator"
		if i == active {
			class += " active"
		}
		h.attr("class", class)
		h.intAttr("data-testimonial-select", i)
		h.attr("aria-label", c.IndicatorLabel(i))
		if i == active {
			h.attr("aria-current", "true")
		}
		h.raw("></button>")
	}
	h.raw("</div></div></div></section>")
}

func chains(h *htmlWriter, c content.Landing) {
	h.raw("<section id=\"chains\" class=\"chains\"><div class=\"container\">")
	sectionHeading(h, c.Chains)
	h.raw("<ul class=\"chain-grid\">")
	for _, chain := range c.ChainItems {
		h.raw("<li class=\"chain\"")
		h.revealAttrs()
		h.raw(">")
		if chain.Icon != "" {
			h.icon(chain.Icon, "chain-icon")
		} else {
			h.elem("span", "chain-symbol", chain.Symbol)
		}
		h.elem("span", "chain-name", chain.Name)
		h.raw("</li>")
	}
	h.raw("</ul></div></section>")
}

func callToAction(h *htmlWriter, c content.Landing) {
	h.raw("<section id=\"pricing\" class=\"cta\"><div class=\"container cta-card\"")
	h.revealAttrs()
	h.raw("><h2>")
	h.text(c.CTA.Title)
	h.raw(" ")
	h.elem("span", "accent", c.CTA.TitleAccent)
	h.raw("</h2>")
	h.elem("p", "", c.CTA.Body)
	h.raw("<div class=\"cta-actions\">")
	h.link("#pricing", "button button-primary", c.CTA.PrimaryAction)
	h.link("#pricing", "button button-outline", c.CTA.SecondaryAction)
	h.raw("</div></div></section>")
}
