// Package content holds the localized copy rendered on the landing page.
//
// Each locale is one YAML catalog under locales/<locale>.yaml. The embedded
// catalogs ship with the binary; an override directory with the same layout
// can replace them at runtime (see Store).
package content

// Link is a labelled navigation target.
type Link struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

// Meta carries document head values.
type Meta struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// SectionHeading is the badge/title/subtitle block above a section.
type SectionHeading struct {
	Badge       string `yaml:"badge"`
	Title       string `yaml:"title"`
	TitleAccent string `yaml:"title_accent"`
	Subtitle    string `yaml:"subtitle"`
}

// Hero is the first screen of the page.
type Hero struct {
	Badge           string   `yaml:"badge"`
	TitleLead       string   `yaml:"title_lead"`
	TitleAccent     string   `yaml:"title_accent"`
	Tagline         string   `yaml:"tagline"`
	PrimaryAction   string   `yaml:"primary_action"`
	SecondaryAction string   `yaml:"secondary_action"`
	TrustedCount    int      `yaml:"trusted_count"`
	TrustedLead     string   `yaml:"trusted_lead"`
	TrustedTail     string   `yaml:"trusted_tail"`
	Card            RiskCard `yaml:"card"`
}

// RiskCard is the decorative risk report shown in the hero. Its values are
// static copy.
type RiskCard struct {
	Live         string      `yaml:"live"`
	Label        string      `yaml:"label"`
	Score        int         `yaml:"score"`
	ScoreMax     int         `yaml:"score_max"`
	Checks       []RiskCheck `yaml:"checks"`
	ReportAction string      `yaml:"report_action"`
}

// RiskCheck is one row of the risk card.
type RiskCheck struct {
	Asset   string `yaml:"asset"`
	Icon    string `yaml:"icon"`
	Address string `yaml:"address"`
	Level   string `yaml:"level"`
	Label   string `yaml:"label"`
}

// Stat is one animated counter.
type Stat struct {
	Icon  string `yaml:"icon"`
	Value int    `yaml:"value"`
	Label string `yaml:"label"`
}

// Feature is one feature card.
type Feature struct {
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Step is one entry of the "how it works" sequence.
type Step struct {
	Number      int    `yaml:"number"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Testimonial is one client quote.
type Testimonial struct {
	Quote    string `yaml:"quote"`
	Author   string `yaml:"author"`
	Position string `yaml:"position"`
	Rating   int    `yaml:"rating"`
}

// Chain is one supported blockchain.
type Chain struct {
	Name   string `yaml:"name"`
	Symbol string `yaml:"symbol"`
	Icon   string `yaml:"icon"`
}

// CallToAction is the closing banner.
type CallToAction struct {
	Title           string `yaml:"title"`
	TitleAccent     string `yaml:"title_accent"`
	Body            string `yaml:"body"`
	PrimaryAction   string `yaml:"primary_action"`
	SecondaryAction string `yaml:"secondary_action"`
}

// FooterColumn is one link column in the footer.
type FooterColumn struct {
	Title string `yaml:"title"`
	Links []Link `yaml:"links"`
}

// Footer is the page footer.
type Footer struct {
	Tagline   string         `yaml:"tagline"`
	Socials   []Link         `yaml:"socials"`
	Columns   []FooterColumn `yaml:"columns"`
	Copyright string         `yaml:"copyright"`
	Legal     []Link         `yaml:"legal"`
}

// Landing is the full copy of the page for one locale.
type Landing struct {
	Locale               string         `yaml:"locale"`
	Brand                string         `yaml:"brand"`
	Meta                 Meta           `yaml:"meta"`
	Nav                  []Link         `yaml:"nav"`
	GetStarted           string         `yaml:"get_started"`
	Hero                 Hero           `yaml:"hero"`
	Stats                []Stat         `yaml:"stats"`
	Features             SectionHeading `yaml:"features"`
	FeatureItems         []Feature      `yaml:"feature_items"`
	Steps                SectionHeading `yaml:"steps"`
	StepItems            []Step         `yaml:"step_items"`
	Testimonials         SectionHeading `yaml:"testimonials"`
	TestimonialItems     []Testimonial  `yaml:"testimonial_items"`
	TestimonialIndicator string         `yaml:"testimonial_indicator"`
	Chains               SectionHeading `yaml:"chains"`
	ChainItems           []Chain        `yaml:"chain_items"`
	CTA                  CallToAction   `yaml:"cta"`
	Footer               Footer         `yaml:"footer"`
	NotFoundTitle        string         `yaml:"not_found_title"`
	NotFoundBody         string         `yaml:"not_found_body"`
	NotFoundAction       string         `yaml:"not_found_action"`
	ServerErrorTitle     string         `yaml:"server_error_title"`
	ServerErrorBody      string         `yaml:"server_error_body"`
}
