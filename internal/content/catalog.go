package content

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// BaseLocale is the locale every catalog set must provide. Lookups for
// unsupported locales fall back to it.
const BaseLocale = "en-US"

// MaxRating is the highest star rating a testimonial may carry.
const MaxRating = 5

//go:embed locales/*.yaml
var embedded embed.FS

// Catalog maps a locale (BCP 47 string, e.g. "pt-BR") to its copy.
type Catalog map[string]Landing

// Locales returns the catalog locales in sorted order.
func (c Catalog) Locales() []string {
	locales := make([]string, 0, len(c))
	for locale := range c {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}

// Embedded returns the catalogs compiled into the binary.
func Embedded() (Catalog, error) {
	sub, err := fs.Sub(embedded, "locales")
	if err != nil {
		return nil, fmt.Errorf("open embedded locales: %w", err)
	}
	return Load(sub)
}

// Load parses every *.yaml file at the root of fsys. The base locale must be
// present.
func Load(fsys fs.FS) (Catalog, error) {
	catalog, err := overlay(Catalog{}, fsys)
	if err != nil {
		return nil, err
	}
	if _, ok := catalog[BaseLocale]; !ok {
		return nil, fmt.Errorf("content: base locale %s missing", BaseLocale)
	}
	return catalog, nil
}

// overlay decodes the catalogs in fsys on top of a copy of base. A file for a
// locale already in base only replaces the fields it sets.
func overlay(base Catalog, fsys fs.FS) (Catalog, error) {
	names, err := fs.Glob(fsys, "*.yaml")
	if err != nil {
		return nil, fmt.Errorf("content: list catalogs: %w", err)
	}
	out := make(Catalog, len(base)+len(names))
	for locale, landing := range base {
		out[locale] = landing
	}
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("content: read %s: %w", name, err)
		}
		locale := strings.TrimSuffix(path.Base(name), ".yaml")
		landing := out[locale]
		if err := yaml.Unmarshal(data, &landing); err != nil {
			return nil, fmt.Errorf("content: parse %s: %w", name, err)
		}
		if err := landing.Validate(locale); err != nil {
			return nil, fmt.Errorf("content: %s: %w", name, err)
		}
		out[locale] = landing
	}
	return out, nil
}

// Validate checks the invariants the page relies on.
func (l Landing) Validate(locale string) error {
	var errs []error
	if l.Locale != locale {
		errs = append(errs, fmt.Errorf("locale %q does not match file name %q", l.Locale, locale))
	}
	if strings.TrimSpace(l.Brand) == "" {
		errs = append(errs, errors.New("brand is required"))
	}
	if len(l.TestimonialItems) == 0 {
		errs = append(errs, errors.New("at least one testimonial is required"))
	}
	for i, item := range l.TestimonialItems {
		if item.Rating < 0 || item.Rating > MaxRating {
			errs = append(errs, fmt.Errorf("testimonial %d rating %d outside 0-%d", i, item.Rating, MaxRating))
		}
	}
	for i, stat := range l.Stats {
		if stat.Value < 0 {
			errs = append(errs, fmt.Errorf("stat %d value %d is negative", i, stat.Value))
		}
	}
	return errors.Join(errs...)
}

// Copyright renders the footer copyright line for year.
func (l Landing) Copyright(year int) string {
	if !strings.Contains(l.Footer.Copyright, "%d") {
		return l.Footer.Copyright
	}
	return fmt.Sprintf(l.Footer.Copyright, year)
}

// IndicatorLabel is the accessible label of the carousel indicator for the
// zero-based testimonial index.
func (l Landing) IndicatorLabel(index int) string {
	if !strings.Contains(l.TestimonialIndicator, "%d") {
		return fmt.Sprintf("%s %d", l.TestimonialIndicator, index+1)
	}
	return fmt.Sprintf(l.TestimonialIndicator, index+1)
}
