package landing

import (
	"github.com/amlsafe/landing/internal/carousel"
	apperrors "github.com/amlsafe/landing/internal/services/web/platform/errors"
	"github.com/amlsafe/landing/internal/services/web/platform/pagerender"
	webtemplates "github.com/amlsafe/landing/internal/services/web/templates"
)

type service struct {
	source pagerender.ContentSource
}

func newService(source pagerender.ContentSource) service {
	return service{source: source}
}

// prepare checks the resolved copy can fill the page and sets first paint
// state.
func (s service) prepare(page webtemplates.PageView) (webtemplates.PageView, error) {
	if s.source == nil || page.Copy.Brand == "" {
		return page, apperrors.E(apperrors.KindUnavailable, "landing copy is not loaded")
	}
	rotation, err := carousel.New(len(page.Copy.TestimonialItems))
	if err != nil {
		return page, apperrors.Wrap(apperrors.KindUnavailable, "landing copy has no testimonials", err)
	}
	page.ActiveTestimonial = rotation.Active()
	return page, nil
}
