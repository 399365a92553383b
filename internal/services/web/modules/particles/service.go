package particles

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/amlsafe/landing/internal/particlefield/raster"
	apperrors "github.com/amlsafe/landing/internal/services/web/platform/errors"
	"github.com/amlsafe/landing/internal/services/web/platform/pagerender"
)

type service struct {
	posters  PosterSource
	observer PosterObserver
}

func newService(posters PosterSource, observer PosterObserver) service {
	return service{posters: posters, observer: observer}
}

// poster resolves the requested size and returns the encoded poster. A busy
// renderer, a timeout or a cancelled render is reported as unavailable.
func (s service) poster(ctx context.Context, rawWidth, rawHeight string) (raster.Rendered, error) {
	if s.posters == nil {
		return raster.Rendered{}, apperrors.E(apperrors.KindUnavailable, "poster rendering is not configured")
	}
	width, err := parseExtent("width", rawWidth, pagerender.DefaultPosterWidth)
	if err != nil {
		return raster.Rendered{}, err
	}
	height, err := parseExtent("height", rawHeight, pagerender.DefaultPosterHeight)
	if err != nil {
		return raster.Rendered{}, err
	}

	rendered, err := s.posters.Poster(ctx, width, height)
	switch {
	case errors.Is(err, raster.ErrRenderBusy):
		return raster.Rendered{}, apperrors.Wrap(apperrors.KindUnavailable, "poster renderer is busy", err)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return raster.Rendered{}, apperrors.Wrap(apperrors.KindUnavailable, "poster render timed out", err)
	case err != nil:
		return raster.Rendered{}, apperrors.Wrap(apperrors.KindUnknown, "render poster", err)
	}
	if s.observer != nil {
		s.observer.ObservePoster(rendered.Cached)
	}
	return rendered, nil
}

func parseExtent(name, raw string, fallback int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.KindInvalidInput, name+" must be an integer", err)
	}
	if v <= 0 {
		return 0, apperrors.E(apperrors.KindInvalidInput, name+" must be positive")
	}
	return v, nil
}
