// Package app contains the application services behind the HTTP and CLI
// adapters.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/web3infra-foundation/mda-site/internal/domain"
	"github.com/web3infra-foundation/mda-site/internal/platform/logging"
	"github.com/web3infra-foundation/mda-site/internal/ports"
)

// landingCheckName identifies the landing page in readiness reports.
const landingCheckName = "landing_page"

// PageService serves the landing page content. It holds no mutable state
// and is safe for concurrent use.
type PageService struct {
	renderer ports.PageRenderer
	intro    domain.Intro
}

// PageServiceConfig contains the dependencies of a PageService.
type PageServiceConfig struct {
	Renderer ports.PageRenderer

	// Intro is the hero content. The zero value means domain.DefaultIntro().
	Intro domain.Intro
}

// NewPageService creates a PageService.
func NewPageService(cfg PageServiceConfig) *PageService {
	intro := cfg.Intro
	if intro.Title == "" && len(intro.Links) == 0 {
		intro = domain.DefaultIntro()
	}

	return &PageService{
		renderer: cfg.Renderer,
		intro:    intro,
	}
}

// Intro returns a copy of the hero content.
func (s *PageService) Intro(_ context.Context) domain.Intro {
	intro := s.intro
	intro.Links = slices.Clone(s.intro.Links)

	return intro
}

// RenderLanding streams the landing page into w. A failed render may leave
// partial output in w; the HTTP and CLI callers pass a buffer and discard it
// on error.
func (s *PageService) RenderLanding(ctx context.Context, w io.Writer) error {
	logger := logging.FromContext(ctx)

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", domain.NewUnavailableError(landingCheckName, "request ended before render"), err)
	}

	if err := s.renderer.RenderLanding(ctx, w, s.Intro(ctx)); err != nil {
		logger.ErrorContext(ctx, "landing page render failed", slog.Any("error", err))
		return fmt.Errorf("render landing page: %w", err)
	}

	logger.Log(ctx, logging.LevelTrace, "landing page rendered", slog.Int("links", len(s.intro.Links)))

	return nil
}

// Name implements ports.HealthChecker.
func (s *PageService) Name() string {
	return landingCheckName
}

// Check implements ports.HealthChecker by rendering the page once.
func (s *PageService) Check(ctx context.Context) error {
	return s.RenderLanding(ctx, io.Discard)
}

var _ ports.HealthChecker = (*PageService)(nil)
