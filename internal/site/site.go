// Package site assembles the landing page components from configuration.
// Both the HTTP service and the render CLI start here.
package site

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/web3infra-foundation/mda-site/internal/adapters/http/view"
	"github.com/web3infra-foundation/mda-site/internal/app"
	"github.com/web3infra-foundation/mda-site/internal/domain"
	"github.com/web3infra-foundation/mda-site/internal/platform/config"
	"github.com/web3infra-foundation/mda-site/internal/platform/logging"
)

// DefaultProfile is used when APP_ENVIRONMENT is unset.
const DefaultProfile = "local"

// Profile returns the configuration profile named by APP_ENVIRONMENT.
func Profile() string {
	if p := os.Getenv("APP_ENVIRONMENT"); p != "" {
		return p
	}

	return DefaultProfile
}

// LoadConfig loads and validates the configuration for profile.
func LoadConfig(profile string) (*config.Config, error) {
	cfg, err := config.Load(profile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// LoggingConfig maps the log section onto the logging package.
func LoggingConfig(cfg *config.Config) *logging.Config {
	return &logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	}
}

// Logger builds the process logger and installs it as the default.
func Logger(cfg *config.Config) *slog.Logger {
	logger := logging.New(LoggingConfig(cfg))
	logging.SetDefault(logger)

	return logger
}

// PageConfig maps the site section onto the document metadata.
func PageConfig(cfg *config.SiteConfig) view.PageConfig {
	return view.PageConfig{
		Title:       cfg.Title,
		Description: cfg.Description,
		OGImage:     cfg.OGImage,
	}
}

// PageService builds the landing page service for cfg.
func PageService(cfg *config.SiteConfig) *app.PageService {
	return app.NewPageService(app.PageServiceConfig{
		Renderer: view.NewRenderer(PageConfig(cfg), view.NewSignUpForm(cfg.SignUpAction)),
		Intro:    domain.NewIntro(cfg.DocsURL),
	})
}
