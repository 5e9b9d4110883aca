package site

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/web3infra-foundation/mda-site/internal/platform/config"
)

func TestProfile(t *testing.T) {
	t.Setenv("APP_ENVIRONMENT", "")
	assert.Equal(t, DefaultProfile, Profile())

	t.Setenv("APP_ENVIRONMENT", "prod")
	assert.Equal(t, "prod", Profile())
}

func TestLoadConfig(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("test")
	require.NoError(t, err)
	assert.Equal(t, "#", cfg.Site.DocsURL)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_SITE_DOCS_URL", "javascript:alert(1)")

	_, err := LoadConfig("test")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestLoggingConfig(t *testing.T) {
	cfg := &config.Config{
		App: config.AppConfig{Name: "mda-site", Version: "1.0.0"},
		Log: config.LogConfig{
			Level:  "debug",
			Format: "pretty",
			File:   config.LogFileConfig{Enabled: true, Path: "/tmp/mda.log", MaxSizeMB: 5},
		},
	}

	lc := LoggingConfig(cfg)

	assert.Equal(t, "debug", lc.Level)
	assert.Equal(t, "pretty", lc.Format)
	assert.Equal(t, "mda-site", lc.Service)
	assert.Equal(t, "1.0.0", lc.Version)
	assert.True(t, lc.File.Enabled)
	assert.Equal(t, "/tmp/mda.log", lc.File.Path)
	assert.Equal(t, 5, lc.File.MaxSizeMB)
}

func TestPageService(t *testing.T) {
	svc := PageService(&config.SiteConfig{
		Title:        "MDA docs",
		DocsURL:      "https://mda.example.org/docs",
		SignUpAction: "/subscribe",
	})

	intro := svc.Intro(context.Background())
	require.Len(t, intro.Links, 3)
	assert.Equal(t, "https://mda.example.org/docs", intro.Links[0].Href)

	var buf bytes.Buffer
	require.NoError(t, svc.RenderLanding(context.Background(), &buf))
	assert.Contains(t, buf.String(), "<title>MDA docs</title>")
	assert.Contains(t, buf.String(), `action="/subscribe"`)
}
