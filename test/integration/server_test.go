//go:build integration

package integration

import (
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	httpadapter "github.com/web3infra-foundation/mda-site/internal/adapters/http"
	"github.com/web3infra-foundation/mda-site/internal/adapters/http/handlers"
	"github.com/web3infra-foundation/mda-site/internal/platform/config"
	"github.com/web3infra-foundation/mda-site/internal/ports"
	"github.com/web3infra-foundation/mda-site/internal/site"
)

// newSiteHandler wires the site exactly like cmd/service, with default
// configuration.
func newSiteHandler(t testing.TB) http.Handler {
	t.Helper()

	pages := site.PageService(&config.SiteConfig{DocsURL: "#"})

	registry := ports.NewHealthRegistry()
	require.NoError(t, registry.Register(pages))

	srv := httpadapter.New(&config.ServerConfig{
		Host:           "127.0.0.1",
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   5 * time.Second,
		IdleTimeout:    30 * time.Second,
		MaxRequestSize: config.DefaultMaxRequestSize,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	httpadapter.SetupRouter(srv.Engine(), httpadapter.RouterConfig{
		ServiceName:    "mda-site",
		LandingHandler: handlers.NewLandingHandler(pages),
		HealthHandler:  handlers.NewHealthHandler(registry, handlers.NewBuildInfo("integration", "none", "now")),
		RequestTimeout: config.DefaultRequestTimeout,
	})

	return srv.Engine()
}
