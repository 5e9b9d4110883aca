package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/web3infra-foundation/mda-site/internal/adapters/http/handlers"
	"github.com/web3infra-foundation/mda-site/internal/adapters/http/middleware"
	"github.com/web3infra-foundation/mda-site/internal/platform/telemetry"
)

// RouterConfig holds what SetupRouter mounts.
type RouterConfig struct {
	// ServiceName names the server spans.
	ServiceName string

	LandingHandler *handlers.LandingHandler
	HealthHandler  *handlers.HealthHandler

	// RequestTimeout bounds the page and API handlers. Zero disables it.
	RequestTimeout time.Duration

	// Telemetry mounts the tracing and metrics middleware.
	Telemetry bool
}

// SetupRouter installs middleware and routes on engine.
//
// Middleware order: Recovery, RequestID, CorrelationID, telemetry (when
// enabled), Logging. Probes live under /-/ without a timeout; the page and
// /api/v1 share RequestTimeout. Unknown routes answer 404 and wrong methods
// 405, both with the JSON envelope.
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.CorrelationID(),
	)

	if cfg.Telemetry {
		engine.Use(telemetry.Middleware(cfg.ServiceName)...)
	}

	engine.Use(middleware.Logging())

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterRoutes(engine)
	}

	site := engine.Group("")
	if cfg.RequestTimeout > 0 {
		site.Use(middleware.Timeout(cfg.RequestTimeout))
	}

	if cfg.LandingHandler != nil {
		cfg.LandingHandler.RegisterRoutes(site)
	}

	engine.HandleMethodNotAllowed = true
	engine.NoMethod(methodNotAllowed)
	engine.NoRoute(notFound)
}
