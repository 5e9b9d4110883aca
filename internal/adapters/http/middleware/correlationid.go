package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/web3infra-foundation/mda-site/internal/platform/logging"
)

const (
	// HeaderCorrelationID tracks a visitor flow across services, unlike
	// X-Request-ID which is per request.
	HeaderCorrelationID = "X-Correlation-ID"

	// ContextKeyCorrelationID is the gin context key for the correlation ID.
	ContextKeyCorrelationID = "correlation_id"
)

// CorrelationID returns middleware that propagates or originates
// X-Correlation-ID.
func CorrelationID() gin.HandlerFunc {
	return createIDMiddleware(idMiddlewareConfig{
		headerName: HeaderCorrelationID,
		contextKey: ContextKeyCorrelationID,
		enrichers: []func(context.Context, string) context.Context{
			ContextWithCorrelationID,
			logging.WithCorrelationID,
		},
	})
}

// GetCorrelationID returns the correlation ID from the gin context, or "".
func GetCorrelationID(c *gin.Context) string {
	return getIDFromContext(c, ContextKeyCorrelationID)
}

