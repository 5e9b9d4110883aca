package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/web3infra-foundation/mda-site/internal/platform/logging"
)

// healthPrefix marks probe endpoints, which are not logged.
const healthPrefix = "/-/"

// Logging returns middleware that logs each request on completion with the
// request-scoped logger. Paths in skipPaths and every path under /-/ are
// left out.
func Logging(skipPaths ...string) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if _, ok := skip[path]; ok || strings.HasPrefix(path, healthPrefix) {
			c.Next()
			return
		}

		start := time.Now()

		if c.Request.URL.RawQuery != "" {
			path += "?" + c.Request.URL.RawQuery
		}

		logger := logging.FromContext(c.Request.Context())
		logger.Log(c.Request.Context(), logging.LevelTrace, "request started",
			slog.String("method", c.Request.Method),
			slog.String("path", path),
		)

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		logger.Log(c.Request.Context(), levelForStatus(status), "request completed",
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.Int("status", status),
			slog.Duration("latency", latency),
			slog.Int("bytes", c.Writer.Size()),
			slog.String("client_ip", c.ClientIP()),
			slog.String("user_agent", c.Request.UserAgent()),
		)
	}
}

func levelForStatus(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
