package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/web3infra-foundation/mda-site/internal/adapters/http/dto"
	"github.com/web3infra-foundation/mda-site/internal/adapters/http/view"
	"github.com/web3infra-foundation/mda-site/internal/platform/logging"
)

const internalErrorMessage = "an internal error occurred"

// Recovery returns middleware that turns a panic into a logged 500.
// Browsers get the HTML error page, everything else the JSON envelope.
// Install it first so it wraps the whole chain.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}

			ctx := c.Request.Context()
			traceID := dto.TraceID(ctx)

			logging.FromContext(ctx).Error("panic recovered",
				slog.String("error", fmt.Sprint(r)),
				slog.String("stack", string(debug.Stack())),
				slog.String("method", c.Request.Method),
				slog.String("path", c.Request.URL.Path),
				slog.String("trace_id", traceID),
			)

			if c.Writer.Written() {
				c.Abort()
				return
			}

			if WantsHTML(c) {
				RenderErrorPage(c, http.StatusInternalServerError, internalErrorMessage)
				return
			}

			c.AbortWithStatusJSON(http.StatusInternalServerError,
				dto.NewErrorResponse(dto.ErrorCodeInternal, internalErrorMessage).WithTraceID(traceID))
		}()

		c.Next()
	}
}

// RenderErrorPage aborts c with the HTML error page for status. The page
// quotes the request ID; a failed write is logged with the request logger.
func RenderErrorPage(c *gin.Context, status int, message string) {
	c.Status(status)
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Abort()

	if err := view.ErrorPage(status, message, MustGetRequestID(c)).Render(c.Writer); err != nil {
		ctx := c.Request.Context()
		logging.FromContext(ctx).WarnContext(ctx, "error page write failed",
			slog.Any("error", err),
			slog.Int("status", status),
		)
	}
}

// WantsHTML reports whether the client prefers an HTML response. API routes
// always answer JSON.
func WantsHTML(c *gin.Context) bool {
	if isAPIPath(c.Request.URL.Path) {
		return false
	}

	return c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEHTML
}

func isAPIPath(path string) bool {
	return strings.HasPrefix(path, "/api/")
}
