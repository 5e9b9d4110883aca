package dto

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/web3infra-foundation/mda-site/internal/domain"
	"github.com/web3infra-foundation/mda-site/internal/platform/logging"
)

// TraceID returns the trace ID of the active span in ctx, or "".
func TraceID(ctx context.Context) string {
	if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
		return sc.TraceID().String()
	}

	return ""
}

// MapDomainError maps err to a status and envelope. Unknown errors become a
// generic 500 so internals never leak.
func MapDomainError(err error) (int, *ErrorResponse) {
	switch {
	case domain.IsNotFound(err):
		return http.StatusNotFound, NewErrorResponse(ErrorCodeNotFound, err.Error())

	case domain.IsValidation(err):
		resp := NewErrorResponse(ErrorCodeValidation, err.Error())

		var ve *domain.ValidationError
		if errors.As(err, &ve) && ve.Field != "" {
			resp.WithDetails(map[string]string{ve.Field: ve.Message})
		}

		return http.StatusBadRequest, resp

	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, NewErrorResponse(ErrorCodeTimeout, "request timeout exceeded")

	case domain.IsUnavailable(err):
		return http.StatusServiceUnavailable, NewErrorResponse(ErrorCodeUnavailable, err.Error())

	default:
		return http.StatusInternalServerError, NewErrorResponse(ErrorCodeInternal, "an internal error occurred")
	}
}

// HandleError aborts the request with the JSON envelope for err. Server-side
// failures are logged with the request logger.
func HandleError(c *gin.Context, err error) {
	ctx := c.Request.Context()
	status, resp := MapDomainError(err)
	resp.WithTraceID(TraceID(ctx))

	if status >= http.StatusInternalServerError {
		logging.FromContext(ctx).ErrorContext(ctx, "request failed",
			slog.Any("error", err),
			slog.Int("status", status),
		)
	}

	c.AbortWithStatusJSON(status, resp)
}

// AbortWithCode aborts the request with an envelope for code.
func AbortWithCode(c *gin.Context, code, message string) {
	resp := NewErrorResponse(code, message).WithTraceID(TraceID(c.Request.Context()))
	c.AbortWithStatusJSON(HTTPStatusFromCode(code), resp)
}
