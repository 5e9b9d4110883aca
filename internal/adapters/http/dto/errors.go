// Package dto holds the JSON shapes served by the HTTP adapter.
package dto

import "net/http"

// ErrorResponse is the envelope for every JSON error.
type ErrorResponse struct {
	Error   ErrorDetail `json:"error"`
	TraceID string      `json:"traceId,omitempty"`
}

// ErrorDetail describes what went wrong.
type ErrorDetail struct {
	// Code is machine readable, e.g. "NOT_FOUND".
	Code string `json:"code"`

	Message string `json:"message"`

	// Details carries per-field messages for validation failures.
	Details map[string]string `json:"details,omitempty"`
}

const (
	ErrorCodeNotFound         = "NOT_FOUND"
	ErrorCodeValidation       = "VALIDATION_ERROR"
	ErrorCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	ErrorCodeUnavailable      = "SERVICE_UNAVAILABLE"
	ErrorCodeTimeout          = "TIMEOUT"
	ErrorCodeInternal         = "INTERNAL_ERROR"
)

// NewErrorResponse creates an envelope with the given code and message.
func NewErrorResponse(code, message string) *ErrorResponse {
	return &ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	}
}

// WithDetails attaches per-field messages.
func (e *ErrorResponse) WithDetails(details map[string]string) *ErrorResponse {
	e.Error.Details = details
	return e
}

// WithTraceID sets the trace ID when one is known.
func (e *ErrorResponse) WithTraceID(traceID string) *ErrorResponse {
	if traceID != "" {
		e.TraceID = traceID
	}

	return e
}

// HTTPStatusFromCode maps an error code to its HTTP status.
func HTTPStatusFromCode(code string) int {
	switch code {
	case ErrorCodeNotFound:
		return http.StatusNotFound
	case ErrorCodeValidation:
		return http.StatusBadRequest
	case ErrorCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case ErrorCodeUnavailable:
		return http.StatusServiceUnavailable
	case ErrorCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
