package httpx

import (
	"fmt"
	"net/http"
)

// Error codes surfaced to clients. Every failure in the API maps to
// exactly one of these.
const (
	CodeNotConfigured = "NOT_CONFIGURED"
	CodeUpstreamError = "UPSTREAM_ERROR"
	CodeRateLimited   = "RATE_LIMITED"
	CodeBadRequest    = "BAD_REQUEST"
	CodeInternalError = "INTERNAL_ERROR"
	CodeNotFound      = "NOT_FOUND"
)

// APIError is the only error representation returned to clients.
type APIError struct {
	Status  int         `json:"status"`
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NotConfigured reports a missing provider credential.
func NotConfigured(message string) *APIError {
	return &APIError{Status: http.StatusNotImplemented, Code: CodeNotConfigured, Message: message}
}

// Upstream reports a third-party API failure. A non-HTTP status falls
// back to 502.
func Upstream(status int, message string) *APIError {
	if status < 100 || status > 599 {
		status = http.StatusBadGateway
	}
	return &APIError{Status: status, Code: CodeUpstreamError, Message: message}
}

// RateLimited reports an exhausted per-client quota.
func RateLimited() *APIError {
	return &APIError{Status: http.StatusTooManyRequests, Code: CodeRateLimited, Message: "Rate limit exceeded"}
}

// BadRequest reports a missing or invalid request parameter.
func BadRequest(message string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Code: CodeBadRequest, Message: message}
}

// Internal reports an unexpected failure.
func Internal(message string) *APIError {
	return &APIError{Status: http.StatusInternalServerError, Code: CodeInternalError, Message: message}
}

// NotFound reports an unknown route or missing entity.
func NotFound(message string) *APIError {
	if message == "" {
		message = "Not found"
	}
	return &APIError{Status: http.StatusNotFound, Code: CodeNotFound, Message: message}
}
