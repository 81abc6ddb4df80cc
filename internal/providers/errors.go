package providers

import (
	"errors"
	"fmt"
)

// ErrPlayerNotFound is returned when an upstream lookup succeeds but the
// player does not exist.
var ErrPlayerNotFound = errors.New("player not found")

// UpstreamError captures a non-2xx response from a third-party API.
type UpstreamError struct {
	Provider   string
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s upstream %d", e.Provider, e.StatusCode)
}

// AsUpstreamError attempts to unwrap an error into an UpstreamError.
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var upErr *UpstreamError
	if errors.As(err, &upErr) {
		return upErr, true
	}
	return nil, false
}
