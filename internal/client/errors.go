package client

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound reports that the requested record has no row.
	ErrNotFound = errors.New("movie not found")

	// ErrUnauthorized reports a missing or expired session on a protected
	// operation.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrStorageFault reports that the server could not reach its object
	// store for an upload or deletion.
	ErrStorageFault = errors.New("poster storage unavailable")
)

// ValidationError reports fields rejected by the server before any storage
// call was made.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
}

// NetworkError wraps a request that failed to complete at the transport
// level, as opposed to one the server answered with a failure status.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "request failed: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// RemoteError carries a failure status the taxonomy has no dedicated type
// for, preserving the server's message.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}
