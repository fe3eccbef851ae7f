package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound signals that the requested post or tag does not exist upstream.
var ErrNotFound = errors.New("not found")

// ValidationError reports malformed or out-of-contract input detected
// locally. It is never caused by network conditions.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// NetworkError wraps a transport or upstream HTTP failure so callers can
// distinguish it from validation failures without inspecting messages.
type NetworkError struct {
	Err error
}

func (e NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e NetworkError) Unwrap() error {
	return e.Err
}
