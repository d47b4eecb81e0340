// Package util provides logging helpers and common error types.
package util

import (
	"errors"
	"fmt"
)

// Sentinel errors for device connection failures
var (
	ErrConnectTimeout = errors.New("connection timeout")
	ErrAuthFailed     = errors.New("authentication failed")
	ErrInvalidConfig  = errors.New("invalid configuration")
)

// ConnectionError wraps a failure to reach or talk to a device, tagged with
// one of the sentinel errors above so callers can classify it with errors.Is.
type ConnectionError struct {
	Host string
	Kind error
	Err  error
}

func (e *ConnectionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v: %v", e.Host, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Host, e.Kind)
}

func (e *ConnectionError) Unwrap() error {
	return e.Kind
}

// NewConnectionError creates a classified connection error
func NewConnectionError(host string, kind, err error) *ConnectionError {
	return &ConnectionError{Host: host, Kind: kind, Err: err}
}

// DocumentError records a topology document that could not be read or parsed.
// The scan continues past these; they are reported, not fatal.
type DocumentError struct {
	Path string
	Err  error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}
