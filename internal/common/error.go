// Package common defines shared constants and sentinel errors used across
// the client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Decoding errors (malformed or missing required fields).
	ErrDecoding = errors.New("decoding error")

	// Provider errors. ErrProvider is the catch-all for non-2xx responses
	// that do not map to a more specific condition.
	ErrProvider     = errors.New("provider error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrUnavailable  = errors.New("provider unavailable")
	ErrNotFound     = errors.New("not found")
)
