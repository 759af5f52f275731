package models

import "errors"

// Failure taxonomy shared by every component. Adapters wrap one of these together with the
// underlying cause so callers can pick the right fallback with errors.Is.
var (
	// ErrNotFound reports a geocode miss or an empty candidate set.
	ErrNotFound = errors.New("not found")
	// ErrTransient reports the recognized statement-timeout signal of the row store.
	ErrTransient = errors.New("transient timeout")
	// ErrUnavailable reports a malformed response, a non-success status or exhausted endpoints.
	ErrUnavailable = errors.New("unavailable")
	// ErrDataIntegrity reports unparseable geometry or a record missing its coordinates.
	ErrDataIntegrity = errors.New("data integrity")
)
