// Package common defines shared constants and sentinel errors used across
// the gophnotes client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// ErrEmptyTitle is returned by note operations when the title is empty
	// after trimming. It is a client-local validation error: no request is
	// issued when it fires.
	ErrEmptyTitle = errors.New("title is required")

	// ErrNotAuthenticated is returned by operations that require a live
	// session when none exists.
	ErrNotAuthenticated = errors.New("not authenticated")
)
