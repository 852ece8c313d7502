package suggest

import "errors"

var (
	// ErrEmptyPhrase is returned by Insert for empty or whitespace-only phrases.
	ErrEmptyPhrase = errors.New("phrase must not be empty")

	// ErrNegativeLimit is returned when a completion limit is below zero.
	ErrNegativeLimit = errors.New("limit must not be negative")
)
