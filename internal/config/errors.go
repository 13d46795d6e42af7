package config

import "errors"

// Errors returned by configuration operations.
var (
	// ErrInvalidLogLevel indicates an unknown logging.level value.
	ErrInvalidLogLevel = errors.New("invalid log level")

	// ErrInvalidIndentChars indicates indent characters that are not blanks.
	ErrInvalidIndentChars = errors.New("invalid indent characters")
)
