package keel

import "errors"

var (
	// ErrMissingKey is returned when a requested key has no value and no
	// default was supplied, or when a placeholder references an undefined key.
	ErrMissingKey = errors.New("missing configuration key")
	// ErrCircularReference is returned when placeholder resolution revisits
	// a key already on the current resolution path.
	ErrCircularReference = errors.New("circular reference")
	// ErrNoConfig is returned when no configuration file can be found.
	ErrNoConfig = errors.New("no configuration found")
	// ErrUnsupportedSource is returned for configuration file extensions
	// with no registered parser.
	ErrUnsupportedSource = errors.New("unsupported configuration source")
	// ErrSourceRead is returned when a configuration or secrets file exists
	// but cannot be read or parsed.
	ErrSourceRead = errors.New("configuration source unreadable")
	// ErrInvalidDateFormat is returned when the configured date format does
	// not round-trip a reference timestamp.
	ErrInvalidDateFormat = errors.New("invalid date format")
)
