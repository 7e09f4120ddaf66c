package constants

import "errors"

// Configuration errors.
var (
	ErrNoAPIKeyConfigured = errors.New("no API key configured, use 'vendus login' or set VENDUS_API_KEY")
	ErrUnknownConfigKey   = errors.New("unknown configuration key")
)

// Validation errors.
var (
	ErrInvalidResourceID  = errors.New("resource ID must be an integer")
	ErrInvalidFieldFormat = errors.New("invalid field format, expected key=value")
	ErrInvalidFieldPath   = errors.New("conflicting field path")
	ErrNoFieldsSpecified  = errors.New("no fields specified, use --field or --from-file")
	ErrInvalidParamsFile  = errors.New("params file must contain a mapping")
	ErrInvalidOutput      = errors.New("invalid output format, expected table, json or yaml")
	ErrEmptyAPIKey        = errors.New("API key cannot be empty")
)

// File system errors.
var (
	ErrDirectoryTraversalDetected = errors.New("directory traversal detected in file path")
	ErrNotRegularFile             = errors.New("path is not a regular file")
)
