package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete.
var (
	// ErrInvalidAuthConfigs indicates missing token-signing settings
	// (the sign key is required and has no default).
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidStorageConfigs indicates missing storage settings
	// (an empty database DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates missing HTTP server settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
