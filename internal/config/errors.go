package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (missing API address or non-positive request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates a missing database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates that no listen address is configured
	// or that the request timeout is negative.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidEnvConfigs is returned when an environment variable holds a
	// value that cannot be converted to its field, e.g. a malformed timeout.
	ErrInvalidEnvConfigs = errors.New("invalid environment configuration")
	// ErrUnsupportedConfigFile is returned for config files whose extension
	// is neither JSON nor YAML.
	ErrUnsupportedConfigFile = errors.New("unsupported config file format")
)
