package config

import "errors"

// Validation errors returned by [ClientConfig.validate].
var (
	// ErrInvalidAPIConfigs indicates a missing API key.
	ErrInvalidAPIConfigs = errors.New("invalid api configuration")
	// ErrInvalidAccountConfigs indicates an unknown account type.
	ErrInvalidAccountConfigs = errors.New("invalid account configuration")
	// ErrInvalidAdapterConfigs indicates a bad base URL override or a
	// negative request timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
