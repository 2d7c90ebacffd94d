// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging values from environment variables and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Rajaongkir holds the account and transport settings.
	Rajaongkir Rajaongkir `envPrefix:"RAJAONGKIR_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable.
	JSONFilePath string `env:"CONFIG"`
}

// Rajaongkir holds the account credentials and endpoint overrides.
type Rajaongkir struct {
	// APIKey is the account key sent in the "key" header.
	// Env: RAJAONGKIR_API_KEY
	APIKey string `env:"API_KEY"`

	// AccountType is one of starter, basic or pro (any case). Empty means starter.
	// Env: RAJAONGKIR_ACCOUNT_TYPE
	AccountType string `env:"ACCOUNT_TYPE"`

	// PublicBaseURL overrides https://api.rajaongkir.com (starter and basic).
	// Env: RAJAONGKIR_PUBLIC_BASE_URL
	PublicBaseURL string `env:"PUBLIC_BASE_URL"`

	// ProBaseURL overrides https://pro.rajaongkir.com.
	// Env: RAJAONGKIR_PRO_BASE_URL
	ProBaseURL string `env:"PRO_BASE_URL"`

	// RequestTimeout bounds a single outbound request (e.g. "10s").
	// Zero selects the adapter default.
	// Env: RAJAONGKIR_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", ...). Empty disables logging.
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources:
//  1. Environment variables
//  2. JSON file (path resolved from source 1)
//
// Returns the merged *StructuredConfig or an error if any source fails to load.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withJSON().
		build()
}
