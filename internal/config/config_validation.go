// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-rajaongkir/models"
)

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return ErrInvalidAPIConfigs
	}

	if cfg.AccountType != "" {
		if _, err := models.ParseAccountType(cfg.AccountType); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidAccountConfigs, err)
		}
	}

	if cfg.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}

	for _, raw := range []string{cfg.PublicBaseURL, cfg.ProBaseURL} {
		if raw == "" {
			continue
		}
		if _, err := NormalizeBaseURL(raw); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidAdapterConfigs, err)
		}
	}

	return nil
}

// NormalizeBaseURL trims raw, defaults the scheme to https and strips
// trailing slashes. It fails when the result has no host.
func NormalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
