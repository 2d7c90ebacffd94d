// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package rajaongkir is a client for the Rajaongkir shipping-rate API.
//
// A [Client] holds an API key and an account tier. The tier picks the host
// and path prefix every request is routed to and gates what may be asked
// for: couriers, parcel weight, subdistrict granularity, international
// shipments, waybill tracking and currency rates. Calls the tier does not
// allow are rejected locally, without touching the network.
//
// Every failed call, local or remote, is recorded in the client's ErrorLog
// (see [Client.Errors]) and returned as a *[StatusError]. Network and
// decoding problems wrap [ErrTransport] and are not recorded.
//
// A Client is not safe for concurrent use.
package rajaongkir

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-rajaongkir/internal/adapter"
	"github.com/MKhiriev/go-rajaongkir/internal/config"
	"github.com/MKhiriev/go-rajaongkir/internal/logger"
	"github.com/MKhiriev/go-rajaongkir/models"
	"github.com/rs/zerolog"
)

// Default hosts.
const (
	PublicBaseURL = "https://api.rajaongkir.com"
	ProBaseURL    = "https://pro.rajaongkir.com"
)

// Config configures a [Client].
type Config struct {
	// APIKey is required.
	APIKey string
	// AccountType is starter, basic or pro in any case; empty means starter.
	AccountType string
	// PublicBaseURL and ProBaseURL override the default hosts.
	PublicBaseURL string
	ProBaseURL    string
	// RequestTimeout bounds each request; zero selects the adapter default.
	RequestTimeout time.Duration
}

// Option customizes a [Client] built by [New] or [NewFromEnv].
type Option func(*Client)

// WithLogger routes the client's logs to l. Clients are silent by default.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger.Wrap(l)
	}
}

func withAdapter(a adapter.RajaongkirAdapter) Option {
	return func(c *Client) {
		c.adapter = a
	}
}

// Client talks to the Rajaongkir API on behalf of one account.
type Client struct {
	apiKey      string
	accountType models.AccountType

	publicBaseURL string
	proBaseURL    string

	adapter adapter.RajaongkirAdapter

	lastResponse *models.RawResponse
	errors       ErrorLog

	logger *logger.Logger
}

// New builds a Client from cfg.
func New(cfg Config, opts ...Option) (*Client, error) {
	c := &Client{
		accountType:   models.AccountStarter,
		publicBaseURL: PublicBaseURL,
		proBaseURL:    ProBaseURL,
		errors:        make(ErrorLog),
		logger:        logger.Nop(),
	}

	if err := c.SetAPIKey(cfg.APIKey); err != nil {
		return nil, err
	}
	if cfg.AccountType != "" {
		if err := c.SetAccountType(cfg.AccountType); err != nil {
			return nil, err
		}
	}

	var err error
	if cfg.PublicBaseURL != "" {
		if c.publicBaseURL, err = config.NormalizeBaseURL(cfg.PublicBaseURL); err != nil {
			return nil, fmt.Errorf("invalid public base url: %w", err)
		}
	}
	if cfg.ProBaseURL != "" {
		if c.proBaseURL, err = config.NormalizeBaseURL(cfg.ProBaseURL); err != nil {
			return nil, fmt.Errorf("invalid pro base url: %w", err)
		}
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.adapter == nil {
		c.adapter = adapter.NewHTTPAdapter(cfg.RequestTimeout, c.logger.GetChildLogger("adapter"))
	}

	return c, nil
}

// NewFromEnv builds a Client from the RAJAONGKIR_* environment variables
// and the optional JSON file named by CONFIG. A LOG_LEVEL turns on JSON
// logging to stdout unless opts supply a logger.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := config.GetClientConfig()
	if err != nil {
		return nil, fmt.Errorf("error getting configs: %w", err)
	}

	if cfg.LogLevel != "" {
		l := logger.NewLoggerWithLevel("rajaongkir", cfg.LogLevel)
		opts = append([]Option{WithLogger(l.Logger)}, opts...)
	}

	return New(Config{
		APIKey:         cfg.APIKey,
		AccountType:    cfg.AccountType,
		PublicBaseURL:  cfg.PublicBaseURL,
		ProBaseURL:     cfg.ProBaseURL,
		RequestTimeout: cfg.RequestTimeout,
	}, opts...)
}

// SetAPIKey replaces the key used by every following request. The key is
// stored as given; a blank key returns [ErrEmptyAPIKey].
func (c *Client) SetAPIKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return ErrEmptyAPIKey
	}
	c.apiKey = key
	return nil
}

// APIKey returns the key in use.
func (c *Client) APIKey() string {
	return c.apiKey
}

// SetAccountType switches the tier. The name is matched case-insensitively;
// an unknown name returns [ErrInvalidAccountType] and keeps the current tier.
func (c *Client) SetAccountType(accountType string) error {
	t, err := models.ParseAccountType(accountType)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAccountType, err)
	}
	c.accountType = t
	return nil
}

// AccountType returns the tier in use.
func (c *Client) AccountType() models.AccountType {
	return c.accountType
}

// Errors returns a copy of the ErrorLog accumulated over the client's lifetime.
func (c *Client) Errors() ErrorLog {
	return c.errors.clone()
}

// LastResponse returns the raw response of the most recent request that
// reached the server, or nil.
func (c *Client) LastResponse() *models.RawResponse {
	return c.lastResponse
}

func (c *Client) policy() tierPolicy {
	return policyFor(c.accountType)
}
