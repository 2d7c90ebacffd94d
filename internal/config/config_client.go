package config

import (
	"fmt"
	"time"
)

// ClientConfig is the flat view of [StructuredConfig] consumed by the client.
type ClientConfig struct {
	APIKey         string
	AccountType    string
	PublicBaseURL  string
	ProBaseURL     string
	RequestTimeout time.Duration
	LogLevel       string
}

// GetClientConfig builds and validates a [ClientConfig] from the merged
// structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	if err = clientCfg.validate(); err != nil {
		return nil, err
	}

	return clientCfg, nil
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		APIKey:         cfg.Rajaongkir.APIKey,
		AccountType:    cfg.Rajaongkir.AccountType,
		PublicBaseURL:  cfg.Rajaongkir.PublicBaseURL,
		ProBaseURL:     cfg.Rajaongkir.ProBaseURL,
		RequestTimeout: cfg.Rajaongkir.RequestTimeout,
		LogLevel:       cfg.Log.Level,
	}
}
