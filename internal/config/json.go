package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Rajaongkir struct {
		APIKey         string   `json:"api_key"`
		AccountType    string   `json:"account_type"`
		PublicBaseURL  string   `json:"public_base_url"`
		ProBaseURL     string   `json:"pro_base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"rajaongkir,omitempty"`

	Log struct {
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Rajaongkir: Rajaongkir{
			APIKey:         jsonCfg.Rajaongkir.APIKey,
			AccountType:    jsonCfg.Rajaongkir.AccountType,
			PublicBaseURL:  jsonCfg.Rajaongkir.PublicBaseURL,
			ProBaseURL:     jsonCfg.Rajaongkir.ProBaseURL,
			RequestTimeout: time.Duration(jsonCfg.Rajaongkir.RequestTimeout),
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
