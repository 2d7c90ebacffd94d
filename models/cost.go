package models

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cast"
	"github.com/tidwall/gjson"
)

// CostResult holds the services one courier offers for a route.
type CostResult struct {
	Code  string        `json:"code"`
	Name  string        `json:"name"`
	Costs []CostService `json:"costs"`
}

// CostService is a single courier service and its price options.
//
// Domestic responses carry "cost" as a list of {value, etd, note}; the
// international endpoint sends a flat number (often quoted) next to
// "currency" and "etd". Both shapes decode into Cost.
type CostService struct {
	Service     string       `json:"service"`
	Description string       `json:"description,omitempty"`
	Currency    string       `json:"currency,omitempty"`
	Cost        []CostDetail `json:"cost"`
}

// CostDetail is a price option of a service.
type CostDetail struct {
	Value float64 `json:"value"`
	ETD   string  `json:"etd"`
	Note  string  `json:"note"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *CostService) UnmarshalJSON(b []byte) error {
	var raw struct {
		Service     string          `json:"service"`
		Description string          `json:"description"`
		Currency    string          `json:"currency"`
		ETD         string          `json:"etd"`
		Cost        json.RawMessage `json:"cost"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	s.Service = raw.Service
	s.Description = raw.Description
	s.Currency = raw.Currency
	s.Cost = nil

	cost := gjson.ParseBytes(raw.Cost)
	switch {
	case len(raw.Cost) == 0 || cost.Type == gjson.Null:
		return nil
	case cost.IsArray():
		return json.Unmarshal(raw.Cost, &s.Cost)
	default:
		value, err := cast.ToFloat64E(cost.Value())
		if err != nil {
			return fmt.Errorf("cost of service %q: %w", raw.Service, err)
		}
		s.Cost = []CostDetail{{Value: value, ETD: raw.ETD}}
		return nil
	}
}
