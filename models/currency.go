package models

import (
	"fmt"

	"github.com/spf13/cast"
	"github.com/tidwall/gjson"
)

// Currency is the USD to IDR rate served by the currency endpoint.
type Currency struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// UnmarshalJSON implements json.Unmarshaler. The API quotes value as a
// string on some accounts and sends a number on others.
func (c *Currency) UnmarshalJSON(b []byte) error {
	if !gjson.ValidBytes(b) {
		return fmt.Errorf("invalid currency payload")
	}
	doc := gjson.ParseBytes(b)

	value, err := cast.ToFloat64E(doc.Get("value").Value())
	if err != nil {
		return fmt.Errorf("currency value: %w", err)
	}

	c.Date = doc.Get("date").String()
	c.Value = value
	return nil
}
