package rajaongkir

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-rajaongkir/models"
)

// GetWaybill tracks a shipment. Only couriers in [Client.SupportedWaybillCouriers]
// are sent; others are rejected (and recorded) without a request.
func (c *Client) GetWaybill(ctx context.Context, waybill, courier string) (models.Waybill, error) {
	courier = strings.ToLower(strings.TrimSpace(courier))

	if !c.policy().allowsWaybill(courier) {
		return models.Waybill{}, c.reject(CodeUnsupportedFeature,
			"Unsupported Way Bill Request. Courier %q cannot be tracked on %s accounts.", courier, c.accountType)
	}

	payload, err := c.request(ctx, "waybill", map[string]string{
		"waybill": waybill,
		"courier": courier,
	}, http.MethodPost)
	if err != nil {
		return models.Waybill{}, err
	}
	return decode[models.Waybill](payload)
}

// GetCurrency returns the current USD to IDR rate. Basic and pro accounts only.
func (c *Client) GetCurrency(ctx context.Context) (models.Currency, error) {
	if !c.policy().currency {
		return models.Currency{}, c.reject(CodeUnsupportedFeature,
			"Unsupported Get Currency. %s accounts do not support currency lookups.", c.accountType)
	}

	payload, err := c.request(ctx, "currency", nil, http.MethodGet)
	if err != nil {
		return models.Currency{}, err
	}
	return decode[models.Currency](payload)
}
