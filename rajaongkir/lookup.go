package rajaongkir

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-rajaongkir/models"
)

// GetProvinces lists every province.
func (c *Client) GetProvinces(ctx context.Context) ([]models.Province, error) {
	payload, err := c.request(ctx, "province", nil, http.MethodGet)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Province](payload)
}

// GetProvince returns one province.
func (c *Client) GetProvince(ctx context.Context, provinceID string) (models.Province, error) {
	payload, err := c.request(ctx, "province", map[string]string{"id": provinceID}, http.MethodGet)
	if err != nil {
		return models.Province{}, err
	}
	return decode[models.Province](payload)
}

// GetCities lists the cities of a province, or all cities when provinceID is empty.
func (c *Client) GetCities(ctx context.Context, provinceID string) ([]models.City, error) {
	params := map[string]string{}
	if provinceID != "" {
		params["province"] = provinceID
	}

	payload, err := c.request(ctx, "city", params, http.MethodGet)
	if err != nil {
		return nil, err
	}
	return decodeList[models.City](payload)
}

// GetCity returns one city.
func (c *Client) GetCity(ctx context.Context, cityID string) (models.City, error) {
	payload, err := c.request(ctx, "city", map[string]string{"id": cityID}, http.MethodGet)
	if err != nil {
		return models.City{}, err
	}
	return decode[models.City](payload)
}

// GetSubdistricts lists the subdistricts of a city, narrowed to one when
// subdistrictID is set. Pro accounts only.
func (c *Client) GetSubdistricts(ctx context.Context, cityID, subdistrictID string) ([]models.Subdistrict, error) {
	if !c.policy().subdistrict {
		return nil, c.rejectSubdistrictLookup()
	}

	params := map[string]string{}
	if cityID != "" {
		params["city"] = cityID
	}
	if subdistrictID != "" {
		params["id"] = subdistrictID
	}

	payload, err := c.request(ctx, "subdistrict", params, http.MethodGet)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Subdistrict](payload)
}

// GetSubdistrict returns one subdistrict. Pro accounts only.
func (c *Client) GetSubdistrict(ctx context.Context, subdistrictID string) (models.Subdistrict, error) {
	if !c.policy().subdistrict {
		return models.Subdistrict{}, c.rejectSubdistrictLookup()
	}

	payload, err := c.request(ctx, "subdistrict", map[string]string{"id": subdistrictID}, http.MethodGet)
	if err != nil {
		return models.Subdistrict{}, err
	}
	return decode[models.Subdistrict](payload)
}

func (c *Client) rejectSubdistrictLookup() error {
	return c.reject(CodeUnsupportedFeature,
		"Unsupported Subdistrict Request. %s accounts do not support subdistrict lookups.", c.accountType)
}

// GetInternationalOrigins lists the cities international shipments can
// leave from, optionally narrowed by province and city.
// Basic and pro accounts only.
func (c *Client) GetInternationalOrigins(ctx context.Context, provinceID, cityID string) ([]models.InternationalOrigin, error) {
	if !c.policy().international {
		return nil, c.rejectInternationalLookup()
	}

	params := map[string]string{}
	if provinceID != "" {
		params["province"] = provinceID
	}
	if cityID != "" {
		params["id"] = cityID
	}

	payload, err := c.request(ctx, "internationalOrigin", params, http.MethodGet)
	if err != nil {
		return nil, err
	}
	return decodeList[models.InternationalOrigin](payload)
}

// GetInternationalOrigin returns one international origin city.
func (c *Client) GetInternationalOrigin(ctx context.Context, cityID string) (models.InternationalOrigin, error) {
	if !c.policy().international {
		return models.InternationalOrigin{}, c.rejectInternationalLookup()
	}

	payload, err := c.request(ctx, "internationalOrigin", map[string]string{"id": cityID}, http.MethodGet)
	if err != nil {
		return models.InternationalOrigin{}, err
	}
	return decode[models.InternationalOrigin](payload)
}

// GetInternationalDestinations lists every destination country.
func (c *Client) GetInternationalDestinations(ctx context.Context) ([]models.InternationalDestination, error) {
	if !c.policy().international {
		return nil, c.rejectInternationalLookup()
	}

	payload, err := c.request(ctx, "internationalDestination", nil, http.MethodGet)
	if err != nil {
		return nil, err
	}
	return decodeList[models.InternationalDestination](payload)
}

// GetInternationalDestination returns one destination country.
func (c *Client) GetInternationalDestination(ctx context.Context, countryID string) (models.InternationalDestination, error) {
	if !c.policy().international {
		return models.InternationalDestination{}, c.rejectInternationalLookup()
	}

	payload, err := c.request(ctx, "internationalDestination", map[string]string{"id": countryID}, http.MethodGet)
	if err != nil {
		return models.InternationalDestination{}, err
	}
	return decode[models.InternationalDestination](payload)
}

func (c *Client) rejectInternationalLookup() error {
	return c.reject(CodeUnsupportedFeature,
		"Unsupported International Request. %s accounts do not support international shipments.", c.accountType)
}
