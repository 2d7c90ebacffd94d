package rajaongkir

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-rajaongkir/models"
	"github.com/spf13/cast"
)

// GetCost quotes shipping from origin to destination with courier (a code
// or a colon-separated list such as "jne:pos").
//
// Origins that are not a city are sent as subdistricts; destinations that
// are neither a city nor a country likewise. When length, width and height
// are all given the billable weight is the greater of the given weight and
// the volumetric weight. A country destination is quoted through the
// international endpoint.
//
// Requests the account tier cannot serve are rejected with a *StatusError
// matching [ErrRejected] and are not sent.
func (c *Client) GetCost(
	ctx context.Context,
	origin, destination models.Location,
	metrics models.Metrics,
	courier string,
) ([]models.CostResult, error) {
	params, path, err := c.costParams(origin, destination, metrics, courier)
	if err != nil {
		return nil, err
	}

	payload, err := c.request(ctx, path, params, http.MethodPost)
	if err != nil {
		return nil, err
	}
	return decodeList[models.CostResult](payload)
}

// costParams applies the tier rules and builds the form sent to the cost endpoint.
func (c *Client) costParams(
	origin, destination models.Location,
	metrics models.Metrics,
	courier string,
) (map[string]string, string, error) {
	policy := c.policy()

	originKind := origin.OriginKind()
	destinationKind := destination.DestinationKind()
	courier = strings.ToLower(strings.TrimSpace(courier))

	metrics = metrics.Resolve()

	if destinationKind == models.KindCountry && !policy.international {
		return nil, "", c.reject(CodeUnsupportedInternational,
			"Unsupported International Destination. %s accounts do not support international shipments.", c.accountType)
	}

	if (originKind == models.KindSubdistrict || destinationKind == models.KindSubdistrict) && !policy.subdistrict {
		return nil, "", c.reject(CodeUnsupportedSubdistrict,
			"Unsupported Subdistrict Origin/Destination. %s accounts only support city to city costs.", c.accountType)
	}

	if policy.requireWeight && metrics.HasDimensions() && metrics.Weight == nil {
		return nil, "", c.reject(CodeMissingWeight,
			"Weight is required. Length, width and height must all be given to derive it from dimensions.")
	}

	if policy.weightCap > 0 && metrics.Weight != nil {
		if *metrics.Weight > policy.weightCap {
			return nil, "", c.reject(CodeWeightExceeded,
				"Weight %s grams exceeds the %s gram limit of %s accounts.",
				cast.ToString(*metrics.Weight), cast.ToString(policy.weightCap), c.accountType)
		}
		if policy.dropDimensions && *metrics.Weight < policy.weightCap {
			metrics = models.Metrics{Weight: metrics.Weight}
		}
	}

	if policy.gateCouriers && !policy.allowsCourier(courier) {
		return nil, "", c.reject(CodeUnsupportedCourier,
			"Unsupported Courier %q. %s accounts support: %s.",
			courier, c.accountType, strings.Join(policy.couriers, ", "))
	}

	params := metricParams(metrics)
	params["origin"] = origin.ID
	params["destination"] = destination.ID
	params["courier"] = courier

	if destinationKind == models.KindCountry {
		return params, "internationalCost", nil
	}

	params["originType"] = string(originKind)
	params["destinationType"] = string(destinationKind)
	return params, "cost", nil
}

func metricParams(m models.Metrics) map[string]string {
	params := make(map[string]string, 9)
	for key, value := range map[string]*float64{
		"weight":   m.Weight,
		"length":   m.Length,
		"width":    m.Width,
		"height":   m.Height,
		"diameter": m.Diameter,
	} {
		if value != nil {
			params[key] = cast.ToString(*value)
		}
	}
	return params
}
