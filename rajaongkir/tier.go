package rajaongkir

import (
	"slices"
	"strings"

	"github.com/MKhiriev/go-rajaongkir/models"
	"github.com/samber/lo"
)

// MaxWeight is the heaviest parcel, in grams, starter and basic accounts may quote.
const MaxWeight = 30000

// tierPolicy is everything that differs between account tiers.
type tierPolicy struct {
	proHost    bool
	pathPrefix string

	couriers        []string
	waybillCouriers []string

	// gateCouriers rejects cost requests for couriers outside couriers.
	gateCouriers bool
	// weightCap is the maximum weight in grams; zero means uncapped.
	weightCap float64
	// requireWeight rejects dimensions that do not resolve to a weight.
	requireWeight bool
	// dropDimensions strips dimensions when the weight is under weightCap.
	dropDimensions bool

	subdistrict   bool
	international bool
	currency      bool
}

var tierPolicies = map[models.AccountType]tierPolicy{
	models.AccountStarter: {
		pathPrefix:    "starter",
		couriers:      []string{"jne", "pos", "tiki"},
		gateCouriers:  true,
		weightCap:     MaxWeight,
		requireWeight: true,
	},
	models.AccountBasic: {
		pathPrefix:      "basic",
		couriers:        []string{"esl", "jne", "pcp", "pos", "rpx", "tiki"},
		waybillCouriers: []string{"jne"},
		gateCouriers:    true,
		weightCap:       MaxWeight,
		requireWeight:   true,
		dropDimensions:  true,
		international:   true,
		currency:        true,
	},
	models.AccountPro: {
		proHost:    true,
		pathPrefix: "api",
		couriers: []string{
			"cahaya", "dse", "esl", "expedito*", "first", "idl", "indah", "j&t", "jet", "jne",
			"lion", "ncs", "ninja-express", "pahala", "pandu", "pcp", "pos", "rex", "rpx", "sap",
			"sicepat", "slis", "star", "tiki", "wahana",
		},
		waybillCouriers: []string{
			"dse", "first", "j&t", "jet", "jne", "pcp", "pos", "rpx", "sap", "sicepat", "tiki", "wahana",
		},
		subdistrict:   true,
		international: true,
		currency:      true,
	},
}

func policyFor(t models.AccountType) tierPolicy {
	if p, ok := tierPolicies[t]; ok {
		return p
	}
	return tierPolicies[models.AccountStarter]
}

// allowsCourier reports whether every code of a colon-separated courier
// list ("jne:pos") is offered on the tier.
func (p tierPolicy) allowsCourier(courier string) bool {
	codes := splitCouriers(courier)
	if len(codes) == 0 {
		return false
	}
	return lo.Every(p.couriers, codes)
}

func (p tierPolicy) allowsWaybill(courier string) bool {
	return lo.Contains(p.waybillCouriers, courier)
}

func splitCouriers(courier string) []string {
	return lo.Compact(strings.Split(strings.ToLower(strings.TrimSpace(courier)), ":"))
}

// SupportedCouriers returns the courier codes the current tier may quote.
func (c *Client) SupportedCouriers() []string {
	return slices.Clone(c.policy().couriers)
}

// SupportedWaybillCouriers returns the courier codes the current tier may track.
func (c *Client) SupportedWaybillCouriers() []string {
	return slices.Clone(c.policy().waybillCouriers)
}

// Couriers returns a copy of the courier catalog: code to display name.
func (c *Client) Couriers() map[string]string {
	return models.CourierCatalog()
}
