package rajaongkir

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"testing"

	"github.com/MKhiriev/go-rajaongkir/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const domesticCost = `{"rajaongkir":{
	"status":{"code":200,"description":"OK"},
	"origin_details":{"city_id":"501"},
	"results":[{"code":"jne","name":"Jalur Nugraha Ekakurir (JNE)","costs":[
		{"service":"OKE","description":"Ongkos Kirim Ekonomis","cost":[{"value":38000,"etd":"4-5","note":""}]},
		{"service":"REG","description":"Layanan Reguler","cost":[{"value":44000,"etd":"2-3","note":""}]}
	]}]}}`

const internationalCost = `{"rajaongkir":{
	"status":{"code":200,"description":"OK"},
	"results":[{"code":"pos","name":"POS Indonesia (POS)","costs":[
		{"service":"Paket Pos Biasa","currency":"IDR","cost":"373585","etd":"14 hari"}
	]}]}}`

// captureParams returns the mock adapter wired to record the request it receives.
func captureParams(t *testing.T, tier models.AccountType) (*Client, *models.APIRequest) {
	t.Helper()
	c, a := newMockClient(t, tier)
	var got models.APIRequest
	a.EXPECT().Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.APIRequest) (models.RawResponse, error) {
			got = req
			return envelopeResponse(domesticCost), nil
		})
	return c, &got
}

func paramFloat(t *testing.T, params map[string]string, key string) float64 {
	t.Helper()
	raw, ok := params[key]
	require.True(t, ok, "param %q missing", key)
	v, err := strconv.ParseFloat(raw, 64)
	require.NoError(t, err)
	return v
}

func assertRejected(t *testing.T, c *Client, err error, code int) {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRejected)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, code, statusErr.Code)
	assert.False(t, statusErr.Remote)
	assert.Equal(t, statusErr.Description, c.Errors()[code])
}

func ptr(v float64) *float64 { return &v }

// ── success paths ────────────────────────────────────────────────────────────

func TestGetCost_Domestic(t *testing.T) {
	api := newFakeAPI(t, http.StatusOK, domesticCost)
	c := newHTTPClient(t, models.AccountStarter, api)

	got, err := c.GetCost(context.Background(), models.CityOf("501"), models.CityOf("114"), models.WeightOf(1700), "JNE")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "jne", got[0].Code)
	require.Len(t, got[0].Costs, 2)
	assert.Equal(t, "OKE", got[0].Costs[0].Service)
	assert.Equal(t, []models.CostDetail{{Value: 38000, ETD: "4-5"}}, got[0].Costs[0].Cost)

	req := api.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/starter/cost", req.Path)
	assert.Equal(t, "501", req.Form.Get("origin"))
	assert.Equal(t, "114", req.Form.Get("destination"))
	assert.Equal(t, "1700", req.Form.Get("weight"))
	assert.Equal(t, "jne", req.Form.Get("courier"))
	assert.Equal(t, "city", req.Form.Get("originType"))
	assert.Equal(t, "city", req.Form.Get("destinationType"))
}

func TestGetCost_InternationalOnBasic(t *testing.T) {
	api := newFakeAPI(t, http.StatusOK, internationalCost)
	c := newHTTPClient(t, models.AccountBasic, api)

	got, err := c.GetCost(context.Background(), models.CityOf("152"), models.CountryOf("108"), models.WeightOf(1400), "pos")

	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Len(t, got[0].Costs, 1)
	assert.Equal(t, "IDR", got[0].Costs[0].Currency)
	assert.Equal(t, []models.CostDetail{{Value: 373585, ETD: "14 hari"}}, got[0].Costs[0].Cost)

	req := api.last(t)
	assert.Equal(t, "/basic/internationalCost", req.Path)
	assert.Equal(t, "108", req.Form.Get("destination"))
	assert.Empty(t, req.Form.Get("destinationType"))
	assert.Empty(t, req.Form.Get("originType"))
}

func TestGetCost_ProSubdistrict(t *testing.T) {
	c, got := captureParams(t, models.AccountPro)

	_, err := c.GetCost(context.Background(),
		models.SubdistrictOf("574"), models.Location{Kind: "kecamatan", ID: "2103"},
		models.WeightOf(45000), "sicepat:j&t")

	require.NoError(t, err)
	assert.Equal(t, ProBaseURL+"/api/cost", got.URL)
	assert.Equal(t, "subdistrict", got.Params["originType"])
	assert.Equal(t, "subdistrict", got.Params["destinationType"])
	assert.Equal(t, "574", got.Params["origin"])
	assert.Equal(t, "2103", got.Params["destination"])
	assert.Equal(t, "45000", got.Params["weight"], "pro has no weight cap")
	assert.Equal(t, "sicepat:j&t", got.Params["courier"])
	assert.Empty(t, c.Errors())
}

func TestGetCost_UnknownOriginKindIsSubdistrict(t *testing.T) {
	c, got := captureParams(t, models.AccountPro)

	_, err := c.GetCost(context.Background(),
		models.Location{Kind: "country", ID: "1"}, models.CityOf("2"), models.WeightOf(100), "jne")

	require.NoError(t, err)
	assert.Equal(t, "subdistrict", got.Params["originType"])
	assert.Equal(t, "city", got.Params["destinationType"])
}

// ── volumetric weight ────────────────────────────────────────────────────────

func TestGetCost_VolumetricWeightWithoutWeight(t *testing.T) {
	c, got := captureParams(t, models.AccountPro)

	_, err := c.GetCost(context.Background(), models.CityOf("1"), models.CityOf("2"),
		models.Dimensions(20, 10, 10), "jne")

	require.NoError(t, err)
	assert.InDelta(t, 333.3333, paramFloat(t, got.Params, "weight"), 0.001)
	assert.Equal(t, "20", got.Params["length"])
	assert.Equal(t, "10", got.Params["width"])
	assert.Equal(t, "10", got.Params["height"])
}

func TestGetCost_VolumetricWeightWinsOverLighterWeight(t *testing.T) {
	c, got := captureParams(t, models.AccountPro)

	_, err := c.GetCost(context.Background(), models.CityOf("1"), models.CityOf("2"),
		models.Dimensions(100, 100, 100).WithWeight(100), "jne")

	require.NoError(t, err)
	assert.InDelta(t, 166666.67, paramFloat(t, got.Params, "weight"), 0.01)
}

func TestGetCost_HeavierWeightWinsOverVolumetric(t *testing.T) {
	c, got := captureParams(t, models.AccountPro)

	_, err := c.GetCost(context.Background(), models.CityOf("1"), models.CityOf("2"),
		models.Dimensions(10, 10, 10).WithWeight(2500), "jne")

	require.NoError(t, err)
	assert.Equal(t, "2500", got.Params["weight"])
}

func TestGetCost_DiameterIsForwarded(t *testing.T) {
	c, got := captureParams(t, models.AccountPro)

	_, err := c.GetCost(context.Background(), models.CityOf("1"), models.CityOf("2"),
		models.WeightOf(1000).WithDiameter(12.5), "jne")

	require.NoError(t, err)
	assert.Equal(t, "12.5", got.Params["diameter"])
}

// ── starter gating ───────────────────────────────────────────────────────────

func TestGetCost_StarterRejections(t *testing.T) {
	tests := []struct {
		name        string
		origin      models.Location
		destination models.Location
		metrics     models.Metrics
		courier     string
		code        int
	}{
		{
			name:        "international destination",
			origin:      models.CityOf("1"),
			destination: models.CountryOf("108"),
			metrics:     models.WeightOf(1000),
			courier:     "jne",
			code:        CodeUnsupportedInternational,
		},
		{
			name:        "international destination wins over every other problem",
			origin:      models.SubdistrictOf("1"),
			destination: models.CountryOf("108"),
			metrics:     models.WeightOf(99999),
			courier:     "wahana",
			code:        CodeUnsupportedInternational,
		},
		{
			name:        "subdistrict origin",
			origin:      models.SubdistrictOf("1"),
			destination: models.CityOf("2"),
			metrics:     models.WeightOf(1000),
			courier:     "jne",
			code:        CodeUnsupportedSubdistrict,
		},
		{
			name:        "unknown destination kind",
			origin:      models.CityOf("1"),
			destination: models.Location{Kind: "village", ID: "2"},
			metrics:     models.WeightOf(1000),
			courier:     "jne",
			code:        CodeUnsupportedSubdistrict,
		},
		{
			name:        "partial dimensions without weight",
			origin:      models.CityOf("1"),
			destination: models.CityOf("2"),
			metrics:     models.Metrics{Length: ptr(10), Width: ptr(10)},
			courier:     "jne",
			code:        CodeMissingWeight,
		},
		{
			name:        "too heavy",
			origin:      models.CityOf("1"),
			destination: models.CityOf("2"),
			metrics:     models.WeightOf(30001),
			courier:     "jne",
			code:        CodeWeightExceeded,
		},
		{
			name:        "volumetric weight too heavy",
			origin:      models.CityOf("1"),
			destination: models.CityOf("2"),
			metrics:     models.Dimensions(100, 100, 100),
			courier:     "jne",
			code:        CodeWeightExceeded,
		},
		{
			name:        "courier outside tier",
			origin:      models.CityOf("1"),
			destination: models.CityOf("2"),
			metrics:     models.WeightOf(1000),
			courier:     "sicepat",
			code:        CodeUnsupportedCourier,
		},
		{
			name:        "one courier of a list outside tier",
			origin:      models.CityOf("1"),
			destination: models.CityOf("2"),
			metrics:     models.WeightOf(1000),
			courier:     "jne:rpx",
			code:        CodeUnsupportedCourier,
		},
		{
			name:        "empty courier",
			origin:      models.CityOf("1"),
			destination: models.CityOf("2"),
			metrics:     models.WeightOf(1000),
			courier:     "",
			code:        CodeUnsupportedCourier,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newMockClient(t, models.AccountStarter)

			got, err := c.GetCost(context.Background(), tt.origin, tt.destination, tt.metrics, tt.courier)

			assert.Nil(t, got)
			assertRejected(t, c, err, tt.code)
			assert.Len(t, c.Errors(), 1)
		})
	}
}

func TestGetCost_StarterKeepsDimensions(t *testing.T) {
	c, got := captureParams(t, models.AccountStarter)

	_, err := c.GetCost(context.Background(), models.CityOf("1"), models.CityOf("2"),
		models.Dimensions(10, 10, 10).WithWeight(1000), "jne:pos")

	require.NoError(t, err)
	assert.Equal(t, "1000", got.Params["weight"])
	assert.Equal(t, "10", got.Params["length"])
}

func TestGetCost_StarterWeightAtCapIsAllowed(t *testing.T) {
	c, got := captureParams(t, models.AccountStarter)

	_, err := c.GetCost(context.Background(), models.CityOf("1"), models.CityOf("2"), models.WeightOf(MaxWeight), "tiki")

	require.NoError(t, err)
	assert.Equal(t, "30000", got.Params["weight"])
}

// ── basic gating ─────────────────────────────────────────────────────────────

func TestGetCost_BasicDropsDimensionsUnderCap(t *testing.T) {
	c, got := captureParams(t, models.AccountBasic)

	_, err := c.GetCost(context.Background(), models.CityOf("1"), models.CityOf("2"),
		models.Dimensions(10, 10, 10).WithWeight(5000).WithDiameter(4), "esl")

	require.NoError(t, err)
	assert.Equal(t, "5000", got.Params["weight"])
	assert.NotContains(t, got.Params, "length")
	assert.NotContains(t, got.Params, "width")
	assert.NotContains(t, got.Params, "height")
	assert.NotContains(t, got.Params, "diameter")
	assert.Equal(t, "https://api.rajaongkir.com/basic/cost", got.URL)
}

func TestGetCost_BasicKeepsDimensionsAtCap(t *testing.T) {
	c, got := captureParams(t, models.AccountBasic)

	_, err := c.GetCost(context.Background(), models.CityOf("1"), models.CityOf("2"),
		models.Dimensions(10, 10, 10).WithWeight(MaxWeight), "jne")

	require.NoError(t, err)
	assert.Equal(t, "10", got.Params["length"])
}

func TestGetCost_BasicRejections(t *testing.T) {
	tests := []struct {
		name        string
		origin      models.Location
		destination models.Location
		metrics     models.Metrics
		courier     string
		code        int
	}{
		{
			name:        "subdistrict destination",
			origin:      models.CityOf("1"),
			destination: models.SubdistrictOf("2"),
			metrics:     models.WeightOf(1000),
			courier:     "jne",
			code:        CodeUnsupportedSubdistrict,
		},
		{
			name:        "dimensions without weight",
			origin:      models.CityOf("1"),
			destination: models.CityOf("2"),
			metrics:     models.Metrics{Height: ptr(3)},
			courier:     "jne",
			code:        CodeMissingWeight,
		},
		{
			name:        "too heavy",
			origin:      models.CityOf("1"),
			destination: models.CityOf("2"),
			metrics:     models.WeightOf(35000),
			courier:     "jne",
			code:        CodeWeightExceeded,
		},
		{
			name:        "courier outside tier",
			origin:      models.CityOf("1"),
			destination: models.CountryOf("108"),
			metrics:     models.WeightOf(1000),
			courier:     "sicepat",
			code:        CodeUnsupportedCourier,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newMockClient(t, models.AccountBasic)

			_, err := c.GetCost(context.Background(), tt.origin, tt.destination, tt.metrics, tt.courier)

			assertRejected(t, c, err, tt.code)
		})
	}
}

func TestGetCost_RejectionsAccumulate(t *testing.T) {
	c, _ := newMockClient(t, models.AccountStarter)
	ctx := context.Background()

	_, err := c.GetCost(ctx, models.CityOf("1"), models.CountryOf("2"), models.WeightOf(1), "jne")
	require.Error(t, err)
	_, err = c.GetCost(ctx, models.CityOf("1"), models.CityOf("2"), models.WeightOf(40000), "jne")
	require.Error(t, err)
	_, err = c.GetCost(ctx, models.CityOf("1"), models.CityOf("2"), models.WeightOf(50000), "jne")
	require.Error(t, err)

	log := c.Errors()
	assert.Len(t, log, 2)
	assert.Contains(t, log, CodeUnsupportedInternational)
	assert.Contains(t, log[CodeWeightExceeded], "50000")
}
