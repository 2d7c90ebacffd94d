package adapter

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-rajaongkir/internal/logger"
	"github.com/MKhiriev/go-rajaongkir/models"
	"github.com/go-resty/resty/v2"
)

// APIKeyHeader is the header Rajaongkir reads the account key from.
const APIKeyHeader = "key"

// DefaultRequestTimeout applies when the configured timeout is zero.
const DefaultRequestTimeout = 30 * time.Second

type httpAdapter struct {
	client *resty.Client

	logger *logger.Logger
}

// NewHTTPAdapter constructs a resty-backed [RajaongkirAdapter].
// A zero or negative timeout falls back to [DefaultRequestTimeout].
// Requests carry absolute URLs, so the client has no base URL.
func NewHTTPAdapter(timeout time.Duration, log *logger.Logger) RajaongkirAdapter {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	if log == nil {
		log = logger.Nop()
	}

	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &httpAdapter{client: client, logger: log}
}

// Send implements [RajaongkirAdapter].
func (h *httpAdapter) Send(ctx context.Context, req models.APIRequest) (models.RawResponse, error) {
	r := h.client.R().
		SetContext(ctx).
		SetHeader(APIKeyHeader, req.APIKey)

	var (
		resp *resty.Response
		err  error
	)
	switch req.Method {
	case http.MethodGet:
		resp, err = r.SetQueryParams(req.Params).Get(req.URL)
	case http.MethodPost:
		resp, err = r.SetFormData(req.Params).Post(req.URL)
	default:
		return models.RawResponse{}, fmt.Errorf("%w: %s", ErrUnsupportedMethod, req.Method)
	}
	if err != nil {
		return models.RawResponse{}, fmt.Errorf("%s %s: %w", req.Method, req.URL, err)
	}

	h.logger.Debug().
		Str("method", req.Method).
		Str("url", req.URL).
		Int("status", resp.StatusCode()).
		Dur("took", resp.Time()).
		Msg("rajaongkir responded")

	raw := models.RawResponse{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
		Body:       resp.Body(),
	}
	if err = mapHTTPError(resp); err != nil {
		return raw, err
	}

	return raw, nil
}
