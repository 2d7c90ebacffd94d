package rajaongkir

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-rajaongkir/models"
	"github.com/google/uuid"
	"github.com/spf13/cast"
	"github.com/tidwall/gjson"
)

// envelope paths
const (
	pathEnvelope    = "rajaongkir"
	pathStatusCode  = "status.code"
	pathDescription = "status.description"
	pathResults     = "results"
	pathResult      = "result"
)

// request routes path to the tier's host and prefix, sends params and
// unwraps the envelope. On success it returns "results" (a single-element
// array is unwrapped to that element) or, failing that, "result".
func (c *Client) request(ctx context.Context, path string, params map[string]string, method string) (gjson.Result, error) {
	policy := c.policy()

	base := c.publicBaseURL
	if policy.proHost {
		base = c.proBaseURL
	}

	req := models.APIRequest{
		Method: method,
		URL:    base + "/" + policy.pathPrefix + "/" + path,
		APIKey: c.apiKey,
		Params: params,
	}

	log := c.logger.With().
		Str("request_id", uuid.NewString()).
		Str("account_type", c.accountType.String()).
		Str("method", method).
		Str("path", path).
		Logger()
	log.Debug().Interface("params", params).Msg("sending request")

	resp, err := c.adapter.Send(ctx, req)
	if resp.StatusCode != 0 {
		c.lastResponse = &resp
	}
	if err != nil {
		log.Error().Err(err).Msg("request failed")
		return gjson.Result{}, fmt.Errorf("%w: %w", ErrTransport, err)
	}

	if !gjson.ValidBytes(resp.Body) {
		log.Error().Int("status", resp.StatusCode).Msg("response is not json")
		return gjson.Result{}, fmt.Errorf("%w: response is not json (http %d)", ErrTransport, resp.StatusCode)
	}

	envelope := gjson.GetBytes(resp.Body, pathEnvelope)
	code, ok := statusCode(envelope.Get(pathStatusCode))
	if !ok {
		log.Error().Int("status", resp.StatusCode).Msg("response has no rajaongkir status")
		return gjson.Result{}, fmt.Errorf("%w: response has no rajaongkir status (http %d)", ErrTransport, resp.StatusCode)
	}

	if code != http.StatusOK {
		statusErr := &StatusError{
			Code:        code,
			Description: envelope.Get(pathDescription).String(),
			Remote:      true,
		}
		c.errors.record(statusErr)
		log.Warn().Int("code", statusErr.Code).Str("description", statusErr.Description).Msg("api returned an error status")
		return gjson.Result{}, statusErr
	}

	if results := envelope.Get(pathResults); present(results) {
		if results.IsArray() {
			if items := results.Array(); len(items) == 1 {
				return items[0], nil
			}
		}
		return results, nil
	}

	if result := envelope.Get(pathResult); present(result) {
		return result, nil
	}

	log.Debug().Msg("no results")
	return gjson.Result{}, ErrNotFound
}

// statusCode accepts a JSON number or a numeric string.
func statusCode(r gjson.Result) (int, bool) {
	switch r.Type {
	case gjson.Number:
		return int(r.Int()), true
	case gjson.String:
		code, err := cast.ToIntE(strings.TrimSpace(r.Str))
		return code, err == nil
	default:
		return 0, false
	}
}

func present(r gjson.Result) bool {
	return r.Exists() && r.Type != gjson.Null
}

// reject records a tier rejection and returns it.
func (c *Client) reject(code int, format string, args ...any) error {
	statusErr := &StatusError{Code: code, Description: fmt.Sprintf(format, args...)}
	c.errors.record(statusErr)

	c.logger.Warn().
		Str("account_type", c.accountType.String()).
		Int("code", statusErr.Code).
		Str("description", statusErr.Description).
		Msg("request rejected")

	return statusErr
}

// decode reads a single object. The API answers an unknown id with an
// empty "results" array, reported as [ErrNotFound].
func decode[T any](payload gjson.Result) (T, error) {
	var v T
	if payload.IsArray() && len(payload.Array()) == 0 {
		return v, ErrNotFound
	}
	return v, unmarshal(payload, &v)
}

// decodeList accepts both an array and the single object request unwraps
// a one-element array into.
func decodeList[T any](payload gjson.Result) ([]T, error) {
	if !payload.IsArray() {
		one, err := decode[T](payload)
		if err != nil {
			return nil, err
		}
		return []T{one}, nil
	}

	var list []T
	if err := unmarshal(payload, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func unmarshal(payload gjson.Result, v any) error {
	if err := json.Unmarshal([]byte(payload.Raw), v); err != nil {
		return fmt.Errorf("%w: decode %T: %w", ErrTransport, v, err)
	}
	return nil
}
