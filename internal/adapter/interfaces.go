// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer used to talk to the
// Rajaongkir REST API.
//
// The primary abstraction is [RajaongkirAdapter], which decouples the client
// from the underlying HTTP library. The package ships a resty-backed
// implementation ([NewHTTPAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError, but only when the body is not a Rajaongkir envelope: the API
// answers most validation failures with a 4xx status and a well-formed
// envelope, and those must reach the caller untouched.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-rajaongkir/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/rajaongkir_adapter_mock.go -package=mock

// RajaongkirAdapter sends one routed request and hands back the raw response.
type RajaongkirAdapter interface {
	// Send performs req. GET params travel in the query string, POST params
	// as a form-urlencoded body; req.APIKey goes into the "key" header.
	// A non-nil error means no usable envelope was received: the request
	// failed, timed out, was cancelled, or the server answered with a
	// non-2xx status and a body that is not an envelope.
	Send(ctx context.Context, req models.APIRequest) (models.RawResponse, error)
}
