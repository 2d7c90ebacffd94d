package models

import "net/http"

// APIRequest is a fully routed call to the Rajaongkir API.
type APIRequest struct {
	// Method is http.MethodGet or http.MethodPost.
	Method string

	// URL is absolute: host, tier prefix and endpoint path.
	URL string

	// APIKey is sent in the "key" header.
	APIKey string

	// Params are encoded as the query string for GET and as a
	// form-urlencoded body for POST.
	Params map[string]string
}

// RawResponse is what came back over the wire, before the envelope is read.
type RawResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}
