package rajaongkir

import (
	"errors"
	"fmt"
	"maps"
)

var (
	// ErrInvalidAccountType is returned when a tier name is not one of
	// starter, basic or pro. State is left unchanged.
	ErrInvalidAccountType = errors.New("rajaongkir: invalid account type")
	// ErrEmptyAPIKey is returned when an API key is missing or blank.
	ErrEmptyAPIKey = errors.New("rajaongkir: empty api key")

	// ErrTransport wraps network failures, timeouts and bodies that are not
	// a Rajaongkir envelope. These are never written to the ErrorLog.
	ErrTransport = errors.New("rajaongkir: transport failure")
	// ErrNotFound is returned when the API answers 200 with neither
	// "results" nor "result", or with an empty "results" for a single-item lookup.
	ErrNotFound = errors.New("rajaongkir: no results")

	// ErrRejected matches a *StatusError produced by tier gating before
	// any request was sent.
	ErrRejected = errors.New("rajaongkir: rejected by account tier")
	// ErrAPIStatus matches a *StatusError carrying a non-200 envelope status.
	ErrAPIStatus = errors.New("rajaongkir: api returned an error status")
)

// Rejection codes recorded by tier gating.
const (
	CodeUnsupportedFeature       = 301
	CodeUnsupportedInternational = 302
	CodeUnsupportedSubdistrict   = 303
	CodeMissingWeight            = 304
	CodeWeightExceeded           = 305
	CodeUnsupportedCourier       = 306
)

// StatusError is a failed call that was recorded in the ErrorLog: either a
// local tier rejection or a non-200 status reported by the API.
type StatusError struct {
	Code        int
	Description string

	// Remote is true when the API produced the status.
	Remote bool
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("rajaongkir: %d %s", e.Code, e.Description)
}

// Is lets errors.Is tell tier rejections ([ErrRejected]) from API
// statuses ([ErrAPIStatus]).
func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrRejected:
		return !e.Remote
	case ErrAPIStatus:
		return e.Remote
	}
	return false
}

// ErrorLog maps a status code to the description of its most recent failure.
type ErrorLog map[int]string

func (l ErrorLog) record(e *StatusError) {
	l[e.Code] = e.Description
}

func (l ErrorLog) clone() ErrorLog {
	return maps.Clone(l)
}
