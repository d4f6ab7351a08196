package core

import (
	"errors"
	"net/http"
)

// Shared error kinds. Services wrap these with %w so handlers can
// translate them without knowing which layer produced the failure.
var (
	// Bad caller input: limit <= 0, unknown enum value, malformed body.
	ErrInvalidArgument = errors.New("invalid argument")

	// A referenced restaurant, user, or order does not exist.
	ErrNotFound = errors.New("not found")

	// The generative provider could not be reached (timeout, connection).
	ErrUpstreamUnavailable = errors.New("generative provider unavailable")

	// The generative provider replied with an error status.
	ErrUpstreamError = errors.New("generative provider error")

	// The provider replied but no structured payload could be extracted.
	ErrMalformedUpstreamResponse = errors.New("malformed generative response")
)

// HTTPStatus maps an error to the status code handlers should return.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUpstreamUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, ErrUpstreamError),
		errors.Is(err, ErrMalformedUpstreamResponse):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
