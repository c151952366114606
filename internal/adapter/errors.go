package adapter

import "errors"

// Errors returned for non-2xx control API responses. The response body is
// appended to the wrapped error.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrGone                = errors.New("synchronizer closed")
	ErrBadGateway          = errors.New("broker unavailable")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrGatewayTimeout      = errors.New("daemon timed out")
	ErrInternalServerError = errors.New("internal server error")
)
