package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	// ErrMalformedResponse is returned when a 2xx body cannot be decoded or
	// lacks the fields the call needs.
	ErrMalformedResponse = errors.New("malformed response")
)
