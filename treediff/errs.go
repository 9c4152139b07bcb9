package treediff

import "errors"

var (
	ErrMalformedDocument = errors.New("malformed document")
)
