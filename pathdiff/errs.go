package pathdiff

import "errors"

var (
	ErrMalformedDocument = errors.New("malformed document")
	ErrNotHierarchical   = errors.New("not a hierarchical format")
)
