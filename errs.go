package cfgdiff

import "errors"

var (
	// ErrUnsupportedComparison is returned when the two documents are
	// declared with formats that cannot be compared to each other.
	ErrUnsupportedComparison = errors.New("unsupported comparison")
	ErrEmptyDocument         = errors.New("empty document")
	ErrTooLarge              = errors.New("document too large")
)
