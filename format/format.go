// Package format names the document formats understood by the comparison
// engine and detects the format of a document from its content.
package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

type Format int

const (
	TextFormat Format = iota
	XMLFormat
	JSONFormat
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"t":    TextFormat,
		"text": TextFormat,
		"txt":  TextFormat,
		"x":    XMLFormat,
		"xml":  XMLFormat,
		"j":    JSONFormat,
		"json": JSONFormat,
		"y":    YAMLFormat,
		"yaml": YAMLFormat,
		"yml":  YAMLFormat,
	}[strings.ToLower(v)]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case TextFormat:
		return []byte("text"), nil
	case XMLFormat:
		return []byte("xml"), nil
	case JSONFormat:
		return []byte("json"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

// Kind returns the comparison strategy for documents of format f.
func (f Format) Kind() Kind {
	switch f {
	case XMLFormat:
		return TreeKind
	case JSONFormat, YAMLFormat:
		return HierarchicalKind
	default:
		return TextKind
	}
}

// FromPath returns the format named by the extension of path, and false
// when the extension names none.
func FromPath(path string) (Format, bool) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return 0, false
	}
	f, err := ParseFormat(ext)
	if err != nil {
		return 0, false
	}
	return f, true
}

// AllFormats returns all supported formats in detection order.
func AllFormats() []Format {
	return []Format{XMLFormat, JSONFormat, YAMLFormat, TextFormat}
}

// Kind is the comparison strategy shared by a group of formats.
type Kind int

const (
	// TextKind documents are compared line by line.
	TextKind Kind = iota
	// TreeKind documents are compared as element trees.
	TreeKind
	// HierarchicalKind documents are flattened to paths and compared as
	// path sets.
	HierarchicalKind
)

func (k Kind) String() string {
	switch k {
	case TextKind:
		return "text"
	case TreeKind:
		return "tree"
	case HierarchicalKind:
		return "hierarchical"
	default:
		return fmt.Sprintf("<err: %d is not a kind>", int(k))
	}
}
