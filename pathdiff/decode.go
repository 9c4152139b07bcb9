package pathdiff

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/signadot/cfgdiff/format"

	"github.com/goccy/go-yaml"
)

// Decode parses a JSON or YAML document into a generic tree for [Flatten].
//
// JSON numbers are kept as [json.Number]. YAML mappings decode to
// [yaml.MapSlice] so that member order is preserved.
func Decode(d []byte, f format.Format) (any, error) {
	switch f {
	case format.JSONFormat:
		return decodeJSON(d)
	case format.YAMLFormat:
		return decodeYAML(d)
	default:
		return nil, fmt.Errorf("%w: %s", ErrNotHierarchical, f)
	}
}

func decodeJSON(d []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after json value at offset %d",
			ErrMalformedDocument, dec.InputOffset())
	}
	return v, nil
}

func decodeYAML(d []byte) (any, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}
	return v, nil
}

// ToJSON returns d as JSON. JSON documents are returned unchanged.
func ToJSON(d []byte, f format.Format) ([]byte, error) {
	switch f {
	case format.JSONFormat:
		if !json.Valid(d) {
			return nil, fmt.Errorf("%w: invalid json", ErrMalformedDocument)
		}
		return d, nil
	case format.YAMLFormat:
		j, err := yaml.YAMLToJSON(d)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
		}
		return j, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrNotHierarchical, f)
	}
}

// Load decodes and flattens a document.
func Load(d []byte, f format.Format) ([]Entry, error) {
	v, err := Decode(d, f)
	if err != nil {
		return nil, err
	}
	return Flatten(v), nil
}
