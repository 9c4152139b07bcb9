package report

import (
	"encoding/json"
	"io"

	"github.com/signadot/cfgdiff"
	"github.com/signadot/cfgdiff/change"

	"github.com/goccy/go-yaml"
)

// Document is the exported form of a result.
type Document struct {
	*cfgdiff.Result
	Counts change.Counts `json:"counts"`
}

func newDocument(res *cfgdiff.Result) *Document {
	return &Document{Result: res, Counts: res.Counts()}
}

// JSON writes res and its counts as indented JSON.
func JSON(w io.Writer, res *cfgdiff.Result) error {
	return EncodeJSON(w, newDocument(res))
}

// YAML writes res and its counts as YAML.
func YAML(w io.Writer, res *cfgdiff.Result) error {
	return EncodeYAML(w, newDocument(res))
}

func EncodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// EncodeYAML writes the yaml form of the json encoding of v, so json
// struct tags apply.
func EncodeYAML(w io.Writer, v any) error {
	j, err := json.Marshal(v)
	if err != nil {
		return err
	}
	y, err := yaml.JSONToYAML(j)
	if err != nil {
		return err
	}
	_, err = w.Write(y)
	return err
}
