package format

import (
	"bytes"
	"encoding/json"
	"regexp"

	"github.com/signadot/cfgdiff/debug"
	"github.com/signadot/cfgdiff/treediff"

	"github.com/goccy/go-yaml"
)

var yamlKeyLine = regexp.MustCompile(`(?m)^[\w.-]+\s*:`)

// Detect guesses the format of a document from its content.
//
// Content starting with '<' that parses as an element tree is XML. Content
// delimited by braces or brackets that is valid JSON is JSON. Content with
// a colon that either has a line starting with a key or an indented line,
// and that decodes to a mapping or a sequence, is YAML. Anything else is
// text.
func Detect(content []byte) Format {
	f := detect(bytes.TrimSpace(content))
	if debug.Detect() {
		debug.Logf("detect %d bytes: %s\n", len(content), f)
	}
	return f
}

func detect(d []byte) Format {
	if len(d) == 0 {
		return TextFormat
	}
	if d[0] == '<' {
		if _, err := treediff.Parse(d); err == nil {
			return XMLFormat
		} else if debug.Detect() {
			debug.Logf("detect: not xml: %v\n", err)
		}
	}
	last := d[len(d)-1]
	if (d[0] == '{' && last == '}') || (d[0] == '[' && last == ']') {
		if json.Valid(d) {
			return JSONFormat
		}
	}
	if d[0] != '<' && bytes.IndexByte(d, ':') != -1 &&
		(bytes.Contains(d, []byte("\n  ")) || yamlKeyLine.Match(d)) {
		var v any
		if err := yaml.Unmarshal(d, &v); err != nil {
			if debug.Detect() {
				debug.Logf("detect: not yaml: %v\n", err)
			}
			return TextFormat
		}
		switch v.(type) {
		case map[string]any, []any:
			return YAMLFormat
		}
	}
	return TextFormat
}
