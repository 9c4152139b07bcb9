package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Settings are comparison settings read from a yaml file with -config.
// Command line options take precedence.
//
//	identifierAttrs: [distName, id, name]
//	threshold: 0.5
//	maxLines: 50000
//	ignoreWhitespace: true
//	caseSensitive: false
//	strictTypes: true
//	width: 200
type Settings struct {
	IdentifierAttrs  []string `yaml:"identifierAttrs"`
	Threshold        *float64 `yaml:"threshold"`
	MaxLines         *int     `yaml:"maxLines"`
	IgnoreWhitespace bool     `yaml:"ignoreWhitespace"`
	CaseSensitive    *bool    `yaml:"caseSensitive"`
	StrictTypes      bool     `yaml:"strictTypes"`
	Width            int      `yaml:"width"`
}

func loadSettings(path string) (*Settings, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	res := &Settings{}
	if err := yaml.UnmarshalWithOptions(d, res, yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("error decoding settings %s: %w", path, err)
	}
	if res.Threshold != nil && (*res.Threshold < 0 || *res.Threshold > 1) {
		return nil, fmt.Errorf("settings %s: threshold %v not in [0, 1]", path, *res.Threshold)
	}
	return res, nil
}
