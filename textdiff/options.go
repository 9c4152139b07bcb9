package textdiff

import (
	"strings"
)

// LookAhead is the number of lines [Lines] searches ahead on either side
// when the current lines differ.
const LookAhead = 5

type Config struct {
	IgnoreWhitespace bool
	CaseSensitive    bool
	// Exact asks callers that choose between [Lines] and [Minimal] to use
	// [Minimal].
	Exact bool
}

type Option func(*Config)

func IgnoreWhitespace(v bool) Option {
	return func(c *Config) { c.IgnoreWhitespace = v }
}

func CaseSensitive(v bool) Option {
	return func(c *Config) { c.CaseSensitive = v }
}

func Exact(v bool) Option {
	return func(c *Config) { c.Exact = v }
}

// NewConfig applies opts to the default configuration, which compares
// lines exactly as written.
func NewConfig(opts ...Option) *Config {
	c := &Config{CaseSensitive: true}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Normalize returns the form of line used for comparison under c.
func (c *Config) Normalize(line string) string {
	if c.IgnoreWhitespace {
		line = strings.TrimSpace(line)
	}
	if !c.CaseSensitive {
		line = strings.ToLower(line)
	}
	return line
}

func (c *Config) normFunc() func(string) string {
	if !c.IgnoreWhitespace && c.CaseSensitive {
		return nil
	}
	return c.Normalize
}

// SplitLines splits text into lines. A final line terminator does not
// start a new line and a carriage return before a newline is dropped.
// The empty text has no lines.
func SplitLines(text string) []string {
	if text == "" {
		return []string{}
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
