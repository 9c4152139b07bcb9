package cfgdiff

import (
	"log/slog"

	"github.com/signadot/cfgdiff/format"
	"github.com/signadot/cfgdiff/pathdiff"
	"github.com/signadot/cfgdiff/textdiff"
	"github.com/signadot/cfgdiff/treediff"
)

// DefaultMaxLines is the default limit on the number of lines of each
// document.
const DefaultMaxLines = 20000

type CompareConfig struct {
	Left, Right *format.Format
	Text        []textdiff.Option
	Tree        []treediff.Option
	Path        []pathdiff.Option
	MaxLines    int
	Tabular     bool
	Log         *slog.Logger
}

type CompareOpt func(*CompareConfig)

// WithFormat declares the format of both documents, disabling detection.
func WithFormat(f format.Format) CompareOpt {
	return WithFormats(f, f)
}

// WithFormats declares the format of each document, disabling detection.
func WithFormats(left, right format.Format) CompareOpt {
	return func(c *CompareConfig) {
		c.Left = &left
		c.Right = &right
	}
}

func WithText(opts ...textdiff.Option) CompareOpt {
	return func(c *CompareConfig) { c.Text = append(c.Text, opts...) }
}

func WithTree(opts ...treediff.Option) CompareOpt {
	return func(c *CompareConfig) { c.Tree = append(c.Tree, opts...) }
}

func WithPath(opts ...pathdiff.Option) CompareOpt {
	return func(c *CompareConfig) { c.Path = append(c.Path, opts...) }
}

// WithMaxLines limits the number of lines of each document. 0 means no
// limit.
func WithMaxLines(n int) CompareOpt {
	return func(c *CompareConfig) { c.MaxLines = n }
}

// WithTabular compares tree documents as rows of flattened attributes,
// keyed by element path and attribute name, the way JSON and YAML
// documents are compared.
func WithTabular(v bool) CompareOpt {
	return func(c *CompareConfig) { c.Tabular = v }
}

func WithLog(l *slog.Logger) CompareOpt {
	return func(c *CompareConfig) { c.Log = l }
}

func NewCompareConfig(opts ...CompareOpt) *CompareConfig {
	c := &CompareConfig{MaxLines: DefaultMaxLines}
	for _, o := range opts {
		o(c)
	}
	if c.Log == nil {
		c.Log = slog.New(slog.DiscardHandler)
	}
	return c
}
