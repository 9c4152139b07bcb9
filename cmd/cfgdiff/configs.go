package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/signadot/cfgdiff"
	"github.com/signadot/cfgdiff/format"
	"github.com/signadot/cfgdiff/pathdiff"
	"github.com/signadot/cfgdiff/report"
	"github.com/signadot/cfgdiff/textdiff"
	"github.com/signadot/cfgdiff/treediff"

	"github.com/scott-cotton/cli"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='output with color'"`
	J     bool `cli:"name=j aliases=json desc='export results as json'"`
	Y     bool `cli:"name=y aliases=yaml desc='export results as yaml'"`
	CSV   bool `cli:"name=csv desc='export results as csv'"`

	SettingsFile     string `cli:"name=config desc='settings file (yaml)'"`
	IgnoreWhitespace bool   `cli:"name=w desc='ignore leading and trailing white space of lines'"`
	IgnoreCase       bool   `cli:"name=i desc='ignore case of lines'"`
	Exact            bool   `cli:"name=exact desc='use an exact line diff'"`
	Strict           bool   `cli:"name=strict desc='json/yaml scalars of different types differ'"`
	MaxLines         int    `cli:"name=max desc='maximum number of lines per document, 0 for no limit'"`

	InFormat  *format.Format
	Threshold *float64
	IDAttrs   []string
	Settings  *Settings

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) thresholdOpt(_ *cli.Context, v string) (any, error) {
	t, err := strconv.ParseFloat(v, 64)
	if err != nil || t < 0 || t > 1 {
		return nil, fmt.Errorf("%w: threshold %q is not a number in [0, 1]", cli.ErrUsage, v)
	}
	cfg.Threshold = &t
	return t, nil
}

func (cfg *MainConfig) idOpt(_ *cli.Context, v string) (any, error) {
	for _, a := range strings.Split(v, ",") {
		if a = strings.TrimSpace(a); a != "" {
			cfg.IDAttrs = append(cfg.IDAttrs, a)
		}
	}
	return v, nil
}

// isSet reports whether the option name was given on the command line.
func (cfg *MainConfig) isSet(name string) bool {
	for _, opt := range cfg.Main.Opts {
		if opt.Name != name {
			continue
		}
		return opt.Value != nil
	}
	return false
}

func (cfg *MainConfig) textOpts() []textdiff.Option {
	s := cfg.settings()
	res := []textdiff.Option{
		textdiff.IgnoreWhitespace(cfg.IgnoreWhitespace || s.IgnoreWhitespace),
		textdiff.Exact(cfg.Exact),
	}
	if s.CaseSensitive != nil {
		res = append(res, textdiff.CaseSensitive(*s.CaseSensitive))
	}
	if cfg.IgnoreCase {
		res = append(res, textdiff.CaseSensitive(false))
	}
	return res
}

func (cfg *MainConfig) treeOpts() []treediff.Option {
	s := cfg.settings()
	var res []treediff.Option
	switch {
	case len(cfg.IDAttrs) != 0:
		res = append(res, treediff.IdentifierAttrs(cfg.IDAttrs...))
	case len(s.IdentifierAttrs) != 0:
		res = append(res, treediff.IdentifierAttrs(s.IdentifierAttrs...))
	}
	switch {
	case cfg.Threshold != nil:
		res = append(res, treediff.Threshold(*cfg.Threshold))
	case s.Threshold != nil:
		res = append(res, treediff.Threshold(*s.Threshold))
	}
	return res
}

func (cfg *MainConfig) pathOpts() []pathdiff.Option {
	return []pathdiff.Option{pathdiff.StrictTypes(cfg.Strict || cfg.settings().StrictTypes)}
}

func (cfg *MainConfig) compareOpts() []cfgdiff.CompareOpt {
	maxLines := cfg.MaxLines
	if s := cfg.settings(); !cfg.isSet("max") && s.MaxLines != nil {
		maxLines = *s.MaxLines
	}
	res := []cfgdiff.CompareOpt{
		cfgdiff.WithText(cfg.textOpts()...),
		cfgdiff.WithTree(cfg.treeOpts()...),
		cfgdiff.WithPath(cfg.pathOpts()...),
		cfgdiff.WithMaxLines(maxLines),
		cfgdiff.WithLog(theLog),
	}
	if cfg.InFormat != nil {
		res = append(res, cfgdiff.WithFormat(*cfg.InFormat))
	}
	return res
}

func (cfg *MainConfig) settings() *Settings {
	if cfg.Settings == nil {
		return &Settings{}
	}
	return cfg.Settings
}

func (cfg *MainConfig) colors(w io.Writer) *report.Colors {
	if cfg.Color {
		color.NoColor = false
		return report.NewColors()
	}
	if cfg.isSet("color") {
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return report.NewColors()
	}
	return nil
}

// export writes res in the export format selected by -j, -y or -csv and
// reports false if none is selected.
func (cfg *MainConfig) export(w io.Writer, res *cfgdiff.Result) (bool, error) {
	switch {
	case cfg.J:
		return true, report.JSON(w, res)
	case cfg.Y:
		return true, report.YAML(w, res)
	case cfg.CSV:
		return true, report.CSV(w, res)
	}
	return false, nil
}

type DiffConfig struct {
	*MainConfig
	Filter string `cli:"name=filter desc='only report changes or rows matching an expression'"`

	Diff *cli.Command
}

type TextConfig struct {
	*MainConfig

	Text *cli.Command
}

type AlignConfig struct {
	*MainConfig
	Width int `cli:"name=width desc='total width of the side by side view'"`

	Align *cli.Command
}

type TreeConfig struct {
	*MainConfig
	Filter string `cli:"name=filter desc='only report changes matching an expression'"`

	Tree *cli.Command
}

type PathConfig struct {
	*MainConfig
	Filter string `cli:"name=filter desc='only report rows matching an expression'"`
	All    bool   `cli:"name=a aliases=all desc='include unchanged paths'"`

	Path *cli.Command
}

type FlattenConfig struct {
	*MainConfig

	Flatten *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Apply     bool `cli:"name=apply desc='apply the patch b to a instead of computing one'"`
	JSONPatch bool `cli:"name=json-patch desc='with -apply, b is an RFC 6902 JSON patch'"`

	Patch *cli.Command
}

type DetectConfig struct {
	*MainConfig

	Detect *cli.Command
}
