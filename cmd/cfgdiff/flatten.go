package main

import (
	"fmt"

	"github.com/signadot/cfgdiff/format"
	"github.com/signadot/cfgdiff/pathdiff"
	"github.com/signadot/cfgdiff/report"
	"github.com/signadot/cfgdiff/treediff"

	"github.com/scott-cotton/cli"
)

func flatten(cfg *FlattenConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Flatten.Parse(cc, args)
	if err != nil {
		cfg.Flatten.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: flatten requires 1 arg, got %v", cli.ErrUsage, args)
	}
	d, err := readDoc(cc, args[0])
	if err != nil {
		return err
	}
	f := inFormat(cfg.MainConfig, args[0], d)
	var es []pathdiff.Entry
	switch f.Kind() {
	case format.TreeKind:
		n, err := treediff.Parse(d, cfg.treeOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", args[0], err)
		}
		es = pathdiff.FlattenTree(n.Canonical())
	case format.HierarchicalKind:
		es, err = pathdiff.Load(d, f)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", args[0], err)
		}
	default:
		return fmt.Errorf("cannot flatten %s: format is %s", args[0], f)
	}
	switch {
	case cfg.J:
		return report.EncodeJSON(cc.Out, es)
	case cfg.Y:
		return report.EncodeYAML(cc.Out, es)
	case cfg.CSV:
		return report.EntriesCSV(cc.Out, es)
	}
	return report.Entries(cc.Out, es, cfg.colors(cc.Out))
}

// inFormat returns the format given with -I, the format named by the
// suffix of path, or the format detected from d, in that order.
func inFormat(cfg *MainConfig, path string, d []byte) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	if f, ok := format.FromPath(path); ok {
		return f
	}
	return format.Detect(d)
}
