package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/signadot/cfgdiff"
	"github.com/signadot/cfgdiff/filter"
	"github.com/signadot/cfgdiff/format"
	"github.com/signadot/cfgdiff/pathdiff"
	"github.com/signadot/cfgdiff/report"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	res, err := compareFiles(cfg.MainConfig, cc, args[0], args[1])
	if err != nil {
		return err
	}
	if cfg.Filter != "" {
		if err := applyFilter(res, cfg.Filter); err != nil {
			return err
		}
	}
	return finish(cfg.MainConfig, cc, res)
}

func text(cfg *TextConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Text.Parse(cc, args)
	if err != nil {
		cfg.Text.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: text requires 2 args, got %v", cli.ErrUsage, args)
	}
	res, err := compareFiles(cfg.MainConfig, cc, args[0], args[1], cfgdiff.WithFormat(format.TextFormat))
	if err != nil {
		return err
	}
	return finish(cfg.MainConfig, cc, res)
}

func align(cfg *AlignConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Align.Parse(cc, args)
	if err != nil {
		cfg.Align.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: align requires 2 args, got %v", cli.ErrUsage, args)
	}
	res, err := compareFiles(cfg.MainConfig, cc, args[0], args[1], cfgdiff.WithFormat(format.TextFormat))
	if err != nil {
		return err
	}
	exported, err := cfg.export(cc.Out, res)
	if err != nil {
		return err
	}
	if !exported {
		width := cfg.Width
		if width == 0 {
			width = cfg.settings().Width
		}
		if err := report.SideBySide(cc.Out, res.Alignment, width, cfg.colors(cc.Out)); err != nil {
			return err
		}
	}
	if !res.Equal() {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func tree(cfg *TreeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tree.Parse(cc, args)
	if err != nil {
		cfg.Tree.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: tree requires 2 args, got %v", cli.ErrUsage, args)
	}
	res, err := compareFiles(cfg.MainConfig, cc, args[0], args[1], cfgdiff.WithFormat(format.XMLFormat))
	if err != nil {
		return err
	}
	if res.Fallback {
		return fmt.Errorf("cannot compare as xml: %s", res.FallbackReason)
	}
	if cfg.Filter != "" {
		if err := applyFilter(res, cfg.Filter); err != nil {
			return err
		}
	}
	return finish(cfg.MainConfig, cc, res)
}

func path(cfg *PathConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Path.Parse(cc, args)
	if err != nil {
		cfg.Path.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: path requires 2 args, got %v", cli.ErrUsage, args)
	}
	left, right, err := readPair(cc, args[0], args[1])
	if err != nil {
		return err
	}
	lf, rf := format.Detect(left), format.Detect(right)
	if cfg.InFormat != nil {
		lf, rf = *cfg.InFormat, *cfg.InFormat
	}
	for i, f := range []format.Format{lf, rf} {
		if f.Kind() == format.TextKind {
			return fmt.Errorf("%s is %s, not json, yaml or xml", args[i], f)
		}
	}
	if lf.Kind() != rf.Kind() {
		return fmt.Errorf("cannot compare paths of %s (%s) and %s (%s)", args[0], lf, args[1], rf)
	}
	res, err := compare(cfg.MainConfig, left, right, cfgdiff.WithFormats(lf, rf), cfgdiff.WithTabular(true))
	if err != nil {
		return err
	}
	if res.Fallback {
		return fmt.Errorf("cannot compare paths: %s", res.FallbackReason)
	}
	if cfg.Filter != "" {
		if err := applyFilter(res, cfg.Filter); err != nil {
			return err
		}
	}
	if !cfg.All {
		res.Rows = changedRows(res.Rows)
	}
	return finish(cfg.MainConfig, cc, res)
}

func changedRows(rows []pathdiff.Row) []pathdiff.Row {
	var res []pathdiff.Row
	for i := range rows {
		if rows[i].Status != pathdiff.Unchanged {
			res = append(res, rows[i])
		}
	}
	return res
}

func readPair(cc *cli.Context, a, b string) ([]byte, []byte, error) {
	if a == "-" && b == "-" {
		return nil, nil, fmt.Errorf("%w: at most one input may be stdin", cli.ErrUsage)
	}
	left, err := readDoc(cc, a)
	if err != nil {
		return nil, nil, err
	}
	right, err := readDoc(cc, b)
	if err != nil {
		return nil, nil, err
	}
	return left, right, nil
}

func compareFiles(cfg *MainConfig, cc *cli.Context, a, b string, opts ...cfgdiff.CompareOpt) (*cfgdiff.Result, error) {
	left, right, err := readPair(cc, a, b)
	if err != nil {
		return nil, err
	}
	res, err := compare(cfg, left, right, opts...)
	if err != nil {
		return nil, fmt.Errorf("error comparing %s and %s: %w", a, b, err)
	}
	return res, nil
}

func compare(cfg *MainConfig, left, right []byte, opts ...cfgdiff.CompareOpt) (*cfgdiff.Result, error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return cfgdiff.CompareContext(ctx, string(left), string(right), append(cfg.compareOpts(), opts...)...)
}

func applyFilter(res *cfgdiff.Result, src string) error {
	f, err := filter.Compile(src)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	switch {
	case res.ByPath():
		rows, err := f.Rows(res.Rows)
		if err != nil {
			return err
		}
		res.Rows = rows
		res.Changes = pathdiff.Changes(rows)
	case res.Kind() == format.TreeKind:
		cs, err := f.Changes(res.Changes)
		if err != nil {
			return err
		}
		res.Changes = cs
	default:
		return fmt.Errorf("%w: -filter does not apply to a text comparison", cli.ErrUsage)
	}
	return nil
}

// finish writes res and exits with status 1 when it has differences.
func finish(cfg *MainConfig, cc *cli.Context, res *cfgdiff.Result) error {
	exported, err := cfg.export(cc.Out, res)
	if err != nil {
		return err
	}
	if !exported {
		if err := report.Text(cc.Out, res, cfg.colors(cc.Out)); err != nil {
			return err
		}
	}
	if !res.Equal() {
		return cli.ExitCodeErr(1)
	}
	return nil
}
