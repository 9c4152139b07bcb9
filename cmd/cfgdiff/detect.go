package main

import (
	"fmt"

	"github.com/signadot/cfgdiff/format"
	"github.com/signadot/cfgdiff/report"

	"github.com/scott-cotton/cli"
)

type detection struct {
	File   string        `json:"file"`
	Format format.Format `json:"format"`
	Kind   string        `json:"kind"`
}

func detect(cfg *DetectConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Detect.Parse(cc, args)
	if err != nil {
		cfg.Detect.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	res := make([]detection, 0, len(args))
	for _, arg := range args {
		d, err := readDoc(cc, arg)
		if err != nil {
			return err
		}
		f := format.Detect(d)
		res = append(res, detection{File: arg, Format: f, Kind: f.Kind().String()})
	}
	switch {
	case cfg.J:
		return report.EncodeJSON(cc.Out, res)
	case cfg.Y:
		return report.EncodeYAML(cc.Out, res)
	}
	for _, d := range res {
		if _, err := fmt.Fprintf(cc.Out, "%s: %s\n", d.File, d.Format); err != nil {
			return err
		}
	}
	return nil
}
