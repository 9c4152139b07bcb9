package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/signadot/cfgdiff/format"
	"github.com/signadot/cfgdiff/pathdiff"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires 2 args, got %v", cli.ErrUsage, args)
	}
	if cfg.JSONPatch && !cfg.Apply {
		return fmt.Errorf("%w: -json-patch requires -apply", cli.ErrUsage)
	}
	if cfg.CSV {
		return fmt.Errorf("%w: patch does not support -csv", cli.ErrUsage)
	}
	left, right, err := readPair(cc, args[0], args[1])
	if err != nil {
		return err
	}
	lj, err := patchJSON(cfg.MainConfig, args[0], left)
	if err != nil {
		return err
	}
	rj, err := patchJSON(cfg.MainConfig, args[1], right)
	if err != nil {
		return err
	}
	var res []byte
	switch {
	case cfg.Apply && cfg.JSONPatch:
		res, err = pathdiff.ApplyPatch(lj, rj)
	case cfg.Apply:
		res, err = pathdiff.ApplyMergePatch(lj, rj)
	default:
		res, err = pathdiff.MergePatch(lj, rj)
	}
	if err != nil {
		return err
	}
	if cfg.Y {
		y, err := yaml.JSONToYAML(res)
		if err != nil {
			return err
		}
		_, err = cc.Out.Write(y)
		return err
	}
	buf := &bytes.Buffer{}
	if err := json.Indent(buf, res, "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err = cc.Out.Write(buf.Bytes())
	return err
}

func patchJSON(cfg *MainConfig, path string, d []byte) ([]byte, error) {
	f := inFormat(cfg, path, d)
	if f.Kind() != format.HierarchicalKind {
		return nil, fmt.Errorf("%s is %s, not json or yaml", path, f)
	}
	j, err := pathdiff.ToJSON(d, f)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	return j, nil
}
