package main

import (
	"github.com/signadot/cfgdiff"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{MaxLines: cfgdiff.DefaultMaxLines}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: text/t, xml/x, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		},
		&cli.Opt{
			Name:        "threshold",
			Description: "similarity an unkeyed xml element must exceed to match (default 0.4)",
			Type:        cli.NamedFuncOpt(cfg.thresholdOpt, "(score)"),
		},
		&cli.Opt{
			Name:        "id",
			Description: "xml identifier attributes in priority order, comma separated",
			Type:        cli.NamedFuncOpt(cfg.idOpt, "(attr,...)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "cfgdiff").
		WithSynopsis("cfgdiff [opts] command [opts]").
		WithDescription("cfgdiff compares configuration files.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return cfgdiffMain(cfg, cc, args)
		}).
		WithSubs(
			DiffCommand(cfg),
			TextCommand(cfg),
			AlignCommand(cfg),
			TreeCommand(cfg),
			PathCommand(cfg),
			FlattenCommand(cfg),
			PatchCommand(cfg),
			DetectCommand(cfg))
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithSynopsis("diff [-filter expr] a b").
		WithDescription(diffDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

const diffDescription = `diff compares two configuration files.

The format of each file is detected from its content unless given with -I.
XML files are compared as element trees: elements are matched by their
identifier attribute (see -id) or, failing that, by attribute similarity
(see -threshold). JSON and YAML files are compared path by path. Other files
are compared line by line, as are structured files which fail to parse.

diff exits with status 1 when differences are found.`

func TextCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TextConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Text, "text").
		WithAliases("t").
		WithSynopsis("text a b").
		WithDescription("compare two files line by line").
		WithRun(func(cc *cli.Context, args []string) error {
			return text(cfg, cc, args)
		})
}

func AlignCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &AlignConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Align, "align").
		WithAliases("a", "side").
		WithSynopsis("align [-width n] a b").
		WithDescription("show two files side by side, aligned on their common lines").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return align(cfg, cc, args)
		})
}

func TreeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TreeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Tree, "tree").
		WithAliases("x", "xml").
		WithSynopsis("tree [-filter expr] a b").
		WithDescription("compare two xml files as element trees").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tree(cfg, cc, args)
		})
}

func PathCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PathConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Path, "path").
		WithAliases("p").
		WithSynopsis("path [-a] [-filter expr] a b").
		WithDescription("compare two json or yaml files path by path, or two xml files attribute by attribute").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return path(cfg, cc, args)
		})
}

func FlattenCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FlattenConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Flatten, "flatten").
		WithAliases("f", "flat").
		WithSynopsis("flatten file").
		WithDescription("list the paths and values of a json, yaml or xml file").
		WithRun(func(cc *cli.Context, args []string) error {
			return flatten(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithSynopsis("patch a b | patch -apply [-json-patch] a b").
		WithDescription("compute the json merge patch from a to b, or apply the patch b to a").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
}

func DetectCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DetectConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Detect, "detect").
		WithSynopsis("detect files...").
		WithDescription("print the detected format of files").
		WithRun(func(cc *cli.Context, args []string) error {
			return detect(cfg, cc, args)
		})
}

