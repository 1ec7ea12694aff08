package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
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
			Name:        "f",
			Aliases:     []string{"format"},
			Description: "dialect: one/o, rc/r (default detected from file name)",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "lineconf").
		WithSynopsis("lineconf [opts] command [opts]").
		WithDescription("lineconf queries and edits line oriented configuration files, keeping their layout.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return lineconfMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			CheckCommand(cfg),
			GetCommand(cfg),
			MatchCommand(cfg),
			PutCommand(cfg),
			DropCommand(cfg),
			PatchCommand(cfg),
			DiffCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("render configuration files, in color on a terminal").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check [files]").
		WithDescription("check that files parse and render back unchanged").
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &QueryConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, "get").
		WithAliases("g").
		WithSynopsis("get [-where expr] [-v value] <path> [files]").
		WithDescription("print the raw values of the entries at path").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return query(cfg, cc, args, false)
		})
}

func MatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &QueryConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, "match").
		WithAliases("m").
		WithSynopsis("match [-where expr] [-v value] <path> [files]").
		WithDescription("print the paths of the entries at path").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return query(cfg, cc, args, true)
		})
}

func PutCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EditConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Edit, "put").
		WithAliases("p").
		WithSynopsis("put [-w] [-diff] <path> <value> <file>").
		WithDescription("set the value at path, adding the entry if needed").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return put(cfg, cc, args)
		})
}

func DropCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DropConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Drop, "drop").
		WithAliases("rm").
		WithSynopsis("drop [-w] [-diff] [-v value] [-where expr] <path> <file>").
		WithDescription("remove the entries at path").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return drop(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EditConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Edit, "patch").
		WithAliases("pa").
		WithSynopsis("patch [-w] [-diff] <jsonpatch-file> <file>").
		WithDescription(patchDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
}

const patchDescription = `apply a JSON patch (RFC 6902) to a file.

Operation paths are JSON pointers whose tokens form a path, so
"/LOG/SYSTEM" addresses LOG/SYSTEM and "/S[2]/D" addresses S[2]/D.
Values are raw: the JSON string "\"file\"" puts "file" with its quotes.

  add      set the value, adding the entry if needed
  replace  set the value of an existing entry
  remove   drop existing entries
  test     require the path to hold exactly the value

Either every operation applies or the file is left as it was.`

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithSynopsis("diff <a> <b>").
		WithDescription("compare the entries of two files, exit 1 if they differ").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}
