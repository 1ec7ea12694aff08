package main

import (
	"fmt"

	"github.com/signadot/lineconf"

	"github.com/scott-cotton/cli"
)

// fileHit is a hit in the json and yaml output of get and match.
type fileHit struct {
	File         string `json:"file" yaml:"file"`
	lineconf.Hit `yaml:",inline"`
}

func query(cfg *QueryConfig, cc *cli.Context, args []string, paths bool) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		cfg.Command.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		name := "get"
		if paths {
			name = "match"
		}
		return fmt.Errorf("%w: %s requires a path argument", cli.ErrUsage, name)
	}
	path := args[0]
	sel, err := selector(cfg.Where, cfg.Value)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	files := filesOrStdin(args[1:])
	var res []fileHit
	for _, file := range files {
		doc, err := getDocFile(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		hits, err := doc.FindFunc(path, sel)
		if err != nil {
			return fmt.Errorf("error querying %s with %s: %w", file, path, err)
		}
		for _, h := range hits {
			res = append(res, fileHit{File: file, Hit: h})
		}
	}
	if cfg.structured() {
		return cfg.writeStructured(cc.Out, res)
	}
	for _, h := range res {
		line := h.Value
		if paths {
			line = h.Path
		}
		if len(files) > 1 {
			line = h.File + ":" + line
		}
		if _, err := fmt.Fprintln(cc.Out, line); err != nil {
			return err
		}
	}
	return nil
}

// selector combines the -v and -where options into one hit filter.
func selector(where, value string) (func(lineconf.Hit) (bool, error), error) {
	var fs []func(lineconf.Hit) (bool, error)
	if value != "" {
		fs = append(fs, lineconf.ValueIs(value))
	}
	if where != "" {
		f, err := lineconf.Where(where)
		if err != nil {
			return nil, err
		}
		fs = append(fs, f)
	}
	if len(fs) == 0 {
		return nil, nil
	}
	return func(h lineconf.Hit) (bool, error) {
		for _, f := range fs {
			ok, err := f(h)
			if err != nil || !ok {
				return false, err
			}
		}
		return true, nil
	}, nil
}
