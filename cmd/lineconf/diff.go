package main

import (
	"fmt"

	"github.com/signadot/lineconf"
	"github.com/signadot/lineconf/libdiff"

	"github.com/fatih/color"
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
	a, err := getDocFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	b, err := getDocFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	changes, err := lineconf.Diff(a, b)
	if err != nil {
		return err
	}
	if !libdiff.Changed(changes) {
		return nil
	}
	if err := writeChanges(cfg, cc, changes); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

func writeChanges(cfg *DiffConfig, cc *cli.Context, changes []libdiff.Change) error {
	var changed []libdiff.Change
	for _, c := range changes {
		if c.Op != libdiff.Equal {
			changed = append(changed, c)
		}
	}
	if cfg.structured() {
		lines := make([]string, len(changed))
		for i, c := range changed {
			lines[i] = c.String()
		}
		return cfg.writeStructured(cc.Out, lines)
	}
	colored := len(cfg.encOpts(cc.Out)) > 0
	for _, c := range changed {
		line := c.String()
		if colored {
			switch c.Op {
			case libdiff.Insert:
				line = color.GreenString("%s", line)
			case libdiff.Delete:
				line = color.RedString("%s", line)
			}
		}
		if _, err := fmt.Fprintln(cc.Out, line); err != nil {
			return err
		}
	}
	return nil
}
