package main

import (
	"fmt"

	"github.com/signadot/lineconf"
	"github.com/signadot/lineconf/libdiff"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	failed := 0
	for _, file := range filesOrStdin(args) {
		ok, err := checkFile(cfg, cc, file)
		if err != nil {
			return err
		}
		if !ok {
			failed++
		}
	}
	if failed > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// checkFile reports whether file parses and renders back to its exact
// bytes.
func checkFile(cfg *CheckConfig, cc *cli.Context, file string) (bool, error) {
	d, err := readFile(cc, file)
	if err != nil {
		return false, err
	}
	doc, err := lineconf.ParseDocument(d, cfg.docOpts(file)...)
	if err != nil {
		theLog.Error("parse failed", "file", file, "error", err)
		return false, nil
	}
	out, err := doc.Render()
	if err != nil {
		theLog.Error("render failed", "file", file, "error", err)
		return false, nil
	}
	if out != string(d) {
		u, err := libdiff.Unified(file, string(d), out)
		if err != nil {
			return false, err
		}
		theLog.Error("round trip changed the file", "file", file)
		fmt.Fprint(cc.Out, u)
		return false, nil
	}
	theLog.Info("ok", "file", file, "format", doc.Format())
	return true, nil
}
