package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/lineconf"
	"github.com/signadot/lineconf/libdiff"

	"github.com/scott-cotton/cli"
)

func put(cfg *EditConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Edit.Parse(cc, args)
	if err != nil {
		cfg.Edit.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 3 {
		return fmt.Errorf("%w: put requires 3 arguments, a path, a value and a file", cli.ErrUsage)
	}
	path, value, file := args[0], args[1], args[2]
	doc, err := getDocFile(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	before, err := doc.Render()
	if err != nil {
		return err
	}
	if err := doc.Put(path, value); err != nil {
		return fmt.Errorf("error putting %s in %s: %w", path, file, err)
	}
	return emit(cfg.MainConfig, cc, file, before, doc, cfg.Write, cfg.Diff)
}

func drop(cfg *DropConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Drop.Parse(cc, args)
	if err != nil {
		cfg.Drop.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: drop requires 2 arguments, a path and a file", cli.ErrUsage)
	}
	path, file := args[0], args[1]
	sel, err := selector(cfg.Where, cfg.Value)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	doc, err := getDocFile(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	before, err := doc.Render()
	if err != nil {
		return err
	}
	n, err := doc.DropFunc(path, sel)
	if err != nil {
		return fmt.Errorf("error dropping %s from %s: %w", path, file, err)
	}
	theLog.Info("dropped", "file", file, "path", path, "entries", n)
	return emit(cfg.MainConfig, cc, file, before, doc, cfg.Write, cfg.Diff)
}

func patch(cfg *EditConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Edit.Parse(cc, args)
	if err != nil {
		cfg.Edit.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires 2 arguments, a json patch file and a file to which to apply it", cli.ErrUsage)
	}
	if args[0] == "-" && args[1] == "-" {
		return fmt.Errorf("%w: only one of the patch and the file may be read from stdin", cli.ErrUsage)
	}
	p, err := readFile(cc, args[0])
	if err != nil {
		return err
	}
	file := args[1]
	doc, err := getDocFile(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	before, err := doc.Render()
	if err != nil {
		return err
	}
	if err := doc.ApplyJSONPatch(p); err != nil {
		return fmt.Errorf("error patching %s: %w", file, err)
	}
	return emit(cfg.MainConfig, cc, file, before, doc, cfg.Write, cfg.Diff)
}

// emit writes the edited doc back to file when write is set, and prints
// either a unified diff against before or the document itself.
func emit(cfg *MainConfig, cc *cli.Context, file, before string, doc *lineconf.Document, write, showDiff bool) error {
	after, err := doc.Render()
	if err != nil {
		return err
	}
	if write {
		if err := writeBack(file, after); err != nil {
			return err
		}
		theLog.Info("wrote", "file", file, "bytes", len(after))
	}
	switch {
	case showDiff:
		u, err := libdiff.Unified(file, before, after)
		if err != nil {
			return err
		}
		_, err = io.WriteString(cc.Out, u)
		return err
	case write:
		return nil
	default:
		return doc.Encode(cc.Out, cfg.encOpts(cc.Out)...)
	}
}

func writeBack(file, text string) error {
	if file == "-" {
		return fmt.Errorf("%w: cannot write back to stdin", cli.ErrUsage)
	}
	mode := os.FileMode(0644)
	if fi, err := os.Stat(file); err == nil {
		mode = fi.Mode().Perm()
	}
	return os.WriteFile(file, []byte(text), mode)
}
