package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/lineconf"

	"github.com/scott-cotton/cli"
)

func readFile(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func getDocFile(cfg *MainConfig, cc *cli.Context, path string) (*lineconf.Document, error) {
	d, err := readFile(cc, path)
	if err != nil {
		return nil, err
	}
	doc, err := lineconf.ParseDocument(d, cfg.docOpts(path)...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	return doc, nil
}

// filesOrStdin returns files, or "-" when there are none.
func filesOrStdin(files []string) []string {
	if len(files) == 0 {
		return []string{"-"}
	}
	return files
}
