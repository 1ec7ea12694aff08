package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/signadot/lineconf"
	"github.com/signadot/lineconf/encode"
	"github.com/signadot/lineconf/format"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='render with color'"`
	J     bool `cli:"name=j aliases=json desc='print results in json'"`
	Y     bool `cli:"name=y aliases=yaml desc='print results in yaml'"`

	Format *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc() cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		cfg.Format = &f
		return f, nil
	})
}

// docOpts returns the document options for file. Without -f the dialect
// is detected from the file name.
func (cfg *MainConfig) docOpts(file string) []lineconf.Option {
	if cfg.Format != nil {
		return []lineconf.Option{lineconf.WithFormat(*cfg.Format)}
	}
	f, ok := format.Detect(file)
	if !ok && file != "-" {
		theLog.Debug("dialect not recognized", "file", file, "format", f)
	}
	return []lineconf.Option{lineconf.WithFormat(f)}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	if cfg.Color {
		color.NoColor = false
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	return nil
}

// structured reports whether results are printed as json or yaml.
func (cfg *MainConfig) structured() bool {
	return cfg.J || cfg.Y
}

func (cfg *MainConfig) writeStructured(w io.Writer, v any) error {
	var (
		d   []byte
		err error
	)
	switch {
	case cfg.Y:
		d, err = yaml.Marshal(v)
	default:
		d, err = json.MarshalIndent(v, "", "  ")
		d = append(d, '\n')
	}
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Check *cli.Command
}

type QueryConfig struct {
	*MainConfig

	Where string `cli:"name=where desc='only entries satisfying an expr predicate'"`
	Value string `cli:"name=v desc='only entries with this raw value'"`

	Command *cli.Command
}

type EditConfig struct {
	*MainConfig

	Write bool `cli:"name=w desc='write the result back to the file'"`
	Diff  bool `cli:"name=diff desc='print a unified diff instead of the result'"`

	Edit *cli.Command
}

type DropConfig struct {
	*MainConfig

	Write bool   `cli:"name=w desc='write the result back to the file'"`
	Diff  bool   `cli:"name=diff desc='print a unified diff instead of the result'"`
	Where string `cli:"name=where desc='only entries satisfying an expr predicate'"`
	Value string `cli:"name=v desc='only entries with this raw value'"`

	Drop *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}
