package main

import (
	"io"
	"os"

	"github.com/docsmith/siteconf/render"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Y     bool `cli:"name=y aliases=yaml desc='output in yaml'"`
	J     bool `cli:"name=j aliases=json desc='output in json'"`
	Color bool `cli:"name=color desc='colorize output'"`

	OutFormat *render.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) format() render.Format {
	switch {
	case cfg.J:
		return render.JSONFormat
	case cfg.Y:
		return render.YAMLFormat
	}
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return render.YAMLFormat
}

// colored reports whether to colorize output to w: -color forces it on,
// otherwise only terminals get color.
func (cfg *MainConfig) colored(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	colorSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorSet = opt.Value != nil
		break
	}
	if colorSet {
		// -color=false was given explicitly
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type ComposeConfig struct {
	*MainConfig

	Bare    bool `cli:"name=bare desc='compose only the named files, without extension defaults or $SITECONF_ENV'"`
	Verbose bool `cli:"name=v desc='report merge diagnostics on stderr'"`

	Env map[string]any

	Compose *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type ExtensionsConfig struct {
	*MainConfig

	Extensions *cli.Command
}
