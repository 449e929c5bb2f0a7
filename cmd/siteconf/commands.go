package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/docsmith/siteconf/render"

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
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: yaml/y, json/j",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "siteconf").
		WithSynopsis("siteconf [opts] command [opts]").
		WithDescription("siteconf composes layered site configuration into one tree.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return siteconfMain(cfg, cc, args)
		}).
		WithSubs(
			ComposeCommand(cfg),
			ViewCommand(cfg),
			DiffCommand(cfg),
			ExtensionsCommand(cfg))
}

func siteconfMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.J && cfg.Y {
		return fmt.Errorf("%w: must specify at most one of -j[son] -y[aml]", cli.ErrUsage)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func (cfg *MainConfig) fmtFunc(fp **render.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := render.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func ComposeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ComposeConfig{MainConfig: mainCfg, Env: map[string]any{}}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "e",
			Description: "bind an expansion environment value",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(envOptTypeFunc(cfg.Env)), "(path=val)"),
		})

	cmd := cli.NewCommand("compose").
		WithAliases("c", "co").
		WithSynopsis("compose [-bare] [-v] [-e path=val ...] [files]").
		WithDescription(composeDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return composeRun(cfg, cc, args)
		})
	cfg.Compose = cmd
	return cmd
}

const composeDescription = `compose folds configuration layers into one tree.

Layers are composed lowest precedence first:

1. the declared defaults of registered extensions, in registration order
2. the named files, in argument order
3. a final override from the environment variable $SITECONF_ENV, which may
   hold a yaml or json document

Later layers win on conflicting values: objects merge key by key, arrays
are replaced wholesale, and an explicit null overwrites. With -bare, only
the named files are composed.

After composing, $[expr] references in string values are expanded against
the bindings given with -e (none bound means no expansion).`

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view configuration files, normalized and in color").
		WithRun(func(cc *cli.Context, args []string) error {
			return viewRun(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithSynopsis("diff a b").
		WithDescription("diff two composed configurations").
		WithRun(func(cc *cli.Context, args []string) error {
			return diffRun(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func ExtensionsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExtensionsConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("extensions").
		WithAliases("x", "ext").
		WithSynopsis("extensions").
		WithDescription("list registered extension namespaces and their defaults").
		WithRun(func(cc *cli.Context, args []string) error {
			return extensionsRun(cfg, cc, args)
		})
	cfg.Extensions = cmd
	return cmd
}
