package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/docsmith/siteconf/compose"
	"github.com/docsmith/siteconf/expand"
	"github.com/docsmith/siteconf/extension"
	"github.com/docsmith/siteconf/layer"
	"github.com/docsmith/siteconf/render"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func composeRun(cfg *ComposeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Compose.Parse(cc, args)
	if err != nil {
		cfg.Compose.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	stack := layer.NewStack()
	if !cfg.Bare {
		stack.Append(extension.Defaults()...)
	}
	for _, arg := range args {
		l, err := layer.FromFile(arg)
		if err != nil {
			return err
		}
		stack.Append(l)
	}
	if !cfg.Bare {
		envLayer, err := layer.FromEnv()
		if err != nil {
			return err
		}
		if envLayer != nil {
			stack.Append(*envLayer)
		}
	}
	var opts []compose.Option
	if cfg.Verbose {
		opts = append(opts, compose.Observe(func(d compose.Diagnostic) {
			fmt.Fprintf(os.Stderr, "warning: %s\n", d)
		}))
	}
	res := stack.Compose(opts...)
	if len(cfg.Env) > 0 {
		res, err = expand.Tree(res, expand.Env(cfg.Env))
		if err != nil {
			return fmt.Errorf("error expanding composed configuration: %w", err)
		}
	}
	return render.Write(cc.Out, res, cfg.format(), cfg.colored(cc.Out))
}

func envOptTypeFunc(env map[string]any) func(cc *cli.Context, a string) (any, error) {
	return func(cc *cli.Context, a string) (any, error) {
		if err := envFunc(env, a); err != nil {
			return nil, err
		}
		return 0, nil
	}
}

func envFunc(env map[string]any, a string) error {
	key, val, ok := strings.Cut(a, "=")
	if !ok {
		return fmt.Errorf("%w: -e wants path=val, got %q", cli.ErrUsage, a)
	}
	var v any
	if err := yaml.Unmarshal([]byte(val), &v); err != nil {
		return fmt.Errorf("%w: could not decode value %q: %w", cli.ErrUsage, val, err)
	}
	env[key] = v
	return nil
}
