package main

import (
	"fmt"

	"github.com/docsmith/siteconf/layer"
	"github.com/docsmith/siteconf/render"

	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diffRun(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 arguments", cli.ErrUsage)
	}
	from, err := renderedFile(cfg, args[0])
	if err != nil {
		return err
	}
	to, err := renderedFile(cfg, args[1])
	if err != nil {
		return err
	}
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(from, to, true)
	diffs = dmp.DiffCleanupSemantic(diffs)
	if cfg.colored(cc.Out) {
		fmt.Fprint(cc.Out, dmp.DiffPrettyText(diffs))
		return nil
	}
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffInsert:
			fmt.Fprintf(cc.Out, "+%s", d.Text)
		case diffpatch.DiffDelete:
			fmt.Fprintf(cc.Out, "-%s", d.Text)
		case diffpatch.DiffEqual:
			fmt.Fprint(cc.Out, d.Text)
		}
	}
	return nil
}

func renderedFile(cfg *DiffConfig, path string) (string, error) {
	l, err := layer.FromFile(path)
	if err != nil {
		return "", err
	}
	d, err := render.YAML(l.Tree)
	if err != nil {
		return "", fmt.Errorf("could not render %q: %w", path, err)
	}
	return string(d), nil
}
