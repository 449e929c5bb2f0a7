package main

import (
	"io"

	"github.com/docsmith/siteconf/layer"
	"github.com/docsmith/siteconf/render"

	"github.com/scott-cotton/cli"
)

func viewRun(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	for i, arg := range args {
		l, err := layer.FromFile(arg)
		if err != nil {
			return err
		}
		if err := render.Write(cc.Out, l.Tree, cfg.format(), cfg.colored(cc.Out)); err != nil {
			return err
		}
		if i < len(args)-1 {
			if _, err := io.WriteString(cc.Out, "---\n"); err != nil {
				return err
			}
		}
	}
	return nil
}
