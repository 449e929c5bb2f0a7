package main

import (
	"fmt"

	"github.com/docsmith/siteconf/extension"
	"github.com/docsmith/siteconf/render"

	"github.com/scott-cotton/cli"
)

func extensionsRun(cfg *ExtensionsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Extensions.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: extensions takes no arguments", cli.ErrUsage)
	}
	for _, x := range extension.All() {
		fmt.Fprintf(cc.Out, "%s:\n", x.Name)
		d, err := render.YAML(x.Defaults)
		if err != nil {
			return fmt.Errorf("could not render defaults of %q: %w", x.Name, err)
		}
		for _, ln := range splitLines(string(d)) {
			fmt.Fprintf(cc.Out, "  %s\n", ln)
		}
	}
	return nil
}

func splitLines(s string) []string {
	var res []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			res = append(res, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		res = append(res, s[start:])
	}
	return res
}
