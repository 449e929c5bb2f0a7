package render

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml/printer"
)

const escape = "\x1b"

var (
	keyColor    = color.FgHiCyan
	stringColor = color.FgGreen
	numberColor = color.FgHiBlue
	boolColor   = color.FgHiMagenta
	anchorColor = color.FgHiYellow
)

func propFunc(attr color.Attribute) func() *printer.Property {
	return func() *printer.Property {
		return &printer.Property{
			Prefix: format(attr),
			Suffix: format(color.Reset),
		}
	}
}

func format(attr color.Attribute) string {
	return fmt.Sprintf("%s[%dm", escape, attr)
}
