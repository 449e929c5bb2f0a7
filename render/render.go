// Package render turns composed configuration trees back into text.
//
// Output is deterministic: object keys appear in the tree's insertion
// order for both YAML and JSON. Colored YAML output is available for
// terminals.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/docsmith/siteconf/tree"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/lexer"
	"github.com/goccy/go-yaml/printer"
)

// YAML renders node as a YAML document.
func YAML(node *tree.Node) ([]byte, error) {
	return yaml.Marshal(tree.ToOrderedAny(node))
}

// JSON renders node as indented JSON.
func JSON(node *tree.Node) ([]byte, error) {
	d, err := node.MarshalJSON()
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(nil)
	if err := json.Indent(buf, d, "", "  "); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// ColorYAML renders node as YAML with ANSI colors.
func ColorYAML(node *tree.Node) ([]byte, error) {
	d, err := YAML(node)
	if err != nil {
		return nil, err
	}
	tokens := lexer.Tokenize(string(d))
	var p printer.Printer
	p.Bool = propFunc(boolColor)
	p.Number = propFunc(numberColor)
	p.MapKey = propFunc(keyColor)
	p.String = propFunc(stringColor)
	p.Anchor = propFunc(anchorColor)
	p.Alias = propFunc(anchorColor)
	return []byte(p.PrintTokens(tokens) + "\n"), nil
}

// Write renders node to w in the given format, colorizing YAML when
// colored is set. Color is not supported for JSON.
func Write(w io.Writer, node *tree.Node, f Format, colored bool) error {
	var (
		d   []byte
		err error
	)
	switch {
	case f == JSONFormat:
		d, err = JSON(node)
	case colored:
		d, err = ColorYAML(node)
	default:
		d, err = YAML(node)
	}
	if err != nil {
		return fmt.Errorf("could not render: %w", err)
	}
	_, err = w.Write(d)
	return err
}
