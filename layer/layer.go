// Package layer names and loads partial configuration trees.
//
// A Layer is one partial configuration tree contributed by a single source:
// an extension's declared defaults, a file the user authored, or the
// process environment. Layers are totally ordered by the caller; order is
// the sole determinant of precedence when composing.
package layer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/docsmith/siteconf/debug"
	"github.com/docsmith/siteconf/tree"

	"github.com/tidwall/jsonc"
)

// EnvVar names the environment variable holding an optional final override
// layer, as a YAML (or JSON) document.
const EnvVar = "SITECONF_ENV"

// Layer is one named configuration tree.
type Layer struct {
	// Name describes the source, e.g. a file path, "env", or an
	// extension namespace.
	Name string
	Tree *tree.Node
}

// FromBytes decodes a YAML or JSON document into a layer. An empty
// document contributes an empty object (no opinion on any key).
func FromBytes(name string, data []byte) (Layer, error) {
	node, err := tree.FromYAML(data)
	if err != nil {
		return Layer{}, fmt.Errorf("could not decode layer %q: %w", name, err)
	}
	if node.Type == tree.NullType {
		node = tree.Object()
	}
	if debug.Load() {
		debug.Logf("loaded layer %q:\n%s", name, debug.JSON(node))
	}
	return Layer{Name: name, Tree: node}, nil
}

// FromFile loads a layer from a .yaml, .yml, .json, or .jsonc file. JSONC
// content is translated to plain JSON before decoding.
func FromFile(path string) (Layer, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return Layer{}, fmt.Errorf("could not read %q: %w", path, err)
	}
	if filepath.Ext(path) == ".jsonc" {
		d = jsonc.ToJSON(d)
	}
	return FromBytes(path, d)
}

// FromEnv loads the override layer from $SITECONF_ENV. It returns nil with
// no error when the variable is unset or empty.
func FromEnv() (*Layer, error) {
	v := os.Getenv(EnvVar)
	if v == "" {
		return nil, nil
	}
	l, err := FromBytes("env", []byte(v))
	if err != nil {
		return nil, fmt.Errorf("error decoding $%s: %w", EnvVar, err)
	}
	return &l, nil
}
