// Package compose folds ordered configuration layers into one tree.
//
// Composition is a pure, total function: it cannot fail, never mutates its
// inputs, and shares no structure between inputs and output. Later layers
// take precedence on conflicting values. Objects merge recursively by key
// union; arrays are replaced wholesale by the later layer; everything else
// — scalar against scalar, or any type mismatch — resolves to the later
// layer's value, with an explicit null counting as a value.
package compose

import (
	"strconv"

	"github.com/docsmith/siteconf/debug"
	"github.com/docsmith/siteconf/tree"
)

// Compose folds layers left to right, later layers taking precedence. No
// layers yields an empty object. Nil layers are skipped.
func Compose(layers ...*tree.Node) *tree.Node {
	return ComposeWith(layers)
}

// ComposeWith is Compose with options, e.g. a diagnostic observer.
func ComposeWith(layers []*tree.Node, opts ...Option) *tree.Node {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	var res *tree.Node
	for _, l := range layers {
		if l == nil {
			continue
		}
		if res == nil {
			res = l.Clone()
			continue
		}
		res = merge(res, l, "$", cfg)
	}
	if res == nil {
		return tree.Object()
	}
	return res
}

// Merge merges a single override into base, returning a new tree.
func Merge(base, override *tree.Node) *tree.Node {
	return Compose(base, override)
}

type config struct {
	observe func(Diagnostic)
}

// Option configures a composition.
type Option func(*config)

// Observe registers f to receive diagnostics during composition.
// Diagnostics are informational; they never affect the result.
func Observe(f func(Diagnostic)) Option {
	return func(cfg *config) { cfg.observe = f }
}

// merge may return base, override, or parts of either; callers own both
// arguments (Compose clones at the boundary), so subtrees taken unchanged
// are cloned here before inclusion in the result.
func merge(base, override *tree.Node, path string, cfg *config) *tree.Node {
	if debug.Compose() {
		debug.Logf("compose %s: %s <- %s\n", path, base.Type, override.Type)
	}
	if base.Type == tree.ObjectType && override.Type == tree.ObjectType {
		return mergeObjects(base, override, path, cfg)
	}
	if base.Type == tree.ArrayType && override.Type == tree.ArrayType {
		if len(base.Values) > 0 && len(override.Values) == 0 {
			cfg.emit(Diagnostic{
				Path:     path,
				Kind:     ArrayDiscard,
				Base:     base.Type,
				Override: override.Type,
			})
		}
		return override.Clone()
	}
	if base.Type != override.Type && base.Type != tree.NullType && override.Type != tree.NullType {
		cfg.emit(Diagnostic{
			Path:     path,
			Kind:     TypeMismatch,
			Base:     base.Type,
			Override: override.Type,
		})
	}
	return override.Clone()
}

func mergeObjects(base, override *tree.Node, path string, cfg *config) *tree.Node {
	res := &tree.Node{
		Type:   tree.ObjectType,
		Fields: make([]string, 0, len(base.Fields)+len(override.Fields)),
		Values: make([]*tree.Node, 0, len(base.Fields)+len(override.Fields)),
	}
	overrideMap := make(map[string]*tree.Node, len(override.Fields))
	for i := range override.Fields {
		overrideMap[override.Fields[i]] = override.Values[i]
	}
	// base keys first, merged where the override has an opinion
	for i := range base.Fields {
		field := base.Fields[i]
		bv := base.Values[i]
		ov, present := overrideMap[field]
		if !present {
			res.Fields = append(res.Fields, field)
			res.Values = append(res.Values, bv.Clone())
			continue
		}
		res.Fields = append(res.Fields, field)
		res.Values = append(res.Values, merge(bv, ov, childPath(path, field), cfg))
		delete(overrideMap, field)
	}
	// then override-only keys, in override order
	for i := range override.Fields {
		field := override.Fields[i]
		ov, present := overrideMap[field]
		if !present {
			continue
		}
		res.Fields = append(res.Fields, field)
		res.Values = append(res.Values, ov.Clone())
	}
	return res
}

func (cfg *config) emit(d Diagnostic) {
	if cfg.observe == nil {
		return
	}
	cfg.observe(d)
}

func childPath(path, field string) string {
	if needsQuote(field) {
		return path + "[" + strconv.Quote(field) + "]"
	}
	return path + "." + field
}

func needsQuote(field string) bool {
	if field == "" {
		return true
	}
	for i := 0; i < len(field); i++ {
		c := field[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_' || c == '-':
		default:
			return true
		}
	}
	return false
}
