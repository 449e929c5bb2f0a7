// Package expand resolves environment-derived values in configuration
// layers.
//
// String leaves may embed $[expr] references, evaluated with expr-lang
// against a caller-supplied environment. A string consisting of exactly one
// reference is replaced by the typed result; otherwise each reference's
// result is formatted into the surrounding text.
package expand

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/docsmith/siteconf/debug"
	"github.com/docsmith/siteconf/tree"

	"github.com/expr-lang/expr"
	"github.com/goccy/go-yaml"
)

// Env is the evaluation environment for $[expr] references.
type Env map[string]any

// Tree returns a copy of node with all $[expr] references expanded.
// The input is not modified.
func Tree(node *tree.Node, env Env) (*tree.Node, error) {
	switch node.Type {
	case tree.ObjectType:
		pairs := make([]tree.Pair, len(node.Fields))
		for i := range node.Fields {
			xv, err := Tree(node.Values[i], env)
			if err != nil {
				return nil, err
			}
			pairs[i] = tree.Pair{Key: node.Fields[i], Val: xv}
		}
		return tree.FromPairs(pairs), nil
	case tree.ArrayType:
		vs := make([]*tree.Node, len(node.Values))
		for i, elt := range node.Values {
			xv, err := Tree(elt, env)
			if err != nil {
				return nil, err
			}
			vs[i] = xv
		}
		return tree.FromSlice(vs), nil
	case tree.StringType:
		if key, ok := rawRef(node.String); ok {
			val, err := eval(key, env)
			if err != nil {
				return nil, err
			}
			repl, err := tree.FromAny(val)
			if err != nil {
				return nil, fmt.Errorf("could not translate result of %q: %w", key, err)
			}
			return repl, nil
		}
		xs, err := String(node.String, env)
		if err != nil {
			return nil, err
		}
		return tree.FromString(xs), nil
	default:
		return node.Clone(), nil
	}
}

// String expands $[expr] references in v.
//
// Within a reference, backslash escaping is supported:
//   - \] → literal ] (does not close the reference)
//   - \\ → literal \
//
// A reference not closed with an unescaped ] is kept as literal text.
func String(v string, env Env) (string, error) {
	var out []byte
	i := 0
	n := len(v)
	for i < n {
		if v[i] == '$' && i+1 < n && v[i+1] == '[' {
			key, rest, ok := scanRef(v[i+2:])
			if !ok {
				out = append(out, v[i:]...)
				break
			}
			x, err := eval(key, env)
			if err != nil {
				return "", err
			}
			d, err := anyToBytes(x)
			if err != nil {
				return "", fmt.Errorf("could not format result of %q: %w", key, err)
			}
			out = append(out, d...)
			i = n - len(rest)
			continue
		}
		out = append(out, v[i])
		i++
	}
	return string(out), nil
}

// rawRef reports whether v is exactly one $[expr] reference, returning the
// expression.
func rawRef(v string) (string, bool) {
	if !strings.HasPrefix(v, "$[") {
		return "", false
	}
	key, rest, ok := scanRef(v[2:])
	if !ok || rest != "" {
		return "", false
	}
	return key, true
}

// scanRef reads a reference body up to the closing unescaped ], returning
// the unescaped content and the remainder after the ].
func scanRef(v string) (key, rest string, ok bool) {
	var buf []byte
	for i := 0; i < len(v); i++ {
		switch v[i] {
		case '\\':
			if i+1 < len(v) {
				buf = append(buf, v[i+1])
				i++
				continue
			}
			buf = append(buf, v[i])
		case ']':
			return strings.TrimSpace(string(buf)), v[i+1:], true
		default:
			buf = append(buf, v[i])
		}
	}
	return "", "", false
}

func eval(key string, env Env) (any, error) {
	x, err := expr.Eval(key, map[string]any(env))
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", key, err)
	}
	if debug.Expand() {
		debug.Logf("expand %q gave %#v\n", key, x)
	}
	return x, nil
}

func anyToBytes(v any) ([]byte, error) {
	switch x := v.(type) {
	case string:
		return []byte(x), nil
	case bool:
		return []byte(strconv.FormatBool(x)), nil
	case int:
		return []byte(strconv.Itoa(x)), nil
	case int64:
		return []byte(strconv.FormatInt(x, 10)), nil
	case float64:
		return []byte(strconv.FormatFloat(x, 'f', -1, 64)), nil
	default:
		d, err := yaml.Marshal(v)
		if err != nil {
			return nil, err
		}
		return []byte(strings.TrimRight(string(d), "\n")), nil
	}
}
