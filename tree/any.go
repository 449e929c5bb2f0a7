package tree

import (
	"fmt"
	"math"
	"sort"

	"github.com/goccy/go-yaml"
)

// FromAny converts a decoded Go value into a node. Object key order is
// preserved for yaml.MapSlice inputs; plain map inputs get sorted keys.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return x.Clone(), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int8:
		return FromInt(int64(x)), nil
	case int16:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint:
		return FromAny(uint64(x))
	case uint8:
		return FromInt(int64(x)), nil
	case uint16:
		return FromInt(int64(x)), nil
	case uint32:
		return FromInt(int64(x)), nil
	case uint64:
		if x > math.MaxInt64 {
			return nil, fmt.Errorf("unsupported value %v (%T): exceeds max int64", v, v)
		}
		return FromInt(int64(x)), nil
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		return FromFloat(x), nil
	case []any:
		vs := make([]*Node, len(x))
		for i := range x {
			elt, err := FromAny(x[i])
			if err != nil {
				return nil, err
			}
			vs[i] = elt
		}
		return FromSlice(vs), nil
	case yaml.MapSlice:
		pairs := make([]Pair, 0, len(x))
		for i := range x {
			key, ok := x[i].Key.(string)
			if !ok {
				return nil, fmt.Errorf("unsupported object key %v (%T)", x[i].Key, x[i].Key)
			}
			val, err := FromAny(x[i].Value)
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, Pair{Key: key, Val: val})
		}
		return FromPairs(pairs), nil
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make([]Pair, 0, len(keys))
		for _, k := range keys {
			val, err := FromAny(x[k])
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, Pair{Key: k, Val: val})
		}
		return FromPairs(pairs), nil
	default:
		return nil, fmt.Errorf("unsupported value %v (%T)", v, v)
	}
}

// ToAny converts a node to plain Go values, objects becoming
// map[string]any. Key order is lost; use ToOrderedAny where order matters.
func ToAny(n *Node) any {
	switch n.Type {
	case ObjectType:
		res := make(map[string]any, len(n.Fields))
		for i := range n.Fields {
			res[n.Fields[i]] = ToAny(n.Values[i])
		}
		return res
	case ArrayType:
		res := make([]any, len(n.Values))
		for i, elt := range n.Values {
			res[i] = ToAny(elt)
		}
		return res
	case StringType:
		return n.String
	case NumberType:
		if n.Int64 != nil {
			return *n.Int64
		}
		if n.Float64 != nil {
			return *n.Float64
		}
		return int64(0)
	case BoolType:
		return n.Bool
	case NullType:
		return nil
	default:
		panic("impossible production")
	}
}

// ToOrderedAny is ToAny with objects as yaml.MapSlice, preserving key
// order through yaml.Marshal.
func ToOrderedAny(n *Node) any {
	switch n.Type {
	case ObjectType:
		res := make(yaml.MapSlice, len(n.Fields))
		for i := range n.Fields {
			res[i] = yaml.MapItem{
				Key:   n.Fields[i],
				Value: ToOrderedAny(n.Values[i]),
			}
		}
		return res
	case ArrayType:
		res := make([]any, len(n.Values))
		for i, elt := range n.Values {
			res[i] = ToOrderedAny(elt)
		}
		return res
	default:
		return ToAny(n)
	}
}

// FromYAML decodes one YAML (or JSON) document into a node, preserving
// object key order. An empty document decodes to a null node.
func FromYAML(data []byte) (*Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(data, &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return FromAny(v)
}
