package tree

import (
	"maps"
	"slices"
)

// Node is one configuration value: a scalar, an ordered array of nodes, or
// an object mapping string keys to nodes. Objects keep their keys in
// insertion order so that rendered output is deterministic; key order has
// no bearing on merge semantics.
type Node struct {
	Type Type

	// Fields holds object keys, parallel to Values. Keys are unique.
	Fields []string
	// Values holds object values (parallel to Fields) or array members.
	Values []*Node

	String  string
	Bool    bool
	Int64   *int64
	Float64 *float64
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

// Object returns an empty object node.
func Object() *Node {
	return &Node{Type: ObjectType}
}

// FromMap builds an object node with keys in sorted order.
func FromMap(m map[string]*Node) *Node {
	res := &Node{Type: ObjectType}
	keys := slices.Sorted(maps.Keys(m))
	res.Fields = keys
	res.Values = make([]*Node, len(keys))
	for i, key := range keys {
		res.Values[i] = m[key]
	}
	return res
}

type Pair struct {
	Key string
	Val *Node
}

// FromPairs builds an object node preserving the given key order.
func FromPairs(pairs []Pair) *Node {
	res := &Node{
		Type:   ObjectType,
		Fields: make([]string, len(pairs)),
		Values: make([]*Node, len(pairs)),
	}
	for i := range pairs {
		res.Fields[i] = pairs[i].Key
		res.Values[i] = pairs[i].Val
	}
	return res
}

func FromSlice(vs []*Node) *Node {
	res := &Node{
		Type:   ArrayType,
		Values: make([]*Node, len(vs)),
	}
	copy(res.Values, vs)
	return res
}

// Get returns the value at field, or nil if n is not an object or has no
// such field.
func (n *Node) Get(field string) *Node {
	if n == nil || n.Type != ObjectType {
		return nil
	}
	for i := range n.Fields {
		if n.Fields[i] == field {
			return n.Values[i]
		}
	}
	return nil
}

// Set replaces the value at field, or appends the field if absent. Existing
// key order is preserved.
func (n *Node) Set(field string, v *Node) {
	for i := range n.Fields {
		if n.Fields[i] == field {
			n.Values[i] = v
			return
		}
	}
	n.Fields = append(n.Fields, field)
	n.Values = append(n.Values, v)
}

// Delete removes field from an object node, reporting whether it was
// present.
func (n *Node) Delete(field string) bool {
	for i := range n.Fields {
		if n.Fields[i] == field {
			n.Fields = slices.Delete(n.Fields, i, i+1)
			n.Values = slices.Delete(n.Values, i, i+1)
			return true
		}
	}
	return false
}

// Clone returns a deep copy sharing no structure with n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	res := &Node{
		Type:   n.Type,
		String: n.String,
		Bool:   n.Bool,
	}
	if n.Int64 != nil {
		i := *n.Int64
		res.Int64 = &i
	}
	if n.Float64 != nil {
		f := *n.Float64
		res.Float64 = &f
	}
	if n.Fields != nil {
		res.Fields = make([]string, len(n.Fields))
		copy(res.Fields, n.Fields)
	}
	if n.Values != nil {
		res.Values = make([]*Node, len(n.Values))
		for i, v := range n.Values {
			res.Values[i] = v.Clone()
		}
	}
	return res
}

// Visit walks n in document order. f returning false prunes descent below
// the current node.
func (n *Node) Visit(f func(n *Node) bool) {
	if !f(n) {
		return
	}
	for _, v := range n.Values {
		v.Visit(f)
	}
}

// Len returns the number of members of an array or object node, 0
// otherwise.
func (n *Node) Len() int {
	switch n.Type {
	case ArrayType, ObjectType:
		return len(n.Values)
	default:
		return 0
	}
}
