// Package tree defines the configuration tree value used throughout
// siteconf.
//
// # Overview
//
// A configuration tree is a recursive tagged union: a scalar (null, bool,
// number, string), an ordered array of trees, or an object mapping string
// keys to trees. Every layer a site assembles — built-in defaults, an
// extension's declared option namespace, the user's override file, values
// derived from the environment — is one such tree, and composing layers
// produces another.
//
// # Node Structure
//
// The Type field selects which of the value fields is meaningful:
//
//   - NullType: no value
//   - BoolType: Bool
//   - NumberType: Int64 or Float64 (exactly one set)
//   - StringType: String
//   - ArrayType: Values
//   - ObjectType: Fields (keys) parallel to Values
//
// Objects keep keys unique and in insertion order. Order makes rendered
// output deterministic; it is not semantically significant to merging.
//
// # Creating Nodes
//
// Use constructor functions:
//
//	node := tree.FromString("hello")
//	num := tree.FromInt(42)
//	obj := tree.FromPairs([]tree.Pair{
//	    {Key: "title", Val: tree.FromString("My Site")},
//	})
//	arr := tree.FromSlice([]*tree.Node{tree.FromInt(1), tree.FromInt(2)})
//
// FromYAML decodes a YAML or JSON document preserving key order; FromAny
// and ToAny/ToOrderedAny bridge to plain Go values.
//
// # Thread Safety
//
// Nodes are not synchronized. Trees handed to the composer are treated as
// immutable; Clone a tree before mutating it if it is shared.
package tree
