package compose

import (
	"fmt"

	"github.com/docsmith/siteconf/tree"
)

// Kind classifies a composition diagnostic.
type Kind int

const (
	// TypeMismatch: base and override held different, non-null types at
	// the same path; the override value won.
	TypeMismatch Kind = iota
	// ArrayDiscard: an empty override array discarded a non-empty base
	// array.
	ArrayDiscard
)

func (k Kind) String() string {
	switch k {
	case TypeMismatch:
		return "type-mismatch"
	case ArrayDiscard:
		return "array-discard"
	}
	return "<unknown kind>"
}

// Diagnostic reports one noteworthy, non-fatal event observed while
// merging two layers.
type Diagnostic struct {
	Path     string
	Kind     Kind
	Base     tree.Type
	Override tree.Type
}

func (d Diagnostic) String() string {
	switch d.Kind {
	case ArrayDiscard:
		return fmt.Sprintf("%s at %s: override empties a non-empty array", d.Kind, d.Path)
	default:
		return fmt.Sprintf("%s at %s: %s overridden by %s", d.Kind, d.Path, d.Base, d.Override)
	}
}
