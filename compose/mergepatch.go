package compose

import (
	"fmt"

	"github.com/docsmith/siteconf/tree"

	jsonpatch "github.com/evanphx/json-patch"
)

// MergePatch applies an RFC 7386 JSON merge patch to doc and returns the
// patched tree. Unlike Compose, a null in the patch deletes the key it
// addresses; this is the explicit opt-in for "unset" semantics. Object key
// order of the result follows encoding/json map ordering (sorted).
func MergePatch(doc *tree.Node, patch []byte) (*tree.Node, error) {
	d, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("could not marshal document: %w", err)
	}
	out, err := jsonpatch.MergePatch(d, patch)
	if err != nil {
		return nil, fmt.Errorf("could not apply merge patch: %w", err)
	}
	res, err := tree.FromYAML(out)
	if err != nil {
		return nil, fmt.Errorf("could not decode patched document: %w", err)
	}
	return res, nil
}

// ApplyJSONPatch applies an RFC 6902 JSON patch (an array of operations)
// to doc.
func ApplyJSONPatch(doc *tree.Node, patch []byte) (*tree.Node, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("could not decode patch: %w", err)
	}
	d, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("could not marshal document: %w", err)
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, err
	}
	res, err := tree.FromYAML(out)
	if err != nil {
		return nil, fmt.Errorf("could not decode patched document: %w", err)
	}
	return res, nil
}
