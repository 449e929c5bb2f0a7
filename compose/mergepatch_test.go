package compose

import (
	"testing"
)

func TestMergePatch(t *testing.T) {
	doc := mustTree(t, `{"a": {"x": 1, "y": 2}, "keep": true}`)
	res, err := MergePatch(doc, []byte(`{"a": {"x": null, "z": 3}}`))
	if err != nil {
		t.Fatal(err)
	}
	// null deletes under RFC 7386, unlike Compose
	a := res.Get("a")
	if a.Get("x") != nil {
		t.Errorf("x not deleted: %v", a)
	}
	if got := a.Get("y"); got == nil || *got.Int64 != 2 {
		t.Errorf("y disturbed: %v", a)
	}
	if got := a.Get("z"); got == nil || *got.Int64 != 3 {
		t.Errorf("z not added: %v", a)
	}
	if got := res.Get("keep"); got == nil || !got.Bool {
		t.Errorf("keep disturbed: %v", res)
	}
}

func TestMergePatchBadPatch(t *testing.T) {
	doc := mustTree(t, `{"a": 1}`)
	if _, err := MergePatch(doc, []byte(`{`)); err == nil {
		t.Errorf("expected error for malformed patch")
	}
}

func TestApplyJSONPatch(t *testing.T) {
	doc := mustTree(t, `{"a": [1, 2], "b": "x"}`)
	patch := []byte(`[
		{"op": "add", "path": "/a/-", "value": 3},
		{"op": "remove", "path": "/b"}
	]`)
	res, err := ApplyJSONPatch(doc, patch)
	if err != nil {
		t.Fatal(err)
	}
	if got := res.Get("a"); got.Len() != 3 {
		t.Errorf("a = %v, want 3 elements", got)
	}
	if res.Get("b") != nil {
		t.Errorf("b not removed: %v", res)
	}
}
