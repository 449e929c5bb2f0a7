package extension

import (
	"testing"

	"github.com/docsmith/siteconf/tree"
)

// the registry is global and init-populated, so tests register under
// unique names and assert relative, not absolute, positions.

func TestRegisterValidation(t *testing.T) {
	if err := Register(nil); err == nil {
		t.Errorf("nil extension accepted")
	}
	if err := Register(&Extension{Defaults: tree.Object()}); err == nil {
		t.Errorf("unnamed extension accepted")
	}
	if err := Register(&Extension{Name: "noDefaults"}); err == nil {
		t.Errorf("extension without defaults accepted")
	}
}

func TestRegisterDuplicate(t *testing.T) {
	x := &Extension{Name: "dupTest", Defaults: tree.Object()}
	if err := Register(x); err != nil {
		t.Fatal(err)
	}
	if err := Register(x); err == nil {
		t.Errorf("duplicate registration accepted")
	}
}

func TestAllOrder(t *testing.T) {
	a := &Extension{Name: "orderA", Defaults: tree.Object()}
	b := &Extension{Name: "orderB", Defaults: tree.Object()}
	if err := Register(a); err != nil {
		t.Fatal(err)
	}
	if err := Register(b); err != nil {
		t.Fatal(err)
	}
	posA, posB := -1, -1
	for i, x := range All() {
		switch x.Name {
		case "orderA":
			posA = i
		case "orderB":
			posB = i
		}
	}
	if posA == -1 || posB == -1 || posA >= posB {
		t.Errorf("registration order not preserved: orderA at %d, orderB at %d", posA, posB)
	}
}

func TestDefaultsNamespaced(t *testing.T) {
	defaults := tree.FromPairs([]tree.Pair{
		{Key: "depth", Val: tree.FromInt(2)},
	})
	if err := Register(&Extension{Name: "toc", Defaults: defaults}); err != nil {
		t.Fatal(err)
	}

	var found bool
	for _, l := range Defaults() {
		if l.Name != "extension:toc" {
			continue
		}
		found = true
		ns := l.Tree.Get("toc")
		if ns == nil {
			t.Fatalf("defaults not namespaced: %v", l.Tree)
		}
		if got := ns.Get("depth"); got == nil || *got.Int64 != 2 {
			t.Errorf("depth = %v", got)
		}
		// layers must not alias the registry
		ns.Set("depth", tree.FromInt(99))
		if *defaults.Get("depth").Int64 != 2 {
			t.Errorf("default layer aliases registered tree")
		}
	}
	if !found {
		t.Errorf("no layer for toc in %v", Defaults())
	}
}

func TestBuiltinSite(t *testing.T) {
	x := Lookup("site")
	if x == nil {
		t.Fatal("builtin site extension not registered")
	}
	if got := x.Defaults.Get("baseUrl"); got == nil || got.String != "/" {
		t.Errorf("baseUrl default = %v", got)
	}
	if got := x.Defaults.Get("trailingSlash"); got == nil || got.Bool {
		t.Errorf("trailingSlash default = %v", got)
	}
}
