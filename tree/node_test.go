package tree

import (
	"testing"
)

func TestGetSetDelete(t *testing.T) {
	obj := FromPairs([]Pair{
		{Key: "a", Val: FromInt(1)},
		{Key: "b", Val: FromInt(2)},
	})
	if got := obj.Get("a"); got == nil || *got.Int64 != 1 {
		t.Errorf("Get(a) = %v", got)
	}
	if got := obj.Get("missing"); got != nil {
		t.Errorf("Get(missing) = %v, want nil", got)
	}

	obj.Set("a", FromInt(10))
	if got := obj.Get("a"); *got.Int64 != 10 {
		t.Errorf("Set did not replace: %v", got)
	}
	if len(obj.Fields) != 2 {
		t.Errorf("Set replaced but grew fields: %v", obj.Fields)
	}

	obj.Set("c", FromInt(3))
	wantOrder := []string{"a", "b", "c"}
	for i, f := range obj.Fields {
		if f != wantOrder[i] {
			t.Errorf("field order %v, want %v", obj.Fields, wantOrder)
			break
		}
	}

	if !obj.Delete("b") {
		t.Errorf("Delete(b) = false")
	}
	if obj.Delete("b") {
		t.Errorf("second Delete(b) = true")
	}
	if got := obj.Get("c"); got == nil || *got.Int64 != 3 {
		t.Errorf("Delete disturbed other fields: %v", obj)
	}
}

func TestGetOnNonObject(t *testing.T) {
	if got := FromString("x").Get("a"); got != nil {
		t.Errorf("Get on string = %v, want nil", got)
	}
	var nilNode *Node
	if got := nilNode.Get("a"); got != nil {
		t.Errorf("Get on nil = %v, want nil", got)
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := FromPairs([]Pair{
		{Key: "list", Val: FromSlice([]*Node{FromInt(1), FromInt(2)})},
		{Key: "nested", Val: FromPairs([]Pair{
			{Key: "x", Val: FromString("y")},
		})},
	})
	cp := orig.Clone()
	if !Equal(orig, cp) {
		t.Fatalf("clone not equal to original")
	}

	cp.Get("list").Values[0] = FromInt(99)
	cp.Get("nested").Set("x", FromString("z"))
	cp.Set("added", Null())

	if *orig.Get("list").Values[0].Int64 != 1 {
		t.Errorf("mutating clone changed original array")
	}
	if orig.Get("nested").Get("x").String != "y" {
		t.Errorf("mutating clone changed original object")
	}
	if orig.Get("added") != nil {
		t.Errorf("mutating clone added field to original")
	}
}

func TestFromMapSortsKeys(t *testing.T) {
	obj := FromMap(map[string]*Node{
		"c": FromInt(3),
		"a": FromInt(1),
		"b": FromInt(2),
	})
	want := []string{"a", "b", "c"}
	for i, f := range obj.Fields {
		if f != want[i] {
			t.Fatalf("fields %v, want %v", obj.Fields, want)
		}
	}
}

func TestVisit(t *testing.T) {
	node := FromPairs([]Pair{
		{Key: "a", Val: FromSlice([]*Node{FromInt(1), FromInt(2)})},
		{Key: "b", Val: FromString("s")},
	})
	count := 0
	node.Visit(func(n *Node) bool {
		count++
		return true
	})
	// root + array + 2 ints + string
	if count != 5 {
		t.Errorf("visited %d nodes, want 5", count)
	}

	pruned := 0
	node.Visit(func(n *Node) bool {
		pruned++
		return n.Type != ArrayType
	})
	// root + array (pruned) + string
	if pruned != 3 {
		t.Errorf("visited %d nodes with pruning, want 3", pruned)
	}
}
