package layer

import (
	"sync"
	"testing"

	"github.com/docsmith/siteconf/tree"
)

func mustLayer(t *testing.T, name, doc string) Layer {
	t.Helper()
	l, err := FromBytes(name, []byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	return l
}

func TestStackCompose(t *testing.T) {
	s := NewStack(
		mustLayer(t, "defaults", "a: 1\nb: {x: 1}"),
		mustLayer(t, "user", "b: {y: 2}"),
	)
	s.Append(mustLayer(t, "env", "a: 3"))

	got := s.Compose()
	want, err := tree.FromYAML([]byte("a: 3\nb: {x: 1, y: 2}"))
	if err != nil {
		t.Fatal(err)
	}
	if !tree.Equal(got, want) {
		gotJSON, _ := got.MarshalJSON()
		t.Errorf("composed %s", gotJSON)
	}
}

func TestStackLayersSnapshot(t *testing.T) {
	s := NewStack(mustLayer(t, "one", "a: 1"))
	snap := s.Layers()
	s.Append(mustLayer(t, "two", "a: 2"))
	if len(snap) != 1 {
		t.Errorf("snapshot grew with later append: %d", len(snap))
	}
	if len(s.Layers()) != 2 {
		t.Errorf("stack has %d layers, want 2", len(s.Layers()))
	}
}

func TestStackConcurrentAppendCompose(t *testing.T) {
	s := NewStack(mustLayer(t, "base", "n: 0"))
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Append(mustLayer(t, "l", "n: 1"))
		}()
		go func() {
			defer wg.Done()
			res := s.Compose()
			if res.Get("n") == nil {
				t.Errorf("composed result missing n")
			}
		}()
	}
	wg.Wait()
	if got := s.Compose().Get("n"); *got.Int64 != 1 {
		t.Errorf("final n = %v", got)
	}
}
