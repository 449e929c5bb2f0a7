package layer

import (
	"slices"
	"sync"

	"github.com/docsmith/siteconf/compose"
	"github.com/docsmith/siteconf/tree"
)

// Stack is an ordered, append-only list of layers safe for concurrent use.
// Compose folds over a snapshot of the list, so an append racing with a
// composition cannot be observed mid-fold. There is no cached merge state:
// each Compose recomputes from the layers, and reconfiguration is "compose
// again and swap the result", never in-place mutation.
type Stack struct {
	mu     sync.Mutex
	layers []Layer
}

func NewStack(layers ...Layer) *Stack {
	return &Stack{layers: slices.Clone(layers)}
}

// Append adds layers at the end of the stack (highest precedence so far).
func (s *Stack) Append(layers ...Layer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.layers = append(s.layers, layers...)
}

// Layers returns a snapshot copy of the ordered layer list.
func (s *Stack) Layers() []Layer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.layers)
}

// Compose folds the stacked layers into one tree, lowest precedence first.
func (s *Stack) Compose(opts ...compose.Option) *tree.Node {
	layers := s.Layers()
	trees := make([]*tree.Node, len(layers))
	for i := range layers {
		trees[i] = layers[i].Tree
	}
	return compose.ComposeWith(trees, opts...)
}
