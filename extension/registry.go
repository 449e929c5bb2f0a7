// Package extension registers the option namespaces that pluggable
// extensions contribute to a site's configuration.
//
// Each extension declares a namespace key and a tree of default option
// values. Defaults() turns the registered extensions into ordered layers,
// each namespaced under its key, suitable for composing below user
// overrides.
package extension

import (
	"fmt"
	"sync"

	"github.com/docsmith/siteconf/layer"
	"github.com/docsmith/siteconf/tree"
)

// Extension is one contributed option namespace.
type Extension struct {
	// Name is the namespace key under which the options live in the
	// merged configuration.
	Name string
	// Defaults is the declared default option tree.
	Defaults *tree.Node
}

var (
	mu       sync.RWMutex
	registry = make(map[string]*Extension)
	order    []string
)

// Register registers an extension in the global registry. Registration
// order determines default-layer order.
func Register(x *Extension) error {
	if x == nil {
		return fmt.Errorf("cannot register nil extension")
	}
	if x.Name == "" {
		return fmt.Errorf("extension must have a name")
	}
	if x.Defaults == nil {
		return fmt.Errorf("extension %q must declare defaults", x.Name)
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := registry[x.Name]; exists {
		return fmt.Errorf("extension %q already registered", x.Name)
	}

	registry[x.Name] = x
	order = append(order, x.Name)
	return nil
}

// Lookup looks up an extension by namespace key.
func Lookup(name string) *Extension {
	mu.RLock()
	defer mu.RUnlock()
	return registry[name]
}

// All returns all registered extensions in registration order.
func All() []*Extension {
	mu.RLock()
	defer mu.RUnlock()

	res := make([]*Extension, 0, len(order))
	for _, name := range order {
		res = append(res, registry[name])
	}
	return res
}

// Defaults returns one layer per registered extension, in registration
// order, each holding the extension's declared defaults under its
// namespace key. The returned trees share no structure with the registry.
func Defaults() []layer.Layer {
	xs := All()
	res := make([]layer.Layer, 0, len(xs))
	for _, x := range xs {
		res = append(res, layer.Layer{
			Name: "extension:" + x.Name,
			Tree: tree.FromPairs([]tree.Pair{
				{Key: x.Name, Val: x.Defaults.Clone()},
			}),
		})
	}
	return res
}
