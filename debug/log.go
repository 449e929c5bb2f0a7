package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/docsmith/siteconf/tree"

	"github.com/goccy/go-yaml"
)

type JSON any

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *tree.Node:
			d, err := yaml.Marshal(tree.ToOrderedAny(x))
			if err != nil {
				args[i] = fmt.Sprintf("[raw *tree.Node] %v", x)
				continue
			}
			args[i] = string(d)
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
