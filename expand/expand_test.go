package expand

import (
	"testing"

	"github.com/docsmith/siteconf/tree"
)

func TestString(t *testing.T) {
	env := Env{
		"name":  "docs",
		"port":  8080,
		"debug": true,
	}
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"$[name]", "docs"},
		{"host:$[port]", "host:8080"},
		{"$[name]-$[port]", "docs-8080"},
		{"$[debug ? \"on\" : \"off\"]", "on"},
		{"$[port + 1]", "8081"},
		// unclosed reference stays literal
		{"$[name", "$[name"},
		// escaped closing bracket
		{`$[name + "\]"]`, "docs]"},
		// dollar without bracket
		{"$5 bill", "$5 bill"},
	}
	for _, tt := range tests {
		got, err := String(tt.in, env)
		if err != nil {
			t.Errorf("String(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("String(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStringError(t *testing.T) {
	if _, err := String("$[1 +]", Env{}); err == nil {
		t.Errorf("expected error for bad expression")
	}
}

func TestTreeTypedReplacement(t *testing.T) {
	env := Env{
		"port":    8080,
		"plugins": []any{"search", "sitemap"},
	}
	node, err := tree.FromYAML([]byte(`
server:
  port: $[port]
  banner: "listening on $[port]"
plugins: $[plugins]
`))
	if err != nil {
		t.Fatal(err)
	}
	snap := node.Clone()

	got, err := Tree(node, env)
	if err != nil {
		t.Fatal(err)
	}

	port := got.Get("server").Get("port")
	if port.Type != tree.NumberType || *port.Int64 != 8080 {
		t.Errorf("port = %v, want typed number 8080", port)
	}
	banner := got.Get("server").Get("banner")
	if banner.String != "listening on 8080" {
		t.Errorf("banner = %q", banner.String)
	}
	plugins := got.Get("plugins")
	if plugins.Type != tree.ArrayType || plugins.Len() != 2 {
		t.Errorf("plugins = %v, want array of 2", plugins)
	}

	if !tree.Equal(node, snap) {
		t.Errorf("Tree mutated its input")
	}
}

func TestTreeScalarsPassThrough(t *testing.T) {
	node, err := tree.FromYAML([]byte("a: 1\nb: null\nc: true"))
	if err != nil {
		t.Fatal(err)
	}
	got, err := Tree(node, Env{})
	if err != nil {
		t.Fatal(err)
	}
	if !tree.Equal(node, got) {
		t.Errorf("expansion changed reference-free tree")
	}
}
