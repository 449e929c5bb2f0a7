package extension

import "github.com/docsmith/siteconf/tree"

// The site namespace carries the options every site has, independent of
// any installed extension. It registers first so any extension or user
// layer can override it.
func init() {
	if err := Register(Site()); err != nil {
		panic(err)
	}
}

// Site returns the built-in site option namespace.
func Site() *Extension {
	return &Extension{
		Name: "site",
		Defaults: tree.FromPairs([]tree.Pair{
			{Key: "title", Val: tree.FromString("")},
			{Key: "tagline", Val: tree.FromString("")},
			{Key: "url", Val: tree.FromString("")},
			{Key: "baseUrl", Val: tree.FromString("/")},
			{Key: "locale", Val: tree.FromString("en")},
			{Key: "onBrokenLinks", Val: tree.FromString("warn")},
			{Key: "trailingSlash", Val: tree.FromBool(false)},
			{Key: "markdown", Val: tree.FromPairs([]tree.Pair{
				{Key: "format", Val: tree.FromString("commonmark")},
				{Key: "mermaid", Val: tree.FromBool(false)},
			})},
			{Key: "exclude", Val: tree.FromSlice([]*tree.Node{
				tree.FromString("**/_*.md"),
				tree.FromString("**/.*"),
			})},
		}),
	}
}
