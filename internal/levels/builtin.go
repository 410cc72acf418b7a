package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Builtin returns the levels shipped with the binary, sorted by ID.
// The embedded files are part of the build, so a parse failure panics.
func Builtin() []Level {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		panic(fmt.Sprintf("levels: reading builtin levels: %v", err))
	}

	out := make([]Level, 0, len(entries))
	for _, e := range entries {
		name := path.Join("builtin", e.Name())
		data, err := builtinFS.ReadFile(name)
		if err != nil {
			panic(fmt.Sprintf("levels: reading %s: %v", name, err))
		}
		lvl, err := ParseYAML(data)
		if err != nil {
			panic(fmt.Sprintf("levels: parsing %s: %v", name, err))
		}
		out = append(out, lvl)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}
