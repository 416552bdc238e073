package main

import (
	"go/parser"
	"go/token"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const modulePath = "github.com/milk9111/fragmentrun"

// The terminal binary must build without cgo or a display, so nothing it
// reaches inside the module may import Ebitengine.
func TestTerminalDriverAvoidsEbitengine(t *testing.T) {
	seen := map[string]bool{}
	var walk func(dir string)
	walk = func(dir string) {
		if seen[dir] {
			return
		}
		seen[dir] = true

		files, err := filepath.Glob(filepath.Join(dir, "*.go"))
		require.NoError(t, err)
		for _, f := range files {
			if strings.HasSuffix(f, "_test.go") {
				continue
			}
			af, err := parser.ParseFile(token.NewFileSet(), f, nil, parser.ImportsOnly)
			require.NoError(t, err)
			for _, imp := range af.Imports {
				path, err := strconv.Unquote(imp.Path.Value)
				require.NoError(t, err)
				require.False(t, strings.HasPrefix(path, "github.com/hajimehoshi/ebiten"), "%s imports %s", f, path)
				if rel, ok := strings.CutPrefix(path, modulePath+"/"); ok {
					walk(filepath.Join("..", "..", filepath.FromSlash(rel)))
				}
			}
		}
	}
	walk(".")
	require.Contains(t, seen, filepath.Join("..", "..", "input", "controls"))
}
