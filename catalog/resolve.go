package catalog

import (
	"os"
	"path/filepath"
)

// defaultCatalogMarker is a subtree whose presence identifies the root of a
// checkout carrying the vendored Crucible asset tree.
const defaultCatalogMarker = "docs/crucible-go"

// ResolveDefaultBaseDir locates the vendored asset tree's root the same way
// gofulmen's resolveDefaultBaseDir does: check the current directory, then
// walk up to four parent directories looking for defaultCatalogMarker,
// falling back to "." if none is found.
func ResolveDefaultBaseDir() string {
	if pathExists(defaultCatalogMarker) {
		return "."
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	current := cwd
	for i := 0; i < 5; i++ {
		if pathExists(filepath.Join(current, defaultCatalogMarker)) {
			return current
		}
		next := filepath.Dir(current)
		if next == current {
			break
		}
		current = next
	}
	return "."
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
