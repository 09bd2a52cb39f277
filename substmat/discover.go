package substmat

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// DiscoverFiles walks dir looking for substitution-matrix JSON files
// matching pattern (e.g. "blosum-*.json" or "**/*.json"), returning paths
// sorted for deterministic iteration order.
//
// Adapted from the teacher's pathfinder glob-discovery helpers: a repo-root
// file-discovery CLI has no place here, but the same doublestar.Glob usage
// is the natural way to let a caller point this package at a directory of
// hand-authored or downloaded matrices instead of enumerating file names.
func DiscoverFiles(dir, pattern string) ([]string, error) {
	fsys := os.DirFS(dir)
	matches, err := doublestar.Glob(fsys, pattern)
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)

	paths := make([]string, len(matches))
	for i, m := range matches {
		paths[i] = filepath.Join(dir, m)
	}
	return paths, nil
}
