package scanner

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/gobwas/glob"
)

// compiledPattern pairs a pattern string with its compiled matcher, kept
// for error messages and diagnostics.
type compiledPattern struct {
	pattern string
	glob    glob.Glob
}

// compilePatterns compiles glob patterns for base-name matching.
func compilePatterns(patterns []string) ([]compiledPattern, error) {
	compiled := make([]compiledPattern, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", p, err)
		}
		compiled = append(compiled, compiledPattern{pattern: p, glob: g})
	}
	return compiled, nil
}

// Discover walks root recursively and returns every regular file whose
// base name matches at least one of the glob patterns. The result is
// deduplicated and sorted so that processing order (and therefore verbose
// output) is deterministic across platforms; final taxon ordering does
// not depend on it. Unreadable subtrees are skipped rather than failing
// the walk.
func Discover(root string, patterns []string) ([]string, error) {
	compiled, err := compilePatterns(patterns)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var files []string

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		base := filepath.Base(path)
		for _, cp := range compiled {
			if cp.glob.Match(base) {
				if _, ok := seen[path]; !ok {
					seen[path] = struct{}{}
					files = append(files, path)
				}
				break
			}
		}
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, walkErr)
	}

	sort.Strings(files)
	return files, nil
}
