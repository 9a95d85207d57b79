// Package pathglob expands PATH entries containing glob patterns.
package pathglob

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Expand resolves patterns relative to root. Entries without glob
// metacharacters are returned unchanged, even when they do not exist.
// Patterns expand to the matching directories as absolute paths, sorted,
// with duplicates removed. A pattern that matches no directory is an error.
func Expand(root string, patterns []string) ([]string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve root %s: %w", root, err)
	}

	seen := make(map[string]struct{})
	var out []string
	add := func(p string) {
		if _, dup := seen[p]; dup {
			return
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}

	for _, pattern := range patterns {
		if !hasMeta(pattern) {
			add(pattern)
			continue
		}
		dirs, err := matchDirs(absRoot, pattern)
		if err != nil {
			return nil, err
		}
		if len(dirs) == 0 {
			return nil, fmt.Errorf("pattern %q matched no directories under %s", pattern, absRoot)
		}
		for _, d := range dirs {
			add(d)
		}
	}
	return out, nil
}

func hasMeta(p string) bool {
	for _, r := range p {
		switch r {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}

func matchDirs(root, pattern string) ([]string, error) {
	base, rel := root, filepath.ToSlash(pattern)
	if filepath.IsAbs(pattern) {
		base, rel = doublestar.SplitPattern(filepath.ToSlash(pattern))
		base = filepath.FromSlash(base)
	}
	if !doublestar.ValidatePattern(rel) {
		return nil, fmt.Errorf("invalid glob pattern %q", pattern)
	}

	matches, err := doublestar.Glob(os.DirFS(base), rel)
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}

	var dirs []string
	for _, m := range matches {
		full := filepath.Join(base, filepath.FromSlash(m))
		info, err := os.Stat(full)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("stat %s: %w", full, err)
		}
		if info.IsDir() {
			dirs = append(dirs, full)
		}
	}
	sort.Strings(dirs)
	return dirs, nil
}
