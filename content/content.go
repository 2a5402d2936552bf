// Package content discovers the candidate source files a utility compiler
// would scan for class-name usage.
package content

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"graphite-theme/validate"
)

// skipDirs are never descended into.
var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
}

// Scan walks root and returns the sorted, slash-separated relative paths of
// files matching any pattern. No matches is not an error.
func Scan(ctx context.Context, root string, patterns []string) ([]string, error) {
	matchers := make([]validate.Matcher, 0, len(patterns))
	for _, p := range patterns {
		m, err := validate.CompileGlob(p)
		if err != nil {
			return nil, err
		}
		matchers = append(matchers, m)
	}

	seen := make(map[string]bool)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		for _, m := range matchers {
			if m.Match(rel) {
				seen[rel] = true
				break
			}
		}
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	files := make([]string, 0, len(seen))
	for f := range seen {
		files = append(files, f)
	}
	sort.Strings(files)
	return files, nil
}

// CountByExtension tallies matched files by extension, without the leading dot.
func CountByExtension(files []string) map[string]int {
	counts := make(map[string]int)
	for _, f := range files {
		ext := strings.TrimPrefix(filepath.Ext(f), ".")
		if ext == "" {
			ext = "(none)"
		}
		counts[ext]++
	}
	return counts
}
