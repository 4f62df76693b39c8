// Package scan enumerates the tracked project files that belong in a
// snapshot.
package scan

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

var defaultIgnores = []string{
	".git/",
	"node_modules/",
	"__pycache__/",
	"vendor/",
}

// Tracked walks root and returns the root-relative paths of every regular
// file whose extension is in exts. The store subtree (storeDir, a name
// relative to root) is always skipped, as is anything matched by the
// ignore file or the built-in ignore list. Results are sorted.
func Tracked(root, storeDir string, exts []string, ignoreFile string) ([]string, error) {
	matcher := buildMatcher(root, storeDir, ignoreFile)

	extSet := make(map[string]bool, len(exts))
	for _, e := range exts {
		extSet[e] = true
	}

	var files []string

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil || rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if info.IsDir() {
			if matcher.MatchesPath(rel + "/") {
				return filepath.SkipDir
			}
			return nil
		}

		if !info.Mode().IsRegular() {
			return nil
		}
		if !extSet[filepath.Ext(path)] {
			return nil
		}
		if matcher.MatchesPath(rel) {
			return nil
		}

		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// buildMatcher compiles the built-in ignores, the store subtree and the
// optional ignore file into one matcher.
func buildMatcher(root, storeDir, ignoreFile string) *ignore.GitIgnore {
	patterns := append([]string(nil), defaultIgnores...)
	if storeDir != "" {
		patterns = append(patterns, filepath.ToSlash(storeDir)+"/")
	}

	if ignoreFile != "" {
		data, err := os.ReadFile(filepath.Join(root, ignoreFile))
		if err == nil {
			patterns = append(patterns, strings.Split(string(data), "\n")...)
		}
	}

	return ignore.CompileIgnoreLines(patterns...)
}
