package concat

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	gitignore "github.com/monochromegane/go-gitignore"
)

// Filter decides which directory entries are skipped during a walk.
// Explicit file inputs are never filtered.
type Filter struct {
	patterns         []string
	respectGitignore bool
}

// NewFilter validates the exclude patterns and returns a Filter.
func NewFilter(exclude []string, respectGitignore bool) (*Filter, error) {
	for _, pattern := range exclude {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid exclude pattern '%s'", pattern)
		}
	}
	return &Filter{
		patterns:         append([]string(nil), exclude...),
		respectGitignore: respectGitignore,
	}, nil
}

// forRoot prepares the filter for one directory input.
func (f *Filter) forRoot(root string) (*rootFilter, error) {
	rf := &rootFilter{Filter: f, root: root}
	if f == nil || !f.respectGitignore {
		return rf, nil
	}

	gitIgnorePath := filepath.Join(root, ".gitignore")
	if _, err := os.Stat(gitIgnorePath); err != nil {
		return rf, nil
	}
	matcher, err := gitignore.NewGitIgnore(gitIgnorePath, root)
	if err != nil {
		return rf, fmt.Errorf("could not parse .gitignore file %s: %w", gitIgnorePath, err)
	}
	rf.ignore = matcher
	return rf, nil
}

type rootFilter struct {
	*Filter
	root   string
	ignore gitignore.IgnoreMatcher
}

// skip reports whether the entry at path should be left out, and why.
func (rf *rootFilter) skip(path string, isDir bool) (bool, string) {
	if rf == nil || rf.Filter == nil {
		return false, ""
	}
	if rf.ignore != nil && rf.ignore.Match(path, isDir) {
		return true, ".gitignore"
	}

	rel, err := filepath.Rel(rf.root, path)
	if err != nil {
		return false, ""
	}
	rel = filepath.ToSlash(rel)
	name := filepath.Base(path)
	for _, pattern := range rf.patterns {
		// Patterns were validated in NewFilter, so Match cannot fail here.
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true, pattern
		}
		if ok, _ := doublestar.Match(pattern, name); ok {
			return true, pattern
		}
	}
	return false, ""
}
