// Package version exposes the git metadata baked in at build time.
package version

import (
	_ "embed"
	"fmt"
	"strings"
)

//go:generate sh -c "printf %s $(git rev-parse HEAD) > commit.txt"
//go:generate sh -c "printf %s $(git rev-parse --abbrev-ref HEAD) > branch.txt"
//go:generate sh -c "printf %s $(git describe --tags --abbrev=0 2>/dev/null || echo none) > tag.txt"
//go:generate sh -c "git diff-index --quiet HEAD -- && echo clean > dirty.txt || echo dirty > dirty.txt"

//go:embed commit.txt
var commit string

//go:embed branch.txt
var branch string

//go:embed tag.txt
var tag string

//go:embed dirty.txt
var dirty string

// GitInfo describes the tree the binary was built from.
type GitInfo struct {
	Commit string
	Branch string
	Tag    string
	Dirty  bool
}

var info = GitInfo{
	Commit: strings.TrimSpace(commit),
	Branch: strings.TrimSpace(branch),
	Tag:    strings.TrimSpace(tag),
	Dirty:  strings.TrimSpace(dirty) == "dirty",
}

// GetGitInfo returns a copy of the build metadata.
func GetGitInfo() GitInfo {
	return info
}

// Short renders the tag and abbreviated commit, e.g. "v1.2.0 (3f2a1bc, dirty)".
func (g GitInfo) Short() string {
	c := g.Commit
	if len(c) > 7 {
		c = c[:7]
	}
	if g.Dirty {
		return fmt.Sprintf("%s (%s, dirty)", g.Tag, c)
	}
	return fmt.Sprintf("%s (%s)", g.Tag, c)
}
