package finfo

import (
	"fmt"
	"path/filepath"
	"strings"
)

// PathNode is one entry in a traversal: a single path segment plus a link to
// the node it was discovered under. The user-supplied input path sits at
// depth 0 with no parent; every child discovered during directory enumeration
// is one level deeper. Nodes are immutable after creation and both parent and
// child live only for the duration of a single Run call.
type PathNode struct {
	segment string
	parent  *PathNode
	depth   int
}

// NewPathNode creates a depth-0 node from a user-supplied path.
// Trailing separators are stripped: "a/b///" becomes "a/b", "///" becomes "/".
func NewPathNode(path string) (*PathNode, error) {
	if path == "" {
		return nil, fmt.Errorf("empty path")
	}
	return &PathNode{segment: TrimTrailingSlashes(path)}, nil
}

// Child creates a node for a directory entry discovered under n.
// The leaf is normalized the same way as an input path, and a leading "./"
// is stripped so a relative current-directory marker never leaks into the
// joined path.
func (n *PathNode) Child(leaf string) (*PathNode, error) {
	if leaf == "" {
		return nil, fmt.Errorf("empty leaf")
	}
	seg := TrimDotSlash(TrimTrailingSlashes(leaf))
	return &PathNode{segment: seg, parent: n, depth: n.depth + 1}, nil
}

// Depth returns the number of enumeration hops from the input path to this
// node. User-supplied paths are at depth 0.
func (n *PathNode) Depth() int {
	return n.depth
}

// FullPath reconstructs the filesystem path for this node by walking the
// parent chain to the root and joining segments root-to-leaf with single
// separators. The result carries no trailing separator. The chain is finite
// by construction (depth strictly decreases toward the root), so this always
// terminates. The value is recomputed on every call, never cached.
func (n *PathNode) FullPath() string {
	var segs []string
	for q := n; q != nil; q = q.parent {
		segs = append(segs, q.segment)
	}

	// segs is leaf-to-root; build the path from the far end.
	path := segs[len(segs)-1]
	for i := len(segs) - 2; i >= 0; i-- {
		if strings.HasSuffix(path, "/") {
			path += segs[i]
		} else {
			path += "/" + segs[i]
		}
	}
	return TrimTrailingSlashes(path)
}

// Basename returns the final component of the node's full path.
func (n *PathNode) Basename() string {
	return filepath.Base(n.FullPath())
}

// TrimTrailingSlashes removes redundant trailing separators. The first
// character is never removed, so the root path "/" is invariant no matter
// how many slashes are appended. Idempotent.
func TrimTrailingSlashes(path string) string {
	for len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}
	return path
}

// TrimDotSlash removes a leading "./" current-directory marker. Only one
// marker is removed; a path without the marker passes through unchanged.
func TrimDotSlash(path string) string {
	return strings.TrimPrefix(path, "./")
}
