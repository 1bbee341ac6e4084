package finfo

import (
	"fmt"
	"sort"
)

// PathList collects the input paths for one run, partitioned into a file
// bucket and a directory bucket. Classification happens once at insertion
// using the Filesystem's file / not-file probe; symlinks to directories,
// devices and so on all land in the directory bucket.
//
// Indexing exposes a single combined space: [0, files) addresses the file
// bucket, [files, files+dirs) the directory bucket.
type PathList struct {
	fsys  Filesystem
	files []string
	dirs  []string
}

// NewPathList creates an empty PathList that classifies through fsys.
func NewPathList(fsys Filesystem) *PathList {
	return &PathList{fsys: fsys}
}

// Add classifies path and appends it to the matching bucket.
func (l *PathList) Add(path string) error {
	if path == "" {
		return fmt.Errorf("empty path")
	}
	if l.fsys.IsFile(path) {
		l.files = append(l.files, path)
	} else {
		l.dirs = append(l.dirs, path)
	}
	return nil
}

// Sort orders each bucket ascending under byte-wise lexicographic
// comparison. Bucket membership is unchanged.
func (l *PathList) Sort() {
	sort.Strings(l.files)
	sort.Strings(l.dirs)
}

// Size returns the total number of stored paths across both buckets.
func (l *PathList) Size() int {
	return len(l.files) + len(l.dirs)
}

// At resolves a combined index into the correct bucket.
func (l *PathList) At(i int) (string, error) {
	if i < 0 || i >= l.Size() {
		return "", fmt.Errorf("path index %d out of range (size %d)", i, l.Size())
	}
	if i < len(l.files) {
		return l.files[i], nil
	}
	return l.dirs[i-len(l.files)], nil
}
