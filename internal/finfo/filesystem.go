package finfo

import (
	"io/fs"
	"time"
)

// Filesystem provides an interface for the filesystem probes the lister
// needs. It abstracts file access to enable testing without touching the
// real filesystem.
type Filesystem interface {
	// IsFile reports whether the path denotes a regular file. Directories,
	// unreadable paths, and special files are not files.
	IsFile(path string) bool

	// Stat returns file info following symbolic links.
	Stat(path string) (fs.FileInfo, error)

	// Lstat returns file info without following symbolic links.
	Lstat(path string) (fs.FileInfo, error)

	// ReadDir enumerates the immediate children of a directory, sorted by
	// name. The "." and ".." pseudo-entries are never included.
	ReadDir(path string) ([]fs.DirEntry, error)

	// Readlink returns the target string of a symbolic link.
	Readlink(path string) (string, error)

	// Realpath resolves a path to its absolute form, following symlinks
	// where possible.
	Realpath(path string) (string, error)

	// ExtractStatData extracts platform stat data from a FileInfo.
	ExtractStatData(info fs.FileInfo) (*StatData, error)

	// LookupOwner resolves a user ID to a name. Falls back to the numeric
	// ID when no name is known.
	LookupOwner(uid int64) string

	// LookupGroup resolves a group ID to a name, with the same fallback.
	LookupGroup(gid int64) string
}

// StatData holds the stat fields that io/fs does not surface portably.
type StatData struct {
	UID   int64
	GID   int64
	Atime time.Time
	Ctime time.Time
}

// Entry is the resolved metadata for a single filesystem entry, derived at
// render time and discarded after the entry is printed.
type Entry struct {
	DisplayPath string
	Tag         TypeTag
	Perm        fs.FileMode // permission bits only
	Size        int64
	ModTime     time.Time
	AccessTime  time.Time
	ChangeTime  time.Time
	UID         int64
	GID         int64

	// LinkTarget is set only for symbolic links: the target string, or "?"
	// when the link is unreadable.
	LinkTarget string

	// Resolved lazily, only for detail mode.
	OwnerName string
	GroupName string
	FullPath  string
}
