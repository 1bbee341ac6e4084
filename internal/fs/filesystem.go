package fs

import (
	"io/fs"
	"os"
	"os/user"
	"path/filepath"
	"strconv"

	"finfo/internal/finfo"
)

// OSFilesystem is the real filesystem implementation of finfo.Filesystem.
// It performs actual filesystem operations using the os package.
type OSFilesystem struct{}

// NewOSFilesystem creates a filesystem that operates on the real filesystem.
func NewOSFilesystem() *OSFilesystem {
	return &OSFilesystem{}
}

// IsFile reports whether path denotes a regular file. Stat follows symlinks,
// so a symlink to a regular file counts as a file; unreadable paths do not.
func (m *OSFilesystem) IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Stat returns file info following symbolic links.
func (m *OSFilesystem) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// Lstat returns file info without following symbolic links.
func (m *OSFilesystem) Lstat(path string) (fs.FileInfo, error) {
	return os.Lstat(path)
}

// ReadDir enumerates the immediate children of a directory, sorted by name.
func (m *OSFilesystem) ReadDir(path string) ([]fs.DirEntry, error) {
	return os.ReadDir(path)
}

// Readlink returns the target of a symbolic link.
func (m *OSFilesystem) Readlink(path string) (string, error) {
	return os.Readlink(path)
}

// Realpath resolves a path to its absolute form. Symlinks along the path are
// resolved when possible; if resolution fails (dangling link, permission),
// the absolute unresolved path is returned instead of an error.
func (m *OSFilesystem) Realpath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}
	return abs, nil
}

// LookupOwner resolves a user ID to a username, falling back to the numeric
// ID when the user database has no entry.
func (m *OSFilesystem) LookupOwner(uid int64) string {
	id := strconv.FormatInt(uid, 10)
	if u, err := user.LookupId(id); err == nil {
		return u.Username
	}
	return id
}

// LookupGroup resolves a group ID to a group name, with the same fallback.
func (m *OSFilesystem) LookupGroup(gid int64) string {
	id := strconv.FormatInt(gid, 10)
	if g, err := user.LookupGroupId(id); err == nil {
		return g.Name
	}
	return id
}

// Compile-time check that OSFilesystem implements finfo.Filesystem
var _ finfo.Filesystem = (*OSFilesystem)(nil)
