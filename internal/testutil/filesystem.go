package testutil

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"finfo/internal/finfo"
)

// MockFile represents one entry in the mock filesystem.
type MockFile struct {
	Mode    fs.FileMode // full mode: type bits plus permissions
	Size    int64
	ModTime time.Time
	Atime   time.Time
	Ctime   time.Time
	UID     int64
	GID     int64

	// LinkTarget is the symlink target; empty on a symlink means the link
	// is unreadable (Readlink fails).
	LinkTarget string
}

// MockFilesystem is an in-memory finfo.Filesystem for testing.
// Paths are stored verbatim; use absolute paths in tests.
type MockFilesystem struct {
	files  map[string]*MockFile
	owners map[int64]string
	groups map[int64]string
	cwd    string
}

// NewMockFilesystem creates an empty mock filesystem with cwd "/".
func NewMockFilesystem() *MockFilesystem {
	return &MockFilesystem{
		files:  make(map[string]*MockFile),
		owners: make(map[int64]string),
		groups: make(map[int64]string),
		cwd:    "/",
	}
}

// FixedTime is the timestamp every Add helper stamps on new entries.
var FixedTime = time.Date(2024, 5, 15, 10, 30, 0, 0, time.UTC)

// AddFile adds a regular file of the given size with 0644 permissions.
func (m *MockFilesystem) AddFile(path string, size int64) *MockFile {
	f := &MockFile{
		Mode:    0o644,
		Size:    size,
		ModTime: FixedTime,
		Atime:   FixedTime,
		Ctime:   FixedTime,
		UID:     1000,
		GID:     1000,
	}
	m.files[path] = f
	return f
}

// AddDirectory adds a directory with 0755 permissions.
func (m *MockFilesystem) AddDirectory(path string) *MockFile {
	f := &MockFile{
		Mode:    fs.ModeDir | 0o755,
		ModTime: FixedTime,
		Atime:   FixedTime,
		Ctime:   FixedTime,
		UID:     1000,
		GID:     1000,
	}
	m.files[path] = f
	return f
}

// AddSymlink adds a symbolic link. An empty target makes Readlink fail,
// modelling an unreadable link.
func (m *MockFilesystem) AddSymlink(path, target string) *MockFile {
	f := &MockFile{
		Mode:       fs.ModeSymlink | 0o777,
		ModTime:    FixedTime,
		Atime:      FixedTime,
		Ctime:      FixedTime,
		UID:        1000,
		GID:        1000,
		LinkTarget: target,
	}
	m.files[path] = f
	return f
}

// AddSpecial adds an entry with an arbitrary mode (devices, fifos, sockets).
func (m *MockFilesystem) AddSpecial(path string, mode fs.FileMode) *MockFile {
	f := &MockFile{
		Mode:    mode,
		ModTime: FixedTime,
		Atime:   FixedTime,
		Ctime:   FixedTime,
		UID:     1000,
		GID:     1000,
	}
	m.files[path] = f
	return f
}

// SetOwner registers a uid-to-name mapping for LookupOwner.
func (m *MockFilesystem) SetOwner(uid int64, name string) { m.owners[uid] = name }

// SetGroup registers a gid-to-name mapping for LookupGroup.
func (m *MockFilesystem) SetGroup(gid int64, name string) { m.groups[gid] = name }

func (m *MockFilesystem) IsFile(path string) bool {
	info, err := m.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Stat follows symlinks to their target.
func (m *MockFilesystem) Stat(path string) (fs.FileInfo, error) {
	f, ok := m.files[path]
	if !ok {
		return nil, fmt.Errorf("file not found: %s", path)
	}
	if f.Mode&fs.ModeSymlink != 0 {
		target := f.LinkTarget
		if target == "" {
			return nil, fmt.Errorf("unreadable link: %s", path)
		}
		if !strings.HasPrefix(target, "/") {
			target = filepath.Join(filepath.Dir(path), target)
		}
		return m.Stat(target)
	}
	return newInfo(path, f), nil
}

// Lstat never follows symlinks.
func (m *MockFilesystem) Lstat(path string) (fs.FileInfo, error) {
	f, ok := m.files[path]
	if !ok {
		return nil, fmt.Errorf("file not found: %s", path)
	}
	return newInfo(path, f), nil
}

func (m *MockFilesystem) ReadDir(path string) ([]fs.DirEntry, error) {
	dir, ok := m.files[path]
	if !ok || dir.Mode&fs.ModeDir == 0 {
		return nil, fmt.Errorf("not a directory: %s", path)
	}

	children := make(map[string]*MockFile)
	var names []string
	for p, f := range m.files {
		if p != path && filepath.Dir(p) == filepath.Clean(path) {
			name := filepath.Base(p)
			children[name] = f
			names = append(names, name)
		}
	}
	sort.Strings(names)

	entries := make([]fs.DirEntry, 0, len(names))
	for _, name := range names {
		entries = append(entries, &mockDirEntry{name: name, file: children[name]})
	}
	return entries, nil
}

func (m *MockFilesystem) Readlink(path string) (string, error) {
	f, ok := m.files[path]
	if !ok {
		return "", fmt.Errorf("file not found: %s", path)
	}
	if f.Mode&fs.ModeSymlink == 0 {
		return "", fmt.Errorf("not a symlink: %s", path)
	}
	if f.LinkTarget == "" {
		return "", fmt.Errorf("unreadable link: %s", path)
	}
	return f.LinkTarget, nil
}

func (m *MockFilesystem) Realpath(path string) (string, error) {
	if !strings.HasPrefix(path, "/") {
		path = filepath.Join(m.cwd, path)
	}
	if f, ok := m.files[path]; ok && f.Mode&fs.ModeSymlink != 0 && f.LinkTarget != "" {
		target := f.LinkTarget
		if !strings.HasPrefix(target, "/") {
			target = filepath.Join(filepath.Dir(path), target)
		}
		return target, nil
	}
	return path, nil
}

func (m *MockFilesystem) ExtractStatData(info fs.FileInfo) (*finfo.StatData, error) {
	f, ok := info.Sys().(*MockFile)
	if !ok {
		return nil, fmt.Errorf("cannot extract stat data: expected *MockFile, got %T", info.Sys())
	}
	return &finfo.StatData{
		UID:   f.UID,
		GID:   f.GID,
		Atime: f.Atime,
		Ctime: f.Ctime,
	}, nil
}

func (m *MockFilesystem) LookupOwner(uid int64) string {
	if name, ok := m.owners[uid]; ok {
		return name
	}
	return strconv.FormatInt(uid, 10)
}

func (m *MockFilesystem) LookupGroup(gid int64) string {
	if name, ok := m.groups[gid]; ok {
		return name
	}
	return strconv.FormatInt(gid, 10)
}

// mockFileInfo implements fs.FileInfo
type mockFileInfo struct {
	name string
	file *MockFile
}

func newInfo(path string, f *MockFile) *mockFileInfo {
	return &mockFileInfo{name: filepath.Base(path), file: f}
}

func (i *mockFileInfo) Name() string       { return i.name }
func (i *mockFileInfo) Size() int64        { return i.file.Size }
func (i *mockFileInfo) Mode() fs.FileMode  { return i.file.Mode }
func (i *mockFileInfo) ModTime() time.Time { return i.file.ModTime }
func (i *mockFileInfo) IsDir() bool        { return i.file.Mode.IsDir() }
func (i *mockFileInfo) Sys() any           { return i.file }

// mockDirEntry implements fs.DirEntry
type mockDirEntry struct {
	name string
	file *MockFile
}

func (e *mockDirEntry) Name() string               { return e.name }
func (e *mockDirEntry) IsDir() bool                { return e.file.Mode.IsDir() }
func (e *mockDirEntry) Type() fs.FileMode          { return e.file.Mode.Type() }
func (e *mockDirEntry) Info() (fs.FileInfo, error) { return newInfo(e.name, e.file), nil }

// Compile-time check
var _ finfo.Filesystem = (*MockFilesystem)(nil)
