package finfo

import (
	"fmt"
	"io/fs"
)

// Options carries the per-run flags for a listing.
type Options struct {
	// Recursive is accepted but recursive descent is not implemented:
	// directory entries that are themselves directories are skipped when it
	// is set, and nothing below the first level is visited.
	// TODO: descend into subdirectories once a cycle-safe walk exists.
	Recursive bool
}

// ListService is the traversal engine. Given a sorted PathList it resolves
// each entry, enumerates directory contents one level deep, and dispatches
// every resolved entry to the renderer in brief or detail mode.
type ListService struct {
	fsys     Filesystem
	renderer *Renderer
	logger   Logger
}

// NewListService creates a ListService with the given collaborators.
func NewListService(fsys Filesystem, renderer *Renderer, logger Logger) *ListService {
	return &ListService{fsys: fsys, renderer: renderer, logger: logger}
}

// Run lists every path in the collection, in combined-index order. A failure
// on any single entry is logged and traversal continues with the next one;
// Run itself never aborts the whole pass.
func (s *ListService) Run(list *PathList, opts Options) {
	for i := 0; i < list.Size(); i++ {
		raw, err := list.At(i)
		if err != nil {
			s.logger.Error("getting path at index", "index", i, "error", err)
			continue
		}

		node, err := NewPathNode(raw)
		if err != nil {
			s.logger.Error("creating path node", "path", raw, "error", err)
			continue
		}

		if s.fsys.IsFile(node.FullPath()) {
			err = s.printEntry(node, list)
		} else {
			err = s.printDir(node, list, opts)
		}
		if err != nil {
			s.logger.Error("listing path", "path", raw, "error", err)
		}
	}
}

// printDir enumerates the immediate children of a directory and prints one
// row per child. When more than one input path was supplied, the directory's
// full path is printed as a section label first. A failure on one child does
// not stop the remaining children.
func (s *ListService) printDir(node *PathNode, list *PathList, opts Options) error {
	dirPath := node.FullPath()

	entries, err := s.fsys.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("reading directory %s: %w", dirPath, err)
	}

	if list.Size() > 1 {
		s.renderer.SectionLabel(dirPath)
	}

	for _, de := range entries {
		if opts.Recursive && de.IsDir() {
			// Placeholder for recursive descent; see Options.Recursive.
			s.logger.Debug("skipping directory, recursive listing not implemented",
				"path", dirPath, "name", de.Name())
			continue
		}

		child, err := node.Child(de.Name())
		if err != nil {
			s.logger.Error("creating child node", "dir", dirPath, "name", de.Name(), "error", err)
			continue
		}

		if err := s.printEntry(child, list); err != nil {
			s.logger.Error("listing entry", "dir", dirPath, "name", de.Name(), "error", err)
		}
	}

	return nil
}

// printEntry resolves metadata for one entry and renders it. Detail mode is
// chosen only when the user named exactly one path and this entry is that
// path itself (depth 0); every other entry gets a brief row.
func (s *ListService) printEntry(node *PathNode, list *PathList) error {
	e, err := s.inspect(node)
	if err != nil {
		return err
	}

	if list.Size() == 1 && node.Depth() == 0 {
		if err := s.describeInDetail(e); err != nil {
			return err
		}
		s.renderer.Detail(e)
		return nil
	}

	s.renderer.Brief(e)
	return nil
}

// inspect stats the entry and assembles its render-time metadata.
//
// The probe is link-aware: it first stats without following symbolic links.
// If the entry is not a symlink it re-stats following links so the effective
// metadata (size, type) describes the target. If it is a symlink, the
// non-following result is kept and the link target string is resolved for
// display, with "?" substituted when the target is unreadable.
func (s *ListService) inspect(node *PathNode) (*Entry, error) {
	path := node.FullPath()

	info, err := s.fsys.Lstat(path)
	if err != nil {
		return nil, fmt.Errorf("lstat %s: %w", path, err)
	}

	linkTarget := ""
	if info.Mode()&fs.ModeSymlink != 0 {
		target, err := s.fsys.Readlink(path)
		if err != nil {
			target = "?"
		}
		linkTarget = target
	} else {
		info, err = s.fsys.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
	}

	sd, err := s.fsys.ExtractStatData(info)
	if err != nil {
		return nil, fmt.Errorf("extracting stat data for %s: %w", path, err)
	}

	return &Entry{
		DisplayPath: displayPath(node),
		Tag:         ClassifyMode(info.Mode()),
		Perm:        info.Mode().Perm(),
		Size:        info.Size(),
		ModTime:     info.ModTime(),
		AccessTime:  sd.Atime,
		ChangeTime:  sd.Ctime,
		UID:         sd.UID,
		GID:         sd.GID,
		LinkTarget:  linkTarget,
	}, nil
}

// describeInDetail fills the fields only the detail report needs: the
// resolved absolute path and the owner and group names.
func (s *ListService) describeInDetail(e *Entry) error {
	full, err := s.fsys.Realpath(e.DisplayPath)
	if err != nil {
		return fmt.Errorf("resolving full path for %s: %w", e.DisplayPath, err)
	}
	e.FullPath = full
	e.OwnerName = s.fsys.LookupOwner(e.UID)
	e.GroupName = s.fsys.LookupGroup(e.GID)
	return nil
}

// displayPath implements the path-for-display rule: a depth-0 node shows the
// normalized input path with any leading "./" stripped; a discovered child
// shows only its basename, because the section label already supplied the
// directory prefix.
func displayPath(node *PathNode) string {
	if node.Depth() > 0 {
		return node.Basename()
	}
	return TrimDotSlash(node.FullPath())
}
