//go:build unix

package fs

import (
	"fmt"
	"io/fs"
	"syscall"
	"time"

	"finfo/internal/finfo"
)

// ExtractStatData extracts Unix-specific stat data from a FileInfo.
func (m *OSFilesystem) ExtractStatData(info fs.FileInfo) (*finfo.StatData, error) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return nil, fmt.Errorf("cannot extract stat data: expected *syscall.Stat_t, got %T", info.Sys())
	}

	return &finfo.StatData{
		UID:   int64(stat.Uid),
		GID:   int64(stat.Gid),
		Atime: time.Unix(stat.Atim.Sec, stat.Atim.Nsec),
		Ctime: time.Unix(stat.Ctim.Sec, stat.Ctim.Nsec),
	}, nil
}
