package finfo

import (
	"io/fs"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestClassifyMode(t *testing.T) {
	tests := []struct {
		name string
		mode fs.FileMode
		want TypeTag
	}{
		{name: "regular file", mode: 0o644, want: TagFile},
		{name: "directory", mode: fs.ModeDir | 0o755, want: TagDirectory},
		{name: "symlink", mode: fs.ModeSymlink | 0o777, want: TagSymlink},
		{name: "block device", mode: fs.ModeDevice | 0o660, want: TagBlockDevice},
		{name: "char device", mode: fs.ModeDevice | fs.ModeCharDevice | 0o666, want: TagCharDevice},
		{name: "fifo", mode: fs.ModeNamedPipe | 0o644, want: TagFifo},
		{name: "socket", mode: fs.ModeSocket | 0o755, want: TagSocket},
		{name: "irregular", mode: fs.ModeIrregular, want: TagUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyMode(tt.mode); got != tt.want {
				t.Errorf("ClassifyMode(%v) = %c, want %c", tt.mode, got, tt.want)
			}
		})
	}
}

func TestClassifyMode_eightDistinctTags(t *testing.T) {
	modes := []fs.FileMode{
		0o644,
		fs.ModeDir,
		fs.ModeSymlink,
		fs.ModeDevice,
		fs.ModeDevice | fs.ModeCharDevice,
		fs.ModeNamedPipe,
		fs.ModeSocket,
		fs.ModeIrregular,
	}

	seen := make(map[TypeTag]bool)
	for _, m := range modes {
		seen[ClassifyMode(m)] = true
	}
	if len(seen) != 8 {
		t.Errorf("got %d distinct tags, want 8", len(seen))
	}
}

func TestTypeTag_Description(t *testing.T) {
	tests := []struct {
		tag  TypeTag
		want string
	}{
		{TagBlockDevice, "Block Device"},
		{TagCharDevice, "Character Device"},
		{TagDirectory, "Directory"},
		{TagFifo, "Fifo Pipe File"},
		{TagSymlink, "Symlink File"},
		{TagFile, "Regular File"},
		{TagSocket, "Socket"},
		{TagUnknown, "Unknown"},
	}

	seen := make(map[string]bool)
	for _, tt := range tests {
		got := tt.tag.Description()
		if got != tt.want {
			t.Errorf("Description(%c) = %q, want %q", tt.tag, got, tt.want)
		}
		seen[got] = true
	}
	if len(seen) != 8 {
		t.Errorf("descriptions not distinct: %d unique, want 8", len(seen))
	}

	// Tags outside the table fall back to the unknown description.
	if got := TypeTag('x').Description(); got != "Unknown" {
		t.Errorf("Description('x') = %q, want %q", got, "Unknown")
	}
}

func TestNewStyles(t *testing.T) {
	t.Run("color table matches the tag palette", func(t *testing.T) {
		styles := NewStyles(true)

		wantColors := map[TypeTag]lipgloss.Color{
			TagBlockDevice: lipgloss.Color("1"),
			TagCharDevice:  lipgloss.Color("1"),
			TagDirectory:   lipgloss.Color("5"),
			TagFifo:        lipgloss.Color("1"),
			TagSymlink:     lipgloss.Color("6"),
			TagFile:        lipgloss.Color("2"),
			TagSocket:      lipgloss.Color("1"),
			TagUnknown:     lipgloss.Color("2"),
		}

		for tag, want := range wantColors {
			got := styles.ForTag(tag).GetForeground()
			if got != want {
				t.Errorf("ForTag(%c).GetForeground() = %v, want %v", tag, got, want)
			}
		}
	})

	t.Run("unknown fallback for tags outside the table", func(t *testing.T) {
		styles := NewStyles(true)
		if got := styles.ForTag(TypeTag('x')).GetForeground(); got != lipgloss.Color("2") {
			t.Errorf("ForTag('x').GetForeground() = %v, want the unknown color", got)
		}
	})

	t.Run("disabled styles render plain text", func(t *testing.T) {
		styles := NewStyles(false)
		if got := styles.ForTag(TagDirectory).Render("docs"); got != "docs" {
			t.Errorf("Render() = %q, want %q", got, "docs")
		}
	})
}

func TestPermissionPhrase(t *testing.T) {
	tests := []struct {
		bits fs.FileMode
		want string
	}{
		{0, ""},
		{1, "Executable"},
		{2, "Writable"},
		{4, "Readable"},
		{3, "Executable, Writable"},
		{5, "Executable, Readable"},
		{6, "Writable, Readable"},
		{7, "Executable, Writable, Readable"},
	}

	for _, tt := range tests {
		if got := PermissionPhrase(tt.bits); got != tt.want {
			t.Errorf("PermissionPhrase(%o) = %q, want %q", tt.bits, got, tt.want)
		}
	}
}
