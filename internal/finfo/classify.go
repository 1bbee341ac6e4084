package finfo

import (
	"io/fs"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TypeTag is the single-character classification of a filesystem entry.
type TypeTag byte

const (
	TagBlockDevice TypeTag = 'b'
	TagCharDevice  TypeTag = 'c'
	TagDirectory   TypeTag = 'd'
	TagFifo        TypeTag = 'p'
	TagSymlink     TypeTag = 'l'
	TagFile        TypeTag = 'f'
	TagSocket      TypeTag = 's'
	TagUnknown     TypeTag = '?'
)

// ClassifyMode maps raw mode bits to exactly one TypeTag. Bit patterns that
// match none of the eight known categories map to TagUnknown rather than
// failing.
func ClassifyMode(mode fs.FileMode) TypeTag {
	switch {
	case mode.IsRegular():
		return TagFile
	case mode.IsDir():
		return TagDirectory
	case mode&fs.ModeSymlink != 0:
		return TagSymlink
	// ModeCharDevice is always set together with ModeDevice, so it must be
	// checked first.
	case mode&fs.ModeCharDevice != 0:
		return TagCharDevice
	case mode&fs.ModeDevice != 0:
		return TagBlockDevice
	case mode&fs.ModeNamedPipe != 0:
		return TagFifo
	case mode&fs.ModeSocket != 0:
		return TagSocket
	default:
		return TagUnknown
	}
}

var tagDescriptions = map[TypeTag]string{
	TagBlockDevice: "Block Device",
	TagCharDevice:  "Character Device",
	TagDirectory:   "Directory",
	TagFifo:        "Fifo Pipe File",
	TagSymlink:     "Symlink File",
	TagFile:        "Regular File",
	TagSocket:      "Socket",
	TagUnknown:     "Unknown",
}

// Description returns the fixed human description for the tag.
func (t TypeTag) Description() string {
	if d, ok := tagDescriptions[t]; ok {
		return d
	}
	return tagDescriptions[TagUnknown]
}

// Styles is the read-only display style table, one entry per TypeTag.
type Styles struct {
	byTag map[TypeTag]lipgloss.Style
}

// NewStyles builds the style table. When color is false every tag renders
// plain text.
func NewStyles(color bool) Styles {
	if !color {
		plain := lipgloss.NewStyle()
		return Styles{byTag: map[TypeTag]lipgloss.Style{
			TagBlockDevice: plain,
			TagCharDevice:  plain,
			TagDirectory:   plain,
			TagFifo:        plain,
			TagSymlink:     plain,
			TagFile:        plain,
			TagSocket:      plain,
			TagUnknown:     plain,
		}}
	}

	red := lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	green := lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	magenta := lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	cyan := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	return Styles{byTag: map[TypeTag]lipgloss.Style{
		TagBlockDevice: red,
		TagCharDevice:  red,
		TagDirectory:   magenta,
		TagFifo:        red,
		TagSymlink:     cyan,
		TagFile:        green,
		TagSocket:      red,
		TagUnknown:     green,
	}}
}

// ForTag returns the style for a tag, defaulting to the unknown style for
// tags outside the table.
func (s Styles) ForTag(t TypeTag) lipgloss.Style {
	if st, ok := s.byTag[t]; ok {
		return st
	}
	return s.byTag[TagUnknown]
}

var permissionNames = [3]string{"Executable", "Writable", "Readable"}

// PermissionPhrase describes a 3-bit read/write/execute mask as a
// comma-joined phrase: bit 0 is execute, bit 1 write, bit 2 read. The order
// Executable, Writable, Readable is fixed; an empty mask yields an empty
// string.
func PermissionPhrase(bits fs.FileMode) string {
	var parts []string
	for i, name := range permissionNames {
		if bits&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, ", ")
}
