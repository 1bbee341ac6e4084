package finfo

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
)

// timeFormat is the fixed calendar layout used for every timestamp:
// month/day/year - hour:minute:second, 21 characters wide.
const timeFormat = "01/02/2006 - 15:04:05"

// Renderer emits the two output shapes: one tabular row per entry in brief
// mode, or a labeled multi-line report in detail mode. It is a thin layer
// over the classifier's tables plus the time and byte-count formatters.
type Renderer struct {
	out    io.Writer
	styles Styles
}

// NewRenderer creates a Renderer writing to out with the given style table.
func NewRenderer(out io.Writer, styles Styles) *Renderer {
	return &Renderer{out: out, styles: styles}
}

// SectionLabel prints the blank-line-prefixed directory header used when
// more than one input path is listed.
func (r *Renderer) SectionLabel(path string) {
	fmt.Fprintf(r.out, "\n%s:\n", path)
}

// Brief prints a single tabular row: type tag, octal permission digits,
// modification time, right-aligned human size, the color-coded display path
// and, for symlinks, the target suffix.
func (r *Renderer) Brief(e *Entry) {
	fmt.Fprintf(r.out, "| %c-%03o %-21s %10s %s%s\n",
		byte(e.Tag),
		uint32(e.Perm),
		e.ModTime.Format(timeFormat),
		humanize.Bytes(uint64(e.Size)),
		r.styles.ForTag(e.Tag).Render(e.DisplayPath),
		linkSuffix(e),
	)
}

// Detail prints the full labeled report for a single entry.
func (r *Renderer) Detail(e *Entry) {
	fmt.Fprintf(r.out, "Information for '%s'\n", e.DisplayPath)
	fmt.Fprintln(r.out, "-----------------------------")
	fmt.Fprintf(r.out, "Owner: %s\n", e.OwnerName)
	fmt.Fprintf(r.out, "Group: %s\n", e.GroupName)
	fmt.Fprintf(r.out, "Type: %s\n", e.Tag.Description())
	fmt.Fprintf(r.out, "Full path: %s\n", r.styles.ForTag(e.Tag).Render(e.FullPath))
	if e.LinkTarget != "" {
		fmt.Fprintf(r.out, "Link: -> %s\n", e.LinkTarget)
	}
	fmt.Fprintf(r.out, "Size: %s\n", humanize.Bytes(uint64(e.Size)))
	fmt.Fprintf(r.out, "Date Modified: %s\n", e.ModTime.Format(timeFormat))
	fmt.Fprintf(r.out, "Date Access: %s\n", e.AccessTime.Format(timeFormat))
	fmt.Fprintf(r.out, "Date Metadata Changed: %s\n", e.ChangeTime.Format(timeFormat))
	fmt.Fprintln(r.out, "Permissions:")
	fmt.Fprintf(r.out, "  Owner: %s\n", PermissionPhrase((e.Perm>>6)&0o7))
	fmt.Fprintf(r.out, "  Group: %s\n", PermissionPhrase((e.Perm>>3)&0o7))
	fmt.Fprintf(r.out, "  Other: %s\n", PermissionPhrase(e.Perm&0o7))
}

func linkSuffix(e *Entry) string {
	if e.LinkTarget == "" {
		return ""
	}
	return " -> " + e.LinkTarget
}
