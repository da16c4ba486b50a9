// Package textwidth measures and centers terminal text, accounting for
// embedded escape sequences and wide Unicode glyphs.
package textwidth

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/relctl/relctl/pkg/ansi"
)

// VisibleWidth returns the number of terminal columns line occupies once
// escape sequences are removed. Wide runes (CJK, fullwidth forms) count as
// 2 columns, combining and zero-width runes as 0, everything else as 1.
// Unknown or malformed runes fall back to width 1; it never fails.
func VisibleWidth(line string) int {
	stripped := ansi.Strip(line)

	w := 0
	for _, r := range stripped {
		w += runewidth.RuneWidth(r)
	}
	return w
}

// Center pads line with spaces so its visible content sits centered in
// width columns. Embedded escape sequences are preserved and do not count
// toward the width. When the line is wider than width, it is returned with
// no padding rather than truncated.
func Center(line string, width int) string {
	v := VisibleWidth(line)

	left := (width - v) / 2
	if left < 0 {
		left = 0
	}
	right := width - left - v
	if right < 0 {
		right = 0
	}

	return strings.Repeat(" ", left) + line + strings.Repeat(" ", right)
}

// CenterBlock centers each line independently against the same width,
// preserving order.
func CenterBlock(lines []string, width int) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = Center(line, width)
	}
	return out
}
