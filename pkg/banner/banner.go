// Package banner renders a bordered, diagonally gradient-colored banner.
package banner

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/relctl/relctl/pkg/gradient"
	"github.com/relctl/relctl/pkg/textwidth"
)

// Side rails and rules take two columns on each side of the content.
const borderPadding = 4

// Decorative header/footer rows, centered against the full banner width.
const (
	starRow     = "･ ｡ ☆ ∴｡　　･ﾟ*｡★･ ∴｡　　･ﾟ*｡☆ ･ ｡ ☆ ∴｡"
	footerLeft  = "∴｡　　･ﾟ*｡☆ "
	footerRight = " ☆｡*ﾟ･　 ｡∴"
)

// Config carries everything Render needs: banner geometry, the gradient
// palette, and the static decoration colors. Passing it explicitly (rather
// than package globals) keeps renders reproducible under test palettes.
type Config struct {
	Width   int
	Palette []gradient.Color

	Border gradient.Color // rules and rails
	Accent gradient.Color // star rows
	Title  string         // footer label, e.g. "Release Manager"
	Label  gradient.Color // footer label color

	Logo    []string
	Tagline string
}

// DefaultConfig returns the stock 80-column banner: an indigo → violet →
// pink → indigo palette that wraps around cleanly when painted cyclically.
func DefaultConfig() Config {
	return Config{
		Width: 80,
		Palette: []gradient.Color{
			{R: 75, G: 0, B: 130},    // indigo
			{R: 138, G: 43, B: 226},  // blue violet
			{R: 148, G: 0, B: 211},   // dark violet
			{R: 199, G: 21, B: 133},  // medium violet red
			{R: 255, G: 20, B: 147},  // deep pink
			{R: 255, G: 105, B: 180}, // hot pink
			{R: 218, G: 112, B: 214}, // orchid
			{R: 186, G: 85, B: 211},  // medium orchid
			{R: 138, G: 43, B: 226},  // blue violet
			{R: 75, G: 0, B: 130},    // indigo
		},
		Border: gradient.Color{R: 75, G: 0, B: 130},   // indigo
		Accent: gradient.Color{R: 255, G: 20, B: 147}, // deep pink
		Label:  gradient.Color{R: 72, G: 209, B: 204}, // medium turquoise
		Title:  "Release Manager",
	}
}

// ParseHexColor converts a "#rrggbb" string into a gradient color, so
// palettes can be written as hex in config files.
func ParseHexColor(s string) (gradient.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return gradient.Color{}, fmt.Errorf("parsing color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return gradient.Color{R: r, G: g, B: b}, nil
}

// Render produces the complete banner as a single newline-joined string:
// star header, top rule, the logo block painted with a diagonal gradient
// inside side rails, bottom rule, and the star footer with the title label.
// The caller prints the result as-is; Render itself touches no terminal.
func Render(cfg Config) (string, error) {
	seq, err := gradient.Generate(cfg.Palette, cfg.Width)
	if err != nil {
		return "", err
	}

	contentWidth := cfg.Width - borderPadding
	if contentWidth < 0 {
		contentWidth = 0
	}
	border := cfg.Border.Code()
	accent := cfg.Accent.Code()
	rule := strings.Repeat("─", max(cfg.Width-2, 0))

	logo := make([]string, 0, len(cfg.Logo)+1)
	logo = append(logo, cfg.Logo...)
	if cfg.Tagline != "" {
		logo = append(logo, textwidth.Center(cfg.Tagline, contentWidth))
	}
	centered := textwidth.CenterBlock(logo, contentWidth)

	lines := make([]string, 0, len(centered)+5)
	lines = append(lines,
		textwidth.Center(accent+starRow, cfg.Width),
		border+"╭"+rule+"╮",
	)

	for lineIndex, line := range centered {
		painted := gradient.ApplyDiagonal(line, seq, lineIndex)
		pad := contentWidth - textwidth.VisibleWidth(line)
		if pad < 0 {
			pad = 0
		}
		lines = append(lines,
			border+"│ "+painted+strings.Repeat(" ", pad)+" "+border+"│")
	}

	footer := accent + footerLeft + cfg.Label.Code() + cfg.Title + accent + footerRight
	lines = append(lines,
		border+"╰"+rule+"╯",
		textwidth.Center(footer, cfg.Width),
		textwidth.Center(accent+starRow, cfg.Width),
	)

	return strings.Join(lines, "\n"), nil
}
