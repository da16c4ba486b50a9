// Package gradient builds multi-stop truecolor gradients and paints text
// with them diagonally.
package gradient

import (
	"errors"
	"fmt"
	"strings"
)

// ErrTooFewColors is returned when a gradient is requested with fewer than
// two key colors.
var ErrTooFewColors = errors.New("gradient: need at least 2 key colors")

// Color is an immutable RGB triple.
type Color struct {
	R, G, B uint8
}

// Code returns the 24-bit foreground escape sequence for c.
func (c Color) Code() string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", c.R, c.G, c.B)
}

// Sequence is an ordered run of color codes. Consumers index it cyclically,
// so any non-empty sequence paints arbitrarily long text.
type Sequence []string

// Generate interpolates a Sequence of roughly steps color codes through the
// given key colors. The gradient is split into len(keys)-1 equal segments
// with max(1, steps/len segments) codes each; per-channel interpolation is
// linear with fractions truncated to integers. When steps does not divide
// evenly by the segment count the sequence comes up short rather than being
// padded, so the produced length is segments*stepsPerSegment.
func Generate(keys []Color, steps int) (Sequence, error) {
	if len(keys) < 2 {
		return nil, ErrTooFewColors
	}

	segments := len(keys) - 1
	stepsPerSegment := steps / segments
	if stepsPerSegment < 1 {
		stepsPerSegment = 1
	}

	seq := make(Sequence, 0, segments*stepsPerSegment)
	for i := 0; i < segments; i++ {
		start, end := keys[i], keys[i+1]
		for j := 0; j < stepsPerSegment; j++ {
			t := float64(j) / float64(stepsPerSegment)
			seq = append(seq, lerp(start, end, t).Code())
		}
	}

	return seq, nil
}

// lerp interpolates each channel independently, truncating toward zero.
func lerp(a, b Color, t float64) Color {
	return Color{
		R: uint8(float64(a.R)*(1-t) + float64(b.R)*t),
		G: uint8(float64(a.G)*(1-t) + float64(b.G)*t),
		B: uint8(float64(a.B)*(1-t) + float64(b.B)*t),
	}
}

// colorIndex maps a character position and line number to a sequence index.
// Positions on the same diagonal (equal i+lineIndex) share an index, which
// is what makes the stripes run diagonally across a block.
func colorIndex(i, lineIndex, n int) int {
	if n < 1 {
		panic("gradient: empty sequence")
	}
	return (i + lineIndex) % n
}

// ApplyDiagonal prefixes every rune of line with a code from seq, rotated
// by lineIndex so consecutive lines start one step further into the
// gradient. The input must not already contain escape sequences; runes are
// counted as-is, so embedded codes would both be painted over and skew the
// diagonal.
func ApplyDiagonal(line string, seq Sequence, lineIndex int) string {
	var b strings.Builder
	i := 0
	for _, r := range line {
		b.WriteString(seq[colorIndex(i, lineIndex, len(seq))])
		b.WriteRune(r)
		i++
	}
	return b.String()
}
