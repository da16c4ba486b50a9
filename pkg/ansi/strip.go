// Package ansi strips terminal escape sequences so text can be measured.
package ansi

// Strip removes complete ANSI escape sequences from s and returns the
// printable remainder in its original order.
//
// It is a hand-rolled scanner rather than a regex so the accepted grammar
// is explicit: ESC, an Fe introducer byte in 0x40-0x5F (CSI is ESC '['),
// zero or more parameter bytes in 0x30-0x3F, zero or more intermediate
// bytes in 0x20-0x2F, and a final byte in 0x40-0x7E. Only a substring
// matching the whole grammar is dropped; a lone ESC or a truncated
// sequence is kept as-is, never partially deleted.
func Strip(s string) string {
	if s == "" {
		return s
	}

	b := []byte(s)
	out := make([]byte, 0, len(b))

	for i := 0; i < len(b); {
		if b[i] != 0x1b {
			out = append(out, b[i])
			i++
			continue
		}

		end, ok := scanSequence(b, i)
		if !ok {
			out = append(out, b[i])
			i++
			continue
		}
		i = end
	}

	return string(out)
}

// scanSequence reports whether a complete escape sequence starts at b[start]
// and, if so, the index just past its final byte.
func scanSequence(b []byte, start int) (int, bool) {
	i := start + 1 // past ESC
	if i >= len(b) {
		return 0, false
	}

	// Fe introducer ("@" through "_"); anything else is not a sequence start.
	if b[i] < 0x40 || b[i] > 0x5f {
		return 0, false
	}
	i++

	for i < len(b) && b[i] >= 0x30 && b[i] <= 0x3f { // parameter bytes
		i++
	}
	for i < len(b) && b[i] >= 0x20 && b[i] <= 0x2f { // intermediate bytes
		i++
	}
	if i < len(b) && b[i] >= 0x40 && b[i] <= 0x7e { // final byte
		return i + 1, true
	}

	return 0, false
}
