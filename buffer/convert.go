package buffer

// PosFromOffset converts a rune offset into a (row, col) position. The offset
// is clamped into the value.
func (b *Buffer) PosFromOffset(off int) Pos {
	off = b.clamp(off)
	row, start := 0, 0
	for i := 0; i < off; i++ {
		if b.text[i] == '\n' {
			row++
			start = i + 1
		}
	}
	return Pos{Row: row, Col: off - start}
}

// OffsetFromPos converts a position into a rune offset. Row is clamped into
// the document and Col into the row's length.
func (b *Buffer) OffsetFromPos(p Pos) int {
	if p.Row < 0 {
		return 0
	}
	start := 0
	for row := 0; row < p.Row; row++ {
		next := b.lineEnd(start)
		if next >= len(b.text) {
			// Past the last row.
			return len(b.text)
		}
		start = next + 1
	}
	return start + clampInt(p.Col, 0, b.lineEnd(start)-start)
}

// LineCount returns the number of logical lines (at least 1).
func (b *Buffer) LineCount() int {
	n := 1
	for _, r := range b.text {
		if r == '\n' {
			n++
		}
	}
	return n
}

func (b *Buffer) lineStart(off int) int {
	for off > 0 && b.text[off-1] != '\n' {
		off--
	}
	return off
}

func (b *Buffer) lineEnd(off int) int {
	for off < len(b.text) && b.text[off] != '\n' {
		off++
	}
	return off
}
