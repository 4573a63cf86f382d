package buffer

import "github.com/iw2rmb/smartkeys/internal/grapheme"

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // if true, keeps the anchor and moves the head; if false collapses
}

func (b *Buffer) Move(m Move) {
	next := b.clamp(b.moveHead(b.head, m))

	if m.Extend {
		b.setSelection(b.anchor, next)
		return
	}

	// A plain left/right on a selection collapses it to the matching edge.
	if _, ok := b.Selection(); ok && m.Unit == MoveGrapheme {
		switch m.Dir {
		case DirLeft:
			next = b.SelectionStart()
		case DirRight:
			next = b.SelectionEnd()
		}
	}
	b.setSelection(next, next)
}

func (b *Buffer) moveHead(off int, m Move) int {
	switch m.Unit {
	case MoveGrapheme:
		return b.moveGrapheme(off, m.Dir)
	case MoveLine:
		return b.moveLine(off, m.Dir)
	case MoveDoc:
		switch m.Dir {
		case DirHome, DirUp, DirLeft:
			return 0
		default:
			return len(b.text)
		}
	default:
		return off
	}
}

func (b *Buffer) moveGrapheme(off int, dir MoveDir) int {
	switch dir {
	case DirLeft:
		if off == 0 {
			return off
		}
		if b.text[off-1] == '\n' {
			return off - 1
		}
		return off - grapheme.LastRunes(string(b.text[b.lineStart(off):off]))
	case DirRight:
		if off >= len(b.text) {
			return off
		}
		if b.text[off] == '\n' {
			return off + 1
		}
		return off + grapheme.FirstRunes(string(b.text[off:b.lineEnd(off)]))
	default:
		return b.moveLine(off, dir)
	}
}

func (b *Buffer) moveLine(off int, dir MoveDir) int {
	p := b.PosFromOffset(off)
	switch dir {
	case DirUp:
		if p.Row == 0 {
			return b.lineStart(off)
		}
		return b.OffsetFromPos(Pos{Row: p.Row - 1, Col: p.Col})
	case DirDown:
		if p.Row >= b.LineCount()-1 {
			return b.lineEnd(off)
		}
		return b.OffsetFromPos(Pos{Row: p.Row + 1, Col: p.Col})
	case DirHome, DirLeft:
		return b.lineStart(off)
	case DirEnd, DirRight:
		return b.lineEnd(off)
	default:
		return off
	}
}
