package buffer

import "github.com/iw2rmb/smartkeys/internal/grapheme"

// InsertText inserts text at the cursor, or replaces the active selection.
// The selection collapses after the inserted text.
func (b *Buffer) InsertText(s string) {
	r, ok := b.Selection()
	if !ok {
		if s == "" {
			return
		}
		r = Range{Start: b.head, End: b.head}
	}
	b.replace(r, s)
}

// InsertRune inserts a single rune at the cursor, or replaces the selection.
func (b *Buffer) InsertRune(r rune) {
	b.InsertText(string(r))
}

// InsertNewline inserts a line break at the cursor, or replaces the
// selection.
func (b *Buffer) InsertNewline() {
	b.InsertText("\n")
}

// DeleteBackward applies backspace semantics: the selection if any, else the
// grapheme cluster before the cursor.
func (b *Buffer) DeleteBackward() {
	if r, ok := b.Selection(); ok {
		b.replace(r, "")
		return
	}
	if b.head == 0 {
		return
	}
	n := 1
	if b.text[b.head-1] != '\n' {
		n = grapheme.LastRunes(string(b.text[b.lineStart(b.head):b.head]))
	}
	b.replace(Range{Start: b.head - n, End: b.head}, "")
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	if r, ok := b.Selection(); ok {
		b.replace(r, "")
		return
	}
	if b.head >= len(b.text) {
		return
	}
	n := 1
	if b.text[b.head] != '\n' {
		n = grapheme.FirstRunes(string(b.text[b.head:b.lineEnd(b.head)]))
	}
	b.replace(Range{Start: b.head, End: b.head + n}, "")
}

// DeleteSelection deletes the active selection, if any.
func (b *Buffer) DeleteSelection() {
	if r, ok := b.Selection(); ok {
		b.replace(r, "")
	}
}

func (b *Buffer) replace(r Range, text string) {
	r = NormalizeRange(Range{Start: b.clamp(r.Start), End: b.clamp(r.End)})
	deleted := string(b.text[r.Start:r.End])
	if r.IsEmpty() && text == "" {
		return
	}

	change := b.beginChange()
	ins := []rune(text)

	out := make([]rune, 0, len(b.text)-r.Len()+len(ins))
	out = append(out, b.text[:r.Start]...)
	out = append(out, ins...)
	out = append(out, b.text[r.End:]...)
	b.text = out

	next := r.Start + len(ins)
	b.anchor = next
	b.head = next
	b.version++

	change.addAppliedEdit(AppliedEdit{
		RangeBefore: r,
		RangeAfter:  Range{Start: r.Start, End: next},
		InsertText:  text,
		DeletedText: deleted,
	})
	b.commitChange(change)
}
