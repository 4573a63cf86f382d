package buffer

// Buffer is the pure document state of a linear surface: text and selection.
//
// The selection keeps a direction: anchor is where it started, head is where
// the cursor is. SelectionStart/SelectionEnd always report it normalized.
type Buffer struct {
	text    []rune
	version uint64

	anchor int
	head   int

	lastChange    Change
	hasLastChange bool
}

func New(text string) *Buffer {
	return &Buffer{text: []rune(text)}
}

func (b *Buffer) Text() string { return string(b.text) }

// Value returns the full text value.
func (b *Buffer) Value() string { return string(b.text) }

func (b *Buffer) Len() int { return len(b.text) }

func (b *Buffer) Version() uint64 { return b.version }

// Cursor returns the offset of the selection head.
func (b *Buffer) Cursor() int { return b.head }

func (b *Buffer) SelectionStart() int {
	if b.anchor < b.head {
		return b.anchor
	}
	return b.head
}

func (b *Buffer) SelectionEnd() int {
	if b.anchor > b.head {
		return b.anchor
	}
	return b.head
}

// Selection returns the normalized selection if it is not collapsed.
func (b *Buffer) Selection() (Range, bool) {
	r := Range{Start: b.SelectionStart(), End: b.SelectionEnd()}
	if r.IsEmpty() {
		return Range{}, false
	}
	return r, true
}

// SelectionRaw returns anchor and head without normalization.
func (b *Buffer) SelectionRaw() Range {
	return Range{Start: b.anchor, End: b.head}
}

// SetSelectionRange selects [start, end). Offsets are clamped into the value;
// an end before start collapses the selection at end.
func (b *Buffer) SetSelectionRange(start, end int) {
	end = b.clamp(end)
	start = b.clamp(start)
	if end < start {
		start = end
	}
	b.setSelection(start, end)
}

func (b *Buffer) SetCursor(off int) {
	off = b.clamp(off)
	b.setSelection(off, off)
}

// ClearSelection collapses the selection onto its head.
func (b *Buffer) ClearSelection() {
	b.setSelection(b.head, b.head)
}

// SetValue replaces the whole value. Like a text control, the cursor moves to
// the end of the new value.
func (b *Buffer) SetValue(v string) {
	next := []rune(v)
	if string(next) == string(b.text) {
		return
	}
	change := b.beginChange()
	deleted := string(b.text)
	b.text = next
	b.anchor = len(b.text)
	b.head = len(b.text)
	b.version++
	change.addAppliedEdit(AppliedEdit{
		RangeBefore: Range{Start: 0, End: len([]rune(deleted))},
		RangeAfter:  Range{Start: 0, End: len(b.text)},
		InsertText:  v,
		DeletedText: deleted,
	})
	b.commitChange(change)
}

// Slice returns the text in [start, end), clamped into the value.
func (b *Buffer) Slice(start, end int) string {
	r := NormalizeRange(Range{Start: b.clamp(start), End: b.clamp(end)})
	return string(b.text[r.Start:r.End])
}

func (b *Buffer) setSelection(anchor, head int) {
	if anchor == b.anchor && head == b.head {
		return
	}
	b.anchor = anchor
	b.head = head
	b.version++
}

func (b *Buffer) clamp(off int) int {
	return clampInt(off, 0, len(b.text))
}
