package editor

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/smartkeys/internal/grapheme"
)

type cellKind uint8

const (
	cellText cellKind = iota
	cellSelected
	cellCursor
)

func (m *Model) renderContent() string {
	lines := strings.Split(m.buf.Text(), "\n")
	cursor := m.buf.Cursor()
	cursorRow := m.buf.PosFromOffset(cursor).Row

	digits := 0
	if m.cfg.ShowLineNums {
		digits = gutterDigits(len(lines))
	}

	out := make([]string, 0, len(lines))
	off := 0
	for row, line := range lines {
		var sb strings.Builder
		if m.cfg.ShowLineNums {
			numStyle := m.cfg.Style.LineNum
			if m.focused && row == cursorRow {
				numStyle = m.cfg.Style.LineNumActive
			}
			sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", digits, row+1)))
			sb.WriteString(m.cfg.Style.Gutter.Render(" "))
		}
		sb.WriteString(m.renderLine(line, off))
		out = append(out, sb.String())
		off += utf8.RuneCountInString(line) + 1
	}
	return strings.Join(out, "\n")
}

// renderLine renders one logical line whose first rune sits at offset start.
// Consecutive clusters with the same role share one styled span.
func (m *Model) renderLine(line string, start int) string {
	cursor := m.buf.Cursor()
	selStart, selEnd := m.buf.SelectionStart(), m.buf.SelectionEnd()

	kindAt := func(off int) cellKind {
		switch {
		case m.focused && off == cursor:
			return cellCursor
		case off >= selStart && off < selEnd:
			return cellSelected
		default:
			return cellText
		}
	}

	var sb strings.Builder
	var span strings.Builder
	spanKind := cellText
	flush := func() {
		if span.Len() == 0 {
			return
		}
		sb.WriteString(m.styleFor(spanKind).Render(span.String()))
		span.Reset()
	}

	off, cell := start, 0
	for _, g := range grapheme.Split(line) {
		k := kindAt(off)
		if k != spanKind || k == cellCursor {
			flush()
			spanKind = k
		}
		w := graphemeCellWidth(g, cell, m.cfg.TabWidth)
		if g == "\t" {
			span.WriteString(strings.Repeat(" ", w))
		} else {
			span.WriteString(g)
		}
		if k == cellCursor {
			flush()
		}
		cell += w
		off += utf8.RuneCountInString(g)
	}
	flush()

	// The cursor at end of line is drawn as a one-cell placeholder.
	if m.focused && cursor == off {
		sb.WriteString(m.cfg.Style.Cursor.Render(" "))
	}
	return sb.String()
}

func (m *Model) styleFor(k cellKind) lipgloss.Style {
	switch k {
	case cellCursor:
		return m.cfg.Style.Cursor
	case cellSelected:
		return m.cfg.Style.Selection
	default:
		return m.cfg.Style.Text
	}
}

func gutterDigits(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	return len(fmt.Sprintf("%d", lineCount))
}
