package smartkeys

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/net/html"
)

// ErrAnchorNotFound means the surface accepted an insertion but the tagged
// container could not be found afterwards. The text change stays; the
// selection is left wherever the surface put it.
var ErrAnchorNotFound = errors.New("smartkeys: inserted anchor not found")

type handlers struct {
	cfg   Config
	log   *zap.Logger
	token func() string
}

func (h handlers) pairLinear(ev *Event) {
	s, ok := ev.linear()
	if !ok {
		return
	}
	p, ok := h.cfg.pairable[ev.Key]
	if !ok {
		return
	}

	at := s.SelectionStart()
	at = h.replaceLinear(s, at, at, p.Open+p.Close)
	caret := at + utf8.RuneCountInString(p.Open)
	s.SetSelectionRange(caret, caret)
}

func (h handlers) wrapLinear(ev *Event) {
	s, ok := ev.linear()
	if !ok {
		return
	}
	p, ok := h.cfg.wrappable[ev.Key]
	if !ok {
		return
	}

	value := []rune(s.Value())
	start := clampOffset(s.SelectionStart(), len(value))
	end := clampOffset(s.SelectionEnd(), len(value))
	selected := string(value[start:end])

	h.replaceLinear(s, start, end, p.Open+selected+p.Close)
	shift := utf8.RuneCountInString(p.Open)
	s.SetSelectionRange(start+shift, end+shift)
}

// replaceLinear replaces [start, end) with literal and returns the clamped
// start. Both strategies leave the same value behind.
func (h handlers) replaceLinear(s LinearSurface, start, end int, literal string) int {
	value := []rune(s.Value())
	start = clampOffset(start, len(value))
	end = clampOffset(end, len(value))

	if h.cfg.fallbackMode {
		s.SetValue(string(value[:start]) + literal + string(value[end:]))
		return start
	}
	s.SetSelectionRange(start, end)
	s.InsertText(literal)
	return start
}

func (h handlers) pairRich(ev *Event) {
	s, ok := ev.rich()
	if !ok {
		return
	}
	p, ok := h.cfg.pairable[ev.Key]
	if !ok {
		return
	}

	token := h.token()
	if err := s.InsertHTML(anchorMarkup(token, textToHTML(p.Open+p.Close))); err != nil {
		h.fail(ev, fmt.Errorf("insert pair: %w", err))
		return
	}

	first, _, err := anchorText(s, token)
	if err != nil {
		h.fail(ev, err)
		return
	}
	caret := utf8.RuneCountInString(p.Open)
	s.SetSelection(first, caret, first, caret)
}

func (h handlers) wrapRich(ev *Event) {
	s, ok := ev.rich()
	if !ok {
		return
	}
	p, ok := h.cfg.wrappable[ev.Key]
	if !ok {
		return
	}

	selected := s.SelectedText()
	token := h.token()
	if err := s.InsertHTML(anchorMarkup(token, textToHTML(p.Open+selected+p.Close))); err != nil {
		h.fail(ev, fmt.Errorf("insert wrap: %w", err))
		return
	}

	first, last, err := anchorText(s, token)
	if err != nil {
		h.fail(ev, err)
		return
	}
	end := utf8.RuneCountInString(last.Data) - utf8.RuneCountInString(p.Close)
	s.SetSelection(first, utf8.RuneCountInString(p.Open), last, end)
}

func (h handlers) fail(ev *Event, err error) {
	ev.Err = err
	h.log.Error("smartkeys handler failed",
		zap.String("key", ev.Key),
		zap.Stringer("surface", ev.kind()),
		zap.Error(err),
	)
}

// anchorText finds the container tagged with token and returns its first and
// last text children.
func anchorText(s RangeSurface, token string) (first, last *html.Node, err error) {
	span, ok := s.ElementByID(token)
	if !ok {
		return nil, nil, fmt.Errorf("%w: id %q", ErrAnchorNotFound, token)
	}
	first, last = span.FirstChild, span.LastChild
	if first == nil || first.Type != html.TextNode || last.Type != html.TextNode {
		return nil, nil, fmt.Errorf("%w: id %q has no text boundaries", ErrAnchorNotFound, token)
	}
	return first, last, nil
}

func clampOffset(off, n int) int {
	if off < 0 {
		return 0
	}
	if off > n {
		return n
	}
	return off
}
