package smartkeys

import "golang.org/x/net/html"

// LinearSurface is a text control whose selection is a pair of rune offsets
// into its value.
type LinearSurface interface {
	SelectionStart() int
	SelectionEnd() int
	SetSelectionRange(start, end int)
	Value() string
	SetValue(v string)
	// InsertText replaces the current selection with the literal s.
	InsertText(s string)
}

// RangeSurface is a rich editable region whose selection is a DOM range.
type RangeSurface interface {
	RangeCount() int
	Collapsed() bool
	SelectedText() string
	// InsertHTML replaces the current selection with markup. Ranges read
	// before the call must be treated as invalid afterwards.
	InsertHTML(markup string) error
	ElementByID(id string) (*html.Node, bool)
	SetSelection(startNode *html.Node, startOffset int, endNode *html.Node, endOffset int)
}

// SurfaceKind identifies the selection model of an event target.
type SurfaceKind uint8

const (
	SurfaceNone SurfaceKind = iota
	SurfaceLinear
	SurfaceRange
)

func (k SurfaceKind) String() string {
	switch k {
	case SurfaceLinear:
		return "linear"
	case SurfaceRange:
		return "range"
	default:
		return "none"
	}
}

// Target is the surface a key press is aimed at: either Linear or Rich.
type Target interface {
	Kind() SurfaceKind
	isTarget()
}

// Linear targets a LinearSurface.
type Linear struct {
	Surface LinearSurface
}

func (Linear) Kind() SurfaceKind { return SurfaceLinear }
func (Linear) isTarget()         {}

// Rich targets a RangeSurface.
type Rich struct {
	Surface RangeSurface
}

func (Rich) Kind() SurfaceKind { return SurfaceRange }
func (Rich) isTarget()         {}

// Event is one key press. Handlers only mutate the surface, mark the event
// handled, and record a failure in Err.
type Event struct {
	Key    string
	Target Target

	// Err is set when a handler mutated the surface but could not
	// re-establish the selection afterwards.
	Err error

	defaultPrevented bool
}

func NewEvent(key string, target Target) *Event {
	return &Event{Key: key, Target: target}
}

// PreventDefault marks the event handled so the host skips its default
// insertion.
func (e *Event) PreventDefault() { e.defaultPrevented = true }

func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

func (e *Event) kind() SurfaceKind {
	if e == nil || e.Target == nil {
		return SurfaceNone
	}
	return e.Target.Kind()
}

func (e *Event) linear() (LinearSurface, bool) {
	if e == nil {
		return nil, false
	}
	t, ok := e.Target.(Linear)
	if !ok || t.Surface == nil {
		return nil, false
	}
	return t.Surface, true
}

func (e *Event) rich() (RangeSurface, bool) {
	if e == nil {
		return nil, false
	}
	t, ok := e.Target.(Rich)
	if !ok || t.Surface == nil {
		return nil, false
	}
	return t.Surface, true
}
