package smartkeys

import (
	"testing"

	"github.com/iw2rmb/smartkeys/buffer"
	"github.com/iw2rmb/smartkeys/richtext"
)

func TestPredicates_Linear(t *testing.T) {
	b := buffer.New("hello")
	ev := NewEvent("(", Linear{Surface: b})

	if !TargetIsLinear(ev) || TargetIsRange(ev) {
		t.Fatalf("surface classification wrong for linear target")
	}
	if !HasActiveSelection(ev) {
		t.Fatalf("linear surface always has a selection")
	}
	if !SelectionIsCollapsed(ev) {
		t.Fatalf("fresh buffer must be collapsed")
	}

	b.SetSelectionRange(1, 3)
	if SelectionIsCollapsed(ev) {
		t.Fatalf("[1,3] must not be collapsed")
	}
}

func TestPredicates_Range(t *testing.T) {
	d, err := richtext.Parse("hello")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	ev := NewEvent("(", Rich{Surface: d})

	if !TargetIsRange(ev) || TargetIsLinear(ev) {
		t.Fatalf("surface classification wrong for range target")
	}
	if HasActiveSelection(ev) || SelectionIsCollapsed(ev) {
		t.Fatalf("no range must read as no selection and not collapsed")
	}

	text := d.Root().FirstChild
	d.Collapse(text, 2)
	if !HasActiveSelection(ev) || !SelectionIsCollapsed(ev) {
		t.Fatalf("caret must be active and collapsed")
	}

	d.SetSelection(text, 0, text, 5)
	if SelectionIsCollapsed(ev) {
		t.Fatalf("range must not be collapsed")
	}
}

func TestPredicates_MissingTargetNeverPanics(t *testing.T) {
	for _, ev := range []*Event{nil, {Key: "("}, NewEvent("(", Linear{}), NewEvent("(", Rich{})} {
		if TargetIsLinear(ev) || TargetIsRange(ev) || HasActiveSelection(ev) || SelectionIsCollapsed(ev) {
			t.Fatalf("event %+v must fail every surface predicate", ev)
		}
	}
	if KeyIn(CharSet{"(": {}})(nil) {
		t.Fatalf("KeyIn(nil event) must be false")
	}
}

func TestKeyIn(t *testing.T) {
	set := CharSet{"(": {Open: "(", Close: ")"}}
	if !KeyIn(set)(NewEvent("(", nil)) {
		t.Fatalf("configured key must match")
	}
	if KeyIn(set)(NewEvent("a", nil)) {
		t.Fatalf("unconfigured key must not match")
	}
	if KeyIn(nil)(NewEvent("(", nil)) {
		t.Fatalf("nil set must not match")
	}
}
