package smartkeys

import "github.com/iw2rmb/smartkeys/match"

// TargetIsLinear reports whether the event targets a linear surface.
func TargetIsLinear(ev *Event) bool {
	_, ok := ev.linear()
	return ok
}

// TargetIsRange reports whether the event targets a range surface.
func TargetIsRange(ev *Event) bool {
	_, ok := ev.rich()
	return ok
}

// HasActiveSelection reports whether the surface has at least one selection
// range. A linear surface always has one.
func HasActiveSelection(ev *Event) bool {
	if _, ok := ev.linear(); ok {
		return true
	}
	if s, ok := ev.rich(); ok {
		return s.RangeCount() > 0
	}
	return false
}

// SelectionIsCollapsed reports whether the selection is a bare cursor. No
// selection counts as not collapsed.
func SelectionIsCollapsed(ev *Event) bool {
	if s, ok := ev.linear(); ok {
		return s.SelectionStart() == s.SelectionEnd()
	}
	if s, ok := ev.rich(); ok {
		return s.RangeCount() > 0 && s.Collapsed()
	}
	return false
}

// KeyIn reports whether the pressed key is configured in set.
func KeyIn(set CharSet) match.Predicate[*Event] {
	return func(ev *Event) bool {
		if ev == nil {
			return false
		}
		_, ok := set[ev.Key]
		return ok
	}
}
