// Package match threads a value through ordered predicates and runs an effect
// only when every predicate accepts it.
//
// A Result is either Matched or Unmatched and always carries the original
// value, so later stages can inspect it on both branches. Once Unmatched, no
// further predicate or effect in that pipeline runs.
package match

// Result is the two-variant outcome of a pipeline.
type Result[T any] struct {
	value   T
	matched bool
}

// Predicate reports whether v should continue down the pipeline.
type Predicate[T any] func(v T) bool

// Effect is run once per matched value. It mutates whatever v points at.
type Effect[T any] func(v T)

// Pipeline maps a value to a Result.
type Pipeline[T any] func(v T) Result[T]

func Matched[T any](v T) Result[T] { return Result[T]{value: v, matched: true} }

func Unmatched[T any](v T) Result[T] { return Result[T]{value: v} }

func (r Result[T]) IsMatch() bool { return r.matched }

func (r Result[T]) Value() T { return r.value }

// Filter keeps a Matched result only if p accepts its value. p is not called
// on an Unmatched result.
func (r Result[T]) Filter(p Predicate[T]) Result[T] {
	if !r.matched || p == nil || !p(r.value) {
		return Unmatched(r.value)
	}
	return r
}

// Effect runs f on a Matched result and returns the result unchanged.
func (r Result[T]) Effect(f Effect[T]) Result[T] {
	if r.matched && f != nil {
		f(r.value)
	}
	return r
}

// Run evaluates preds left to right, stopping at the first rejection. When all
// accept, effect runs exactly once.
func Run[T any](v T, preds []Predicate[T], effect Effect[T]) Result[T] {
	r := Matched(v)
	for _, p := range preds {
		r = r.Filter(p)
		if !r.matched {
			return r
		}
	}
	return r.Effect(effect)
}

// New binds preds and effect into a reusable Pipeline.
func New[T any](effect Effect[T], preds ...Predicate[T]) Pipeline[T] {
	preds = append([]Predicate[T](nil), preds...)
	return func(v T) Result[T] {
		return Run(v, preds, effect)
	}
}

// Or tries a, then b only when a did not match.
func Or[T any](a, b Pipeline[T]) Pipeline[T] {
	return func(v T) Result[T] {
		if r := a(v); r.matched {
			return r
		}
		return b(v)
	}
}

// AnyOf returns the first Matched result among ps, evaluated left to right.
// Later pipelines are not evaluated once one matches.
func AnyOf[T any](ps ...Pipeline[T]) Pipeline[T] {
	ps = append([]Pipeline[T](nil), ps...)
	return func(v T) Result[T] {
		for _, p := range ps {
			if p == nil {
				continue
			}
			if r := p(v); r.matched {
				return r
			}
		}
		return Unmatched(v)
	}
}

// Not inverts p.
func Not[T any](p Predicate[T]) Predicate[T] {
	return func(v T) bool { return !p(v) }
}
