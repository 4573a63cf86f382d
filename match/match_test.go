package match

import "testing"

type probe struct {
	n      int
	visits []string
}

func accept(name string) Predicate[*probe] {
	return func(p *probe) bool {
		p.visits = append(p.visits, name)
		return true
	}
}

func reject(name string) Predicate[*probe] {
	return func(p *probe) bool {
		p.visits = append(p.visits, name)
		return false
	}
}

func counter(calls *int) Effect[*probe] {
	return func(p *probe) {
		*calls++
		p.n++
	}
}

func TestRun_AllPredicatesPassRunsEffectOnce(t *testing.T) {
	calls := 0
	p := &probe{}

	r := Run(p, []Predicate[*probe]{accept("a"), accept("b")}, counter(&calls))

	if !r.IsMatch() {
		t.Fatalf("expected Matched")
	}
	if got, want := calls, 1; got != want {
		t.Fatalf("effect calls: got %d, want %d", got, want)
	}
	if r.Value() != p {
		t.Fatalf("result must carry the original value")
	}
}

func TestRun_ShortCircuitsOnFirstRejection(t *testing.T) {
	calls := 0
	p := &probe{}

	r := Run(p, []Predicate[*probe]{accept("a"), reject("b"), accept("c")}, counter(&calls))

	if r.IsMatch() {
		t.Fatalf("expected Unmatched")
	}
	if calls != 0 {
		t.Fatalf("effect must not run on Unmatched, ran %d times", calls)
	}
	if got, want := len(p.visits), 2; got != want {
		t.Fatalf("visited predicates: got %v, want first %d only", p.visits, want)
	}
	if r.Value() != p {
		t.Fatalf("Unmatched must still carry the original value")
	}
}

func TestRun_NoPredicatesMatches(t *testing.T) {
	calls := 0
	r := Run(&probe{}, nil, counter(&calls))
	if !r.IsMatch() || calls != 1 {
		t.Fatalf("match=%v calls=%d, want true/1", r.IsMatch(), calls)
	}
}

func TestResult_EffectDoesNotChangeVariant(t *testing.T) {
	calls := 0
	p := &probe{}

	m := Matched(p).Effect(counter(&calls)).Effect(counter(&calls))
	if !m.IsMatch() || calls != 2 {
		t.Fatalf("matched chain: match=%v calls=%d", m.IsMatch(), calls)
	}

	u := Unmatched(p).Effect(counter(&calls)).Filter(accept("x"))
	if u.IsMatch() || calls != 2 {
		t.Fatalf("unmatched chain: match=%v calls=%d", u.IsMatch(), calls)
	}
	if len(p.visits) != 0 {
		t.Fatalf("Filter on Unmatched must not call the predicate, visits=%v", p.visits)
	}
}

func TestAnyOf_FirstMatchWins(t *testing.T) {
	first, second := 0, 0
	p := &probe{}

	dispatch := AnyOf(
		New(counter(&first), reject("never")),
		New(counter(&first), accept("one")),
		New(counter(&second), accept("two")),
	)
	r := dispatch(p)

	if !r.IsMatch() {
		t.Fatalf("expected Matched")
	}
	if first != 1 || second != 0 {
		t.Fatalf("effects: first=%d second=%d, want 1/0", first, second)
	}
	if got, want := p.visits, []string{"never", "one"}; len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("visits: got %v, want %v", got, want)
	}
}

func TestAnyOf_AllUnmatched(t *testing.T) {
	calls := 0
	p := &probe{}
	r := AnyOf(New(counter(&calls), reject("a")), New(counter(&calls), reject("b")))(p)
	if r.IsMatch() || calls != 0 {
		t.Fatalf("match=%v calls=%d, want false/0", r.IsMatch(), calls)
	}
	if r.Value() != p {
		t.Fatalf("Unmatched must carry the original value")
	}
	if r := AnyOf[*probe]()(p); r.IsMatch() {
		t.Fatalf("empty AnyOf must not match")
	}
}

func TestOr(t *testing.T) {
	a, b := 0, 0
	pipe := Or(New(counter(&a), reject("a")), New(counter(&b), accept("b")))
	if r := pipe(&probe{}); !r.IsMatch() || a != 0 || b != 1 {
		t.Fatalf("match=%v a=%d b=%d", r.IsMatch(), a, b)
	}
}

func TestNot(t *testing.T) {
	p := &probe{}
	if Not(accept("x"))(p) {
		t.Fatalf("Not(accept) must be false")
	}
	if !Not(reject("y"))(p) {
		t.Fatalf("Not(reject) must be true")
	}
}
