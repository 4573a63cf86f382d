package smartkeys

import (
	"go.uber.org/zap"

	"github.com/iw2rmb/smartkeys/match"
)

// Dispatcher routes key presses to the first matching smart key behavior.
// It holds no mutable state and may be shared.
type Dispatcher struct {
	cfg      Config
	log      *zap.Logger
	token    func() string
	dispatch match.Pipeline[*Event]
}

// Option customizes a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sends diagnostics to l. The default discards them.
func WithLogger(l *zap.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.log = l
		}
	}
}

// WithTokenSource replaces the anchor id generator. Ids must be unique
// within the surface.
func WithTokenSource(next func() string) Option {
	return func(d *Dispatcher) {
		if next != nil {
			d.token = next
		}
	}
}

// Build resolves opts against Defaults and composes the four behaviors.
func Build(opts Options, optFns ...Option) (*Dispatcher, error) {
	cfg, err := Resolve(opts, Defaults())
	if err != nil {
		return nil, err
	}
	return New(cfg, optFns...), nil
}

// New composes a Dispatcher from an already resolved Config.
//
// Range surfaces are tried before linear ones; within a surface kind the
// collapsed check keeps pairing and wrapping apart.
func New(cfg Config, optFns ...Option) *Dispatcher {
	d := &Dispatcher{
		cfg:   cfg,
		log:   zap.NewNop(),
		token: newAnchorToken,
	}
	for _, fn := range optFns {
		fn(d)
	}

	h := handlers{cfg: cfg, log: d.log, token: d.token}
	d.dispatch = match.AnyOf(
		match.New(d.effect("range-wrap", h.wrapRich),
			TargetIsRange,
			HasActiveSelection,
			match.Not[*Event](SelectionIsCollapsed),
			KeyIn(cfg.wrappable),
		),
		match.New(d.effect("range-pair", h.pairRich),
			TargetIsRange,
			HasActiveSelection,
			SelectionIsCollapsed,
			KeyIn(cfg.pairable),
		),
		match.New(d.effect("linear-pair", h.pairLinear),
			TargetIsLinear,
			SelectionIsCollapsed,
			KeyIn(cfg.pairable),
		),
		match.New(d.effect("linear-wrap", h.wrapLinear),
			TargetIsLinear,
			match.Not[*Event](SelectionIsCollapsed),
			KeyIn(cfg.wrappable),
		),
	)
	return d
}

// Config returns the resolved configuration.
func (d *Dispatcher) Config() Config { return d.cfg }

// HandleKeydown applies the first matching behavior to ev, if any. A handled
// event has DefaultPrevented set.
func (d *Dispatcher) HandleKeydown(ev *Event) {
	d.Dispatch(ev)
}

// Dispatch is HandleKeydown that also reports whether a behavior matched.
func (d *Dispatcher) Dispatch(ev *Event) match.Result[*Event] {
	return d.dispatch(ev)
}

func (d *Dispatcher) effect(name string, apply match.Effect[*Event]) match.Effect[*Event] {
	return func(ev *Event) {
		d.log.Debug("smartkeys matched",
			zap.String("pipeline", name),
			zap.String("key", ev.Key),
			zap.Stringer("surface", ev.kind()),
		)
		ev.PreventDefault()
		apply(ev)
	}
}
