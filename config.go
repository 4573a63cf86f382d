package smartkeys

import (
	"errors"
	"fmt"
	"sort"

	"github.com/iw2rmb/smartkeys/internal/grapheme"
)

// ErrInvalidCharSet reports a character mapping that cannot be used.
var ErrInvalidCharSet = errors.New("smartkeys: invalid character set")

// Pair is the text inserted before and after the cursor or selection.
type Pair struct {
	Open  string `toml:"open" json:"open"`
	Close string `toml:"close" json:"close"`
}

// CharSet maps a typed character to its Pair.
type CharSet map[string]Pair

func (s CharSet) clone() CharSet {
	out := make(CharSet, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

func (s CharSet) keys() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Options is the user-facing configuration.
//
// Wrap and Pair pick keys out of the default sets; a nil list keeps the whole
// default set and an empty list disables the behavior. An explicit Wrappable
// or Pairable mapping replaces the corresponding set outright.
type Options struct {
	// FallbackMode splices linear surface values by hand instead of calling
	// the surface's insertion primitive.
	FallbackMode bool `toml:"fallback_mode" json:"fallbackMode"`

	Wrap []string `toml:"wrap" json:"wrap"`
	Pair []string `toml:"pair" json:"pair"`

	Wrappable CharSet `toml:"wrappable" json:"wrappable"`
	Pairable  CharSet `toml:"pairable" json:"pairable"`
}

// Defaults returns the built-in character sets.
func Defaults() Options {
	return Options{
		Wrappable: CharSet{
			`"`: {Open: `"`, Close: `"`},
			"[": {Open: "[", Close: "]"},
			"(": {Open: "(", Close: ")"},
			"{": {Open: "{", Close: "}"},
			"~": {Open: "~", Close: "~"},
			"`": {Open: "`", Close: "`"},
		},
		Pairable: CharSet{
			`"`: {Open: `"`, Close: `"`},
			"[": {Open: "[", Close: "]"},
			"(": {Open: "(", Close: ")"},
			"{": {Open: "{", Close: "}"},
		},
	}
}

// Config is a resolved configuration. It is never mutated after Resolve, so
// it is safe to share.
type Config struct {
	fallbackMode bool
	wrappable    CharSet
	pairable     CharSet
}

// Resolve merges opts into defaults. The result does not alias either input.
func Resolve(opts, defaults Options) (Config, error) {
	cfg := Config{
		fallbackMode: opts.FallbackMode,
		wrappable:    selectKeys(defaults.Wrappable, opts.Wrap),
		pairable:     selectKeys(defaults.Pairable, opts.Pair),
	}
	if opts.Wrappable != nil {
		cfg.wrappable = opts.Wrappable.clone()
	}
	if opts.Pairable != nil {
		cfg.pairable = opts.Pairable.clone()
	}

	if err := validateCharSet("wrappable", cfg.wrappable); err != nil {
		return Config{}, err
	}
	if err := validateCharSet("pairable", cfg.pairable); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func selectKeys(set CharSet, keys []string) CharSet {
	if keys == nil {
		return set.clone()
	}
	out := make(CharSet, len(keys))
	for _, k := range keys {
		if p, ok := set[k]; ok {
			out[k] = p
		}
	}
	return out
}

func validateCharSet(name string, set CharSet) error {
	for _, k := range set.keys() {
		if grapheme.Count(k) != 1 {
			return fmt.Errorf("%w: %s key %q is not a single character", ErrInvalidCharSet, name, k)
		}
		p := set[k]
		if p.Open == "" || p.Close == "" {
			return fmt.Errorf("%w: %s key %q needs non-empty open and close", ErrInvalidCharSet, name, k)
		}
	}
	return nil
}

func (c Config) FallbackMode() bool { return c.fallbackMode }

func (c Config) Wrappable(key string) (Pair, bool) {
	p, ok := c.wrappable[key]
	return p, ok
}

func (c Config) Pairable(key string) (Pair, bool) {
	p, ok := c.pairable[key]
	return p, ok
}

// WrappableKeys lists wrappable keys in sorted order.
func (c Config) WrappableKeys() []string { return c.wrappable.keys() }

// PairableKeys lists pairable keys in sorted order.
func (c Config) PairableKeys() []string { return c.pairable.keys() }
