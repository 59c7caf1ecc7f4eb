package sbool

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/sigil/internal/intern"
	"github.com/aretw0/sigil/internal/logging"
)

// DefaultFlavor is the flavor used when Truth or Lie is called without an
// explicit flavor, and the flavor every negation result carries.
const DefaultFlavor = "DEFAULT"

// Value is the capability shared by Truth and Lie: a fixed integer
// truthiness (1 or 0), a flavor tag, and a printable form. Only *Truth and
// *Lie implement it; the interface is sealed so no third variant can appear.
type Value interface {
	// Int returns 1 for any Truth and 0 for any Lie, regardless of flavor.
	Int() int
	// Bool returns the native boolean equivalent.
	Bool() bool
	// Flavor returns the flavor tag the value was interned under.
	Flavor() string
	// String returns a stable form naming the variant and the flavor.
	String() string

	sealed()
}

// Truth is the truthy variant. At most one *Truth exists per flavor within a
// Registry; instances are immutable and live for the process lifetime.
type Truth struct {
	flavor string
}

func (t *Truth) Int() int       { return 1 }
func (t *Truth) Bool() bool     { return true }
func (t *Truth) Flavor() string { return t.flavor }
func (t *Truth) String() string { return fmt.Sprintf("Truth(%q)", t.flavor) }
func (t *Truth) sealed()        {}

// Lie is the falsy variant, interned independently of Truth: a Truth and a
// Lie are always distinct objects even when their flavors match.
type Lie struct {
	flavor string
}

func (l *Lie) Int() int       { return 0 }
func (l *Lie) Bool() bool     { return false }
func (l *Lie) Flavor() string { return l.flavor }
func (l *Lie) String() string { return fmt.Sprintf("Lie(%q)", l.flavor) }
func (l *Lie) sealed()        {}

// FlavorOf returns the flavor of v when v is a concrete *Truth or *Lie, and
// ErrNotFlavored for anything else. It is the escape hatch for code holding
// values of unknown type; code holding a Value can call Flavor directly.
func FlavorOf(v any) (string, error) {
	switch b := v.(type) {
	case *Truth:
		if b != nil {
			return b.flavor, nil
		}
	case *Lie:
		if b != nil {
			return b.flavor, nil
		}
	}
	// Typed nils fall through: a nil *Truth is not an interned instance.
	return "", fmt.Errorf("%w (got %T)", ErrNotFlavored, v)
}

// Registry interns Truth and Lie instances per flavor. The two variants use
// parallel stores, so flavor overlap between them never collides.
type Registry struct {
	truths *intern.Store[string, *Truth]
	lies   *intern.Store[string, *Lie]
	logger *slog.Logger
	hook   func(v Value)
}

// Option defines a functional option for configuring a Registry.
type Option func(*Registry)

// WithLogger sets a structured logger. First-time interning is logged at
// Debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// WithInternHook registers a callback fired once per (variant, flavor)
// pair, with the instance created by that first interning.
func WithInternHook(hook func(v Value)) Option {
	return func(r *Registry) {
		r.hook = hook
	}
}

// NewRegistry creates a new empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		truths: intern.NewStore[string, *Truth](),
		lies:   intern.NewStore[string, *Lie](),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Truth returns the unique Truth instance for the given flavor, creating it
// on first use. Called without arguments it returns the canonical
// DefaultFlavor instance.
func (r *Registry) Truth(flavor ...string) *Truth {
	f := DefaultFlavor
	if len(flavor) > 0 {
		f = flavor[0]
	}
	t, created := r.truths.LoadOrCreate(f, func() *Truth {
		return &Truth{flavor: f}
	})
	if created {
		r.logger.Debug("interned truth", "flavor", f)
		if r.hook != nil {
			r.hook(t)
		}
	}
	return t
}

// Lie returns the unique Lie instance for the given flavor, creating it on
// first use. Called without arguments it returns the canonical
// DefaultFlavor instance.
func (r *Registry) Lie(flavor ...string) *Lie {
	f := DefaultFlavor
	if len(flavor) > 0 {
		f = flavor[0]
	}
	l, created := r.lies.LoadOrCreate(f, func() *Lie {
		return &Lie{flavor: f}
	})
	if created {
		r.logger.Debug("interned lie", "flavor", f)
		if r.hook != nil {
			r.hook(l)
		}
	}
	return l
}

// Negate maps any Truth to the canonical default-flavor Lie and any Lie to
// the canonical default-flavor Truth. Negation deliberately does not
// preserve flavor: arbitrary flavor pairing is undefined, so the result
// always resets to DefaultFlavor. Double negation therefore converges to
// the default instances, not to the input.
func (r *Registry) Negate(v Value) Value {
	switch v.(type) {
	case *Truth:
		return r.Lie()
	case *Lie:
		return r.Truth()
	}
	// Unreachable: Value is sealed to the two variants above.
	panic(fmt.Sprintf("sbool: negate of unknown variant %T", v))
}

// TruthFlavors returns a snapshot of the flavors interned for the Truth
// variant, in no particular order.
func (r *Registry) TruthFlavors() []string {
	return r.truths.Keys()
}

// LieFlavors returns a snapshot of the flavors interned for the Lie
// variant, in no particular order.
func (r *Registry) LieFlavors() []string {
	return r.lies.Keys()
}

// Len returns the total number of interned instances across both variants.
func (r *Registry) Len() int {
	return r.truths.Len() + r.lies.Len()
}

var std = NewRegistry()

// Default returns the process-wide registry. The sigil facade exposes it
// through its package-level Truth, Lie and Negate.
func Default() *Registry {
	return std
}
