package sigil

import (
	"log/slog"

	"github.com/aretw0/sigil/internal/logging"
	"github.com/aretw0/sigil/pkg/sbool"
	"github.com/aretw0/sigil/pkg/sentinel"
)

// Hooks groups the first-interning callbacks a Registry can fire. Each
// callback runs at most once per distinct name or (variant, flavor) pair,
// at the moment the instance is created. Nil callbacks are skipped.
type Hooks struct {
	OnSentinel func(name string)
	OnBool     func(v sbool.Value)
}

// Registry bundles a sentinel registry and a flavored-boolean registry into
// one explicitly-constructed unit that hosts can share by reference or wire
// through dependency injection. State is empty at construction, grows only
// on first access per key, and needs no teardown.
type Registry struct {
	Sentinels *sentinel.Registry
	Bools     *sbool.Registry
}

// Option defines a functional option for configuring a Registry.
type Option func(*settings)

type settings struct {
	logger *slog.Logger
	hooks  Hooks
}

// WithLogger sets a structured logger for both underlying registries.
// First-time interning is logged at Debug level; the default is a no-op
// logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks Hooks) Option {
	return func(s *settings) {
		s.hooks = hooks
	}
}

// New creates an independent Registry. Instances interned here share no
// identity with any other Registry, including Default.
func New(opts ...Option) *Registry {
	s := &settings{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(s)
	}

	sentinelOpts := []sentinel.Option{sentinel.WithLogger(s.logger)}
	if s.hooks.OnSentinel != nil {
		sentinelOpts = append(sentinelOpts, sentinel.WithObtainHook(s.hooks.OnSentinel))
	}
	boolOpts := []sbool.Option{sbool.WithLogger(s.logger)}
	if s.hooks.OnBool != nil {
		boolOpts = append(boolOpts, sbool.WithInternHook(s.hooks.OnBool))
	}

	return &Registry{
		Sentinels: sentinel.NewRegistry(sentinelOpts...),
		Bools:     sbool.NewRegistry(boolOpts...),
	}
}

// Obtain returns the singleton sentinel for name.
func (r *Registry) Obtain(name string) *sentinel.Sentinel {
	return r.Sentinels.Obtain(name)
}

// Truth returns the unique Truth for the given flavor (or the default).
func (r *Registry) Truth(flavor ...string) *sbool.Truth {
	return r.Bools.Truth(flavor...)
}

// Lie returns the unique Lie for the given flavor (or the default).
func (r *Registry) Lie(flavor ...string) *sbool.Lie {
	return r.Bools.Lie(flavor...)
}

// Negate returns the canonical default-flavor opposite of v.
func (r *Registry) Negate(v sbool.Value) sbool.Value {
	return r.Bools.Negate(v)
}

// std wraps the sub-package defaults, so the facade and the sub-packages
// agree on identity: sigil.Obtain(n) == sentinel.Obtain(n).
var std = &Registry{
	Sentinels: sentinel.Default(),
	Bools:     sbool.Default(),
}

// Default returns the process-wide Registry behind the package-level
// functions.
func Default() *Registry {
	return std
}

// Obtain returns the singleton sentinel for name from the process-wide
// registry.
func Obtain(name string) *sentinel.Sentinel {
	return std.Obtain(name)
}

// Truth returns the unique process-wide Truth for the given flavor.
func Truth(flavor ...string) *sbool.Truth {
	return std.Truth(flavor...)
}

// Lie returns the unique process-wide Lie for the given flavor.
func Lie(flavor ...string) *sbool.Lie {
	return std.Lie(flavor...)
}

// Negate negates v against the process-wide registry.
func Negate(v sbool.Value) sbool.Value {
	return std.Negate(v)
}
