package sentinel

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/sigil/internal/intern"
	"github.com/aretw0/sigil/internal/logging"
)

// Sentinel is a uniquely-identified marker object. At most one Sentinel
// exists per distinct name within a Registry, so call sites can compare
// sentinels by pointer identity instead of by value.
//
// Sentinels are immutable and live for the remainder of the process.
type Sentinel struct {
	name string
}

// Name returns the name the sentinel was interned under.
func (s *Sentinel) Name() string {
	return s.name
}

// String returns a stable printable form that includes the name, so
// sentinels are distinguishable in logs and debuggers.
func (s *Sentinel) String() string {
	return fmt.Sprintf("Sentinel(%q)", s.name)
}

// Registry interns sentinels by name. The zero value is not usable; create
// registries with NewRegistry or use the process-wide Default.
type Registry struct {
	store  *intern.Store[string, *Sentinel]
	logger *slog.Logger
	hook   func(name string)
}

// Option defines a functional option for configuring a Registry.
type Option func(*Registry)

// WithLogger sets a structured logger. First-time interning is logged at
// Debug level; lookups of existing sentinels are not logged.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// WithObtainHook registers a callback fired once per name, when the
// sentinel for that name is first created.
func WithObtainHook(hook func(name string)) Option {
	return func(r *Registry) {
		r.hook = hook
	}
}

// NewRegistry creates a new empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		store:  intern.NewStore[string, *Sentinel](),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Obtain returns the singleton sentinel for name, constructing and
// registering it on first use. For any two calls with the same name the
// returned pointers are identical, for the life of the process. Entries are
// never evicted.
func (r *Registry) Obtain(name string) *Sentinel {
	s, created := r.store.LoadOrCreate(name, func() *Sentinel {
		return &Sentinel{name: name}
	})
	if created {
		r.logger.Debug("interned sentinel", "name", name)
		if r.hook != nil {
			r.hook(name)
		}
	}
	return s
}

// Len returns the number of distinct sentinels interned so far.
func (r *Registry) Len() int {
	return r.store.Len()
}

// Names returns a snapshot of the interned names, in no particular order.
func (r *Registry) Names() []string {
	return r.store.Keys()
}

var std = NewRegistry()

// Default returns the process-wide registry used by the package-level
// Obtain. Hosts that prefer dependency injection should create their own
// Registry and share it by reference instead.
func Default() *Registry {
	return std
}

// Obtain returns the singleton sentinel for name from the process-wide
// registry.
func Obtain(name string) *Sentinel {
	return std.Obtain(name)
}
