package highlight

import (
	"sync"
	"time"

	"github.com/dshills/lexhl/internal/logging"
)

// Registry holds compiled styles by name, in registration order.
type Registry struct {
	mu sync.RWMutex

	styles      map[string]*CompiledStyle
	order       []string
	defaultName string

	timeout time.Duration
	logger  *logging.Logger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithMatchTimeout sets the per-search timeout for styles compiled by the
// registry.
func WithMatchTimeout(d time.Duration) RegistryOption {
	return func(r *Registry) {
		r.timeout = d
	}
}

// WithRegistryLogger sets the logger used to report compile warnings.
func WithRegistryLogger(l *logging.Logger) RegistryOption {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		styles:  make(map[string]*CompiledStyle),
		timeout: DefaultMatchTimeout,
		logger:  logging.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// DefaultRegistry returns a registry holding the built-in styles, with
// DefaultStyleName as its default.
func DefaultRegistry(opts ...RegistryOption) *Registry {
	r := NewRegistry(opts...)
	for _, raw := range BuiltinStyles() {
		r.Register(raw)
	}
	r.defaultName = DefaultStyleName
	return r
}

// Register compiles raw and adds it. Registering an existing name replaces
// the style but keeps its position.
func (r *Registry) Register(raw RawStyle) *CompiledStyle {
	cs := CompileWithTimeout(raw, r.timeout)
	for _, w := range cs.Warnings {
		r.logger.WithField("style", raw.Name).Warn("skipped pattern: %s", w)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.styles[raw.Name]; !exists {
		r.order = append(r.order, raw.Name)
	}
	r.styles[raw.Name] = cs
	return cs
}

// Get returns a compiled style by name.
func (r *Registry) Get(name string) (*CompiledStyle, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cs, ok := r.styles[name]
	return cs, ok
}

// Lookup returns a compiled style by name, or an *UnknownStyleError.
func (r *Registry) Lookup(name string) (*CompiledStyle, error) {
	cs, ok := r.Get(name)
	if !ok {
		return nil, &UnknownStyleError{Name: name}
	}
	return cs, nil
}

// Names returns the registered style names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Len returns the number of registered styles.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Default returns the name of the default style: the one set with
// SetDefault, else the first registered, else "".
func (r *Registry) Default() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.styles[r.defaultName]; ok {
		return r.defaultName
	}
	if len(r.order) > 0 {
		return r.order[0]
	}
	return ""
}

// SetDefault sets the default style.
func (r *Registry) SetDefault(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.styles[name]; !ok {
		return &UnknownStyleError{Name: name}
	}
	r.defaultName = name
	return nil
}
