package highlight

import (
	"sync"

	"github.com/dshills/lexhl/internal/logging"
)

// Engine highlights lines with the active style of a Registry. It keeps no
// per-line history: callers pass the previous line's state in and store the
// returned state themselves.
type Engine struct {
	mu sync.RWMutex

	registry *Registry
	active   *CompiledStyle
	logger   *logging.Logger
}

// Option configures an Engine.
type Option func(*engineConfig)

type engineConfig struct {
	style  string
	logger *logging.Logger
}

// WithStyle selects the initial style instead of the registry default.
func WithStyle(name string) Option {
	return func(c *engineConfig) {
		c.style = name
	}
}

// WithLogger sets the logger for span application faults.
func WithLogger(l *logging.Logger) Option {
	return func(c *engineConfig) {
		c.logger = l
	}
}

// NewEngine creates an engine over reg. The active style is the one given
// with WithStyle, or reg.Default(). An engine over an empty registry
// produces no spans.
func NewEngine(reg *Registry, opts ...Option) (*Engine, error) {
	cfg := engineConfig{logger: logging.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = logging.Nop()
	}
	if reg == nil {
		reg = NewRegistry()
	}

	e := &Engine{
		registry: reg,
		logger:   cfg.logger.WithComponent("highlight"),
	}

	name := cfg.style
	if name == "" {
		name = reg.Default()
	}
	if name != "" {
		cs, err := reg.Lookup(name)
		if err != nil {
			return nil, err
		}
		e.active = cs
	}
	return e, nil
}

// Registry returns the engine's style registry.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// Styles returns the available style names in registration order.
func (e *Engine) Styles() []string {
	return e.registry.Names()
}

// Style returns the active style name.
func (e *Engine) Style() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.active == nil {
		return ""
	}
	return e.active.Name
}

// SetStyle switches the active style. It returns an *UnknownStyleError and
// keeps the current style when name is not registered. Lines already
// highlighted are not revisited.
func (e *Engine) SetStyle(name string) error {
	cs, err := e.registry.Lookup(name)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.active = cs
	return nil
}

// Highlight returns the spans for line, in application order, and the line's
// terminal state given the previous line's state.
func (e *Engine) Highlight(line string, prev LineState) ([]Span, LineState) {
	e.mu.RLock()
	cs := e.active
	e.mu.RUnlock()

	if cs == nil {
		return nil, StateClosed
	}

	spans, state, err := HighlightLine(cs, line, prev)
	if err != nil {
		e.logger.WithField("style", cs.Name).Debug("partial highlight: %v", err)
	}
	return spans, state
}

// HighlightLine highlights one line with cs. Single-line rules are applied
// first, then the first delimiter kind, then the second kind unless the
// first is left open. A non-nil error is a *SpanApplicationFault; the spans
// returned alongside it are still valid.
func HighlightLine(cs *CompiledStyle, line string, prev LineState) ([]Span, LineState, error) {
	runes := []rune(line)

	spans, err := Scan(runes, cs.Rules)

	first := cs.Delimiters[0]
	regions, state := Track(runes, first, prev)
	spans = append(spans, regions...)

	if state != first.State {
		regions, state = Track(runes, cs.Delimiters[1], prev)
		spans = append(spans, regions...)
	}

	return spans, state, err
}
