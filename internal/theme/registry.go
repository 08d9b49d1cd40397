package theme

import (
	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/shade/internal/colour"
	"github.com/jmylchreest/shade/internal/event"
)

// DefaultPrefix is the CSS variable prefix used when none is configured.
const DefaultPrefix = "jtjs"

// Registry holds registered themes and the current selection.
//
// A Registry is meant to be driven from a single goroutine. Every change to
// the current theme is published to the sink before listeners are notified.
type Registry struct {
	logger       hclog.Logger
	sink         Sink
	prefix       string
	amount       float64
	defaultTheme Theme

	themes   []*Theme
	current  *Theme
	onChange event.Event[Theme]
	closed   bool
}

// Option configures a Registry.
type Option func(*Registry)

// WithSink sets where derived variables are published.
func WithSink(sink Sink) Option {
	return func(r *Registry) {
		r.sink = sink
	}
}

// WithLogger sets the registry logger.
func WithLogger(logger hclog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithDefaultTheme sets the theme published before any registration.
// The default theme is not registered.
func WithDefaultTheme(t Theme) Option {
	return func(r *Registry) {
		r.defaultTheme = t.Clone()
	}
}

// WithPrefix sets the CSS variable prefix.
func WithPrefix(prefix string) Option {
	return func(r *Registry) {
		r.prefix = prefix
	}
}

// WithAdjustAmount sets the lightness delta for derived variants.
func WithAdjustAmount(amount float64) Option {
	return func(r *Registry) {
		r.amount = amount
	}
}

// New creates a Registry and publishes the default theme to the sink.
func New(opts ...Option) *Registry {
	r := &Registry{
		logger:       hclog.NewNullLogger(),
		prefix:       DefaultPrefix,
		amount:       colour.DefaultAdjustAmount,
		defaultTheme: Default(),
	}
	for _, opt := range opts {
		opt(r)
	}

	current := r.defaultTheme.Clone()
	r.current = &current
	r.publish()

	return r
}

// Register adds a theme. It returns false, changing nothing, if a theme with
// the same name is already registered. When autoSetCurrent is true and this
// is the first registered theme, it becomes current.
func (r *Registry) Register(t Theme, autoSetCurrent bool) bool {
	if r.Has(t.Name) {
		r.logger.Debug("theme already registered", "theme", t.Name)
		return false
	}

	registered := t.Clone()
	r.themes = append(r.themes, &registered)
	r.logger.Debug("registered theme", "theme", t.Name, "count", len(r.themes))

	if len(r.themes) == 1 && autoSetCurrent {
		r.setCurrent(&registered)
	}
	return true
}

// Change makes the named theme current. It returns false if no such theme is registered.
func (r *Registry) Change(name string) bool {
	t := r.find(name)
	if t == nil {
		r.logger.Warn("cannot change to unregistered theme", "theme", name)
		return false
	}

	r.setCurrent(t)
	return true
}

// Update merges patch into the named theme and makes it current.
// It returns false if no such theme is registered.
func (r *Registry) Update(name string, patch map[Role]string) bool {
	t := r.find(name)
	if t == nil {
		r.logger.Warn("cannot update unregistered theme", "theme", name)
		return false
	}

	t.Merge(patch)
	r.logger.Debug("updated theme", "theme", name, "roles", len(patch))

	r.setCurrent(t)
	return true
}

// Current returns a copy of the current theme.
func (r *Registry) Current() Theme {
	return r.current.Clone()
}

// Themes returns copies of every registered theme in registration order.
func (r *Registry) Themes() []Theme {
	themes := make([]Theme, len(r.themes))
	for i, t := range r.themes {
		themes[i] = t.Clone()
	}
	return themes
}

// Get returns a copy of the named theme.
func (r *Registry) Get(name string) (Theme, bool) {
	t := r.find(name)
	if t == nil {
		return Theme{}, false
	}
	return t.Clone(), true
}

// Has reports whether a theme with the given name is registered.
func (r *Registry) Has(name string) bool {
	return r.find(name) != nil
}

// OnChange subscribes fn to current-theme changes. fn receives a copy of the
// new current theme.
func (r *Registry) OnChange(fn func(Theme)) (unsubscribe func()) {
	if r.closed {
		return func() {}
	}
	return r.onChange.Subscribe(fn)
}

// Republish writes the current theme to the sink again without notifying listeners.
func (r *Registry) Republish() int {
	return r.publish()
}

// Variables returns the current theme's published variables.
func (r *Registry) Variables() []Variable {
	return Variables(*r.current, r.prefix, r.amount)
}

// Lighten lightens hex by the registry's adjust amount.
func (r *Registry) Lighten(hex string) string {
	return colour.Lighten(hex, r.amount)
}

// Darken darkens hex by the registry's adjust amount.
func (r *Registry) Darken(hex string) string {
	return colour.Darken(hex, r.amount)
}

// Close drops every listener. Later changes still update state but are
// neither published nor announced.
func (r *Registry) Close() {
	r.onChange.Clear()
	r.closed = true
}

func (r *Registry) setCurrent(t *Theme) {
	r.current = t
	if r.closed {
		return
	}

	r.publish()
	r.logger.Info("theme changed", "theme", t.Name)
	r.onChange.Trigger(t.Clone())
}

func (r *Registry) publish() int {
	n := Publish(r.sink, *r.current, r.prefix, r.amount)
	if n > 0 {
		r.logger.Trace("published theme", "theme", r.current.Name, "variables", n)
	}
	return n
}

func (r *Registry) find(name string) *Theme {
	for _, t := range r.themes {
		if t.Name == name {
			return t
		}
	}
	return nil
}
