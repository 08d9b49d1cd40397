package theme

import (
	"slices"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/shade/internal/colour"
)

// Sink receives the key/value pairs a theme publishes.
type Sink interface {
	Set(key, value string)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(key, value string)

// Set calls f(key, value).
func (f SinkFunc) Set(key, value string) {
	f(key, value)
}

// Variable is a single published key/value pair.
type Variable struct {
	Name  string
	Value string
}

// Variable name suffixes for derived colours.
const (
	suffixDarkened  = "-darkened"
	suffixLightened = "-lightened"
)

// VariableName returns the CSS custom property name for a role.
func VariableName(prefix string, role Role) string {
	if prefix == "" {
		return "--theme-" + string(role)
	}
	return "--" + prefix + "-theme-" + string(role)
}

// Variables returns the theme's colours and their darkened/lightened variants
// in role order. Roles without a colour are skipped.
func Variables(t Theme, prefix string, amount float64) []Variable {
	vars := make([]Variable, 0, len(t.Colours)*3)
	for _, role := range allRoles {
		c := t.Colours[role]
		if c == "" {
			continue
		}

		name := VariableName(prefix, role)
		vars = append(vars,
			Variable{Name: name, Value: c},
			Variable{Name: name + suffixDarkened, Value: colour.Darken(c, amount)},
			Variable{Name: name + suffixLightened, Value: colour.Lighten(c, amount)},
		)
	}
	return vars
}

// Publish writes the theme's variables to sink. A nil sink is a no-op.
func Publish(sink Sink, t Theme, prefix string, amount float64) int {
	if sink == nil {
		return 0
	}

	vars := Variables(t, prefix, amount)
	for _, v := range vars {
		sink.Set(v.Name, v.Value)
	}
	return len(vars)
}

// MapSink stores published values in memory, preserving first-set order.
type MapSink struct {
	values map[string]string
	order  []string
}

// NewMapSink creates an empty MapSink.
func NewMapSink() *MapSink {
	return &MapSink{values: make(map[string]string)}
}

// Set stores value under key.
func (s *MapSink) Set(key, value string) {
	if _, ok := s.values[key]; !ok {
		s.order = append(s.order, key)
	}
	s.values[key] = value
}

// Get returns the value stored under key.
func (s *MapSink) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Len returns the number of distinct keys.
func (s *MapSink) Len() int {
	return len(s.values)
}

// Keys returns every key, sorted.
func (s *MapSink) Keys() []string {
	keys := slices.Clone(s.order)
	slices.Sort(keys)
	return keys
}

// Variables returns every stored pair in first-set order.
func (s *MapSink) Variables() []Variable {
	vars := make([]Variable, len(s.order))
	for i, k := range s.order {
		vars[i] = Variable{Name: k, Value: s.values[k]}
	}
	return vars
}

// LogSink writes each published pair to a logger at debug level.
type LogSink struct {
	Logger hclog.Logger
}

// Set logs the pair.
func (s LogSink) Set(key, value string) {
	if s.Logger == nil {
		return
	}
	s.Logger.Debug("set style variable", "key", key, "value", value)
}

// MultiSink fans every pair out to each non-nil sink in order.
type MultiSink []Sink

// Set forwards the pair to every sink.
func (m MultiSink) Set(key, value string) {
	for _, s := range m {
		if s != nil {
			s.Set(key, value)
		}
	}
}
