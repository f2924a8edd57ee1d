package stairs

import (
	"sort"
	"strconv"
)

// Names of the strategies in DefaultRegistry.
const (
	StrategyNaive = "naive"
	StrategyTable = "table"
	StrategyBig   = "big"
)

// Counter computes the step count for n and renders it in decimal.
//
// It is the common shape every strategy is stored under, so int64 and
// big.Int results can be printed the same way.
type Counter func(n int) (string, error)

// Registry maps strategy names to counters.
//
// It is meant to be filled once at startup and read afterwards; Provide is
// not safe to call concurrently with anything else.
//
// Expected usage:
//
//	count, err := stairs.DefaultRegistry().Resolve("table")
type Registry struct {
	items map[string]Counter
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{items: map[string]Counter{}}
}

// DefaultRegistry returns a registry holding Count, Table and Big under
// their strategy names.
func DefaultRegistry() *Registry {
	return NewRegistry().
		Provide(StrategyNaive, func(n int) (string, error) {
			return strconv.FormatInt(Count(n), 10), nil
		}).
		Provide(StrategyTable, func(n int) (string, error) {
			v, err := Table(n)
			if err != nil {
				return "", err
			}
			return strconv.FormatInt(v, 10), nil
		}).
		Provide(StrategyBig, func(n int) (string, error) {
			v, err := Big(n)
			if err != nil {
				return "", err
			}
			return v.String(), nil
		})
}

// Provide stores c under name and returns the registry for chaining.
//
// An empty name or a nil counter is a wiring mistake and panics.
func (r *Registry) Provide(name string, c Counter) *Registry {
	if name == "" {
		panic("stairs: empty strategy name")
	}
	if c == nil {
		panic("stairs: nil counter for strategy " + strconv.Quote(name))
	}
	r.items[name] = c
	return r
}

// Get returns the counter if present (no panic).
func (r *Registry) Get(name string) (Counter, bool) {
	c, ok := r.items[name]
	return c, ok
}

// Resolve returns the counter for name or UnknownStrategyError.
func (r *Registry) Resolve(name string) (Counter, error) {
	c, ok := r.items[name]
	if !ok {
		return nil, UnknownStrategyError{Name: name}
	}
	return c, nil
}

// MustGet returns the counter or panics with UnknownStrategyError.
func (r *Registry) MustGet(name string) Counter {
	c, err := r.Resolve(name)
	if err != nil {
		panic(err)
	}
	return c
}

// Names returns the provided strategy names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
