package metrics

import (
	"fmt"
	"sort"
)

// Registry is a read-only set of metric definitions. It is built once at
// startup and has no mutators, so it is safe for concurrent use.
type Registry struct {
	defs  map[string]Definition
	names []string
}

// NewRegistry validates the definitions and builds a registry.
// Names must be unique.
func NewRegistry(defs ...Definition) (*Registry, error) {
	r := &Registry{
		defs:  make(map[string]Definition, len(defs)),
		names: make([]string, 0, len(defs)),
	}

	for _, d := range defs {
		if err := d.Validate(); err != nil {
			return nil, err
		}
		if _, exists := r.defs[d.Name]; exists {
			return nil, fmt.Errorf("metric %q is already registered", d.Name)
		}
		r.defs[d.Name] = d.clone()
		r.names = append(r.names, d.Name)
	}

	sort.Strings(r.names)
	return r, nil
}

// Lookup returns the definition registered under name.
func (r *Registry) Lookup(name string) (Definition, bool) {
	d, ok := r.defs[name]
	if !ok {
		return Definition{}, false
	}
	return d.clone(), true
}

// Names returns the registered metric names in ascending order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// Definitions returns a copy of all definitions ordered by name.
func (r *Registry) Definitions() []Definition {
	out := make([]Definition, 0, len(r.names))
	for _, name := range r.names {
		out = append(out, r.defs[name].clone())
	}
	return out
}

// clone copies the pointer fields so callers cannot reach registry state.
func (d Definition) clone() Definition {
	d.Source = d.Source.clone()
	if d.Denominator != nil {
		den := d.Denominator.clone()
		d.Denominator = &den
	}
	return d
}

func (s Source) clone() Source {
	if s.Filter.From != nil {
		from := *s.Filter.From
		s.Filter.From = &from
	}
	if s.Filter.To != nil {
		to := *s.Filter.To
		s.Filter.To = &to
	}
	return s
}
