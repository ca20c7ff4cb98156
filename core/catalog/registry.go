package catalog

import (
	"errors"
	"fmt"
)

// ErrUnknownCatalog is returned for names not in the registry.
var ErrUnknownCatalog = errors.New("unknown catalog")

// Registry holds the catalogs served by the engine, in registration order.
type Registry struct {
	byName map[string]*Descriptor
	order  []*Descriptor
}

// NewRegistry validates and registers the given descriptors.
func NewRegistry(descs ...*Descriptor) (*Registry, error) {
	r := &Registry{byName: make(map[string]*Descriptor, len(descs))}
	for _, d := range descs {
		if err := d.Validate(); err != nil {
			return nil, err
		}
		if _, dup := r.byName[d.Name]; dup {
			return nil, fmt.Errorf("catalog %s registered twice", d.Name)
		}
		r.byName[d.Name] = d
		r.order = append(r.order, d)
	}
	return r, nil
}

// Get returns the named catalog.
func (r *Registry) Get(name string) (*Descriptor, bool) {
	d, ok := r.byName[name]
	return d, ok
}

// All returns every catalog in registration order.
func (r *Registry) All() []*Descriptor {
	return r.order
}

// Select resolves names to descriptors. An empty list selects every catalog.
func (r *Registry) Select(names []string) ([]*Descriptor, error) {
	if len(names) == 0 {
		return r.order, nil
	}
	out := make([]*Descriptor, 0, len(names))
	for _, name := range names {
		d, ok := r.byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownCatalog, name)
		}
		out = append(out, d)
	}
	return out, nil
}
