// File: patchopt/registry.go
package patchopt

// Registry is an insertion-ordered, key-unique collection of options owned
// by a single patch. Enumeration order is deterministic: the order in which
// options were registered. A Registry is not safe for concurrent use; the
// host synchronizes externally if it shares one across threads.
type Registry struct {
	opts  map[string]Opt
	order []string
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		opts: make(map[string]Opt),
	}
}

// Register adds an option under its key. It returns a DuplicateKeyError if
// the key is already present, leaving the registry unchanged with the first
// option retained.
func (r *Registry) Register(o Opt) error {
	key := o.Key()
	if existing, ok := r.opts[key]; ok {
		return &DuplicateKeyError{Key: key, Existing: existing}
	}
	r.opts[key] = o
	r.order = append(r.order, key)
	return nil
}

// Lookup returns the option registered under key, or a NotFoundError.
func (r *Registry) Lookup(key string) (Opt, error) {
	o, ok := r.opts[key]
	if !ok {
		return nil, &NotFoundError{Key: key}
	}
	return o, nil
}

// All returns the registered options in insertion order. The returned slice
// is fresh; mutating it does not affect the registry.
func (r *Registry) All() []Opt {
	out := make([]Opt, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.opts[key])
	}
	return out
}

// ResetAll restores every option to its declared default, in insertion
// order.
func (r *Registry) ResetAll() {
	for _, key := range r.order {
		r.opts[key].Reset()
	}
}

// Len returns the number of registered options.
func (r *Registry) Len() int { return len(r.order) }

// Set coerces and applies a value to the option registered under key. It is
// the convenience entry point for consumers that hold a key instead of a
// typed option reference.
func (r *Registry) Set(key string, v any) error {
	o, err := r.Lookup(key)
	if err != nil {
		return err
	}
	return o.SetAny(v)
}

// Value returns the validated current value of the option under key as an
// untyped any, nil when absent.
func (r *Registry) Value(key string) (any, error) {
	o, err := r.Lookup(key)
	if err != nil {
		return nil, err
	}
	return o.ValueAny()
}
