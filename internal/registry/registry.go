package registry

// Registry is an ordered, read-only collection of plugin entries.
type Registry struct {
	entries []Entry
}

// New returns a registry over a copy of entries, preserving their order.
func New(entries []Entry) *Registry {
	cp := make([]Entry, len(entries))
	copy(cp, entries)
	return &Registry{entries: cp}
}

// Entries returns a copy of all entries in registry order.
func (r *Registry) Entries() []Entry {
	cp := make([]Entry, len(r.entries))
	copy(cp, r.entries)
	return cp
}

// Len returns the number of entries.
func (r *Registry) Len() int { return len(r.entries) }

// Lookup returns the first entry whose name equals name exactly.
func (r *Registry) Lookup(name string) (Entry, error) {
	for _, e := range r.entries {
		if e.Name != name {
			continue
		}
		return e, nil
	}
	return Entry{}, &NotFoundError{Name: name}
}

// Root resolves a plugin name to its root directory.
func (r *Registry) Root(name string) (string, error) {
	e, err := r.Lookup(name)
	if err != nil {
		return "", err
	}
	return e.Root(), nil
}
