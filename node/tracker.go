package node

import "reflect"

// Tracker remembers the types whose derivation is in progress, so a type that
// reaches itself through its own fields is noticed instead of recursed into forever.
type Tracker struct {
	active map[reflect.Type]struct{}
	done   map[reflect.Type]struct{}
}

// Enter marks t as in progress. It returns false when t is already in progress,
// i.e. the type is cyclic.
func (d *Tracker) Enter(t reflect.Type) bool {
	if d.active == nil {
		d.active = make(map[reflect.Type]struct{})
	}

	if _, exists := d.active[t]; exists {
		return false
	}

	d.active[t] = struct{}{}

	return true
}

// Leave marks t as finished.
func (d *Tracker) Leave(t reflect.Type) {
	if d.done == nil {
		d.done = make(map[reflect.Type]struct{})
	}

	delete(d.active, t)
	d.done[t] = struct{}{}
}

// Seen reports whether t has been fully derived at least once.
func (d *Tracker) Seen(t reflect.Type) bool {
	_, ok := d.done[t]
	return ok
}
