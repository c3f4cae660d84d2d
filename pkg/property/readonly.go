package property

import "github.com/enhancedfx/efx/pkg/observe"

// ReadOnly is a read-and-listen view over a property. Handing out a
// ReadOnly keeps the mutation surface private to the owner.
type ReadOnly[T any] struct {
	p *Property[T]
}

// ReadOnly returns a read-only view of the property.
func (p *Property[T]) ReadOnly() *ReadOnly[T] {
	return &ReadOnly[T]{p: p}
}

// Get returns the current value.
func (r *ReadOnly[T]) Get() T {
	return r.p.Get()
}

// Value returns the current value untyped.
func (r *ReadOnly[T]) Value() any {
	return r.p.Value()
}

// Name returns the underlying property's diagnostic name.
func (r *ReadOnly[T]) Name() string {
	return r.p.Name()
}

// AddInvalidationListener registers l on the underlying property.
func (r *ReadOnly[T]) AddInvalidationListener(l observe.InvalidationListener) {
	r.p.AddInvalidationListener(l)
}

// RemoveInvalidationListener removes l from the underlying property.
func (r *ReadOnly[T]) RemoveInvalidationListener(l observe.InvalidationListener) {
	r.p.RemoveInvalidationListener(l)
}

// AddChangeListener registers l on the underlying property.
func (r *ReadOnly[T]) AddChangeListener(l observe.ChangeListener[T]) {
	r.p.AddChangeListener(l)
}

// RemoveChangeListener removes l from the underlying property.
func (r *ReadOnly[T]) RemoveChangeListener(l observe.ChangeListener[T]) {
	r.p.RemoveChangeListener(l)
}

// Subscribe registers a change callback and returns its remover.
func (r *ReadOnly[T]) Subscribe(fn func(oldValue, newValue T)) (unsubscribe func()) {
	return r.p.Subscribe(fn)
}
