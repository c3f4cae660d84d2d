package property

import (
	"errors"

	"github.com/enhancedfx/efx/pkg/observe"
)

// ErrBound is the panic value when Set is called on a unidirectionally
// bound property. Bound properties only follow their source.
var ErrBound = errors.New("efx: property is bound and cannot be set")

// ErrNilSource is the panic value when binding to a nil source.
var ErrNilSource = errors.New("efx: nil binding source")

// Source is anything that exposes a current value and manages
// invalidation listeners. Properties, read-only views, and computed
// values all satisfy it.
type Source interface {
	observe.Observable
	AddInvalidationListener(l observe.InvalidationListener)
	RemoveInvalidationListener(l observe.InvalidationListener)
}

// ValueSource is a Source with a typed accessor, usable as a binding
// source for a Property of the same type.
type ValueSource[T any] interface {
	Source
	Get() T
}

// Property is a reactive value container.
type Property[T any] struct {
	name  string
	value T

	// equal decides whether a Set actually changed the value.
	// Nil means the package default.
	equal func(T, T) bool

	// helper is the dispatch state; nil while no listeners are
	// registered.
	helper observe.Helper[T]

	// binding is non-nil while unidirectionally bound.
	binding *boundSource[T]
}

// New creates a property holding the given initial value.
func New[T any](initial T) *Property[T] {
	return &Property[T]{value: initial}
}

// Named sets a diagnostic name used in logs and preview patches.
// Returns the property for chaining.
func (p *Property[T]) Named(name string) *Property[T] {
	p.name = name
	return p
}

// Name returns the diagnostic name, or the empty string.
func (p *Property[T]) Name() string {
	return p.name
}

// WithEquals configures a custom equality function for change detection.
// Returns the property for chaining.
func (p *Property[T]) WithEquals(fn func(a, b T) bool) *Property[T] {
	p.equal = fn
	return p
}

// Get returns the current value.
func (p *Property[T]) Get() T {
	return p.value
}

// Value returns the current value untyped, satisfying observe.Observable.
func (p *Property[T]) Value() any {
	return p.value
}

// Set updates the value and notifies listeners if it changed.
// Panics with ErrBound while the property is bound.
func (p *Property[T]) Set(value T) {
	if p.binding != nil {
		panic(ErrBound)
	}
	p.set(value)
}

// Update applies fn to the current value and stores the result.
func (p *Property[T]) Update(fn func(T) T) {
	if p.binding != nil {
		panic(ErrBound)
	}
	p.set(fn(p.value))
}

// set stores the value and fires, bypassing the bound check. The value is
// written before firing so Get observes the new value mid-fire.
func (p *Property[T]) set(value T) {
	if p.equals(p.value, value) {
		return
	}
	p.value = value
	observe.FireValueChanged(p.helper)
}

func (p *Property[T]) equals(a, b T) bool {
	if p.equal != nil {
		return p.equal(a, b)
	}
	return observe.Equal(a, b)
}

// AddInvalidationListener registers l.
func (p *Property[T]) AddInvalidationListener(l observe.InvalidationListener) {
	p.helper = observe.AddInvalidationListener(p.helper, p, l)
}

// RemoveInvalidationListener removes l; unknown listeners are ignored.
func (p *Property[T]) RemoveInvalidationListener(l observe.InvalidationListener) {
	p.helper = observe.RemoveInvalidationListener(p.helper, l)
}

// AddChangeListener registers l.
func (p *Property[T]) AddChangeListener(l observe.ChangeListener[T]) {
	p.helper = observe.AddChangeListener(p.helper, p, l)
}

// RemoveChangeListener removes l; unknown listeners are ignored.
func (p *Property[T]) RemoveChangeListener(l observe.ChangeListener[T]) {
	p.helper = observe.RemoveChangeListener(p.helper, l)
}

// OnChange registers a change callback and returns the property for
// chaining. Use Subscribe when the callback must be removable.
func (p *Property[T]) OnChange(fn func(oldValue, newValue T)) *Property[T] {
	p.AddChangeListener(observe.OnChanged(func(_ observe.ObservableValue[T], oldValue, newValue T) {
		fn(oldValue, newValue)
	}))
	return p
}

// OnInvalidate registers an invalidation callback and returns the
// property for chaining.
func (p *Property[T]) OnInvalidate(fn func()) *Property[T] {
	p.AddInvalidationListener(observe.OnInvalidated(func(observe.Observable) {
		fn()
	}))
	return p
}

// Subscribe registers a change callback and returns a function that
// removes it.
func (p *Property[T]) Subscribe(fn func(oldValue, newValue T)) (unsubscribe func()) {
	l := observe.OnChanged(func(_ observe.ObservableValue[T], oldValue, newValue T) {
		fn(oldValue, newValue)
	})
	p.AddChangeListener(l)
	return func() { p.RemoveChangeListener(l) }
}

// HasListeners reports whether any listener is currently registered.
func (p *Property[T]) HasListeners() bool {
	return p.helper != nil
}
