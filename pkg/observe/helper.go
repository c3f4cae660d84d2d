package observe

import (
	"errors"
	"reflect"
)

// ErrNilObservable is the panic value when a helper is created for a nil
// observable.
var ErrNilObservable = errors.New("efx: nil observable")

// ErrNilListener is the panic value when a nil listener is added to or
// removed from a helper.
var ErrNilListener = errors.New("efx: nil listener")

// Helper is the dispatch contract. A nil Helper is the valid empty state;
// owners hold a single nullable Helper field and reassign it to the value
// returned by the Add*/Remove* entry points, which may be a helper of a
// different concrete representation.
type Helper[T any] interface {
	addInvalidation(l InvalidationListener) Helper[T]
	removeInvalidation(l InvalidationListener) Helper[T]
	addChange(l ChangeListener[T]) Helper[T]
	removeChange(l ChangeListener[T]) Helper[T]
	fire()
}

// AddInvalidationListener registers l and returns the helper that now
// holds it. Panics with ErrNilObservable or ErrNilListener on nil
// arguments.
func AddInvalidationListener[T any](h Helper[T], o ObservableValue[T], l InvalidationListener) Helper[T] {
	if o == nil {
		panic(ErrNilObservable)
	}
	if l == nil {
		panic(ErrNilListener)
	}
	if h == nil {
		// Read once so an unusable observable fails at registration
		// rather than at the first fire.
		_ = o.Get()
		return &singleInvalidation[T]{obs: o, listener: l}
	}
	return h.addInvalidation(l)
}

// RemoveInvalidationListener removes the first listener equal to l and
// returns the resulting helper, which is nil when the last listener is
// gone. Removing from a nil helper is a no-op; a listener that was never
// added leaves the helper unchanged.
//
// Removal matches comparable listener values with == and bare funcs by
// code pointer. A listener value that is neither — say a struct with a
// slice field passed by value — can never be matched; implement such
// listeners on a pointer receiver (the func adapters already do) so
// identity is the pointer.
func RemoveInvalidationListener[T any](h Helper[T], l InvalidationListener) Helper[T] {
	if l == nil {
		panic(ErrNilListener)
	}
	if h == nil {
		return nil
	}
	return h.removeInvalidation(l)
}

// AddChangeListener registers l and returns the helper that now holds it.
// Creating the first change listener seeds the helper's cached value from
// the observable so the first fire has an old value to compare against.
func AddChangeListener[T any](h Helper[T], o ObservableValue[T], l ChangeListener[T]) Helper[T] {
	if o == nil {
		panic(ErrNilObservable)
	}
	if l == nil {
		panic(ErrNilListener)
	}
	if h == nil {
		return &singleChange[T]{obs: o, listener: l, value: o.Get()}
	}
	return h.addChange(l)
}

// RemoveChangeListener is the change-listener counterpart of
// RemoveInvalidationListener.
func RemoveChangeListener[T any](h Helper[T], l ChangeListener[T]) Helper[T] {
	if l == nil {
		panic(ErrNilListener)
	}
	if h == nil {
		return nil
	}
	return h.removeChange(l)
}

// FireValueChanged notifies every registered listener. The owner must
// already hold its new value so Get observes it during the fire. Calling
// with a nil helper is a no-op.
func FireValueChanged[T any](h Helper[T]) {
	if h != nil {
		h.fire()
	}
}

// sameListener reports whether two listener values are equal for removal
// purposes. Comparable values use ==; function-backed values that Go
// cannot compare fall back to code-pointer identity. Anything else has no
// usable identity and never matches (see RemoveInvalidationListener).
func sameListener(a, b any) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta.Comparable() {
		return a == b
	}
	if ta.Kind() == reflect.Func {
		return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
	}
	return false
}
