package observe

// Observable is an entity whose current value can be read on demand and
// whose changes are fanned out to listeners. The helper only ever holds a
// non-owning reference to it for value retrieval; notification is driven
// by the owner calling FireValueChanged.
type Observable interface {
	// Value returns the current value untyped.
	Value() any
}

// ObservableValue is an Observable with a typed accessor. It must return
// the value as of the moment it is called; owners update their internal
// state before firing so listeners observe the new value mid-fire.
type ObservableValue[T any] interface {
	Observable

	// Get returns the current value.
	Get() T
}

// InvalidationListener is notified that an observable's value may have
// changed, without being given the old or new value.
type InvalidationListener interface {
	Invalidated(o Observable)
}

// ChangeListener is notified with explicit old and new values, and only
// when they actually differ.
type ChangeListener[T any] interface {
	Changed(o ObservableValue[T], oldValue, newValue T)
}

// invalidationFunc adapts a plain function to InvalidationListener.
// It is allocated per call so each handle has its own identity and can be
// removed independently.
type invalidationFunc struct {
	fn func(Observable)
}

func (l *invalidationFunc) Invalidated(o Observable) {
	l.fn(o)
}

// OnInvalidated wraps fn as an InvalidationListener. Keep the returned
// handle if the listener needs to be removed later; wrapping the same
// function twice yields two distinct listeners.
func OnInvalidated(fn func(o Observable)) InvalidationListener {
	if fn == nil {
		panic(ErrNilListener)
	}
	return &invalidationFunc{fn: fn}
}

// changeFunc adapts a plain function to ChangeListener.
type changeFunc[T any] struct {
	fn func(o ObservableValue[T], oldValue, newValue T)
}

func (l *changeFunc[T]) Changed(o ObservableValue[T], oldValue, newValue T) {
	l.fn(o, oldValue, newValue)
}

// OnChanged wraps fn as a ChangeListener. Keep the returned handle if the
// listener needs to be removed later.
func OnChanged[T any](fn func(o ObservableValue[T], oldValue, newValue T)) ChangeListener[T] {
	if fn == nil {
		panic(ErrNilListener)
	}
	return &changeFunc[T]{fn: fn}
}
