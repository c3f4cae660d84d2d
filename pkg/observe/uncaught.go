package observe

import "log/slog"

// UncaughtHandler receives panic values recovered from listener bodies.
// A failing listener must not abort the fire that is notifying it, nor
// prevent sibling listeners from running, so the panic is routed here
// instead of propagating.
type UncaughtHandler func(recovered any)

// uncaught is the ambient handler. Replaceable for tests and embedders;
// protected only by the package's single-goroutine discipline.
var uncaught UncaughtHandler = func(recovered any) {
	slog.Error("efx: listener panic", "panic", recovered)
}

// SetUncaughtHandler installs the handler that receives listener panics
// and returns the previous one. Passing nil restores the default, which
// logs through slog.
func SetUncaughtHandler(h UncaughtHandler) UncaughtHandler {
	prev := uncaught
	if h == nil {
		h = func(recovered any) {
			slog.Error("efx: listener panic", "panic", recovered)
		}
	}
	uncaught = h
	return prev
}

// safeInvalidated invokes one invalidation listener, isolating any panic.
func safeInvalidated[T any](o ObservableValue[T], l InvalidationListener) {
	defer func() {
		if r := recover(); r != nil {
			uncaught(r)
		}
	}()
	l.Invalidated(o)
}

// safeChanged invokes one change listener, isolating any panic.
func safeChanged[T any](o ObservableValue[T], oldValue, newValue T, l ChangeListener[T]) {
	defer func() {
		if r := recover(); r != nil {
			uncaught(r)
		}
	}()
	l.Changed(o, oldValue, newValue)
}
