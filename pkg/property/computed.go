package property

import "github.com/enhancedfx/efx/pkg/observe"

// Computed is a cached derivation over explicit dependencies. It is lazy:
// the compute function runs on the first Get and again after any
// dependency invalidates the cache. Computed values are themselves
// observable and can feed bindings or further computations.
type Computed[T any] struct {
	compute func() T
	value   T
	valid   bool

	deps     []Source
	listener observe.InvalidationListener

	helper observe.Helper[T]
}

// NewComputed creates a computed value over the given dependencies.
// Nothing is computed until the first read.
func NewComputed[T any](compute func() T, deps ...Source) *Computed[T] {
	c := &Computed[T]{compute: compute, deps: deps}
	c.listener = observe.OnInvalidated(func(observe.Observable) {
		c.invalidate()
	})
	for _, d := range deps {
		if d == nil {
			panic(ErrNilSource)
		}
		d.AddInvalidationListener(c.listener)
	}
	return c
}

// Get returns the computed value, recomputing if the cache is stale.
func (c *Computed[T]) Get() T {
	if !c.valid {
		c.value = c.compute()
		c.valid = true
	}
	return c.value
}

// Value returns the computed value untyped.
func (c *Computed[T]) Value() any {
	return c.Get()
}

func (c *Computed[T]) invalidate() {
	if !c.valid {
		return
	}
	c.valid = false
	// Listeners fire now; change listeners pull Get, which recomputes.
	observe.FireValueChanged(c.helper)
}

// AddInvalidationListener registers l.
func (c *Computed[T]) AddInvalidationListener(l observe.InvalidationListener) {
	c.helper = observe.AddInvalidationListener(c.helper, c, l)
}

// RemoveInvalidationListener removes l.
func (c *Computed[T]) RemoveInvalidationListener(l observe.InvalidationListener) {
	c.helper = observe.RemoveInvalidationListener(c.helper, l)
}

// AddChangeListener registers l. The helper seeds its cache from Get, so
// the first computation may run here.
func (c *Computed[T]) AddChangeListener(l observe.ChangeListener[T]) {
	c.helper = observe.AddChangeListener(c.helper, c, l)
}

// RemoveChangeListener removes l.
func (c *Computed[T]) RemoveChangeListener(l observe.ChangeListener[T]) {
	c.helper = observe.RemoveChangeListener(c.helper, l)
}

// OnInvalidate registers an invalidation callback and returns the
// computed value for chaining.
func (c *Computed[T]) OnInvalidate(fn func()) *Computed[T] {
	c.AddInvalidationListener(observe.OnInvalidated(func(observe.Observable) {
		fn()
	}))
	return c
}

// Dispose detaches the computed value from its dependencies. Reads keep
// returning the last cached value but no longer refresh.
func (c *Computed[T]) Dispose() {
	for _, d := range c.deps {
		d.RemoveInvalidationListener(c.listener)
	}
	c.deps = nil
}
