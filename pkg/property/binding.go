package property

import "github.com/enhancedfx/efx/pkg/observe"

// boundSource records the source a property is bound to along with the
// listener handle needed to detach.
type boundSource[T any] struct {
	src      ValueSource[T]
	listener observe.InvalidationListener
}

// Bind makes the property track src: it immediately takes src's value and
// follows every subsequent change. While bound, Set and Update panic with
// ErrBound. Binding again replaces the previous binding.
func (p *Property[T]) Bind(src ValueSource[T]) *Property[T] {
	if src == nil {
		panic(ErrNilSource)
	}
	p.Unbind()

	l := observe.OnInvalidated(func(observe.Observable) {
		p.set(src.Get())
	})
	src.AddInvalidationListener(l)
	p.binding = &boundSource[T]{src: src, listener: l}
	p.set(src.Get())
	return p
}

// Unbind detaches the property from its binding source, leaving it at the
// last bound value. No-op when not bound.
func (p *Property[T]) Unbind() *Property[T] {
	if p.binding != nil {
		p.binding.src.RemoveInvalidationListener(p.binding.listener)
		p.binding = nil
	}
	return p
}

// IsBound reports whether the property currently follows a source.
func (p *Property[T]) IsBound() bool {
	return p.binding != nil
}

// BidirectionalBinding keeps two properties equal in both directions
// until Unbind is called.
type BidirectionalBinding[T any] struct {
	a, b *Property[T]
	la   observe.ChangeListener[T]
	lb   observe.ChangeListener[T]

	// updating breaks the ping-pong between the two change listeners.
	updating bool
}

// BindBidirectional links a and b: a first takes b's value, then every
// change on either side is mirrored to the other. Neither property counts
// as bound for Set purposes; both stay writable.
func BindBidirectional[T any](a, b *Property[T]) *BidirectionalBinding[T] {
	if a == nil || b == nil {
		panic(ErrNilSource)
	}

	bb := &BidirectionalBinding[T]{a: a, b: b}
	bb.la = observe.OnChanged(func(_ observe.ObservableValue[T], _, newValue T) {
		bb.mirror(b, newValue)
	})
	bb.lb = observe.OnChanged(func(_ observe.ObservableValue[T], _, newValue T) {
		bb.mirror(a, newValue)
	})

	a.set(b.Get())
	a.AddChangeListener(bb.la)
	b.AddChangeListener(bb.lb)
	return bb
}

func (bb *BidirectionalBinding[T]) mirror(target *Property[T], value T) {
	if bb.updating {
		return
	}
	bb.updating = true
	defer func() { bb.updating = false }()
	target.set(value)
}

// Unbind detaches both listeners. The properties keep their current
// values and stop mirroring each other.
func (bb *BidirectionalBinding[T]) Unbind() {
	bb.a.RemoveChangeListener(bb.la)
	bb.b.RemoveChangeListener(bb.lb)
}
