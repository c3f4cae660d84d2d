package observe

// generic holds ordered lists of both listener kinds. Duplicates are
// permitted and insertion order is preserved.
//
// Reentrancy policy: fire captures the listener slices before iterating
// and sets locked; structural changes made by a listener during the fire
// copy-on-write so the captured slices stay intact. A listener removed
// mid-fire therefore still receives the in-progress notification if it
// appears later in iteration order; the removal takes effect from the
// next fire.
type generic[T any] struct {
	obs          ObservableValue[T]
	invalidation []InvalidationListener
	changes      []ChangeListener[T]

	// value is the cache for old/new change pairs. It stays unseeded
	// until the first change listener arrives.
	value  T
	seeded bool

	// locked is set while a fire is iterating the lists.
	locked bool
}

func (h *generic[T]) addInvalidation(l InvalidationListener) Helper[T] {
	if h.locked {
		h.invalidation = append(cloneSlice(h.invalidation), l)
	} else {
		h.invalidation = append(h.invalidation, l)
	}
	return h
}

func (h *generic[T]) addChange(l ChangeListener[T]) Helper[T] {
	if !h.seeded {
		h.value = h.obs.Get()
		h.seeded = true
	}
	if h.locked {
		h.changes = append(cloneSlice(h.changes), l)
	} else {
		h.changes = append(h.changes, l)
	}
	return h
}

func (h *generic[T]) removeInvalidation(l InvalidationListener) Helper[T] {
	for i := range h.invalidation {
		if !sameListener(h.invalidation[i], l) {
			continue
		}
		switch {
		case len(h.invalidation) == 1 && len(h.changes) == 1:
			return &singleChange[T]{obs: h.obs, listener: h.changes[0], value: h.demoteValue()}
		case len(h.invalidation) == 2 && len(h.changes) == 0:
			return &singleInvalidation[T]{obs: h.obs, listener: h.invalidation[1-i]}
		case len(h.invalidation) == 1 && len(h.changes) == 0:
			// Not reachable through the entry points, which demote
			// before a generic helper can shrink this far.
			return nil
		}
		h.invalidation = removeAt(h.invalidation, i, h.locked)
		return h
	}
	return h
}

func (h *generic[T]) removeChange(l ChangeListener[T]) Helper[T] {
	for i := range h.changes {
		if !sameListener(h.changes[i], l) {
			continue
		}
		switch {
		case len(h.changes) == 1 && len(h.invalidation) == 1:
			return &singleInvalidation[T]{obs: h.obs, listener: h.invalidation[0]}
		case len(h.changes) == 2 && len(h.invalidation) == 0:
			return &singleChange[T]{obs: h.obs, listener: h.changes[1-i], value: h.demoteValue()}
		case len(h.changes) == 1 && len(h.invalidation) == 0:
			return nil
		}
		h.changes = removeAt(h.changes, i, h.locked)
		return h
	}
	return h
}

// demoteValue is the cache carried into a demoted singleChange. Mid-fire
// the stored cache still holds the pre-fire value; the demoted helper
// must start from the current value or a later change back to the old
// one would be suppressed.
func (h *generic[T]) demoteValue() T {
	if h.locked {
		return h.obs.Get()
	}
	return h.value
}

func (h *generic[T]) fire() {
	invalidation := h.invalidation
	changes := h.changes

	// A nested fire must not release the outer fire's lock.
	prev := h.locked
	h.locked = true
	defer func() { h.locked = prev }()

	for _, l := range invalidation {
		safeInvalidated(h.obs, l)
	}

	if len(changes) > 0 {
		oldValue := h.value
		newValue := h.obs.Get()
		h.value = newValue
		if !equalValues(oldValue, newValue) {
			for _, l := range changes {
				safeChanged(h.obs, oldValue, newValue, l)
			}
		}
	}
}

// removeAt removes element i. While a fire is in progress the original
// slice backs the iteration, so removal builds a fresh slice instead of
// shifting in place.
func removeAt[E any](s []E, i int, locked bool) []E {
	if locked {
		out := make([]E, 0, len(s)-1)
		out = append(out, s[:i]...)
		return append(out, s[i+1:]...)
	}
	return append(s[:i], s[i+1:]...)
}

func cloneSlice[E any](s []E) []E {
	out := make([]E, len(s))
	copy(out, s)
	return out
}
