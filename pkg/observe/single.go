package observe

// singleInvalidation holds exactly one invalidation listener. No cached
// value is needed because invalidation carries no old/new pair.
type singleInvalidation[T any] struct {
	obs      ObservableValue[T]
	listener InvalidationListener
}

func (h *singleInvalidation[T]) addInvalidation(l InvalidationListener) Helper[T] {
	return &generic[T]{
		obs:          h.obs,
		invalidation: []InvalidationListener{h.listener, l},
	}
}

func (h *singleInvalidation[T]) removeInvalidation(l InvalidationListener) Helper[T] {
	if sameListener(h.listener, l) {
		return nil
	}
	return h
}

func (h *singleInvalidation[T]) addChange(l ChangeListener[T]) Helper[T] {
	return &generic[T]{
		obs:          h.obs,
		invalidation: []InvalidationListener{h.listener},
		changes:      []ChangeListener[T]{l},
		value:        h.obs.Get(),
		seeded:       true,
	}
}

func (h *singleInvalidation[T]) removeChange(l ChangeListener[T]) Helper[T] {
	return h
}

func (h *singleInvalidation[T]) fire() {
	safeInvalidated(h.obs, h.listener)
}

// singleChange holds exactly one change listener plus the last value it
// was notified with.
type singleChange[T any] struct {
	obs      ObservableValue[T]
	listener ChangeListener[T]
	value    T
}

func (h *singleChange[T]) addInvalidation(l InvalidationListener) Helper[T] {
	return &generic[T]{
		obs:          h.obs,
		invalidation: []InvalidationListener{l},
		changes:      []ChangeListener[T]{h.listener},
		value:        h.value,
		seeded:       true,
	}
}

func (h *singleChange[T]) removeInvalidation(l InvalidationListener) Helper[T] {
	return h
}

func (h *singleChange[T]) addChange(l ChangeListener[T]) Helper[T] {
	return &generic[T]{
		obs:     h.obs,
		changes: []ChangeListener[T]{h.listener, l},
		value:   h.value,
		seeded:  true,
	}
}

func (h *singleChange[T]) removeChange(l ChangeListener[T]) Helper[T] {
	if sameListener(h.listener, l) {
		return nil
	}
	return h
}

func (h *singleChange[T]) fire() {
	oldValue := h.value
	newValue := h.obs.Get()
	if !equalValues(oldValue, newValue) {
		h.value = newValue
		safeChanged(h.obs, oldValue, newValue, h.listener)
	}
}
