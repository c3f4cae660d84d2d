package style

import (
	"strings"

	"github.com/enhancedfx/efx/pkg/observe"
)

// StateSet tracks which pseudo-classes are active on a control. Its
// observable value is the snapshot of active pseudo-class names in
// activation order.
type StateSet struct {
	active []*PseudoClass
	helper observe.Helper[[]string]
}

// NewStateSet creates an empty state set.
func NewStateSet() *StateSet {
	return &StateSet{}
}

// Get returns the active pseudo-class names in activation order.
func (s *StateSet) Get() []string {
	out := make([]string, len(s.active))
	for i, pc := range s.active {
		out[i] = pc.name
	}
	return out
}

// Value returns the snapshot untyped.
func (s *StateSet) Value() any {
	return s.Get()
}

// Has reports whether the pseudo-class is active.
func (s *StateSet) Has(pc *PseudoClass) bool {
	for _, existing := range s.active {
		if existing == pc {
			return true
		}
	}
	return false
}

// Set activates or deactivates the pseudo-class, firing only on a real
// transition. Returns the set for chaining.
func (s *StateSet) Set(pc *PseudoClass, active bool) *StateSet {
	if pc == nil {
		panic(ErrEmptyName)
	}
	if active == s.Has(pc) {
		return s
	}
	if active {
		s.active = append(s.active, pc)
	} else {
		for i, existing := range s.active {
			if existing == pc {
				s.active = append(s.active[:i], s.active[i+1:]...)
				break
			}
		}
	}
	observe.FireValueChanged(s.helper)
	return s
}

// String renders the active states as selector suffixes, e.g.
// ":focused:floating".
func (s *StateSet) String() string {
	var b strings.Builder
	for _, pc := range s.active {
		b.WriteByte(':')
		b.WriteString(pc.name)
	}
	return b.String()
}

// AddInvalidationListener registers l.
func (s *StateSet) AddInvalidationListener(l observe.InvalidationListener) {
	s.helper = observe.AddInvalidationListener(s.helper, s, l)
}

// RemoveInvalidationListener removes l.
func (s *StateSet) RemoveInvalidationListener(l observe.InvalidationListener) {
	s.helper = observe.RemoveInvalidationListener(s.helper, l)
}

// AddChangeListener registers l.
func (s *StateSet) AddChangeListener(l observe.ChangeListener[[]string]) {
	s.helper = observe.AddChangeListener(s.helper, s, l)
}

// RemoveChangeListener removes l.
func (s *StateSet) RemoveChangeListener(l observe.ChangeListener[[]string]) {
	s.helper = observe.RemoveChangeListener(s.helper, l)
}

// OnInvalidate registers a callback for any transition and returns the
// set for chaining.
func (s *StateSet) OnInvalidate(fn func()) *StateSet {
	s.AddInvalidationListener(observe.OnInvalidated(func(observe.Observable) {
		fn()
	}))
	return s
}
