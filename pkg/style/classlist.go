package style

import (
	"strings"

	"github.com/enhancedfx/efx/pkg/observe"
)

// ClassList is an ordered, duplicate-free list of style classes with
// change notification. Its observable value is the class-name snapshot.
type ClassList struct {
	classes []string
	helper  observe.Helper[[]string]
}

// NewClassList creates a class list seeded with the given classes.
func NewClassList(classes ...string) *ClassList {
	c := &ClassList{}
	for _, name := range classes {
		c.add(name)
	}
	return c
}

// Get returns a snapshot of the class names in order.
func (c *ClassList) Get() []string {
	out := make([]string, len(c.classes))
	copy(out, c.classes)
	return out
}

// Value returns the snapshot untyped.
func (c *ClassList) Value() any {
	return c.Get()
}

// Has reports whether the given class is present.
func (c *ClassList) Has(name string) bool {
	for _, existing := range c.classes {
		if existing == name {
			return true
		}
	}
	return false
}

// Len returns the number of classes.
func (c *ClassList) Len() int {
	return len(c.classes)
}

// String joins the classes with spaces, as they would appear in a class
// attribute.
func (c *ClassList) String() string {
	return strings.Join(c.classes, " ")
}

// Add appends the given classes, skipping ones already present.
// Returns the list for chaining.
func (c *ClassList) Add(names ...string) *ClassList {
	changed := false
	for _, name := range names {
		if c.add(name) {
			changed = true
		}
	}
	if changed {
		observe.FireValueChanged(c.helper)
	}
	return c
}

func (c *ClassList) add(name string) bool {
	if name == "" {
		panic(ErrEmptyName)
	}
	if c.Has(name) {
		return false
	}
	c.classes = append(c.classes, name)
	return true
}

// Remove removes the given classes; absent ones are ignored.
// Returns the list for chaining.
func (c *ClassList) Remove(names ...string) *ClassList {
	changed := false
	for _, name := range names {
		for i, existing := range c.classes {
			if existing == name {
				c.classes = append(c.classes[:i], c.classes[i+1:]...)
				changed = true
				break
			}
		}
	}
	if changed {
		observe.FireValueChanged(c.helper)
	}
	return c
}

// Toggle adds the class when absent and removes it when present.
// Returns the list for chaining.
func (c *ClassList) Toggle(name string) *ClassList {
	if c.Has(name) {
		return c.Remove(name)
	}
	return c.Add(name)
}

// Switch adds or removes the class according to on. It fires only on a
// real transition, making it convenient for mirroring boolean state.
func (c *ClassList) Switch(name string, on bool) *ClassList {
	if on {
		return c.Add(name)
	}
	return c.Remove(name)
}

// AddInvalidationListener registers l.
func (c *ClassList) AddInvalidationListener(l observe.InvalidationListener) {
	c.helper = observe.AddInvalidationListener(c.helper, c, l)
}

// RemoveInvalidationListener removes l.
func (c *ClassList) RemoveInvalidationListener(l observe.InvalidationListener) {
	c.helper = observe.RemoveInvalidationListener(c.helper, l)
}

// AddChangeListener registers l. Old and new values are name snapshots.
func (c *ClassList) AddChangeListener(l observe.ChangeListener[[]string]) {
	c.helper = observe.AddChangeListener(c.helper, c, l)
}

// RemoveChangeListener removes l.
func (c *ClassList) RemoveChangeListener(l observe.ChangeListener[[]string]) {
	c.helper = observe.RemoveChangeListener(c.helper, l)
}

// OnInvalidate registers a callback for any mutation and returns the list
// for chaining.
func (c *ClassList) OnInvalidate(fn func()) *ClassList {
	c.AddInvalidationListener(observe.OnInvalidated(func(observe.Observable) {
		fn()
	}))
	return c
}
