package control

import (
	"github.com/enhancedfx/efx/pkg/property"
	"github.com/enhancedfx/efx/pkg/style"
)

// Control is the state shared by every control: identity, style classes,
// pseudo-class states, and the disabled/focused/hovered flags mirrored
// into pseudo-classes.
type Control struct {
	id      string
	classes *style.ClassList
	states  *style.StateSet

	disabled *property.BoolProperty
	focused  *property.BoolProperty
	hovered  *property.BoolProperty
}

// newControl initializes the base state with the given id and style
// classes and wires the flag properties to their pseudo-classes.
func newControl(id string, classes ...string) Control {
	c := Control{
		id:       id,
		classes:  style.NewClassList(classes...),
		states:   style.NewStateSet(),
		disabled: property.NewBool(false),
		focused:  property.NewBool(false),
		hovered:  property.NewBool(false),
	}

	c.disabled.OnChange(func(_, on bool) { c.states.Set(style.Disabled, on) })
	c.focused.OnChange(func(_, on bool) { c.states.Set(style.Focused, on) })
	c.hovered.OnChange(func(_, on bool) { c.states.Set(style.Hovered, on) })
	return c
}

// ID returns the control's identifier.
func (c *Control) ID() string {
	return c.id
}

// Classes returns the control's style-class list.
func (c *Control) Classes() *style.ClassList {
	return c.classes
}

// States returns the control's pseudo-class state set.
func (c *Control) States() *style.StateSet {
	return c.states
}

// Disabled returns the disabled property.
func (c *Control) Disabled() *property.BoolProperty {
	return c.disabled
}

// Focused returns the focused property.
func (c *Control) Focused() *property.BoolProperty {
	return c.focused
}

// Hovered returns the hovered property.
func (c *Control) Hovered() *property.BoolProperty {
	return c.hovered
}

// Focus gives the control keyboard focus. Disabled controls refuse it.
func (c *Control) Focus() {
	if c.disabled.Get() {
		return
	}
	c.focused.SetTrue()
}

// Blur removes keyboard focus.
func (c *Control) Blur() {
	c.focused.SetFalse()
}

// Hover sets the pointer-over state.
func (c *Control) Hover(over bool) {
	c.hovered.Set(over)
}

// SetDisabled enables or disables the control. Disabling drops focus.
func (c *Control) SetDisabled(disabled bool) {
	c.disabled.Set(disabled)
	if disabled {
		c.focused.SetFalse()
	}
}
