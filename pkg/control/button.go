package control

import (
	"github.com/enhancedfx/efx/pkg/property"
	"github.com/enhancedfx/efx/pkg/style"
)

// Button is a Material button: a label, an armed pseudo-class while
// pressed, and a list of action callbacks invoked by Fire.
type Button struct {
	Control

	label   *property.StringProperty
	actions []func()
}

// NewButton creates a button with the given id and label.
func NewButton(id, label string) *Button {
	b := &Button{label: property.NewString(label)}
	b.Control = newControl(id, "button")
	return b
}

// Label returns the label property.
func (b *Button) Label() *property.StringProperty {
	return b.label
}

// OnAction appends an action callback. Returns the button for chaining.
func (b *Button) OnAction(fn func()) *Button {
	b.actions = append(b.actions, fn)
	return b
}

// Arm marks the button as pressed. Disabled buttons refuse it.
func (b *Button) Arm() {
	if b.disabled.Get() {
		return
	}
	b.states.Set(style.Armed, true)
}

// Disarm clears the pressed state.
func (b *Button) Disarm() {
	b.states.Set(style.Armed, false)
}

// Armed reports whether the button is currently pressed.
func (b *Button) Armed() bool {
	return b.states.Has(style.Armed)
}

// Fire disarms the button and invokes its actions in registration order.
// Disabled buttons do nothing.
func (b *Button) Fire() {
	if b.disabled.Get() {
		return
	}
	b.Disarm()
	for _, fn := range b.actions {
		fn()
	}
}
