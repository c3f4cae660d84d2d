package property

// BoolProperty wraps Property[bool] with convenience methods for boolean
// values.
type BoolProperty struct {
	*Property[bool]
}

// NewBool creates a new BoolProperty with the given initial value.
func NewBool(initial bool) *BoolProperty {
	return &BoolProperty{New(initial)}
}

// Toggle inverts the boolean value.
func (p *BoolProperty) Toggle() {
	p.Update(func(b bool) bool { return !b })
}

// SetTrue sets the value to true.
func (p *BoolProperty) SetTrue() {
	p.Set(true)
}

// SetFalse sets the value to false.
func (p *BoolProperty) SetFalse() {
	p.Set(false)
}
