package property

// StringProperty wraps Property[string] with convenience methods for
// string values.
type StringProperty struct {
	*Property[string]
}

// NewString creates a new StringProperty with the given initial value.
func NewString(initial string) *StringProperty {
	return &StringProperty{New(initial)}
}

// Append adds the given string to the end.
func (p *StringProperty) Append(suffix string) {
	p.Update(func(v string) string { return v + suffix })
}

// Prepend adds the given string to the beginning.
func (p *StringProperty) Prepend(prefix string) {
	p.Update(func(v string) string { return prefix + v })
}

// Clear sets the value to an empty string.
func (p *StringProperty) Clear() {
	p.Set("")
}

// Length returns the length of the string in runes.
func (p *StringProperty) Length() int {
	return len([]rune(p.Get()))
}

// IsEmpty returns true if the string is empty.
func (p *StringProperty) IsEmpty() bool {
	return p.Get() == ""
}
