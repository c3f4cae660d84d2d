package property

// IntProperty wraps Property[int] with convenience methods for integer
// values.
type IntProperty struct {
	*Property[int]
}

// NewInt creates a new IntProperty with the given initial value.
func NewInt(initial int) *IntProperty {
	return &IntProperty{New(initial)}
}

// Inc increments the value by 1.
func (p *IntProperty) Inc() {
	p.Update(func(n int) int { return n + 1 })
}

// Dec decrements the value by 1.
func (p *IntProperty) Dec() {
	p.Update(func(n int) int { return n - 1 })
}

// Add adds the given value.
func (p *IntProperty) Add(n int) {
	p.Update(func(v int) int { return v + n })
}

// Sub subtracts the given value.
func (p *IntProperty) Sub(n int) {
	p.Update(func(v int) int { return v - n })
}
