package property

// FloatProperty wraps Property[float64] with convenience methods for
// float values.
type FloatProperty struct {
	*Property[float64]
}

// NewFloat creates a new FloatProperty with the given initial value.
func NewFloat(initial float64) *FloatProperty {
	return &FloatProperty{New(initial)}
}

// Add adds the given value.
func (p *FloatProperty) Add(n float64) {
	p.Update(func(v float64) float64 { return v + n })
}

// Sub subtracts the given value.
func (p *FloatProperty) Sub(n float64) {
	p.Update(func(v float64) float64 { return v - n })
}

// Mul multiplies by the given value.
func (p *FloatProperty) Mul(n float64) {
	p.Update(func(v float64) float64 { return v * n })
}

// Div divides by the given value.
func (p *FloatProperty) Div(n float64) {
	p.Update(func(v float64) float64 { return v / n })
}
