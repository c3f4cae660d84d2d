package style

import "errors"

// ErrEmptyName is the panic value for an empty pseudo-class or style
// class name.
var ErrEmptyName = errors.New("efx: empty style name")

// PseudoClass is an interned CSS pseudo-class. Two calls to Pseudo with
// the same name return the same instance, so pseudo-classes compare by
// identity.
type PseudoClass struct {
	name string
}

var pseudoClasses = map[string]*PseudoClass{}

// Pseudo returns the pseudo-class with the given name, creating and
// interning it on first use.
func Pseudo(name string) *PseudoClass {
	if name == "" {
		panic(ErrEmptyName)
	}
	if pc, ok := pseudoClasses[name]; ok {
		return pc
	}
	pc := &PseudoClass{name: name}
	pseudoClasses[name] = pc
	return pc
}

// Name returns the pseudo-class name without the leading colon.
func (pc *PseudoClass) Name() string {
	return pc.name
}

func (pc *PseudoClass) String() string {
	return ":" + pc.name
}

// Pseudo-classes used by the built-in controls.
var (
	Focused  = Pseudo("focused")
	Hovered  = Pseudo("hovered")
	Disabled = Pseudo("disabled")
	Armed    = Pseudo("armed")
	Floating = Pseudo("floating")
	Invalid  = Pseudo("error")
	Selected = Pseudo("selected")
)
