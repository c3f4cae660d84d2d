package control

import (
	"github.com/enhancedfx/efx/pkg/property"
	"github.com/enhancedfx/efx/pkg/style"
)

// TextInput is the state shared by text fields and text areas: the text
// itself, the prompt, the floating title label, supporting text, and the
// character counter.
//
// The floating pseudo-class is active while the input is focused or
// non-empty, which is what drives the Material floating-label animation.
// When a maximum length is set, the error pseudo-class tracks whether the
// text is over the limit; in truncating mode SetText clips instead.
type TextInput struct {
	Control

	text       *property.StringProperty
	prompt     *property.StringProperty
	title      *property.StringProperty
	supporting *property.StringProperty

	maxLength int
	truncate  bool
	count     *property.Computed[int]
}

// initTextInput wires the input state in place. It runs on the final
// embedded struct so the listeners observe later configuration such as
// the maximum length.
func (in *TextInput) initTextInput(id string, classes ...string) {
	in.Control = newControl(id, classes...)
	in.text = property.NewString("")
	in.prompt = property.NewString("")
	in.title = property.NewString("")
	in.supporting = property.NewString("")
	in.count = property.NewComputed(in.text.Length, in.text)

	in.text.OnInvalidate(in.syncTextState)
	in.focused.OnChange(func(_, _ bool) { in.syncFloating() })
}

// syncTextState refreshes the states that depend on the text value.
func (in *TextInput) syncTextState() {
	in.syncFloating()
	if in.maxLength > 0 && !in.truncate {
		in.states.Set(style.Invalid, in.count.Get() > in.maxLength)
	}
}

func (in *TextInput) syncFloating() {
	in.states.Set(style.Floating, in.focused.Get() || !in.text.IsEmpty())
}

// Text returns the text property.
func (in *TextInput) Text() *property.StringProperty {
	return in.text
}

// SetText sets the text, clipping at the maximum length when the input is
// in truncating mode.
func (in *TextInput) SetText(text string) {
	if in.truncate && in.maxLength > 0 {
		if runes := []rune(text); len(runes) > in.maxLength {
			text = string(runes[:in.maxLength])
		}
	}
	in.text.Set(text)
}

// Prompt returns the placeholder-text property.
func (in *TextInput) Prompt() *property.StringProperty {
	return in.prompt
}

// Title returns the floating-title property.
func (in *TextInput) Title() *property.StringProperty {
	return in.title
}

// Supporting returns the supporting-text property shown under the input.
func (in *TextInput) Supporting() *property.StringProperty {
	return in.supporting
}

// Count returns the character counter, an observable over the rune length
// of the text.
func (in *TextInput) Count() *property.Computed[int] {
	return in.count
}

// MaxLength returns the configured maximum length, 0 meaning unlimited.
func (in *TextInput) MaxLength() int {
	return in.maxLength
}

// OverLimit reports whether the text currently exceeds the maximum
// length. Always false in truncating mode.
func (in *TextInput) OverLimit() bool {
	return in.maxLength > 0 && in.count.Get() > in.maxLength
}

// Floating reports whether the title label is currently floating.
func (in *TextInput) Floating() bool {
	return in.states.Has(style.Floating)
}
