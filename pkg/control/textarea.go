package control

import (
	"strings"

	"github.com/enhancedfx/efx/pkg/property"
)

// TextArea is a multi-line Material text input.
type TextArea struct {
	TextInput

	wrapText *property.BoolProperty
	lines    *property.Computed[int]
}

// NewTextArea creates a text area with the given id.
func NewTextArea(id string) *TextArea {
	ta := &TextArea{wrapText: property.NewBool(false)}
	ta.initTextInput(id, "text-area")
	ta.lines = property.NewComputed(func() int {
		return strings.Count(ta.text.Get(), "\n") + 1
	}, ta.text)

	ta.wrapText.OnChange(func(_, on bool) {
		ta.classes.Switch("wrap", on)
	})
	return ta
}

// WrapText returns the wrap property; while true the area carries the
// wrap style class.
func (ta *TextArea) WrapText() *property.BoolProperty {
	return ta.wrapText
}

// Lines returns the observable line count of the text.
func (ta *TextArea) Lines() *property.Computed[int] {
	return ta.lines
}

// WithTitle sets the floating title. Returns the area for chaining.
func (ta *TextArea) WithTitle(title string) *TextArea {
	ta.title.Set(title)
	return ta
}

// WithPrompt sets the placeholder text. Returns the area for chaining.
func (ta *TextArea) WithPrompt(prompt string) *TextArea {
	ta.prompt.Set(prompt)
	return ta
}

// WithSupporting sets the supporting text. Returns the area for chaining.
func (ta *TextArea) WithSupporting(text string) *TextArea {
	ta.supporting.Set(text)
	return ta
}

// WithMaxLength enables the character counter with the given limit.
// Returns the area for chaining.
func (ta *TextArea) WithMaxLength(limit int) *TextArea {
	ta.maxLength = limit
	ta.syncTextState()
	return ta
}

// TruncateAtLimit makes SetText clip at the maximum length.
// Returns the area for chaining.
func (ta *TextArea) TruncateAtLimit() *TextArea {
	ta.truncate = true
	return ta
}
