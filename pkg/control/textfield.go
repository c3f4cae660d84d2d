package control

// Mode selects the Material text-field appearance.
type Mode string

const (
	Outlined Mode = "outlined"
	Filled   Mode = "filled"
)

// TextField is a single-line Material text input.
type TextField struct {
	TextInput

	mode Mode
}

// NewTextField creates an outlined text field with the given id.
func NewTextField(id string) *TextField {
	tf := &TextField{mode: Outlined}
	tf.initTextInput(id, "text-field", string(Outlined))
	return tf
}

// WithMode switches between the outlined and filled appearance.
// Returns the field for chaining.
func (tf *TextField) WithMode(mode Mode) *TextField {
	if mode == tf.mode {
		return tf
	}
	tf.classes.Remove(string(tf.mode)).Add(string(mode))
	tf.mode = mode
	return tf
}

// Mode returns the current appearance mode.
func (tf *TextField) Mode() Mode {
	return tf.mode
}

// WithTitle sets the floating title. Returns the field for chaining.
func (tf *TextField) WithTitle(title string) *TextField {
	tf.title.Set(title)
	return tf
}

// WithPrompt sets the placeholder text. Returns the field for chaining.
func (tf *TextField) WithPrompt(prompt string) *TextField {
	tf.prompt.Set(prompt)
	return tf
}

// WithSupporting sets the supporting text shown under the field.
// Returns the field for chaining.
func (tf *TextField) WithSupporting(text string) *TextField {
	tf.supporting.Set(text)
	return tf
}

// WithMaxLength enables the character counter with the given limit.
// Text over the limit activates the error pseudo-class.
// Returns the field for chaining.
func (tf *TextField) WithMaxLength(limit int) *TextField {
	tf.maxLength = limit
	tf.syncTextState()
	return tf
}

// TruncateAtLimit makes SetText clip at the maximum length instead of
// flagging the error pseudo-class. Returns the field for chaining.
func (tf *TextField) TruncateAtLimit() *TextField {
	tf.truncate = true
	return tf
}
