package preview

// Patch describes one observed change on a control, serialized to the
// browser as JSON.
type Patch struct {
	// Control is the control id the change belongs to.
	Control string `json:"control"`

	// Item is the nav item id for per-item changes, empty otherwise.
	Item string `json:"item,omitempty"`

	// Kind is "property", "classes", or "states".
	Kind string `json:"kind"`

	// Name is the property name for property patches.
	Name string `json:"name,omitempty"`

	// Value is the new value: the property value, the class list, or the
	// active pseudo-class names.
	Value any `json:"value"`
}

// Event is a browser-originated interaction with a control.
type Event struct {
	// Control is the target control id.
	Control string `json:"control"`

	// Type is one of "focus", "blur", "hover", "input", "click",
	// "select".
	Type string `json:"type"`

	// Text carries the input value for "input" events.
	Text string `json:"text,omitempty"`

	// Index carries the item index for "select" events.
	Index int `json:"index,omitempty"`

	// On carries the pointer state for "hover" events.
	On bool `json:"on,omitempty"`
}
