// Package style models the CSS-facing state of a control: the ordered
// style-class list and the set of active pseudo-classes.
//
// Both structures are observable through the observe dispatch core, so a
// renderer or preview session can subscribe to them exactly like it
// subscribes to properties. Mutations fire only when they actually change
// the state.
package style
