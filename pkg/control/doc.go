// Package control provides Material-style control state models: text
// fields and areas with floating labels, supporting text and character
// counters, buttons, and navigation bars.
//
// Controls hold no pixels and no toolkit handles. Each one owns typed
// properties, a style.ClassList, and a style.StateSet, wired together
// with observe listeners so that visual state (pseudo-classes like
// floating or error) always follows value state. A renderer subscribes to
// the same observables to draw the control however it likes.
package control
