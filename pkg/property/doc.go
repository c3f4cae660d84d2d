// Package property provides reactive value containers built on the
// observe dispatch core: generic properties, typed convenience wrappers,
// unidirectional and bidirectional bindings, and lazily computed values.
//
// A Property owns one nullable observe.Helper and is the canonical
// observable owner: every listener registration goes through the observe
// entry points with the helper field reassigned to the result, and every
// accepted mutation updates the stored value before firing so listeners
// read the new value during notification.
//
// Properties follow the same single-goroutine discipline as package
// observe.
package property
