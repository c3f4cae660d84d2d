// Package observe implements the listener dispatch core shared by all
// reactive types in efx.
//
// An observable owner (typically a property.Property) stores a single
// nullable Helper and routes every listener registration through the
// package-level entry points, reassigning the field to the returned value:
//
//	p.helper = observe.AddChangeListener(p.helper, p, listener)
//
// The Helper switches between three concrete representations so that the
// common zero- and one-listener cases allocate nothing beyond the single
// listener entry: no helper at all (nil), a single-listener helper for
// either listener kind, and a generic helper carrying ordered lists of
// both kinds.
//
// All types in this package assume the single-goroutine discipline of a
// UI event loop: add, remove, and fire must happen on one goroutine. The
// only guarded hazard is reentrancy, where a listener mutates the helper
// that is currently notifying it.
package observe
