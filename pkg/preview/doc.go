// Package preview runs the efx development playground: an HTTP server
// that hosts a set of registered controls, serves the active theme's CSS,
// and mirrors every property, class-list, and pseudo-class change to
// connected browsers as JSON patches over a WebSocket.
//
// Browser events (focus, input, click, select) flow the other way and are
// applied to the controls on a single dispatch goroutine, preserving the
// single-goroutine discipline the reactive core requires.
package preview
