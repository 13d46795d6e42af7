// Package engine holds the text model of the mte line editor.
//
// The model is split into three leaf packages:
//
//   - buffer: the ordered sequence of lines, addressed by stable references
//   - cursor: a (line, column) position and its motions
//   - search: forward and backward substring search over a buffer
//
// This package itself only defines the error values shared by all of them,
// so that callers can classify an outcome with errors.Is without importing
// every leaf package.
//
// Nothing in the engine is safe for concurrent use. The editor processes
// one input event at a time and owns all engine values exclusively.
package engine
