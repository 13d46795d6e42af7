// Package buffer provides the line buffer of the editor: an ordered
// sequence of lines kept in a doubly linked list.
//
// Lines are addressed by Ref, a handle to a list node rather than a
// position. A Ref held as "the cursor line" or "the top of the window"
// stays valid while lines are inserted or removed anywhere else in the
// buffer; only removing that very line makes it stale. Positional indices
// are available through Index and At for display and line-number commands,
// but both walk the list.
//
// Basic usage:
//
//	buf := buffer.New("foo", "bar")
//	first := buf.First()
//	_, right, _ := buf.SplitAt(first, 1) // "f", "oo", "bar"
//	_ = buf.MergeWithNext(first)         // "foo", "bar"
//	_ = buf.InsertChar(right, 0, 'x')    // right is stale: ErrStaleRef
//
// Invariant:
//
// A Buffer is never empty. Remove refuses to delete the last remaining line
// and reports engine.ErrInvalidState instead.
//
// Columns are byte offsets. Multi-byte characters are not interpreted.
package buffer
