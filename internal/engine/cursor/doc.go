// Package cursor provides the editing position inside a line buffer.
//
// A Cursor is a (line, column) pair where the line is a buffer.Ref and the
// column is a byte offset. Cursor is an immutable value type: every motion
// returns a Move describing the new cursor and how many lines it crossed,
// so callers can keep a viewport in step with it.
//
// Motion rules:
//
//   - Right at the end of a line continues at column 0 of the next line.
//   - Left at column 0 continues at the end of the previous line.
//   - Up and Down keep the column but clamp it to the target line.
//   - A motion that would leave the buffer returns engine.ErrAtBoundary
//     and the cursor stays where it was.
//
// Invariant:
//
// For a valid cursor, 0 <= Col <= length of Line. Clamp restores it after
// an edit has shortened the line.
package cursor
