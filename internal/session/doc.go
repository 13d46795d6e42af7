// Package session implements the edit session: it owns the line buffer,
// the cursor and the viewport and applies one editor event at a time.
//
// Every event produces a Result holding the repaint the screen needs, an
// optional one-line message and whether the editor should quit. Navigation
// past the buffer edges and edits with nothing to do are silently ignored.
// Command errors and search misses become messages and leave the buffer
// and cursor unchanged.
//
// The session also implements renderer.Frame, so the renderer can draw it
// directly, and command.Target, so line commands apply to it.
package session
