package session

import "github.com/dshills/mte/internal/renderer/statusline"

// VisibleLines returns the text of the lines in the window.
func (s *Session) VisibleLines() []string {
	return s.view.VisibleLines()
}

// CursorScreen returns the cursor's text row and byte column.
func (s *Session) CursorScreen() (row, col int) {
	return s.view.CursorRow(), s.cur.Col
}

// Position returns the 1-based cursor line and column.
func (s *Session) Position() (line, col int) {
	return s.view.FrameOffset() + s.view.CursorRow() + 1, s.cur.Col + 1
}

// Path returns the path of the file being edited.
func (s *Session) Path() string {
	return s.path
}

// Modified reports whether the buffer changed since it was loaded or saved.
func (s *Session) Modified() bool {
	return s.modified
}

// Message returns the message produced by the last event.
func (s *Session) Message() string {
	return s.message
}

// Prompt returns the command line state.
func (s *Session) Prompt() (text string, cursor int, active bool) {
	return s.prompt.Text(), s.prompt.Cursor(), s.prompt.Active()
}

// Status returns the status row text.
func (s *Session) Status() string {
	line, col := s.Position()
	return statusline.Format(s.path, s.modified, line, col)
}

// Lines returns a copy of the buffer contents.
func (s *Session) Lines() []string {
	return s.buf.Lines()
}

// TrailingNewline reports whether the file ended with a newline.
func (s *Session) TrailingNewline() bool {
	return s.trailingNewline
}
