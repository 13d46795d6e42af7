package session

import (
	"github.com/dshills/mte/internal/engine"
	"github.com/dshills/mte/internal/engine/cursor"
	"github.com/dshills/mte/internal/engine/search"
)

// LineCount returns the number of lines in the buffer.
func (s *Session) LineCount() int {
	return s.buf.Len()
}

// SearchForward moves the cursor to the next occurrence of needle.
func (s *Session) SearchForward(needle string) error {
	m, ok := search.Forward(s.buf, search.Anchor{Line: s.cur.Line, Col: s.cur.Col}, needle)
	if !ok {
		return engine.ErrNotFound
	}
	s.reveal(m)
	return nil
}

// SearchBackward moves the cursor to the previous occurrence of needle.
func (s *Session) SearchBackward(needle string) error {
	m, ok := search.Backward(s.buf, search.Anchor{Line: s.cur.Line, Col: s.cur.Col}, needle)
	if !ok {
		return engine.ErrNotFound
	}
	s.reveal(m)
	return nil
}

// reveal moves the cursor to a match. A match on screen only moves the
// cursor row; otherwise the window is rebuilt around it.
func (s *Session) reveal(m search.Match) {
	s.cur = cursor.New(m.Line, m.Col)
	if s.view.Reveal(m.Lines) {
		return
	}
	s.cmdRedraw = s.view.Jump(m.Line, s.view.CursorRow())
}

// GotoLine moves the cursor to column 0 of the 1-based line n.
func (s *Session) GotoLine(n int) error {
	r, ok := s.buf.At(n - 1)
	if !ok {
		return engine.ErrInvalidLineNumber
	}
	s.jump(cursor.At(r))
	return nil
}

// GotoStart moves the cursor to column 0 of the first line.
func (s *Session) GotoStart() error {
	s.jump(cursor.Start(s.buf))
	return nil
}

// GotoEnd moves the cursor to the end of the last line, which lands on
// the bottom row of the window.
func (s *Session) GotoEnd() error {
	last := s.buf.Last()
	s.jump(cursor.New(last, s.buf.LineLen(last)))
	return nil
}

func (s *Session) jump(c cursor.Cursor) {
	s.cur = c
	s.cmdRedraw = s.view.Jump(c.Line, s.view.CursorRow())
}
