package cursor

import (
	"fmt"

	"github.com/dshills/mte/internal/engine"
	"github.com/dshills/mte/internal/engine/buffer"
)

// Cursor represents an insertion point in the buffer.
// Cursor is an immutable value type.
type Cursor struct {
	Line buffer.Ref
	Col  int
}

// Move is the outcome of a cursor motion.
type Move struct {
	// To is the cursor after the motion.
	To Cursor
	// Lines is the signed number of lines crossed: -1, 0 or +1.
	Lines int
}

// Crossed reports whether the motion crossed a line boundary.
func (m Move) Crossed() bool {
	return m.Lines != 0
}

// New creates a cursor at the given line and column.
func New(line buffer.Ref, col int) Cursor {
	if col < 0 {
		col = 0
	}
	return Cursor{Line: line, Col: col}
}

// Start returns a cursor at column 0 of the first line.
func Start(b *buffer.Buffer) Cursor {
	return Cursor{Line: b.First()}
}

// At returns a cursor at column 0 of line.
func At(line buffer.Ref) Cursor {
	return Cursor{Line: line}
}

// String returns a string representation of the cursor.
func (c Cursor) String() string {
	return fmt.Sprintf("Cursor(col %d)", c.Col)
}

// Valid reports whether c refers to a line of b and its column is in range.
func (c Cursor) Valid(b *buffer.Buffer) bool {
	return b.Contains(c.Line) && c.Col >= 0 && c.Col <= b.LineLen(c.Line)
}

// Clamp returns c with its column limited to [0, length of its line].
func (c Cursor) Clamp(b *buffer.Buffer) Cursor {
	if c.Col < 0 {
		c.Col = 0
	}
	if n := b.LineLen(c.Line); c.Col > n {
		c.Col = n
	}
	return c
}

// Right moves one column right, wrapping to the start of the next line.
func (c Cursor) Right(b *buffer.Buffer) (Move, error) {
	if c.Col < b.LineLen(c.Line) {
		return Move{To: Cursor{Line: c.Line, Col: c.Col + 1}}, nil
	}
	next, ok := b.Next(c.Line)
	if !ok {
		return Move{To: c}, engine.ErrAtBoundary
	}
	return Move{To: Cursor{Line: next}, Lines: 1}, nil
}

// Left moves one column left, wrapping to the end of the previous line.
func (c Cursor) Left(b *buffer.Buffer) (Move, error) {
	if c.Col > 0 {
		return Move{To: Cursor{Line: c.Line, Col: c.Col - 1}}, nil
	}
	prev, ok := b.Prev(c.Line)
	if !ok {
		return Move{To: c}, engine.ErrAtBoundary
	}
	return Move{To: Cursor{Line: prev, Col: b.LineLen(prev)}, Lines: -1}, nil
}

// Down moves to the next line, clamping the column to its length.
func (c Cursor) Down(b *buffer.Buffer) (Move, error) {
	next, ok := b.Next(c.Line)
	if !ok {
		return Move{To: c}, engine.ErrAtBoundary
	}
	return Move{To: Cursor{Line: next, Col: c.Col}.Clamp(b), Lines: 1}, nil
}

// Up moves to the previous line, clamping the column to its length.
func (c Cursor) Up(b *buffer.Buffer) (Move, error) {
	prev, ok := b.Prev(c.Line)
	if !ok {
		return Move{To: c}, engine.ErrAtBoundary
	}
	return Move{To: Cursor{Line: prev, Col: c.Col}.Clamp(b), Lines: -1}, nil
}

// Home moves to column 0.
func (c Cursor) Home() Move {
	return Move{To: Cursor{Line: c.Line}}
}

// End moves past the last character of the line.
func (c Cursor) End(b *buffer.Buffer) Move {
	return Move{To: Cursor{Line: c.Line, Col: b.LineLen(c.Line)}}
}
