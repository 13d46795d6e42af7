// Package viewport maps a window of the line buffer onto screen rows.
//
// The window is described by its top line, the document index of that
// line (the frame offset, used only for display) and the screen row of the
// cursor inside the window. The viewport keeps one invariant: stepping
// CursorRow lines forward from Top reaches the cursor's line, and
// 0 <= CursorRow < Height. Every method that moves the window reports the
// repaint it requires as a dirty.Directive.
package viewport

import (
	"errors"
	"fmt"

	"github.com/dshills/mte/internal/engine/buffer"
)

// ErrIncoherent is returned by Check when the window and the cursor line
// disagree.
var ErrIncoherent = errors.New("viewport does not match cursor")

// Viewport represents the visible portion of the buffer.
type Viewport struct {
	buf *buffer.Buffer

	// First visible line and its 0-based document index.
	top   buffer.Ref
	frame int

	// Screen row of the cursor line, in [0, height).
	row int

	// Number of text rows.
	height int
}

// New creates a viewport showing b from its first line.
// Height is clamped to a minimum of 1.
func New(b *buffer.Buffer, height int) *Viewport {
	if height < 1 {
		height = 1
	}
	return &Viewport{
		buf:    b,
		top:    b.First(),
		height: height,
	}
}

// Height returns the number of text rows.
func (v *Viewport) Height() int {
	return v.height
}

// Top returns the first visible line.
func (v *Viewport) Top() buffer.Ref {
	return v.top
}

// FrameOffset returns the 0-based document index of the top line.
func (v *Viewport) FrameOffset() int {
	return v.frame
}

// CursorRow returns the screen row of the cursor line.
func (v *Viewport) CursorRow() int {
	return v.row
}

// VisibleLines returns the text of up to Height lines starting at Top.
func (v *Viewport) VisibleLines() []string {
	out := make([]string, 0, v.height)
	for r, ok := v.top, v.buf.Contains(v.top); ok && len(out) < v.height; r, ok = v.buf.Next(r) {
		out = append(out, v.buf.Text(r))
	}
	return out
}

// LineAt returns the line shown on screen row.
func (v *Viewport) LineAt(row int) (buffer.Ref, bool) {
	if row < 0 || row >= v.height || !v.buf.Contains(v.top) {
		return buffer.Ref{}, false
	}
	r := v.top
	for i := 0; i < row; i++ {
		next, ok := v.buf.Next(r)
		if !ok {
			return buffer.Ref{}, false
		}
		r = next
	}
	return r, true
}

// Check verifies that the cursor line sits exactly CursorRow lines below
// Top and that the frame offset matches Top's index.
func (v *Viewport) Check(cursorLine buffer.Ref) error {
	if v.row < 0 || v.row >= v.height {
		return fmt.Errorf("%w: row %d outside [0,%d)", ErrIncoherent, v.row, v.height)
	}
	if !v.buf.Contains(v.top) {
		return fmt.Errorf("%w: top line is not in the buffer", ErrIncoherent)
	}
	if idx := v.buf.Index(v.top); idx != v.frame {
		return fmt.Errorf("%w: frame offset %d, top line index %d", ErrIncoherent, v.frame, idx)
	}
	r, ok := v.LineAt(v.row)
	if !ok || r != cursorLine {
		return fmt.Errorf("%w: cursor line is not at row %d", ErrIncoherent, v.row)
	}
	return nil
}

// String returns a string representation of the viewport.
func (v *Viewport) String() string {
	return fmt.Sprintf("Viewport(frame %d, row %d, height %d)", v.frame, v.row, v.height)
}
