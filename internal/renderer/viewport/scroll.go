package viewport

import (
	"github.com/dshills/mte/internal/engine/buffer"
	"github.com/dshills/mte/internal/renderer/dirty"
)

// Step moves the cursor row by lines after a cursor motion of that many
// lines. When the row leaves the window the window slides along with it and
// a full redraw is required; otherwise nothing in the text area changed
// because of scrolling.
func (v *Viewport) Step(lines int) dirty.Directive {
	v.row += lines
	slid := false
	for v.row > v.height-1 {
		next, ok := v.buf.Next(v.top)
		if !ok {
			break
		}
		v.top = next
		v.frame++
		v.row--
		slid = true
	}
	for v.row < 0 {
		prev, ok := v.buf.Prev(v.top)
		if !ok {
			break
		}
		v.top = prev
		v.frame--
		v.row++
		slid = true
	}
	if slid {
		return dirty.Full()
	}
	return dirty.None
}

// Reveal moves the cursor row to the line lines away from the current
// cursor line if that line is already on screen. It reports false, leaving
// the viewport untouched, when the line lies outside the window.
func (v *Viewport) Reveal(lines int) bool {
	row := v.row + lines
	if row < 0 || row >= v.height {
		return false
	}
	if _, ok := v.LineAt(row); !ok {
		return false
	}
	v.row = row
	return true
}

// Jump recomputes the window so that target is visible, ideally on
// preferredRow. Near the start of the buffer the first line is pinned to the
// top row; near the end the last line is pinned to the bottom row, unless
// the whole buffer fits, in which case the first line stays on top.
func (v *Viewport) Jump(target buffer.Ref, preferredRow int) dirty.Directive {
	if !v.buf.Contains(target) {
		return dirty.None
	}
	last := v.height - 1

	above := 0
	for r := target; above < last; above++ {
		prev, ok := v.buf.Prev(r)
		if !ok {
			break
		}
		r = prev
	}
	below := 0
	for r := target; below < last; below++ {
		next, ok := v.buf.Next(r)
		if !ok {
			break
		}
		r = next
	}

	row := clamp(preferredRow, 0, last)
	if row > above {
		row = above
	} else if below < last-row {
		row = min(above, last-below)
	}

	top := target
	for i := 0; i < row; i++ {
		top, _ = v.buf.Prev(top)
	}

	v.top = top
	v.frame = v.buf.Index(top)
	v.row = row
	return dirty.Full()
}

// Resize changes the window height and refits it around cursorLine,
// keeping the cursor row where possible.
func (v *Viewport) Resize(cursorLine buffer.Ref, height int) dirty.Directive {
	if height < 1 {
		height = 1
	}
	v.height = height
	v.Jump(cursorLine, v.row)
	return dirty.Full()
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
