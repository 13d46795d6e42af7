// Package statusline provides the status line and command line UI components.
package statusline

import (
	"strconv"

	"github.com/dshills/mte/internal/renderer/backend"
)

// StatusLine renders the two rows below the text area: the status row with
// the file position, and the message row that doubles as the command line.
type StatusLine struct {
	// Display state
	filename string // Path shown in the status row
	modified bool   // Buffer has unsaved changes
	line     int    // Current line (1-indexed for display)
	col      int    // Current column (1-indexed for display)

	// Command line state
	commandActive bool   // In command mode
	commandBuffer string // Command being typed
	commandCursor int    // Cursor position in command

	// Message display
	message string

	// Style configuration
	reverse bool

	// Dimensions
	width int
}

// New creates a new status line drawn in reverse video.
func New() *StatusLine {
	return &StatusLine{
		reverse: true,
		line:    1,
		col:     1,
	}
}

// SetReverse selects whether the status row is drawn in reverse video.
func (s *StatusLine) SetReverse(reverse bool) {
	s.reverse = reverse
}

// SetFilename updates the displayed filename.
func (s *StatusLine) SetFilename(filename string) {
	s.filename = filename
}

// SetModified updates the modified indicator.
func (s *StatusLine) SetModified(modified bool) {
	s.modified = modified
}

// SetPosition updates the cursor position (1-indexed).
func (s *StatusLine) SetPosition(line, col int) {
	s.line = line
	s.col = col
}

// SetCommandMode activates command line display.
func (s *StatusLine) SetCommandMode(active bool) {
	s.commandActive = active
	if !active {
		s.commandBuffer = ""
		s.commandCursor = 0
	}
}

// SetCommandBuffer updates the command being typed.
func (s *StatusLine) SetCommandBuffer(buffer string, cursor int) {
	s.commandBuffer = buffer
	s.commandCursor = cursor
}

// SetMessage displays a one-line message until the next event.
func (s *StatusLine) SetMessage(msg string) {
	s.message = msg
}

// Resize updates the status line width.
func (s *StatusLine) Resize(width int) {
	s.width = width
}

// Text returns the status text for the current state.
func (s *StatusLine) Text() string {
	return Format(s.filename, s.modified, s.line, s.col)
}

// Format returns the status text "path:line:col:", with " [+]" after the
// path while the buffer is modified.
func Format(path string, modified bool, line, col int) string {
	if modified {
		path += " [+]"
	}
	return path + ":" + strconv.Itoa(line) + ":" + strconv.Itoa(col) + ":"
}

// Height returns the number of rows the status line uses.
func (s *StatusLine) Height() int {
	return 2
}

// Render draws the status row at row and the message or command row below
// it. In command mode the cursor is placed on the command row.
func (s *StatusLine) Render(b backend.Backend, row int) {
	s.renderStatusBar(b, row)
	if s.commandActive {
		s.renderCommandLine(b, row+1)
	} else {
		s.renderMessage(b, row+1)
	}
}

// renderStatusBar renders the status text right-aligned across the row.
func (s *StatusLine) renderStatusBar(b backend.Backend, row int) {
	attr := backend.AttrNone
	if s.reverse {
		attr = backend.AttrReverse
	}

	text := s.Text()
	start := s.width - len(text)
	for x := 0; x < s.width; x++ {
		ch := ' '
		if i := x - start; i >= 0 {
			ch = Printable(text[i])
		}
		b.SetCell(x, row, backend.Cell{Rune: ch, Attr: attr})
	}
}

// renderCommandLine renders the command input line.
func (s *StatusLine) renderCommandLine(b backend.Backend, row int) {
	// The command buffer scrolls so that the cursor stays visible.
	offset := 0
	if s.width > 0 && s.commandCursor >= s.width {
		offset = s.commandCursor - s.width + 1
	}
	s.renderText(b, row, s.commandBuffer, offset)
	b.ShowCursor(s.commandCursor-offset, row)
}

// renderMessage renders a status message.
func (s *StatusLine) renderMessage(b backend.Backend, row int) {
	s.renderText(b, row, s.message, 0)
}

// renderText draws text left-aligned starting at offset and pads the row.
func (s *StatusLine) renderText(b backend.Backend, row int, text string, offset int) {
	for x := 0; x < s.width; x++ {
		ch := ' '
		if i := x + offset; i < len(text) {
			ch = Printable(text[i])
		}
		b.SetCell(x, row, backend.Cell{Rune: ch})
	}
}

// Printable returns c as a rune when it is printable ASCII and a space
// otherwise, so that one byte always occupies one screen column.
func Printable(c byte) rune {
	if c < 0x20 || c > 0x7e {
		return ' '
	}
	return rune(c)
}
