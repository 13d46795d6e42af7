package renderer

import (
	"github.com/dshills/mte/internal/renderer/backend"
	"github.com/dshills/mte/internal/renderer/dirty"
	"github.com/dshills/mte/internal/renderer/statusline"
)

// Frame is the editor state a render pass reads.
type Frame interface {
	// VisibleLines returns the text of the lines in the window, top first.
	VisibleLines() []string

	// CursorScreen returns the cursor's text row and byte column.
	CursorScreen() (row, col int)

	// Position returns the 1-based cursor line and column.
	Position() (line, col int)

	// Path returns the file path shown in the status row.
	Path() string

	// Modified reports whether the buffer has unsaved changes.
	Modified() bool

	// Message returns the message for the message row.
	Message() string

	// Prompt returns the command line text and cursor while command
	// entry is active.
	Prompt() (text string, cursor int, active bool)
}

// Options configures the renderer.
type Options struct {
	// ReverseStatus draws the status row in reverse video.
	ReverseStatus bool
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{
		ReverseStatus: true,
	}
}

// Renderer draws frames onto a backend.
type Renderer struct {
	backend backend.Backend
	status  *statusline.StatusLine

	width  int
	height int

	frameCount uint64
}

// New creates a new renderer with the given backend and options.
func New(b backend.Backend, opts Options) *Renderer {
	width, height := b.Size()
	r := &Renderer{
		backend: b,
		status:  statusline.New(),
	}
	r.status.SetReverse(opts.ReverseStatus)
	r.Resize(width, height)
	return r
}

// SetOptions applies new options. The next full render shows them.
func (r *Renderer) SetOptions(opts Options) {
	r.status.SetReverse(opts.ReverseStatus)
}

// Resize updates the screen dimensions.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
	r.status.Resize(width)
}

// Size returns the screen dimensions.
func (r *Renderer) Size() (width, height int) {
	return r.width, r.height
}

// TextHeight returns the number of text rows: the screen height minus the
// status and message rows, at least 1.
func (r *Renderer) TextHeight() int {
	return TextHeight(r.height)
}

// TextHeight returns the number of text rows for a screen of the given
// height.
func TextHeight(screenHeight int) int {
	if h := screenHeight - 2; h > 1 {
		return h
	}
	return 1
}

// FrameCount returns the number of completed render passes.
func (r *Renderer) FrameCount() uint64 {
	return r.frameCount
}

// Render repaints the text area as d requires, refreshes the status and
// message rows, places the cursor and flushes the screen.
func (r *Renderer) Render(f Frame, d dirty.Directive) {
	textHeight := r.TextHeight()

	switch d.Kind {
	case dirty.KindFull:
		lines := f.VisibleLines()
		for row := 0; row < textHeight; row++ {
			text := ""
			if row < len(lines) {
				text = lines[row]
			}
			r.renderLine(row, text)
		}
	case dirty.KindRow:
		if d.Row >= 0 && d.Row < textHeight {
			lines := f.VisibleLines()
			text := ""
			if d.Row < len(lines) {
				text = lines[d.Row]
			}
			r.renderLine(d.Row, text)
		}
	}

	line, col := f.Position()
	r.status.SetFilename(f.Path())
	r.status.SetModified(f.Modified())
	r.status.SetPosition(line, col)
	r.status.SetMessage(f.Message())

	text, cursor, active := f.Prompt()
	r.status.SetCommandMode(active)
	if active {
		r.status.SetCommandBuffer(text, cursor)
	}
	r.status.Render(r.backend, textHeight)

	if !active {
		r.renderCursor(f)
	}

	r.backend.Show()
	r.frameCount++
}

// renderLine draws text on a text row and pads the rest of the row.
func (r *Renderer) renderLine(row int, text string) {
	for x := 0; x < r.width; x++ {
		ch := ' '
		if x < len(text) {
			ch = statusline.Printable(text[x])
		}
		r.backend.SetCell(x, row, backend.Cell{Rune: ch})
	}
}

// renderCursor places the hardware cursor at the edit cursor. Columns past
// the right edge are pinned to the last column.
func (r *Renderer) renderCursor(f Frame) {
	row, col := f.CursorScreen()
	if col >= r.width {
		col = r.width - 1
	}
	if col < 0 {
		col = 0
	}
	r.backend.ShowCursor(col, row)
}
