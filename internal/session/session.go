package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/mte/internal/command"
	"github.com/dshills/mte/internal/engine"
	"github.com/dshills/mte/internal/engine/buffer"
	"github.com/dshills/mte/internal/engine/cursor"
	"github.com/dshills/mte/internal/filestore"
	"github.com/dshills/mte/internal/input"
	"github.com/dshills/mte/internal/input/prompt"
	"github.com/dshills/mte/internal/renderer"
	"github.com/dshills/mte/internal/renderer/dirty"
	"github.com/dshills/mte/internal/renderer/viewport"
)

// Messages shown on the message row.
const (
	MsgSaved      = "Saved."
	MsgSaveFailed = "Save failed: "
)

// ErrNoPersister is reported when saving without a configured persister.
var ErrNoPersister = errors.New("no persister configured")

// Result is the outcome of one event.
type Result struct {
	// Redraw is the repaint the text area needs.
	Redraw dirty.Directive
	// Message is shown on the message row until the next event.
	Message string
	// Quit asks the editor to exit.
	Quit bool
}

// Session is a single editing session over one document.
type Session struct {
	path            string
	trailingNewline bool
	modified        bool

	buf  *buffer.Buffer
	cur  cursor.Cursor
	view *viewport.Viewport

	prompt  *prompt.Prompt
	message string

	// Repaint requested by the command being run.
	cmdRedraw dirty.Directive

	autoIndent      bool
	indentChars     string
	persister       Persister
	logger          Logger
	ctx             context.Context
	checkInvariants bool
}

// Ensure Session satisfies the interfaces it is driven through.
var (
	_ renderer.Frame = (*Session)(nil)
	_ command.Target = (*Session)(nil)
)

// New creates a session editing doc with a text area of the given height.
// The cursor starts at column 0 of the first line.
func New(doc *filestore.Document, height int, opts ...Option) *Session {
	buf := buffer.New(doc.Lines...)
	s := &Session{
		path:            doc.Path,
		trailingNewline: doc.TrailingNewline,
		buf:             buf,
		cur:             cursor.Start(buf),
		view:            viewport.New(buf, height),
		prompt:          prompt.New(),
		autoIndent:      true,
		indentChars:     DefaultIndentChars,
		logger:          nopLogger{},
		ctx:             context.Background(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetAutoIndent changes the auto-indent settings of a running session.
func (s *Session) SetAutoIndent(enabled bool, chars string) {
	s.autoIndent = enabled
	s.indentChars = chars
}

// Buffer returns the line buffer.
func (s *Session) Buffer() *buffer.Buffer {
	return s.buf
}

// Cursor returns the cursor.
func (s *Session) Cursor() cursor.Cursor {
	return s.cur
}

// Viewport returns the viewport.
func (s *Session) Viewport() *viewport.Viewport {
	return s.view
}

// Handle applies one event.
func (s *Session) Handle(ev input.Event) Result {
	var res Result
	if s.prompt.Active() {
		res = s.handlePrompt(ev)
	} else {
		res = s.handle(ev)
	}

	s.cur = s.cur.Clamp(s.buf)
	s.message = res.Message
	if s.checkInvariants {
		s.verify(ev)
	}
	return res
}

func (s *Session) handle(ev input.Event) Result {
	switch ev.Action {
	case input.ActionLeft:
		return s.navigate(s.cur.Left(s.buf))
	case input.ActionRight:
		return s.navigate(s.cur.Right(s.buf))
	case input.ActionUp:
		return s.navigate(s.cur.Up(s.buf))
	case input.ActionDown:
		return s.navigate(s.cur.Down(s.buf))
	case input.ActionHome:
		return s.navigate(s.cur.Home(), nil)
	case input.ActionEnd:
		return s.navigate(s.cur.End(s.buf), nil)
	case input.ActionInsert:
		return s.insert(ev.Char)
	case input.ActionDeleteLeft:
		return s.deleteLeft()
	case input.ActionKill:
		return s.kill()
	case input.ActionNewline:
		return s.split()
	case input.ActionSave:
		return s.save()
	case input.ActionCommand:
		s.prompt.Open()
		return Result{}
	case input.ActionQuit:
		return Result{Quit: true}
	case input.ActionResize:
		return Result{Redraw: s.view.Resize(s.cur.Line, renderer.TextHeight(ev.Height))}
	default:
		return Result{}
	}
}

func (s *Session) navigate(m cursor.Move, err error) Result {
	if err != nil {
		// Only engine.ErrAtBoundary is possible and it is silent.
		return Result{}
	}
	s.cur = m.To
	return Result{Redraw: s.view.Step(m.Lines)}
}

func (s *Session) insert(ch byte) Result {
	if err := s.buf.InsertChar(s.cur.Line, s.cur.Col, ch); err != nil {
		return s.invalid("insert", err)
	}
	s.cur.Col++
	s.modified = true
	return Result{Redraw: dirty.Row(s.view.CursorRow())}
}

func (s *Session) deleteLeft() Result {
	if s.cur.Col > 0 {
		if err := s.buf.DeleteRange(s.cur.Line, s.cur.Col-1, s.cur.Col); err != nil {
			return s.invalid("delete", err)
		}
		s.cur.Col--
		s.modified = true
		return Result{Redraw: dirty.Row(s.view.CursorRow())}
	}

	prev, ok := s.buf.Prev(s.cur.Line)
	if !ok {
		return Result{}
	}
	col := s.buf.LineLen(prev)
	// Step first: the window may still start at the line being merged away.
	redraw := s.view.Step(-1)
	if err := s.buf.MergeWithNext(prev); err != nil {
		return s.invalid("join", err)
	}
	s.cur = cursor.New(prev, col)
	s.modified = true
	return Result{Redraw: redraw.Merge(dirty.Full())}
}

func (s *Session) kill() Result {
	n := s.buf.LineLen(s.cur.Line)
	if s.cur.Col < n {
		if err := s.buf.DeleteRange(s.cur.Line, s.cur.Col, n); err != nil {
			return s.invalid("kill", err)
		}
		s.modified = true
		return Result{Redraw: dirty.Row(s.view.CursorRow())}
	}

	err := s.buf.MergeWithNext(s.cur.Line)
	if errors.Is(err, engine.ErrNoOp) {
		return Result{}
	}
	if err != nil {
		return s.invalid("kill", err)
	}
	s.modified = true
	return Result{Redraw: dirty.Full()}
}

func (s *Session) split() Result {
	indent := ""
	if s.autoIndent {
		indent = s.indent(s.buf.Text(s.cur.Line), s.cur.Col)
	}

	_, right, err := s.buf.SplitAt(s.cur.Line, s.cur.Col)
	if err != nil {
		return s.invalid("split", err)
	}
	if indent != "" {
		if err := s.buf.InsertText(right, 0, indent); err != nil {
			return s.invalid("indent", err)
		}
	}
	s.cur = cursor.New(right, len(indent))
	s.modified = true
	return Result{Redraw: s.view.Step(1).Merge(dirty.Full())}
}

// indent returns the leading blanks of text, at most col bytes long, so
// that splitting inside the indentation does not duplicate it.
func (s *Session) indent(text string, col int) string {
	n := 0
	for n < len(text) && n < col && strings.IndexByte(s.indentChars, text[n]) >= 0 {
		n++
	}
	return text[:n]
}

func (s *Session) save() Result {
	if s.persister == nil {
		return Result{Message: MsgSaveFailed + ErrNoPersister.Error()}
	}
	if err := s.persister.Save(s.ctx, s.path, s.buf.Lines(), s.trailingNewline); err != nil {
		s.logger.Error("save %s failed: %v", s.path, err)
		return Result{Message: MsgSaveFailed + err.Error()}
	}
	s.modified = false
	s.logger.Info("saved %s (%d lines)", s.path, s.buf.Len())
	return Result{Message: MsgSaved}
}

// invalid reports an operation that the buffer rejected although the
// session state said it was valid.
func (s *Session) invalid(op string, err error) Result {
	s.logger.Error("invalid state during %s: %v", op, err)
	return Result{}
}

func (s *Session) handlePrompt(ev input.Event) Result {
	switch s.prompt.Handle(ev) {
	case prompt.Confirmed:
		text := s.prompt.Text()
		s.cmdRedraw = dirty.None
		err := command.Run(s, text)
		if err != nil {
			s.logger.Debug("command %q: %v", text, err)
		}
		return Result{Redraw: s.cmdRedraw, Message: command.Message(err)}
	case prompt.Editing:
		if ev.Action == input.ActionResize {
			return Result{Redraw: s.view.Resize(s.cur.Line, renderer.TextHeight(ev.Height))}
		}
		return Result{}
	default:
		return Result{}
	}
}

// verify logs any broken cursor or viewport invariant.
func (s *Session) verify(ev input.Event) {
	if !s.cur.Valid(s.buf) {
		s.logger.Error("after %s: cursor %s outside its line", ev, s.cur)
	}
	if err := s.view.Check(s.cur.Line); err != nil {
		s.logger.Error("after %s: %v", ev, err)
	}
}

// Invariant returns an error if the cursor or viewport invariant is broken.
func (s *Session) Invariant() error {
	if !s.cur.Valid(s.buf) {
		return fmt.Errorf("%w: cursor column %d past line length %d",
			engine.ErrInvalidState, s.cur.Col, s.buf.LineLen(s.cur.Line))
	}
	return s.view.Check(s.cur.Line)
}
