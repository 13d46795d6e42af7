package command

import (
	"errors"
	"fmt"

	"github.com/dshills/mte/internal/engine"
)

// Kind identifies the action of a command.
type Kind uint8

const (
	// KindSearchForward searches for Text after the cursor.
	KindSearchForward Kind = iota + 1
	// KindSearchBackward searches for Text before the cursor.
	KindSearchBackward
	// KindGotoLine moves to the 1-based Line.
	KindGotoLine
	// KindGotoStart moves to the first line.
	KindGotoStart
	// KindGotoEnd moves to the last line.
	KindGotoEnd
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindSearchForward:
		return "search-forward"
	case KindSearchBackward:
		return "search-backward"
	case KindGotoLine:
		return "goto-line"
	case KindGotoStart:
		return "goto-start"
	case KindGotoEnd:
		return "goto-end"
	default:
		return "unknown"
	}
}

// Intent is a parsed command.
type Intent struct {
	Kind Kind
	// Text is the search needle.
	Text string
	// Line is the requested 1-based line number.
	Line int
}

// String returns a string representation of the intent.
func (i Intent) String() string {
	switch i.Kind {
	case KindSearchForward, KindSearchBackward:
		return fmt.Sprintf("%s(%q)", i.Kind, i.Text)
	case KindGotoLine:
		return fmt.Sprintf("%s(%d)", i.Kind, i.Line)
	default:
		return i.Kind.String()
	}
}

// Target is the editor state a command acts on.
type Target interface {
	// LineCount returns the number of lines in the buffer.
	LineCount() int
	// SearchForward moves the cursor to the next occurrence of needle.
	SearchForward(needle string) error
	// SearchBackward moves the cursor to the previous occurrence of needle.
	SearchBackward(needle string) error
	// GotoLine moves the cursor to column 0 of the 1-based line n.
	GotoLine(n int) error
	// GotoStart moves the cursor to the first line.
	GotoStart() error
	// GotoEnd moves the cursor to the last line.
	GotoEnd() error
}

// Parse interprets a command line. Only the first character of ^ and $
// commands is significant.
func Parse(input string) (Intent, error) {
	if input == "" {
		return Intent{}, engine.ErrUnknownCommand
	}
	switch input[0] {
	case '/':
		return Intent{Kind: KindSearchForward, Text: input[1:]}, nil
	case '?':
		return Intent{Kind: KindSearchBackward, Text: input[1:]}, nil
	case ':':
		return Intent{Kind: KindGotoLine, Line: atoi(input[1:])}, nil
	case '^':
		return Intent{Kind: KindGotoStart}, nil
	case '$':
		return Intent{Kind: KindGotoEnd}, nil
	default:
		return Intent{}, engine.ErrUnknownCommand
	}
}

// Run parses input and applies it to t. Line numbers outside
// [1, LineCount] fail with engine.ErrInvalidLineNumber before t is touched.
func Run(t Target, input string) error {
	in, err := Parse(input)
	if err != nil {
		return err
	}
	return Apply(t, in)
}

// Apply applies a parsed intent to t.
func Apply(t Target, in Intent) error {
	switch in.Kind {
	case KindSearchForward:
		return t.SearchForward(in.Text)
	case KindSearchBackward:
		return t.SearchBackward(in.Text)
	case KindGotoLine:
		if in.Line < 1 || in.Line > t.LineCount() {
			return engine.ErrInvalidLineNumber
		}
		return t.GotoLine(in.Line)
	case KindGotoStart:
		return t.GotoStart()
	case KindGotoEnd:
		return t.GotoEnd()
	default:
		return engine.ErrUnknownCommand
	}
}

// Message returns the one-line user message for a command error, or ""
// for errors that are not reported.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, engine.ErrNotFound):
		return "Not found!"
	case errors.Is(err, engine.ErrInvalidLineNumber):
		return "Invalid line number!"
	case errors.Is(err, engine.ErrUnknownCommand):
		return "Unknown command!"
	default:
		return ""
	}
}
