// Package prompt implements the one-line editor used for command entry.
package prompt

import "github.com/dshills/mte/internal/input"

// Outcome is the result of feeding an event to the prompt.
type Outcome uint8

const (
	// Editing means the prompt is still open.
	Editing Outcome = iota
	// Confirmed means the user pressed Enter; Text holds the command.
	Confirmed
	// Cancelled means the prompt was closed and its text discarded.
	Cancelled
)

// String returns a string representation of the outcome.
func (o Outcome) String() string {
	switch o {
	case Editing:
		return "editing"
	case Confirmed:
		return "confirmed"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Prompt is a single-line text editor. After a confirmed command the text
// is kept so the next Open shows it again with the cursor at column 0,
// where Ctrl-K clears it.
type Prompt struct {
	text   []byte
	cursor int
	active bool
}

// New creates an inactive, empty prompt.
func New() *Prompt {
	return &Prompt{}
}

// Open activates the prompt with the cursor at column 0.
func (p *Prompt) Open() {
	p.active = true
	p.cursor = 0
}

// Active reports whether the prompt is open.
func (p *Prompt) Active() bool {
	return p.active
}

// Text returns the current text.
func (p *Prompt) Text() string {
	return string(p.text)
}

// Cursor returns the cursor column.
func (p *Prompt) Cursor() int {
	return p.cursor
}

// Handle applies ev to the prompt. Keys without a meaning on the command
// line cancel it.
func (p *Prompt) Handle(ev input.Event) Outcome {
	if !p.active {
		return Cancelled
	}

	switch ev.Action {
	case input.ActionInsert:
		p.text = append(p.text, 0)
		copy(p.text[p.cursor+1:], p.text[p.cursor:])
		p.text[p.cursor] = ev.Char
		p.cursor++
	case input.ActionHome:
		p.cursor = 0
	case input.ActionEnd:
		p.cursor = len(p.text)
	case input.ActionKill:
		p.text = p.text[:p.cursor]
	case input.ActionLeft:
		if p.cursor > 0 {
			p.cursor--
		}
	case input.ActionRight:
		if p.cursor < len(p.text) {
			p.cursor++
		}
	case input.ActionDeleteLeft:
		if p.cursor > 0 {
			p.text = append(p.text[:p.cursor-1], p.text[p.cursor:]...)
			p.cursor--
		}
	case input.ActionNewline:
		p.active = false
		return Confirmed
	case input.ActionResize, input.ActionInterrupt, input.ActionNone:
		// Not keystrokes; the prompt stays open.
	default:
		p.active = false
		p.text = p.text[:0]
		p.cursor = 0
		return Cancelled
	}
	return Editing
}
