package input

import "fmt"

// Action identifies what an editor event asks for.
type Action uint8

const (
	// ActionNone is an event the editor ignores.
	ActionNone Action = iota
	// ActionInsert inserts Char at the cursor.
	ActionInsert
	ActionLeft
	ActionRight
	ActionUp
	ActionDown
	ActionHome
	ActionEnd
	// ActionDeleteLeft deletes the character left of the cursor.
	ActionDeleteLeft
	// ActionKill deletes from the cursor to the end of the line.
	ActionKill
	// ActionNewline splits the line, or confirms a command.
	ActionNewline
	ActionSave
	// ActionCommand opens the command prompt.
	ActionCommand
	// ActionCancel is Escape. It closes the command prompt.
	ActionCancel
	ActionQuit
	// ActionResize reports new screen dimensions in Width and Height.
	ActionResize
	// ActionInterrupt carries a Payload posted from outside the event loop.
	ActionInterrupt
)

var actionNames = [...]string{
	ActionNone:       "none",
	ActionInsert:     "insert",
	ActionLeft:       "left",
	ActionRight:      "right",
	ActionUp:         "up",
	ActionDown:       "down",
	ActionHome:       "home",
	ActionEnd:        "end",
	ActionDeleteLeft: "delete-left",
	ActionKill:       "kill",
	ActionNewline:    "newline",
	ActionSave:       "save",
	ActionCommand:    "command",
	ActionCancel:     "cancel",
	ActionQuit:       "quit",
	ActionResize:     "resize",
	ActionInterrupt:  "interrupt",
}

// String returns the action name.
func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// Event is a logical editor event.
type Event struct {
	Action Action

	// Char is the byte to insert for ActionInsert.
	Char byte

	// Width and Height are the screen size for ActionResize.
	Width, Height int

	// Payload is the value carried by ActionInterrupt.
	Payload any
}

// Key returns an event for action.
func Key(action Action) Event {
	return Event{Action: action}
}

// Char returns an insert event for ch.
func Char(ch byte) Event {
	return Event{Action: ActionInsert, Char: ch}
}

// Resize returns a resize event.
func Resize(width, height int) Event {
	return Event{Action: ActionResize, Width: width, Height: height}
}

// String returns a string representation of the event.
func (e Event) String() string {
	switch e.Action {
	case ActionInsert:
		return fmt.Sprintf("insert(%q)", e.Char)
	case ActionResize:
		return fmt.Sprintf("resize(%dx%d)", e.Width, e.Height)
	default:
		return e.Action.String()
	}
}
