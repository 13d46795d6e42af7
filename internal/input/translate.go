package input

import "github.com/dshills/mte/internal/renderer/backend"

// Translate maps a backend event to an editor event.
func Translate(ev backend.Event) Event {
	switch ev.Type {
	case backend.EventKey:
		return translateKey(ev)
	case backend.EventResize:
		return Resize(ev.Width, ev.Height)
	case backend.EventInterrupt:
		return Event{Action: ActionInterrupt, Payload: ev.Payload}
	default:
		return Event{}
	}
}

func translateKey(ev backend.Event) Event {
	k := ev.Key
	if k == backend.KeyRune {
		if ev.Mod.Has(backend.ModCtrl) {
			// Some terminals report Ctrl+letter as the letter with a modifier.
			return ctrlLetter(ev.Rune)
		}
		if ev.Mod.Has(backend.ModAlt) || ev.Mod.Has(backend.ModMeta) {
			return Event{}
		}
		if ev.Rune >= 0x20 && ev.Rune < 0x7f {
			return Char(byte(ev.Rune))
		}
		if ev.Rune < 0x20 || ev.Rune == 0x7f {
			return ctrlLetter(ev.Rune ^ 0x40)
		}
		return Event{}
	}

	switch k {
	case backend.KeyLeft:
		return Key(ActionLeft)
	case backend.KeyRight:
		return Key(ActionRight)
	case backend.KeyUp:
		return Key(ActionUp)
	case backend.KeyDown:
		return Key(ActionDown)
	case backend.KeyHome, backend.KeyCtrlA:
		return Key(ActionHome)
	case backend.KeyEnd, backend.KeyCtrlE:
		return Key(ActionEnd)
	case backend.KeyBackspace:
		return Key(ActionDeleteLeft)
	case backend.KeyCtrlK:
		return Key(ActionKill)
	case backend.KeyEnter, backend.KeyCtrlJ:
		return Key(ActionNewline)
	case backend.KeyCtrlX, backend.KeyCtrlS:
		return Key(ActionSave)
	case backend.KeyTab:
		return Key(ActionCommand)
	case backend.KeyEscape:
		return Key(ActionCancel)
	case backend.KeyCtrlC:
		return Key(ActionQuit)
	default:
		return Event{}
	}
}

// ctrlLetter maps the letter of a Ctrl+letter chord to its action.
// The letter may be upper or lower case; '?' is DEL.
func ctrlLetter(r rune) Event {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	switch r {
	case 'A':
		return Key(ActionHome)
	case 'E':
		return Key(ActionEnd)
	case 'H', '?':
		return Key(ActionDeleteLeft)
	case 'I':
		return Key(ActionCommand)
	case 'J', 'M':
		return Key(ActionNewline)
	case 'K':
		return Key(ActionKill)
	case 'X', 'S':
		return Key(ActionSave)
	case 'C':
		return Key(ActionQuit)
	case '[':
		return Key(ActionCancel)
	default:
		return Event{}
	}
}
