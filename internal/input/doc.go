// Package input turns raw terminal events into editor events.
//
// The editor has a fixed, single-keystroke key map:
//
//	Arrows          move the cursor
//	Ctrl-A / Home   start of line
//	Ctrl-E / End    end of line
//	Backspace       delete left (Ctrl-H and DEL too)
//	Ctrl-K          kill to end of line
//	Enter / Ctrl-J  split the line
//	Ctrl-X / Ctrl-S save
//	Tab / Ctrl-I    command prompt
//	Ctrl-C          quit
//
// Printable ASCII characters insert themselves. Everything else,
// including characters outside ASCII, is ignored.
//
// # Usage
//
//	ev := input.Translate(term.PollEvent())
//	res := session.Handle(ev)
package input
