// Package renderer provides the display layer for the mte editor.
//
// The screen is split into three areas:
//
//	┌─────────────────────────────────────────┐
//	│  text rows (one buffer line per row)    │
//	│  ...                                    │
//	├─────────────────────────────────────────┤
//	│                       file.txt:12:4:    │  status row (reverse video)
//	│ message or command line                 │  message row
//	└─────────────────────────────────────────┘
//
// The renderer does not decide what changed. Each edit session event
// produces a dirty.Directive and Render repaints accordingly: nothing,
// one text row, or the whole text area. The status and message rows are
// refreshed on every call.
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	r := renderer.New(term, renderer.DefaultOptions())
//	r.Render(session, dirty.Full())
package renderer
