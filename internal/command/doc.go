// Package command parses and applies the editor's line commands.
//
// A command is a single line typed at the command prompt. Its first
// character selects the action:
//   - /text  search forward for text
//   - ?text  search backward for text
//   - :N     go to line N (1-based)
//   - ^      go to the first line
//   - $      go to the last line
//
// Parse turns the input into an Intent. Run parses and applies it to a
// Target, which the edit session implements.
package command
