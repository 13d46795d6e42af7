// Package search provides plain substring search over a line buffer.
//
// Both directions are pure functions of the anchor, the needle and the
// buffer contents. Neither wraps around the ends of the buffer, and an
// empty needle never matches.
package search

import (
	"strings"

	"github.com/dshills/mte/internal/engine/buffer"
)

// Anchor is the position a search starts from.
type Anchor struct {
	Line buffer.Ref
	Col  int
}

// Match is the position of a found needle.
type Match struct {
	Line buffer.Ref
	Col  int
	// Lines is the signed number of lines between the anchor and the match.
	Lines int
}

// Forward returns the first match strictly after the anchor.
// On the anchor line the scan starts at Col+1, so repeating a search from
// its own result moves on to the next occurrence.
func Forward(b *buffer.Buffer, at Anchor, needle string) (Match, bool) {
	if needle == "" || !b.Contains(at.Line) {
		return Match{}, false
	}

	start := at.Col + 1
	dist := 0
	for r, ok := at.Line, true; ok; r, ok = b.Next(r) {
		text := b.Text(r)
		if start <= len(text) {
			if i := strings.Index(text[start:], needle); i >= 0 {
				return Match{Line: r, Col: start + i, Lines: dist}, true
			}
		}
		start = 0
		dist++
	}
	return Match{}, false
}

// Backward returns the nearest match strictly before the anchor.
// On the anchor line only matches starting at Col-1 or earlier count; with
// Col == 0 the scan begins with the whole previous line.
func Backward(b *buffer.Buffer, at Anchor, needle string) (Match, bool) {
	if needle == "" || !b.Contains(at.Line) {
		return Match{}, false
	}

	r, ok := at.Line, true
	dist := 0
	limit := at.Col - 1
	if at.Col == 0 {
		r, ok = b.Prev(r)
		dist = -1
		limit = -1
	}
	for ; ok; r, ok = b.Prev(r) {
		text := b.Text(r)
		if i := lastIndexFrom(text, needle, limit); i >= 0 {
			return Match{Line: r, Col: i, Lines: dist}, true
		}
		limit = -1
		dist--
	}
	return Match{}, false
}

// lastIndexFrom returns the last index <= from at which needle starts in
// text. A negative from means no upper bound.
func lastIndexFrom(text, needle string, from int) int {
	if from < 0 {
		return strings.LastIndex(text, needle)
	}
	end := from + len(needle)
	if end > len(text) {
		end = len(text)
	}
	return strings.LastIndex(text[:end], needle)
}
