package buffer

import (
	"container/list"
	"errors"
	"strings"

	"github.com/dshills/mte/internal/engine"
)

// Errors returned by buffer operations.
var (
	ErrColumnOutOfRange = errors.New("column out of range")
	ErrStaleRef         = errors.New("line reference is not part of this buffer")
)

// line is the payload stored in each list element.
type line struct {
	text  []byte
	owner *Buffer
}

// Ref is a stable handle to a line. It stays valid while other lines are
// inserted or removed and becomes stale only when its own line is removed.
// The zero Ref refers to no line.
type Ref struct {
	e *list.Element
}

// IsZero reports whether r refers to no line at all.
func (r Ref) IsZero() bool {
	return r.e == nil
}

// Buffer is an ordered, never-empty sequence of lines.
type Buffer struct {
	lines *list.List
}

// New creates a buffer holding the given lines.
// A buffer always has at least one line, so New() yields a single empty line.
func New(lines ...string) *Buffer {
	b := &Buffer{lines: list.New()}
	for _, s := range lines {
		b.lines.PushBack(&line{text: []byte(s), owner: b})
	}
	if b.lines.Len() == 0 {
		b.lines.PushBack(&line{owner: b})
	}
	return b
}

// Read Operations

// Len returns the number of lines.
func (b *Buffer) Len() int {
	return b.lines.Len()
}

// First returns the first line.
func (b *Buffer) First() Ref {
	return Ref{b.lines.Front()}
}

// Last returns the last line.
func (b *Buffer) Last() Ref {
	return Ref{b.lines.Back()}
}

// Next returns the line after r. ok is false if r is the last line.
func (b *Buffer) Next(r Ref) (next Ref, ok bool) {
	if !b.Contains(r) {
		return Ref{}, false
	}
	if n := r.e.Next(); n != nil {
		return Ref{n}, true
	}
	return Ref{}, false
}

// Prev returns the line before r. ok is false if r is the first line.
func (b *Buffer) Prev(r Ref) (prev Ref, ok bool) {
	if !b.Contains(r) {
		return Ref{}, false
	}
	if p := r.e.Prev(); p != nil {
		return Ref{p}, true
	}
	return Ref{}, false
}

// Contains reports whether r refers to a line currently in b.
func (b *Buffer) Contains(r Ref) bool {
	if r.e == nil {
		return false
	}
	l, ok := r.e.Value.(*line)
	return ok && l.owner == b
}

// Text returns the content of line r, or "" for a stale reference.
func (b *Buffer) Text(r Ref) string {
	l := b.get(r)
	if l == nil {
		return ""
	}
	return string(l.text)
}

// LineLen returns the length of line r in bytes.
func (b *Buffer) LineLen(r Ref) int {
	l := b.get(r)
	if l == nil {
		return 0
	}
	return len(l.text)
}

// Index returns the 0-based position of r in the buffer, or -1.
// It walks the list from the front and is meant for display and commands,
// never for addressing.
func (b *Buffer) Index(r Ref) int {
	if !b.Contains(r) {
		return -1
	}
	i := 0
	for e := b.lines.Front(); e != nil; e = e.Next() {
		if e == r.e {
			return i
		}
		i++
	}
	return -1
}

// At returns the line at 0-based index i.
func (b *Buffer) At(i int) (Ref, bool) {
	if i < 0 || i >= b.lines.Len() {
		return Ref{}, false
	}
	e := b.lines.Front()
	for ; i > 0; i-- {
		e = e.Next()
	}
	return Ref{e}, true
}

// Lines returns a copy of every line's text in document order.
func (b *Buffer) Lines() []string {
	out := make([]string, 0, b.lines.Len())
	for e := b.lines.Front(); e != nil; e = e.Next() {
		out = append(out, string(e.Value.(*line).text)) //nolint:errcheck // list only contains *line
	}
	return out
}

// String returns the buffer joined with newlines.
func (b *Buffer) String() string {
	return strings.Join(b.Lines(), "\n")
}

// Write Operations

// InsertAfter inserts a new line holding text right after r.
func (b *Buffer) InsertAfter(r Ref, text string) (Ref, error) {
	if !b.Contains(r) {
		return Ref{}, ErrStaleRef
	}
	return Ref{b.lines.InsertAfter(&line{text: []byte(text), owner: b}, r.e)}, nil
}

// InsertBefore inserts a new line holding text right before r.
func (b *Buffer) InsertBefore(r Ref, text string) (Ref, error) {
	if !b.Contains(r) {
		return Ref{}, ErrStaleRef
	}
	return Ref{b.lines.InsertBefore(&line{text: []byte(text), owner: b}, r.e)}, nil
}

// Remove deletes line r. Removing the only line fails with
// engine.ErrInvalidState; the buffer never becomes empty.
func (b *Buffer) Remove(r Ref) error {
	l := b.get(r)
	if l == nil {
		return ErrStaleRef
	}
	if b.lines.Len() == 1 {
		return engine.ErrInvalidState
	}
	b.lines.Remove(r.e)
	l.owner = nil
	return nil
}

// SplitAt cuts line r at col. The prefix [0,col) stays in r and the rest
// becomes a new line right after it.
func (b *Buffer) SplitAt(r Ref, col int) (left, right Ref, err error) {
	l := b.get(r)
	if l == nil {
		return Ref{}, Ref{}, ErrStaleRef
	}
	if col < 0 || col > len(l.text) {
		return Ref{}, Ref{}, ErrColumnOutOfRange
	}
	tail := &line{text: append([]byte(nil), l.text[col:]...), owner: b}
	l.text = l.text[:col:col]
	return r, Ref{b.lines.InsertAfter(tail, r.e)}, nil
}

// MergeWithNext appends the following line to r and removes it.
// It returns engine.ErrNoOp if r is the last line.
func (b *Buffer) MergeWithNext(r Ref) error {
	l := b.get(r)
	if l == nil {
		return ErrStaleRef
	}
	n := r.e.Next()
	if n == nil {
		return engine.ErrNoOp
	}
	nl := n.Value.(*line) //nolint:errcheck // list only contains *line
	l.text = append(l.text, nl.text...)
	b.lines.Remove(n)
	nl.owner = nil
	return nil
}

// InsertChar inserts ch before column col of line r.
func (b *Buffer) InsertChar(r Ref, col int, ch byte) error {
	l := b.get(r)
	if l == nil {
		return ErrStaleRef
	}
	if col < 0 || col > len(l.text) {
		return ErrColumnOutOfRange
	}
	l.text = append(l.text, 0)
	copy(l.text[col+1:], l.text[col:])
	l.text[col] = ch
	return nil
}

// InsertText inserts s before column col of line r.
func (b *Buffer) InsertText(r Ref, col int, s string) error {
	l := b.get(r)
	if l == nil {
		return ErrStaleRef
	}
	if col < 0 || col > len(l.text) {
		return ErrColumnOutOfRange
	}
	text := make([]byte, 0, len(l.text)+len(s))
	text = append(text, l.text[:col]...)
	text = append(text, s...)
	l.text = append(text, l.text[col:]...)
	return nil
}

// DeleteRange removes bytes [start,end) from line r.
func (b *Buffer) DeleteRange(r Ref, start, end int) error {
	l := b.get(r)
	if l == nil {
		return ErrStaleRef
	}
	if start < 0 || end > len(l.text) || start > end {
		return ErrColumnOutOfRange
	}
	if start == end {
		return engine.ErrNoOp
	}
	l.text = append(l.text[:start], l.text[end:]...)
	return nil
}

// get returns the payload of r if it belongs to b.
func (b *Buffer) get(r Ref) *line {
	if r.e == nil {
		return nil
	}
	l, ok := r.e.Value.(*line)
	if !ok || l.owner != b {
		return nil
	}
	return l
}
