package buffer

import (
	"errors"
	"reflect"
	"testing"

	"github.com/dshills/mte/internal/engine"
)

func TestNewBuffer(t *testing.T) {
	b := New()

	if b.Len() != 1 {
		t.Fatalf("expected 1 line, got %d", b.Len())
	}
	if b.Text(b.First()) != "" {
		t.Errorf("expected empty line, got %q", b.Text(b.First()))
	}
	if b.First() != b.Last() {
		t.Error("first and last should be the same line")
	}
}

func TestNewBufferLines(t *testing.T) {
	b := New("line1", "line2", "line3")

	if b.Len() != 3 {
		t.Fatalf("expected 3 lines, got %d", b.Len())
	}
	want := []string{"line1", "line2", "line3"}
	if got := b.Lines(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %q, got %q", want, got)
	}
	if b.String() != "line1\nline2\nline3" {
		t.Errorf("unexpected String(): %q", b.String())
	}
}

func TestBufferNavigation(t *testing.T) {
	b := New("a", "b", "c")

	r := b.First()
	var seen []string
	for {
		seen = append(seen, b.Text(r))
		next, ok := b.Next(r)
		if !ok {
			break
		}
		r = next
	}
	if !reflect.DeepEqual(seen, []string{"a", "b", "c"}) {
		t.Errorf("forward walk: got %q", seen)
	}
	if r != b.Last() {
		t.Error("walk should end at Last()")
	}

	if _, ok := b.Prev(b.First()); ok {
		t.Error("Prev of first line should not exist")
	}
	prev, ok := b.Prev(b.Last())
	if !ok || b.Text(prev) != "b" {
		t.Errorf("Prev of last: got %q ok=%v", b.Text(prev), ok)
	}
}

func TestBufferIndexAndAt(t *testing.T) {
	b := New("a", "b", "c")

	for i, want := range []string{"a", "b", "c"} {
		r, ok := b.At(i)
		if !ok {
			t.Fatalf("At(%d) failed", i)
		}
		if b.Text(r) != want {
			t.Errorf("At(%d) = %q, want %q", i, b.Text(r), want)
		}
		if b.Index(r) != i {
			t.Errorf("Index = %d, want %d", b.Index(r), i)
		}
	}

	if _, ok := b.At(3); ok {
		t.Error("At(3) should fail on a 3-line buffer")
	}
	if _, ok := b.At(-1); ok {
		t.Error("At(-1) should fail")
	}
	if b.Index(Ref{}) != -1 {
		t.Error("Index of zero Ref should be -1")
	}
}

func TestBufferInsertLines(t *testing.T) {
	b := New("b")
	mid := b.First()

	if _, err := b.InsertBefore(mid, "a"); err != nil {
		t.Fatalf("InsertBefore failed: %v", err)
	}
	if _, err := b.InsertAfter(mid, "c"); err != nil {
		t.Fatalf("InsertAfter failed: %v", err)
	}

	if got := b.Lines(); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("got %q", got)
	}
	if b.Text(mid) != "b" {
		t.Error("held reference should still point at its line")
	}
	if b.Index(mid) != 1 {
		t.Errorf("held reference index = %d, want 1", b.Index(mid))
	}
}

func TestBufferRemove(t *testing.T) {
	b := New("a", "b", "c")
	first := b.First()
	mid, _ := b.Next(first)
	last := b.Last()

	if err := b.Remove(mid); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if b.Contains(mid) {
		t.Error("removed reference should be stale")
	}
	if !b.Contains(first) || !b.Contains(last) {
		t.Error("neighbour references must survive removal")
	}
	next, _ := b.Next(first)
	if next != last {
		t.Error("first and last should now be adjacent")
	}

	if err := b.Remove(mid); !errors.Is(err, ErrStaleRef) {
		t.Errorf("removing twice: expected ErrStaleRef, got %v", err)
	}
}

func TestBufferRemoveLastLine(t *testing.T) {
	b := New("only")

	err := b.Remove(b.First())
	if !errors.Is(err, engine.ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
	if b.Len() != 1 || b.Text(b.First()) != "only" {
		t.Error("buffer must be unchanged")
	}
}

func TestBufferSplitAt(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		col   int
		left  string
		right string
	}{
		{"middle", "abcdef", 3, "abc", "def"},
		{"start", "abc", 0, "", "abc"},
		{"end", "abc", 3, "abc", ""},
		{"empty", "", 0, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New("before", tt.line, "after")
			r, _ := b.At(1)

			left, right, err := b.SplitAt(r, tt.col)
			if err != nil {
				t.Fatalf("SplitAt failed: %v", err)
			}
			if left != r {
				t.Error("left part must keep the original reference")
			}
			if b.Text(left) != tt.left || b.Text(right) != tt.right {
				t.Errorf("got %q|%q, want %q|%q", b.Text(left), b.Text(right), tt.left, tt.right)
			}
			want := []string{"before", tt.left, tt.right, "after"}
			if got := b.Lines(); !reflect.DeepEqual(got, want) {
				t.Errorf("lines = %q, want %q", got, want)
			}
		})
	}
}

func TestBufferSplitAtOutOfRange(t *testing.T) {
	b := New("abc")

	if _, _, err := b.SplitAt(b.First(), 4); !errors.Is(err, ErrColumnOutOfRange) {
		t.Errorf("col 4: expected ErrColumnOutOfRange, got %v", err)
	}
	if _, _, err := b.SplitAt(b.First(), -1); !errors.Is(err, ErrColumnOutOfRange) {
		t.Errorf("col -1: expected ErrColumnOutOfRange, got %v", err)
	}
	if b.Len() != 1 {
		t.Error("failed split must not change the buffer")
	}
}

func TestBufferSplitMergeRoundTrip(t *testing.T) {
	lines := []string{"", "x", "hello world", "\tindented line"}

	for _, text := range lines {
		for col := 0; col <= len(text); col++ {
			b := New(text, "tail")
			r := b.First()

			if _, _, err := b.SplitAt(r, col); err != nil {
				t.Fatalf("SplitAt(%q, %d) failed: %v", text, col, err)
			}
			if err := b.MergeWithNext(r); err != nil {
				t.Fatalf("MergeWithNext failed: %v", err)
			}
			if got := b.Lines(); !reflect.DeepEqual(got, []string{text, "tail"}) {
				t.Errorf("round trip of %q at %d gave %q", text, col, got)
			}
		}
	}
}

func TestBufferMergeWithNext(t *testing.T) {
	b := New("foo", "bar")
	first := b.First()
	second := b.Last()

	if err := b.MergeWithNext(first); err != nil {
		t.Fatalf("MergeWithNext failed: %v", err)
	}
	if got := b.Lines(); !reflect.DeepEqual(got, []string{"foobar"}) {
		t.Errorf("got %q", got)
	}
	if b.Contains(second) {
		t.Error("merged line should be stale")
	}

	if err := b.MergeWithNext(first); !errors.Is(err, engine.ErrNoOp) {
		t.Errorf("merging last line: expected ErrNoOp, got %v", err)
	}
}

func TestBufferInsertChar(t *testing.T) {
	b := New("ac")
	r := b.First()

	if err := b.InsertChar(r, 1, 'b'); err != nil {
		t.Fatalf("InsertChar failed: %v", err)
	}
	if err := b.InsertChar(r, 3, 'd'); err != nil {
		t.Fatalf("InsertChar at end failed: %v", err)
	}
	if err := b.InsertChar(r, 0, '>'); err != nil {
		t.Fatalf("InsertChar at start failed: %v", err)
	}
	if b.Text(r) != ">abcd" {
		t.Errorf("got %q", b.Text(r))
	}
	if err := b.InsertChar(r, 10, 'x'); !errors.Is(err, ErrColumnOutOfRange) {
		t.Errorf("expected ErrColumnOutOfRange, got %v", err)
	}
}

func TestBufferInsertText(t *testing.T) {
	b := New("world")
	r := b.First()

	if err := b.InsertText(r, 0, "hello "); err != nil {
		t.Fatalf("InsertText failed: %v", err)
	}
	if b.Text(r) != "hello world" {
		t.Errorf("got %q", b.Text(r))
	}
}

func TestBufferDeleteRange(t *testing.T) {
	b := New("hello world")
	r := b.First()

	if err := b.DeleteRange(r, 5, 11); err != nil {
		t.Fatalf("DeleteRange failed: %v", err)
	}
	if b.Text(r) != "hello" {
		t.Errorf("got %q", b.Text(r))
	}
	if err := b.DeleteRange(r, 0, 1); err != nil {
		t.Fatalf("DeleteRange failed: %v", err)
	}
	if b.Text(r) != "ello" {
		t.Errorf("got %q", b.Text(r))
	}
	if err := b.DeleteRange(r, 2, 2); !errors.Is(err, engine.ErrNoOp) {
		t.Errorf("empty range: expected ErrNoOp, got %v", err)
	}
	if err := b.DeleteRange(r, 3, 9); !errors.Is(err, ErrColumnOutOfRange) {
		t.Errorf("expected ErrColumnOutOfRange, got %v", err)
	}
}

func TestBufferForeignRef(t *testing.T) {
	a := New("a")
	b := New("b")

	if b.Contains(a.First()) {
		t.Error("buffer must not accept another buffer's reference")
	}
	if err := b.InsertChar(a.First(), 0, 'x'); !errors.Is(err, ErrStaleRef) {
		t.Errorf("expected ErrStaleRef, got %v", err)
	}
	if _, err := b.InsertAfter(Ref{}, "x"); !errors.Is(err, ErrStaleRef) {
		t.Errorf("zero ref: expected ErrStaleRef, got %v", err)
	}
	if a.Text(a.First()) != "a" {
		t.Error("foreign buffer must be untouched")
	}
}

func TestBufferSplitDoesNotAlias(t *testing.T) {
	b := New("abcdef")
	left, right, _ := b.SplitAt(b.First(), 3)

	if err := b.InsertChar(left, 3, 'X'); err != nil {
		t.Fatalf("InsertChar failed: %v", err)
	}
	if b.Text(right) != "def" {
		t.Errorf("appending to the left half changed the right half: %q", b.Text(right))
	}
}
