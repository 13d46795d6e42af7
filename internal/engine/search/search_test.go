package search

import (
	"testing"

	"github.com/dshills/mte/internal/engine/buffer"
)

func at(t *testing.T, b *buffer.Buffer, line, col int) Anchor {
	t.Helper()
	r, ok := b.At(line)
	if !ok {
		t.Fatalf("no line %d", line)
	}
	return Anchor{Line: r, Col: col}
}

func TestForward(t *testing.T) {
	b := buffer.New("foo bar foo", "nothing", "more foo")

	tests := []struct {
		name     string
		line     int
		col      int
		needle   string
		wantLine int
		wantCol  int
		wantDist int
		found    bool
	}{
		{"same line", 0, 0, "foo", 0, 8, 0, true},
		{"anchor itself skipped", 0, 8, "foo", 2, 5, 2, true},
		{"before anchor on line", 0, 1, "bar", 0, 4, 0, true},
		{"next line from column zero", 1, 0, "more", 2, 0, 1, true},
		{"no wrap", 2, 5, "foo", 0, 0, 0, false},
		{"missing", 0, 0, "xyz", 0, 0, 0, false},
		{"empty needle", 0, 0, "", 0, 0, 0, false},
		{"anchor at eol", 0, 11, "more", 2, 0, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := Forward(b, at(t, b, tt.line, tt.col), tt.needle)
			if ok != tt.found {
				t.Fatalf("found = %v, want %v", ok, tt.found)
			}
			if !ok {
				return
			}
			if b.Index(m.Line) != tt.wantLine || m.Col != tt.wantCol || m.Lines != tt.wantDist {
				t.Errorf("got line %d col %d dist %d, want %d %d %d",
					b.Index(m.Line), m.Col, m.Lines, tt.wantLine, tt.wantCol, tt.wantDist)
			}
		})
	}
}

func TestBackward(t *testing.T) {
	b := buffer.New("foo bar foo", "nothing", "more foo")

	tests := []struct {
		name     string
		line     int
		col      int
		needle   string
		wantLine int
		wantCol  int
		wantDist int
		found    bool
	}{
		{"same line", 0, 10, "foo", 0, 8, 0, true},
		{"anchor itself skipped", 0, 8, "foo", 0, 0, 0, true},
		{"previous line", 2, 5, "nothing", 1, 0, -1, true},
		{"column zero starts at previous line", 2, 0, "foo", 0, 8, -2, true},
		{"no wrap", 0, 0, "foo", 0, 0, 0, false},
		{"first match only before anchor", 0, 1, "oo", 0, 0, 0, false},
		{"match starting one before anchor", 0, 2, "oo", 0, 1, 0, true},
		{"empty needle", 2, 5, "", 0, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := Backward(b, at(t, b, tt.line, tt.col), tt.needle)
			if ok != tt.found {
				t.Fatalf("found = %v, want %v", ok, tt.found)
			}
			if !ok {
				return
			}
			if b.Index(m.Line) != tt.wantLine || m.Col != tt.wantCol || m.Lines != tt.wantDist {
				t.Errorf("got line %d col %d dist %d, want %d %d %d",
					b.Index(m.Line), m.Col, m.Lines, tt.wantLine, tt.wantCol, tt.wantDist)
			}
		})
	}
}

func TestForwardRepeatAdvances(t *testing.T) {
	b := buffer.New("aaaa", "x aa")
	a := Anchor{Line: b.First(), Col: 0}

	var got [][2]int
	for {
		m, ok := Forward(b, a, "aa")
		if !ok {
			break
		}
		if m.Line == a.Line && m.Col == a.Col {
			t.Fatalf("search returned its own anchor at col %d", m.Col)
		}
		got = append(got, [2]int{b.Index(m.Line), m.Col})
		a = Anchor{Line: m.Line, Col: m.Col}
	}

	// Overlapping occurrences are found one column apart.
	want := [][2]int{{0, 1}, {0, 2}, {1, 2}}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("match %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSearchDoesNotMutate(t *testing.T) {
	b := buffer.New("abc", "def")
	before := b.String()

	Forward(b, Anchor{Line: b.First()}, "e")
	Backward(b, Anchor{Line: b.Last(), Col: 3}, "b")

	if b.String() != before {
		t.Error("search must not modify the buffer")
	}
}

func TestSearchStaleAnchor(t *testing.T) {
	b := buffer.New("abc", "abc")
	other := buffer.New("abc")

	if _, ok := Forward(b, Anchor{Line: other.First()}, "b"); ok {
		t.Error("anchor from another buffer should not match")
	}
	if _, ok := Backward(b, Anchor{}, "b"); ok {
		t.Error("zero anchor should not match")
	}
}
