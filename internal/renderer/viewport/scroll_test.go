package viewport

import (
	"math/rand/v2"
	"testing"

	"github.com/dshills/mte/internal/renderer/dirty"
)

func TestStepWithinWindow(t *testing.T) {
	b := numbered(10)
	v := New(b, 5)

	if d := v.Step(1); !d.IsNone() {
		t.Errorf("step inside window: expected none, got %s", d)
	}
	if v.CursorRow() != 1 || v.FrameOffset() != 0 {
		t.Errorf("unexpected state %s", v)
	}
	if err := v.Check(lineAt(t, b, 1)); err != nil {
		t.Error(err)
	}
}

func TestStepScrollsDown(t *testing.T) {
	b := numbered(10)
	v := New(b, 3)

	v.Step(1)
	v.Step(1)
	d := v.Step(1)
	if !d.IsFull() {
		t.Fatalf("leaving the bottom row should require a full redraw, got %s", d)
	}
	if v.CursorRow() != 2 || v.FrameOffset() != 1 {
		t.Errorf("expected row 2 frame 1, got %s", v)
	}
	if err := v.Check(lineAt(t, b, 3)); err != nil {
		t.Error(err)
	}
}

func TestStepScrollsUp(t *testing.T) {
	b := numbered(10)
	v := New(b, 3)
	v.Jump(lineAt(t, b, 5), 0)

	d := v.Step(-1)
	if !d.IsFull() {
		t.Fatalf("leaving the top row should require a full redraw, got %s", d)
	}
	if v.CursorRow() != 0 || v.FrameOffset() != 4 {
		t.Errorf("expected row 0 frame 4, got %s", v)
	}
	if err := v.Check(lineAt(t, b, 4)); err != nil {
		t.Error(err)
	}
}

func TestJump(t *testing.T) {
	tests := []struct {
		name      string
		lines     int
		height    int
		target    int
		preferred int
		wantRow   int
		wantFrame int
	}{
		{"middle keeps preferred row", 100, 10, 50, 3, 3, 47},
		{"start pins first line", 100, 10, 2, 5, 2, 0},
		{"end pins last line", 100, 10, 99, 3, 9, 90},
		{"near end", 100, 10, 97, 3, 7, 90},
		{"short buffer keeps first line on top", 3, 10, 2, 0, 2, 0},
		{"preferred row clamped", 100, 10, 50, 40, 9, 41},
		{"negative preferred row", 100, 10, 50, -3, 0, 50},
		{"single row window", 5, 1, 3, 0, 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := numbered(tt.lines)
			v := New(b, tt.height)
			target := lineAt(t, b, tt.target)

			d := v.Jump(target, tt.preferred)
			if !d.IsFull() {
				t.Errorf("Jump should require a full redraw, got %s", d)
			}
			if v.CursorRow() != tt.wantRow || v.FrameOffset() != tt.wantFrame {
				t.Errorf("got row %d frame %d, want row %d frame %d",
					v.CursorRow(), v.FrameOffset(), tt.wantRow, tt.wantFrame)
			}
			if err := v.Check(target); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestReveal(t *testing.T) {
	b := numbered(20)
	v := New(b, 5)
	v.Step(1)

	if !v.Reveal(2) {
		t.Fatal("line on screen should be revealed in place")
	}
	if v.CursorRow() != 3 || v.FrameOffset() != 0 {
		t.Errorf("expected row 3 frame 0, got %s", v)
	}
	if v.Reveal(2) {
		t.Error("line below the window should not be revealed in place")
	}
	if v.Reveal(-4) {
		t.Error("line above the window should not be revealed in place")
	}
	if v.CursorRow() != 3 {
		t.Error("failed reveal must not move the row")
	}

	short := New(numbered(2), 5)
	if short.Reveal(3) {
		t.Error("row past the end of the buffer should not be revealed")
	}
}

func TestResize(t *testing.T) {
	b := numbered(50)
	v := New(b, 10)
	cursor := lineAt(t, b, 20)
	v.Jump(cursor, 8)

	if d := v.Resize(cursor, 4); d.Kind != dirty.KindFull {
		t.Errorf("Resize should require a full redraw, got %s", d)
	}
	if v.Height() != 4 || v.CursorRow() != 3 {
		t.Errorf("expected height 4 row 3, got %s", v)
	}
	if err := v.Check(cursor); err != nil {
		t.Error(err)
	}

	v.Resize(cursor, 20)
	if v.CursorRow() != 3 {
		t.Errorf("growing the window should keep the row, got %d", v.CursorRow())
	}
	if err := v.Check(cursor); err != nil {
		t.Error(err)
	}
}

func TestStepKeepsInvariant(t *testing.T) {
	b := numbered(40)
	v := New(b, 7)
	rng := rand.New(rand.NewPCG(3, 4))
	idx := 0

	for i := 0; i < 1000; i++ {
		delta := 1
		if rng.IntN(2) == 0 {
			delta = -1
		}
		if idx+delta < 0 || idx+delta >= b.Len() {
			continue
		}
		idx += delta
		v.Step(delta)
		if err := v.Check(lineAt(t, b, idx)); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
}
