package command

import (
	"errors"
	"testing"

	"github.com/dshills/mte/internal/engine"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Intent
		err   error
	}{
		{"/foo", Intent{Kind: KindSearchForward, Text: "foo"}, nil},
		{"/", Intent{Kind: KindSearchForward}, nil},
		{"/a b ", Intent{Kind: KindSearchForward, Text: "a b "}, nil},
		{"?bar", Intent{Kind: KindSearchBackward, Text: "bar"}, nil},
		{":12", Intent{Kind: KindGotoLine, Line: 12}, nil},
		{":  7", Intent{Kind: KindGotoLine, Line: 7}, nil},
		{":+3", Intent{Kind: KindGotoLine, Line: 3}, nil},
		{":-2", Intent{Kind: KindGotoLine, Line: -2}, nil},
		{":42abc", Intent{Kind: KindGotoLine, Line: 42}, nil},
		{":abc", Intent{Kind: KindGotoLine, Line: 0}, nil},
		{":", Intent{Kind: KindGotoLine, Line: 0}, nil},
		{"^", Intent{Kind: KindGotoStart}, nil},
		{"^ignored", Intent{Kind: KindGotoStart}, nil},
		{"$", Intent{Kind: KindGotoEnd}, nil},
		{"$xyz", Intent{Kind: KindGotoEnd}, nil},
		{"", Intent{}, engine.ErrUnknownCommand},
		{"q", Intent{}, engine.ErrUnknownCommand},
		{" /foo", Intent{}, engine.ErrUnknownCommand},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if !errors.Is(err, tt.err) {
				t.Fatalf("err = %v, want %v", err, tt.err)
			}
			if got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestAtoiSaturates(t *testing.T) {
	if got := atoi("99999999999999999999999"); got != 1<<31 {
		t.Errorf("got %d", got)
	}
	if got := atoi("-99999999999999999999999"); got != -(1 << 31) {
		t.Errorf("got %d", got)
	}
}

type fakeTarget struct {
	lines int
	calls []string
	err   error
}

func (f *fakeTarget) LineCount() int { return f.lines }

func (f *fakeTarget) SearchForward(needle string) error {
	f.calls = append(f.calls, "forward:"+needle)
	return f.err
}

func (f *fakeTarget) SearchBackward(needle string) error {
	f.calls = append(f.calls, "backward:"+needle)
	return f.err
}

func (f *fakeTarget) GotoLine(n int) error {
	f.calls = append(f.calls, "goto:"+string(rune('0'+n)))
	return f.err
}

func (f *fakeTarget) GotoStart() error {
	f.calls = append(f.calls, "start")
	return f.err
}

func (f *fakeTarget) GotoEnd() error {
	f.calls = append(f.calls, "end")
	return f.err
}

func TestRun(t *testing.T) {
	tests := []struct {
		input string
		call  string
		err   error
	}{
		{"/x", "forward:x", nil},
		{"?y", "backward:y", nil},
		{":2", "goto:2", nil},
		{":5", "goto:5", nil},
		{"^", "start", nil},
		{"$", "end", nil},
		{":0", "", engine.ErrInvalidLineNumber},
		{":6", "", engine.ErrInvalidLineNumber},
		{":-1", "", engine.ErrInvalidLineNumber},
		{"!", "", engine.ErrUnknownCommand},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			f := &fakeTarget{lines: 5}
			err := Run(f, tt.input)
			if !errors.Is(err, tt.err) {
				t.Fatalf("err = %v, want %v", err, tt.err)
			}
			if tt.call == "" {
				if len(f.calls) != 0 {
					t.Errorf("target should not be called, got %v", f.calls)
				}
				return
			}
			if len(f.calls) != 1 || f.calls[0] != tt.call {
				t.Errorf("calls = %v, want [%s]", f.calls, tt.call)
			}
		})
	}
}

func TestRunPropagatesTargetError(t *testing.T) {
	f := &fakeTarget{lines: 1, err: engine.ErrNotFound}
	if err := Run(f, "/missing"); !errors.Is(err, engine.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{engine.ErrNotFound, "Not found!"},
		{engine.ErrInvalidLineNumber, "Invalid line number!"},
		{engine.ErrUnknownCommand, "Unknown command!"},
		{engine.ErrNoOp, ""},
	}
	for _, tt := range tests {
		if got := Message(tt.err); got != tt.want {
			t.Errorf("Message(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
