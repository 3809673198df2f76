package motion

import (
	"errors"
	"strings"
	"testing"

	"ropetrack/internal/rope"
)

func TestParseSmallScript(t *testing.T) {
	got, err := ParseString("small", "R 4\nU 4\nL 3\nD 1\nR 4\nD 1\nL 5\nR 2\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []rope.MoveCommand{
		{Dir: rope.Right, Steps: 4}, {Dir: rope.Up, Steps: 4},
		{Dir: rope.Left, Steps: 3}, {Dir: rope.Down, Steps: 1},
		{Dir: rope.Right, Steps: 4}, {Dir: rope.Down, Steps: 1},
		{Dir: rope.Left, Steps: 5}, {Dir: rope.Right, Steps: 2},
	}
	if len(got) != len(want) {
		t.Fatalf("want %d commands got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("command %d want %v got %v", i, want[i], got[i])
		}
	}
	if rope.Run(got, 2) != 13 {
		t.Fatalf("parsed script should visit 13 cells")
	}
}

func TestParseLenientWhitespace(t *testing.T) {
	got, err := Parse("ws", strings.NewReader("\n  R\t17\r\n\n\nD 10"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(got) != 2 || got[0] != (rope.MoveCommand{Dir: rope.Right, Steps: 17}) ||
		got[1] != (rope.MoveCommand{Dir: rope.Down, Steps: 10}) {
		t.Fatalf("unexpected commands %v", got)
	}
}

func TestParseEmpty(t *testing.T) {
	got, err := ParseString("empty", "")
	if err != nil || len(got) != 0 {
		t.Fatalf("want no commands, got %v (%v)", got, err)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		in   string
		want error
		line int
		col  int
	}{
		{"X 3", ErrUnknownDirection, 1, 1},
		{"R 1\nr 2", ErrUnknownDirection, 2, 1},
		{"R4", ErrUnknownDirection, 1, 1},
		{"R 1\nU", ErrMissingCount, 2, 1},
		{"L abc", ErrInvalidCount, 1, 3},
		{"L 0", ErrInvalidCount, 1, 3},
		{"D -2", ErrInvalidCount, 1, 3},
		{"R 2 U 3", ErrTrailingField, 1, 5},
	}
	for _, c := range cases {
		_, err := ParseString("bad", c.in)
		if !errors.Is(err, c.want) {
			t.Fatalf("%q: want %v got %v", c.in, c.want, err)
		}
		var le *LineError
		if !errors.As(err, &le) {
			t.Fatalf("%q: want *LineError got %T", c.in, err)
		}
		if le.Line != c.line || le.Column != c.col {
			t.Fatalf("%q: want %d:%d got %d:%d", c.in, c.line, c.col, le.Line, le.Column)
		}
	}
}

func TestFormatRoundTrip(t *testing.T) {
	src := "R 5\nU 8\nL 8\nD 3\nR 17\nD 10\nL 25\nU 20\n"
	cmds, err := ParseString("large", src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := Format(cmds); got != src {
		t.Fatalf("format want %q got %q", src, got)
	}
}
