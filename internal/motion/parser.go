// Package motion reads head movement scripts, one "<dir> <count>" pair per
// line, into rope commands.
package motion

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"ropetrack/internal/rope"
)

var (
	ErrUnknownDirection = errors.New("unknown direction")
	ErrMissingCount     = errors.New("missing count")
	ErrInvalidCount     = errors.New("count must be a positive integer")
	ErrTrailingField    = errors.New("unexpected trailing field")
)

// LineError reports a malformed line.
type LineError struct {
	Line   int
	Column int
	Text   string
	Err    error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d:%d: %q: %v", e.Line, e.Column, e.Text, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

type Script struct {
	Lines []*Line `parser:"( @@ | EOL )*"`
}

type Line struct {
	Pos    lexer.Position
	Fields []*Field `parser:"@@+"`
}

type Field struct {
	Pos  lexer.Position
	Text string `parser:"@Word"`
}

var scriptLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "EOL", Pattern: `\n`},
	{Name: "Whitespace", Pattern: `[ \t\r]+`},
	{Name: "Word", Pattern: `[^ \t\r\n]+`},
})

var parser = participle.MustBuild[Script](
	participle.Lexer(scriptLexer),
	participle.Elide("Whitespace"),
)

// Parse reads a whole script from r. Nothing is returned unless every
// line is well formed.
func Parse(name string, r io.Reader) ([]rope.MoveCommand, error) {
	script, err := parser.Parse(name, r)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	return script.Commands()
}

func ParseString(name, data string) ([]rope.MoveCommand, error) {
	script, err := parser.ParseString(name, data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	return script.Commands()
}

// Commands validates every line and converts it to a MoveCommand.
func (s *Script) Commands() ([]rope.MoveCommand, error) {
	out := make([]rope.MoveCommand, 0, len(s.Lines))
	for _, l := range s.Lines {
		cmd, err := l.Command()
		if err != nil {
			return nil, err
		}
		out = append(out, cmd)
	}
	return out, nil
}

func (l *Line) Command() (rope.MoveCommand, error) {
	dir := l.Fields[0]
	r, size := utf8.DecodeRuneInString(dir.Text)
	d, ok := rope.ParseDirection(r)
	if !ok || size != len(dir.Text) {
		return rope.MoveCommand{}, l.fail(dir, ErrUnknownDirection)
	}
	if len(l.Fields) < 2 {
		return rope.MoveCommand{}, l.fail(dir, ErrMissingCount)
	}
	count := l.Fields[1]
	n, err := strconv.Atoi(count.Text)
	if err != nil || n < 1 {
		return rope.MoveCommand{}, l.fail(count, ErrInvalidCount)
	}
	if len(l.Fields) > 2 {
		return rope.MoveCommand{}, l.fail(l.Fields[2], ErrTrailingField)
	}
	return rope.MoveCommand{Dir: d, Steps: n}, nil
}

func (l *Line) fail(f *Field, err error) *LineError {
	return &LineError{Line: f.Pos.Line, Column: f.Pos.Column, Text: l.String(), Err: err}
}

func (l *Line) String() string {
	parts := make([]string, len(l.Fields))
	for i, f := range l.Fields {
		parts[i] = f.Text
	}
	return strings.Join(parts, " ")
}

// Format writes commands back in script form, one per line.
func Format(commands []rope.MoveCommand) string {
	var b strings.Builder
	for _, c := range commands {
		b.WriteString(c.String())
		b.WriteByte('\n')
	}
	return b.String()
}
