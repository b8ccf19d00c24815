package lexer

import (
	"io"
	"text/scanner"
)

// EOF is returned by Peek and Next once the input is exhausted.
const EOF rune = scanner.EOF

// New initializes a Scanner reading runes from r.
func New(r io.Reader) *Scanner {
	lx := &Scanner{}

	s := &scanner.Scanner{}
	s.Init(r)
	s.Mode = 0
	s.Whitespace = 0
	s.Error = lx.fail

	lx.in = s
	return lx
}

// Scanner is a character stream with a single rune of lookahead.
type Scanner struct {
	in *scanner.Scanner

	lastErr error
}

// decoding complaints of text/scanner, the rune is passed through as is
var ignoredErrors = map[string]bool{
	"invalid UTF-8 encoding": true,
	"invalid character NUL":  true,
}

func (lx *Scanner) fail(s *scanner.Scanner, msg string) {
	if lx.lastErr != nil || ignoredErrors[msg] {
		return
	}
	lx.lastErr = &Error{Pos: position(s.Pos()), Msg: msg}
}

// Peek returns the next rune without consuming it.
func (lx *Scanner) Peek() rune {
	return lx.in.Peek()
}

// Next consumes and returns the next rune.
func (lx *Scanner) Next() rune {
	return lx.in.Next()
}

// Pos returns the position of the rune Next would return.
func (lx *Scanner) Pos() Position {
	return position(lx.in.Pos())
}

// Err returns the first read error of the underlying reader, nil if the
// input ended cleanly.
func (lx *Scanner) Err() error {
	return lx.lastErr
}

// Error is a read failure of the underlying input.
type Error struct {
	Pos Position
	Msg string
}

func (e *Error) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

