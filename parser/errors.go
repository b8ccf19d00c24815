package parser

import (
	"errors"
	"fmt"

	"github.com/xiam/naggum/lexer"
)

var (
	ErrUnexpectedEOF  = errors.New("unexpected end of stream")
	ErrUnexpectedChar = errors.New("unexpected character")
	ErrEmptySymbol    = errors.New("empty symbol")
	ErrUnknownEscape  = errors.New("unknown escape sequence")
	ErrTooDeep        = errors.New("lists nested too deeply")
)

// Error is a read failure with the position where it was detected.
type Error struct {
	Pos  lexer.Position
	Char rune
	Err  error
}

func (e *Error) Error() string {
	var msg string
	switch {
	case e.Char == lexer.EOF:
		msg = e.Err.Error()
	case errors.Is(e.Err, ErrUnknownEscape):
		msg = fmt.Sprintf("%v: \\%c", e.Err, e.Char)
	default:
		msg = fmt.Sprintf("%v: %q", e.Err, e.Char)
	}
	if e.Pos.Line == 0 {
		// stream without position information
		return msg
	}
	return fmt.Sprintf("%v: %s", e.Pos, msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}
