package lexer

import (
	"fmt"
	"text/scanner"
)

// Position is the line and column of a character, both starting at 1
type Position struct {
	Line   int
	Column int
}

func position(p scanner.Position) Position {
	return Position{Line: p.Line, Column: p.Column}
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
