package main

import (
	"fmt"
	"strings"

	"github.com/xiam/naggum/lexer"
)

func main() {
	input := `
		(fn_a
			(fn_b (89 :A :B (67 3.27)))
			(fn_c 66 3 53 "Hello world!")
		)
	`

	lx := lexer.New(strings.NewReader(input))
	for i := 0; lx.Peek() != lexer.EOF; i++ {
		pos := lx.Pos()
		r := lx.Next()
		if lexer.IsWhitespace(r) {
			continue
		}

		fmt.Printf("char[%d] (class: %v, line: %d, col: %d)\n\t-> %q\n\n", i, lexer.Classify(r), pos.Line, pos.Column, r)
	}
}
