package main

import (
	"log"

	"github.com/xiam/naggum/ast"
	"github.com/xiam/naggum/parser"
)

func main() {
	input := `(fn_a (fn_b (89 :A :B (67 3.27))) (fn_c 66 3 53 "Hello world!" 😊))`

	values, err := parser.Parse([]byte(input))
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	for _, v := range values {
		ast.Print(v)
	}
}
