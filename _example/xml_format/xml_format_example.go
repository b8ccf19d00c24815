package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/xiam/naggum/ast"
	"github.com/xiam/naggum/parser"
)

func printTree(v ast.Value) {
	printIndentedTree(v, 0)
}

func printIndentedTree(v ast.Value, indentationLevel int) {
	indent := strings.Repeat("  ", indentationLevel)
	if children, err := ast.Slice(v); err == nil {
		fmt.Printf("%s<list>\n", indent)
		for i := range children {
			printIndentedTree(children[i], indentationLevel+1)
		}
		fmt.Printf("%s</list>\n", indent)
		return
	}
	fmt.Printf("%s<%s>%v</%s>\n", indent, v.Type(), v.Encode(), v.Type())
}

func main() {
	input := `(fn_a (fn_b (89 :A :B (67 3.27))) (fn_c 66 3 53 "Hello world!" 😊))`

	values, err := parser.Parse([]byte(input))
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	for _, v := range values {
		printTree(v)
	}
}
