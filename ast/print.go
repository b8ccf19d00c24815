package ast

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Print displays a human-readable representation of a value
func Print(v Value) {
	Fprint(os.Stdout, v)
}

// Fprint writes an indented tree of v to w.
func Fprint(w io.Writer, v Value) {
	printLevel(w, v, 0)
}

func printLevel(w io.Writer, v Value, level int) {
	indent := strings.Repeat("    ", level)
	if v == nil {
		fmt.Fprintf(w, "%s:nil\n", indent)
		return
	}
	fmt.Fprintf(w, "%s(%s): ", indent, v.Type())
	switch x := v.(type) {

	case *Cons:
		values, err := Slice(x)
		if err != nil {
			fmt.Fprintf(w, "%s\n", x.Encode())
			return
		}
		fmt.Fprintf(w, "[%d]\n", len(values))
		for i := range values {
			printLevel(w, values[i], level+1)
		}

	default:
		fmt.Fprintf(w, "%s\n", v.Encode())
	}
}

// Encode transforms a value into text the reader accepts
func Encode(v Value) []byte {
	var sb strings.Builder
	encodeValue(&sb, v)
	return []byte(sb.String())
}

func encodeValue(sb *strings.Builder, v Value) {
	c, ok := v.(*Cons)
	if !ok {
		if v == nil {
			sb.WriteString(Nil.Encode())
			return
		}
		sb.WriteString(v.Encode())
		return
	}

	sb.WriteByte('(')
	for {
		encodeValue(sb, c.head)
		switch tail := c.tail.(type) {
		case nilValue:
			sb.WriteByte(')')
			return
		case *Cons:
			sb.WriteByte(' ')
			c = tail
		default:
			sb.WriteString(" . ")
			encodeValue(sb, tail)
			sb.WriteByte(')')
			return
		}
	}
}
