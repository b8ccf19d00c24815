package ast

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncode(t *testing.T) {
	testCases := []struct {
		In  Value
		Out string
	}{
		{Nil, `()`},
		{nil, `()`},
		{NewSymbol("foo"), `foo`},
		{String("a\"b"), `"a\"b"`},
		{List(NewSymbol("a"), NewSymbol("b"), NewSymbol("c")), `(a b c)`},
		{List(NewSymbol("a"), List(NewSymbol("b"), NewSymbol("c")), NewSymbol("d")), `(a (b c) d)`},
		{List(Nil, List(Nil)), `(() (()))`},
		{List(NewSymbol("print"), String("hi\n")), `(print "hi\n")`},
		{NewCons(NewSymbol("a"), NewSymbol("b")), `(a . b)`},
		{NewCons(NewSymbol("a"), NewCons(NewSymbol("b"), String("c"))), `(a b . "c")`},
	}

	for i := range testCases {
		assert.Equal(t, testCases[i].Out, string(Encode(testCases[i].In)))
	}
	assert.Equal(t, `(a b)`, List(NewSymbol("a"), NewSymbol("b")).Encode())
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	Fprint(&buf, List(NewSymbol("a"), List(String("b")), Nil))

	expected := "(cons): [3]\n" +
		"    (symbol): a\n" +
		"    (cons): [1]\n" +
		"        (string): \"b\"\n" +
		"    (nil): ()\n"
	assert.Equal(t, expected, buf.String())
}
