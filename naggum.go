// Package naggum reads a Lisp surface syntax made of lists, symbols and
// strings into values of package ast.
//
//	(define greeting "hello\tworld")
//
// reads as a list of the symbol define, the symbol greeting and a string
// holding a tab.
package naggum

import (
	"bytes"
	"io"

	"github.com/xiam/naggum/ast"
	"github.com/xiam/naggum/parser"
)

// Reader reads consecutive values from an input.
type Reader struct {
	p *parser.Parser
}

// Parse returns the first value in the given input, or io.EOF if it holds
// only whitespace.
func Parse(in []byte) (ast.Value, error) {
	r := NewReader(bytes.NewReader(in))
	return r.Read()
}

// NewReader creates a Reader for r.
func NewReader(r io.Reader, opts ...parser.Option) *Reader {
	return &Reader{p: parser.New(r, opts...)}
}

// Read returns the next value, or io.EOF once the input is exhausted.
func (r *Reader) Read() (ast.Value, error) {
	v, err := r.p.Read()
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, io.EOF
	}
	return v, nil
}

// ReadAll returns every remaining value.
func (r *Reader) ReadAll() ([]ast.Value, error) {
	return r.p.ReadAll()
}
