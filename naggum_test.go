package naggum

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xiam/naggum/ast"
	"github.com/xiam/naggum/parser"
)

func TestParse(t *testing.T) {
	v, err := Parse([]byte(`(fn_a (fn_b "x\ny") c) (ignored)`))
	assert.NoError(t, err)
	assert.Equal(t, `(fn_a (fn_b "x\ny") c)`, v.Encode())

	v, err = Parse([]byte("  \n"))
	assert.Equal(t, io.EOF, err)
	assert.Nil(t, v)

	v, err = Parse([]byte(`()`))
	assert.NoError(t, err)
	assert.Equal(t, ast.Nil, v)
}

func TestReader(t *testing.T) {
	r := NewReader(strings.NewReader("a\n(b c)\n\"d\"\n"))

	out := []string{}
	for {
		v, err := r.Read()
		if err == io.EOF {
			break
		}
		if !assert.NoError(t, err) {
			return
		}
		out = append(out, v.Encode())
	}

	assert.Equal(t, []string{`a`, `(b c)`, `"d"`}, out)
}

func TestReaderReadAll(t *testing.T) {
	values, err := NewReader(strings.NewReader(`x (y) "z"`)).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, values, 3)

	_, err = NewReader(strings.NewReader(`x (y`)).ReadAll()
	assert.True(t, errors.Is(err, parser.ErrUnexpectedEOF))
}

func TestReaderOptions(t *testing.T) {
	r := NewReader(strings.NewReader(`((x))`), parser.WithMaxDepth(1))

	_, err := r.Read()
	assert.True(t, errors.Is(err, parser.ErrTooDeep))
}
