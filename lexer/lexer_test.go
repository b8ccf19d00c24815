package lexer

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScannerPeekNext(t *testing.T) {
	lx := New(strings.NewReader(`(a "b")`))

	runes := []rune{}
	for {
		p := lx.Peek()
		r := lx.Next()
		assert.Equal(t, p, r)
		if r == EOF {
			break
		}
		runes = append(runes, r)
	}

	assert.Equal(t, `(a "b")`, string(runes))
	assert.Equal(t, EOF, lx.Peek())
	assert.Equal(t, EOF, lx.Next())
	assert.NoError(t, lx.Err())
}

func TestScannerMultibyte(t *testing.T) {
	lx := New(strings.NewReader("λ😊"))

	assert.Equal(t, 'λ', lx.Next())
	assert.Equal(t, '😊', lx.Next())
	assert.Equal(t, EOF, lx.Next())
}

func TestScannerPositions(t *testing.T) {
	testCases := []struct {
		In  string
		Pos []Position
	}{
		{
			"",
			[]Position{
				{1, 1},
			},
		},
		{
			"ab\ncd",
			[]Position{
				{1, 1}, {1, 2}, {1, 3},
				{2, 1}, {2, 2}, {2, 3},
			},
		},
		{
			"\n\n",
			[]Position{
				{1, 1},
				{2, 1},
				{3, 1},
			},
		},
	}

	for i := range testCases {
		lx := New(strings.NewReader(testCases[i].In))

		positions := []Position{lx.Pos()}
		for lx.Next() != EOF {
			positions = append(positions, lx.Pos())
		}

		assert.Equal(t, testCases[i].Pos, positions, "input %q", testCases[i].In)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestScannerReadError(t *testing.T) {
	lx := New(failingReader{})

	assert.Equal(t, EOF, lx.Next())

	err := lx.Err()
	if assert.Error(t, err) {
		var lxErr *Error
		assert.True(t, errors.As(err, &lxErr))
		assert.Contains(t, err.Error(), "disk on fire")
	}
}

func TestClassify(t *testing.T) {
	testCases := []struct {
		In  rune
		Out CharClass
	}{
		{'(', CharOpenList},
		{')', CharCloseList},
		{'"', CharQuote},
		{'\\', CharEscape},
		{' ', CharWhitespace},
		{'\t', CharWhitespace},
		{'\n', CharWhitespace},
		{'\r', CharWhitespace},
		{'\u00a0', CharWhitespace},
		{'a', CharConstituent},
		{'-', CharConstituent},
		{'[', CharConstituent},
		{'λ', CharConstituent},
		{EOF, CharEOF},
	}

	for i := range testCases {
		assert.Equal(t, testCases[i].Out, Classify(testCases[i].In), "rune %q", testCases[i].In)
	}
}

func TestIsConstituent(t *testing.T) {
	for _, r := range `abcXYZ019+-*/!?<>=:.'"\[]{}` {
		assert.True(t, IsConstituent(r), "rune %q", r)
	}
	for _, r := range " \t\r\n()" {
		assert.False(t, IsConstituent(r), "rune %q", r)
	}
	assert.False(t, IsConstituent(EOF))
	assert.False(t, IsWhitespace(EOF))
}

func TestCharClassString(t *testing.T) {
	assert.Equal(t, "open_list", CharOpenList.String())
	assert.Equal(t, "EOF", CharEOF.String())
	assert.Equal(t, "invalid", CharClass(200).String())
}

func TestScannerInvalidInput(t *testing.T) {
	lx := New(strings.NewReader("a\x00\xffb"))

	assert.Equal(t, 'a', lx.Next())
	assert.Equal(t, rune(0), lx.Next())
	assert.Equal(t, '\uFFFD', lx.Next())
	assert.Equal(t, 'b', lx.Next())
	assert.Equal(t, EOF, lx.Next())
	assert.NoError(t, lx.Err())
}
