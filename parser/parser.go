package parser

import (
	"bytes"
	"io"
	"log"
	"strings"

	"github.com/xiam/naggum/ast"
	"github.com/xiam/naggum/lexer"
)

// DefaultMaxDepth is the list nesting accepted unless WithMaxDepth says
// otherwise.
const DefaultMaxDepth = 10000

// Stream is a character source with one rune of lookahead. Both methods
// return lexer.EOF once the input is exhausted.
type Stream interface {
	Peek() rune
	Next() rune
}

type positioner interface {
	Pos() lexer.Position
}

type failer interface {
	Err() error
}

var escapes = map[rune]rune{
	'n':  '\n',
	'r':  '\r',
	'"':  '"',
	't':  '\t',
	'\\': '\\',
}

// Option configures a Parser
type Option func(*Parser)

// WithMaxDepth bounds how deeply lists may nest. Zero means no bound.
func WithMaxDepth(n int) Option {
	return func(p *Parser) {
		p.maxDepth = n
	}
}

// WithLogger traces every production to logger.
func WithLogger(logger *log.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// Parser reads values from a character stream, one per call to Read.
type Parser struct {
	in Stream

	maxDepth int
	depth    int

	logger *log.Logger
}

// New creates a Parser reading from r.
func New(r io.Reader, opts ...Option) *Parser {
	return NewStream(lexer.New(r), opts...)
}

// NewStream creates a Parser on top of an existing stream.
func NewStream(s Stream, opts ...Option) *Parser {
	p := &Parser{
		in:       s,
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Read reads one value from s with the default options.
func Read(s Stream) (ast.Value, error) {
	return NewStream(s).Read()
}

// Parse reads every value in the given input.
func Parse(in []byte, opts ...Option) ([]ast.Value, error) {
	return New(bytes.NewReader(in), opts...).ReadAll()
}

// Read reads the next value and leaves the stream right after it. It
// returns a nil value and a nil error if only whitespace was left.
func (p *Parser) Read() (ast.Value, error) {
	p.depth = 0
	return p.readObject()
}

// ReadAll reads values until the stream is exhausted.
func (p *Parser) ReadAll() ([]ast.Value, error) {
	values := []ast.Value{}
	for {
		v, err := p.Read()
		if err != nil {
			return nil, err
		}
		if v == nil {
			return values, nil
		}
		values = append(values, v)
	}
}

// Pos returns the position of the next character, or the zero Position if
// the stream does not track positions.
func (p *Parser) Pos() lexer.Position {
	if s, ok := p.in.(positioner); ok {
		return s.Pos()
	}
	return lexer.Position{}
}

func (p *Parser) tracef(format string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Printf(format, args...)
	}
}

func (p *Parser) fail(pos lexer.Position, ch rune, err error) error {
	p.tracef("%v: %v", pos, err)
	return &Error{Pos: pos, Char: ch, Err: err}
}

// streamErr returns the error that made the stream end early, if any.
func (p *Parser) streamErr() error {
	if s, ok := p.in.(failer); ok {
		return s.Err()
	}
	return nil
}

func (p *Parser) unexpectedEOF(pos lexer.Position) error {
	if err := p.streamErr(); err != nil {
		return err
	}
	return p.fail(pos, lexer.EOF, ErrUnexpectedEOF)
}

func (p *Parser) skipWhitespace() {
	for lexer.IsWhitespace(p.in.Peek()) {
		p.in.Next()
	}
}

func (p *Parser) readObject() (ast.Value, error) {
	p.skipWhitespace()

	pos := p.Pos()
	ch := p.in.Peek()

	switch {
	case ch == lexer.EOF:
		if err := p.streamErr(); err != nil {
			return nil, err
		}
		return nil, nil

	case lexer.IsOpenList(ch):
		p.in.Next()
		return p.readList(pos)

	case lexer.IsQuote(ch):
		p.in.Next()
		return p.readString()

	case lexer.IsConstituent(ch):
		return p.readSymbol()
	}

	return nil, p.fail(pos, ch, ErrUnexpectedChar)
}

func (p *Parser) readList(open lexer.Position) (ast.Value, error) {
	if p.maxDepth > 0 && p.depth >= p.maxDepth {
		return nil, p.fail(open, '(', ErrTooDeep)
	}
	p.depth++
	defer func() {
		p.depth--
	}()

	values := []ast.Value{}
	for {
		p.skipWhitespace()

		ch := p.in.Peek()
		if ch == lexer.EOF {
			return nil, p.unexpectedEOF(p.Pos())
		}
		if lexer.IsCloseList(ch) {
			p.in.Next()
			break
		}

		v, err := p.readObject()
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}

	p.tracef("%v: list of %d", open, len(values))
	return ast.List(values...), nil
}

func (p *Parser) readString() (ast.Value, error) {
	var sb strings.Builder

	escaped := false
	for {
		pos := p.Pos()
		ch := p.in.Next()
		if ch == lexer.EOF {
			return nil, p.unexpectedEOF(pos)
		}

		if escaped {
			escaped = false
			r, ok := escapes[ch]
			if !ok {
				return nil, p.fail(pos, ch, ErrUnknownEscape)
			}
			sb.WriteRune(r)
			continue
		}

		switch {
		case lexer.IsQuote(ch):
			p.tracef("%v: string of %d bytes", pos, sb.Len())
			return ast.String(sb.String()), nil
		case lexer.IsEscape(ch):
			escaped = true
		default:
			sb.WriteRune(ch)
		}
	}
}

// readSymbol collects constituents. End of stream after at least one of
// them ends the symbol like whitespace would.
func (p *Parser) readSymbol() (ast.Value, error) {
	var name strings.Builder

	pos := p.Pos()
	for {
		ch := p.in.Peek()
		if ch == lexer.EOF {
			if name.Len() == 0 {
				return nil, p.unexpectedEOF(pos)
			}
			if err := p.streamErr(); err != nil {
				return nil, err
			}
			break
		}
		if !lexer.IsConstituent(ch) {
			if name.Len() == 0 {
				return nil, p.fail(pos, ch, ErrEmptySymbol)
			}
			break
		}
		name.WriteRune(p.in.Next())
	}

	p.tracef("%v: symbol %s", pos, name.String())
	return ast.NewSymbol(name.String()), nil
}
