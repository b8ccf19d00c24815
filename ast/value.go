package ast

import (
	"strings"
)

// Value is the result of reading: a Symbol, a String, a Cons or Nil.
type Value interface {
	Type() ValueType
	Encode() string

	value()
}

type nilValue struct{}

func (nilValue) Type() ValueType {
	return ValueTypeNil
}

func (nilValue) Encode() string {
	return "()"
}

func (nilValue) String() string {
	return "()"
}

func (nilValue) value() {}

// Nil is the empty list and the end of every proper list.
var Nil Value = nilValue{}

// Symbol is an identifier. Two symbols are equal when their names are.
type Symbol struct {
	name string
}

// NewSymbol creates a symbol with the given name.
func NewSymbol(name string) *Symbol {
	return &Symbol{name: name}
}

// Name returns the name of the symbol
func (s *Symbol) Name() string {
	return s.name
}

// Equal reports whether both symbols have the same name.
func (s *Symbol) Equal(other *Symbol) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.name == other.name
}

func (s *Symbol) Type() ValueType {
	return ValueTypeSymbol
}

func (s *Symbol) Encode() string {
	return s.name
}

func (s *Symbol) String() string {
	return s.name
}

func (*Symbol) value() {}

// String is a string literal with its escapes already resolved.
type String string

func (s String) Type() ValueType {
	return ValueTypeString
}

// Encode quotes the string, escaping only what the reader can unescape.
func (s String) Encode() string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range string(s) {
		switch r {
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

func (String) value() {}

var (
	_ = Value(Nil)
	_ = Value(&Symbol{})
	_ = Value(String(""))
	_ = Value(&Cons{})
)
