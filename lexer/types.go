package lexer

import (
	"unicode"
)

// CharClass represents the syntactic role of a character
type CharClass uint8

// List of character classes
const (
	CharInvalid     CharClass = iota
	CharOpenList              // Open parenthesis: "("
	CharCloseList             // Close parenthesis: ")"
	CharQuote                 // Double quote: '"'
	CharEscape                // Backslash: "\"
	CharWhitespace            // Any Unicode white space
	CharConstituent           // Anything else, valid inside a symbol
	CharEOF                   // End of input
)

var charValues = map[CharClass][]rune{
	CharOpenList:  []rune{'('},
	CharCloseList: []rune{')'},
	CharQuote:     []rune{'"'},
	CharEscape:    []rune{'\\'},
}

var charNames = map[CharClass]string{
	CharInvalid:     "invalid",
	CharOpenList:    "open_list",
	CharCloseList:   "close_list",
	CharQuote:       "quote",
	CharEscape:      "escape",
	CharWhitespace:  "whitespace",
	CharConstituent: "constituent",
	CharEOF:         "EOF",
}

func (cc CharClass) String() string {
	if v, ok := charNames[cc]; ok {
		return v
	}
	return charNames[CharInvalid]
}

func isCharClass(cc CharClass) func(r rune) bool {
	return func(r rune) bool {
		for _, v := range charValues[cc] {
			if v == r {
				return true
			}
		}
		return false
	}
}

var (
	IsOpenList  = isCharClass(CharOpenList)
	IsCloseList = isCharClass(CharCloseList)
	IsQuote     = isCharClass(CharQuote)
	IsEscape    = isCharClass(CharEscape)
)

// IsWhitespace reports whether r separates values.
func IsWhitespace(r rune) bool {
	return r != EOF && unicode.IsSpace(r)
}

// IsConstituent reports whether r may appear inside a symbol: anything but
// whitespace and the list delimiters.
func IsConstituent(r rune) bool {
	return r != EOF && !IsWhitespace(r) && !IsOpenList(r) && !IsCloseList(r)
}

// Classify returns the class of r. Quotes and backslashes are constituents
// inside a symbol, callers dispatching on the first character of a value
// check for CharQuote first.
func Classify(r rune) CharClass {
	switch {
	case r == EOF:
		return CharEOF
	case IsOpenList(r):
		return CharOpenList
	case IsCloseList(r):
		return CharCloseList
	case IsQuote(r):
		return CharQuote
	case IsEscape(r):
		return CharEscape
	case IsWhitespace(r):
		return CharWhitespace
	}
	return CharConstituent
}
