package ast

// ValueType represents the variant of a value
type ValueType uint8

// Value types
const (
	ValueTypeNil ValueType = iota
	ValueTypeSymbol
	ValueTypeString
	ValueTypeCons
)

func (vt ValueType) String() string {
	s, ok := valueTypeName[vt]
	if ok {
		return s
	}
	return ""
}

var valueTypeName = map[ValueType]string{
	ValueTypeNil:    "nil",
	ValueTypeSymbol: "symbol",
	ValueTypeString: "string",
	ValueTypeCons:   "cons",
}
