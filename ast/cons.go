package ast

import (
	"errors"
)

var (
	ErrNotList      = errors.New("value is not a list")
	ErrImproperList = errors.New("list does not end in nil")
)

// Cons is an immutable pair cell. Chains of cells ending in Nil make up
// lists.
type Cons struct {
	head Value
	tail Value
}

// NewCons creates a pair. A nil head or tail is stored as Nil.
func NewCons(head Value, tail Value) *Cons {
	if head == nil {
		head = Nil
	}
	if tail == nil {
		tail = Nil
	}
	return &Cons{head: head, tail: tail}
}

// Head returns the first slot of the pair
func (c *Cons) Head() Value {
	return c.head
}

// Tail returns the second slot of the pair
func (c *Cons) Tail() Value {
	return c.tail
}

func (c *Cons) Type() ValueType {
	return ValueTypeCons
}

func (c *Cons) Encode() string {
	return string(Encode(c))
}

func (c *Cons) String() string {
	return c.Encode()
}

func (*Cons) value() {}

// List chains values into a proper list keeping their order. No values
// yields Nil.
func List(values ...Value) Value {
	list := Nil
	for i := len(values) - 1; i >= 0; i-- {
		list = NewCons(values[i], list)
	}
	return list
}

// Slice returns the elements of a proper list.
func Slice(v Value) ([]Value, error) {
	values := []Value{}
	for {
		switch c := v.(type) {
		case nilValue:
			return values, nil
		case *Cons:
			values = append(values, c.head)
			v = c.tail
		default:
			if len(values) == 0 {
				return nil, ErrNotList
			}
			return nil, ErrImproperList
		}
	}
}

// Len returns the number of elements of a proper list, or -1 if v is not one.
func Len(v Value) int {
	n := 0
	for {
		switch c := v.(type) {
		case nilValue:
			return n
		case *Cons:
			n++
			v = c.tail
		default:
			return -1
		}
	}
}

// Equal reports whether a and b have the same structure. Symbols compare
// by name, strings by content.
func Equal(a Value, b Value) bool {
	for {
		if a == nil || b == nil {
			return a == b
		}
		if a.Type() != b.Type() {
			return false
		}
		switch x := a.(type) {
		case nilValue:
			return true
		case *Symbol:
			return x.Equal(b.(*Symbol))
		case String:
			return x == b.(String)
		case *Cons:
			y := b.(*Cons)
			if !Equal(x.head, y.head) {
				return false
			}
			a, b = x.tail, y.tail
		default:
			return false
		}
	}
}
