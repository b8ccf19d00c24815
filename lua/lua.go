// Package lua makes the reader available to gopher-lua scripts.
//
//	local naggum = require("naggum")
//	local v, err = naggum.read('(greet "world")')
//	print(v[1].symbol, v[2]) -- greet world
//
// Lists become array tables (the empty list is an empty table), symbols
// become tables with a single "symbol" field and strings stay strings.
package lua

import (
	"strings"

	"github.com/xiam/naggum/ast"
	"github.com/xiam/naggum/parser"
	"github.com/yuin/gopher-lua"
)

// ModuleName is the name scripts pass to require.
const ModuleName = "naggum"

// Preload registers the module so that scripts running on L can require it.
func Preload(L *lua.LState) {
	L.PreloadModule(ModuleName, Loader)
}

// Loader pushes the module table.
func Loader(L *lua.LState) int {
	mod := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"read":     luaRead,
		"read_all": luaReadAll,
		"symbol":   luaSymbol,
	})
	L.Push(mod)
	return 1
}

// ToLua converts a value into its Lua representation.
func ToLua(L *lua.LState, v ast.Value) lua.LValue {
	switch x := v.(type) {
	case nil:
		return lua.LNil
	case ast.String:
		return lua.LString(string(x))
	case *ast.Symbol:
		return symbolTable(L, x.Name())
	case *ast.Cons:
		values, err := ast.Slice(x)
		if err != nil {
			pair := L.NewTable()
			pair.RawSetString("head", ToLua(L, x.Head()))
			pair.RawSetString("tail", ToLua(L, x.Tail()))
			return pair
		}
		list := L.CreateTable(len(values), 0)
		for i := range values {
			list.Append(ToLua(L, values[i]))
		}
		return list
	}
	if v.Type() == ast.ValueTypeNil {
		return L.NewTable()
	}
	return lua.LNil
}

func symbolTable(L *lua.LState, name string) *lua.LTable {
	t := L.NewTable()
	t.RawSetString("symbol", lua.LString(name))
	return t
}

func luaRead(L *lua.LState) int {
	text := L.CheckString(1)

	v, err := parser.New(strings.NewReader(text)).Read()
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	L.Push(ToLua(L, v))
	return 1
}

func luaReadAll(L *lua.LState) int {
	text := L.CheckString(1)

	values, err := parser.New(strings.NewReader(text)).ReadAll()
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	list := L.CreateTable(len(values), 0)
	for i := range values {
		list.Append(ToLua(L, values[i]))
	}
	L.Push(list)
	return 1
}

func luaSymbol(L *lua.LState) int {
	L.Push(symbolTable(L, L.CheckString(1)))
	return 1
}
