// Package interpreter evaluates a resolved Lox AST against a chain of
// environments. It is new code (the teacher's lang/machine is a bytecode
// VM, out of scope per the bytecode/JIT non-goal) but follows the
// teacher's own idea of a small Value interface plus concrete kinds
// (lang/machine/value.go), generalized to Lox's closed value set.
package interpreter

import (
	"strconv"
)

// Value is implemented by every runtime value kind: Nil, Bool, Number,
// String, and the callables (*Function, *Class, *NativeFunction), plus
// *Instance.
type Value interface {
	String() string
	Type() string
	Truthy() bool
}

// Nil is Lox's "nil" value.
type Nil struct{}

func (Nil) String() string { return "nil" }
func (Nil) Type() string   { return "nil" }
func (Nil) Truthy() bool   { return false }

// Bool is a Lox boolean.
type Bool bool

func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}
func (b Bool) Type() string { return "boolean" }
func (b Bool) Truthy() bool { return bool(b) }

// Number is Lox's single numeric type: an IEEE-754 double.
type Number float64

func (n Number) String() string {
	if float64(n) == float64(int64(n)) {
		return strconv.FormatInt(int64(n), 10)
	}
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}
func (n Number) Type() string { return "number" }
func (n Number) Truthy() bool { return true }

// String is a Lox string.
type String string

func (s String) String() string { return string(s) }
func (s String) Type() string   { return "string" }
func (s String) Truthy() bool   { return true }

// Callable is implemented by every value that can appear as a Call callee.
type Callable interface {
	Value
	Arity() int
	Call(in *Interpreter, args []Value) (Value, error)
}

var (
	_ Value = Nil{}
	_ Value = Bool(false)
	_ Value = Number(0)
	_ Value = String("")
)

func isEqual(a, b Value) bool {
	if _, aNil := a.(Nil); aNil {
		_, bNil := b.(Nil)
		return bNil
	}
	switch a := a.(type) {
	case Bool:
		b, ok := b.(Bool)
		return ok && a == b
	case Number:
		b, ok := b.(Number)
		return ok && a == b
	case String:
		b, ok := b.(String)
		return ok && a == b
	default:
		return a == b
	}
}

func stringify(v Value) string {
	if v == nil {
		return "nil"
	}
	return v.String()
}
