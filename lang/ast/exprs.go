package ast

import "github.com/mna/lox/lang/token"

// Literal is a literal value: number, string, boolean, or nil. Value is
// restricted to nil, bool, float64, or string so that ast never needs to
// import the interpreter's value types.
type Literal struct {
	Value any
}

// Unary is a prefix operator expression: "-x" or "!x".
type Unary struct {
	Op    token.Token
	Right Expr
}

// Binary is an infix operator expression.
type Binary struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

// Logical is "and"/"or", which short-circuit unlike Binary.
type Logical struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

// Grouping is a parenthesized expression.
type Grouping struct {
	Expression Expr
}

// Variable is a reference to a named binding.
type Variable struct {
	Name token.Token
}

// Assign sets an existing binding and evaluates to the assigned value.
type Assign struct {
	Name  token.Token
	Value Expr
}

// Call invokes a callee with a list of argument expressions.
type Call struct {
	Callee Expr
	Paren  token.Token // closing ")"; used for error line numbers
	Args   []Expr
}

// Get reads a property or bound method off an instance.
type Get struct {
	Object Expr
	Name   token.Token
}

// Set assigns a field on an instance.
type Set struct {
	Object Expr
	Name   token.Token
	Value  Expr
}

// This refers to the receiver inside a method body.
type This struct {
	Keyword token.Token
}

// Super accesses a method defined on the enclosing class's superclass.
type Super struct {
	Keyword token.Token
	Method  token.Token
}

func (*Literal) exprNode()  {}
func (*Unary) exprNode()    {}
func (*Binary) exprNode()   {}
func (*Logical) exprNode()  {}
func (*Grouping) exprNode() {}
func (*Variable) exprNode() {}
func (*Assign) exprNode()   {}
func (*Call) exprNode()     {}
func (*Get) exprNode()      {}
func (*Set) exprNode()      {}
func (*This) exprNode()     {}
func (*Super) exprNode()    {}
