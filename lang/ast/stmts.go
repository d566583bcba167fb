package ast

import "github.com/mna/lox/lang/token"

// ExpressionStmt evaluates an expression for its side effects.
type ExpressionStmt struct {
	Expression Expr
}

// PrintStmt evaluates an expression and writes its stringified form.
type PrintStmt struct {
	Expression Expr
}

// VarStmt declares a new binding, optionally with an initializer.
type VarStmt struct {
	Name        token.Token
	Initializer Expr // nil if omitted
}

// BlockStmt introduces a new lexical scope around a statement list.
type BlockStmt struct {
	Statements []Stmt
}

// IfStmt is a conditional; Else is nil when there is no else branch.
type IfStmt struct {
	Condition Expr
	Then      Stmt
	Else      Stmt
}

// WhileStmt repeats Body while Condition is truthy.
type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

// FunctionStmt declares a named function (or, inside a ClassStmt, a method).
type FunctionStmt struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

// ReturnStmt exits the enclosing function, optionally with a value.
type ReturnStmt struct {
	Keyword token.Token
	Value   Expr // nil if omitted
}

// ClassStmt declares a class, its optional superclass, and its methods.
type ClassStmt struct {
	Name       token.Token
	Superclass *Variable // nil if there is none
	Methods    []*FunctionStmt
}

func (*ExpressionStmt) stmtNode() {}
func (*PrintStmt) stmtNode()      {}
func (*VarStmt) stmtNode()        {}
func (*BlockStmt) stmtNode()      {}
func (*IfStmt) stmtNode()         {}
func (*WhileStmt) stmtNode()      {}
func (*FunctionStmt) stmtNode()   {}
func (*ReturnStmt) stmtNode()     {}
func (*ClassStmt) stmtNode()      {}
