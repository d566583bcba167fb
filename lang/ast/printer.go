package ast

import (
	"fmt"
	"strings"
)

// Print renders an expression as a fully-parenthesized Lisp-like string,
// useful for debugging the parser and for the "lox parse" CLI subcommand.
func Print(e Expr) string {
	var b strings.Builder
	printExpr(&b, e)
	return b.String()
}

func printExpr(b *strings.Builder, e Expr) {
	switch e := e.(type) {
	case nil:
		b.WriteString("<nil>")
	case *Literal:
		if e.Value == nil {
			b.WriteString("nil")
		} else {
			fmt.Fprintf(b, "%v", e.Value)
		}
	case *Unary:
		parenthesize(b, e.Op.Lexeme, e.Right)
	case *Binary:
		parenthesize(b, e.Op.Lexeme, e.Left, e.Right)
	case *Logical:
		parenthesize(b, e.Op.Lexeme, e.Left, e.Right)
	case *Grouping:
		parenthesize(b, "group", e.Expression)
	case *Variable:
		b.WriteString(e.Name.Lexeme)
	case *Assign:
		parenthesize(b, "= "+e.Name.Lexeme, e.Value)
	case *Call:
		parenthesize(b, "call", append([]Expr{e.Callee}, e.Args...)...)
	case *Get:
		parenthesize(b, "get "+e.Name.Lexeme, e.Object)
	case *Set:
		parenthesize(b, "set "+e.Name.Lexeme, e.Object, e.Value)
	case *This:
		b.WriteString("this")
	case *Super:
		fmt.Fprintf(b, "(super.%s)", e.Method.Lexeme)
	default:
		fmt.Fprintf(b, "<unknown %T>", e)
	}
}

func parenthesize(b *strings.Builder, name string, exprs ...Expr) {
	b.WriteByte('(')
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteByte(' ')
		printExpr(b, e)
	}
	b.WriteByte(')')
}
