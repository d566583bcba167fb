// Package resolver performs a static pass over the AST that binds each
// variable reference to the number of enclosing scopes between it and its
// declaration. It is grounded on the teacher's scope-stack resolver
// (lang/resolver/resolver.go), generalized to Lox's declare/define model and
// its class, this, and super rules.
package resolver

import (
	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/diag"
	"github.com/mna/lox/lang/token"
)

// Resolver computes the Locals side-table consumed by the interpreter. It
// has no dependency on the interpreter package, so the two can be wired
// together by a caller (see lang/host) without an import cycle.
type Resolver struct {
	sink   *diag.Sink
	scopes []scope

	currentFunction functionType
	currentClass    classType

	locals map[ast.Expr]int
}

// New returns a Resolver that reports errors to sink.
func New(sink *diag.Sink) *Resolver {
	return &Resolver{sink: sink, locals: make(map[ast.Expr]int)}
}

// Resolve walks stmts and returns the expression-to-scope-depth side-table.
// Errors are reported to the sink; callers should check sink.HadError
// before invoking the interpreter with the returned map.
func (r *Resolver) Resolve(stmts []ast.Stmt) map[ast.Expr]int {
	r.resolveStmts(stmts)
	return r.locals
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) beginScope() { r.scopes = append(r.scopes, scope{}) }
func (r *Resolver) endScope()   { r.scopes = r.scopes[:len(r.scopes)-1] }

func (r *Resolver) declare(tok token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	sc := r.scopes[len(r.scopes)-1]
	if _, ok := sc[tok.Lexeme]; ok {
		r.sink.ErrorAtToken(tok, "Variable with this name already declared in this scope.")
	}
	sc[tok.Lexeme] = false
}

func (r *Resolver) define(tok token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][tok.Lexeme] = true
}

// resolveLocal records how many scopes out from the innermost one the name
// is defined, if it is defined in any scope at all (globals are left out
// of the side-table and resolved directly against the interpreter's
// global environment at evaluation time).
func (r *Resolver) resolveLocal(expr ast.Expr, tok token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][tok.Lexeme]; ok {
			r.locals[expr] = len(r.scopes) - 1 - i
			return
		}
	}
}
