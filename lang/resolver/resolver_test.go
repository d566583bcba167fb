package resolver_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/diag"
	"github.com/mna/lox/lang/parser"
	"github.com/mna/lox/lang/resolver"
	"github.com/mna/lox/lang/scanner"
)

func resolve(t *testing.T, src string) (map[ast.Expr]int, *diag.Sink) {
	t.Helper()
	var buf bytes.Buffer
	sink := diag.New(&buf)
	toks := scanner.New(src, sink).ScanTokens()
	require.False(t, sink.HadError, "scan errors: %s", buf.String())
	stmts := parser.New(toks, sink).Parse()
	require.False(t, sink.HadError, "parse errors: %s", buf.String())
	locals := resolver.New(sink).Resolve(stmts)
	return locals, sink
}

func TestBlockShadowingResolvesToNearestScope(t *testing.T) {
	locals, sink := resolve(t, `var a = 1; { var a = 2; print a; } print a;`)
	require.False(t, sink.HadError)
	// exactly one Variable reference (the inner "print a") should resolve
	// locally; the outer "print a" refers to the global and is absent.
	assert.Len(t, locals, 1)
}

func TestClosureCapturesEnclosingFunctionScope(t *testing.T) {
	_, sink := resolve(t, `fun counter() { var i = 0; fun inc() { i = i + 1; return i; } return inc; }`)
	assert.False(t, sink.HadError)
}

func TestSelfReferenceInInitializerIsError(t *testing.T) {
	var buf bytes.Buffer
	sink := diag.New(&buf)
	toks := scanner.New(`{ var a = a; }`, sink).ScanTokens()
	stmts := parser.New(toks, sink).Parse()
	resolver.New(sink).Resolve(stmts)
	assert.True(t, sink.HadError)
	assert.Contains(t, buf.String(), "Cannot read local variable in its own initializer.")
}

func TestTopLevelReturnIsError(t *testing.T) {
	var buf bytes.Buffer
	sink := diag.New(&buf)
	toks := scanner.New(`return 1;`, sink).ScanTokens()
	stmts := parser.New(toks, sink).Parse()
	resolver.New(sink).Resolve(stmts)
	assert.True(t, sink.HadError)
	assert.Contains(t, buf.String(), "Cannot return from top-level code.")
}

func TestClassCannotInheritFromItself(t *testing.T) {
	var buf bytes.Buffer
	sink := diag.New(&buf)
	toks := scanner.New(`class A < A {}`, sink).ScanTokens()
	stmts := parser.New(toks, sink).Parse()
	resolver.New(sink).Resolve(stmts)
	assert.True(t, sink.HadError)
	assert.Contains(t, buf.String(), "A class cannot inherit from itself.")
}

func TestInitializerCannotReturnValue(t *testing.T) {
	var buf bytes.Buffer
	sink := diag.New(&buf)
	toks := scanner.New(`class A { init() { return 1; } }`, sink).ScanTokens()
	stmts := parser.New(toks, sink).Parse()
	resolver.New(sink).Resolve(stmts)
	assert.True(t, sink.HadError)
	assert.Contains(t, buf.String(), "Cannot return a value from an initializer.")
}

func TestThisOutsideClassIsError(t *testing.T) {
	var buf bytes.Buffer
	sink := diag.New(&buf)
	toks := scanner.New(`print this;`, sink).ScanTokens()
	stmts := parser.New(toks, sink).Parse()
	resolver.New(sink).Resolve(stmts)
	assert.True(t, sink.HadError)
	assert.Contains(t, buf.String(), "Cannot use 'this' outside of a class.")
}

func TestSuperWithoutSuperclassIsError(t *testing.T) {
	var buf bytes.Buffer
	sink := diag.New(&buf)
	toks := scanner.New(`class A { m() { super.m(); } }`, sink).ScanTokens()
	stmts := parser.New(toks, sink).Parse()
	resolver.New(sink).Resolve(stmts)
	assert.True(t, sink.HadError)
	assert.Contains(t, buf.String(), "Cannot use 'super' in a class with no superclass.")
}

func TestDuplicateLocalDeclarationIsError(t *testing.T) {
	var buf bytes.Buffer
	sink := diag.New(&buf)
	toks := scanner.New(`{ var a = 1; var a = 2; }`, sink).ScanTokens()
	stmts := parser.New(toks, sink).Parse()
	resolver.New(sink).Resolve(stmts)
	assert.True(t, sink.HadError)
	assert.Contains(t, buf.String(), "already declared in this scope")
}
