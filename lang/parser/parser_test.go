package parser_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/diag"
	"github.com/mna/lox/lang/parser"
	"github.com/mna/lox/lang/scanner"
)

func parse(t *testing.T, src string) ([]ast.Stmt, *diag.Sink) {
	t.Helper()
	var buf bytes.Buffer
	sink := diag.New(&buf)
	toks := scanner.New(src, sink).ScanTokens()
	require.False(t, sink.HadError, "unexpected scan errors: %s", buf.String())
	stmts := parser.New(toks, sink).Parse()
	if sink.HadError {
		t.Logf("parse errors:\n%s", buf.String())
	}
	return stmts, sink
}

func TestExpressionPrinting(t *testing.T) {
	stmts, sink := parse(t, "print 1 + 2 * 3;")
	require.False(t, sink.HadError)
	require.Len(t, stmts, 1)
	p, ok := stmts[0].(*ast.PrintStmt)
	require.True(t, ok)
	assert.Equal(t, "(+ 1 (* 2 3))", ast.Print(p.Expression))
}

func TestVarAndAssign(t *testing.T) {
	stmts, sink := parse(t, "var a = 1; a = 2;")
	require.False(t, sink.HadError)
	require.Len(t, stmts, 2)
	_, ok := stmts[0].(*ast.VarStmt)
	assert.True(t, ok)
	exprStmt, ok := stmts[1].(*ast.ExpressionStmt)
	require.True(t, ok)
	_, ok = exprStmt.Expression.(*ast.Assign)
	assert.True(t, ok)
}

func TestForDesugarsToWhile(t *testing.T) {
	stmts, sink := parse(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	require.False(t, sink.HadError)
	require.Len(t, stmts, 1)
	block, ok := stmts[0].(*ast.BlockStmt)
	require.True(t, ok)
	require.Len(t, block.Statements, 2)
	_, ok = block.Statements[0].(*ast.VarStmt)
	assert.True(t, ok)
	while, ok := block.Statements[1].(*ast.WhileStmt)
	require.True(t, ok)
	body, ok := while.Body.(*ast.BlockStmt)
	require.True(t, ok)
	require.Len(t, body.Statements, 2)
}

func TestClassWithSuperclassAndMethods(t *testing.T) {
	stmts, sink := parse(t, "class B < A { m() { return 1; } }")
	require.False(t, sink.HadError)
	require.Len(t, stmts, 1)
	cls, ok := stmts[0].(*ast.ClassStmt)
	require.True(t, ok)
	require.NotNil(t, cls.Superclass)
	assert.Equal(t, "A", cls.Superclass.Name.Lexeme)
	require.Len(t, cls.Methods, 1)
	assert.Equal(t, "m", cls.Methods[0].Name.Lexeme)
}

func TestInvalidAssignmentTargetReportsButRecovers(t *testing.T) {
	_, sink := parse(t, "1 = 2;")
	assert.True(t, sink.HadError)
}

func TestMissingInitializerSynchronizesOnSemicolon(t *testing.T) {
	stmts, sink := parse(t, "var a = ; print a;")
	assert.True(t, sink.HadError)
	// synchronize() stops as soon as it consumes a ";", so the next
	// declaration parses normally.
	require.Len(t, stmts, 1)
	_, ok := stmts[0].(*ast.PrintStmt)
	assert.True(t, ok)
}

func TestTooManyArgumentsReportsError(t *testing.T) {
	src := "fn("
	for i := 0; i < 256; i++ {
		if i > 0 {
			src += ", "
		}
		src += "1"
	}
	src += ");"
	_, sink := parse(t, src)
	assert.True(t, sink.HadError)
}
