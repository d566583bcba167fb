package maincmd

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/diag"
	"github.com/mna/lox/lang/parser"
	"github.com/mna/lox/lang/scanner"
)

// Parse runs the scanner and parser over a file and prints one line per
// top-level statement: the syntax tree of an expression statement using
// ast.Print, and only the Go node type for every other statement.
func (c *Cmd) Parse(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return ParseFile(ctx, stdio, args[0])
}

// ParseFile is the reusable entry point also exercised by tests.
func ParseFile(_ context.Context, stdio mainer.Stdio, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	sink := diag.New(&buf)
	toks := scanner.New(string(src), sink).ScanTokens()
	stmts := parser.New(toks, sink).Parse()
	if sink.HadError {
		fmt.Fprint(stdio.Stderr, buf.String())
		return errCompileFailed
	}

	for _, s := range stmts {
		if exprStmt, ok := s.(*ast.ExpressionStmt); ok {
			fmt.Fprintln(stdio.Stdout, ast.Print(exprStmt.Expression))
			continue
		}
		fmt.Fprintf(stdio.Stdout, "%T\n", s)
	}
	return nil
}
