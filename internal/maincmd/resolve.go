package maincmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/mna/mainer"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/diag"
	"github.com/mna/lox/lang/parser"
	"github.com/mna/lox/lang/resolver"
	"github.com/mna/lox/lang/scanner"
)

// Resolve runs the scanner, parser, and resolver over a file and prints
// the computed scope distance for every local variable reference.
func (c *Cmd) Resolve(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return ResolveFile(ctx, stdio, args[0])
}

// ResolveFile is the reusable entry point also exercised by tests.
func ResolveFile(_ context.Context, stdio mainer.Stdio, path string) error {
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

	locals := resolver.New(sink).Resolve(stmts)
	if sink.HadError {
		fmt.Fprint(stdio.Stderr, buf.String())
		return errCompileFailed
	}

	lines := make([]string, 0, len(locals))
	for expr, distance := range locals {
		if v, ok := expr.(*ast.Variable); ok {
			lines = append(lines, fmt.Sprintf("%s@%d -> %d", v.Name.Lexeme, v.Name.Line, distance))
		}
	}
	sort.Strings(lines)
	for _, line := range lines {
		fmt.Fprintln(stdio.Stdout, line)
	}
	return nil
}
