package maincmd

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/mna/lox/lang/diag"
	"github.com/mna/lox/lang/scanner"
)

// Tokenize runs only the scanner over a file and prints the resulting
// tokens, one per line.
func (c *Cmd) Tokenize(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return TokenizeFile(ctx, stdio, args[0])
}

// TokenizeFile is the reusable entry point also exercised by tests.
func TokenizeFile(_ context.Context, stdio mainer.Stdio, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	sink := diag.New(&buf)
	toks := scanner.New(string(src), sink).ScanTokens()
	for _, tok := range toks {
		fmt.Fprintln(stdio.Stdout, tok.String())
	}
	if sink.HadError {
		fmt.Fprint(stdio.Stderr, buf.String())
		return errCompileFailed
	}
	return nil
}
