package maincmd

import (
	"context"
	"os"

	"github.com/mna/mainer"

	"github.com/mna/lox/lang/host"
)

// Run executes a single Lox source file.
func (c *Cmd) Run(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return RunFile(ctx, stdio, c.Config.MaxCallDepth, args[0])
}

// RunFile reads path and interprets it, reporting the exit code the
// external interfaces contract requires: 65 on a compile error, 70 on an
// uncaught runtime error.
func RunFile(_ context.Context, stdio mainer.Stdio, maxCallDepth int, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	h := host.New(stdio.Stdout)
	h.Interpreter.MaxCallDepth = maxCallDepth
	h.Run(string(src))

	if h.Sink.HadError {
		return errCompileFailed
	}
	if h.Sink.HadRuntimeError {
		return errRuntimeFailed
	}
	return nil
}
