package maincmd

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/mna/mainer"

	"github.com/mna/lox/lang/host"
)

// Repl runs the interactive prompt: one line of source at a time, printing
// bare expression results, never exiting the process on a per-line error.
func (c *Cmd) Repl(ctx context.Context, stdio mainer.Stdio, _ []string) error {
	return RunREPL(ctx, stdio, c.Config.Prompt)
}

// RunREPL reads lines from stdio.Stdin until EOF, running each through a
// shared Host so top-level declarations persist across lines.
func RunREPL(ctx context.Context, stdio mainer.Stdio, prompt string) error {
	h := host.New(stdio.Stdout)
	scanner := bufio.NewScanner(stdio.Stdin)

	for {
		fmt.Fprint(stdio.Stdout, prompt)
		if !scanner.Scan() {
			break
		}
		select {
		case <-ctx.Done():
			return nil
		default:
		}
		h.RunREPLLine(scanner.Text())
	}
	if err := scanner.Err(); err != nil && err != io.EOF {
		return err
	}
	return nil
}
