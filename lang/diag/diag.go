// Package diag reports compile-time and runtime diagnostics in the exact
// formats consumed by the reference tests, and tracks whether any error
// was reported so callers can choose an exit code without relying on
// process-global state.
package diag

import (
	"fmt"
	"io"

	"github.com/mna/lox/lang/token"
)

// Sink collects diagnostics for a single run. A Sink is a value, not a
// package-level global, so multiple independent runs (e.g. concurrent
// tests) never share state.
type Sink struct {
	Out io.Writer

	HadError        bool
	HadRuntimeError bool
}

// New returns a Sink writing reports to out.
func New(out io.Writer) *Sink {
	return &Sink{Out: out}
}

// Error reports a scanner error at line, with no location detail.
func (s *Sink) Error(line int, message string) {
	s.report(line, "", message)
}

// ErrorAtToken reports a parser or resolver error at tok's line, with
// location detail derived from tok.
func (s *Sink) ErrorAtToken(tok token.Token, message string) {
	if tok.Kind == token.EOF {
		s.report(tok.Line, "at end", message)
	} else {
		s.report(tok.Line, fmt.Sprintf("at '%s'", tok.Lexeme), message)
	}
}

func (s *Sink) report(line int, where, message string) {
	s.HadError = true
	fmt.Fprintf(s.Out, "[line %d] Error %s: %s\n", line, where, message)
}

// RuntimeError reports an uncaught runtime error.
func (s *Sink) RuntimeError(message string, line int) {
	s.HadRuntimeError = true
	fmt.Fprintf(s.Out, "%s\n[line %d]\n", message, line)
}

// Reset clears the error flags so a Sink can be reused across REPL lines.
func (s *Sink) Reset() {
	s.HadError = false
	s.HadRuntimeError = false
}
