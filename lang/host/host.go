// Package host wires the scanner, parser, resolver, and interpreter into
// the single pipeline described by the system: Scan -> Parse -> (abort on
// error) -> Resolve -> (abort on error) -> Interpret. A Host owns a
// diag.Sink and an *interpreter.Interpreter, replacing the process-global
// had_error/had_runtime_error/interpreter state a naive port would reach
// for, the same way the teacher's own machine.Thread replaces global
// interpreter state with a value threaded through calls.
package host

import (
	"io"

	"github.com/mna/lox/lang/diag"
	"github.com/mna/lox/lang/interpreter"
	"github.com/mna/lox/lang/parser"
	"github.com/mna/lox/lang/resolver"
	"github.com/mna/lox/lang/scanner"
)

// Host runs Lox source through the full pipeline and reports diagnostics
// to Sink.
type Host struct {
	Sink        *diag.Sink
	Interpreter *interpreter.Interpreter
}

// New returns a Host whose diagnostics and Print output both go to out.
func New(out io.Writer) *Host {
	return &Host{
		Sink:        diag.New(out),
		Interpreter: interpreter.New(out),
	}
}

// Run scans, parses, resolves, and interprets src. It reports diagnostics
// through h.Sink; callers should inspect h.Sink.HadError and
// h.Sink.HadRuntimeError afterward to choose an exit code.
func (h *Host) Run(src string) {
	toks := scanner.New(src, h.Sink).ScanTokens()

	p := parser.New(toks, h.Sink)
	stmts := p.Parse()
	if h.Sink.HadError {
		return
	}

	r := resolver.New(h.Sink)
	locals := r.Resolve(stmts)
	if h.Sink.HadError {
		return
	}

	h.Interpreter.SetLocals(locals)
	if err := h.Interpreter.Interpret(stmts); err != nil {
		h.reportRuntimeError(err)
	}
}

// RunREPLLine runs one line of REPL input: it resets the sink's error
// flags (so one bad line doesn't poison the exit code of later ones) and
// makes bare expression statements print their value.
func (h *Host) RunREPLLine(line string) {
	h.Sink.Reset()
	h.Interpreter.REPL = true
	h.Run(line)
}

func (h *Host) reportRuntimeError(err error) {
	if rerr, ok := err.(*interpreter.RuntimeError); ok {
		h.Sink.RuntimeError(rerr.Message, rerr.Token.Line)
		return
	}
	h.Sink.RuntimeError(err.Error(), 0)
}
