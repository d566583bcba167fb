package interpreter

import (
	"fmt"

	"github.com/mna/lox/lang/token"
)

// RuntimeError is a Lox runtime error: it carries the token whose line
// number is reported alongside the message (see lang/diag). It is a plain
// Go error, propagated up the call stack exactly like any other error --
// no panic/recover is used for runtime failures, only for the parser's
// error recovery.
type RuntimeError struct {
	Token   token.Token
	Message string
}

func (e *RuntimeError) Error() string { return e.Message }

func runtimeErr(tok token.Token, format string, args ...any) error {
	return &RuntimeError{Token: tok, Message: fmt.Sprintf(format, args...)}
}
