package interpreter

import (
	"fmt"

	"github.com/mna/lox/lang/ast"
)

// Function is a user-defined Lox function or method, grounded on the
// teacher's Function/Closure pairing (lang/machine/function.go) but
// walking an AST body instead of executing compiled bytecode.
type Function struct {
	Declaration   *ast.FunctionStmt
	Closure       *Environment
	IsInitializer bool
}

var _ Callable = (*Function)(nil)

func (f *Function) String() string { return fmt.Sprintf("<fn %s>", f.Declaration.Name.Lexeme) }
func (f *Function) Type() string   { return "function" }
func (f *Function) Truthy() bool   { return true }
func (f *Function) Arity() int     { return len(f.Declaration.Params) }

// Bind returns a copy of f whose closure defines "this" as instance,
// used when a method is looked up off an instance.
func (f *Function) Bind(instance *Instance) *Function {
	env := NewChildEnvironment(f.Closure)
	env.Define("this", instance)
	return &Function{Declaration: f.Declaration, Closure: env, IsInitializer: f.IsInitializer}
}

// Call executes the function body in a fresh environment chained off its
// closure. A "return" statement surfaces here as a signal rather than an
// error (see signal.go); an initializer always yields its bound instance.
func (f *Function) Call(in *Interpreter, args []Value) (Value, error) {
	env := NewChildEnvironment(f.Closure)
	for i, param := range f.Declaration.Params {
		env.Define(param.Lexeme, args[i])
	}

	sig, err := in.executeBlock(f.Declaration.Body, env)
	if err != nil {
		return nil, err
	}

	if f.IsInitializer {
		return f.Closure.GetAt(0, "this")
	}
	if sig.kind == signalReturn {
		return sig.value, nil
	}
	return Nil{}, nil
}
