package interpreter

import (
	"fmt"
	"io"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/token"
)

// Interpreter walks a resolved AST, evaluating statements against a chain
// of environments. It is owned by a lang/host.Host, which threads a
// diag.Sink and REPL flag alongside it -- there is no package-global
// interpreter state.
type Interpreter struct {
	Globals     *Environment
	environment *Environment
	locals      map[ast.Expr]int

	Stdout io.Writer

	// REPL makes bare expression statements print their value, the way the
	// interactive prompt does; file execution leaves it false.
	REPL bool

	// MaxCallDepth bounds recursive Function.Call nesting; 0 means
	// unlimited. Configurable via internal/config (LOX_MAX_CALL_DEPTH).
	MaxCallDepth int
	callDepth    int
}

// New returns an Interpreter writing Print output to stdout, with the
// clock() native function already defined.
func New(stdout io.Writer) *Interpreter {
	globals := NewEnvironment()
	globals.Define("clock", clockFn())
	return &Interpreter{
		Globals:     globals,
		environment: globals,
		locals:      map[ast.Expr]int{},
		Stdout:      stdout,
	}
}

// SetLocals merges the resolver's side-table into the interpreter's. Must be
// called after a clean (error-free) resolve pass and before Interpret.
// Entries from earlier calls are kept, so functions declared by an earlier
// run on the same Interpreter (e.g. a previous REPL line) still find their
// resolved depths.
func (in *Interpreter) SetLocals(locals map[ast.Expr]int) {
	for e, d := range locals {
		in.locals[e] = d
	}
}

// Interpret executes a top-level statement list. Execution stops at the
// first runtime error -- remaining top-level statements do not run.
func (in *Interpreter) Interpret(stmts []ast.Stmt) error {
	for _, s := range stmts {
		if _, err := in.execute(s); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) execute(s ast.Stmt) (signal, error) {
	switch s := s.(type) {
	case *ast.ExpressionStmt:
		v, err := in.eval(s.Expression)
		if err != nil {
			return noSignal, err
		}
		if in.REPL {
			fmt.Fprintln(in.Stdout, stringify(v))
		}
		return noSignal, nil

	case *ast.PrintStmt:
		v, err := in.eval(s.Expression)
		if err != nil {
			return noSignal, err
		}
		fmt.Fprintln(in.Stdout, stringify(v))
		return noSignal, nil

	case *ast.VarStmt:
		var v Value = Nil{}
		if s.Initializer != nil {
			var err error
			v, err = in.eval(s.Initializer)
			if err != nil {
				return noSignal, err
			}
		}
		in.environment.Define(s.Name.Lexeme, v)
		return noSignal, nil

	case *ast.BlockStmt:
		return in.executeBlock(s.Statements, NewChildEnvironment(in.environment))

	case *ast.IfStmt:
		cond, err := in.eval(s.Condition)
		if err != nil {
			return noSignal, err
		}
		if cond.Truthy() {
			return in.execute(s.Then)
		} else if s.Else != nil {
			return in.execute(s.Else)
		}
		return noSignal, nil

	case *ast.WhileStmt:
		for {
			cond, err := in.eval(s.Condition)
			if err != nil {
				return noSignal, err
			}
			if !cond.Truthy() {
				return noSignal, nil
			}
			sig, err := in.execute(s.Body)
			if err != nil || sig.kind != signalNone {
				return sig, err
			}
		}

	case *ast.FunctionStmt:
		fn := &Function{Declaration: s, Closure: in.environment}
		in.environment.Define(s.Name.Lexeme, fn)
		return noSignal, nil

	case *ast.ReturnStmt:
		var v Value = Nil{}
		if s.Value != nil {
			var err error
			v, err = in.eval(s.Value)
			if err != nil {
				return noSignal, err
			}
		}
		return signal{kind: signalReturn, value: v}, nil

	case *ast.ClassStmt:
		return in.executeClass(s)

	default:
		panic("interpreter: unknown statement node")
	}
}

func (in *Interpreter) executeClass(s *ast.ClassStmt) (signal, error) {
	in.environment.Define(s.Name.Lexeme, Nil{})

	var superclass *Class
	if s.Superclass != nil {
		v, err := in.eval(s.Superclass)
		if err != nil {
			return noSignal, err
		}
		sc, ok := v.(*Class)
		if !ok {
			return noSignal, runtimeErr(s.Superclass.Name, "Superclass must be a class.")
		}
		superclass = sc
	}

	methodEnv := in.environment
	if s.Superclass != nil {
		methodEnv = NewChildEnvironment(in.environment)
		methodEnv.Define("super", superclass)
	}

	methods := make(map[string]*Function, len(s.Methods))
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = &Function{
			Declaration:   m,
			Closure:       methodEnv,
			IsInitializer: m.Name.Lexeme == "init",
		}
	}

	class := &Class{Name: s.Name.Lexeme, Superclass: superclass, Methods: methods}
	if err := in.environment.Assign(s.Name.Lexeme, class); err != nil {
		return noSignal, runtimeErr(s.Name, "%s", err)
	}
	return noSignal, nil
}

// executeBlock runs stmts against env, always restoring the previous
// environment on every exit path (normal completion, a runtime error, or a
// return signal in flight).
func (in *Interpreter) executeBlock(stmts []ast.Stmt, env *Environment) (signal, error) {
	previous := in.environment
	in.environment = env
	defer func() { in.environment = previous }()

	for _, s := range stmts {
		sig, err := in.execute(s)
		if err != nil || sig.kind != signalNone {
			return sig, err
		}
	}
	return noSignal, nil
}

func (in *Interpreter) lookUpVariable(name token.Token, expr ast.Expr) (Value, error) {
	if distance, ok := in.locals[expr]; ok {
		return in.environment.GetAt(distance, name.Lexeme)
	}
	v, err := in.Globals.Get(name.Lexeme)
	if err != nil {
		return nil, runtimeErr(name, "Undefined variable '%s'.", name.Lexeme)
	}
	return v, nil
}
