package interpreter

import (
	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/token"
)

func (in *Interpreter) eval(e ast.Expr) (Value, error) {
	switch e := e.(type) {
	case *ast.Literal:
		return literalValue(e.Value), nil

	case *ast.Grouping:
		return in.eval(e.Expression)

	case *ast.Unary:
		right, err := in.eval(e.Right)
		if err != nil {
			return nil, err
		}
		switch e.Op.Kind {
		case token.Minus:
			n, ok := right.(Number)
			if !ok {
				return nil, runtimeErr(e.Op, "Operand must be a number.")
			}
			return -n, nil
		case token.Bang:
			return Bool(!right.Truthy()), nil
		}
		panic("interpreter: unknown unary operator")

	case *ast.Binary:
		return in.evalBinary(e)

	case *ast.Logical:
		left, err := in.eval(e.Left)
		if err != nil {
			return nil, err
		}
		if e.Op.Kind == token.Or {
			if left.Truthy() {
				return left, nil
			}
		} else {
			if !left.Truthy() {
				return left, nil
			}
		}
		return in.eval(e.Right)

	case *ast.Variable:
		return in.lookUpVariable(e.Name, e)

	case *ast.Assign:
		v, err := in.eval(e.Value)
		if err != nil {
			return nil, err
		}
		if distance, ok := in.locals[e]; ok {
			in.environment.AssignAt(distance, e.Name.Lexeme, v)
		} else if err := in.Globals.Assign(e.Name.Lexeme, v); err != nil {
			return nil, runtimeErr(e.Name, "Undefined variable '%s'.", e.Name.Lexeme)
		}
		return v, nil

	case *ast.Call:
		return in.evalCall(e)

	case *ast.Get:
		obj, err := in.eval(e.Object)
		if err != nil {
			return nil, err
		}
		inst, ok := obj.(*Instance)
		if !ok {
			return nil, runtimeErr(e.Name, "Only instances have properties.")
		}
		v, ok := inst.Get(e.Name.Lexeme)
		if !ok {
			return nil, runtimeErr(e.Name, "Undefined property '%s'.", e.Name.Lexeme)
		}
		return v, nil

	case *ast.Set:
		obj, err := in.eval(e.Object)
		if err != nil {
			return nil, err
		}
		inst, ok := obj.(*Instance)
		if !ok {
			return nil, runtimeErr(e.Name, "Only instances have fields.")
		}
		v, err := in.eval(e.Value)
		if err != nil {
			return nil, err
		}
		inst.Set(e.Name.Lexeme, v)
		return v, nil

	case *ast.This:
		return in.lookUpVariable(e.Keyword, e)

	case *ast.Super:
		return in.evalSuper(e)

	default:
		panic("interpreter: unknown expression node")
	}
}

func literalValue(v any) Value {
	switch v := v.(type) {
	case nil:
		return Nil{}
	case bool:
		return Bool(v)
	case float64:
		return Number(v)
	case string:
		return String(v)
	default:
		panic("interpreter: literal of unsupported type")
	}
}

func (in *Interpreter) evalBinary(e *ast.Binary) (Value, error) {
	left, err := in.eval(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.eval(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Kind {
	case token.EqualEqual:
		return Bool(isEqual(left, right)), nil
	case token.BangEqual:
		return Bool(!isEqual(left, right)), nil
	case token.Plus:
		if ln, lok := left.(Number); lok {
			if rn, rok := right.(Number); rok {
				return ln + rn, nil
			}
		}
		if ls, lok := left.(String); lok {
			if rs, rok := right.(String); rok {
				return ls + rs, nil
			}
		}
		return nil, runtimeErr(e.Op, "Operands must be two numbers or two strings.")
	case token.Minus, token.Slash, token.Star, token.Greater, token.GreaterEqual, token.Less, token.LessEqual:
		ln, lok := left.(Number)
		rn, rok := right.(Number)
		if !lok || !rok {
			return nil, runtimeErr(e.Op, "Operands must be numbers.")
		}
		switch e.Op.Kind {
		case token.Minus:
			return ln - rn, nil
		case token.Slash:
			return ln / rn, nil
		case token.Star:
			return ln * rn, nil
		case token.Greater:
			return Bool(ln > rn), nil
		case token.GreaterEqual:
			return Bool(ln >= rn), nil
		case token.Less:
			return Bool(ln < rn), nil
		case token.LessEqual:
			return Bool(ln <= rn), nil
		}
	}
	panic("interpreter: unknown binary operator")
}

func (in *Interpreter) evalCall(e *ast.Call) (Value, error) {
	callee, err := in.eval(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, len(e.Args))
	for i, a := range e.Args {
		v, err := in.eval(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	fn, ok := callee.(Callable)
	if !ok {
		return nil, runtimeErr(e.Paren, "Can only call functions and classes.")
	}
	if len(args) != fn.Arity() {
		return nil, runtimeErr(e.Paren, "Expected %d arguments but got %d.", fn.Arity(), len(args))
	}

	if in.MaxCallDepth > 0 {
		in.callDepth++
		if in.callDepth > in.MaxCallDepth {
			in.callDepth--
			return nil, runtimeErr(e.Paren, "Stack overflow.")
		}
		defer func() { in.callDepth-- }()
	}

	return fn.Call(in, args)
}

func (in *Interpreter) evalSuper(e *ast.Super) (Value, error) {
	distance := in.locals[e]
	superVal, err := in.environment.GetAt(distance, "super")
	if err != nil {
		return nil, runtimeErr(e.Keyword, "%s", err)
	}
	superclass := superVal.(*Class)

	thisVal, err := in.environment.GetAt(distance-1, "this")
	if err != nil {
		return nil, runtimeErr(e.Keyword, "%s", err)
	}
	instance := thisVal.(*Instance)

	method, ok := superclass.FindMethod(e.Method.Lexeme)
	if !ok {
		return nil, runtimeErr(e.Method, "Undefined property '%s'.", e.Method.Lexeme)
	}
	return method.Bind(instance), nil
}
