package interp

import (
	"github.com/mna/loxwalk/lang/ast"
	"github.com/mna/loxwalk/lang/token"
)

func (i *Interpreter) eval(e ast.Expr) (Value, error) {
	switch e := e.(type) {
	case *ast.LiteralExpr:
		return literalValue(e.Tok), nil

	case *ast.GroupingExpr:
		return i.eval(e.Inner)

	case *ast.VariableExpr:
		return i.lookUpVariable(e.Name, e)

	case *ast.AssignExpr:
		return i.evalAssign(e)

	case *ast.UnaryExpr:
		return i.evalUnary(e)

	case *ast.BinaryExpr:
		return i.evalBinary(e)

	case *ast.LogicalExpr:
		return i.evalLogical(e)

	case *ast.CallExpr:
		return i.evalCall(e)

	case *ast.GetExpr:
		return i.evalGet(e)

	case *ast.SetExpr:
		return i.evalSet(e)

	case *ast.ThisExpr:
		return i.lookUpVariable(e.Keyword, e)

	case *ast.SuperExpr:
		return i.evalSuper(e)

	default:
		panic("interp: unhandled expression type")
	}
}

func literalValue(tok token.Token) Value {
	switch tok.Type {
	case token.NUMBER:
		return Number(tok.Literal.(float64))
	case token.STRING:
		return String(tok.Literal.(string))
	case token.TRUE:
		return Boolean(true)
	case token.FALSE:
		return Boolean(false)
	default: // token.NIL
		return NilValue
	}
}

func (i *Interpreter) evalAssign(e *ast.AssignExpr) (Value, error) {
	value, err := i.eval(e.Value)
	if err != nil {
		return nil, err
	}
	if depth, ok := i.locals[e]; ok {
		i.env.AssignAt(depth, e.Name.Lexeme, value)
		return value, nil
	}
	if err := i.Globals.Assign(e.Name.Lexeme, value); err != nil {
		return nil, newRuntimeError(e.Name, "%s", err.Error())
	}
	return value, nil
}

func (i *Interpreter) evalUnary(e *ast.UnaryExpr) (Value, error) {
	right, err := i.eval(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Op.Type {
	case token.MINUS:
		n, ok := right.(Number)
		if !ok {
			return nil, newRuntimeError(e.Op, "Operand must be a number.")
		}
		return -n, nil
	case token.BANG:
		return Boolean(!Truthy(right)), nil
	default:
		panic("interp: unhandled unary operator")
	}
}

func (i *Interpreter) evalLogical(e *ast.LogicalExpr) (Value, error) {
	left, err := i.eval(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Op.Type == token.OR {
		if Truthy(left) {
			return left, nil
		}
	} else {
		if !Truthy(left) {
			return left, nil
		}
	}
	return i.eval(e.Right)
}

func (i *Interpreter) evalBinary(e *ast.BinaryExpr) (Value, error) {
	left, err := i.eval(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.eval(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Type {
	case token.PLUS:
		_, leftIsString := left.(String)
		_, rightIsString := right.(String)
		if leftIsString || rightIsString {
			return String(left.String() + right.String()), nil
		}
		ln, lok := left.(Number)
		rn, rok := right.(Number)
		if !lok || !rok {
			return nil, newRuntimeError(e.Op, "Operands must be two numbers or two strings.")
		}
		return ln + rn, nil

	case token.MINUS:
		ln, rn, err := numberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return ln - rn, nil

	case token.STAR:
		ln, rn, err := numberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return ln * rn, nil

	case token.SLASH:
		ln, rn, err := numberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return ln / rn, nil

	case token.GT:
		ln, rn, err := numberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return Boolean(ln > rn), nil

	case token.GE:
		ln, rn, err := numberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return Boolean(ln >= rn), nil

	case token.LT:
		ln, rn, err := numberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return Boolean(ln < rn), nil

	case token.LE:
		ln, rn, err := numberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return Boolean(ln <= rn), nil

	case token.EQEQ:
		return Boolean(Equal(left, right)), nil

	case token.BANGEQ:
		return Boolean(!Equal(left, right)), nil

	default:
		panic("interp: unhandled binary operator")
	}
}

func numberOperands(op token.Token, left, right Value) (Number, Number, error) {
	ln, ok := left.(Number)
	if !ok {
		return 0, 0, newRuntimeError(op, "Operands must be numbers.")
	}
	rn, ok := right.(Number)
	if !ok {
		return 0, 0, newRuntimeError(op, "Operands must be numbers.")
	}
	return ln, rn, nil
}

func (i *Interpreter) evalCall(e *ast.CallExpr) (Value, error) {
	callee, err := i.eval(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, len(e.Args))
	for idx, a := range e.Args {
		v, err := i.eval(a)
		if err != nil {
			return nil, err
		}
		args[idx] = v
	}

	callable, ok := callee.(Callable)
	if !ok {
		return nil, newRuntimeError(e.Paren, "Can only call functions and classes.")
	}
	if len(args) != callable.Arity() {
		return nil, newRuntimeError(e.Paren, "Expected %d arguments but got %d.", callable.Arity(), len(args))
	}

	if i.MaxCallDepth > 0 {
		if i.callDepth >= i.MaxCallDepth {
			return nil, newRuntimeError(e.Paren, "Stack overflow.")
		}
		i.callDepth++
		defer func() { i.callDepth-- }()
	}

	return callable.Call(i, args)
}

func (i *Interpreter) evalGet(e *ast.GetExpr) (Value, error) {
	obj, err := i.eval(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*Instance)
	if !ok {
		return nil, newRuntimeError(e.Name, "Only instances have properties.")
	}
	v, err := instance.Get(e.Name.Lexeme)
	if err != nil {
		return nil, newRuntimeError(e.Name, "%s", err.Error())
	}
	return v, nil
}

func (i *Interpreter) evalSet(e *ast.SetExpr) (Value, error) {
	obj, err := i.eval(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*Instance)
	if !ok {
		return nil, newRuntimeError(e.Name, "Only instances have fields.")
	}
	value, err := i.eval(e.Value)
	if err != nil {
		return nil, err
	}
	instance.Set(e.Name.Lexeme, value)
	return value, nil
}

func (i *Interpreter) evalSuper(e *ast.SuperExpr) (Value, error) {
	depth := i.locals[e]
	superVal := i.env.GetAt(depth, "super")
	superclass := superVal.(*Class)

	// "this" is always declared exactly one scope nearer than "super",
	// because execClass wraps the method closures in the "super" environment
	// first and the "this" environment (added by bind) second.
	instanceVal := i.env.GetAt(depth-1, "this")
	instance := instanceVal.(*Instance)

	method, ok := superclass.FindMethod(e.Method.Lexeme)
	if !ok {
		return nil, newRuntimeError(e.Method, "Undefined property '%s'.", e.Method.Lexeme)
	}
	return method.bind(instance), nil
}
