package interp

import "github.com/mna/loxwalk/lang/ast"

// Callable is any value that can appear as the callee of a Call expression:
// a user-defined function or method, a bound method, a built-in, or a class
// (calling a class constructs an instance).
type Callable interface {
	Value
	// Name returns the callable's name, or "" if it has none (an anonymous
	// function has no name to report in its display form).
	Name() string
	// Arity returns the number of parameters the callable declares.
	Arity() int
	// Call invokes the callable with the given already-evaluated arguments.
	Call(i *Interpreter, args []Value) (Value, error)
}

// Function is a user-defined function, method, or closure: a *ast.FunctionStmt
// paired with the environment that was active at the point of its
// declaration (its closure).
type Function struct {
	Decl          *ast.FunctionStmt
	Closure       *Environment
	IsInitializer bool
}

var (
	_ Value    = (*Function)(nil)
	_ Callable = (*Function)(nil)
)

func (f *Function) String() string {
	if f.Decl.Name == "" {
		return "<fn>"
	}
	return "<fn " + f.Decl.Name + ">"
}
func (f *Function) Type() string { return "function" }
func (f *Function) Name() string { return f.Decl.Name }
func (f *Function) Arity() int   { return len(f.Decl.Params) }

// Call creates a new environment enclosed by f's closure, binds each
// parameter to the corresponding argument, and executes the body. A
// non-local return unwinds exactly one level here: if the function is an
// initializer, the returned value is discarded and the bound "this" is
// returned instead; otherwise the returned value is propagated. A body that
// completes without an explicit return yields Nil (or "this", again for an
// initializer).
func (f *Function) Call(i *Interpreter, args []Value) (Value, error) {
	env := NewEnvironment(f.Closure)
	for idx, param := range f.Decl.Params {
		env.Define(param.Lexeme, args[idx])
	}

	err := i.executeBlock(f.Decl.Body.Statements, env)
	if ret, ok := err.(*returnSignal); ok {
		if f.IsInitializer {
			return f.Closure.GetAt(0, "this"), nil
		}
		return ret.value, nil
	}
	if err != nil {
		return nil, err
	}
	if f.IsInitializer {
		return f.Closure.GetAt(0, "this"), nil
	}
	return NilValue, nil
}

// bind produces a fresh Function whose closure is a new environment
// enclosing f's own closure and defining "this" as instance. This is how a
// method retrieved via a Get or Super expression becomes a bound method:
// invoking it later still sees instance as "this", because the binding
// environment, not the instance itself, is what the returned Function
// closes over.
func (f *Function) bind(instance *Instance) *Function {
	env := NewEnvironment(f.Closure)
	env.Define("this", instance)
	return &Function{Decl: f.Decl, Closure: env, IsInitializer: f.IsInitializer}
}

// Builtin is a native function provided by the host, such as clock or
// subString. It holds no closure.
type Builtin struct {
	FnName  string
	FnArity int
	Fn      func(i *Interpreter, args []Value) (Value, error)
}

var (
	_ Value    = (*Builtin)(nil)
	_ Callable = (*Builtin)(nil)
)

func (b *Builtin) String() string { return "<fn " + b.FnName + ">" }
func (b *Builtin) Type() string   { return "function" }
func (b *Builtin) Name() string   { return b.FnName }
func (b *Builtin) Arity() int     { return b.FnArity }

func (b *Builtin) Call(i *Interpreter, args []Value) (Value, error) {
	return b.Fn(i, args)
}
