package interp

import (
	"fmt"
	"io"

	"github.com/dolthub/swiss"
	"github.com/mna/loxwalk/lang/ast"
	"github.com/mna/loxwalk/lang/resolver"
	"github.com/mna/loxwalk/lang/token"
)

// Interpreter walks a resolved AST directly, evaluating expressions and
// executing statements against a chain of Environments. It never lowers the
// tree to any intermediate bytecode form.
type Interpreter struct {
	// Globals is the outermost environment, shared by every call; builtins are
	// installed here before the first Run.
	Globals *Environment
	// env is the environment active for the statement or expression currently
	// being evaluated; it moves as blocks and calls push and pop scopes.
	env *Environment

	// locals is the resolver's node -> scope-distance map. A node absent from
	// this map is resolved directly against Globals.
	locals resolver.Locals

	// Stdout receives the output of print statements.
	Stdout io.Writer

	// MaxCallDepth bounds call-stack recursion; 0 means unbounded. It exists so
	// a host embedding the interpreter (the CLI, a test harness) can cap
	// pathological recursion without the Go stack itself overflowing the
	// process.
	MaxCallDepth int
	callDepth    int
}

// New creates an Interpreter with a fresh global environment and stdout
// writer. Install builtins with Define on the returned Interpreter's
// Globals, or via RegisterBuiltins, before calling Run.
func New(stdout io.Writer) *Interpreter {
	globals := NewEnvironment(nil)
	return &Interpreter{
		Globals: globals,
		env:     globals,
		Stdout:  stdout,
	}
}

// Run executes stmts (typically the top-level statements of a program or a
// single REPL line) against i.Globals, using locals for variable resolution
// distances. It returns the first RuntimeError encountered, if any.
func (i *Interpreter) Run(stmts []ast.Stmt, locals resolver.Locals) error {
	i.locals = locals
	i.env = i.Globals
	for _, s := range stmts {
		if err := i.exec(s); err != nil {
			return err
		}
	}
	return nil
}

// RunStmtForValue executes a single statement and, if it is an
// ExpressionStmt, also returns the value it evaluated to; this backs the
// REPL's "print the value of the last statement" behavior without requiring
// every statement to produce a value. locals is merged into the distances
// kept from earlier calls, so a function declared by an earlier statement
// (or REPL line) still finds its own parameters and locals when called.
func (i *Interpreter) RunStmtForValue(s ast.Stmt, locals resolver.Locals) (Value, error) {
	if i.locals == nil {
		i.locals = make(resolver.Locals, len(locals))
	}
	for n, d := range locals {
		i.locals[n] = d
	}
	if es, ok := s.(*ast.ExpressionStmt); ok {
		return i.eval(es.Expression)
	}
	return nil, i.exec(s)
}

func (i *Interpreter) exec(s ast.Stmt) error {
	switch s := s.(type) {
	case *ast.ExpressionStmt:
		_, err := i.eval(s.Expression)
		return err

	case *ast.PrintStmt:
		v, err := i.eval(s.Expression)
		if err != nil {
			return err
		}
		fmt.Fprintln(i.Stdout, v.String())
		return nil

	case *ast.VarStmt:
		var value Value = NilValue
		if s.Init != nil {
			v, err := i.eval(s.Init)
			if err != nil {
				return err
			}
			value = v
		}
		i.env.Define(s.Name.Lexeme, value)
		return nil

	case *ast.BlockStmt:
		return i.executeBlock(s.Statements, NewEnvironment(i.env))

	case *ast.IfStmt:
		cond, err := i.eval(s.Cond)
		if err != nil {
			return err
		}
		if Truthy(cond) {
			return i.exec(s.Then)
		}
		if s.Else != nil {
			return i.exec(s.Else)
		}
		return nil

	case *ast.WhileStmt:
		for {
			cond, err := i.eval(s.Cond)
			if err != nil {
				return err
			}
			if !Truthy(cond) {
				return nil
			}
			if err := i.exec(s.Body); err != nil {
				return err
			}
		}

	case *ast.FunctionStmt:
		fn := &Function{Decl: s, Closure: i.env}
		i.env.Define(s.Name, fn)
		return nil

	case *ast.ReturnStmt:
		var value Value = NilValue
		if s.Value != nil {
			v, err := i.eval(s.Value)
			if err != nil {
				return err
			}
			value = v
		}
		return &returnSignal{value: value}

	case *ast.ClassStmt:
		return i.execClass(s)

	default:
		return fmt.Errorf("interp: unhandled statement type %T", s)
	}
}

// executeBlock runs stmts against env, restoring the interpreter's previous
// environment before returning (including when stmts returns an error),
// exactly the way a call frame or nested block must not leak its scope into
// whatever runs after it.
func (i *Interpreter) executeBlock(stmts []ast.Stmt, env *Environment) error {
	previous := i.env
	i.env = env
	defer func() { i.env = previous }()

	for _, s := range stmts {
		if err := i.exec(s); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) execClass(s *ast.ClassStmt) error {
	var superclass *Class
	if s.Superclass != nil {
		v, err := i.eval(s.Superclass)
		if err != nil {
			return err
		}
		sc, ok := v.(*Class)
		if !ok {
			return newRuntimeError(s.Superclass.Name, "Superclass must be a class.")
		}
		superclass = sc
	}

	i.env.Define(s.Name.Lexeme, NilValue)

	classEnv := i.env
	if superclass != nil {
		classEnv = NewEnvironment(i.env)
		classEnv.Define("super", superclass)
	}

	methods := swiss.NewMap[string, *Function](uint32(len(s.Methods) + 1))
	for _, m := range s.Methods {
		fn := &Function{Decl: m, Closure: classEnv, IsInitializer: m.Name == "init"}
		methods.Put(m.Name, fn)
	}

	class := NewClass(s.Name.Lexeme, superclass, methods)
	return i.env.Assign(s.Name.Lexeme, class)
}

// lookUpVariable resolves name, which occurred at node, either at the
// distance the resolver recorded for node, or (if node has no recorded
// distance) directly in Globals, which is where builtins live.
func (i *Interpreter) lookUpVariable(name token.Token, node ast.Node) (Value, error) {
	if depth, ok := i.locals[node]; ok {
		return i.env.GetAt(depth, name.Lexeme), nil
	}
	v, err := i.Globals.Get(name.Lexeme)
	if err != nil {
		return nil, newRuntimeError(name, "%s", err.Error())
	}
	return v, nil
}
