package interp

import (
	"fmt"

	"github.com/dolthub/swiss"
)

// Environment is a chained name->value scope, the runtime counterpart of the
// resolver's lexical-depth bookkeeping. Each block, function call, and class
// body pushes a new Environment enclosing the one active at that point; the
// global Environment has a nil Enclosing link.
//
// The variable table is a swiss.Map rather than a builtin Go map: scopes are
// created and torn down constantly (once per block, once per call) and swiss
// tables give better allocation and probe behavior for these small, hot,
// string-keyed, frequently-recreated tables than the builtin map.
type Environment struct {
	vars      *swiss.Map[string, Value]
	Enclosing *Environment
}

// NewEnvironment creates an environment enclosed by the given parent, or a
// new global environment if enclosing is nil.
func NewEnvironment(enclosing *Environment) *Environment {
	return &Environment{
		vars:      swiss.NewMap[string, Value](8),
		Enclosing: enclosing,
	}
}

// Define unconditionally binds name to value in this environment, creating
// the entry if it does not already exist. Re-declaring an existing name in
// the same environment silently replaces it, matching Lox's "var x; var x;"
// semantics, which the resolver permits at global scope.
func (e *Environment) Define(name string, value Value) {
	e.vars.Put(name, value)
}

// Get looks up name in this environment, then recursively in each enclosing
// environment, returning a runtime error if it is never found.
func (e *Environment) Get(name string) (Value, error) {
	for env := e; env != nil; env = env.Enclosing {
		if v, ok := env.vars.Get(name); ok {
			return v, nil
		}
	}
	return nil, fmt.Errorf("Undefined variable '%s'.", name)
}

// Assign replaces the value bound to name in the nearest environment
// (starting at this one) that already defines it, returning a runtime error
// if name is not defined anywhere in the chain. Unlike Define, Assign never
// creates a new binding.
func (e *Environment) Assign(name string, value Value) error {
	for env := e; env != nil; env = env.Enclosing {
		if _, ok := env.vars.Get(name); ok {
			env.vars.Put(name, value)
			return nil
		}
	}
	return fmt.Errorf("Undefined variable '%s'.", name)
}

// ancestor walks exactly depth Enclosing links above e. The resolver
// guarantees depth never exceeds the actual chain length for any node it
// has resolved.
func (e *Environment) ancestor(depth int) *Environment {
	env := e
	for i := 0; i < depth; i++ {
		env = env.Enclosing
	}
	return env
}

// GetAt reads name directly from the environment depth links above e,
// without recursing or falling back: the resolver guarantees that exact
// environment already contains name.
func (e *Environment) GetAt(depth int, name string) Value {
	v, _ := e.ancestor(depth).vars.Get(name)
	return v
}

// AssignAt writes name directly into the environment depth links above e,
// without recursing or falling back.
func (e *Environment) AssignAt(depth int, name string, value Value) {
	e.ancestor(depth).vars.Put(name, value)
}
