// Package resolver performs a static analysis pass between parsing and
// interpretation: it walks the AST once to determine, for every variable
// reference, exactly how many enclosing scopes separate it from the scope
// that declares it. The interpreter uses that distance to read and write
// the right environment slot directly, without falling back to a dynamic
// search up the environment chain, so that scoping is lexical even across
// closures that later add declarations to their enclosing scopes.
//
// A name never found in any scope is left unrecorded rather than reported
// as an error here: Lox's globals (including built-ins) are resolved
// dynamically at runtime, not statically, so that a script may reference a
// function or variable declared later in the same file or a later REPL
// line. This package therefore has no need to import the runtime value
// package at all, built-ins included.
package resolver

import (
	"fmt"

	"github.com/mna/loxwalk/lang/ast"
	"github.com/mna/loxwalk/lang/token"
)

// ResolveError is a single static error found during resolution: a variable
// read in its own initializer, a duplicate declaration in one scope, a
// return outside a function, a bad "this"/"super" use, or a class
// inheriting from itself.
type ResolveError struct {
	Pos     token.Pos
	Where   string
	Message string
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("[line %d] Error%s: %s", e.Pos.Line(), e.Where, e.Message)
}

// ErrorList collects every resolution error found in one program.
type ErrorList []*ResolveError

func (l ErrorList) Error() string {
	s := ""
	for i, e := range l {
		if i > 0 {
			s += "\n"
		}
		s += e.Error()
	}
	return s
}

// Err returns l as an error, or nil if l is empty.
func (l ErrorList) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

type functionKind int

const (
	noFunction functionKind = iota
	plainFunction
	method
	initializer
)

type classKind int

const (
	noClass classKind = iota
	inClass
	inSubclass
)

// Locals maps each VariableExpr, AssignExpr, ThisExpr and SuperExpr node to
// the number of scopes between its use and the scope that declares it; a
// node absent from the map resolves at the global (outermost) scope.
type Locals map[ast.Node]int

// Resolve statically resolves every statement in stmts, returning the
// variable-to-scope-distance map the interpreter needs to evaluate them, or
// an error (always an ErrorList) if resolution fails.
func Resolve(stmts []ast.Stmt) (Locals, error) {
	r := &resolver{locals: make(Locals)}
	r.resolveStmts(stmts)
	return r.locals, r.errors.Err()
}

// scope maps a name to whether its initializer has finished evaluating: a
// name is inserted as false by declare and flipped to true by define, so a
// reference to the same name inside its own initializer expression can be
// rejected as a static error instead of silently shadowing the outer
// binding or reading an undefined local.
type scope map[string]bool

type resolver struct {
	scopes []scope
	locals Locals
	errors ErrorList

	currentFunction functionKind
	currentClass    classKind
}

func (r *resolver) error(tok token.Token, msg string) {
	where := fmt.Sprintf(" at '%s'", tok.Lexeme)
	if tok.Type == token.EOF {
		where = " at end"
	}
	r.errors = append(r.errors, &ResolveError{Pos: tok.Pos, Where: where, Message: msg})
}

func (r *resolver) beginScope() { r.scopes = append(r.scopes, scope{}) }
func (r *resolver) endScope()   { r.scopes = r.scopes[:len(r.scopes)-1] }

func (r *resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	sc := r.scopes[len(r.scopes)-1]
	if _, ok := sc[name.Lexeme]; ok {
		r.error(name, "Already a variable with this name in this scope.")
	}
	sc[name.Lexeme] = false
}

func (r *resolver) define(name string) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name] = true
}

// resolveLocal records, for node, the number of scopes between the current
// innermost scope and the one declaring name, walking outward from the
// innermost scope. It records nothing if name is never found in any scope,
// which leaves the interpreter to look it up in the global environment at
// run time (see the package doc comment).
func (r *resolver) resolveLocal(node ast.Node, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.locals[node] = len(r.scopes) - 1 - i
			return
		}
	}
}

func (r *resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}
