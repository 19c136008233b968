package interp

import (
	"fmt"

	"github.com/mna/loxwalk/lang/token"
)

// returnSignal is the non-local exit used to implement the return statement.
// exec and executeBlock propagate it as an ordinary Go error up through statement
// execution until Function.Call catches it; it must never reach the
// top-level Run call, and it is never shown to a user.
//
// This is Go's idiomatic substitute for the teacher's panic/recover-based
// non-local exit (and for jlox's Java-exception-based one): a plain
// tree-walking recursive evaluator already threads an error result back up
// the call stack on every return, so no panic is needed to unwind early —
// only a distinct error type that callers switch on, exactly as Go code
// distinguishes a sentinel error from an ordinary one.
type returnSignal struct {
	value Value
}

func (r *returnSignal) Error() string { return "return outside of a function call" }

// RuntimeError is a dynamic (evaluation-time) error: a type mismatch on an
// operator, an undefined variable or property, a call to a non-callable
// value, an arity mismatch, or a non-class superclass. It carries the
// source line of the token most responsible for the error so the top-level
// caller can format it the same way scan/parse/resolve errors are
// formatted: "[line N] Error<WHERE>: <MESSAGE>".
type RuntimeError struct {
	Line    int
	Where   string // "", " at end", or " at '<LEXEME>'"
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("[line %d] Error%s: %s", e.Line, e.Where, e.Message)
}

// newRuntimeError builds a RuntimeError anchored on the given token, using
// its lexeme for the "at '<LEXEME>'" location the spec's error format
// requires, or " at end" for an EOF token.
func newRuntimeError(tok token.Token, format string, args ...any) *RuntimeError {
	where := fmt.Sprintf(" at '%s'", tok.Lexeme)
	if tok.Type == token.EOF {
		where = " at end"
	}
	return &RuntimeError{
		Line:    tok.Line(),
		Where:   where,
		Message: fmt.Sprintf(format, args...),
	}
}
