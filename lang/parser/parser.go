// Package parser implements a recursive-descent, predictive parser that
// turns a token stream into the AST defined by lang/ast.
package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mna/loxwalk/lang/ast"
	"github.com/mna/loxwalk/lang/scanner"
	"github.com/mna/loxwalk/lang/token"
)

// ParseError is a single syntax error, already formatted the way the spec's
// error-reporting convention requires: "[line N] Error<WHERE>: <MESSAGE>".
type ParseError struct {
	Pos     token.Pos
	Where   string
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("[line %d] Error%s: %s", e.Pos.Line(), e.Where, e.Message)
}

// ErrorList collects every syntax error found while parsing one program.
type ErrorList []*ParseError

func (l ErrorList) Error() string {
	parts := make([]string, len(l))
	for i, e := range l {
		parts[i] = e.Error()
	}
	return strings.Join(parts, "\n")
}

// Err returns l as an error, or nil if l is empty.
func (l ErrorList) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

// ParseProgram scans and parses src as a complete Lox program. The returned
// statements are valid to resolve and interpret only if err is nil; when the
// parser encounters a syntax error, it recovers at the next statement
// boundary and keeps parsing so it can report as many errors as possible in
// a single pass, so a non-nil error does not mean stmts is empty, only that
// it should not be run.
func ParseProgram(src []byte) ([]ast.Stmt, error) {
	var p parser
	p.init(src)
	stmts := p.program()
	return stmts, p.errors.Err()
}

// parser holds all mutable state for a single parse.
type parser struct {
	scanner scanner.Scanner
	errors  ErrorList

	tok     token.Token // current token
	prevTok token.Token // token just consumed
}

func (p *parser) init(src []byte) {
	p.scanner = *scanner.New(src, func(pos token.Pos, msg string) {
		p.errors = append(p.errors, &ParseError{Pos: pos, Message: msg})
	})
	p.advance()
}

func (p *parser) advance() {
	p.prevTok = p.tok
	p.tok = p.scanner.Scan()
}

// check reports whether the current token has type t, without consuming it.
func (p *parser) check(t token.Type) bool {
	return p.tok.Type == t
}

// match consumes and returns true if the current token has one of the given
// types, otherwise it leaves the parser untouched and returns false.
func (p *parser) match(types ...token.Type) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

// errPanicMode is recovered at the statement level; its presence unwinds the
// current declaration/statement so the parser can resynchronize and keep
// looking for further errors instead of aborting on the first one.
var errPanicMode = errors.New("parse: panic mode")

// expect consumes the current token if it has type t, returning it;
// otherwise it records a syntax error and panics with errPanicMode.
func (p *parser) expect(t token.Type, msg string) token.Token {
	if p.check(t) {
		tok := p.tok
		p.advance()
		return tok
	}
	p.errorExpected(msg)
	panic(errPanicMode)
}

func (p *parser) error(tok token.Token, msg string) {
	where := fmt.Sprintf(" at '%s'", tok.Lexeme)
	if tok.Type == token.EOF {
		where = " at end"
	}
	p.errors = append(p.errors, &ParseError{Pos: tok.Pos, Where: where, Message: msg})
}

func (p *parser) errorExpected(msg string) {
	p.error(p.tok, "Expect "+msg+".")
}

// synchronize discards tokens until it reaches a plausible statement
// boundary, so that a single syntax error does not cascade into a flood of
// spurious follow-on errors.
func (p *parser) synchronize() {
	p.advance()
	for p.tok.Type != token.EOF {
		if p.prevTok.Type == token.SEMICOLON {
			return
		}
		switch p.tok.Type {
		case token.CLASS, token.FUN, token.VAR, token.FOR, token.IF, token.WHILE, token.PRINT, token.RETURN:
			return
		}
		p.advance()
	}
}

func (p *parser) program() []ast.Stmt {
	var stmts []ast.Stmt
	for p.tok.Type != token.EOF {
		if s := p.declarationRecover(); s != nil {
			stmts = append(stmts, s)
		}
	}
	return stmts
}

// declarationRecover calls declaration and, if it panics with errPanicMode,
// synchronizes and returns nil instead of propagating the panic: this is
// the one place panic-mode recovery happens, mirroring how a single bad
// statement is discarded without aborting the whole parse.
func (p *parser) declarationRecover() (s ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if r != errPanicMode {
				panic(r)
			}
			p.synchronize()
			s = nil
		}
	}()
	return p.declaration()
}
