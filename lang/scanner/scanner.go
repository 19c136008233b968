// Package scanner converts Lox source text into a flat stream of tokens for
// the parser. Its error-reporting shape (an injected handler aggregated into
// a sortable ErrorList) follows the same pattern as Go's own go/scanner
// package, adapted here to the line/column token.Pos this module uses
// instead of go/token's file-offset positions.
package scanner

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mna/loxwalk/lang/token"
)

// Error is a single scan-time error: an illegal character, an unterminated
// string, or a malformed number literal.
type Error struct {
	Pos token.Pos
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Pos.Line(), e.Msg)
}

// ErrorList collects the errors encountered while scanning a single source.
type ErrorList []*Error

// Add appends a new error to the list.
func (l *ErrorList) Add(pos token.Pos, msg string) {
	*l = append(*l, &Error{Pos: pos, Msg: msg})
}

// Sort orders the list by source line, ascending; scan errors are already
// discovered in source order, but a caller that merges errors from several
// scans (e.g. multiple files in one run) may want a stable final order.
func (l ErrorList) Sort() {
	sort.SliceStable(l, func(i, j int) bool { return l[i].Pos.Line() < l[j].Pos.Line() })
}

func (l ErrorList) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}
	var sb strings.Builder
	for i, e := range l {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(e.Error())
	}
	return sb.String()
}

// Err returns l as an error, or nil if l is empty.
func (l ErrorList) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

// Scanner tokenizes a single Lox source file.
type Scanner struct {
	src []byte
	err func(pos token.Pos, msg string)

	cur  rune // current character, -1 at EOF
	off  int  // byte offset of cur
	roff int  // byte offset just past cur

	line, col       int // position of cur
	startLine, col0 int // position of the token currently being scanned
}

// New creates a Scanner over src. errHandler is invoked once per scan error
// encountered; passing ErrorList.Add as errHandler is the usual way to
// collect them all.
func New(src []byte, errHandler func(pos token.Pos, msg string)) *Scanner {
	s := &Scanner{src: src, err: errHandler, line: 1, col: 0}
	s.advance()
	return s
}

// ScanTokens runs the scanner to completion and returns every token,
// including the trailing EOF sentinel, plus any accumulated errors.
func ScanTokens(src []byte) ([]token.Token, error) {
	var errs ErrorList
	s := New(src, errs.Add)
	var toks []token.Token
	for {
		tok := s.Scan()
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	return toks, errs.Err()
}

func (s *Scanner) advance() {
	if s.cur == '\n' {
		s.line++
		s.col = 0
	}
	if s.roff >= len(s.src) {
		s.off = len(s.src)
		s.cur = -1
		return
	}
	s.off = s.roff
	r, w := rune(s.src[s.roff]), 1
	if r >= utf8.RuneSelf {
		r, w = utf8.DecodeRune(s.src[s.roff:])
	}
	s.roff += w
	s.cur = r
	s.col++
}

// peek returns the byte just past cur without consuming it, or 0 at EOF.
func (s *Scanner) peek() byte {
	if s.roff < len(s.src) {
		return s.src[s.roff]
	}
	return 0
}

// peekNext returns the byte one past peek, or 0 if that is past EOF.
func (s *Scanner) peekNext() byte {
	if s.roff+1 < len(s.src) {
		return s.src[s.roff+1]
	}
	return 0
}

// advanceIf consumes cur and returns true if it equals want, otherwise it
// leaves the scanner untouched and returns false.
func (s *Scanner) advanceIf(want rune) bool {
	if s.cur == want {
		s.advance()
		return true
	}
	return false
}

func (s *Scanner) errorf(format string, args ...any) {
	if s.err != nil {
		s.err(token.MakePos(s.startLine, s.col0), fmt.Sprintf(format, args...))
	}
}

func (s *Scanner) startPos() token.Pos { return token.MakePos(s.startLine, s.col0) }

// Scan returns the next token in the source. Once it returns a token.EOF
// token, every subsequent call also returns token.EOF.
func (s *Scanner) Scan() token.Token {
	s.skipIgnored()

	s.startLine, s.col0 = s.line, s.col
	start := s.off

	if s.cur == -1 {
		return token.Token{Type: token.EOF, Lexeme: "", Pos: s.startPos()}
	}

	switch cur := s.cur; {
	case isAlpha(cur):
		return s.identifier(start)
	case isDigit(cur):
		return s.number(start)
	case cur == '"':
		return s.string(start)
	}

	cur := s.cur
	s.advance()
	switch cur {
	case '(':
		return s.tok(token.LPAREN, start)
	case ')':
		return s.tok(token.RPAREN, start)
	case '{':
		return s.tok(token.LBRACE, start)
	case '}':
		return s.tok(token.RBRACE, start)
	case ',':
		return s.tok(token.COMMA, start)
	case '.':
		return s.tok(token.DOT, start)
	case '-':
		return s.tok(token.MINUS, start)
	case '+':
		return s.tok(token.PLUS, start)
	case ';':
		return s.tok(token.SEMICOLON, start)
	case '*':
		return s.tok(token.STAR, start)
	case '!':
		if s.advanceIf('=') {
			return s.tok(token.BANGEQ, start)
		}
		return s.tok(token.BANG, start)
	case '=':
		if s.advanceIf('=') {
			return s.tok(token.EQEQ, start)
		}
		return s.tok(token.EQ, start)
	case '<':
		if s.advanceIf('=') {
			return s.tok(token.LE, start)
		}
		return s.tok(token.LT, start)
	case '>':
		if s.advanceIf('=') {
			return s.tok(token.GE, start)
		}
		return s.tok(token.GT, start)
	case '/':
		return s.tok(token.SLASH, start)
	default:
		s.errorf("Unexpected character.")
		return s.tok(token.ILLEGAL, start)
	}
}

func (s *Scanner) tok(typ token.Type, start int) token.Token {
	return token.Token{Type: typ, Lexeme: string(s.src[start:s.off]), Pos: s.startPos()}
}

// skipIgnored consumes whitespace and "//" line comments between tokens.
func (s *Scanner) skipIgnored() {
	for {
		switch {
		case s.cur == ' ' || s.cur == '\r' || s.cur == '\t' || s.cur == '\n':
			s.advance()
		case s.cur == '/' && s.peek() == '/':
			for s.cur != '\n' && s.cur != -1 {
				s.advance()
			}
		default:
			return
		}
	}
}

func (s *Scanner) identifier(start int) token.Token {
	for isAlpha(s.cur) || isDigit(s.cur) {
		s.advance()
	}
	lit := string(s.src[start:s.off])
	typ := token.LookupIdent(lit)
	tok := token.Token{Type: typ, Lexeme: lit, Pos: s.startPos()}
	if typ == token.IDENT {
		tok.Literal = lit
	}
	return tok
}

func (s *Scanner) number(start int) token.Token {
	for isDigit(s.cur) {
		s.advance()
	}
	if s.cur == '.' && isDigit(rune(s.peek())) {
		s.advance()
		for isDigit(s.cur) {
			s.advance()
		}
	}
	lit := string(s.src[start:s.off])
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		s.errorf("Invalid number literal %q.", lit)
	}
	return token.Token{Type: token.NUMBER, Lexeme: lit, Literal: v, Pos: s.startPos()}
}

func (s *Scanner) string(start int) token.Token {
	s.advance() // consume opening quote
	var sb strings.Builder
	for s.cur != '"' && s.cur != -1 {
		sb.WriteRune(s.cur)
		s.advance()
	}
	if s.cur == -1 {
		s.errorf("Unterminated string.")
		return token.Token{Type: token.ILLEGAL, Lexeme: string(s.src[start:s.off]), Pos: s.startPos()}
	}
	s.advance() // consume closing quote
	return token.Token{
		Type:    token.STRING,
		Lexeme:  string(s.src[start:s.off]),
		Literal: sb.String(),
		Pos:     s.startPos(),
	}
}

func isAlpha(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
