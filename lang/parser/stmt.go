package parser

import (
	"github.com/mna/loxwalk/lang/ast"
	"github.com/mna/loxwalk/lang/token"
)

// declaration → classDecl | funDecl | varDecl | statement ;
func (p *parser) declaration() ast.Stmt {
	switch {
	case p.match(token.CLASS):
		return p.classDecl()
	case p.match(token.FUN):
		return p.funDecl("function")
	case p.match(token.VAR):
		return p.varDecl()
	default:
		return p.statement()
	}
}

// classDecl → "class" IDENT ( "<" IDENT )? "{" function* "}" ;
func (p *parser) classDecl() ast.Stmt {
	name := p.expect(token.IDENT, "class name")

	var super *ast.VariableExpr
	if p.match(token.LT) {
		superName := p.expect(token.IDENT, "superclass name")
		super = &ast.VariableExpr{Name: superName}
	}

	p.expect(token.LBRACE, "'{' before class body")
	var methods []*ast.FunctionStmt
	for !p.check(token.RBRACE) && p.tok.Type != token.EOF {
		methods = append(methods, p.funDecl("method"))
	}
	p.expect(token.RBRACE, "'}' after class body")

	return &ast.ClassStmt{Name: name, Superclass: super, Methods: methods}
}

// funDecl (without the leading "fun") → IDENT "(" parameters? ")" block ;
func (p *parser) funDecl(kind string) *ast.FunctionStmt {
	name := p.expect(token.IDENT, kind+" name")
	p.expect(token.LPAREN, "'(' after "+kind+" name")

	var params []token.Token
	if !p.check(token.RPAREN) {
		for {
			if len(params) >= 255 {
				p.error(p.tok, "Can't have more than 255 parameters.")
			}
			params = append(params, p.expect(token.IDENT, "parameter name"))
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.expect(token.RPAREN, "')' after parameters")

	p.expect(token.LBRACE, "'{' before "+kind+" body")
	body := p.block()

	return &ast.FunctionStmt{Name: name.Lexeme, Params: params, Body: body}
}

// varDecl → "var" IDENT ( "=" expression )? ";" ;
func (p *parser) varDecl() ast.Stmt {
	name := p.expect(token.IDENT, "variable name")
	var init ast.Expr
	if p.match(token.EQ) {
		init = p.expression()
	}
	p.expect(token.SEMICOLON, "';' after variable declaration")
	return &ast.VarStmt{Name: name, Init: init}
}

// statement → exprStmt | forStmt | ifStmt | printStmt | returnStmt |
//
//	whileStmt | block ;
func (p *parser) statement() ast.Stmt {
	switch {
	case p.match(token.FOR):
		return p.forStmt()
	case p.match(token.IF):
		return p.ifStmt()
	case p.match(token.PRINT):
		return p.printStmt()
	case p.match(token.RETURN):
		return p.returnStmt()
	case p.match(token.WHILE):
		return p.whileStmt()
	case p.match(token.LBRACE):
		return p.block()
	default:
		return p.exprStmt()
	}
}

// forStmt desugars into the equivalent while-loop AST: the resolver and
// interpreter never see a dedicated for-loop node, only the BlockStmt/
// WhileStmt shapes it expands into.
//
// forStmt → "for" "(" ( varDecl | exprStmt | ";" )
//
//	expression? ";" expression? ")" statement ;
func (p *parser) forStmt() ast.Stmt {
	p.expect(token.LPAREN, "'(' after 'for'")

	var init ast.Stmt
	switch {
	case p.match(token.SEMICOLON):
		// no initializer
	case p.match(token.VAR):
		init = p.varDecl()
	default:
		init = p.exprStmt()
	}

	var cond ast.Expr
	if !p.check(token.SEMICOLON) {
		cond = p.expression()
	}
	p.expect(token.SEMICOLON, "';' after loop condition")

	var post ast.Expr
	if !p.check(token.RPAREN) {
		post = p.expression()
	}
	p.expect(token.RPAREN, "')' after for clauses")

	body := p.statement()

	if post != nil {
		body = &ast.BlockStmt{Statements: []ast.Stmt{body, &ast.ExpressionStmt{Expression: post}}}
	}
	if cond == nil {
		cond = &ast.LiteralExpr{Tok: token.Token{Type: token.TRUE, Lexeme: "true"}}
	}
	body = &ast.WhileStmt{Cond: cond, Body: body}
	if init != nil {
		body = &ast.BlockStmt{Statements: []ast.Stmt{init, body}}
	}
	return body
}

// ifStmt → "if" "(" expression ")" statement ( "else" statement )? ;
func (p *parser) ifStmt() ast.Stmt {
	p.expect(token.LPAREN, "'(' after 'if'")
	cond := p.expression()
	p.expect(token.RPAREN, "')' after if condition")

	then := p.statement()
	var els ast.Stmt
	if p.match(token.ELSE) {
		els = p.statement()
	}
	return &ast.IfStmt{Cond: cond, Then: then, Else: els}
}

// printStmt → "print" expression ";" ;
func (p *parser) printStmt() ast.Stmt {
	value := p.expression()
	p.expect(token.SEMICOLON, "';' after value")
	return &ast.PrintStmt{Expression: value}
}

// returnStmt → "return" expression? ";" ;
func (p *parser) returnStmt() ast.Stmt {
	keyword := p.prevTok
	var value ast.Expr
	if !p.check(token.SEMICOLON) {
		value = p.expression()
	}
	p.expect(token.SEMICOLON, "';' after return value")
	return &ast.ReturnStmt{Keyword: keyword, Value: value}
}

// whileStmt → "while" "(" expression ")" statement ;
func (p *parser) whileStmt() ast.Stmt {
	p.expect(token.LPAREN, "'(' after 'while'")
	cond := p.expression()
	p.expect(token.RPAREN, "')' after condition")
	body := p.statement()
	return &ast.WhileStmt{Cond: cond, Body: body}
}

// block → "{" declaration* "}" ; the leading "{" has already been consumed.
func (p *parser) block() *ast.BlockStmt {
	var stmts []ast.Stmt
	for !p.check(token.RBRACE) && p.tok.Type != token.EOF {
		if s := p.declarationRecover(); s != nil {
			stmts = append(stmts, s)
		}
	}
	p.expect(token.RBRACE, "'}' after block")
	return &ast.BlockStmt{Statements: stmts}
}

// exprStmt → expression ";" ;
func (p *parser) exprStmt() ast.Stmt {
	expr := p.expression()
	p.expect(token.SEMICOLON, "';' after expression")
	return &ast.ExpressionStmt{Expression: expr}
}
