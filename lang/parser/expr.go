package parser

import (
	"github.com/mna/loxwalk/lang/ast"
	"github.com/mna/loxwalk/lang/token"
)

// expression → assignment ;
func (p *parser) expression() ast.Expr {
	return p.assignment()
}

// assignment → ( call "." )? IDENT "=" assignment | logicOr ;
//
// The left-hand side is parsed as an ordinary expression first (there is no
// way to know it is an assignment target until the "=" is seen), then
// re-interpreted as a target: a VariableExpr becomes an AssignExpr, a
// GetExpr becomes a SetExpr, and anything else is a syntax error — this
// mirrors how a single token of lookahead cannot distinguish an assignment
// target from a general expression in this grammar.
func (p *parser) assignment() ast.Expr {
	expr := p.or()

	if p.match(token.EQ) {
		eq := p.prevTok
		value := p.assignment()

		switch target := expr.(type) {
		case *ast.VariableExpr:
			return &ast.AssignExpr{Name: target.Name, Value: value}
		case *ast.GetExpr:
			return &ast.SetExpr{Object: target.Object, Name: target.Name, Value: value}
		default:
			p.error(eq, "Invalid assignment target.")
			return expr
		}
	}
	return expr
}

// logicOr → logicAnd ( "or" logicAnd )* ;
func (p *parser) or() ast.Expr {
	expr := p.and()
	for p.match(token.OR) {
		op := p.prevTok
		right := p.and()
		expr = &ast.LogicalExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

// logicAnd → equality ( "and" equality )* ;
func (p *parser) and() ast.Expr {
	expr := p.equality()
	for p.match(token.AND) {
		op := p.prevTok
		right := p.equality()
		expr = &ast.LogicalExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

// equality → comparison ( ( "!=" | "==" ) comparison )* ;
func (p *parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.BANGEQ, token.EQEQ) {
		op := p.prevTok
		right := p.comparison()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

// comparison → term ( ( ">" | ">=" | "<" | "<=" ) term )* ;
func (p *parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.GT, token.GE, token.LT, token.LE) {
		op := p.prevTok
		right := p.term()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

// term → factor ( ( "-" | "+" ) factor )* ;
func (p *parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.MINUS, token.PLUS) {
		op := p.prevTok
		right := p.factor()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

// factor → unary ( ( "/" | "*" ) unary )* ;
func (p *parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.SLASH, token.STAR) {
		op := p.prevTok
		right := p.unary()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

// unary → ( "!" | "-" ) unary | call ;
func (p *parser) unary() ast.Expr {
	if p.match(token.BANG, token.MINUS) {
		op := p.prevTok
		right := p.unary()
		return &ast.UnaryExpr{Op: op, Right: right}
	}
	return p.call()
}

// call → primary ( "(" arguments? ")" | "." IDENT )* ;
func (p *parser) call() ast.Expr {
	expr := p.primary()
	for {
		switch {
		case p.match(token.LPAREN):
			expr = p.finishCall(expr)
		case p.match(token.DOT):
			name := p.expect(token.IDENT, "property name after '.'")
			expr = &ast.GetExpr{Object: expr, Name: name}
		default:
			return expr
		}
	}
}

// arguments → expression ( "," expression )* ; the leading "(" has already
// been consumed.
func (p *parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RPAREN) {
		for {
			if len(args) >= 255 {
				p.error(p.tok, "Can't have more than 255 arguments.")
			}
			args = append(args, p.expression())
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	paren := p.expect(token.RPAREN, "')' after arguments")
	return &ast.CallExpr{Callee: callee, Paren: paren, Args: args}
}

// primary → NUMBER | STRING | "true" | "false" | "nil" | "this" |
//
//	"(" expression ")" | IDENT | "super" "." IDENT ;
func (p *parser) primary() ast.Expr {
	switch {
	case p.match(token.FALSE, token.TRUE, token.NIL, token.NUMBER, token.STRING):
		return &ast.LiteralExpr{Tok: p.prevTok}
	case p.match(token.THIS):
		return &ast.ThisExpr{Keyword: p.prevTok}
	case p.match(token.SUPER):
		keyword := p.prevTok
		p.expect(token.DOT, "'.' after 'super'")
		method := p.expect(token.IDENT, "superclass method name")
		return &ast.SuperExpr{Keyword: keyword, Method: method}
	case p.match(token.IDENT):
		return &ast.VariableExpr{Name: p.prevTok}
	case p.match(token.LPAREN):
		expr := p.expression()
		p.expect(token.RPAREN, "')' after expression")
		return &ast.GroupingExpr{Inner: expr}
	default:
		p.errorExpected("expression")
		panic(errPanicMode)
	}
}
