package ast

import "github.com/mna/loxwalk/lang/token"

type (
	// BinaryExpr represents a binary operator expression, e.g. x + y.
	BinaryExpr struct {
		Left  Expr
		Op    token.Token
		Right Expr
	}

	// UnaryExpr represents a unary operator expression, e.g. -x or !x.
	UnaryExpr struct {
		Op    token.Token
		Right Expr
	}

	// GroupingExpr represents a parenthesized expression, e.g. (x).
	GroupingExpr struct {
		Inner Expr
	}

	// LiteralExpr represents a literal value: a number, string, true, false,
	// or nil. Tok.Type distinguishes which; Tok.Literal carries the decoded
	// float64 or string payload for NUMBER and STRING.
	LiteralExpr struct {
		Tok token.Token
	}

	// VariableExpr represents a bare identifier used as an expression, e.g.
	// the "x" in "print x;". It is one of the four expression kinds the
	// resolver records in its resolution map.
	VariableExpr struct {
		Name token.Token
	}

	// AssignExpr represents an assignment to a variable, e.g. x = y. It is
	// one of the four expression kinds the resolver records in its
	// resolution map.
	AssignExpr struct {
		Name  token.Token
		Value Expr
	}

	// LogicalExpr represents a short-circuiting "and" or "or" expression.
	LogicalExpr struct {
		Left  Expr
		Op    token.Token
		Right Expr
	}

	// CallExpr represents a function or method call, e.g. f(x, y). Paren is
	// the closing ')' token, used to anchor runtime error positions.
	CallExpr struct {
		Callee Expr
		Paren  token.Token
		Args   []Expr
	}

	// GetExpr represents a property read, e.g. obj.name.
	GetExpr struct {
		Object Expr
		Name   token.Token
	}

	// SetExpr represents a property write, e.g. obj.name = value. The parser
	// produces this by rewriting a GetExpr target of an assignment.
	SetExpr struct {
		Object Expr
		Name   token.Token
		Value  Expr
	}

	// ThisExpr represents a "this" reference inside a method body. It is one
	// of the four expression kinds the resolver records in its resolution
	// map.
	ThisExpr struct {
		Keyword token.Token
	}

	// SuperExpr represents a "super.method" reference inside a subclass
	// method body. It is one of the four expression kinds the resolver
	// records in its resolution map (keyed on the SuperExpr node, recording
	// the depth of the synthetic "super" binding).
	SuperExpr struct {
		Keyword token.Token
		Method  token.Token
	}
)

func (*BinaryExpr) exprNode()   {}
func (*UnaryExpr) exprNode()    {}
func (*GroupingExpr) exprNode() {}
func (*LiteralExpr) exprNode()  {}
func (*VariableExpr) exprNode() {}
func (*AssignExpr) exprNode()   {}
func (*LogicalExpr) exprNode()  {}
func (*CallExpr) exprNode()     {}
func (*GetExpr) exprNode()      {}
func (*SetExpr) exprNode()      {}
func (*ThisExpr) exprNode()     {}
func (*SuperExpr) exprNode()    {}

func (n *BinaryExpr) Walk(v Visitor) {
	Walk(v, n.Left)
	Walk(v, n.Right)
}
func (n *UnaryExpr) Walk(v Visitor)    { Walk(v, n.Right) }
func (n *GroupingExpr) Walk(v Visitor) { Walk(v, n.Inner) }
func (n *LiteralExpr) Walk(Visitor)    {}
func (n *VariableExpr) Walk(Visitor)   {}
func (n *AssignExpr) Walk(v Visitor)   { Walk(v, n.Value) }
func (n *LogicalExpr) Walk(v Visitor) {
	Walk(v, n.Left)
	Walk(v, n.Right)
}
func (n *CallExpr) Walk(v Visitor) {
	Walk(v, n.Callee)
	for _, a := range n.Args {
		Walk(v, a)
	}
}
func (n *GetExpr) Walk(v Visitor) { Walk(v, n.Object) }
func (n *SetExpr) Walk(v Visitor) {
	Walk(v, n.Object)
	Walk(v, n.Value)
}
func (n *ThisExpr) Walk(Visitor)  {}
func (n *SuperExpr) Walk(Visitor) {}
