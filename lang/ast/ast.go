// Package ast defines the abstract syntax tree produced by the parser:
// a closed set of expression and statement node types, each with stable
// pointer identity so the resolver can key its resolution map on the nodes
// themselves, plus a Visitor/Walk pair for generic tree traversal.
package ast

// Node is implemented by every AST node, expression or statement.
type Node interface {
	// Walk visits each direct child of this node with v.
	Walk(v Visitor)
}

// Expr is implemented by every expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by every statement node.
type Stmt interface {
	Node
	stmtNode()
}

// VisitorFunc adapts a plain function to the Visitor interface.
type VisitorFunc func(n Node)

// Visitor is called once per node during a Walk.
type Visitor interface {
	Visit(n Node)
}

func (f VisitorFunc) Visit(n Node) { f(n) }

// Walk visits node with v, then recursively walks each of its children.
func Walk(v Visitor, node Node) {
	if node == nil {
		return
	}
	v.Visit(node)
	node.Walk(v)
}
