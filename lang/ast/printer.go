package ast

import (
	"fmt"
	"io"
	"strings"
)

// Printer prints an AST one node per line, for the parse/resolve debug
// commands. Each node is indented one level deeper than the node printed
// before it in walk order, so the indentation does not show nesting: a
// sibling is indented further than the node that precedes it. It is
// deliberately minimal compared to
// a source-accurate unparser: it exists to let a developer eyeball the shape
// the parser produced, not to reproduce the original source text.
type Printer struct {
	// Output is the io.Writer to print to.
	Output io.Writer
}

// Print walks n and writes one indented line per node to p.Output.
func (p *Printer) Print(n Node) error {
	pp := &printer{w: p.Output}
	Walk(pp, n)
	return pp.err
}

type printer struct {
	w     io.Writer
	depth int
	err   error
}

func (p *printer) Visit(n Node) {
	if p.err != nil {
		return
	}
	indent := strings.Repeat(". ", p.depth)
	_, p.err = fmt.Fprintf(p.w, "%s%s\n", indent, label(n))
	p.depth++
}

// label renders a short, type-specific description of n: its node kind plus
// whatever literal or name distinguishes it from other nodes of the same
// kind. It does not recurse; children are printed by the surrounding Walk.
func label(n Node) string {
	switch n := n.(type) {
	case *BinaryExpr:
		return "Binary " + n.Op.Lexeme
	case *UnaryExpr:
		return "Unary " + n.Op.Lexeme
	case *GroupingExpr:
		return "Grouping"
	case *LiteralExpr:
		return "Literal " + n.Tok.Lexeme
	case *VariableExpr:
		return "Variable " + n.Name.Lexeme
	case *AssignExpr:
		return "Assign " + n.Name.Lexeme
	case *LogicalExpr:
		return "Logical " + n.Op.Lexeme
	case *CallExpr:
		return fmt.Sprintf("Call (%d args)", len(n.Args))
	case *GetExpr:
		return "Get " + n.Name.Lexeme
	case *SetExpr:
		return "Set " + n.Name.Lexeme
	case *ThisExpr:
		return "This"
	case *SuperExpr:
		return "Super " + n.Method.Lexeme
	case *ExpressionStmt:
		return "ExpressionStmt"
	case *PrintStmt:
		return "PrintStmt"
	case *VarStmt:
		return "VarStmt " + n.Name.Lexeme
	case *BlockStmt:
		return fmt.Sprintf("Block (%d stmts)", len(n.Statements))
	case *IfStmt:
		return "If"
	case *WhileStmt:
		return "While"
	case *FunctionStmt:
		return fmt.Sprintf("Function %s (%d params)", n.Name, len(n.Params))
	case *ReturnStmt:
		return "Return"
	case *ClassStmt:
		return "Class " + n.Name.Lexeme
	default:
		return fmt.Sprintf("%T", n)
	}
}
