package resolver

import "github.com/mna/loxwalk/lang/ast"

func (r *resolver) resolveExpr(e ast.Expr) {
	switch e := e.(type) {
	case *ast.VariableExpr:
		if len(r.scopes) > 0 {
			if defined, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !defined {
				r.error(e.Name, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e, e.Name.Lexeme)

	case *ast.AssignExpr:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name.Lexeme)

	case *ast.BinaryExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.LogicalExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.UnaryExpr:
		r.resolveExpr(e.Right)

	case *ast.GroupingExpr:
		r.resolveExpr(e.Inner)

	case *ast.LiteralExpr:
		// nothing to resolve

	case *ast.CallExpr:
		r.resolveExpr(e.Callee)
		for _, a := range e.Args {
			r.resolveExpr(a)
		}

	case *ast.GetExpr:
		r.resolveExpr(e.Object)

	case *ast.SetExpr:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)

	case *ast.ThisExpr:
		if r.currentClass == noClass {
			r.error(e.Keyword, "Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(e, "this")

	case *ast.SuperExpr:
		switch r.currentClass {
		case noClass:
			r.error(e.Keyword, "Can't use 'super' outside of a class.")
		case inClass:
			r.error(e.Keyword, "Can't use 'super' in a class with no superclass.")
		}
		r.resolveLocal(e, "super")

	default:
		panic("resolver: unhandled expression type")
	}
}
