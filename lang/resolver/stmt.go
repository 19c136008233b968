package resolver

import "github.com/mna/loxwalk/lang/ast"

func (r *resolver) resolveStmt(s ast.Stmt) {
	switch s := s.(type) {
	case *ast.BlockStmt:
		r.beginScope()
		r.resolveStmts(s.Statements)
		r.endScope()

	case *ast.VarStmt:
		r.declare(s.Name)
		if s.Init != nil {
			r.resolveExpr(s.Init)
		}
		r.define(s.Name.Lexeme)

	case *ast.FunctionStmt:
		// the function's own name is declared and defined before its body is
		// resolved, so the function can call itself recursively.
		r.declareDefineName(s.Name)
		r.resolveFunction(s, plainFunction)

	case *ast.ExpressionStmt:
		r.resolveExpr(s.Expression)

	case *ast.IfStmt:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}

	case *ast.PrintStmt:
		r.resolveExpr(s.Expression)

	case *ast.ReturnStmt:
		if r.currentFunction == noFunction {
			r.error(s.Keyword, "Can't return from top-level code.")
		}
		if s.Value != nil {
			if r.currentFunction == initializer {
				r.error(s.Keyword, "Can't return a value from an initializer.")
			}
			r.resolveExpr(s.Value)
		}

	case *ast.WhileStmt:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Body)

	case *ast.ClassStmt:
		r.resolveClass(s)

	default:
		panic("resolver: unhandled statement type")
	}
}

// declareDefineName declares and immediately defines name in the current
// scope in one step, for bindings (like a function's own name) that are
// visible to their own body rather than only to code following them.
func (r *resolver) declareDefineName(name string) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name] = true
}

func (r *resolver) resolveFunction(fn *ast.FunctionStmt, kind functionKind) {
	enclosingFunction := r.currentFunction
	r.currentFunction = kind
	defer func() { r.currentFunction = enclosingFunction }()

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param.Lexeme)
	}
	r.resolveStmts(fn.Body.Statements)
	r.endScope()
}

func (r *resolver) resolveClass(s *ast.ClassStmt) {
	enclosingClass := r.currentClass
	r.currentClass = inClass
	defer func() { r.currentClass = enclosingClass }()

	r.declareDefineName(s.Name.Lexeme)

	if s.Superclass != nil {
		if s.Superclass.Name.Lexeme == s.Name.Lexeme {
			r.error(s.Superclass.Name, "A class can't inherit from itself.")
		} else {
			r.currentClass = inSubclass
			r.resolveExpr(s.Superclass)
		}
	}

	if s.Superclass != nil {
		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, m := range s.Methods {
		kind := method
		if m.Name == "init" {
			kind = initializer
		}
		r.resolveFunction(m, kind)
	}

	r.endScope() // "this" scope

	if s.Superclass != nil {
		r.endScope() // "super" scope
	}
}
