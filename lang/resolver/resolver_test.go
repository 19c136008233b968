package resolver_test

import (
	"testing"

	"github.com/mna/loxwalk/lang/ast"
	"github.com/mna/loxwalk/lang/parser"
	"github.com/mna/loxwalk/lang/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) []ast.Stmt {
	t.Helper()
	stmts, err := parser.ParseProgram([]byte(src))
	require.NoError(t, err)
	return stmts
}

func TestResolveClosureDepth(t *testing.T) {
	stmts := parse(t, `
var a = "global";
{
  var a = "outer";
  {
    var a = "inner";
    print a;
  }
}
`)
	locals, err := resolver.Resolve(stmts)
	require.NoError(t, err)

	outerBlock := stmts[1].(*ast.BlockStmt)
	innerBlock := outerBlock.Statements[1].(*ast.BlockStmt)
	printStmt := innerBlock.Statements[1].(*ast.PrintStmt)
	varExpr := printStmt.Expression.(*ast.VariableExpr)

	depth, ok := locals[varExpr]
	require.True(t, ok)
	assert.Equal(t, 0, depth)
}

func TestResolveSelfInitializerError(t *testing.T) {
	stmts := parse(t, `
var a = "outer";
{
  var a = a;
}
`)
	_, err := resolver.Resolve(stmts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Can't read local variable in its own initializer.")
}

func TestResolveDuplicateDeclarationError(t *testing.T) {
	stmts := parse(t, `
{
  var a = 1;
  var a = 2;
}
`)
	_, err := resolver.Resolve(stmts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Already a variable with this name in this scope.")
}

func TestResolveReturnOutsideFunction(t *testing.T) {
	stmts := parse(t, `return 1;`)
	_, err := resolver.Resolve(stmts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Can't return from top-level code.")
}

func TestResolveReturnValueFromInitializer(t *testing.T) {
	stmts := parse(t, `
class Foo {
  init() {
    return 1;
  }
}
`)
	_, err := resolver.Resolve(stmts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Can't return a value from an initializer.")
}

func TestResolveThisOutsideClass(t *testing.T) {
	stmts := parse(t, `print this;`)
	_, err := resolver.Resolve(stmts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Can't use 'this' outside of a class.")
}

func TestResolveClassInheritsFromItself(t *testing.T) {
	stmts := parse(t, `class Oops < Oops {}`)
	_, err := resolver.Resolve(stmts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "A class can't inherit from itself.")
}

func TestResolveSuperOutsideSubclass(t *testing.T) {
	stmts := parse(t, `
class Foo {
  bar() { return super.bar(); }
}
`)
	_, err := resolver.Resolve(stmts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Can't use 'super' in a class with no superclass.")
}

func TestResolveUnknownGlobalIsNotAnError(t *testing.T) {
	stmts := parse(t, `print clock(); print somethingNeverDeclared;`)
	locals, err := resolver.Resolve(stmts)
	require.NoError(t, err)
	// neither a builtin nor an undeclared name is ever recorded in the
	// resolution map: both fall through to a dynamic global lookup at run
	// time, where an undefined name is a runtime error, not a static one.
	printClock := stmts[0].(*ast.PrintStmt)
	call := printClock.Expression.(*ast.CallExpr)
	_, ok := locals[call.Callee]
	assert.False(t, ok)

	printOther := stmts[1].(*ast.PrintStmt)
	varExpr := printOther.Expression.(*ast.VariableExpr)
	_, ok = locals[varExpr]
	assert.False(t, ok)
}
