package parser_test

import (
	"testing"

	"github.com/mna/loxwalk/lang/ast"
	"github.com/mna/loxwalk/lang/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExpressionStatement(t *testing.T) {
	stmts, err := parser.ParseProgram([]byte(`1 + 2 * 3;`))
	require.NoError(t, err)
	require.Len(t, stmts, 1)

	es, ok := stmts[0].(*ast.ExpressionStmt)
	require.True(t, ok)

	bin, ok := es.Expression.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "+", bin.Op.Lexeme)

	right, ok := bin.Right.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "*", right.Op.Lexeme)
}

func TestParseVarDecl(t *testing.T) {
	stmts, err := parser.ParseProgram([]byte(`var x = 10;`))
	require.NoError(t, err)
	require.Len(t, stmts, 1)

	vs, ok := stmts[0].(*ast.VarStmt)
	require.True(t, ok)
	assert.Equal(t, "x", vs.Name.Lexeme)
	require.NotNil(t, vs.Init)
}

func TestParseForDesugarsToWhile(t *testing.T) {
	stmts, err := parser.ParseProgram([]byte(`for (var i = 0; i < 3; i = i + 1) print i;`))
	require.NoError(t, err)
	require.Len(t, stmts, 1)

	outer, ok := stmts[0].(*ast.BlockStmt)
	require.True(t, ok)
	require.Len(t, outer.Statements, 2)

	_, ok = outer.Statements[0].(*ast.VarStmt)
	assert.True(t, ok)

	while, ok := outer.Statements[1].(*ast.WhileStmt)
	require.True(t, ok)

	body, ok := while.Body.(*ast.BlockStmt)
	require.True(t, ok)
	require.Len(t, body.Statements, 2)
	_, ok = body.Statements[0].(*ast.PrintStmt)
	assert.True(t, ok)
	_, ok = body.Statements[1].(*ast.ExpressionStmt)
	assert.True(t, ok)
}

func TestParseClassWithSuperclass(t *testing.T) {
	stmts, err := parser.ParseProgram([]byte(`
class Animal {
  speak() { return "..."; }
}
class Dog < Animal {
  speak() { return "Woof"; }
}
`))
	require.NoError(t, err)
	require.Len(t, stmts, 2)

	dog, ok := stmts[1].(*ast.ClassStmt)
	require.True(t, ok)
	assert.Equal(t, "Dog", dog.Name.Lexeme)
	require.NotNil(t, dog.Superclass)
	assert.Equal(t, "Animal", dog.Superclass.Name.Lexeme)
	require.Len(t, dog.Methods, 1)
	assert.Equal(t, "speak", dog.Methods[0].Name)
}

func TestParseAssignmentTargets(t *testing.T) {
	stmts, err := parser.ParseProgram([]byte(`a.b = 1;`))
	require.NoError(t, err)
	require.Len(t, stmts, 1)

	es := stmts[0].(*ast.ExpressionStmt)
	set, ok := es.Expression.(*ast.SetExpr)
	require.True(t, ok)
	assert.Equal(t, "b", set.Name.Lexeme)
}

func TestParseInvalidAssignmentTargetErrors(t *testing.T) {
	_, err := parser.ParseProgram([]byte(`1 = 2;`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid assignment target.")
}

func TestParseRecoversAfterSyntaxError(t *testing.T) {
	stmts, err := parser.ParseProgram([]byte(`
var x = ;
var y = 2;
`))
	require.Error(t, err)
	// the second, valid declaration should still be parsed thanks to
	// synchronize() resuming after the first bad one.
	var sawY bool
	for _, s := range stmts {
		if vs, ok := s.(*ast.VarStmt); ok && vs.Name.Lexeme == "y" {
			sawY = true
		}
	}
	assert.True(t, sawY)
}

func TestParseCallAndGet(t *testing.T) {
	stmts, err := parser.ParseProgram([]byte(`foo.bar(1, 2);`))
	require.NoError(t, err)
	es := stmts[0].(*ast.ExpressionStmt)
	call, ok := es.Expression.(*ast.CallExpr)
	require.True(t, ok)
	assert.Len(t, call.Args, 2)
	get, ok := call.Callee.(*ast.GetExpr)
	require.True(t, ok)
	assert.Equal(t, "bar", get.Name.Lexeme)
}
