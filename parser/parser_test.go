package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/squared-lang/squared/ast"
	"github.com/squared-lang/squared/token"
)

func TestParseProgram_VarDeclAndPrintCall(t *testing.T) {
	prog, err := ParseSource("var [x] = int[10]\nprint(x)\n")
	require.NoError(t, err)
	require.Len(t, prog.Body, 2)

	decl, ok := prog.Body[0].(*ast.VarDecl)
	require.True(t, ok)
	assert.Equal(t, "x", decl.Name)

	ctor, ok := decl.Value.(*ast.TypeCtor)
	require.True(t, ok)
	assert.Equal(t, "int", ctor.Kind)
	require.Len(t, ctor.BodyTokens, 1)
	assert.Equal(t, "10", ctor.BodyTokens[0].Text)

	exprStmt, ok := prog.Body[1].(*ast.ExprStmt)
	require.True(t, ok)
	call, ok := exprStmt.Expr.(*ast.Call)
	require.True(t, ok)
	callee, ok := call.Callee.(*ast.Identifier)
	require.True(t, ok)
	assert.Equal(t, "print", callee.Name)
	require.Len(t, call.Args, 1)
}

func TestParseProgram_IfElse(t *testing.T) {
	src := "if [x > int[1]]\n    print(str[big])\nelse\n    print(str[small])\n"
	prog, err := ParseSource(src)
	require.NoError(t, err)
	require.Len(t, prog.Body, 1)

	ifStmt, ok := prog.Body[0].(*ast.If)
	require.True(t, ok)
	bin, ok := ifStmt.Test.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, ">", bin.Op)
	require.Len(t, ifStmt.Consequent, 1)
	require.Len(t, ifStmt.Alternate, 1)
}

func TestParseProgram_WhileWithAssign(t *testing.T) {
	src := "var [i] = int[0]\nwhile [i < int[3]]\n    print(i)\n    i = i + int[1]\n"
	prog, err := ParseSource(src)
	require.NoError(t, err)
	require.Len(t, prog.Body, 2)

	whileStmt, ok := prog.Body[1].(*ast.While)
	require.True(t, ok)
	require.Len(t, whileStmt.Body, 2)

	assign, ok := whileStmt.Body[1].(*ast.Assign)
	require.True(t, ok)
	assert.Equal(t, "i", assign.Name)
	bin, ok := assign.Value.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, "+", bin.Op)
}

func TestParseProgram_FuncDeclWithVarBoxParam(t *testing.T) {
	src := "func [add(var[a])]\n    return a + g\n"
	prog, err := ParseSource(src)
	require.NoError(t, err)
	require.Len(t, prog.Body, 1)

	fn, ok := prog.Body[0].(*ast.FuncDecl)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name)
	assert.Equal(t, []string{"a"}, fn.Params)
	require.Len(t, fn.Body, 1)

	ret, ok := fn.Body[0].(*ast.Return)
	require.True(t, ok)
	require.NotNil(t, ret.Value)
}

func TestParseProgram_ForLoop(t *testing.T) {
	src := "for [var [i] = int[0], i < int[3], i = i + int[1]]\n    print(i)\n"
	prog, err := ParseSource(src)
	require.NoError(t, err)
	require.Len(t, prog.Body, 1)

	forStmt, ok := prog.Body[0].(*ast.For)
	require.True(t, ok)
	_, ok = forStmt.Init.(*ast.VarDecl)
	require.True(t, ok)
	_, ok = forStmt.Update.(*ast.Assign)
	require.True(t, ok)
}

func TestParseProgram_ArrayAndTemplateInterpolation(t *testing.T) {
	src := "var [xs] = a[int[1], int[2], int[3]]\nprint(fstr[sum is {xs.e0 + xs.e2}])\n"
	prog, err := ParseSource(src)
	require.NoError(t, err)
	require.Len(t, prog.Body, 2)

	decl, ok := prog.Body[0].(*ast.VarDecl)
	require.True(t, ok)
	ctor, ok := decl.Value.(*ast.TypeCtor)
	require.True(t, ok)
	assert.Equal(t, "a", ctor.Kind)

	exprStmt := prog.Body[1].(*ast.ExprStmt)
	call := exprStmt.Expr.(*ast.Call)
	fstrCtor, ok := call.Args[0].(*ast.TypeCtor)
	require.True(t, ok)
	assert.Equal(t, "fstr", fstrCtor.Kind)
	assert.NotEmpty(t, fstrCtor.BodyTokens)
}

func TestParseProgram_ObjectConstructionAndMemberCall(t *testing.T) {
	src := "var [o] = obj[prop[name] = str[bot], prop[greet] = f[fstr[hi {str[there]}]]]\nprint(o.name)\n"
	prog, err := ParseSource(src)
	require.NoError(t, err)
	require.Len(t, prog.Body, 2)

	decl := prog.Body[0].(*ast.VarDecl)
	ctor, ok := decl.Value.(*ast.TypeCtor)
	require.True(t, ok)
	assert.Equal(t, "obj", ctor.Kind)

	exprStmt := prog.Body[1].(*ast.ExprStmt)
	call := exprStmt.Expr.(*ast.Call)
	member, ok := call.Args[0].(*ast.Member)
	require.True(t, ok)
	assert.False(t, member.Dynamic)
	assert.Equal(t, "name", member.Property)
}

func TestParseProgram_DynamicMember(t *testing.T) {
	prog, err := ParseSource("print(o.{key})\n")
	require.NoError(t, err)
	exprStmt := prog.Body[0].(*ast.ExprStmt)
	call := exprStmt.Expr.(*ast.Call)
	member, ok := call.Args[0].(*ast.Member)
	require.True(t, ok)
	assert.True(t, member.Dynamic)
	assert.NotNil(t, member.DynamicKey)
}

func TestParseProgram_AdditiveAndMultiplicativeSamePrecedence(t *testing.T) {
	// Spec §4.2/§9: "1 + 2 * 3" must parse left-to-right as (1+2)*3, not
	// the conventional 1+(2*3), since + - * / all sit on one level.
	prog, err := ParseSource("print(int[1] + int[2] * int[3])\n")
	require.NoError(t, err)
	exprStmt := prog.Body[0].(*ast.ExprStmt)
	call := exprStmt.Expr.(*ast.Call)
	bin, ok := call.Args[0].(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, "*", bin.Op)
	left, ok := bin.Left.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, "+", left.Op)
}

func TestParseProgram_NestedBracketsPreservedInCtorBody(t *testing.T) {
	prog, err := ParseSource("var [xs] = a[int[1], a[int[2], int[3]]]\n")
	require.NoError(t, err)
	decl := prog.Body[0].(*ast.VarDecl)
	ctor := decl.Value.(*ast.TypeCtor)
	// The nested a[...] brackets must survive verbatim inside the outer
	// body for the deferred sub-parse to see a well-formed stream.
	var lbrackets, rbrackets int
	for _, tok := range ctor.BodyTokens {
		if tok.Kind == token.LBracket {
			lbrackets++
		}
		if tok.Kind == token.RBracket {
			rbrackets++
		}
	}
	assert.Equal(t, lbrackets, rbrackets)
	assert.NotZero(t, lbrackets)
}

func TestParseProgram_SyntaxErrorOnUnexpectedToken(t *testing.T) {
	_, err := ParseSource("var [x] =\n")
	require.Error(t, err)
}

func TestParseProgram_ImportWithDottedModuleName(t *testing.T) {
	prog, err := ParseSource("import foo.js\n")
	require.NoError(t, err)
	imp, ok := prog.Body[0].(*ast.Import)
	require.True(t, ok)
	assert.Equal(t, "foo.js", imp.ModuleName)
}
