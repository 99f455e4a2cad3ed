package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exath-lang/exath/ast"
	"github.com/exath-lang/exath/cerr"
)

// testCallables is a fixed stand-in for a session's function/builtin view.
type testCallables struct {
	builtins map[string]int
	vari     map[string]bool
	userFns  map[string]bool
	consts   map[string]bool
}

func newTestCallables() *testCallables {
	return &testCallables{
		builtins: map[string]int{"sin": 1, "sqrt": 1, "if": 3, "abs": 1, "log": 1},
		vari:     map[string]bool{},
		userFns:  map[string]bool{},
		consts:   map[string]bool{"pi": true, "e": true, "phi": true, "π": true, "φ": true},
	}
}

func (c *testCallables) IsCallable(name string) bool {
	if _, ok := c.builtins[name]; ok {
		return true
	}
	return c.userFns[name]
}
func (c *testCallables) IsBuiltinConstant(name string) bool { return c.consts[name] }
func (c *testCallables) BuiltinArity(name string) (int, bool, bool) {
	a, ok := c.builtins[name]
	return a, c.vari[name], ok
}

func TestParseExpr_Precedence(t *testing.T) {
	node, err := ParseExpr("1 + 2 * 3", newTestCallables())
	require.NoError(t, err)
	bin, ok := node.(*ast.BinOp)
	require.True(t, ok)
	assert.Equal(t, ast.Add, bin.Kind)
	mul, ok := bin.Right.(*ast.BinOp)
	require.True(t, ok)
	assert.Equal(t, ast.Mul, mul.Kind)
}

func TestParseExpr_PowRightAssociative(t *testing.T) {
	node, err := ParseExpr("2^3^2", newTestCallables())
	require.NoError(t, err)
	top, ok := node.(*ast.BinOp)
	require.True(t, ok)
	assert.Equal(t, ast.Pow, top.Kind)
	right, ok := top.Right.(*ast.BinOp)
	require.True(t, ok)
	assert.Equal(t, ast.Pow, right.Kind)
}

func TestParseExpr_UnaryLooserThanPow(t *testing.T) {
	// -2^2 should parse as -(2^2)
	node, err := ParseExpr("-2^2", newTestCallables())
	require.NoError(t, err)
	neg, ok := node.(*ast.UnaryOp)
	require.True(t, ok)
	assert.Equal(t, ast.Neg, neg.Kind)
	_, ok = neg.Child.(*ast.BinOp)
	assert.True(t, ok)
}

func TestParseExpr_PowWithUnaryExponent(t *testing.T) {
	node, err := ParseExpr("2^-2", newTestCallables())
	require.NoError(t, err)
	bin, ok := node.(*ast.BinOp)
	require.True(t, ok)
	assert.Equal(t, ast.Pow, bin.Kind)
	_, ok = bin.Right.(*ast.UnaryOp)
	assert.True(t, ok)
}

func TestParseExpr_ImplicitMultiplication(t *testing.T) {
	cases := []string{"2x", "2(3+4)", "(1+2)x", "(1+2)(3+4)", "2 sin(1)"}
	for _, src := range cases {
		node, err := ParseExpr(src, newTestCallables())
		require.NoError(t, err, src)
		bin, ok := node.(*ast.BinOp)
		require.True(t, ok, src)
		assert.Equal(t, ast.Mul, bin.Kind, src)
	}
}

func TestParseExpr_CallVsImplicitMultiplyOnIdent(t *testing.T) {
	node, err := ParseExpr("sin(1)", newTestCallables())
	require.NoError(t, err)
	call, ok := node.(*ast.Call)
	require.True(t, ok)
	assert.Equal(t, "sin", call.Name)

	// x is not callable, so x(2) is implicit multiplication.
	node, err = ParseExpr("x(2)", newTestCallables())
	require.NoError(t, err)
	bin, ok := node.(*ast.BinOp)
	require.True(t, ok)
	assert.Equal(t, ast.Mul, bin.Kind)
	v, ok := bin.Left.(*ast.Var)
	require.True(t, ok)
	assert.Equal(t, "x", v.Name)
}

func TestParseExpr_AbsoluteValue(t *testing.T) {
	node, err := ParseExpr("|-5|", newTestCallables())
	require.NoError(t, err)
	abs, ok := node.(*ast.Abs)
	require.True(t, ok)
	_, ok = abs.Child.(*ast.UnaryOp)
	assert.True(t, ok)
}

func TestParseExpr_LogBase(t *testing.T) {
	node, err := ParseExpr("log:2(8)", newTestCallables())
	require.NoError(t, err)
	lb, ok := node.(*ast.LogBase)
	require.True(t, ok)
	assert.Equal(t, 2.0, lb.Base)
}

func TestParseExpr_Factorial(t *testing.T) {
	node, err := ParseExpr("5!", newTestCallables())
	require.NoError(t, err)
	_, ok := node.(*ast.Factorial)
	assert.True(t, ok)
}

func TestParseExpr_ModOperator(t *testing.T) {
	for _, src := range []string{"7 % 3", "7 mod 3"} {
		node, err := ParseExpr(src, newTestCallables())
		require.NoError(t, err, src)
		bin, ok := node.(*ast.BinOp)
		require.True(t, ok, src)
		assert.Equal(t, ast.Mod, bin.Kind, src)
	}
}

func TestParseExpr_Errors(t *testing.T) {
	cases := []string{"(1 + 2", "1 +", "f(1,)", "f(,1)"}
	for _, src := range cases {
		_, err := ParseExpr(src, newTestCallables())
		assert.Error(t, err, src)
	}
}

func TestParseLine_Assignment(t *testing.T) {
	line, err := ParseLine("x = 2 + 3", newTestCallables())
	require.NoError(t, err)
	assign, ok := line.(*ast.AssignmentLine)
	require.True(t, ok)
	assert.Equal(t, "x", assign.Name)
}

func TestParseLine_AssignToBuiltinConstantRejected(t *testing.T) {
	_, err := ParseLine("pi = 3", newTestCallables())
	require.Error(t, err)
	assert.True(t, cerr.Is(err, cerr.ParseError))
}

func TestParseLine_FunctionDef(t *testing.T) {
	line, err := ParseLine("f(x) = x^2 + 1", newTestCallables())
	require.NoError(t, err)
	def, ok := line.(*ast.FunctionDefLine)
	require.True(t, ok)
	assert.Equal(t, "f", def.Name)
	assert.Equal(t, []string{"x"}, def.Params)
}

func TestParseLine_CallIsExpressionNotFunctionDef(t *testing.T) {
	c := newTestCallables()
	line, err := ParseLine("sin(1)", c)
	require.NoError(t, err)
	_, ok := line.(*ast.ExpressionLine)
	assert.True(t, ok)
}

// TestParseLine_TruncatedFunctionDef guards against tryParseFunctionDef
// indexing past the end of toks on input that looks like the start of a
// function definition but is cut off before its closing paren. Any such
// truncation must come back as an error, never a panic.
func TestParseLine_TruncatedFunctionDef(t *testing.T) {
	cases := []string{"f(", "f(x", "f(x,", "f(x,y"}
	for _, src := range cases {
		_, err := ParseLine(src, newTestCallables())
		assert.Error(t, err, src)
	}
}

func TestParseExpr_BareIdentifierSequenceIsRejected(t *testing.T) {
	// ident·ident and ident·number are not in spec.md §4.2's enumerated
	// implicit-multiplication pattern list and must be parse errors.
	for _, src := range []string{"x y", "x 2"} {
		_, err := ParseExpr(src, newTestCallables())
		assert.Error(t, err, src)
	}
}
