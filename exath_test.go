package exath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate_Basic(t *testing.T) {
	got, err := Evaluate("2^10+sqrt(9)", Rad)
	require.Nil(t, err)
	assert.InDelta(t, 1027, real(got), 1e-9)
}

func TestEvaluate_PropagatesDomainError(t *testing.T) {
	_, err := Evaluate("ln(0)", Rad)
	require.NotNil(t, err)
	assert.Equal(t, DomainError, err.Kind)
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("sin(x)+1"))
	assert.False(t, IsValid("sin(("))
}

func TestSupportedFunctions_ContainsCoreNames(t *testing.T) {
	names := SupportedFunctions()
	assert.Contains(t, names, "sqrt")
	assert.Contains(t, names, "if")
}

func TestParse_ReturnsExpressionAST(t *testing.T) {
	node, err := Parse("1+2")
	require.Nil(t, err)
	assert.NotNil(t, node)
}

func TestParse_RejectsAssignment(t *testing.T) {
	_, err := Parse("x=1")
	require.NotNil(t, err)
}

func TestSession_VariablesPersistAcrossCalls(t *testing.T) {
	s := NewSession(Deg)
	_, err := s.Eval("x=90")
	require.Nil(t, err)
	got, err := s.Eval("sin(x)")
	require.Nil(t, err)
	assert.InDelta(t, 1, real(got), 1e-9)
	assert.Equal(t, []string{"x"}, s.VarNames())
}

func TestSession_FunctionDefinitionThenCall(t *testing.T) {
	s := NewSession(Rad)
	_, err := s.Eval("f(x)=x^2+1")
	require.Nil(t, err)
	got, err := s.Eval("f(5)")
	require.Nil(t, err)
	assert.InDelta(t, 26, real(got), 1e-9)
	assert.Equal(t, []string{"f"}, s.FnNames())
}

func TestSession_RemoveAndClear(t *testing.T) {
	s := NewSession(Rad)
	s.SetVar("a", 1, 0)
	s.SetVar("b", 2, 0)
	s.RemoveVar("a")
	assert.Equal(t, []string{"b"}, s.VarNames())
	s.ClearVars()
	assert.Empty(t, s.VarNames())
}

func TestNumericalMethods(t *testing.T) {
	d, err := Deriv("x^3", "x", 2, Rad)
	require.Nil(t, err)
	assert.InDelta(t, 12, real(d), 1e-4)

	s, err := Sum("x", "x", 1, 10, Rad)
	require.Nil(t, err)
	assert.Equal(t, complex(55, 0), s)

	p, err := Prod("x", "x", 1, 5, Rad)
	require.Nil(t, err)
	assert.Equal(t, complex(120, 0), p)
}
