package eval

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exath-lang/exath/cerr"
	"github.com/exath-lang/exath/parser"
	"github.com/exath-lang/exath/session"
)

func run(t *testing.T, sess *session.Session, src string) complex128 {
	t.Helper()
	line, err := parser.ParseLine(src, Callables(sess))
	require.NoError(t, err)
	v, cerr := EvalLine(line, sess)
	require.Nil(t, cerr)
	return v
}

func runErr(t *testing.T, sess *session.Session, src string) *cerr.Error {
	t.Helper()
	line, err := parser.ParseLine(src, Callables(sess))
	if err != nil {
		ce, ok := err.(*cerr.Error)
		require.True(t, ok)
		return ce
	}
	_, ce := EvalLine(line, sess)
	require.NotNil(t, ce)
	return ce
}

func assertApproxReal(t *testing.T, want float64, got complex128, tol float64) {
	t.Helper()
	assert.InDelta(t, 0, imag(got), tol)
	assert.InDelta(t, want, real(got), tol)
}

func TestEval_ArithmeticAndPrecedence(t *testing.T) {
	sess := session.New(session.Rad)
	got := run(t, sess, "2^10+sqrt(9)")
	assertApproxReal(t, 1027, got, 1e-9)
}

func TestEval_SqrtOfNegative(t *testing.T) {
	sess := session.New(session.Rad)
	got := run(t, sess, "sqrt(-4)")
	assert.InDelta(t, 0, real(got), 1e-9)
	assert.InDelta(t, 2, imag(got), 1e-9)
}

func TestEval_TrigDegreesAndRadians(t *testing.T) {
	deg := session.New(session.Deg)
	got := run(t, deg, "sin(90)")
	assertApproxReal(t, 1, got, 1e-9)

	rad := session.New(session.Rad)
	got = run(t, rad, "sin(pi/2)")
	assertApproxReal(t, 1, got, 1e-9)
}

func TestEval_InverseTrigDegrees(t *testing.T) {
	sess := session.New(session.Deg)
	got := run(t, sess, "asin(1)")
	assertApproxReal(t, 90, got, 1e-9)
}

func TestEval_LnZeroIsDomainError(t *testing.T) {
	sess := session.New(session.Rad)
	ce := runErr(t, sess, "ln(0)")
	assert.True(t, cerr.Is(ce, cerr.DomainError))
}

func TestEval_LnNegativeIsPrincipalBranch(t *testing.T) {
	sess := session.New(session.Rad)
	got := run(t, sess, "ln(-1)")
	assert.InDelta(t, 0, real(got), 1e-9)
	assert.InDelta(t, math.Pi, imag(got), 1e-9)
}

func TestEval_GcdOfIntegralFloats(t *testing.T) {
	sess := session.New(session.Rad)
	got := run(t, sess, "gcd(9.0,6.0)")
	assertApproxReal(t, 3, got, 1e-9)
}

func TestEval_GcdOfNonIntegralIsArgumentType(t *testing.T) {
	sess := session.New(session.Rad)
	ce := runErr(t, sess, "gcd(9.5,6.0)")
	assert.True(t, cerr.Is(ce, cerr.ArgumentType))
}

func TestEval_FloorOfComplexIsArgumentType(t *testing.T) {
	sess := session.New(session.Rad)
	ce := runErr(t, sess, "floor(1+1i)")
	assert.True(t, cerr.Is(ce, cerr.ArgumentType))
}

func TestEval_IfDispatchesLazily(t *testing.T) {
	sess := session.New(session.Rad)
	got := run(t, sess, "if(0, 1, 2)")
	assertApproxReal(t, 2, got, 1e-9)
}

func TestEval_SessionVariableThenTrig(t *testing.T) {
	sess := session.New(session.Deg)
	run(t, sess, "x=90")
	got := run(t, sess, "sin(x)")
	assertApproxReal(t, 1, got, 1e-9)
}

func TestEval_FunctionDefinitionAndCall(t *testing.T) {
	sess := session.New(session.Rad)
	run(t, sess, "f(x)=x^2+1")
	got := run(t, sess, "f(5)")
	assertApproxReal(t, 26, got, 1e-9)
}

func TestEval_DirectRecursionRejectedAtDefinition(t *testing.T) {
	sess := session.New(session.Rad)
	ce := runErr(t, sess, "f(x)=f(x-1)")
	assert.True(t, cerr.Is(ce, cerr.ParseError))
}

func TestEval_MutualRecursionRejectedAtDefinition(t *testing.T) {
	sess := session.New(session.Rad)
	run(t, sess, "h(x)=x")
	run(t, sess, "g(x)=h(x)")

	// Defining h to call back to g closes the cycle and must be rejected.
	ce := runErr(t, sess, "h(x)=g(x)+1")
	assert.True(t, cerr.Is(ce, cerr.ParseError))
}

func TestEval_FactorialIsRealOnly(t *testing.T) {
	sess := session.New(session.Rad)
	got := run(t, sess, "5!")
	assertApproxReal(t, 120, got, 1e-9)

	ce := runErr(t, sess, "(1+1i)!")
	assert.True(t, cerr.Is(ce, cerr.ArgumentType))
}

func TestEval_ImplicitMultiplicationVsCall(t *testing.T) {
	sess := session.New(session.Rad)
	run(t, sess, "x=3")
	got := run(t, sess, "2x")
	assertApproxReal(t, 6, got, 1e-9)

	got = run(t, sess, "sqrt(4)")
	assertApproxReal(t, 2, got, 1e-9)
}

func TestEval_LogBase(t *testing.T) {
	sess := session.New(session.Rad)
	got := run(t, sess, "log:2(8)")
	assertApproxReal(t, 3, got, 1e-9)
}

func TestEval_DivisionByZeroIsDomainError(t *testing.T) {
	sess := session.New(session.Rad)
	ce := runErr(t, sess, "1/0")
	assert.True(t, cerr.Is(ce, cerr.DomainError))
}

func TestEval_UndefinedNameIsReported(t *testing.T) {
	sess := session.New(session.Rad)
	ce := runErr(t, sess, "y+1")
	assert.True(t, cerr.Is(ce, cerr.UndefinedName))
}
