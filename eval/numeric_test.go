package eval

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exath-lang/exath/cerr"
	"github.com/exath-lang/exath/session"
)

func TestDeriv_Polynomial(t *testing.T) {
	got, err := Deriv("x^3", "x", 2, session.Rad)
	require.Nil(t, err)
	assert.InDelta(t, 12, real(got), 1e-4)
	assert.InDelta(t, 0, imag(got), 1e-9)
}

func TestDeriv_AtZero(t *testing.T) {
	got, err := Deriv("x^2", "x", 0, session.Rad)
	require.Nil(t, err)
	assert.InDelta(t, 0, real(got), 1e-4)
}

func TestIntegrate_SinOverHalfPeriod(t *testing.T) {
	got, err := Integrate("sin(x)", "x", 0, math.Pi, session.Rad)
	require.Nil(t, err)
	assert.InDelta(t, 2, real(got), 1e-6)
	assert.InDelta(t, 0, imag(got), 1e-9)
}

func TestIntegrate_SamePointIsZero(t *testing.T) {
	got, err := Integrate("x^2", "x", 3, 3, session.Rad)
	require.Nil(t, err)
	assert.Equal(t, complex128(0), got)
}

func TestIntegrate_ReversedBoundsNegates(t *testing.T) {
	forward, err := Integrate("x^2", "x", 0, 2, session.Rad)
	require.Nil(t, err)
	backward, err := Integrate("x^2", "x", 2, 0, session.Rad)
	require.Nil(t, err)
	assert.InDelta(t, -real(forward), real(backward), 1e-9)
}

func TestSum_ArithmeticSeries(t *testing.T) {
	got, err := Sum("x", "x", 1, 10, session.Rad)
	require.Nil(t, err)
	assert.Equal(t, complex(55, 0), got)
}

func TestSum_EmptyRangeIsZero(t *testing.T) {
	got, err := Sum("x", "x", 5, 1, session.Rad)
	require.Nil(t, err)
	assert.Equal(t, complex128(0), got)
}

func TestSum_RangeTooLargeIsRejected(t *testing.T) {
	_, err := Sum("x", "x", 0, 20_000_000, session.Rad)
	require.NotNil(t, err)
	assert.True(t, cerr.Is(err, cerr.RangeTooLarge))
}

func TestProd_Factorial(t *testing.T) {
	got, err := Prod("x", "x", 1, 5, session.Rad)
	require.Nil(t, err)
	assert.Equal(t, complex(120, 0), got)
}

func TestProd_EmptyRangeIsOne(t *testing.T) {
	got, err := Prod("x", "x", 5, 1, session.Rad)
	require.Nil(t, err)
	assert.Equal(t, complex(1, 0), got)
}

func TestSum_NonIntegralBoundIsArgumentType(t *testing.T) {
	_, err := Sum("x", "x", 1.5, 10, session.Rad)
	require.NotNil(t, err)
	assert.True(t, cerr.Is(err, cerr.ArgumentType))
}
