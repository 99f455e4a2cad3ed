/*
File    : exath/eval/numeric.go

The four numerical methods layered on repeated evaluation (spec.md §4.4).
Each parses its target expression once, then iterates Eval over a
throwaway session overlay with the binding variable rebound at every
sample point.
*/
package eval

import (
	"math"

	"github.com/exath-lang/exath/ast"
	"github.com/exath-lang/exath/cerr"
	"github.com/exath-lang/exath/parser"
	"github.com/exath-lang/exath/session"
)

func parseTarget(expr string) (ast.Node, *cerr.Error) {
	node, err := parser.ParseExpr(expr, Callables(nil))
	if err != nil {
		return nil, asCerr(err)
	}
	return node, nil
}

func asCerr(err error) *cerr.Error {
	if err == nil {
		return nil
	}
	if ce, ok := err.(*cerr.Error); ok {
		return ce
	}
	return cerr.New(cerr.ParseError, "%s", err.Error())
}

func evalAt(node ast.Node, varName string, point complex128, mode session.AngleMode) (complex128, *cerr.Error) {
	overlay := session.New(mode)
	overlay.SetVar(varName, real(point), imag(point))
	return Eval(node, overlay)
}

func requireReal(v complex128) *cerr.Error {
	if !isReal(v) {
		return cerr.New(cerr.ComplexResult, "numerical method observed a complex intermediate value")
	}
	return nil
}

// Deriv computes the central finite-difference derivative of expr with
// respect to varName at x0.
func Deriv(expr, varName string, x0 float64, mode session.AngleMode) (complex128, *cerr.Error) {
	node, err := parseTarget(expr)
	if err != nil {
		return 0, err
	}
	h := math.Abs(x0) * 1e-7
	if h < 1e-10 {
		h = 1e-10
	}
	fPlus, err := evalAt(node, varName, complex(x0+h, 0), mode)
	if err != nil {
		return 0, err
	}
	if err := requireReal(fPlus); err != nil {
		return 0, err
	}
	fMinus, err := evalAt(node, varName, complex(x0-h, 0), mode)
	if err != nil {
		return 0, err
	}
	if err := requireReal(fMinus); err != nil {
		return 0, err
	}
	return (fPlus - fMinus) / complex(2*h, 0), nil
}

// Integrate computes a composite-Simpson's-rule approximation of the
// definite integral of expr over [a, b]. a == b yields 0; a > b is
// allowed and negates the result, per spec.md §4.4.
func Integrate(expr, varName string, a, b float64, mode session.AngleMode) (complex128, *cerr.Error) {
	if a == b {
		return 0, nil
	}
	node, err := parseTarget(expr)
	if err != nil {
		return 0, err
	}

	negate := false
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
		negate = true
	}

	const n = 1000
	h := (hi - lo) / n

	var total complex128
	for i := 0; i <= n; i++ {
		x := lo + float64(i)*h
		fx, err := evalAt(node, varName, complex(x, 0), mode)
		if err != nil {
			return 0, err
		}
		if err := requireReal(fx); err != nil {
			return 0, err
		}
		weight := 2.0
		switch {
		case i == 0 || i == n:
			weight = 1
		case i%2 == 1:
			weight = 4
		}
		total += complex(weight, 0) * fx
	}
	result := total * complex(h/3, 0)
	if negate {
		result = -result
	}
	return result, nil
}

// Sum evaluates expr over the closed integer interval [from, to], binding
// varName to each integer in turn. from > to yields 0.
func Sum(expr, varName string, from, to float64, mode session.AngleMode) (complex128, *cerr.Error) {
	node, fromI, toI, err := prepareIteration(expr, from, to)
	if err != nil {
		return 0, err
	}
	if fromI > toI {
		return 0, nil
	}
	var total complex128
	for k := fromI; k <= toI; k++ {
		v, err := evalAt(node, varName, complex(float64(k), 0), mode)
		if err != nil {
			return 0, err
		}
		if err := requireReal(v); err != nil {
			return 0, err
		}
		total += v
	}
	return total, nil
}

// Prod evaluates expr over the closed integer interval [from, to],
// binding varName to each integer in turn. from > to yields 1.
func Prod(expr, varName string, from, to float64, mode session.AngleMode) (complex128, *cerr.Error) {
	node, fromI, toI, err := prepareIteration(expr, from, to)
	if err != nil {
		return 0, err
	}
	if fromI > toI {
		return complex(1, 0), nil
	}
	total := complex(1, 0)
	for k := fromI; k <= toI; k++ {
		v, err := evalAt(node, varName, complex(float64(k), 0), mode)
		if err != nil {
			return 0, err
		}
		if err := requireReal(v); err != nil {
			return 0, err
		}
		total *= v
	}
	return total, nil
}

const maxRange = 10_000_000

func prepareIteration(expr string, from, to float64) (ast.Node, int64, int64, *cerr.Error) {
	node, err := parseTarget(expr)
	if err != nil {
		return nil, 0, 0, err
	}
	fromI, err := asInt64(from)
	if err != nil {
		return nil, 0, 0, err
	}
	toI, err := asInt64(to)
	if err != nil {
		return nil, 0, 0, err
	}
	if fromI <= toI && toI-fromI+1 > maxRange {
		return nil, 0, 0, cerr.New(cerr.RangeTooLarge, "range [%d, %d] exceeds %d terms", fromI, toI, maxRange)
	}
	return node, fromI, toI, nil
}
