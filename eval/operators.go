/*
File    : exath/eval/operators.go

Arithmetic, comparison, and logical operator semantics shared between
ast.BinOp evaluation and the "pow"/"mod" built-in aliases.
*/
package eval

import (
	"math"
	"math/cmplx"

	"github.com/exath-lang/exath/cerr"
)

// Add, Sub, Mul are ordinary complex128 arithmetic; Go's complex128
// already implements these exactly as spec.md's (re, im) pair would.

// Div implements complex division, rejecting division by exact zero
// (spec.md §4.3: "Division by a value whose modulus is below a hard zero
// (exact 0 in both components) -> DomainError. Division by a tiny nonzero
// is allowed and may produce infinities.").
func Div(a, b complex128) (complex128, *cerr.Error) {
	if b == 0 {
		return 0, cerr.New(cerr.DomainError, "division by zero")
	}
	return a / b, nil
}

// Pow computes a^b as exp(b*log(a)) under the principal branch, with the
// special cases spec.md §4.3 calls out checked first, and integer-real
// exponents on a real base handled by repeated squaring to preserve sign
// and avoid +0i drift.
func Pow(a, b complex128) (complex128, *cerr.Error) {
	if a == 0 && b == 0 {
		return 0, cerr.New(cerr.DomainError, "0^0 is undefined")
	}
	if a == 0 {
		if isReal(b) && real(b) <= 0 {
			return 0, cerr.New(cerr.DomainError, "0^b is undefined for b <= 0")
		}
		return 0, nil
	}
	if isReal(a) && isReal(b) {
		br := real(b)
		if ir := math.Round(br); math.Abs(br-ir) < 1e-12 && math.Abs(ir) <= 1<<53 {
			return complex(math.Pow(real(a), ir), 0), nil
		}
	}
	return cmplx.Exp(b * cmplx.Log(a)), nil
}

// Mod implements truncated-remainder modulo, real operands only.
func Mod(a, b complex128) (complex128, *cerr.Error) {
	if !isReal(a) || !isReal(b) {
		return 0, cerr.New(cerr.ArgumentType, "mod requires real operands")
	}
	bf := real(b)
	if bf == 0 {
		return 0, cerr.New(cerr.DomainError, "modulo by zero")
	}
	return complex(math.Mod(real(a), bf), 0), nil
}

// Compare implements the real-only relational operators, returning 1 or 0.
func compareReal(a, b complex128, less, allowEq bool) (complex128, *cerr.Error) {
	if !isReal(a) || !isReal(b) {
		return 0, cerr.New(cerr.ArgumentType, "comparison requires real operands")
	}
	ar, br := real(a), real(b)
	var ok bool
	switch {
	case less && allowEq:
		ok = ar <= br
	case less && !allowEq:
		ok = ar < br
	case !less && allowEq:
		ok = ar >= br
	default:
		ok = ar > br
	}
	return boolComplex(ok), nil
}

func boolComplex(b bool) complex128 {
	if b {
		return complex(1, 0)
	}
	return complex(0, 0)
}

// truthy reports whether a real-valued complex128 is non-zero within
// tolerance, the truth convention for &&, ||, and if().
func truthy(z complex128) (bool, *cerr.Error) {
	if !isReal(z) {
		return false, cerr.New(cerr.ArgumentType, "condition must be real")
	}
	return !closeF(real(z), 0), nil
}
