/*
File    : exath/eval/angle.go

Angle-mode conversion: trigonometric built-ins convert their argument from
the session's angle unit to radians before calling into math/cmplx, and
inverse-trig built-ins convert their radian result back to the session's
angle unit (spec.md §4.3 "Built-in dispatch").
*/
package eval

import (
	"math"

	"github.com/exath-lang/exath/session"
)

func toRadians(z complex128, mode session.AngleMode) complex128 {
	switch mode {
	case session.Deg:
		return z * complex(math.Pi/180, 0)
	case session.Grad:
		return z * complex(math.Pi/200, 0)
	default:
		return z
	}
}

func fromRadians(z complex128, mode session.AngleMode) complex128 {
	switch mode {
	case session.Deg:
		return z * complex(180/math.Pi, 0)
	case session.Grad:
		return z * complex(200/math.Pi, 0)
	default:
		return z
	}
}

// realTol is the absolute tolerance (spec.md §3 "real predicate") used to
// decide whether a complex128's imaginary part is negligible.
const realTol = 1e-12

func isReal(z complex128) bool {
	im := imag(z)
	if im < 0 {
		im = -im
	}
	return im < realTol
}

// approxEqual compares two complex values within the engine's absolute
// tolerance for == / != semantics (spec.md §4.3).
func approxEqual(a, b complex128) bool {
	return closeF(real(a), real(b)) && closeF(imag(a), imag(b))
}

func closeF(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < realTol
}
