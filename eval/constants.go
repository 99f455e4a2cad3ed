/*
File    : exath/eval/constants.go

Built-in constants: pi/π, e, phi/φ, each with im=0 (spec.md §4.3). These
are resolved by the evaluator directly and may not be shadowed by user
assignment -- see session.Session / parser.Callables.IsBuiltinConstant.
*/
package eval

import "math"

const (
	piConst = math.Pi
	eConst  = math.E
	// phiConst is the golden ratio (1+sqrt(5))/2. math.Sqrt is not usable
	// in a constant expression, so the value is given as a literal.
	phiConst = 1.6180339887498948482045868343656381177203091798057628621354486227
)
