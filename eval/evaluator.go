/*
File    : exath/eval/evaluator.go

Package eval reduces an ast.Node to a complex128 against a mutable
session.Session, and dispatches the four numerical methods layered on
repeated evaluation. The central type-switch dispatcher mirrors the shape
of the teacher's eval/evaluator.go evalExpr, generalized to this DSL's
closed AST and to complex-valued semantics throughout.
*/
package eval

import (
	"math/cmplx"

	"github.com/exath-lang/exath/ast"
	"github.com/exath-lang/exath/cerr"
	"github.com/exath-lang/exath/session"
)

// maxCallDepth bounds user-function call nesting. Recursion is already
// rejected structurally at definition time (see rejectRecursion in
// session_eval.go), so this is a defensive backstop against pathological
// non-recursive call chains, not the primary recursion guard.
const maxCallDepth = 256

// Eval reduces node to a complex value against sess. It is pure with
// respect to sess: no expression node mutates the session.
func Eval(node ast.Node, sess *session.Session) (complex128, *cerr.Error) {
	return evalNode(node, sess, 0)
}

func evalNode(node ast.Node, sess *session.Session, depth int) (complex128, *cerr.Error) {
	switch n := node.(type) {
	case *ast.Number:
		return complex(n.Value, 0), nil

	case *ast.Var:
		return evalVar(n.Name, sess)

	case *ast.UnaryOp:
		return evalUnary(n, sess, depth)

	case *ast.BinOp:
		return evalBinOp(n, sess, depth)

	case *ast.Call:
		return evalCall(n, sess, depth)

	case *ast.LogBase:
		return evalLogBase(n, sess, depth)

	case *ast.Abs:
		v, err := evalNode(n.Child, sess, depth)
		if err != nil {
			return 0, err
		}
		return complex(cmplx.Abs(v), 0), nil

	case *ast.Factorial:
		v, err := evalNode(n.Child, sess, depth)
		if err != nil {
			return 0, err
		}
		return callBuiltin("fact", []complex128{v}, sess.Mode)

	default:
		return 0, cerr.New(cerr.ParseError, "unhandled AST node %T", node)
	}
}

func evalVar(name string, sess *session.Session) (complex128, *cerr.Error) {
	switch name {
	case "pi", "π":
		return complex(piConst, 0), nil
	case "e":
		return complex(eConst, 0), nil
	case "phi", "φ":
		return complex(phiConst, 0), nil
	}
	if v, ok := sess.Var(name); ok {
		return v, nil
	}
	// i is the imaginary unit unless a variable named i is bound.
	if name == "i" {
		return complex(0, 1), nil
	}
	return 0, session.ErrUnknownName(name)
}

func evalUnary(n *ast.UnaryOp, sess *session.Session, depth int) (complex128, *cerr.Error) {
	v, err := evalNode(n.Child, sess, depth)
	if err != nil {
		return 0, err
	}
	switch n.Kind {
	case ast.Neg:
		// 0 - v rather than -v: -v turns a +0 imaginary part into -0, which
		// puts sqrt(-4) and ln(-1) on the wrong side of their branch cuts.
		return 0 - v, nil
	case ast.Not:
		t, err := truthy(v)
		if err != nil {
			return 0, err
		}
		return boolComplex(!t), nil
	default:
		return 0, cerr.New(cerr.ParseError, "unknown unary operator")
	}
}

func evalBinOp(n *ast.BinOp, sess *session.Session, depth int) (complex128, *cerr.Error) {
	// && and || short-circuit: the right operand is only evaluated when
	// the left operand doesn't already determine the result.
	if n.Kind == ast.And || n.Kind == ast.Or {
		left, err := evalNode(n.Left, sess, depth)
		if err != nil {
			return 0, err
		}
		lt, err := truthy(left)
		if err != nil {
			return 0, err
		}
		if n.Kind == ast.And && !lt {
			return boolComplex(false), nil
		}
		if n.Kind == ast.Or && lt {
			return boolComplex(true), nil
		}
		right, err := evalNode(n.Right, sess, depth)
		if err != nil {
			return 0, err
		}
		rt, err := truthy(right)
		if err != nil {
			return 0, err
		}
		return boolComplex(rt), nil
	}

	left, err := evalNode(n.Left, sess, depth)
	if err != nil {
		return 0, err
	}
	right, err := evalNode(n.Right, sess, depth)
	if err != nil {
		return 0, err
	}

	switch n.Kind {
	case ast.Add:
		return left + right, nil
	case ast.Sub:
		return left - right, nil
	case ast.Mul:
		return left * right, nil
	case ast.Div:
		return Div(left, right)
	case ast.Pow:
		return Pow(left, right)
	case ast.Mod:
		return Mod(left, right)
	case ast.Eq:
		return boolComplex(approxEqual(left, right)), nil
	case ast.Ne:
		return boolComplex(!approxEqual(left, right)), nil
	case ast.Lt:
		return compareReal(left, right, true, false)
	case ast.Le:
		return compareReal(left, right, true, true)
	case ast.Gt:
		return compareReal(left, right, false, false)
	case ast.Ge:
		return compareReal(left, right, false, true)
	default:
		return 0, cerr.New(cerr.ParseError, "unknown binary operator")
	}
}

func evalLogBase(n *ast.LogBase, sess *session.Session, depth int) (complex128, *cerr.Error) {
	arg, err := evalNode(n.Arg, sess, depth)
	if err != nil {
		return 0, err
	}
	if arg == 0 {
		return 0, cerr.New(cerr.DomainError, "log of 0 is undefined")
	}
	base := complex(n.Base, 0)
	if base == 0 {
		return 0, cerr.New(cerr.DomainError, "log base 0 is undefined")
	}
	return Div(cmplx.Log(arg), cmplx.Log(base))
}

func evalCall(n *ast.Call, sess *session.Session, depth int) (complex128, *cerr.Error) {
	if n.Name == "if" {
		return evalIf(n, sess, depth)
	}

	if b, ok := builtins[n.Name]; ok {
		if err := checkArity(len(n.Args), b.arity, b.variadic); err != nil {
			return 0, err
		}
		args := make([]complex128, len(n.Args))
		for i, a := range n.Args {
			v, err := evalNode(a, sess, depth)
			if err != nil {
				return 0, err
			}
			if b.realOnly && !isReal(v) {
				return 0, cerr.New(cerr.ArgumentType, "%s requires a real argument", n.Name)
			}
			args[i] = v
		}
		return b.fn(args, sess.Mode)
	}

	uf, ok := sess.Func(n.Name)
	if !ok {
		return 0, session.ErrUnknownName(n.Name)
	}
	if len(n.Args) != len(uf.Params) {
		return 0, cerr.New(cerr.ArgumentCount, "%s expects %d argument(s), got %d", n.Name, len(uf.Params), len(n.Args))
	}
	if depth+1 > maxCallDepth {
		return 0, cerr.New(cerr.ParseError, "call depth exceeded calling %q", n.Name)
	}
	args := make([]complex128, len(n.Args))
	for i, a := range n.Args {
		v, err := evalNode(a, sess, depth)
		if err != nil {
			return 0, err
		}
		args[i] = v
	}
	callSess := sess.Overlay()
	for i, p := range uf.Params {
		callSess.SetVar(p, real(args[i]), imag(args[i]))
	}
	return evalNode(uf.Body, callSess, depth+1)
}

func evalIf(n *ast.Call, sess *session.Session, depth int) (complex128, *cerr.Error) {
	if len(n.Args) != 3 {
		return 0, cerr.New(cerr.ArgumentCount, "if expects 3 arguments, got %d", len(n.Args))
	}
	cond, err := evalNode(n.Args[0], sess, depth)
	if err != nil {
		return 0, err
	}
	ct, err := truthy(cond)
	if err != nil {
		return 0, err
	}
	if ct {
		return evalNode(n.Args[1], sess, depth)
	}
	return evalNode(n.Args[2], sess, depth)
}

func checkArity(got, want int, variadic bool) *cerr.Error {
	if variadic {
		if got < want {
			return cerr.New(cerr.ArgumentCount, "expected at least %d argument(s), got %d", want, got)
		}
		return nil
	}
	if got != want {
		return cerr.New(cerr.ArgumentCount, "expected %d argument(s), got %d", want, got)
	}
	return nil
}

// callBuiltin invokes a registered built-in by name, applying its real-only
// check. Used by Factorial's AST evaluation to share fact()'s semantics.
func callBuiltin(name string, args []complex128, mode session.AngleMode) (complex128, *cerr.Error) {
	b, ok := builtins[name]
	if !ok {
		return 0, cerr.New(cerr.UndefinedName, "undefined name %q", name)
	}
	if err := checkArity(len(args), b.arity, b.variadic); err != nil {
		return 0, err
	}
	for _, a := range args {
		if b.realOnly && !isReal(a) {
			return 0, cerr.New(cerr.ArgumentType, "%s requires a real argument", name)
		}
	}
	return b.fn(args, mode)
}
