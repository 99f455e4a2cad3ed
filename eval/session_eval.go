/*
File    : exath/eval/session_eval.go

EvalLine dispatches by ast.Line variant (spec.md §4.5 Session.eval):
expressions evaluate and return their value; assignments evaluate then
bind; function definitions are stored without evaluation after a
structural recursion check, resolving spec.md §9's open question by
rejecting self- or mutually-recursive bodies at definition time rather
than at call time.
*/
package eval

import (
	"github.com/exath-lang/exath/ast"
	"github.com/exath-lang/exath/cerr"
	"github.com/exath-lang/exath/session"
)

// EvalLine evaluates one parsed session line, mutating sess on success
// for Assignment and FunctionDef lines.
func EvalLine(line ast.Line, sess *session.Session) (complex128, *cerr.Error) {
	switch l := line.(type) {
	case *ast.ExpressionLine:
		return Eval(l.Expr, sess)

	case *ast.AssignmentLine:
		v, err := Eval(l.Expr, sess)
		if err != nil {
			return 0, err
		}
		sess.SetVar(l.Name, real(v), imag(v))
		return v, nil

	case *ast.FunctionDefLine:
		if err := rejectRecursion(l.Name, l.Body, sess); err != nil {
			return 0, err
		}
		sess.SetFunc(l.Name, l.Params, l.Body)
		return 0, nil

	default:
		return 0, cerr.New(cerr.ParseError, "unknown statement form")
	}
}

// rejectRecursion reports a ParseError if defining name with this body
// would create a self- or mutually-recursive call cycle against the
// functions already stored in sess. Only existing definitions are
// consulted: since name is being defined right now, any cycle back to it
// must flow through a function that already exists.
func rejectRecursion(name string, body ast.Node, sess *session.Session) *cerr.Error {
	direct := collectCallNames(body)
	visited := map[string]bool{}
	var reaches func(n string) bool
	reaches = func(n string) bool {
		if n == name {
			return true
		}
		if visited[n] {
			return false
		}
		visited[n] = true
		uf, ok := sess.Func(n)
		if !ok {
			return false
		}
		for c := range collectCallNames(uf.Body) {
			if reaches(c) {
				return true
			}
		}
		return false
	}
	for c := range direct {
		if reaches(c) {
			return cerr.New(cerr.ParseError, "recursive definition of %q (through %q)", name, c)
		}
	}
	return nil
}

// collectCallNames walks node and returns the set of names invoked via
// ast.Call anywhere within it (including inside nested calls, operators,
// abs, log-base, and factorial).
func collectCallNames(node ast.Node) map[string]bool {
	names := map[string]bool{}
	var walk func(ast.Node)
	walk = func(n ast.Node) {
		if n == nil {
			return
		}
		switch v := n.(type) {
		case *ast.Number, *ast.Var:
			// leaves
		case *ast.UnaryOp:
			walk(v.Child)
		case *ast.BinOp:
			walk(v.Left)
			walk(v.Right)
		case *ast.Call:
			names[v.Name] = true
			for _, a := range v.Args {
				walk(a)
			}
		case *ast.LogBase:
			walk(v.Arg)
		case *ast.Abs:
			walk(v.Child)
		case *ast.Factorial:
			walk(v.Child)
		}
	}
	walk(node)
	return names
}
