/*
File    : exath/exath.go

Package exath is the embeddable library surface: the small set of pure or
session-bound entry points every wrapper (C ABI, WebAssembly, CLI, REPL)
is built on, per spec.md §6. Everything underneath (lexer, parser, ast,
session, eval) is free to evolve; this file is the seam a host program
actually imports.
*/
package exath

import (
	"github.com/exath-lang/exath/ast"
	"github.com/exath-lang/exath/cerr"
	"github.com/exath-lang/exath/eval"
	"github.com/exath-lang/exath/parser"
	"github.com/exath-lang/exath/session"
)

// AngleMode re-exports session.AngleMode so callers need not import the
// session package directly for the common case.
type AngleMode = session.AngleMode

const (
	Rad  = session.Rad
	Deg  = session.Deg
	Grad = session.Grad
)

// Error is the engine's tagged error type.
type Error = cerr.Error

// Kind re-exports cerr.Kind for callers that branch on error category.
type Kind = cerr.Kind

const (
	ParseError    = cerr.ParseError
	UndefinedName = cerr.UndefinedName
	ArgumentCount = cerr.ArgumentCount
	ArgumentType  = cerr.ArgumentType
	DomainError   = cerr.DomainError
	Overflow      = cerr.Overflow
	ComplexResult = cerr.ComplexResult
	RangeTooLarge = cerr.RangeTooLarge
)

// ParseAngleMode accepts a case-insensitive mode name ("rad", "deg", or
// "grad"), for hosts that take angle mode as a string or CLI flag.
func ParseAngleMode(s string) (AngleMode, bool) {
	return session.ParseAngleMode(s)
}

// Evaluate parses and evaluates a single stateless expression in the
// given angle mode. It is equivalent to a fresh Session's Eval, without
// the ability to retain variables or functions across calls.
func Evaluate(expr string, mode AngleMode) (complex128, *Error) {
	sess := session.New(mode)
	return evalLine(expr, sess)
}

// IsValid reports whether expr parses without error. It does not evaluate
// expr, so a parseable-but-undefined reference (an unknown name) still
// reports true.
func IsValid(expr string) bool {
	_, err := parser.ParseLine(expr, eval.Callables(nil))
	return err == nil
}

// SupportedFunctions returns the built-in function names the evaluator
// recognizes, in the engine's fixed registration order.
func SupportedFunctions() []string {
	return eval.SupportedFunctions()
}

// Parse parses expr to an AST without evaluating it.
func Parse(expr string) (ast.Node, *Error) {
	line, err := parser.ParseLine(expr, eval.Callables(nil))
	if err != nil {
		return nil, asCerr(err)
	}
	el, ok := line.(*ast.ExpressionLine)
	if !ok {
		return nil, cerr.New(cerr.ParseError, "expected an expression, not an assignment or function definition")
	}
	return el.Expr, nil
}

// Session is a stateful evaluation context: variables and user-defined
// functions persist across calls to Eval.
type Session struct {
	s *session.Session
}

// NewSession creates an empty session in the given angle mode.
func NewSession(mode AngleMode) *Session {
	return &Session{s: session.New(mode)}
}

// Eval parses and evaluates one session line: a bare expression, a
// variable assignment, or a function definition. Assignments and
// function definitions mutate the session on success.
func (s *Session) Eval(line string) (complex128, *Error) {
	return evalLine(line, s.s)
}

// SetVar binds name to the complex value (re, im), overwriting any prior
// binding. Rejecting assignment to a built-in constant name is the
// caller's responsibility via Eval; SetVar itself performs no such check.
func (s *Session) SetVar(name string, re, im float64) {
	s.s.SetVar(name, re, im)
}

// RemoveVar deletes a variable binding. Absence is not an error.
func (s *Session) RemoveVar(name string) {
	s.s.RemoveVar(name)
}

// ClearVars removes every variable binding.
func (s *Session) ClearVars() {
	s.s.ClearVars()
}

// VarNames returns variable names in insertion order.
func (s *Session) VarNames() []string {
	return s.s.VarNames()
}

// RemoveFunc deletes a user function definition. Absence is not an error.
func (s *Session) RemoveFunc(name string) {
	s.s.RemoveFunc(name)
}

// FnNames returns user function names in insertion order.
func (s *Session) FnNames() []string {
	return s.s.FnNames()
}

// Mode reports the session's angle mode.
func (s *Session) Mode() AngleMode {
	return s.s.Mode
}

func evalLine(src string, sess *session.Session) (complex128, *cerr.Error) {
	line, err := parser.ParseLine(src, eval.Callables(sess))
	if err != nil {
		return 0, asCerr(err)
	}
	return eval.EvalLine(line, sess)
}

func asCerr(err error) *cerr.Error {
	if ce, ok := err.(*cerr.Error); ok {
		return ce
	}
	return cerr.New(cerr.ParseError, "%s", err.Error())
}

// Deriv computes the central finite-difference derivative of expr with
// respect to variable at x0.
func Deriv(expr, variable string, x0 float64, mode AngleMode) (complex128, *Error) {
	return eval.Deriv(expr, variable, x0, mode)
}

// Integrate computes a composite-Simpson's-rule approximation of the
// definite integral of expr over [a, b].
func Integrate(expr, variable string, a, b float64, mode AngleMode) (complex128, *Error) {
	return eval.Integrate(expr, variable, a, b, mode)
}

// Sum evaluates expr over the closed integer interval [from, to].
func Sum(expr, variable string, from, to float64, mode AngleMode) (complex128, *Error) {
	return eval.Sum(expr, variable, from, to, mode)
}

// Prod evaluates expr over the closed integer interval [from, to].
func Prod(expr, variable string, from, to float64, mode AngleMode) (complex128, *Error) {
	return eval.Prod(expr, variable, from, to, mode)
}
