/*
File    : exath/session/session.go

Package session holds the mutable evaluation context: angle mode, an
insertion-ordered variable table, and an insertion-ordered user-function
table. A Session is a plain value-like object -- it owns its tables
outright and shares no AST with any other session (spec.md §4.5).

The insertion-ordered map pattern is grounded on the teacher's
scope.Scope, flattened from a parent-chained lexical scope to a single
flat table since user functions in this DSL capture no closure
environment (spec.md §9 "No closures in user functions").
*/
package session

import (
	"strings"

	"github.com/exath-lang/exath/ast"
	"github.com/exath-lang/exath/cerr"
)

// AngleMode selects the unit trigonometric built-ins interpret their
// arguments and results in.
type AngleMode int

const (
	Rad AngleMode = iota
	Deg
	Grad
)

// ParseAngleMode accepts a case-insensitive mode name, for hosts (like the
// WebAssembly wrapper) that pass angle mode as a string.
func ParseAngleMode(s string) (AngleMode, bool) {
	switch strings.ToLower(s) {
	case "rad":
		return Rad, true
	case "deg":
		return Deg, true
	case "grad":
		return Grad, true
	default:
		return 0, false
	}
}

func (m AngleMode) String() string {
	switch m {
	case Rad:
		return "rad"
	case Deg:
		return "deg"
	case Grad:
		return "grad"
	default:
		return "unknown"
	}
}

// UserFunc is a stored function definition: its parameter list and body.
// A definition takes exclusive ownership of its body AST; it is never
// shared with another session.
type UserFunc struct {
	Params []string
	Body   ast.Node
}

// Session is the mutable evaluation context passed to every Eval call.
// It is not safe for concurrent access -- a single session must not be
// read while it is being mutated (spec.md §5).
type Session struct {
	Mode AngleMode

	vars     map[string]complex128
	varOrder []string

	fns     map[string]*UserFunc
	fnOrder []string
}

// New creates an empty session in the given angle mode.
func New(mode AngleMode) *Session {
	return &Session{
		Mode: mode,
		vars: make(map[string]complex128),
		fns:  make(map[string]*UserFunc),
	}
}

// SetVar overwrites or inserts a variable binding. name must not be a
// built-in constant name; SetVar does not check this. Assignments parsed by
// parser.ParseLine are rejected there with a ParseError.
func (s *Session) SetVar(name string, re, im float64) {
	s.setVar(name, complex(re, im))
}

func (s *Session) setVar(name string, v complex128) {
	if _, exists := s.vars[name]; !exists {
		s.varOrder = append(s.varOrder, name)
	}
	s.vars[name] = v
}

// Var looks up a variable's value.
func (s *Session) Var(name string) (complex128, bool) {
	v, ok := s.vars[name]
	return v, ok
}

// RemoveVar deletes a variable binding. Absence is not an error.
func (s *Session) RemoveVar(name string) {
	if _, ok := s.vars[name]; !ok {
		return
	}
	delete(s.vars, name)
	s.varOrder = removeName(s.varOrder, name)
}

// ClearVars removes every variable binding.
func (s *Session) ClearVars() {
	s.vars = make(map[string]complex128)
	s.varOrder = nil
}

// VarNames returns variable names in insertion order, later removals
// filtered out.
func (s *Session) VarNames() []string {
	out := make([]string, len(s.varOrder))
	copy(out, s.varOrder)
	return out
}

// SetFunc stores a user function definition, taking ownership of body.
func (s *Session) SetFunc(name string, params []string, body ast.Node) {
	if _, exists := s.fns[name]; !exists {
		s.fnOrder = append(s.fnOrder, name)
	}
	s.fns[name] = &UserFunc{Params: params, Body: body}
}

// Func looks up a user function definition.
func (s *Session) Func(name string) (*UserFunc, bool) {
	f, ok := s.fns[name]
	return f, ok
}

// RemoveFunc deletes a user function definition. Absence is not an error.
func (s *Session) RemoveFunc(name string) {
	if _, ok := s.fns[name]; !ok {
		return
	}
	delete(s.fns, name)
	s.fnOrder = removeName(s.fnOrder, name)
}

// FnNames returns function names in insertion order, later removals
// filtered out.
func (s *Session) FnNames() []string {
	out := make([]string, len(s.fnOrder))
	copy(out, s.fnOrder)
	return out
}

// Overlay returns a shallow child session with the parent's Mode, a copy of
// the parent's function table, and its own independent variable table
// seeded from the parent's variables. It is used for user-function call
// frames (caller's variables overlaid with the callee's parameters).
// Mutations to the overlay never propagate back to the parent.
func (s *Session) Overlay() *Session {
	child := New(s.Mode)
	for k, v := range s.vars {
		child.setVar(k, v)
	}
	for _, name := range s.fnOrder {
		child.fns[name] = s.fns[name]
		child.fnOrder = append(child.fnOrder, name)
	}
	return child
}

func removeName(order []string, name string) []string {
	for i, n := range order {
		if n == name {
			return append(order[:i:i], order[i+1:]...)
		}
	}
	return order
}

// ErrUnknownName is a convenience constructor used by eval for undefined
// variable/function references.
func ErrUnknownName(name string) *cerr.Error {
	return cerr.New(cerr.UndefinedName, "undefined name %q", name)
}
