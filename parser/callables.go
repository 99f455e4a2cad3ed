/*
File    : exath/parser/callables.go

The parser is contextual: whether "ident(" starts a call or an implicit
multiplication by a parenthesized expression depends on whether ident names
a built-in or a user-defined function. Callables is the read-only capability
the caller passes in for that lookup, rather than a global registry -- see
SPEC_FULL.md §4.2 / spec.md §9.
*/
package parser

// Callables answers the parser's three contextual questions: "is this name
// callable" (disambiguates implicit multiplication from a call), "is this
// name a reserved constant" (rejects assignment to it), and "what is this
// built-in's arity" (used when validating a function definition against a
// built-in name it might collide with).
type Callables interface {
	// IsCallable reports whether name is a built-in function or a
	// currently-defined user function.
	IsCallable(name string) bool
	// IsBuiltinConstant reports whether name is a reserved constant
	// (pi, e, phi, and their Greek-letter spellings) that may not be
	// assigned to.
	IsBuiltinConstant(name string) bool
	// BuiltinArity reports a built-in function's fixed arity. ok is false
	// if name is not a built-in function (including when it is a built-in
	// constant or a user function).
	BuiltinArity(name string) (arity int, variadic bool, ok bool)
}

// emptyCallables treats nothing as callable, for syntax-only parsing with
// neither a session nor the built-in table to consult.
type emptyCallables struct{}

func (emptyCallables) IsCallable(string) bool                             { return false }
func (emptyCallables) IsBuiltinConstant(string) bool                      { return false }
func (emptyCallables) BuiltinArity(string) (int, bool, bool) { return 0, false, false }

// NoCallables is a Callables that recognizes no names at all.
var NoCallables Callables = emptyCallables{}
