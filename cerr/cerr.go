/*
File    : exath/cerr/cerr.go

Package cerr defines the error taxonomy for the exath expression engine.
Every fallible operation in the engine returns a tagged *Error rather than
a bare Go error, so hosts can branch on Kind without parsing messages.
*/
package cerr

import "fmt"

// Kind enumerates the closed set of error categories the engine can raise.
type Kind string

const (
	// ParseError covers lexical/syntactic issues, assignment to a built-in
	// name, and the parser's recursion/definition-time checks.
	ParseError Kind = "ParseError"
	// UndefinedName covers references to a variable or function not in scope.
	UndefinedName Kind = "UndefinedName"
	// ArgumentCount covers builtin or user function calls with wrong arity.
	ArgumentCount Kind = "ArgumentCount"
	// ArgumentType covers a real-only operation given a complex value.
	ArgumentType Kind = "ArgumentType"
	// DomainError covers ln(0), division by exact zero, 0^0, 0^(b<=0), etc.
	DomainError Kind = "DomainError"
	// Overflow covers integer conversion out of 64-bit signed range.
	Overflow Kind = "Overflow"
	// ComplexResult covers a numerical method observing a complex intermediate.
	ComplexResult Kind = "ComplexResult"
	// RangeTooLarge covers sum/prod ranges exceeding 10,000,000 terms.
	RangeTooLarge Kind = "RangeTooLarge"
)

// Error is the engine's single error type. It implements the standard
// error interface so it composes with errors.As/%w like any other Go error.
type Error struct {
	Kind    Kind
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// New constructs an *Error with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Is reports whether err is a *Error of the given kind. Convenience for
// callers that only care about the category, not the message text.
func Is(err error, kind Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}
