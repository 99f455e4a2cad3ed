/*
File    : exath/eval/callables.go

sessionCallables adapts the built-in dispatch table plus a session's user
functions into the parser.Callables view the contextual parser needs --
the "immutable capability passed into the parser" spec.md §9 calls for.
*/
package eval

import (
	"github.com/exath-lang/exath/parser"
	"github.com/exath-lang/exath/session"
)

type sessionCallables struct {
	sess *session.Session
}

// Callables returns a parser.Callables view backed by the built-in table
// and, if sess is non-nil, the session's currently-defined functions.
func Callables(sess *session.Session) parser.Callables {
	return sessionCallables{sess: sess}
}

func (c sessionCallables) IsCallable(name string) bool {
	if name == "if" {
		return true
	}
	if _, ok := builtins[name]; ok {
		return true
	}
	if c.sess != nil {
		if _, ok := c.sess.Func(name); ok {
			return true
		}
	}
	return false
}

func (c sessionCallables) IsBuiltinConstant(name string) bool {
	switch name {
	case "pi", "π", "e", "phi", "φ":
		return true
	}
	return false
}

func (c sessionCallables) BuiltinArity(name string) (int, bool, bool) {
	if name == "if" {
		return 3, false, true
	}
	if b, ok := builtins[name]; ok {
		return b.arity, b.variadic, true
	}
	return 0, false, false
}
