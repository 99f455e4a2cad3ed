/*
File    : exath/parser/statements.go

ParseLine classifies and parses one top-level input line into an
ast.Line: a bare expression, a variable assignment, or a function
definition. The three forms are told apart purely by their leading token
shape, per spec.md §4.2, before any expression parsing begins.
*/
package parser

import (
	"github.com/exath-lang/exath/ast"
	"github.com/exath-lang/exath/cerr"
	"github.com/exath-lang/exath/lexer"
)

// ParseLine parses one session input line.
func ParseLine(src string, callables Callables) (ast.Line, error) {
	toks, err := lexer.New(src).ConsumeTokens()
	if err != nil {
		return nil, err
	}
	if len(toks) == 0 {
		return nil, cerr.New(cerr.ParseError, "empty input")
	}

	if isAssignment(toks) {
		name := toks[0].Text
		if callables.IsBuiltinConstant(name) {
			return nil, cerr.New(cerr.ParseError, "cannot assign to built-in name %q", name)
		}
		expr, err := parseExprTokens(toks[2:], callables)
		if err != nil {
			return nil, err
		}
		return &ast.AssignmentLine{Name: name, Expr: expr}, nil
	}

	if def, ok, err := tryParseFunctionDef(toks, callables); err != nil {
		return nil, err
	} else if ok {
		return def, nil
	}

	expr, err := parseExprTokens(toks, callables)
	if err != nil {
		return nil, err
	}
	return &ast.ExpressionLine{Expr: expr}, nil
}

// isAssignment reports whether toks opens with `IDENT =` (not `==`), the
// bare-assignment shape. Function definitions (`IDENT ( ... ) =`) are
// handled separately since their second token is LParen, not Assign.
func isAssignment(toks []lexer.Token) bool {
	return len(toks) >= 2 && toks[0].Kind == lexer.IDENT && toks[1].Kind == lexer.Assign
}

// tryParseFunctionDef attempts to read `name(param, ...) = body` from the
// front of toks. It returns ok=false (no error) if the shape doesn't match
// a function definition at all, so the caller can fall back to parsing
// the line as a plain expression (e.g. a call like `f(2)`).
func tryParseFunctionDef(toks []lexer.Token, callables Callables) (*ast.FunctionDefLine, bool, error) {
	if len(toks) < 2 || toks[0].Kind != lexer.IDENT || toks[1].Kind != lexer.LParen {
		return nil, false, nil
	}
	name := toks[0].Text

	i := 2
	var params []string
	if i >= len(toks) {
		return nil, false, nil
	}
	if toks[i].Kind != lexer.RParen {
		for {
			if i >= len(toks) || toks[i].Kind != lexer.IDENT {
				return nil, false, nil
			}
			params = append(params, toks[i].Text)
			i++
			if i >= len(toks) {
				return nil, false, nil
			}
			if toks[i].Kind == lexer.Comma {
				i++
				continue
			}
			break
		}
	}
	if i >= len(toks) || toks[i].Kind != lexer.RParen {
		return nil, false, nil
	}
	i++
	if i >= len(toks) || toks[i].Kind != lexer.Assign {
		return nil, false, nil
	}
	i++

	if arity, variadic, ok := callables.BuiltinArity(name); ok && !variadic && arity != len(params) {
		return nil, true, cerr.New(cerr.ParseError, "%q collides with a built-in of different arity", name)
	}

	// The function being defined is callable inside its own body, so a
	// self-reference parses as a Call that the recursion check can see.
	body, err := parseExprTokens(toks[i:], selfCallable{Callables: callables, name: name})
	if err != nil {
		return nil, true, err
	}
	return &ast.FunctionDefLine{Name: name, Params: params, Body: body}, true, nil
}

// selfCallable extends a Callables view with one extra callable name.
type selfCallable struct {
	Callables
	name string
}

func (c selfCallable) IsCallable(name string) bool {
	return name == c.name || c.Callables.IsCallable(name)
}
