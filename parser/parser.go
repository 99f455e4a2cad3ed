/*
File    : exath/parser/parser.go

Package parser implements a recursive-descent, precedence-climbing parser
over the token stream from lexer. The precedence-level split (parseOr ->
parseAnd -> ... -> parsePrimary) mirrors the teacher's
parser_precedence.go / parser_expressions.go shape, generalized to this
DSL's operator set and to complex-valued atoms.
*/
package parser

import (
	"github.com/exath-lang/exath/ast"
	"github.com/exath-lang/exath/cerr"
	"github.com/exath-lang/exath/lexer"
)

// maxDepth is the soft recursion-depth guard spec.md §5 calls for, so a
// pathologically nested input fails with a ParseError instead of
// overflowing the Go call stack.
const maxDepth = 256

type parser struct {
	toks      []lexer.Token
	pos       int
	callables Callables
	depth     int
}

func newParser(toks []lexer.Token, callables Callables) *parser {
	return &parser{toks: toks, callables: callables}
}

func (p *parser) cur() lexer.Token {
	if p.pos >= len(p.toks) {
		return lexer.Token{Kind: lexer.EOF}
	}
	return p.toks[p.pos]
}

func (p *parser) advance() lexer.Token {
	t := p.cur()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return t
}

func (p *parser) expect(k lexer.Kind) (lexer.Token, error) {
	t := p.cur()
	if t.Kind != k {
		return t, cerr.New(cerr.ParseError, "expected %s, got %s", k, t)
	}
	return p.advance(), nil
}

func (p *parser) enter() error {
	p.depth++
	if p.depth > maxDepth {
		return cerr.New(cerr.ParseError, "expression nesting too deep")
	}
	return nil
}

func (p *parser) leave() { p.depth-- }

// ParseExpr parses src as a single expression (no statement forms).
func ParseExpr(src string, callables Callables) (ast.Node, error) {
	toks, err := lexer.New(src).ConsumeTokens()
	if err != nil {
		return nil, err
	}
	return parseExprTokens(toks, callables)
}

func parseExprTokens(toks []lexer.Token, callables Callables) (ast.Node, error) {
	p := newParser(toks, callables)
	node, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.cur().Kind != lexer.EOF {
		return nil, cerr.New(cerr.ParseError, "unexpected trailing token %s", p.cur())
	}
	return node, nil
}

func (p *parser) parseOr() (ast.Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == lexer.Or {
		p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{Kind: ast.Or, Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseAnd() (ast.Node, error) {
	left, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == lexer.And {
		p.advance()
		right, err := p.parseEquality()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{Kind: ast.And, Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseEquality() (ast.Node, error) {
	left, err := p.parseRelational()
	if err != nil {
		return nil, err
	}
	for {
		var kind ast.BinKind
		switch p.cur().Kind {
		case lexer.EqEq:
			kind = ast.Eq
		case lexer.Ne:
			kind = ast.Ne
		default:
			return left, nil
		}
		p.advance()
		right, err := p.parseRelational()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{Kind: kind, Left: left, Right: right}
	}
}

func (p *parser) parseRelational() (ast.Node, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for {
		var kind ast.BinKind
		switch p.cur().Kind {
		case lexer.Lt:
			kind = ast.Lt
		case lexer.Le:
			kind = ast.Le
		case lexer.Gt:
			kind = ast.Gt
		case lexer.Ge:
			kind = ast.Ge
		default:
			return left, nil
		}
		p.advance()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{Kind: kind, Left: left, Right: right}
	}
}

func (p *parser) parseAdditive() (ast.Node, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for {
		var kind ast.BinKind
		switch p.cur().Kind {
		case lexer.Plus:
			kind = ast.Add
		case lexer.Minus:
			kind = ast.Sub
		default:
			return left, nil
		}
		p.advance()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{Kind: kind, Left: left, Right: right}
	}
}

// canImplicitlyMultiply reports whether cur may open an implicit-
// multiplication right operand, given the token last consumed for the
// left operand. This is deliberately narrower than "any atom-starting
// token": spec.md §4.2 enumerates exactly number·ident, number·LParen,
// RParen·ident, RParen·LParen, number·call (a call is just an ident
// followed by LParen, so this is the same case as number·ident), and
// ident·LParen (parsePrimary only leaves a bare ident's following LParen
// unconsumed when that ident is not itself callable, so this case never
// fires for an actual call). ident·ident, ident·number, and anything·Pipe
// are not in that list and must instead fall through to "unexpected
// trailing token" / a hard parse error.
func (p *parser) canImplicitlyMultiply(cur lexer.Token) bool {
	if p.pos == 0 {
		return false
	}
	last := p.toks[p.pos-1].Kind
	switch cur.Kind {
	case lexer.IDENT:
		return last == lexer.NUMBER || last == lexer.RParen
	case lexer.LParen:
		return last == lexer.NUMBER || last == lexer.RParen || last == lexer.IDENT
	default:
		return false
	}
}

func (p *parser) parseMultiplicative() (ast.Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		cur := p.cur()
		var kind ast.BinKind
		implicit := false
		switch {
		case cur.Kind == lexer.Star:
			kind = ast.Mul
		case cur.Kind == lexer.Slash:
			kind = ast.Div
		case cur.Kind == lexer.Pct:
			kind = ast.Mod
		case cur.Kind == lexer.IDENT && cur.Text == "mod":
			kind = ast.Mod
		case p.canImplicitlyMultiply(cur):
			kind = ast.Mul
			implicit = true
		default:
			return left, nil
		}
		if !implicit {
			p.advance()
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{Kind: kind, Left: left, Right: right}
	}
}

func (p *parser) parseUnary() (ast.Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	switch p.cur().Kind {
	case lexer.Minus:
		p.advance()
		child, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Kind: ast.Neg, Child: child}, nil
	case lexer.Bang:
		p.advance()
		child, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Kind: ast.Not, Child: child}, nil
	default:
		return p.parsePow()
	}
}

// parsePow handles right-associative ^ / **. The right operand is parsed
// via parseUnary (not parsePow) so a unary prefix is allowed on the
// exponent (e.g. 2^-2); parseUnary falls through to parsePow for its own
// operand, so the mutual recursion still ends up right-associative.
func (p *parser) parsePow() (ast.Node, error) {
	left, err := p.parsePostfix()
	if err != nil {
		return nil, err
	}
	if p.cur().Kind == lexer.Caret || p.cur().Kind == lexer.Pow2 {
		p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.BinOp{Kind: ast.Pow, Left: left, Right: right}, nil
	}
	return left, nil
}

func (p *parser) parsePostfix() (ast.Node, error) {
	node, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == lexer.Bang {
		p.advance()
		node = &ast.Factorial{Child: node}
	}
	return node, nil
}

func (p *parser) parsePrimary() (ast.Node, error) {
	tok := p.cur()
	switch tok.Kind {
	case lexer.NUMBER:
		p.advance()
		return &ast.Number{Value: tok.Num}, nil

	case lexer.LParen:
		if err := p.enter(); err != nil {
			return nil, err
		}
		defer p.leave()
		p.advance()
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RParen); err != nil {
			return nil, err
		}
		return inner, nil

	case lexer.Pipe:
		p.advance()
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.Pipe); err != nil {
			return nil, err
		}
		return &ast.Abs{Child: inner}, nil

	case lexer.IDENT:
		p.advance()
		name := tok.Text

		if name == "log" && tok.HasLogBase {
			if _, err := p.expect(lexer.LParen); err != nil {
				return nil, err
			}
			arg, err := p.parseOr()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(lexer.RParen); err != nil {
				return nil, err
			}
			return &ast.LogBase{Base: tok.LogBase, Arg: arg}, nil
		}

		if p.cur().Kind == lexer.LParen && p.callables.IsCallable(name) {
			p.advance()
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			return &ast.Call{Name: name, Args: args}, nil
		}
		return &ast.Var{Name: name}, nil

	default:
		return nil, cerr.New(cerr.ParseError, "unexpected token %s", tok)
	}
}

func (p *parser) parseArgs() ([]ast.Node, error) {
	var args []ast.Node
	if p.cur().Kind == lexer.RParen {
		p.advance()
		return args, nil
	}
	for {
		if p.cur().Kind == lexer.Comma || p.cur().Kind == lexer.RParen {
			return nil, cerr.New(cerr.ParseError, "empty argument in call")
		}
		arg, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.cur().Kind == lexer.Comma {
			p.advance()
			continue
		}
		if _, err := p.expect(lexer.RParen); err != nil {
			return nil, err
		}
		return args, nil
	}
}
