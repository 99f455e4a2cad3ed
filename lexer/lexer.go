/*
File    : exath/lexer/lexer.go

Lexer performs lexical analysis of exath source text. It scans rune by
rune, tracking line/column for error reporting, and recognizes numbers
(with dot or comma decimal separators and scientific notation),
identifiers (including the Greek letters π and φ), multi-character
operators, and the `log:N` logarithm-base prefix.

The byte-scanning shape (Src/Current/Position/Advance/Peek) follows the
teacher's lexer.Lexer; runes replace bytes here since identifiers must
admit non-ASCII letters.
*/
package lexer

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/exath-lang/exath/cerr"
)

// Lexer scans a source string into tokens.
type Lexer struct {
	Src      string
	Position int // byte offset of Current
	Current  rune
	width    int // byte width of Current
	Line     int
	Column   int
}

// New creates a Lexer positioned at the start of src.
func New(src string) *Lexer {
	lx := &Lexer{Src: src, Line: 1, Column: 1}
	lx.Current, lx.width = utf8.DecodeRuneInString(src)
	return lx
}

// Advance consumes Current and moves to the next rune.
func (lx *Lexer) Advance() {
	if lx.Current == '\n' {
		lx.Line++
		lx.Column = 1
	} else {
		lx.Column++
	}
	lx.Position += lx.width
	if lx.Position >= len(lx.Src) {
		lx.Current = 0
		lx.width = 0
		return
	}
	lx.Current, lx.width = utf8.DecodeRuneInString(lx.Src[lx.Position:])
}

// Peek returns the rune after Current without consuming anything.
func (lx *Lexer) Peek() rune {
	next := lx.Position + lx.width
	if next >= len(lx.Src) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(lx.Src[next:])
	return r
}

func (lx *Lexer) skipWhitespace() {
	for lx.Current != 0 && unicode.IsSpace(lx.Current) {
		lx.Advance()
	}
}

// NextToken returns the next token in the stream, or an EOF token once the
// source is exhausted. Unrecognized characters yield a *cerr.Error.
func (lx *Lexer) NextToken() (Token, error) {
	lx.skipWhitespace()
	line, col := lx.Line, lx.Column

	switch {
	case lx.Current == 0:
		return newToken(EOF, "", line, col), nil
	case lx.Current == '(':
		lx.Advance()
		return newToken(LParen, "(", line, col), nil
	case lx.Current == ')':
		lx.Advance()
		return newToken(RParen, ")", line, col), nil
	case lx.Current == ',':
		lx.Advance()
		return newToken(Comma, ",", line, col), nil
	case lx.Current == '|':
		lx.Advance()
		if lx.Current == '|' {
			lx.Advance()
			return newToken(Or, "||", line, col), nil
		}
		return newToken(Pipe, "|", line, col), nil
	case lx.Current == '+':
		lx.Advance()
		return newToken(Plus, "+", line, col), nil
	case lx.Current == '-':
		lx.Advance()
		return newToken(Minus, "-", line, col), nil
	case lx.Current == '*':
		lx.Advance()
		if lx.Current == '*' {
			lx.Advance()
			return newToken(Pow2, "**", line, col), nil
		}
		return newToken(Star, "*", line, col), nil
	case lx.Current == '/':
		lx.Advance()
		return newToken(Slash, "/", line, col), nil
	case lx.Current == '%':
		lx.Advance()
		return newToken(Pct, "%", line, col), nil
	case lx.Current == '^':
		lx.Advance()
		return newToken(Caret, "^", line, col), nil
	case lx.Current == '=':
		lx.Advance()
		if lx.Current == '=' {
			lx.Advance()
			return newToken(EqEq, "==", line, col), nil
		}
		return newToken(Assign, "=", line, col), nil
	case lx.Current == '!':
		lx.Advance()
		if lx.Current == '=' {
			lx.Advance()
			return newToken(Ne, "!=", line, col), nil
		}
		return newToken(Bang, "!", line, col), nil
	case lx.Current == '<':
		lx.Advance()
		if lx.Current == '=' {
			lx.Advance()
			return newToken(Le, "<=", line, col), nil
		}
		return newToken(Lt, "<", line, col), nil
	case lx.Current == '>':
		lx.Advance()
		if lx.Current == '=' {
			lx.Advance()
			return newToken(Ge, ">=", line, col), nil
		}
		return newToken(Gt, ">", line, col), nil
	case lx.Current == '&':
		lx.Advance()
		if lx.Current == '&' {
			lx.Advance()
			return newToken(And, "&&", line, col), nil
		}
		return Token{}, cerr.New(cerr.ParseError, "unexpected character '&' at %d:%d", line, col)
	case isDigit(lx.Current):
		return lx.readNumber(line, col)
	case isIdentStart(lx.Current):
		return lx.readIdent(line, col)
	default:
		bad := lx.Current
		lx.Advance()
		return Token{}, cerr.New(cerr.ParseError, "unexpected character %q at %d:%d", bad, line, col)
	}
}

// ConsumeTokens tokenizes the entire source, stopping at the first error
// or at EOF (EOF itself is not included in the returned slice).
func (lx *Lexer) ConsumeTokens() ([]Token, error) {
	var toks []Token
	for {
		tok, err := lx.NextToken()
		if err != nil {
			return nil, err
		}
		if tok.Kind == EOF {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// isIdentStart reports whether r can begin an identifier: any Unicode
// letter (which covers the Greek letters π and φ) or underscore.
func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isIdentCont(r rune) bool {
	return isIdentStart(r) || isDigit(r)
}

// readNumber scans a numeric literal, normalizing a decimal comma to a dot
// and recognizing scientific notation immediately after digits.
func (lx *Lexer) readNumber(line, col int) (Token, error) {
	var b strings.Builder
	for isDigit(lx.Current) {
		b.WriteRune(lx.Current)
		lx.Advance()
	}
	if lx.Current == '.' || lx.Current == ',' {
		if isDigit(lx.Peek()) {
			b.WriteByte('.')
			lx.Advance()
			for isDigit(lx.Current) {
				b.WriteRune(lx.Current)
				lx.Advance()
			}
		}
	}
	if lx.Current == 'e' || lx.Current == 'E' {
		peek := lx.Peek()
		if isDigit(peek) || ((peek == '+' || peek == '-') && b.Len() > 0) {
			b.WriteRune(lx.Current)
			lx.Advance()
			if lx.Current == '+' || lx.Current == '-' {
				b.WriteRune(lx.Current)
				lx.Advance()
			}
			for isDigit(lx.Current) {
				b.WriteRune(lx.Current)
				lx.Advance()
			}
		}
	}
	text := b.String()
	val, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Token{}, cerr.New(cerr.ParseError, "invalid number %q at %d:%d", text, line, col)
	}
	tok := newToken(NUMBER, text, line, col)
	tok.Num = val
	return tok, nil
}

// readIdent scans an identifier, handling the `log:N` base-suffix prefix:
// when the identifier is exactly "log" followed by ':' and digits, the base
// is attached to the token and the identifier's text stays "log".
func (lx *Lexer) readIdent(line, col int) (Token, error) {
	var b strings.Builder
	for isIdentCont(lx.Current) {
		b.WriteRune(lx.Current)
		lx.Advance()
	}
	name := b.String()
	tok := newToken(IDENT, name, line, col)

	if name == "log" && lx.Current == ':' && isDigit(lx.Peek()) {
		lx.Advance() // consume ':'
		var nb strings.Builder
		for isDigit(lx.Current) || lx.Current == '.' {
			nb.WriteRune(lx.Current)
			lx.Advance()
		}
		base, err := strconv.ParseFloat(nb.String(), 64)
		if err != nil {
			return Token{}, cerr.New(cerr.ParseError, "invalid log base at %d:%d", line, col)
		}
		tok.HasLogBase = true
		tok.LogBase = base
	}
	return tok, nil
}
