package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenKinds(t *testing.T, src string) []Kind {
	t.Helper()
	toks, err := New(src).ConsumeTokens()
	require.NoError(t, err)
	kinds := make([]Kind, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
	}
	return kinds
}

func TestNextToken_Numbers(t *testing.T) {
	toks, err := New("123 3.14 2,5 1e10 1.5e-3").ConsumeTokens()
	require.NoError(t, err)
	require.Len(t, toks, 5)
	assert.Equal(t, 123.0, toks[0].Num)
	assert.Equal(t, 3.14, toks[1].Num)
	assert.Equal(t, 2.5, toks[2].Num)
	assert.Equal(t, 1e10, toks[3].Num)
	assert.Equal(t, 1.5e-3, toks[4].Num)
}

func TestNextToken_Operators(t *testing.T) {
	assert.Equal(t, []Kind{Plus, Minus, Star, Slash, Pct, Caret, Pow2}, tokenKinds(t, "+ - * / % ^ **"))
	assert.Equal(t, []Kind{EqEq, Ne, Le, Ge, And, Or}, tokenKinds(t, "== != <= >= && ||"))
}

func TestNextToken_Identifiers(t *testing.T) {
	toks, err := New("pi π phi φ x1 _y").ConsumeTokens()
	require.NoError(t, err)
	require.Len(t, toks, 6)
	for _, tok := range toks {
		assert.Equal(t, IDENT, tok.Kind)
	}
	assert.Equal(t, "π", toks[1].Text)
}

func TestNextToken_LogBase(t *testing.T) {
	toks, err := New("log:2(8)").ConsumeTokens()
	require.NoError(t, err)
	require.Len(t, toks, 4)
	assert.Equal(t, "log", toks[0].Text)
	assert.True(t, toks[0].HasLogBase)
	assert.Equal(t, 2.0, toks[0].LogBase)
	assert.Equal(t, LParen, toks[1].Kind)
}

func TestNextToken_ModAsIdentifier(t *testing.T) {
	// The lexer always emits IDENT for "mod"; the parser decides whether
	// it is the modulo operator based on position.
	toks, err := New("7 mod 3").ConsumeTokens()
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, IDENT, toks[1].Kind)
	assert.Equal(t, "mod", toks[1].Text)
}

func TestNextToken_Pipe(t *testing.T) {
	assert.Equal(t, []Kind{Pipe, Minus, NUMBER, Pipe}, tokenKinds(t, "|-5|"))
}

func TestNextToken_UnrecognizedCharacter(t *testing.T) {
	_, err := New("3 @ 4").ConsumeTokens()
	require.Error(t, err)
}

func TestNextToken_ColumnTracking(t *testing.T) {
	toks, err := New("1 + 2").ConsumeTokens()
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, 1, toks[0].Column)
	assert.Equal(t, 3, toks[1].Column)
	assert.Equal(t, 5, toks[2].Column)
}
