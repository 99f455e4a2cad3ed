package ast

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDump_Number(t *testing.T) {
	out := Dump(&Number{Value: 3.5})
	assert.Equal(t, "Number(3.5)\n", out)
}

func TestDump_Var(t *testing.T) {
	out := Dump(&Var{Name: "x"})
	assert.Equal(t, "Var(x)\n", out)
}

func TestDump_UnaryOp(t *testing.T) {
	out := Dump(&UnaryOp{Kind: Neg, Child: &Number{Value: 2}})
	assert.True(t, strings.HasPrefix(out, "UnaryOp(-)\n"))
	assert.Contains(t, out, "  Number(2)\n")

	out = Dump(&UnaryOp{Kind: Not, Child: &Number{Value: 0}})
	assert.True(t, strings.HasPrefix(out, "UnaryOp(!)\n"))
}

func TestDump_BinOp(t *testing.T) {
	out := Dump(&BinOp{Kind: Add, Left: &Number{Value: 1}, Right: &Number{Value: 2}})
	want := "BinOp(+)\n  Number(1)\n  Number(2)\n"
	assert.Equal(t, want, out)
}

func TestDump_BinOpOperatorNames(t *testing.T) {
	cases := map[BinKind]string{
		Add: "+", Sub: "-", Mul: "*", Div: "/", Pow: "^", Mod: "mod",
		Eq: "==", Ne: "!=", Lt: "<", Le: "<=", Gt: ">", Ge: ">=",
		And: "&&", Or: "||",
	}
	for kind, symbol := range cases {
		out := Dump(&BinOp{Kind: kind, Left: &Number{Value: 1}, Right: &Number{Value: 1}})
		assert.True(t, strings.HasPrefix(out, "BinOp("+symbol+")\n"), "kind %v: %s", kind, out)
	}
}

func TestDump_Call(t *testing.T) {
	out := Dump(&Call{Name: "sin", Args: []Node{&Number{Value: 1}}})
	want := "Call(sin)\n  Number(1)\n"
	assert.Equal(t, want, out)
}

func TestDump_CallNoArgs(t *testing.T) {
	out := Dump(&Call{Name: "pi"})
	assert.Equal(t, "Call(pi)\n", out)
}

func TestDump_LogBase(t *testing.T) {
	out := Dump(&LogBase{Base: 2, Arg: &Number{Value: 8}})
	want := "LogBase(base=2)\n  Number(8)\n"
	assert.Equal(t, want, out)
}

func TestDump_Abs(t *testing.T) {
	out := Dump(&Abs{Child: &Number{Value: 5}})
	want := "Abs\n  Number(5)\n"
	assert.Equal(t, want, out)
}

func TestDump_Factorial(t *testing.T) {
	out := Dump(&Factorial{Child: &Number{Value: 5}})
	want := "Factorial\n  Number(5)\n"
	assert.Equal(t, want, out)
}

func TestDump_NestedIndentation(t *testing.T) {
	// 1 + 2 * 3 parsed shape: BinOp(+, Number(1), BinOp(*, Number(2), Number(3)))
	node := &BinOp{
		Kind: Add,
		Left: &Number{Value: 1},
		Right: &BinOp{
			Kind:  Mul,
			Left:  &Number{Value: 2},
			Right: &Number{Value: 3},
		},
	}
	out := Dump(node)
	want := "BinOp(+)\n  Number(1)\n  BinOp(*)\n    Number(2)\n    Number(3)\n"
	assert.Equal(t, want, out)
}
