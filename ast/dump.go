/*
File    : exath/ast/dump.go

Dump renders an AST as an indented tree, the same shape of output the
teacher's PrintingVisitor produced, but driven by a single type switch
instead of double-dispatch Visit* methods — this AST is closed, so there
is no need for the open-ended visitor indirection.
*/
package ast

import (
	"fmt"
	"strings"
)

const dumpIndent = 2

// Dump returns a human-readable, indented rendering of node. Intended for
// host-side debugging and inspection, not for re-parsing.
func Dump(node Node) string {
	var b strings.Builder
	dump(&b, node, 0)
	return b.String()
}

func dump(b *strings.Builder, node Node, depth int) {
	pad := strings.Repeat(" ", depth*dumpIndent)
	switch n := node.(type) {
	case *Number:
		fmt.Fprintf(b, "%sNumber(%g)\n", pad, n.Value)
	case *Var:
		fmt.Fprintf(b, "%sVar(%s)\n", pad, n.Name)
	case *UnaryOp:
		fmt.Fprintf(b, "%sUnaryOp(%s)\n", pad, unaryName(n.Kind))
		dump(b, n.Child, depth+1)
	case *BinOp:
		fmt.Fprintf(b, "%sBinOp(%s)\n", pad, binName(n.Kind))
		dump(b, n.Left, depth+1)
		dump(b, n.Right, depth+1)
	case *Call:
		fmt.Fprintf(b, "%sCall(%s)\n", pad, n.Name)
		for _, a := range n.Args {
			dump(b, a, depth+1)
		}
	case *LogBase:
		fmt.Fprintf(b, "%sLogBase(base=%g)\n", pad, n.Base)
		dump(b, n.Arg, depth+1)
	case *Abs:
		fmt.Fprintf(b, "%sAbs\n", pad)
		dump(b, n.Child, depth+1)
	case *Factorial:
		fmt.Fprintf(b, "%sFactorial\n", pad)
		dump(b, n.Child, depth+1)
	default:
		fmt.Fprintf(b, "%s<unknown node>\n", pad)
	}
}

func unaryName(k UnaryKind) string {
	switch k {
	case Neg:
		return "-"
	case Not:
		return "!"
	default:
		return "?"
	}
}

func binName(k BinKind) string {
	switch k {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Pow:
		return "^"
	case Mod:
		return "mod"
	case Eq:
		return "=="
	case Ne:
		return "!="
	case Lt:
		return "<"
	case Le:
		return "<="
	case Gt:
		return ">"
	case Ge:
		return ">="
	case And:
		return "&&"
	case Or:
		return "||"
	default:
		return "?"
	}
}
