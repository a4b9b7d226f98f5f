package sellang

import (
	"fmt"
	"io"
	"strings"
)

// DumpTokens writes one line per token: the byte offset, the kind, and the
// payload if any. Debug output, not part of any contract.
func DumpTokens(w io.Writer, tokens []Token) {
	for _, tok := range tokens {
		fmt.Fprintf(w, "%6d  %s\n", tok.Pos, DescribeToken(tok))
	}
}

func DescribeToken(tok Token) string {
	switch tok.Kind {
	case TokenName:
		return fmt.Sprintf("name %s", tok.Text)
	case TokenInteger:
		return fmt.Sprintf("integer %d", tok.Integer)
	case TokenString:
		return fmt.Sprintf("string %q", tok.Text)
	}
	return tok.Kind.String()
}

// DumpExpr writes an indented tree rendering of an expression.
func DumpExpr(w io.Writer, expr Expr) {
	dumpExpr(w, expr, 0)
}

func dumpExpr(w io.Writer, expr Expr, depth int) {
	indent := strings.Repeat("  ", depth)

	switch e := expr.(type) {

	case *VariableRef:
		fmt.Fprintf(w, "%sVariableRef %s\n", indent, e.Name)

	case *IntegerLiteral:
		fmt.Fprintf(w, "%sIntegerLiteral %d\n", indent, e.Value)

	case *StringLiteral:
		fmt.Fprintf(w, "%sStringLiteral %q\n", indent, e.Value)

	case *FnCall:
		fmt.Fprintf(w, "%sFnCall %s\n", indent, e.Name)
		for _, arg := range e.Args {
			dumpExpr(w, arg, depth+1)
		}

	case *Args:
		fmt.Fprintf(w, "%sArgs\n", indent)
		for _, arg := range e.Args {
			dumpExpr(w, arg, depth+1)
		}

	case *DefineFn:
		fmt.Fprintf(w, "%sDefineFn %s\n", indent, e.Name)
		dumpExpr(w, e.Args, depth+1)
		dumpExpr(w, e.Body, depth+1)

	case *Do:
		fmt.Fprintf(w, "%sDo\n", indent)
		for _, sub := range e.Exprs {
			dumpExpr(w, sub, depth+1)
		}

	case *Let:
		fmt.Fprintf(w, "%sLet %s %s\n", indent, e.Name, e.Type)

	default:
		fmt.Fprintf(w, "%s%T\n", indent, expr)
	}
}
