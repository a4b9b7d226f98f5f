package sellang

import (
	"strings"
	"testing"
)

func TestDumpTokens(t *testing.T) {
	tokens, err := Tokenize(`(+ 1 "x")`)
	if err != nil {
		t.Fatal(err)
	}

	var b strings.Builder
	DumpTokens(&b, tokens)

	expected := "     0  opening parenthesis\n" +
		"     1  name +\n" +
		"     3  integer 1\n" +
		"     5  string \"x\"\n" +
		"     8  closing parenthesis\n"
	if b.String() != expected {
		t.Fatalf("expected:\n%s\ngot:\n%s", expected, b.String())
	}
}

func TestDumpExpr(t *testing.T) {
	expr := parseOne(t, "(fn add (args a b) (do (let x int) (+ a 1)))")

	var b strings.Builder
	DumpExpr(&b, expr)

	expected := strings.Join([]string{
		"DefineFn add",
		"  Args",
		"    VariableRef a",
		"    VariableRef b",
		"  Do",
		"    Let x int",
		"    FnCall +",
		"      VariableRef a",
		"      IntegerLiteral 1",
		"",
	}, "\n")
	if b.String() != expected {
		t.Fatalf("expected:\n%s\ngot:\n%s", expected, b.String())
	}
}
