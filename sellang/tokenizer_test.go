package sellang

import (
	"strconv"
	"strings"
	"testing"
)

func TestTokenizer(t *testing.T) {
	tests := []struct {
		input  string
		tokens []Token
	}{
		{
			input:  "",
			tokens: nil,
		},
		{
			input:  "   \t\n  ",
			tokens: nil,
		},
		{
			input:  "# comment only\n#another",
			tokens: nil,
		},
		{
			input: "(+ 1 2)",
			tokens: []Token{
				{Kind: TokenLParen, Pos: 0},
				{Kind: TokenName, Text: "+", Pos: 1},
				{Kind: TokenInteger, Integer: 1, Pos: 3},
				{Kind: TokenInteger, Integer: 2, Pos: 5},
				{Kind: TokenRParen, Pos: 6},
			},
		},
		{
			input: "( ) [ ] '",
			tokens: []Token{
				{Kind: TokenLParen, Pos: 0},
				{Kind: TokenRParen, Pos: 2},
				{Kind: TokenLBracket, Pos: 4},
				{Kind: TokenRBracket, Pos: 6},
				{Kind: TokenQuote, Pos: 8},
			},
		},
		{
			input: "0x1F",
			tokens: []Token{
				{Kind: TokenInteger, Integer: 31, Pos: 0},
			},
		},
		{
			input: "-5",
			tokens: []Token{
				{Kind: TokenInteger, Integer: -5, Pos: 0},
			},
		},
		{
			input: "12",
			tokens: []Token{
				{Kind: TokenInteger, Integer: 12, Pos: 0},
			},
		},
		{
			input: "0x0",
			tokens: []Token{
				{Kind: TokenInteger, Integer: 0, Pos: 0},
			},
		},
		{
			// escapes decode to tab, newline, quote
			input: "\"a\\tb\\n\\\"c\"",
			tokens: []Token{
				{Kind: TokenString, Text: "a\tb\n\"c", Pos: 0},
			},
		},
		{
			// brackets and quote marks do not terminate a name
			input: "foo[bar",
			tokens: []Token{
				{Kind: TokenName, Text: "foo[bar", Pos: 0},
			},
		},
		{
			input: "foo'qux]",
			tokens: []Token{
				{Kind: TokenName, Text: "foo'qux]", Pos: 0},
			},
		},
		{
			// parentheses do terminate a name
			input: "foo(bar",
			tokens: []Token{
				{Kind: TokenName, Text: "foo", Pos: 0},
				{Kind: TokenLParen, Pos: 3},
				{Kind: TokenName, Text: "bar", Pos: 4},
			},
		},
		{
			// a lone minus is a name
			input: "- -a",
			tokens: []Token{
				{Kind: TokenName, Text: "-", Pos: 0},
				{Kind: TokenName, Text: "-a", Pos: 2},
			},
		},
		{
			input: "(1)",
			tokens: []Token{
				{Kind: TokenLParen, Pos: 0},
				{Kind: TokenInteger, Integer: 1, Pos: 1},
				{Kind: TokenRParen, Pos: 2},
			},
		},
		{
			input: "[7]",
			tokens: []Token{
				{Kind: TokenLBracket, Pos: 0},
				{Kind: TokenInteger, Integer: 7, Pos: 1},
				{Kind: TokenRBracket, Pos: 2},
			},
		},
		{
			input: "x # trailing\ny",
			tokens: []Token{
				{Kind: TokenName, Text: "x", Pos: 0},
				{Kind: TokenName, Text: "y", Pos: 13},
			},
		},
		{
			// offsets are byte offsets
			input: "héllo wörld",
			tokens: []Token{
				{Kind: TokenName, Text: "héllo", Pos: 0},
				{Kind: TokenName, Text: "wörld", Pos: 7},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			tokens, err := Tokenize(test.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(tokens) != len(test.tokens) {
				t.Fatalf("expected %d tokens, got %d: %v", len(test.tokens), len(tokens), tokens)
			}
			lastPos := -1
			for i, expected := range test.tokens {
				tok := tokens[i]
				if tok.Kind != expected.Kind {
					t.Errorf("token %d: expected kind %v, got %v", i, expected.Kind, tok.Kind)
				}
				if tok.Text != expected.Text {
					t.Errorf("token %d: expected text %q, got %q", i, expected.Text, tok.Text)
				}
				if tok.Integer != expected.Integer {
					t.Errorf("token %d: expected integer %d, got %d", i, expected.Integer, tok.Integer)
				}
				if tok.Pos != expected.Pos {
					t.Errorf("token %d: expected pos %d, got %d", i, expected.Pos, tok.Pos)
				}
				if tok.Pos <= lastPos {
					t.Errorf("token %d: offsets not increasing", i)
				}
				lastPos = tok.Pos
			}
		})
	}
}

func TestTokenizerErrors(t *testing.T) {
	tests := []struct {
		input   string
		message string
		pos     int
	}{
		{
			// anchored at the last consumed character
			input:   `"abc`,
			message: "Unterminated string",
			pos:     3,
		},
		{
			input:   `"`,
			message: "Unterminated string",
			pos:     0,
		},
		{
			// anchored at the backslash
			input:   `"ab\q"`,
			message: `Unknown escape sequence '\q'`,
			pos:     3,
		},
		{
			input:   `"ab\`,
			message: "Unterminated string",
			pos:     3,
		},
		{
			input:   "123x",
			message: "Unexpected character in integer literal",
			pos:     3,
		},
		{
			input:   "0xZ",
			message: "Unexpected character in integer literal",
			pos:     2,
		},
		{
			input:   "12a3",
			message: "Unexpected character in integer literal",
			pos:     2,
		},
		{
			// a parenthesis does not terminate an integer
			input:   "1(",
			message: "Unexpected character in integer literal",
			pos:     1,
		},
		{
			// hex digits are invalid in base 10
			input:   "1F",
			message: "Unexpected character in integer literal",
			pos:     1,
		},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			_, err := Tokenize(test.input)
			if err == nil {
				t.Fatal("expected error")
			}
			te, ok := err.(*TokenizeError)
			if !ok {
				t.Fatalf("expected *TokenizeError, got %T", err)
			}
			if te.Message != test.message {
				t.Errorf("expected message %q, got %q", test.message, te.Message)
			}
			if te.Pos != test.pos {
				t.Errorf("expected pos %d, got %d", test.pos, te.Pos)
			}
		})
	}
}

func TestIntegerRoundTrip(t *testing.T) {
	for _, value := range []int64{0, 1, -1, 42, -99999, 1 << 40} {
		tokens, err := Tokenize(intToSource(value))
		if err != nil {
			t.Fatal(err)
		}
		if len(tokens) != 1 || tokens[0].Kind != TokenInteger {
			t.Fatalf("%d: got %v", value, tokens)
		}
		if tokens[0].Integer != value {
			t.Fatalf("expected %d, got %d", value, tokens[0].Integer)
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, value := range []string{
		"",
		"hello",
		"a\tb",
		"line\nbreak",
		`say "hi"`,
	} {
		tokens, err := Tokenize(stringToSource(value))
		if err != nil {
			t.Fatal(err)
		}
		if len(tokens) != 1 || tokens[0].Kind != TokenString {
			t.Fatalf("%q: got %v", value, tokens)
		}
		if tokens[0].Text != value {
			t.Fatalf("expected %q, got %q", value, tokens[0].Text)
		}
	}
}

// intToSource and stringToSource reconstruct literal source text for the
// round-trip tests.
func intToSource(value int64) string {
	return strconv.FormatInt(value, 10)
}

func stringToSource(value string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range value {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
