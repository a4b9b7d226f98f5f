package sellang

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenizer scans a source string into a fully materialized token sequence.
// Offsets are byte offsets into the original string.
type Tokenizer struct {
	src     string
	idx     int
	lastPos int // offset of the most recently consumed character
}

func NewTokenizer(source string) *Tokenizer {
	return &Tokenizer{
		src: source,
	}
}

func Tokenize(source string) ([]Token, error) {
	return NewTokenizer(source).Tokenize()
}

func (t *Tokenizer) peek() (rune, bool) {
	if t.idx >= len(t.src) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(t.src[t.idx:])
	return r, true
}

func (t *Tokenizer) consume() (rune, int, bool) {
	if t.idx >= len(t.src) {
		return 0, t.idx, false
	}
	r, size := utf8.DecodeRuneInString(t.src[t.idx:])
	pos := t.idx
	t.idx += size
	t.lastPos = pos
	return r, pos, true
}

func (t *Tokenizer) Tokenize() ([]Token, error) {
	var tokens []Token

	for {
		r, pos, ok := t.consume()
		if !ok {
			break
		}

		switch {

		case r == '(':
			tokens = append(tokens, Token{Kind: TokenLParen, Pos: pos})
		case r == ')':
			tokens = append(tokens, Token{Kind: TokenRParen, Pos: pos})
		case r == '[':
			tokens = append(tokens, Token{Kind: TokenLBracket, Pos: pos})
		case r == ']':
			tokens = append(tokens, Token{Kind: TokenRBracket, Pos: pos})
		case r == '\'':
			tokens = append(tokens, Token{Kind: TokenQuote, Pos: pos})

		case r == '"':
			tok, err := t.scanString(pos)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)

		case isDigit(r):
			tok, err := t.scanInteger(r, pos)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)

		case r == '-':
			if next, ok := t.peek(); ok && isDigit(next) {
				tok, err := t.scanInteger(r, pos)
				if err != nil {
					return nil, err
				}
				tokens = append(tokens, tok)
			} else {
				tokens = append(tokens, t.scanName(r, pos))
			}

		case r == '#':
			t.skipComment()

		case !unicode.IsSpace(r):
			tokens = append(tokens, t.scanName(r, pos))
		}
	}

	return tokens, nil
}

// scanString reads the content of a string literal, startPos being the offset
// of the opening quote. The opening quote is already consumed.
func (t *Tokenizer) scanString(startPos int) (Token, error) {
	var content strings.Builder

	for {
		r, pos, ok := t.consume()
		if !ok {
			return Token{}, &TokenizeError{
				Message: "Unterminated string",
				Pos:     t.lastPos,
			}
		}

		if r == '"' {
			break
		}

		if r == '\\' {
			esc, _, ok := t.consume()
			if !ok {
				return Token{}, &TokenizeError{
					Message: "Unterminated string",
					Pos:     pos,
				}
			}
			switch esc {
			case '"':
				content.WriteRune('"')
			case 't':
				content.WriteRune('\t')
			case 'n':
				content.WriteRune('\n')
			default:
				return Token{}, &TokenizeError{
					Message: fmt.Sprintf("Unknown escape sequence '\\%c'", esc),
					Pos:     pos,
				}
			}
			continue
		}

		content.WriteRune(r)
	}

	return Token{
		Kind: TokenString,
		Text: content.String(),
		Pos:  startPos,
	}, nil
}

// scanInteger accumulates value*base+digit with the sign applied once at the
// end. No overflow checks, matching int64 wraparound semantics.
func (t *Tokenizer) scanInteger(first rune, startPos int) (Token, error) {
	var sign int64 = 1
	var value int64
	if first == '-' {
		sign = -1
	} else {
		value = int64(first - '0')
	}

	var base int64 = 10
	if first == '0' {
		if next, ok := t.peek(); ok && next == 'x' {
			t.consume()
			base = 16
		}
	}

	for {
		next, ok := t.peek()
		if !ok {
			break
		}
		if unicode.IsSpace(next) || next == ')' || next == ']' {
			break
		}

		r, pos, _ := t.consume()
		d, ok := digitValue(r, base)
		if !ok {
			return Token{}, &TokenizeError{
				Message: "Unexpected character in integer literal",
				Pos:     pos,
			}
		}

		value = value*base + d
	}

	return Token{
		Kind:    TokenInteger,
		Integer: value * sign,
		Pos:     startPos,
	}, nil
}

// scanName reads greedily until whitespace or one of ( ) ". Brackets and
// quote marks do not terminate a name even though they form tokens of their
// own at a token start.
func (t *Tokenizer) scanName(first rune, startPos int) Token {
	var name strings.Builder
	name.WriteRune(first)

	for {
		next, ok := t.peek()
		if !ok {
			break
		}
		if unicode.IsSpace(next) || next == '(' || next == ')' || next == '"' {
			break
		}
		r, _, _ := t.consume()
		name.WriteRune(r)
	}

	return Token{
		Kind: TokenName,
		Text: name.String(),
		Pos:  startPos,
	}
}

func (t *Tokenizer) skipComment() {
	for {
		r, _, ok := t.consume()
		if !ok || r == '\n' {
			return
		}
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func digitValue(r rune, base int64) (int64, bool) {
	var d int64
	switch {
	case r >= '0' && r <= '9':
		d = int64(r - '0')
	case r >= 'a' && r <= 'f':
		d = int64(r-'a') + 10
	case r >= 'A' && r <= 'F':
		d = int64(r-'A') + 10
	default:
		return 0, false
	}
	if d >= base {
		return 0, false
	}
	return d, true
}
