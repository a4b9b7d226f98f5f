package sellang

// Token is a classified unit of lexical input. Pos is the byte offset of the
// token's first character in the original source; it is set once by the
// tokenizer and never changes.
type Token struct {
	Kind    TokenKind
	Text    string // name, or decoded string content
	Integer int64
	Pos     int
}

type TokenKind uint8

const (
	TokenInvalid TokenKind = iota
	TokenLParen
	TokenRParen
	TokenLBracket
	TokenRBracket
	TokenQuote
	TokenName
	TokenInteger
	TokenString
)

func (k TokenKind) String() string {
	switch k {
	case TokenLParen:
		return "opening parenthesis"
	case TokenRParen:
		return "closing parenthesis"
	case TokenLBracket:
		return "opening bracket"
	case TokenRBracket:
		return "closing bracket"
	case TokenQuote:
		return "quote"
	case TokenName:
		return "name"
	case TokenInteger:
		return "integer"
	case TokenString:
		return "string"
	}
	return "invalid token"
}
