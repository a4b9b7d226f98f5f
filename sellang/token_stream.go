package sellang

// TokenStream is a forward-only cursor with one token of lookahead. Current
// returns nil once the stream is exhausted. A stream is owned by a single
// parse run and is not safe for concurrent use.
type TokenStream interface {
	Current() *Token
	Consume()
}

type SliceTokenStream struct {
	tokens []Token
	idx    int
}

func NewSliceTokenStream(tokens []Token) *SliceTokenStream {
	return &SliceTokenStream{
		tokens: tokens,
	}
}

func (s *SliceTokenStream) Current() *Token {
	if s.idx >= len(s.tokens) {
		return nil
	}
	return &s.tokens[s.idx]
}

func (s *SliceTokenStream) Consume() {
	if s.idx < len(s.tokens) {
		s.idx++
	}
}
