package sellang

import "fmt"

// Parser builds AST nodes from a token stream by recursive descent. Every
// parsing method returns a three-way outcome: an expression, nil-nil for a
// clean end of input, or a *ParseError. Errors propagate by immediate return;
// there is no recovery.
type Parser struct {
	stream TokenStream
}

func NewParser(tokens []Token) *Parser {
	return &Parser{
		stream: NewSliceTokenStream(tokens),
	}
}

func NewStreamParser(stream TokenStream) *Parser {
	return &Parser{
		stream: stream,
	}
}

// ParseAll collects top-level expressions until the stream is exhausted or a
// parse fails.
func ParseAll(tokens []Token) ([]Expr, error) {
	parser := NewParser(tokens)
	var exprs []Expr
	for {
		expr, err := parser.ParseNext()
		if err != nil {
			return nil, err
		}
		if expr == nil {
			return exprs, nil
		}
		exprs = append(exprs, expr)
	}
}

// ParseNext returns the next top-level expression, or (nil, nil) at the end
// of the token stream.
func (p *Parser) ParseNext() (Expr, error) {
	tok := p.stream.Current()
	if tok == nil {
		return nil, nil
	}
	p.stream.Consume()

	switch tok.Kind {

	case TokenName:
		return &VariableRef{Name: tok.Text}, nil

	case TokenInteger:
		return &IntegerLiteral{Value: tok.Integer}, nil

	case TokenString:
		return &StringLiteral{Value: tok.Text}, nil

	case TokenLParen:
		return p.parseForm(tok)

	}

	return nil, &ParseError{
		Message: fmt.Sprintf("Unexpected %s", tok.Kind),
		Pos:     tok.Pos,
	}
}

// parseForm parses the remainder of a parenthesized form. The name directly
// after the opening parenthesis selects the grammar rule; fn, let, do and
// args are reserved only in that position.
func (p *Parser) parseForm(lparen *Token) (Expr, error) {
	name := p.stream.Current()
	if name == nil {
		return nil, &ParseError{
			Message: "Unexpected end of file, was expecting a name",
			Pos:     lparen.Pos,
		}
	}
	p.stream.Consume()
	if name.Kind != TokenName {
		return nil, &ParseError{
			Message: "Unexpected token, was expecting a name",
			Pos:     name.Pos,
		}
	}

	var expr Expr
	var err error
	switch name.Text {
	case "fn":
		expr, err = p.parseDefineFn(name)
	case "let":
		expr, err = p.parseLet(name)
	case "do":
		expr, err = p.parseDo()
	case "args":
		expr, err = p.parseArgs()
	default:
		expr, err = p.parseFnCall(name.Text)
	}
	if err != nil {
		return nil, err
	}

	rparen := p.stream.Current()
	if rparen == nil {
		return nil, &ParseError{
			Message: "Unexpected end of input, was expecting a closing parenthesis to close this expression",
			Pos:     lparen.Pos,
		}
	}
	p.stream.Consume()
	if rparen.Kind != TokenRParen {
		return nil, &ParseError{
			Message: "Unexpected token, was expecting a closing parenthesis",
			Pos:     rparen.Pos,
		}
	}

	return expr, nil
}

func (p *Parser) parseFnCall(name string) (Expr, error) {
	var args []Expr
	for {
		tok := p.stream.Current()
		if tok == nil || tok.Kind == TokenRParen {
			break
		}
		arg, err := p.ParseNext()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return &FnCall{Name: name, Args: args}, nil
}

func (p *Parser) parseDo() (Expr, error) {
	var exprs []Expr
	for {
		tok := p.stream.Current()
		if tok == nil || tok.Kind == TokenRParen {
			break
		}
		expr, err := p.ParseNext()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	return &Do{Exprs: exprs}, nil
}

func (p *Parser) parseArgs() (Expr, error) {
	var args []Expr
	for {
		tok := p.stream.Current()
		if tok == nil || tok.Kind == TokenRParen {
			break
		}
		arg, err := p.ParseNext()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return &Args{Args: args}, nil
}

func (p *Parser) parseDefineFn(fnToken *Token) (Expr, error) {
	name, err := p.requireName(fnToken, "a name for this function", "a name")
	if err != nil {
		return nil, err
	}

	args, err := p.requireExpr(fnToken)
	if err != nil {
		return nil, err
	}
	body, err := p.requireExpr(fnToken)
	if err != nil {
		return nil, err
	}

	return &DefineFn{
		Name: name,
		Args: args,
		Body: body,
	}, nil
}

func (p *Parser) parseLet(letToken *Token) (Expr, error) {
	name, err := p.requireName(letToken, "a name for this variable", "a name")
	if err != nil {
		return nil, err
	}
	typeName, err := p.requireName(letToken, "a type name for this variable", "a type name")
	if err != nil {
		return nil, err
	}

	return &Let{
		Name: name,
		Type: typeName,
	}, nil
}

// requireName consumes the next token, which must be a name. End of input
// anchors the error at the enclosing form's keyword token.
func (p *Parser) requireName(anchor *Token, eofWhat string, tokenWhat string) (string, error) {
	tok := p.stream.Current()
	if tok == nil {
		return "", &ParseError{
			Message: "Unexpected end of input, was expecting " + eofWhat,
			Pos:     anchor.Pos,
		}
	}
	p.stream.Consume()
	if tok.Kind != TokenName {
		return "", &ParseError{
			Message: "Unexpected token, was expecting " + tokenWhat,
			Pos:     tok.Pos,
		}
	}
	return tok.Text, nil
}

// requireExpr parses a sub-expression that the grammar requires to be
// present, turning end of input into a proper error instead of nil.
func (p *Parser) requireExpr(anchor *Token) (Expr, error) {
	expr, err := p.ParseNext()
	if err != nil {
		return nil, err
	}
	if expr == nil {
		return nil, &ParseError{
			Message: "Unexpected end of input, was expecting an expression",
			Pos:     anchor.Pos,
		}
	}
	return expr, nil
}
