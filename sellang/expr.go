package sellang

// Expr is the closed set of AST nodes. Each node exclusively owns its
// children; trees are immutable once built.
type Expr interface {
	isExpr()
}

type VariableRef struct {
	Name string
}

type IntegerLiteral struct {
	Value int64
}

type StringLiteral struct {
	Value string
}

type FnCall struct {
	Name string
	Args []Expr
}

// Args is the formal parameter list of a function definition. Its elements
// are expected to be VariableRef nodes, but the parser does not enforce that.
type Args struct {
	Args []Expr
}

type DefineFn struct {
	Name string
	Args Expr
	Body Expr
}

// Do is a sequence of expressions evaluated in order.
type Do struct {
	Exprs []Expr
}

// Let declares a typed variable. The type is an opaque name, not validated.
type Let struct {
	Name string
	Type string
}

func (*VariableRef) isExpr()    {}
func (*IntegerLiteral) isExpr() {}
func (*StringLiteral) isExpr()  {}
func (*FnCall) isExpr()         {}
func (*Args) isExpr()           {}
func (*DefineFn) isExpr()       {}
func (*Do) isExpr()             {}
func (*Let) isExpr()            {}
