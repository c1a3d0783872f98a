package syntax

// ----------------------------------------------------------------------------
// Interfaces

// Node is the interface implemented by all AST nodes.
type Node interface {
	Pos() Pos // position of first character belonging to the node
	aNode()   // marker method to restrict implementations to this package
}

// Expr is the interface for all expression nodes. The set of
// implementations is closed: BadExpr, Binary, Unary, Literal, Identifier,
// Call and Grouping.
type Expr interface {
	Node
	Accept(v ExprVisitor)
	aExpr()
}

// ExprVisitor has one method per expression variant, so an implementation
// that compiles handles every variant.
type ExprVisitor interface {
	VisitBad(x *BadExpr)
	VisitBinary(x *Binary)
	VisitUnary(x *Unary)
	VisitLiteral(x *Literal)
	VisitIdentifier(x *Identifier)
	VisitCall(x *Call)
	VisitGrouping(x *Grouping)
}

// ----------------------------------------------------------------------------
// Base node types

// node is the base struct embedded in all AST nodes.
type node struct {
	pos Pos
}

func (n *node) Pos() Pos { return n.pos }
func (n *node) aNode()   {}

// expr is embedded in all expression nodes.
type expr struct{ node }

func (*expr) aExpr() {}

// ----------------------------------------------------------------------------
// Expressions

// BadExpr stands in for an operand that could not be parsed.
type BadExpr struct {
	expr
}

// Binary represents X Op Y.
type Binary struct {
	expr
	X  Expr  // left operand
	Op Token // operator token
	Y  Expr  // right operand
}

// Unary represents a prefix operation: Op X.
type Unary struct {
	expr
	Op Token // _Bang or _Minus
	X  Expr  // operand
}

// Literal represents an Int, Float, String, true, false or nil literal.
type Literal struct {
	expr
	Value Token
}

// Identifier represents a bare name.
type Identifier struct {
	expr
	Name Token
}

// Call represents Name(Args...).
type Call struct {
	expr
	Name Token  // callee name
	Args []Expr // arguments in source order
}

// Grouping represents a parenthesized expression: (X)
type Grouping struct {
	expr
	X Expr // inner expression
}

func (x *BadExpr) Accept(v ExprVisitor)    { v.VisitBad(x) }
func (x *Binary) Accept(v ExprVisitor)     { v.VisitBinary(x) }
func (x *Unary) Accept(v ExprVisitor)      { v.VisitUnary(x) }
func (x *Literal) Accept(v ExprVisitor)    { v.VisitLiteral(x) }
func (x *Identifier) Accept(v ExprVisitor) { v.VisitIdentifier(x) }
func (x *Call) Accept(v ExprVisitor)       { v.VisitCall(x) }
func (x *Grouping) Accept(v ExprVisitor)   { v.VisitGrouping(x) }

// Shared literal nodes. The parser returns these for every true, false
// and nil it meets, so they carry no source position and must never be
// modified. Outside the package, match on Value.Kind.
var (
	trueLit  = &Literal{Value: Token{Kind: _True, Text: "true"}}
	falseLit = &Literal{Value: Token{Kind: _False, Text: "false"}}
	nilLit   = &Literal{Value: Token{Kind: _Nil, Text: "nil"}}
)
