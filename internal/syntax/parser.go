package syntax

// Parser builds an expression tree, pulling tokens from a Scanner one at a
// time.
//
// Errors do not stop the parse. The first one is kept, later ones are only
// counted, and the parser keeps building the tree from where it is, so the
// result after an error may be incomplete. There is no resynchronization.
type Parser struct {
	scanner *Scanner

	tok Token // current token

	// Error handling
	errcnt int
	first  error // first error encountered
}

// NewParser creates a Parser for src. If trie is nil, DefaultTrie is used.
func NewParser(filename string, src []byte, trie *Trie) *Parser {
	p := &Parser{
		scanner: NewScanner(filename, src, trie),
	}
	p.next() // prime the parser with first token
	return p
}

// ----------------------------------------------------------------------------
// Token navigation

// next advances to the next token. A lexical error becomes the parse
// error if none was recorded yet.
func (p *Parser) next() {
	p.tok = p.scanner.Next()
	if p.tok.Kind == _Error {
		p.record(p.tok.Err)
	}
}

// got reports whether the current token is of kind k.
// If so, it consumes the token and returns true.
func (p *Parser) got(k Kind) bool {
	if p.tok.Kind == k {
		p.next()
		return true
	}
	return false
}

// want consumes the current token if it is of kind k.
// Otherwise, it reports msg and leaves the token in place.
func (p *Parser) want(k Kind, msg string) {
	if !p.got(k) {
		p.syntaxError(msg + ", found " + p.tok.Kind.String())
	}
}

// ----------------------------------------------------------------------------
// Error handling

// syntaxError reports a syntax error at the current token.
func (p *Parser) syntaxError(msg string) {
	p.record(&SyntaxError{Pos: p.tok.Pos, Msg: msg})
}

func (p *Parser) record(err error) {
	if p.errcnt == 0 {
		p.first = err
	}
	p.errcnt++
}

// Errors returns the number of errors encountered during parsing.
func (p *Parser) Errors() int {
	return p.errcnt
}

// FirstError returns the first error encountered, or nil if none.
func (p *Parser) FirstError() error {
	return p.first
}

// Status reports whether parsing succeeded and, if not, which kind of
// error came first.
func (p *Parser) Status() Status {
	switch p.first.(type) {
	case nil:
		return StatusOK
	case *LexError:
		return StatusLexError
	default:
		return StatusSyntaxError
	}
}

// ----------------------------------------------------------------------------
// Parsing entry point

// Parse parses one expression and returns its root together with the
// first error, which is nil, a *SyntaxError, or the *LexError of an error
// token met along the way. Tokens after the expression are left unread.
func (p *Parser) Parse() (Expr, error) {
	x := p.expr()
	return x, p.first
}

// ParseExpr parses the first expression in src with the built-in keywords.
func ParseExpr(filename string, src []byte) (Expr, error) {
	return NewParser(filename, src, nil).Parse()
}

// ----------------------------------------------------------------------------
// Expressions

// expr parses an expression.
func (p *Parser) expr() Expr {
	return p.binaryExpr(0)
}

// binaryExpr parses a binary expression whose operators bind tighter
// than prec. Chains at one level fold to the left.
func (p *Parser) binaryExpr(prec int) Expr {
	x := p.unaryExpr()

	for {
		oprec := p.tok.Kind.Precedence()
		if oprec <= prec {
			return x
		}

		// Binary expression position starts at the left operand.
		op := &Binary{X: x, Op: p.tok}
		op.pos = x.Pos()
		if !op.pos.IsValid() {
			op.pos = p.tok.Pos
		}

		p.next() // consume operator

		op.Y = p.binaryExpr(oprec)
		x = op
	}
}

// unaryExpr parses a prefix ! or - chain.
func (p *Parser) unaryExpr() Expr {
	switch p.tok.Kind {
	case _Bang, _Minus:
		op := &Unary{Op: p.tok}
		op.pos = p.tok.Pos
		p.next()
		op.X = p.unaryExpr()
		return op
	}
	return p.primaryExpr()
}

// primaryExpr parses literals, names, calls and groups.
func (p *Parser) primaryExpr() Expr {
	switch p.tok.Kind {
	case _True:
		p.next()
		return trueLit

	case _False:
		p.next()
		return falseLit

	case _Nil:
		p.next()
		return nilLit

	case _Int, _Float, _String:
		lit := &Literal{Value: p.tok}
		lit.pos = p.tok.Pos
		p.next()
		return lit

	case _LeftBracket: // parenthesized expression
		g := &Grouping{}
		g.pos = p.tok.Pos
		p.next()
		g.X = p.expr()
		p.want(_RightBracket, "expected ) to close the group")
		return g

	case _Identifier:
		name := p.tok
		p.next()
		if p.tok.Kind == _LeftBracket {
			return p.callExpr(name)
		}
		id := &Identifier{Name: name}
		id.pos = name.Pos
		return id

	default:
		p.syntaxError("expected expression, found " + p.tok.Kind.String())
		bad := &BadExpr{}
		bad.pos = p.tok.Pos
		return bad
	}
}

// callExpr parses (args...) after the callee name.
func (p *Parser) callExpr(name Token) Expr {
	call := &Call{Name: name}
	call.pos = name.Pos

	p.want(_LeftBracket, "expected (")
	call.Args = p.exprList()
	p.want(_RightBracket, "expected ) to close the call to "+name.Text)

	return call
}

// exprList parses a non-empty comma-separated list of expressions.
func (p *Parser) exprList() []Expr {
	list := []Expr{p.expr()}
	for p.got(_Comma) {
		list = append(list, p.expr())
	}
	return list
}
