package syntax

import (
	"errors"
	"strings"
	"testing"
)

// ----------------------------------------------------------------------------
// Test helpers

func parse(t *testing.T, src string) Expr {
	t.Helper()
	x, err := ParseExpr("test.quill", []byte(src))
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	if x == nil {
		t.Fatal("Parse returned nil")
	}
	return x
}

func parseWithError(t *testing.T, src string) (Expr, *Parser, error) {
	t.Helper()
	p := NewParser("test.quill", []byte(src), nil)
	x, err := p.Parse()
	if err == nil {
		t.Fatalf("parse %q: expected an error, got tree %s", src, ExprString(x))
	}
	if x == nil {
		t.Fatal("Parse returned nil tree alongside error")
	}
	return x, p, err
}

// ----------------------------------------------------------------------------
// Grammar

func TestParseExpressions(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		// Precedence
		{"mul_over_add", "1+2*3", "+(1, *(2, 3))"},
		{"mul_over_add_left", "1*2+3", "+(*(1, 2), 3)"},
		{"add_over_compare", "a < b + 1", "<(a, +(b, 1))"},
		{"compare_over_equality", "1 == 2 < 3", "==(1, <(2, 3))"},
		{"equality_of_comparisons", "a < b == c > d", "==(<(a, b), >(c, d))"},
		{"unary_over_mul", "-x * 2", "*(-(x), 2)"},
		{"all_levels", "!a == b <= c - d / -e", "==(!(a), <=(b, -(c, /(d, -(e)))))"},

		// Associativity
		{"sub_left_assoc", "1-2-3", "-(-(1, 2), 3)"},
		{"div_left_assoc", "8/4/2", "/(/(8, 4), 2)"},
		{"mixed_additive", "1+2-3+4", "+(-(+(1, 2), 3), 4)"},
		{"equality_left_assoc", "a == b != c", "!=(==(a, b), c)"},
		{"comparison_left_assoc", "a < b >= c", ">=(<(a, b), c)"},

		// Unary chains
		{"neg_neg", "--x", "-(-(x))"},
		{"not_not", "!!x", "!(!(x))"},
		{"not_neg", "!-x", "!(-(x))"},

		// Grouping
		{"group_mul", "(1+2)*3", "*(group(+(1, 2)), 3)"},
		{"group_nested", "((x))", "group(group(x))"},
		{"group_right", "1-(2-3)", "-(1, group(-(2, 3)))"},

		// Primaries
		{"int", "42", "42"},
		{"float", "1.5 * 2", "*(1.5, 2)"},
		{"string", "'hi' + name", `+("hi", name)`},
		{"bools", "true == !false", "==(true, !(false))"},
		{"nil", "x != nil", "!=(x, nil)"},
		{"identifier", "count", "count"},

		// Calls
		{"call_one", "f(1)", "f[1]"},
		{"call_many", "f(1, 2+3, x)", "f[1, +(2, 3), x]"},
		{"call_nested", "f(g(x), h(y, z))", "f[g[x], h[y, z]]"},
		{"call_in_expr", "1 + f(2) * 3", "+(1, *(f[2], 3))"},
		{"call_multiline_args", "f(1,\n  2)", "f[1, 2]"},

		// One expression per parse
		{"trailing_tokens", "1 + 2 3", "+(1, 2)"},
		{"stops_at_block", "x < 3:\n  y", "<(x, 3)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := parse(t, tt.src)
			if got := ExprString(x); got != tt.want {
				t.Errorf("ExprString = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestParseGroupingShape(t *testing.T) {
	x := parse(t, "(1+2)*3")
	mul, ok := x.(*Binary)
	if !ok || mul.Op.Kind != _Star {
		t.Fatalf("root = %T %s, want * Binary", x, ExprString(x))
	}
	g, ok := mul.X.(*Grouping)
	if !ok {
		t.Fatalf("left = %T, want *Grouping", mul.X)
	}
	add, ok := g.X.(*Binary)
	if !ok || add.Op.Kind != _Plus {
		t.Fatalf("group inner = %T, want + Binary", g.X)
	}
	if lit, ok := mul.Y.(*Literal); !ok || lit.Value.Text != "3" {
		t.Errorf("right = %s, want 3", ExprString(mul.Y))
	}
}

func TestParsePositions(t *testing.T) {
	x := parse(t, "a + f(b)")
	bin := x.(*Binary)
	if bin.Pos().LineCol() != "1:1" {
		t.Errorf("binary pos = %v, want 1:1", bin.Pos())
	}
	if bin.Op.Pos.LineCol() != "1:3" {
		t.Errorf("operator pos = %v, want 1:3", bin.Op.Pos)
	}
	call := bin.Y.(*Call)
	if call.Pos().LineCol() != "1:5" || call.Name.Text != "f" {
		t.Errorf("call = %q at %v, want f at 1:5", call.Name.Text, call.Pos())
	}
	if call.Args[0].Pos().LineCol() != "1:7" {
		t.Errorf("arg pos = %v, want 1:7", call.Args[0].Pos())
	}
}

func TestParseSharedLiterals(t *testing.T) {
	x := parse(t, "true == true")
	bin := x.(*Binary)
	if bin.X != Expr(trueLit) || bin.Y != Expr(trueLit) {
		t.Errorf("true literals are not the shared node")
	}
	// The shared node has no position; the binary falls back to its operator.
	if bin.Pos().LineCol() != "1:6" {
		t.Errorf("binary pos = %v, want 1:6", bin.Pos())
	}

	if parse(t, "false") != Expr(falseLit) {
		t.Error("false is not falseLit")
	}
	if parse(t, "nil") != Expr(nilLit) {
		t.Error("nil is not nilLit")
	}

	// Consumers outside the package identify them by kind.
	for src, want := range map[string]Kind{"true": _True, "false": _False, "nil": _Nil} {
		lit, ok := parse(t, src).(*Literal)
		if !ok || lit.Value.Kind != want || lit.Pos().IsValid() {
			t.Errorf("%s: got %v, want a positionless %v literal", src, lit, want)
		}
	}
}

func TestParseLiteralOwnsToken(t *testing.T) {
	x := parse(t, `"hello"`)
	lit, ok := x.(*Literal)
	if !ok {
		t.Fatalf("got %T, want *Literal", x)
	}
	if lit.Value.Kind != _String || lit.Value.Text != "hello" {
		t.Errorf("token = %v", lit.Value)
	}
	if lit == trueLit || lit == falseLit || lit == nilLit {
		t.Error("string literal reused a shared node")
	}
}

// ----------------------------------------------------------------------------
// Errors

func TestParseMissingCloseGroup(t *testing.T) {
	x, p, err := parseWithError(t, "(1 + 2")

	var syn *SyntaxError
	if !errors.As(err, &syn) {
		t.Fatalf("error = %T %v, want *SyntaxError", err, err)
	}
	if !strings.Contains(syn.Msg, "expected ) to close the group") {
		t.Errorf("message = %q", syn.Msg)
	}
	if p.Status() != StatusSyntaxError {
		t.Errorf("Status() = %v, want %v", p.Status(), StatusSyntaxError)
	}
	// The inner expression is kept.
	if got := ExprString(x); got != "group(+(1, 2))" {
		t.Errorf("tree = %s, want group(+(1, 2))", got)
	}
}

func TestParseErrorTrees(t *testing.T) {
	tests := []struct {
		name string
		src  string
		tree string
		msg  string
		pos  string
	}{
		{"empty", "", "<error>", "expected expression, found EOF", "1:1"},
		{"dangling_operator", "1 +", "+(1, <error>)", "expected expression, found EOF", "1:4"},
		{"empty_call", "f()", "f[<error>]", "expected expression, found RightBracket", "1:3"},
		{"unclosed_call", "f(1, 2", "f[1, 2]", "expected ) to close the call to f, found EOF", "1:7"},
		{"trailing_comma", "f(1,)", "f[1, <error>]", "expected expression, found RightBracket", "1:5"},
		{"keyword_operand", "1 + while", "+(1, <error>)", "expected expression, found While", "1:5"},
		{"block_operand", "-:", "-(<error>)", "expected expression, found ScopeStart", "1:2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, p, err := parseWithError(t, tt.src)
			if got := ExprString(x); got != tt.tree {
				t.Errorf("tree = %s, want %s", got, tt.tree)
			}
			var syn *SyntaxError
			if !errors.As(err, &syn) {
				t.Fatalf("error = %T %v, want *SyntaxError", err, err)
			}
			if syn.Msg != tt.msg {
				t.Errorf("message = %q, want %q", syn.Msg, tt.msg)
			}
			if syn.Pos.LineCol() != tt.pos {
				t.Errorf("error at %v, want %s", syn.Pos, tt.pos)
			}
			if p.FirstError() != err {
				t.Error("FirstError differs from the returned error")
			}
		})
	}
}

func TestParseFirstErrorWins(t *testing.T) {
	_, p, err := parseWithError(t, "(1 + ) * (")

	var syn *SyntaxError
	if !errors.As(err, &syn) {
		t.Fatalf("error = %T, want *SyntaxError", err)
	}
	if syn.Pos.LineCol() != "1:6" {
		t.Errorf("first error at %v, want 1:6", syn.Pos)
	}
	if p.Errors() < 2 {
		t.Errorf("Errors() = %d, want later errors counted", p.Errors())
	}
	if p.FirstError() != err {
		t.Error("a later error replaced the first one")
	}
}

func TestParsePropagatesLexError(t *testing.T) {
	x, p, err := parseWithError(t, "1 + @")

	var lexErr *LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("error = %T %v, want *LexError", err, err)
	}
	if lexErr.Code != UnknownChar {
		t.Errorf("code = %v, want %v", lexErr.Code, UnknownChar)
	}
	if p.Status() != StatusLexError {
		t.Errorf("Status() = %v, want %v", p.Status(), StatusLexError)
	}
	if got := ExprString(x); got != "+(1, <error>)" {
		t.Errorf("tree = %s", got)
	}
}

func TestParseUnterminatedStringOperand(t *testing.T) {
	_, p, err := parseWithError(t, "f('abc)")
	var lexErr *LexError
	if !errors.As(err, &lexErr) || lexErr.Code != UnterminatedString {
		t.Fatalf("error = %v, want unterminated string", err)
	}
	if p.Status() != StatusLexError {
		t.Errorf("Status() = %v", p.Status())
	}
}

func TestParseSyntaxErrorBeforeLexError(t *testing.T) {
	_, p, err := parseWithError(t, "1 + * 'abc")
	var syn *SyntaxError
	if !errors.As(err, &syn) {
		t.Fatalf("error = %T %v, want *SyntaxError first", err, err)
	}
	if p.Status() != StatusSyntaxError {
		t.Errorf("Status() = %v, want %v", p.Status(), StatusSyntaxError)
	}
	if p.Errors() < 2 {
		t.Errorf("Errors() = %d, want the lex error counted too", p.Errors())
	}
}

func TestParseStatusOK(t *testing.T) {
	p := NewParser("test.quill", []byte("a + b"), nil)
	if _, err := p.Parse(); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.Status() != StatusOK || p.Errors() != 0 || p.FirstError() != nil {
		t.Errorf("Status=%v Errors=%d First=%v", p.Status(), p.Errors(), p.FirstError())
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		s    Status
		want string
	}{
		{StatusOK, "ok"},
		{StatusSyntaxError, "syntax error"},
		{StatusLexError, "lex error"},
		{Status(9), "Status(9)"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}

func TestErrorStrings(t *testing.T) {
	syn := &SyntaxError{Pos: NewPos("a.quill", 2, 3), Msg: "expected expression"}
	if got := syn.Error(); got != "a.quill:2:3: expected expression" {
		t.Errorf("SyntaxError.Error() = %q", got)
	}
	lex := &LexError{Code: MalformedNumber, Pos: NewPos("", 1, 4), Msg: "bad"}
	if got := lex.Error(); got != "1:4: bad" {
		t.Errorf("LexError.Error() = %q", got)
	}
	if got := InvalidIndent.String(); got != "invalid indentation" {
		t.Errorf("InvalidIndent.String() = %q", got)
	}
}

func TestParseWithCustomTrie(t *testing.T) {
	// With "true" not reserved, it parses as a plain identifier.
	trie := MustTrie([]Keyword{{"yes", _True}})
	p := NewParser("test.quill", []byte("yes == true"), trie)
	x, err := p.Parse()
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	bin := x.(*Binary)
	if bin.X != Expr(trueLit) {
		t.Errorf("yes did not parse as the true literal: %s", ExprString(bin.X))
	}
	if _, ok := bin.Y.(*Identifier); !ok {
		t.Errorf("true parsed as %T, want *Identifier", bin.Y)
	}
}
