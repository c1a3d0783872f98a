package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes an indented dump of the expression tree to w, one node per
// line in Kind(value: V, line:column) form.
func Fprint(w io.Writer, x Expr) {
	if x == nil {
		return
	}
	p := &printer{w: w}
	x.Accept(p)
}

type printer struct {
	w      io.Writer
	indent int
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

// line prints one node header.
func (p *printer) line(name, value string, pos Pos) {
	p.printf("%s(value: %s, %s)\n", name, value, pos.LineCol())
}

// children prints xs one level deeper.
func (p *printer) children(xs ...Expr) {
	p.indent++
	for _, x := range xs {
		if x != nil {
			x.Accept(p)
		}
	}
	p.indent--
}

func (p *printer) VisitBad(x *BadExpr) {
	p.line("Error", "", x.pos)
}

func (p *printer) VisitBinary(x *Binary) {
	p.line("Binary", x.Op.Text, x.pos)
	p.children(x.X, x.Y)
}

func (p *printer) VisitUnary(x *Unary) {
	p.line("Unary", x.Op.Text, x.pos)
	p.children(x.X)
}

func (p *printer) VisitLiteral(x *Literal) {
	p.line(x.Value.Kind.String(), x.Value.Text, x.pos)
}

func (p *printer) VisitIdentifier(x *Identifier) {
	p.line("Identifier", x.Name.Text, x.pos)
}

func (p *printer) VisitCall(x *Call) {
	p.line("Call", x.Name.Text, x.pos)
	p.children(x.Args...)
}

func (p *printer) VisitGrouping(x *Grouping) {
	p.line("Grouping", "", x.pos)
	p.children(x.X)
}

// ExprString returns a compact prefix rendering of x, such as
// +(1, *(2, 3)) for 1+2*3. Groups render as group(...), calls as
// name[args], strings quoted.
func ExprString(x Expr) string {
	var b strings.Builder
	writeExpr(&b, x)
	return b.String()
}

func writeExpr(b *strings.Builder, x Expr) {
	switch x := x.(type) {
	case nil:
		b.WriteString("<nil>")
	case *BadExpr:
		b.WriteString("<error>")
	case *Binary:
		b.WriteString(x.Op.Text)
		b.WriteByte('(')
		writeExpr(b, x.X)
		b.WriteString(", ")
		writeExpr(b, x.Y)
		b.WriteByte(')')
	case *Unary:
		b.WriteString(x.Op.Text)
		b.WriteByte('(')
		writeExpr(b, x.X)
		b.WriteByte(')')
	case *Literal:
		if x.Value.Kind == _String {
			fmt.Fprintf(b, "%q", x.Value.Text)
		} else {
			b.WriteString(x.Value.Text)
		}
	case *Identifier:
		b.WriteString(x.Name.Text)
	case *Call:
		b.WriteString(x.Name.Text)
		b.WriteByte('[')
		for i, a := range x.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			writeExpr(b, a)
		}
		b.WriteByte(']')
	case *Grouping:
		b.WriteString("group(")
		writeExpr(b, x.X)
		b.WriteByte(')')
	default:
		fmt.Fprintf(b, "<%T>", x)
	}
}
