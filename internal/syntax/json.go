package syntax

import (
	"encoding/json"
	"io"
)

// FprintJSON writes a JSON representation of the expression tree to w.
func FprintJSON(w io.Writer, x Expr) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSON(x))
}

// jsonBuilder converts one node per visit; the result lands in out.
type jsonBuilder struct {
	out interface{}
}

func toJSON(x Expr) interface{} {
	if x == nil {
		return nil
	}
	b := &jsonBuilder{}
	x.Accept(b)
	return b.out
}

func tokenJSON(t Token) map[string]interface{} {
	return map[string]interface{}{
		"kind":  t.Kind.String(),
		"value": t.Text,
	}
}

func (b *jsonBuilder) VisitBad(x *BadExpr) {
	b.out = map[string]interface{}{
		"type": "Error",
		"pos":  x.pos.String(),
	}
}

func (b *jsonBuilder) VisitBinary(x *Binary) {
	b.out = map[string]interface{}{
		"type": "Binary",
		"pos":  x.pos.String(),
		"op":   x.Op.Text,
		"x":    toJSON(x.X),
		"y":    toJSON(x.Y),
	}
}

func (b *jsonBuilder) VisitUnary(x *Unary) {
	b.out = map[string]interface{}{
		"type": "Unary",
		"pos":  x.pos.String(),
		"op":   x.Op.Text,
		"x":    toJSON(x.X),
	}
}

func (b *jsonBuilder) VisitLiteral(x *Literal) {
	m := tokenJSON(x.Value)
	m["type"] = "Literal"
	m["pos"] = x.pos.String()
	b.out = m
}

func (b *jsonBuilder) VisitIdentifier(x *Identifier) {
	b.out = map[string]interface{}{
		"type": "Identifier",
		"pos":  x.pos.String(),
		"name": x.Name.Text,
	}
}

func (b *jsonBuilder) VisitCall(x *Call) {
	b.out = map[string]interface{}{
		"type": "Call",
		"pos":  x.pos.String(),
		"name": x.Name.Text,
		"args": mapSlice(x.Args, toJSON),
	}
}

func (b *jsonBuilder) VisitGrouping(x *Grouping) {
	b.out = map[string]interface{}{
		"type": "Grouping",
		"pos":  x.pos.String(),
		"x":    toJSON(x.X),
	}
}

func mapSlice[T any](s []T, f func(T) interface{}) []interface{} {
	result := make([]interface{}, len(s))
	for i, v := range s {
		result[i] = f(v)
	}
	return result
}
