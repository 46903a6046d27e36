package lye

import (
	"errors"
	"strconv"

	"github.com/daios-ai/lye/internal/debug"
)

// Read converts a syntax tree into a runtime value. The program node always
// becomes an S-expression, even when it holds a single list literal, so the
// outermost form of any input is evaluated as a call.
//
// A number literal that does not fit a float64 becomes an Error value in
// place; evaluation then reports it like any other error.
func Read(n *Node) Value {
	switch n.Tag {
	case TagNumber:
		return readNumber(n.Contents)
	case TagSymbol:
		return Sym(n.Contents)
	}

	cells := make([]Value, 0, len(n.Children))
	for _, c := range n.Children {
		cells = append(cells, Read(c))
	}
	if n.Tag == TagQExpr {
		return QExpr(cells...)
	}
	return SExpr(cells...)
}

func readNumber(s string) Value {
	f, err := strconv.ParseFloat(s, 64)
	if errors.Is(err, strconv.ErrRange) {
		return Errf("number outside of valid bounds.")
	}
	if err != nil {
		return Errf("invalid number %q.", s)
	}
	return Num(f)
}

// ReadSource parses src and converts the whole program into one S-expression.
func ReadSource(name, src string) (Value, error) {
	n, err := Parse(name, src)
	if err != nil {
		return Value{}, err
	}
	v := Read(n)
	if debug.Read() {
		debug.Logger().Debug("read", "name", name, "forms", len(n.Children), "value", FormatValue(v))
	}
	return v, nil
}

// ReadForms parses src and converts each top-level form separately, wrapping
// every one of them in its own S-expression.
func ReadForms(name, src string) ([]Value, error) {
	n, err := Parse(name, src)
	if err != nil {
		return nil, err
	}
	forms := make([]Value, 0, len(n.Children))
	for _, c := range n.Children {
		forms = append(forms, SExpr(Read(c)))
	}
	if debug.Read() {
		debug.Logger().Debug("read forms", "name", name, "forms", len(forms))
	}
	return forms, nil
}
