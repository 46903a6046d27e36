// printer_test.go
package lye

import (
	"math"
	"testing"
)

func Test_Printer_Numbers(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{42, "42"},
		{-7, "-7"},
		{2.5, "2.5"},
		{0.1, "0.1"},
		{1.0 / 3.0, "0.333333"},
		{123456.75, "123457"},
		{1e20, "1e+20"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
		{math.NaN(), "nan"},
	}
	for _, c := range cases {
		if got := FormatValue(Num(c.in)); got != c.want {
			t.Fatalf("FormatValue(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func Test_Printer_Variants(t *testing.T) {
	lam := LambdaVal([]string{"x", "y"}, []Value{Sym("+"), Sym("x"), Sym("y")})
	cases := []struct {
		v    Value
		want string
	}{
		{Sym("foo"), "foo"},
		{SExpr(), "()"},
		{QExpr(), "{}"},
		{SExpr(Sym("+"), Num(1), QExpr(Num(2), SExpr())), "(+ 1 {2 ()})"},
		{Errf("unbound symbol 'x'."), "Error: unbound symbol 'x'."},
		{BuiltinVal("head", builtinHead), "head"},
		{lam, `(\ {x y} {+ x y})`},
		{LambdaVal(nil, nil), `(\ {} {})`},
	}
	for _, c := range cases {
		if got := FormatValue(c.v); got != c.want {
			t.Fatalf("got %q, want %q", got, c.want)
		}
		if got := c.v.String(); got != c.want {
			t.Fatalf("String() = %q, want %q", got, c.want)
		}
	}
}

func Test_Printer_ReadRoundTrip(t *testing.T) {
	for _, src := range []string{
		"{1 2 3}",
		"{(+ 1 2) {a b} -4 2.5}",
		`{\ {x} {* x x}}`,
		"{{} ()}",
	} {
		v, err := ReadSource("<test>", src)
		if err != nil {
			t.Fatal(err)
		}
		// the reader wraps the program in an S-expression
		if got := FormatValue(v); got != "("+src+")" {
			t.Fatalf("round trip of %s gave %s", src, got)
		}
	}
}
