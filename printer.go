// printer.go: rendering of runtime values.
//
// FormatValue is the single place where a Value becomes text. The REPL, the
// file runner, print-env and the golden test runner all go through it, so the
// textual form of a result is stable across every surface:
//
//	numbers      whole values without a decimal point, others like C's %g
//	symbols      the bare name
//	builtins     their registered name
//	lambdas      (\ {params} {body})
//	S-exprs      (a b c)
//	Q-exprs      {a b c}
//	errors       Error: <message>
package lye

import (
	"math"
	"strconv"
	"strings"
)

// FormatValue renders v in its canonical textual form.
func FormatValue(v Value) string {
	var b strings.Builder
	writeValue(&b, v)
	return b.String()
}

// String implements fmt.Stringer using FormatValue.
func (v Value) String() string { return FormatValue(v) }

func writeValue(b *strings.Builder, v Value) {
	switch v.Tag {
	case VTNum:
		b.WriteString(formatNumber(v.Number()))
	case VTSym:
		b.WriteString(v.Symbol())
	case VTFun:
		f := v.Fun()
		if f.IsBuiltin() {
			b.WriteString(f.Name)
			return
		}
		b.WriteString(`(\ {`)
		b.WriteString(strings.Join(f.Params, " "))
		b.WriteString("} ")
		writeList(b, f.Body, '{', '}')
		b.WriteByte(')')
	case VTSExpr:
		writeList(b, v.List(), '(', ')')
	case VTQExpr:
		writeList(b, v.List(), '{', '}')
	case VTErr:
		b.WriteString("Error: ")
		b.WriteString(v.Message())
	default:
		b.WriteString("<unknown>")
	}
}

func writeList(b *strings.Builder, xs []Value, open, close byte) {
	b.WriteByte(open)
	for i, x := range xs {
		if i > 0 {
			b.WriteByte(' ')
		}
		writeValue(b, x)
	}
	b.WriteByte(close)
}

// formatNumber prints whole numbers as integers and everything else with six
// significant digits, trailing zeros trimmed.
func formatNumber(x float64) string {
	switch {
	case math.IsNaN(x):
		return "nan"
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	}
	if r := math.Round(x); r == x && math.Abs(x) < 1e15 {
		return strconv.FormatInt(int64(r), 10)
	}
	return strconv.FormatFloat(x, 'g', 6, 64)
}
