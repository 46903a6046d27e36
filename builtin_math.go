package lye

import (
	"math"
)

// ---- arithmetic built-ins ----------------------------------------------

var arithmeticOps = []string{"+", "-", "*", "/", "%", "^", "min", "max"}

func registerMathBuiltins(env *Env) {
	for _, op := range arithmeticOps {
		registerBuiltin(env, op, func(_ *Env, args []Value) Value {
			return calculate(op, args)
		})
	}
}

// calculate folds args left to right with op, starting from the first operand.
// Every operand must be a Number; any failure abandons the fold.
func calculate(op string, args []Value) Value {
	if len(args) == 0 {
		return argcError(op, 1, 0, true)
	}
	for _, a := range args {
		if a.Tag != VTNum {
			return Errf("function '%s' can only operate on numbers, found type %s.", op, TypeName(a.Tag))
		}
	}

	acc := args[0].Number()
	if op == "-" && len(args) == 1 {
		return Num(-acc)
	}

	for _, a := range args[1:] {
		x := a.Number()
		switch op {
		case "+":
			acc += x
		case "-":
			acc -= x
		case "*":
			acc *= x
		case "/":
			if x == 0 {
				return Errf("cannot divide by zero.")
			}
			acc /= x
		case "%":
			if x == 0 {
				return Errf("modulus cannot be zero.")
			}
			if !IsInteger(acc) || !IsInteger(x) {
				return Errf("operands of modulo must be integers, found %s and %s.", formatNumber(acc), formatNumber(x))
			}
			// x may still truncate to zero when it sits within epsilon of it.
			if int64(x) == 0 {
				return Errf("modulus cannot be zero.")
			}
			acc = modulo(acc, x)
		case "^":
			if acc == 0 && x < 0 {
				return Errf("cannot raise 0 to negative power %s (requires dividing by 0).", formatNumber(x))
			}
			acc = math.Pow(acc, x)
		case "min":
			acc = math.Min(acc, x)
		case "max":
			acc = math.Max(acc, x)
		}
	}
	return Num(acc)
}

// modulo works on the truncated integer values and shifts a negative
// remainder by the divisor, so (% -1 3) is 2.
func modulo(a, b float64) float64 {
	x, y := int64(a), int64(b)
	r := x % y
	if r < 0 {
		r += y
	}
	return float64(r)
}
