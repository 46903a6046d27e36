// interpreter_exec.go: PRIVATE-ish: evaluation & call engine for Lye.
//   - Eval reduces a Value in an environment.
//   - Call applies a function value to an argument list: builtins directly,
//     lambdas with binding, saturation and currying.
//   - Failures are Error values returned up the stack; nothing here panics on
//     user input.
//
// Evaluation rules
// ----------------
//
//	Symbol   → lookup in the environment chain (copy of the binding)
//	S-expr   → evaluate children left to right, first Error wins, then
//	           treat the first element as the callee
//	other    → self-evaluating (numbers, functions, Q-exprs, errors)
//
// A one-element S-expression whose element is not a function, or is a builtin
// other than print-env, evaluates to that element. This is what makes `(5)`
// and `(+)` harmless while still letting `(print-env)` run with no arguments.
//
// Call protocol
// -------------
// For a lambda with P remaining parameters and A supplied arguments:
//
//	A > P   → "too many arguments" Error
//	A == P  → bind, link the private frame to its parent, run the body
//	A < P   → bind the prefix, return the function awaiting the rest
//
// The parent of a saturated frame is the calling environment (dynamic
// scoping), or the environment the lambda was created in when it carries a
// Closure (lexical scoping).
package lye

import (
	"github.com/daios-ai/lye/internal/debug"
)

// printEnvName is the one builtin that runs when it is alone in an S-expr.
const printEnvName = "print-env"

////////////////////////////////////////////////////////////////////////////////
//                                  EVAL
////////////////////////////////////////////////////////////////////////////////

// Eval evaluates v in env. v is consumed.
func Eval(env *Env, v Value) Value {
	switch v.Tag {
	case VTSym:
		return env.Get(v)
	case VTSExpr:
		return evalSExpr(env, v.List())
	default:
		return v
	}
}

func evalSExpr(env *Env, cells []Value) Value {
	if len(cells) == 0 {
		return SExpr()
	}

	for i := range cells {
		cells[i] = Eval(env, cells[i])
		if cells[i].IsError() {
			return cells[i]
		}
	}

	first, rest := cells[0], cells[1:]
	if len(rest) == 0 && selfEvaluatingHead(first) {
		return first
	}
	if first.Tag != VTFun {
		return Errf("S-expression must start with a function, found type %s.", TypeName(first.Tag))
	}
	return Call(env, first, rest)
}

func selfEvaluatingHead(v Value) bool {
	if v.Tag != VTFun {
		return true
	}
	f := v.Fun()
	return f.IsBuiltin() && f.Name != printEnvName
}

////////////////////////////////////////////////////////////////////////////////
//                                  CALL
////////////////////////////////////////////////////////////////////////////////

// Call applies fn to args in the calling environment env. Both fn and args
// are consumed; a lambda's private frame is mutated in place, so fn must not
// be a value still stored elsewhere (environment lookups already return
// copies).
func Call(env *Env, fn Value, args []Value) Value {
	if fn.Tag != VTFun {
		return Errf("cannot call a value of type %s.", TypeName(fn.Tag))
	}
	f := fn.Fun()

	if f.IsBuiltin() {
		if debug.Eval() {
			debug.Logger().Debug("call builtin", "name", f.Name, "argc", len(args))
		}
		return f.Native(env, args)
	}

	argc, paramc := len(args), len(f.Params)
	if argc > paramc {
		name := f.Name
		if name == "" {
			name = `\`
		}
		return Errf("function %s passed too many arguments: expected %d but got %d.", name, paramc, argc)
	}
	if f.Env == nil {
		f.Env = NewEnv(nil)
	}

	for i, arg := range args {
		f.Env.Define(Sym(f.Params[i]), arg, false)
	}
	f.Params = f.Params[argc:]

	if debug.Eval() {
		debug.Logger().Debug("call lambda", "argc", argc, "remaining", len(f.Params))
	}

	if len(f.Params) > 0 {
		return fn
	}

	if f.Closure != nil {
		f.Env.SetParent(f.Closure)
	} else {
		f.Env.SetParent(env)
	}
	return evalBody(f.Env, copyList(f.Body))
}

// evalBody runs a quoted body as a call form, the way the eval builtin does.
func evalBody(env *Env, body []Value) Value {
	return Eval(env, QExpr(body...).Unquote())
}
