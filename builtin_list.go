package lye

// ---- list built-ins ----------------------------------------------------

func registerListBuiltins(env *Env) {
	registerBuiltin(env, "list", builtinList)
	registerBuiltin(env, "head", builtinHead)
	registerBuiltin(env, "tail", builtinTail)
	registerBuiltin(env, "join", builtinJoin)
	registerBuiltin(env, "eval", builtinEval)
	registerBuiltin(env, "cons", builtinCons)
	registerBuiltin(env, "length", builtinLength)
	registerBuiltin(env, "reverse", builtinReverse)
	registerBuiltin(env, "init", builtinInit)
}

// list {args...} → the argument bundle itself, quoted.
func builtinList(_ *Env, args []Value) Value {
	return SExpr(args...).Quote()
}

// head {x ...} → x
func builtinHead(_ *Env, args []Value) Value {
	if bad, ok := checkNonEmptyList("head", args); !ok {
		return bad
	}
	return args[0].List()[0]
}

// tail {x rest...} → {rest...}
func builtinTail(_ *Env, args []Value) Value {
	if bad, ok := checkNonEmptyList("tail", args); !ok {
		return bad
	}
	return QExpr(args[0].List()[1:]...)
}

// join {a...} {b...} ... → {a... b... ...}
func builtinJoin(_ *Env, args []Value) Value {
	if len(args) == 0 {
		return argcError("join", 1, 0, true)
	}
	var out []Value
	for i := range args {
		if bad, ok := checkList("join", args, i); !ok {
			return bad
		}
		out = append(out, args[i].List()...)
	}
	return QExpr(out...)
}

// eval {expr...} → result of evaluating (expr...) in the calling environment.
func builtinEval(env *Env, args []Value) Value {
	if bad, ok := checkArgc("eval", args, 1); !ok {
		return bad
	}
	if bad, ok := checkList("eval", args, 0); !ok {
		return bad
	}
	return Eval(env, args[0].Unquote())
}

// cons x {xs...} → {x xs...}
func builtinCons(_ *Env, args []Value) Value {
	if bad, ok := checkArgc("cons", args, 2); !ok {
		return bad
	}
	if bad, ok := checkList("cons", args, 1); !ok {
		return bad
	}
	xs := args[1].List()
	out := make([]Value, 0, len(xs)+1)
	out = append(out, args[0])
	out = append(out, xs...)
	return QExpr(out...)
}

// length {xs...} → number of elements
func builtinLength(_ *Env, args []Value) Value {
	if bad, ok := checkArgc("length", args, 1); !ok {
		return bad
	}
	if bad, ok := checkList("length", args, 0); !ok {
		return bad
	}
	return Num(float64(args[0].Len()))
}

// reverse {a b c} → {c b a}
func builtinReverse(_ *Env, args []Value) Value {
	if bad, ok := checkArgc("reverse", args, 1); !ok {
		return bad
	}
	if bad, ok := checkList("reverse", args, 0); !ok {
		return bad
	}
	xs := args[0].List()
	for i, j := 0, len(xs)-1; i < j; i, j = i+1, j-1 {
		xs[i], xs[j] = xs[j], xs[i]
	}
	return args[0]
}

// init {a b c} → {a b}
func builtinInit(_ *Env, args []Value) Value {
	if bad, ok := checkNonEmptyList("init", args); !ok {
		return bad
	}
	xs := args[0].List()
	return QExpr(xs[:len(xs)-1]...)
}

////////////////////////////////////////////////////////////////////////////////
//                              ARGUMENT CHECKS
////////////////////////////////////////////////////////////////////////////////

func checkArgc(name string, args []Value, want int) (Value, bool) {
	if len(args) != want {
		return argcError(name, want, len(args), false), false
	}
	return Value{}, true
}

func checkList(name string, args []Value, i int) (Value, bool) {
	if args[i].Tag != VTQExpr {
		return Errf("function '%s' passed incorrect type: expected %s, found type %s.",
			name, TypeName(VTQExpr), TypeName(args[i].Tag)), false
	}
	return Value{}, true
}

func checkNonEmptyList(name string, args []Value) (Value, bool) {
	if bad, ok := checkArgc(name, args, 1); !ok {
		return bad, false
	}
	if bad, ok := checkList(name, args, 0); !ok {
		return bad, false
	}
	if args[0].Len() == 0 {
		return Errf("function '%s' passed invalid empty list.", name), false
	}
	return Value{}, true
}

func argcError(name string, want, got int, atLeast bool) Value {
	plural := "s"
	if want == 1 {
		plural = ""
	}
	qualifier := ""
	if atLeast {
		qualifier = "at least "
	}
	return Errf("function '%s' must be passed %s%d argument%s, but got %d instead.",
		name, qualifier, want, plural, got)
}
