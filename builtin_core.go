package lye

import (
	"fmt"
	"io"

	"github.com/daios-ai/lye/internal/debug"
)

// ---- environment & function built-ins ----------------------------------

// RegisterBuiltins installs the full builtin set into the root of env as
// protected bindings. It is called once per interpreter, before any Eval.
//
// Installed names:
//
//	def \ = print-env                       environment & functions
//	list head tail join eval cons length    list manipulation
//	reverse init
//	+ - * / % ^ min max                     arithmetic
//	quit                                    protected symbol bound to itself
func RegisterBuiltins(env *Env, opts ...Option) {
	s := newSettings(opts...)
	root := env.Root()

	registerCoreBuiltins(root, s)
	registerListBuiltins(root)
	registerMathBuiltins(root)

	quit := Sym(quitSymbol)
	root.Define(quit, quit, true)
}

func registerBuiltin(env *Env, name string, op Builtin) {
	env.DefineGlobal(Sym(name), BuiltinVal(name, op), true)
}

func registerCoreBuiltins(env *Env, s *settings) {
	registerBuiltin(env, "def", func(env *Env, args []Value) Value {
		return bindVars(env, "def", args, true)
	})
	registerBuiltin(env, "=", func(env *Env, args []Value) Value {
		return bindVars(env, "=", args, false)
	})
	registerBuiltin(env, `\`, func(env *Env, args []Value) Value {
		return makeLambda(env, args, s.scoping)
	})
	registerBuiltin(env, printEnvName, func(env *Env, _ []Value) Value {
		printEnv(s.out, env)
		return Sym(printEnvName)
	})
}

// bindVars implements (def {a b} 1 2) and (= {a b} 1 2). The first argument
// names the symbols, the rest supply one value each. Protection is checked
// for every name before anything is bound, so a collision leaves the target
// frame untouched.
func bindVars(env *Env, name string, args []Value, global bool) Value {
	if len(args) == 0 {
		return argcError(name, 1, 0, true)
	}
	if bad, ok := checkList(name, args, 0); !ok {
		return bad
	}
	syms := args[0].List()
	for _, s := range syms {
		if s.Tag != VTSym {
			return Errf("function '%s' must be passed a list of symbols, found type %s.", name, TypeName(s.Tag))
		}
	}
	vals := args[1:]
	if len(syms) != len(vals) {
		return Errf("function '%s' must be passed the same number of symbols and values, got %d and %d.",
			name, len(syms), len(vals))
	}

	target := env
	if global {
		target = env.Root()
	}
	for _, s := range syms {
		if target.Protected(s.Symbol()) {
			return Errf("cannot redefine builtin function %s.", s.Symbol())
		}
	}
	for i, s := range syms {
		if res := target.Define(s, vals[i], false); res.IsError() {
			return res
		}
		if debug.Env() {
			debug.Logger().Debug("bind", "op", name, "symbol", s.Symbol())
		}
	}
	return SExpr()
}

// makeLambda implements (\ {params} {body}).
func makeLambda(env *Env, args []Value, scoping Scoping) Value {
	if bad, ok := checkArgc(`\`, args, 2); !ok {
		return bad
	}
	for i := range args {
		if bad, ok := checkList(`\`, args, i); !ok {
			return bad
		}
	}
	params := make([]string, 0, args[0].Len())
	for _, p := range args[0].List() {
		if p.Tag != VTSym {
			return Errf(`function '\' must be passed a list of symbols, found type %s.`, TypeName(p.Tag))
		}
		params = append(params, p.Symbol())
	}
	fn := LambdaVal(params, args[1].List())
	if scoping == Lexical {
		fn.Fun().Closure = env
	}
	return fn
}

// printEnv writes the local bindings of env, one per line, in definition order.
func printEnv(w io.Writer, env *Env) {
	fmt.Fprintln(w, "Current environment:")
	env.Each(func(name string, v Value, _ bool) {
		fmt.Fprintf(w, "    %s: %s\n", name, FormatValue(v))
	})
	fmt.Fprintf(w, "There are a total of %d variables defined.\n", env.Len())
}
