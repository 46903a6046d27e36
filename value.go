// value.go: the Lye runtime value model.
//
// Every runtime entity is a Value: a closed tagged sum whose Tag decides which
// Go type Data holds. There are exactly six cases:
//
//	VTNum    float64   the only numeric type
//	VTSym    string    variable references and operator names
//	VTFun    *Fun      builtins and user lambdas
//	VTSExpr  []Value   evaluated list (a call once reduced)
//	VTQExpr  []Value   quoted list (data, never auto-evaluated)
//	VTErr    string    formatted message of a recoverable failure
//
// OWNERSHIP
// ---------
// A Value handed to Eval, Call or a builtin is consumed: the callee may reuse
// or mutate its list storage. Whatever must outlive the call is duplicated
// with Copy. Environments always store and return copies, so two bindings
// never share list storage or lambda frames. Trees are acyclic by
// construction; the collector reclaims them once the last reference drops.
package lye

import (
	"fmt"
	"math"
)

////////////////////////////////////////////////////////////////////////////////
//                                   TAGS
////////////////////////////////////////////////////////////////////////////////

// ValueTag enumerates the runtime kinds a Value may hold.
type ValueTag int

const (
	VTNum   ValueTag = iota // float64
	VTSym                   // string
	VTFun                   // *Fun
	VTSExpr                 // []Value, evaluated
	VTQExpr                 // []Value, quoted
	VTErr                   // string
)

// TypeName is the user-facing name of a tag, as it appears in error messages.
func TypeName(t ValueTag) string {
	switch t {
	case VTNum:
		return "Number"
	case VTSym:
		return "Symbol"
	case VTFun:
		return "Function"
	case VTSExpr:
		return "S-Expression"
	case VTQExpr:
		return "Q-Expression (List)"
	case VTErr:
		return "Error"
	default:
		return "Unknown"
	}
}

////////////////////////////////////////////////////////////////////////////////
//                                   VALUES
////////////////////////////////////////////////////////////////////////////////

// Value is the universal runtime carrier.
//
// Invariants:
//   - Data always has the Go type listed for Tag in the file header.
//   - For list tags, the element count is len(Data.([]Value)); there is no
//     separately stored count to drift.
type Value struct {
	Tag  ValueTag
	Data any
}

// Builtin is the host implementation of a builtin function. It receives the
// calling environment and owns args on every return path.
type Builtin func(env *Env, args []Value) Value

// Fun is a function payload. Exactly one of Native (builtin) or the lambda
// fields is meaningful.
//
// A lambda keeps its remaining Params; every partial application binds a
// prefix of them into Env and drops them from Params. Env's parent stays
// unset until the lambda is saturated and called. Closure is only set when
// the lambda was created under lexical scoping; it is shared, never copied.
type Fun struct {
	Name   string
	Native Builtin

	Params  []string
	Body    []Value
	Env     *Env
	Closure *Env
}

// IsBuiltin reports whether f is backed by a host operation.
func (f *Fun) IsBuiltin() bool { return f.Native != nil }

// Constructors. None of them copy their inputs.
func Num(f float64) Value     { return Value{Tag: VTNum, Data: f} }
func Sym(s string) Value      { return Value{Tag: VTSym, Data: s} }
func SExpr(xs ...Value) Value { return Value{Tag: VTSExpr, Data: listOrEmpty(xs)} }
func QExpr(xs ...Value) Value { return Value{Tag: VTQExpr, Data: listOrEmpty(xs)} }
func FunVal(f *Fun) Value     { return Value{Tag: VTFun, Data: f} }

// Errf builds an Error value from a format string.
func Errf(format string, args ...any) Value {
	return Value{Tag: VTErr, Data: fmt.Sprintf(format, args...)}
}

// BuiltinVal wraps a host operation under name.
func BuiltinVal(name string, op Builtin) Value {
	return FunVal(&Fun{Name: name, Native: op})
}

// LambdaVal builds a fresh lambda with an empty private environment.
func LambdaVal(params []string, body []Value) Value {
	return FunVal(&Fun{Params: params, Body: body, Env: NewEnv(nil)})
}

func listOrEmpty(xs []Value) []Value {
	if xs == nil {
		return []Value{}
	}
	return xs
}

////////////////////////////////////////////////////////////////////////////////
//                                 ACCESSORS
////////////////////////////////////////////////////////////////////////////////

func (v Value) IsList() bool  { return v.Tag == VTSExpr || v.Tag == VTQExpr }
func (v Value) IsError() bool { return v.Tag == VTErr }

func (v Value) Number() float64 { return v.Data.(float64) }
func (v Value) Symbol() string  { return v.Data.(string) }
func (v Value) Message() string { return v.Data.(string) }
func (v Value) Fun() *Fun       { return v.Data.(*Fun) }
func (v Value) List() []Value   { return v.Data.([]Value) }

// Len returns the element count of a list value, or -1 for other tags.
func (v Value) Len() int {
	if !v.IsList() {
		return -1
	}
	return len(v.List())
}

// Quote retags an evaluated list as quoted without copying its elements.
func (v Value) Quote() Value {
	if v.Tag == VTSExpr {
		v.Tag = VTQExpr
	}
	return v
}

// Unquote retags a quoted list as evaluated without copying its elements.
func (v Value) Unquote() Value {
	if v.Tag == VTQExpr {
		v.Tag = VTSExpr
	}
	return v
}

// IsInteger reports whether x lies within 1e-6 of its rounded value.
func IsInteger(x float64) bool {
	const epsilon = 0.000001
	d := math.Round(x) - x
	return d > -epsilon && d < epsilon
}

////////////////////////////////////////////////////////////////////////////////
//                                   COPY
////////////////////////////////////////////////////////////////////////////////

// Copy returns a structurally independent duplicate of v. Lists are copied
// element by element; lambdas get their own params, body and a cloned private
// environment. Builtins share the host operation.
func (v Value) Copy() Value {
	switch v.Tag {
	case VTSExpr, VTQExpr:
		return Value{Tag: v.Tag, Data: copyList(v.List())}
	case VTFun:
		f := v.Fun()
		if f.IsBuiltin() {
			return FunVal(&Fun{Name: f.Name, Native: f.Native})
		}
		var env *Env
		if f.Env != nil {
			env = f.Env.Clone()
		}
		return FunVal(&Fun{
			Params:  append([]string{}, f.Params...),
			Body:    copyList(f.Body),
			Env:     env,
			Closure: f.Closure,
		})
	default:
		return v
	}
}

func copyList(xs []Value) []Value {
	out := make([]Value, len(xs))
	for i, x := range xs {
		out[i] = x.Copy()
	}
	return out
}
