package lye

import (
	"fmt"
	"sort"
)

// quitSymbol is reserved: it can never be rebound, not even where the
// existing binding is unprotected.
const quitSymbol = "quit"

type binding struct {
	val       Value
	protected bool
}

// Env is a scope frame with a parent link. Lookups walk parent-ward; the
// frame with no parent is the root, which holds the builtins.
//
// Bindings are kept in insertion order so that print-env output is stable.
type Env struct {
	parent *Env
	table  map[string]binding
	order  []string
}

// NewEnv creates an empty frame with the given parent (which may be nil).
func NewEnv(parent *Env) *Env {
	return &Env{parent: parent, table: make(map[string]binding)}
}

func (e *Env) Parent() *Env     { return e.parent }
func (e *Env) SetParent(p *Env) { e.parent = p }
func (e *Env) Len() int         { return len(e.order) }
func (e *Env) Names() []string  { return append([]string(nil), e.order...) }

// Has reports whether name is bound in this frame (parents are not searched).
func (e *Env) Has(name string) bool {
	_, ok := e.table[name]
	return ok
}

// Root walks to the frame without a parent.
func (e *Env) Root() *Env {
	for e.parent != nil {
		e = e.parent
	}
	return e
}

// Protected reports whether name is bound in this frame and cannot be
// redefined there.
func (e *Env) Protected(name string) bool {
	b, ok := e.table[name]
	return ok && (b.protected || name == quitSymbol)
}

// Get resolves key in this frame or the nearest ancestor and returns a copy of
// the bound value. A miss at the root yields an unbound-symbol Error.
func (e *Env) Get(key Value) Value {
	name := mustSymbol(key)
	for f := e; f != nil; f = f.parent {
		if b, ok := f.table[name]; ok {
			return b.val.Copy()
		}
	}
	return Errf("unbound symbol '%s'.", name)
}

// Define binds key to a copy of v in this frame. Rebinding a protected name
// (or quit) fails without touching the frame. On success v itself is
// returned.
func (e *Env) Define(key Value, v Value, protected bool) Value {
	name := mustSymbol(key)
	if b, ok := e.table[name]; ok {
		if b.protected || name == quitSymbol {
			return Errf("cannot redefine builtin function %s.", name)
		}
	} else {
		e.order = append(e.order, name)
	}
	e.table[name] = binding{val: v.Copy(), protected: protected}
	return v
}

// DefineGlobal behaves like Define on the root frame.
func (e *Env) DefineGlobal(key Value, v Value, protected bool) Value {
	return e.Root().Define(key, v, protected)
}

// Clone returns an independent frame with the same parent and deep copies of
// every binding.
func (e *Env) Clone() *Env {
	c := &Env{
		parent: e.parent,
		table:  make(map[string]binding, len(e.table)),
		order:  append([]string(nil), e.order...),
	}
	for name, b := range e.table {
		c.table[name] = binding{val: b.val.Copy(), protected: b.protected}
	}
	return c
}

// Each calls fn for every local binding in insertion order.
func (e *Env) Each(fn func(name string, v Value, protected bool)) {
	for _, name := range e.order {
		b := e.table[name]
		fn(name, b.val, b.protected)
	}
}

// Visible returns the names visible from this frame (inner frames shadow
// outer ones), sorted. Used for REPL completion.
func (e *Env) Visible() []string {
	seen := map[string]bool{}
	var out []string
	for f := e; f != nil; f = f.parent {
		for _, name := range f.order {
			if !seen[name] {
				seen[name] = true
				out = append(out, name)
			}
		}
	}
	sort.Strings(out)
	return out
}

// mustSymbol enforces the key contract: only the evaluator supplies keys and
// it always supplies symbols.
func mustSymbol(key Value) string {
	if key.Tag != VTSym {
		panic(fmt.Sprintf("lye: environment key must be a Symbol, got %s", TypeName(key.Tag)))
	}
	return key.Symbol()
}
