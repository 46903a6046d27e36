// interpreter.go: public facade over the reader, the evaluator and the
// builtin registry.
//
// OVERVIEW
// ========
// An Interpreter owns one root environment with every builtin installed as a
// protected binding. All evaluation happens directly in that root, so `def`
// made by one call is visible to the next.
//
// Two entry points differ only in how source text is grouped into forms:
//
//   - EvalSource (REPL mode): the whole input is one S-expression. The line
//     `+ 1 2` evaluates to 3, and `(+ 1 2) (+ 3 4)` is a call whose head is 3.
//   - RunSource (file mode): every top-level form is wrapped in its own
//     S-expression and evaluated in order. The first Error value stops the
//     run and is returned as the result.
//
// Go errors are reserved for host failures (parse errors, unreadable files).
// Language failures are Error values in the returned Value.
package lye

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/daios-ai/lye/internal/debug"
)

// Version is printed in the REPL banner and by `lye version`.
const Version = "0.0.0.4"

// Scoping selects how a lambda body resolves free symbols.
type Scoping int

const (
	// Dynamic resolves free symbols in the environment of the call site.
	Dynamic Scoping = iota
	// Lexical resolves free symbols in the environment where the lambda was
	// built.
	Lexical
)

func (s Scoping) String() string {
	if s == Lexical {
		return "lexical"
	}
	return "dynamic"
}

// ParseScoping accepts "dynamic", "lexical" or "" (dynamic).
func ParseScoping(s string) (Scoping, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "dynamic":
		return Dynamic, nil
	case "lexical":
		return Lexical, nil
	}
	return Dynamic, fmt.Errorf("unknown scoping %q (want dynamic or lexical)", s)
}

////////////////////////////////////////////////////////////////////////////////
//                                  OPTIONS
////////////////////////////////////////////////////////////////////////////////

// Option configures an Interpreter or a call to RegisterBuiltins.
type Option func(*settings)

type settings struct {
	out     io.Writer
	log     *slog.Logger
	scoping Scoping
}

func newSettings(opts ...Option) *settings {
	s := &settings{out: os.Stdout, scoping: Dynamic}
	for _, o := range opts {
		o(s)
	}
	if s.log == nil {
		s.log = debug.Logger()
	}
	return s
}

// WithOutput sets the writer used by print-env. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(s *settings) { s.out = w }
}

// WithLogger sets the logger used for run tracing.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) { s.log = l }
}

// WithScoping selects dynamic (default) or lexical lambda scoping.
func WithScoping(sc Scoping) Option {
	return func(s *settings) { s.scoping = sc }
}

// WithConfig applies the interpreter-relevant fields of cfg. An unknown
// scoping name is ignored here; LoadConfig already rejects it.
func WithConfig(cfg *Config) Option {
	return func(s *settings) {
		if cfg == nil {
			return
		}
		if sc, err := ParseScoping(cfg.Scoping); err == nil {
			s.scoping = sc
		}
	}
}

////////////////////////////////////////////////////////////////////////////////
//                                INTERPRETER
////////////////////////////////////////////////////////////////////////////////

// Interpreter evaluates Lye source against a persistent root environment.
type Interpreter struct {
	Global *Env

	settings *settings
}

// NewInterpreter builds a root environment and installs the builtins.
func NewInterpreter(opts ...Option) *Interpreter {
	ip := &Interpreter{Global: NewEnv(nil), settings: newSettings(opts...)}
	RegisterBuiltins(ip.Global, opts...)
	return ip
}

// Scoping reports the lambda scoping this interpreter was built with.
func (ip *Interpreter) Scoping() Scoping { return ip.settings.scoping }

// EvalSource reads src as one S-expression and evaluates it in Global.
func (ip *Interpreter) EvalSource(src string) (Value, error) {
	v, err := ReadSource("<repl>", src)
	if err != nil {
		return Value{}, WrapErrorWithSource(err, "<repl>", src)
	}
	return Eval(ip.Global, v), nil
}

// RunSource evaluates each top-level form of src in order. It returns the
// result of the last form, or the first Error value produced. An empty
// program yields the empty S-expression.
func (ip *Interpreter) RunSource(name, src string) (Value, error) {
	forms, err := ReadForms(name, src)
	if err != nil {
		return Value{}, WrapErrorWithSource(err, name, src)
	}
	ip.settings.log.Debug("run", "name", name, "forms", len(forms))

	result := SExpr()
	for i, f := range forms {
		result = Eval(ip.Global, f)
		if result.IsError() {
			ip.settings.log.Debug("run stopped", "name", name, "form", i+1, "error", result.Message())
			break
		}
	}
	return result, nil
}

// RunFile reads path and runs it with RunSource.
func (ip *Interpreter) RunFile(path string) (Value, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Value{}, fmt.Errorf("run %s: %w", path, err)
	}
	return ip.RunSource(path, string(b))
}
