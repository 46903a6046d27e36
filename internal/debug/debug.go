// Package debug holds the environment-controlled diagnostics switches of the
// interpreter and the slog logger they write to.
//
//	LYE_DEBUG        any non-empty value lowers the log level to Debug
//	                 (so does any of the trace flags below)
//	LYE_DEBUG_EVAL   trace function calls in the evaluator
//	LYE_DEBUG_READ   trace syntax-to-value conversion
//	LYE_DEBUG_ENV    trace environment bindings
package debug

import (
	"io"
	"log/slog"
	"os"
	"strconv"
	"sync"
)

type debug struct {
	Eval bool
	Read bool
	Env  bool
}

var (
	d      *debug
	mu     sync.Mutex
	logger *slog.Logger
)

func init() {
	d = &debug{
		Eval: boolEnv("LYE_DEBUG_EVAL"),
		Read: boolEnv("LYE_DEBUG_READ"),
		Env:  boolEnv("LYE_DEBUG_ENV"),
	}
	logger = NewLogger(os.Stderr)
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Eval() bool { return d.Eval }
func Read() bool { return d.Read }
func Env() bool  { return d.Env }

// SetEval toggles evaluator tracing; tests use it instead of the environment.
func SetEval(on bool) { d.Eval = on }

// Level is Debug when LYE_DEBUG or any trace flag is set, Info otherwise.
func Level() slog.Level {
	if os.Getenv("LYE_DEBUG") != "" || d.Eval || d.Read || d.Env {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// NewLogger builds a text logger on w at Level().
func NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: Level()}))
}

// Logger returns the process-wide diagnostics logger.
func Logger() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// SetLogger replaces the process-wide diagnostics logger.
func SetLogger(l *slog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}
