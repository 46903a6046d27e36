// errors.go: host-level error types and caret-snippet rendering
//
// What this file does
// -------------------
// Language-level failures in Lye are Error *values* and never reach this file.
// What does reach it are failures of the host around the evaluator: source
// text that does not lex or parse, and files that cannot be read. Those are
// ordinary Go errors. Lex/parse problems are reported as *ParseError with a
// 1-based Line and Col, and WrapErrorWithSource turns them into a snippet:
//
//	PARSE ERROR in prog.lye at 3:1: unexpected ')'
//
//	   2 | (def {x} 1)
//	   3 | )
//	     | ^
//
// The REPL uses IsIncomplete to tell "keep typing" apart from "this is wrong".
package lye

import (
	"errors"
	"fmt"
	"strings"
)

/* ===========================
   PUBLIC API
   =========================== */

// ParseError is a lexical or syntactic failure at a 1-based position.
// Incomplete is set when the input simply ended inside an open list, which an
// interactive reader can fix by appending more text.
type ParseError struct {
	Name       string
	Line       int
	Col        int
	Msg        string
	Incomplete bool
}

func (e *ParseError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("PARSE ERROR in %s at %d:%d: %s", e.Name, e.Line, e.Col, e.Msg)
	}
	return fmt.Sprintf("PARSE ERROR at %d:%d: %s", e.Line, e.Col, e.Msg)
}

// ErrIncomplete matches any incomplete *ParseError under errors.Is.
var ErrIncomplete = errors.New("incomplete input")

func (e *ParseError) Is(target error) bool {
	return target == ErrIncomplete && e.Incomplete
}

// IsIncomplete reports whether err (or anything it wraps) is an incomplete
// parse.
func IsIncomplete(err error) bool {
	return errors.Is(err, ErrIncomplete)
}

// WrapErrorWithSource returns err augmented with a caret-annotated snippet of
// src when err is (or wraps) a *ParseError. Other errors are returned as-is.
func WrapErrorWithSource(err error, name, src string) error {
	var pe *ParseError
	if !errors.As(err, &pe) {
		return err
	}
	if name == "" {
		name = pe.Name
	}
	return errors.New(prettyErrorStringLabeled(src, "PARSE ERROR", name, pe.Line, pe.Col, pe.Msg))
}

//// END_OF_PUBLIC

/* ===========================
   PRIVATE: rendering
   =========================== */

// prettyErrorStringLabeled builds a snippet with a header and a caret. It
// shows at most one previous and one next line. Coordinates are clamped.
func prettyErrorStringLabeled(src, header, name string, line, col int, msg string) string {
	lines := strings.Split(src, "\n")
	if line < 1 {
		line = 1
	}
	if col < 1 {
		col = 1
	}
	if line > len(lines) {
		line = len(lines)
	}

	var b strings.Builder
	if name != "" {
		fmt.Fprintf(&b, "%s in %s at %d:%d: %s\n\n", header, name, line, col, msg)
	} else {
		fmt.Fprintf(&b, "%s at %d:%d: %s\n\n", header, line, col, msg)
	}
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lines[line-1])
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", col-1))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
