package lye

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func mustContain(t *testing.T, s, sub string) {
	t.Helper()
	if !strings.Contains(s, sub) {
		t.Fatalf("expected output to contain %q\n--- output ---\n%s", sub, s)
	}
}

func Test_ErrorWrap_Parse_ShowsCaretAndContext(t *testing.T) {
	src := "(def {x} 1)\n)\n(+ x 1)"
	_, err := Parse("prog.lye", src)
	if err == nil {
		t.Fatalf("expected parse error, got nil")
	}
	msg := WrapErrorWithSource(err, "", src).Error()

	mustContain(t, msg, "PARSE ERROR in prog.lye at 2:1: unexpected ')'")
	mustContain(t, msg, "   1 | (def {x} 1)")
	mustContain(t, msg, "   2 | )")
	mustContain(t, msg, "     | ^")
	mustContain(t, msg, "   3 | (+ x 1)")
}

func Test_ErrorWrap_Lex_ShowsCaretAndContext(t *testing.T) {
	src := `(head "x")`
	_, err := NewLexer("", src).Scan()
	if err == nil {
		t.Fatal("expected lex error")
	}
	msg := WrapErrorWithSource(err, "line", src).Error()
	mustContain(t, msg, "PARSE ERROR in line at 1:7")
	mustContain(t, msg, "     |       ^")
}

func Test_ErrorWrap_PassesOtherErrorsThrough(t *testing.T) {
	base := errors.New("disk on fire")
	if got := WrapErrorWithSource(base, "x", "src"); got != base {
		t.Fatalf("non-parse errors must be returned unchanged, got %v", got)
	}
}

func Test_ErrorWrap_FindsWrappedParseError(t *testing.T) {
	pe := &ParseError{Line: 1, Col: 2, Msg: "boom"}
	msg := WrapErrorWithSource(fmt.Errorf("loading: %w", pe), "f.lye", "abc").Error()
	mustContain(t, msg, "PARSE ERROR in f.lye at 1:2: boom")
}

func Test_ErrorWrap_ClampsCoordinates(t *testing.T) {
	pe := &ParseError{Line: 99, Col: 0, Msg: "late"}
	msg := WrapErrorWithSource(pe, "", "one\ntwo").Error()
	mustContain(t, msg, "at 2:1: late")
	mustContain(t, msg, "   2 | two")
}

func Test_ParseError_Incomplete(t *testing.T) {
	inc := &ParseError{Msg: "eof", Incomplete: true}
	hard := &ParseError{Msg: "bad"}
	if !IsIncomplete(inc) || IsIncomplete(hard) || IsIncomplete(nil) {
		t.Fatal("IsIncomplete follows the Incomplete flag")
	}
	if !IsIncomplete(fmt.Errorf("wrapped: %w", inc)) {
		t.Fatal("IsIncomplete looks through wrapping")
	}
	if got := hard.Error(); got != "PARSE ERROR at 0:0: bad" {
		t.Fatalf("Error() = %q", got)
	}
}
