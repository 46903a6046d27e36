// lexer_test.go
package lye

import (
	"reflect"
	"strings"
	"testing"
)

func toks(t *testing.T, src string) []Token {
	t.Helper()
	ts, err := NewLexer("<test>", src).Scan()
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	return ts
}

func typesWithoutEOF(tokens []Token) []TokenType {
	if len(tokens) == 0 {
		return nil
	}
	end := len(tokens)
	if tokens[end-1].Type == EOF {
		end--
	}
	out := make([]TokenType, 0, end)
	for i := 0; i < end; i++ {
		out = append(out, tokens[i].Type)
	}
	return out
}

func wantTypes(t *testing.T, src string, want []TokenType) []Token {
	t.Helper()
	got := toks(t, src)
	gotTypes := typesWithoutEOF(got)
	if !reflect.DeepEqual(gotTypes, want) {
		t.Fatalf("\nsource:\n%s\nwant types:\n%v\ngot types:\n%v\n", src, want, gotTypes)
	}
	return got
}

func Test_Lexer_Delimiters_And_Atoms(t *testing.T) {
	ts := wantTypes(t, `(def {x} 1.5) ; trailing comment`, []TokenType{
		LROUND, SYMBOL, LCURLY, SYMBOL, RCURLY, NUMBER, RROUND,
	})
	if ts[1].Lexeme != "def" || ts[5].Lexeme != "1.5" {
		t.Fatalf("unexpected lexemes: %q %q", ts[1].Lexeme, ts[5].Lexeme)
	}
	if ts[len(ts)-1].Type != EOF {
		t.Fatal("last token must be EOF")
	}
}

func Test_Lexer_NumberVersusSymbol(t *testing.T) {
	cases := []struct {
		src  string
		want TokenType
	}{
		{"42", NUMBER},
		{"-5", NUMBER},
		{"0.25", NUMBER},
		{"-3.75", NUMBER},
		{"-", SYMBOL},
		{"-x", SYMBOL},
		{"+", SYMBOL},
		{"5x", SYMBOL},
		{`\`, SYMBOL},
		{"print-env", SYMBOL},
		{"<=!&^%_", SYMBOL},
	}
	for _, c := range cases {
		ts := toks(t, c.src)
		if len(ts) != 2 || ts[0].Type != c.want || ts[0].Lexeme != c.src {
			t.Fatalf("%q lexed as %v", c.src, ts)
		}
	}
}

func Test_Lexer_Positions(t *testing.T) {
	ts := toks(t, "(+ 1\n  ; note\n   x)")
	want := [][2]int{{1, 1}, {1, 2}, {1, 4}, {3, 4}, {3, 5}}
	for i, w := range want {
		if ts[i].Line != w[0] || ts[i].Col != w[1] {
			t.Fatalf("token %d (%q) at %d:%d, want %d:%d", i, ts[i].Lexeme, ts[i].Line, ts[i].Col, w[0], w[1])
		}
	}
}

func Test_Lexer_CommentsAndBlanks(t *testing.T) {
	wantTypes(t, "; only a comment", []TokenType{})
	wantTypes(t, "  \t\r\n", []TokenType{})
	wantTypes(t, "a;b\nc", []TokenType{SYMBOL, SYMBOL})
}

func Test_Lexer_Errors(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{`"str"`, `unexpected character '"'`},
		{"(a #)", "unexpected character '#'"},
		{"1.", `malformed number or symbol "1."`},
		{"1.2.3", "malformed number"},
		{".5", "malformed number"},
	}
	for _, c := range cases {
		_, err := NewLexer("<test>", c.src).Scan()
		if err == nil {
			t.Fatalf("%q: expected error", c.src)
		}
		if !strings.Contains(err.Error(), c.want) {
			t.Fatalf("%q: error %q does not contain %q", c.src, err, c.want)
		}
		if IsIncomplete(err) {
			t.Fatalf("%q: lexical errors are never incomplete", c.src)
		}
	}
}

func Test_Lexer_TokenTypeString(t *testing.T) {
	if EOF.String() != "end of input" || RCURLY.String() != "'}'" || NUMBER.String() != "number" {
		t.Fatal("unexpected token type names")
	}
}
