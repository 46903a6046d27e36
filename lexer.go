// lexer.go: tokenizer for Lye source text.
//
// Grammar of tokens:
//
//	number   -?[0-9]+(\.[0-9]+)?
//	symbol   [a-zA-Z0-9_+\-*/\\=<>!&^%]+   (anything in this class that is not a number)
//	( ) { }  list delimiters
//	; ...    comment to end of line
//
// A run of symbol characters (plus '.') is read greedily and then classified,
// so "-" and "-x" are symbols while "-5" and "2.5" are numbers.
package lye

import (
	"fmt"
	"strings"
)

// TokenType represents the kind of token.
type TokenType int

const (
	EOF TokenType = iota

	LROUND // "("
	RROUND // ")"
	LCURLY // "{"
	RCURLY // "}"

	NUMBER
	SYMBOL
)

func (t TokenType) String() string {
	switch t {
	case EOF:
		return "end of input"
	case LROUND:
		return "'('"
	case RROUND:
		return "')'"
	case LCURLY:
		return "'{'"
	case RCURLY:
		return "'}'"
	case NUMBER:
		return "number"
	case SYMBOL:
		return "symbol"
	default:
		return fmt.Sprintf("token(%d)", int(t))
	}
}

// Token is a lexical token. Line and Col are 1-based.
type Token struct {
	Type   TokenType
	Lexeme string
	Line   int
	Col    int
}

// Lexer scans a source string into tokens.
type Lexer struct {
	name   string
	src    string
	start  int
	cur    int
	line   int
	col    int
	tokens []Token
}

// NewLexer creates a lexer over src; name is used in error messages only.
func NewLexer(name, src string) *Lexer {
	return &Lexer{name: name, src: src, line: 1, col: 1}
}

// Scan tokenizes the whole input. The last token is always EOF.
func (l *Lexer) Scan() ([]Token, error) {
	for {
		l.skipBlank()
		if l.atEnd() {
			l.tokens = append(l.tokens, Token{Type: EOF, Line: l.line, Col: l.col})
			return l.tokens, nil
		}
		if err := l.scanToken(); err != nil {
			return nil, err
		}
	}
}

func (l *Lexer) scanToken() error {
	line, col := l.line, l.col
	l.start = l.cur
	c := l.advance()
	switch c {
	case '(':
		l.add(LROUND, line, col)
	case ')':
		l.add(RROUND, line, col)
	case '{':
		l.add(LCURLY, line, col)
	case '}':
		l.add(RCURLY, line, col)
	default:
		if !isSymbolChar(c) && c != '.' {
			return &ParseError{Name: l.name, Line: line, Col: col, Msg: fmt.Sprintf("unexpected character %q", c)}
		}
		for !l.atEnd() && (isSymbolChar(l.peek()) || l.peek() == '.') {
			l.advance()
		}
		lex := l.src[l.start:l.cur]
		switch {
		case isNumberLexeme(lex):
			l.add(NUMBER, line, col)
		case strings.IndexByte(lex, '.') >= 0:
			return &ParseError{Name: l.name, Line: line, Col: col, Msg: fmt.Sprintf("malformed number or symbol %q", lex)}
		default:
			l.add(SYMBOL, line, col)
		}
	}
	return nil
}

func (l *Lexer) skipBlank() {
	for !l.atEnd() {
		switch c := l.peek(); {
		case c == ';':
			for !l.atEnd() && l.peek() != '\n' {
				l.advance()
			}
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			l.advance()
		default:
			return
		}
	}
}

func (l *Lexer) add(t TokenType, line, col int) {
	l.tokens = append(l.tokens, Token{Type: t, Lexeme: l.src[l.start:l.cur], Line: line, Col: col})
}

func (l *Lexer) atEnd() bool { return l.cur >= len(l.src) }
func (l *Lexer) peek() byte  { return l.src[l.cur] }

func (l *Lexer) advance() byte {
	c := l.src[l.cur]
	l.cur++
	if c == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return c
}

func isSymbolChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	switch c {
	case '_', '+', '-', '*', '/', '\\', '=', '<', '>', '!', '&', '^', '%':
		return true
	}
	return false
}

// isNumberLexeme matches -?[0-9]+(\.[0-9]+)? exactly.
func isNumberLexeme(s string) bool {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	digits := func() int {
		n := 0
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
			n++
		}
		return n
	}
	if digits() == 0 {
		return false
	}
	if i < len(s) && s[i] == '.' {
		i++
		if digits() == 0 {
			return false
		}
	}
	return i == len(s)
}
