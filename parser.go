// parser.go: recursive-descent parser producing a tagged syntax tree.
//
// The tree mirrors what a parser-combinator library would hand back: every
// Node has a Tag, the matched Contents for leaves, a 1-based position and
// ordered Children. Delimiters and comments are not kept.
//
//	program  := expr*                 Tag "program"
//	expr     := number | symbol | sexpr | qexpr
//	sexpr    := '(' expr* ')'         Tag "sexpr"
//	qexpr    := '{' expr* '}'         Tag "qexpr"
//
// Conversion of the tree into runtime values lives in reader.go.
package lye

import (
	"fmt"
)

// Node tags.
const (
	TagProgram = "program"
	TagSExpr   = "sexpr"
	TagQExpr   = "qexpr"
	TagNumber  = "number"
	TagSymbol  = "symbol"
)

// Node is one syntax-tree node.
type Node struct {
	Tag      string
	Contents string
	Line     int
	Col      int
	Children []*Node
}

type parser struct {
	name string
	toks []Token
	pos  int
}

// Parse lexes and parses src into a program node. name is used in error
// messages only. Input that ends inside an open list yields a *ParseError
// with Incomplete set.
func Parse(name, src string) (*Node, error) {
	toks, err := NewLexer(name, src).Scan()
	if err != nil {
		return nil, err
	}
	p := &parser{name: name, toks: toks}
	return p.program()
}

func (p *parser) program() (*Node, error) {
	root := &Node{Tag: TagProgram, Line: 1, Col: 1}
	for p.peek().Type != EOF {
		n, err := p.expr()
		if err != nil {
			return nil, err
		}
		root.Children = append(root.Children, n)
	}
	return root, nil
}

func (p *parser) expr() (*Node, error) {
	t := p.next()
	switch t.Type {
	case NUMBER:
		return &Node{Tag: TagNumber, Contents: t.Lexeme, Line: t.Line, Col: t.Col}, nil
	case SYMBOL:
		return &Node{Tag: TagSymbol, Contents: t.Lexeme, Line: t.Line, Col: t.Col}, nil
	case LROUND:
		return p.list(t, TagSExpr, RROUND)
	case LCURLY:
		return p.list(t, TagQExpr, RCURLY)
	default:
		return nil, p.errorAt(t, fmt.Sprintf("unexpected %s", t.Type), false)
	}
}

func (p *parser) list(open Token, tag string, close TokenType) (*Node, error) {
	n := &Node{Tag: tag, Line: open.Line, Col: open.Col}
	for {
		t := p.peek()
		switch t.Type {
		case close:
			p.next()
			return n, nil
		case EOF:
			return nil, p.errorAt(open, fmt.Sprintf("unterminated list, expected %s", close), true)
		case RROUND, RCURLY:
			return nil, p.errorAt(t, fmt.Sprintf("unexpected %s, expected %s", t.Type, close), false)
		}
		child, err := p.expr()
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, child)
	}
}

func (p *parser) peek() Token { return p.toks[p.pos] }

func (p *parser) next() Token {
	t := p.toks[p.pos]
	if t.Type != EOF {
		p.pos++
	}
	return t
}

func (p *parser) errorAt(t Token, msg string, incomplete bool) error {
	return &ParseError{Name: p.name, Line: t.Line, Col: t.Col, Msg: msg, Incomplete: incomplete}
}
