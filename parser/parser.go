package parser

import (
	"fmt"

	"github.com/client9/termrw/core"
)

// ParseError reports a malformed-source failure with its position.
type ParseError struct {
	Pos     int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %d: %s", e.Pos, e.Message)
}

// Parser recursive-descends over a token stream to build core.Expr trees.
type Parser struct {
	lex  *Lexer
	cur  Token
}

func NewParser(src string) *Parser {
	p := &Parser{lex: NewLexer(src)}
	p.advance()
	return p
}

func (p *Parser) advance() {
	p.cur = p.lex.Next()
}

// Parse parses exactly one expression from src.
func Parse(src string) (core.Expr, error) {
	p := NewParser(src)
	if p.cur.Type == EOF {
		return nil, &ParseError{Pos: p.cur.Pos, Message: "empty input"}
	}
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return e, nil
}

// ParseAll parses a sequence of top-level expressions from src.
func ParseAll(src string) ([]core.Expr, error) {
	p := NewParser(src)
	var exprs []core.Expr
	for p.cur.Type != EOF {
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
	}
	return exprs, nil
}

func (p *Parser) parseExpr() (core.Expr, error) {
	switch p.cur.Type {
	case LPAREN:
		return p.parseList()
	case INTEGER:
		n, ok := core.NewIntFromString(p.cur.Value)
		if !ok {
			return nil, &ParseError{Pos: p.cur.Pos, Message: "invalid integer " + p.cur.Value}
		}
		p.advance()
		return n, nil
	case REAL:
		var f float64
		if _, err := fmt.Sscanf(p.cur.Value, "%g", &f); err != nil {
			return nil, &ParseError{Pos: p.cur.Pos, Message: "invalid real " + p.cur.Value}
		}
		p.advance()
		return core.NewReal(f), nil
	case SYMBOL:
		s := core.Sym(p.cur.Value)
		p.advance()
		return s, nil
	case STRING:
		s := core.Str(p.cur.Value)
		p.advance()
		return s, nil
	case EOF:
		return nil, &ParseError{Pos: p.cur.Pos, Message: "unexpected end of input"}
	default:
		return nil, &ParseError{Pos: p.cur.Pos, Message: "unexpected token " + p.cur.String()}
	}
}

func (p *Parser) parseList() (core.Expr, error) {
	openPos := p.cur.Pos
	p.advance() // consume '('
	var elements []core.Expr
	for p.cur.Type != RPAREN {
		if p.cur.Type == EOF {
			return nil, &ParseError{Pos: openPos, Message: "unterminated list"}
		}
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		elements = append(elements, e)
	}
	p.advance() // consume ')'
	if len(elements) == 0 {
		return nil, &ParseError{Pos: openPos, Message: "empty list is not a valid expression"}
	}
	return core.NewListFromSlice(elements), nil
}
