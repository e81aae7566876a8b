package engine

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"statq/domain/core"
)

// EvaluateFormula evaluates an arithmetic expression over the supplied
// placeholder bindings (Q1, Q2, ...). Supported syntax: + - * / ( ) and
// unary minus over floating point literals. This is a closed recursive
// descent evaluator: there is no path from a formula string to host code.
func EvaluateFormula(formula string, vars map[string]float64) (float64, error) {
	toks, err := tokenize(formula)
	if err != nil {
		return 0, err
	}
	p := &parser{toks: toks, vars: vars}
	v, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	if !p.done() {
		return 0, fmt.Errorf("%w: unexpected token %q", core.ErrFormulaParse, p.peek().text)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: result is not finite", core.ErrFormulaOperand)
	}
	return v, nil
}

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokIdent
	tokOp
	tokLParen
	tokRParen
	tokEOF
)

type token struct {
	kind tokenKind
	text string
	num  float64
}

func tokenize(input string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(input) {
		c := rune(input[i])
		switch {
		case unicode.IsSpace(c):
			i++
		case c == '(':
			toks = append(toks, token{kind: tokLParen, text: "("})
			i++
		case c == ')':
			toks = append(toks, token{kind: tokRParen, text: ")"})
			i++
		case c == '+' || c == '-' || c == '*' || c == '/':
			toks = append(toks, token{kind: tokOp, text: string(c)})
			i++
		case unicode.IsDigit(c) || c == '.':
			j := i
			for j < len(input) && (unicode.IsDigit(rune(input[j])) || input[j] == '.') {
				j++
			}
			f, err := strconv.ParseFloat(input[i:j], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: bad number %q", core.ErrFormulaParse, input[i:j])
			}
			toks = append(toks, token{kind: tokNumber, text: input[i:j], num: f})
			i = j
		case unicode.IsLetter(c):
			j := i
			for j < len(input) && (unicode.IsLetter(rune(input[j])) || unicode.IsDigit(rune(input[j]))) {
				j++
			}
			toks = append(toks, token{kind: tokIdent, text: input[i:j]})
			i = j
		default:
			return nil, fmt.Errorf("%w: unexpected character %q", core.ErrFormulaParse, string(c))
		}
	}
	toks = append(toks, token{kind: tokEOF})
	return toks, nil
}

type parser struct {
	toks []token
	pos  int
	vars map[string]float64
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) done() bool { return p.peek().kind == tokEOF }

// expr := term (('+' | '-') term)*
func (p *parser) parseExpr() (float64, error) {
	v, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for p.peek().kind == tokOp && (p.peek().text == "+" || p.peek().text == "-") {
		op := p.next().text
		rhs, err := p.parseTerm()
		if err != nil {
			return 0, err
		}
		if op == "+" {
			v += rhs
		} else {
			v -= rhs
		}
	}
	return v, nil
}

// term := factor (('*' | '/') factor)*
func (p *parser) parseTerm() (float64, error) {
	v, err := p.parseFactor()
	if err != nil {
		return 0, err
	}
	for p.peek().kind == tokOp && (p.peek().text == "*" || p.peek().text == "/") {
		op := p.next().text
		rhs, err := p.parseFactor()
		if err != nil {
			return 0, err
		}
		if op == "*" {
			v *= rhs
		} else {
			if rhs == 0 {
				return 0, fmt.Errorf("%w: division by zero", core.ErrFormulaOperand)
			}
			v /= rhs
		}
	}
	return v, nil
}

// factor := number | ident | '(' expr ')' | '-' factor
func (p *parser) parseFactor() (float64, error) {
	t := p.next()
	switch t.kind {
	case tokNumber:
		return t.num, nil
	case tokIdent:
		v, ok := p.vars[strings.ToUpper(t.text)]
		if !ok {
			return 0, fmt.Errorf("%w: unbound placeholder %q", core.ErrFormulaOperand, t.text)
		}
		return v, nil
	case tokLParen:
		v, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		if p.next().kind != tokRParen {
			return 0, fmt.Errorf("%w: missing closing parenthesis", core.ErrFormulaParse)
		}
		return v, nil
	case tokOp:
		if t.text == "-" {
			v, err := p.parseFactor()
			if err != nil {
				return 0, err
			}
			return -v, nil
		}
	}
	return 0, fmt.Errorf("%w: unexpected token %q", core.ErrFormulaParse, t.text)
}
