package calc

import (
	"errors"
	"math"
	"strconv"
)

// expression = term { ('+' | '-') term }
// term = factor { ('*' | '/') factor }
// factor = ('+' | '-') factor
//        | '(' expression ')' [ '^' factor ]
//        | number [ '^' factor ]
//        | funcname '(' expression ')' [ '^' factor ]
//        | funcname factor [ '^' factor ]

// parser evaluates an expression while parsing it.
type parser struct {
	c *cursor
	// depth is the number of factors currently being parsed.
	depth int
	// max is the depth at which parsing fails.
	max int
}

// eval evaluates src in full. The result is 0 if there is an error.
func eval(src string, maxDepth int) (float64, error) {
	p := parser{c: newCursor(src), max: maxDepth}
	x, err := p.expression()
	if err != nil {
		return 0, err
	}
	p.c.skip()
	if !p.c.done() {
		return 0, &SyntaxError{Col: p.c.col(), Kind: Trailing, Text: p.c.current()}
	}
	return x, nil
}

// expression parses and evaluates a sum of terms.
func (p *parser) expression() (float64, error) {
	x, err := p.term()
	if err != nil {
		return 0, err
	}
	for {
		switch {
		case p.c.eat('+'):
			y, err := p.term()
			if err != nil {
				return 0, err
			}
			x += y
		case p.c.eat('-'):
			y, err := p.term()
			if err != nil {
				return 0, err
			}
			x -= y
		default:
			return x, nil
		}
	}
}

// term parses and evaluates a product of factors.
func (p *parser) term() (float64, error) {
	x, err := p.factor()
	if err != nil {
		return 0, err
	}
	for {
		switch {
		case p.c.eat('*'):
			y, err := p.factor()
			if err != nil {
				return 0, err
			}
			x *= y
		case p.c.eat('/'):
			y, err := p.factor()
			if err != nil {
				return 0, err
			}
			x /= y
		default:
			return x, nil
		}
	}
}

// factor parses and evaluates a signed factor, including any exponent.
func (p *parser) factor() (float64, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.max {
		p.c.skip()
		return 0, &DepthError{Col: p.c.col(), Max: p.max}
	}

	if p.c.eat('+') {
		return p.factor()
	}
	if p.c.eat('-') {
		x, err := p.factor()
		if err != nil {
			return 0, err
		}
		return -x, nil
	}

	x, err := p.primary()
	if err != nil {
		return 0, err
	}
	if p.c.eat('^') {
		y, err := p.factor()
		if err != nil {
			return 0, err
		}
		x = math.Pow(x, y)
	}
	return x, nil
}

// primary parses and evaluates a parenthesized expression, a number, or a
// function application.
func (p *parser) primary() (float64, error) {
	c := p.c
	if c.eat('(') {
		x, err := p.expression()
		if err != nil {
			return 0, err
		}
		if !c.eat(')') {
			return 0, &SyntaxError{Col: c.col(), Kind: Unclosed, Text: c.current()}
		}
		return x, nil
	}
	// eat has skipped any spaces, so the cursor is at the start of the token.
	switch {
	case isNumByte(c.ch):
		col := c.col()
		s := c.scanNum()
		return parseNum(s, col)
	case isIdentByte(c.ch):
		name := c.scanIdent()
		fn := LookupFunc(name)
		var x float64
		var err error
		if c.eat('(') {
			x, err = p.expression()
			if err != nil {
				return 0, err
			}
			if !c.eat(')') {
				return 0, &SyntaxError{Col: c.col(), Kind: Unclosed, Text: c.current(), Func: name}
			}
		} else {
			x, err = p.factor()
			if err != nil {
				return 0, err
			}
		}
		return fn.Apply(x), nil
	default:
		return 0, &SyntaxError{Col: c.col(), Kind: Unexpected, Text: c.current()}
	}
}

// parseNum converts a run of digits and dots to a number. Out-of-range
// literals become infinities rather than errors.
func parseNum(s string, col int) (float64, error) {
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return x, nil
		}
		return 0, &NumberError{Col: col, Text: s, Err: err}
	}
	return x, nil
}
