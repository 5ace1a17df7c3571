package parser

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ResolveFunc returns the raw content of a same-sheet cell reference
// ("G14"): a formula string with a leading "=" when the cell holds a
// formula, otherwise its literal value. ok is false for empty cells.
type ResolveFunc func(ref string) (content string, ok bool)

// maxRefDepth caps recursive cell-reference resolution to break cycles.
const maxRefDepth = 25

// EvalFormula evaluates a restricted spreadsheet arithmetic expression:
// numbers, same-sheet cell references, the four arithmetic operators with
// parentheses, and ROUND with half-away-from-zero semantics. Anything else —
// unknown function names, cross-sheet references, malformed input — yields
// 0.0 rather than an error. Formula text originates from semi-trusted
// uploads, so this never delegates to a general-purpose evaluator.
func EvalFormula(expr string, resolve ResolveFunc) float64 {
	v, err := evalFormula(expr, resolve, 0)
	if err != nil {
		return 0
	}
	return v
}

func evalFormula(expr string, resolve ResolveFunc, depth int) (float64, error) {
	expr = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(expr), "="))
	if strings.Contains(expr, "!") {
		return 0, errors.New("cross-sheet reference")
	}
	p := &evalParser{src: expr, resolve: resolve, depth: depth}
	v, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return 0, errors.New("trailing input")
	}
	return v, nil
}

// evalParser is a recursive-descent parser over the restricted grammar:
//
//	expr   = term { ("+"|"-") term }
//	term   = factor { ("*"|"/") factor }
//	factor = ["-"] ( number | "(" expr ")" | ROUND "(" expr "," expr ")" | cellref )
type evalParser struct {
	src     string
	pos     int
	resolve ResolveFunc
	depth   int
}

func (p *evalParser) parseExpr() (float64, error) {
	v, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		p.skipSpace()
		switch p.peek() {
		case '+':
			p.pos++
			rhs, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			v += rhs
		case '-':
			p.pos++
			rhs, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			v -= rhs
		default:
			return v, nil
		}
	}
}

func (p *evalParser) parseTerm() (float64, error) {
	v, err := p.parseFactor()
	if err != nil {
		return 0, err
	}
	for {
		p.skipSpace()
		switch p.peek() {
		case '*':
			p.pos++
			rhs, err := p.parseFactor()
			if err != nil {
				return 0, err
			}
			v *= rhs
		case '/':
			p.pos++
			rhs, err := p.parseFactor()
			if err != nil {
				return 0, err
			}
			if rhs == 0 {
				return 0, errors.New("division by zero")
			}
			v /= rhs
		default:
			return v, nil
		}
	}
}

func (p *evalParser) parseFactor() (float64, error) {
	p.skipSpace()
	switch c := p.peek(); {
	case c == '-':
		p.pos++
		v, err := p.parseFactor()
		return -v, err
	case c == '+':
		p.pos++
		return p.parseFactor()
	case c == '(':
		p.pos++
		v, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		p.skipSpace()
		if p.peek() != ')' {
			return 0, errors.New("missing closing parenthesis")
		}
		p.pos++
		return v, nil
	case c >= '0' && c <= '9' || c == '.':
		return p.parseNumber()
	case isRefLetter(c) || c == '$':
		return p.parseIdent()
	default:
		return 0, errors.New("unexpected input")
	}
}

func (p *evalParser) parseNumber() (float64, error) {
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c >= '0' && c <= '9' || c == '.' {
			p.pos++
			continue
		}
		break
	}
	return strconv.ParseFloat(p.src[start:p.pos], 64)
}

// parseIdent handles both cell references and the single supported function.
func (p *evalParser) parseIdent() (float64, error) {
	start := p.pos
	for p.pos < len(p.src) && (isRefLetter(p.src[p.pos]) || p.src[p.pos] == '$') {
		p.pos++
	}
	letters := p.src[start:p.pos]
	digitStart := p.pos
	for p.pos < len(p.src) && (p.src[p.pos] >= '0' && p.src[p.pos] <= '9' || p.src[p.pos] == '$') {
		p.pos++
	}
	digits := p.src[digitStart:p.pos]

	p.skipSpace()
	if p.peek() == '(' {
		if digits != "" || !strings.EqualFold(letters, "ROUND") {
			return 0, errors.New("unsupported function")
		}
		return p.parseRound()
	}
	if digits == "" {
		return 0, errors.New("malformed reference")
	}
	return p.resolveRef(strings.ReplaceAll(letters+digits, "$", ""))
}

func (p *evalParser) parseRound() (float64, error) {
	p.pos++ // consume "("
	value, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	p.skipSpace()
	if p.peek() != ',' {
		return 0, errors.New("ROUND needs two arguments")
	}
	p.pos++
	digits, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	p.skipSpace()
	if p.peek() != ')' {
		return 0, errors.New("missing closing parenthesis")
	}
	p.pos++
	return roundHalfAway(value, int(digits)), nil
}

func (p *evalParser) resolveRef(ref string) (float64, error) {
	if p.resolve == nil {
		return 0, errors.New("no resolver")
	}
	if p.depth >= maxRefDepth {
		return 0, errors.New("reference depth exceeded")
	}
	content, ok := p.resolve(ref)
	if !ok || strings.TrimSpace(content) == "" {
		return 0, errors.New("empty reference")
	}
	if strings.HasPrefix(strings.TrimSpace(content), "=") {
		return evalFormula(content, p.resolve, p.depth+1)
	}
	return strconv.ParseFloat(strings.TrimSpace(content), 64)
}

func (p *evalParser) skipSpace() {
	for p.pos < len(p.src) && p.src[p.pos] == ' ' {
		p.pos++
	}
}

func (p *evalParser) peek() byte {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func isRefLetter(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z'
}

// roundHalfAway rounds half away from zero, matching spreadsheet ROUND
// rather than banker's rounding.
func roundHalfAway(x float64, digits int) float64 {
	scale := math.Pow(10, float64(digits))
	if x >= 0 {
		return math.Floor(x*scale+0.5) / scale
	}
	return -math.Floor(-x*scale+0.5) / scale
}
