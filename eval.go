package postfix

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Eval evaluates a canonical postfix token string, as produced by Tokenize.
// Tokens are separated by whitespace; each is an operator or a number made of
// digits and decimal points. For each operator, the most recently pushed value
// is the right operand and the one below it is the left.
//
// A number that does not parse yields a *ParseError. An operator without two
// operands, or an expression that does not reduce to exactly one value, yields
// a *StructuralError. Division follows IEEE-754 unless StrictDivision is given.
func Eval(src string, opts ...EvalOption) (*Expr, error) {
	p := newEvalctx(opts)
	return eval(src, &p)
}

// EvalLine tokenizes one raw input line and evaluates it. A blank line is a
// *StructuralError, since it has no value.
func EvalLine(line string, opts ...EvalOption) (*Expr, error) {
	src, err := Tokenize(line)
	if err != nil {
		return nil, err
	}
	return Eval(src, opts...)
}

func eval(src string, p *evalctx) (*Expr, error) {
	toks := strings.Fields(src)
	m := borrowMachine()
	defer m.release()
	for i, tok := range toks {
		col := i + 1
		k := binop(tok)
		if k == nodeNone {
			v, err := parseNum(tok, col)
			if err != nil {
				return nil, err
			}
			m.push(v, &node{kind: nodeNum, name: tok})
			continue
		}
		r, rn, ok := m.pop()
		if !ok {
			return nil, &StructuralError{Col: col, Token: tok, Reason: ReasonInsufficient}
		}
		l, ln, ok := m.pop()
		if !ok {
			return nil, &StructuralError{Col: col, Token: tok, Reason: ReasonInsufficient, Len: 1}
		}
		v, err := apply(k, l, r, col, p.strict)
		if err != nil {
			return nil, err
		}
		tracer().Debugf("%d: %g %s %g = %g", col, l, tok, r, v)
		m.push(v, &node{kind: k, left: ln, right: rn})
	}
	if m.size() != 1 {
		return nil, &StructuralError{Col: len(toks) + 1, Reason: ReasonMalformed, Len: m.size()}
	}
	v, n, _ := m.pop()
	return &Expr{postfix: strings.Join(toks, " "), n: n, val: v}, nil
}

// parseNum parses a numeric token. Overflow is not an error; the result is
// infinite, as it would be had the value been computed.
func parseNum(tok string, col int) (float64, error) {
	if tok == "" || strings.Trim(tok, "0123456789.") != "" {
		return 0, &ParseError{Text: tok, Col: col, Err: strconv.ErrSyntax}
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return v, nil
		}
		return 0, &ParseError{Text: tok, Col: col, Err: err}
	}
	return v, nil
}

// apply computes l op r.
func apply(k nodeKind, l, r float64, col int, strict bool) (float64, error) {
	switch k {
	case nodeAdd:
		return l + r, nil
	case nodeSub:
		return l - r, nil
	case nodeMul:
		return l * r, nil
	case nodeDiv:
		if strict && r == 0 {
			return 0, &DivisionError{Col: col, Dividend: l}
		}
		return l / r, nil
	default:
		panic("postfix: apply on non-operator node " + k.String())
	}
}

// FormatValue formats a value the way output lines show it: the shortest
// decimal that reads back as v, never in exponent form. Infinities are "inf"
// and "-inf", and NaN is "NaN".
func FormatValue(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
