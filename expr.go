package postfix

import "strings"

// Expr is an evaluated postfix expression. It is immutable and safe to share
// between goroutines. Expressions come from Eval, EvalLine and ReadAll; the
// zero Expr has an empty infix form and the value 0.
type Expr struct {
	// postfix is the canonical token string the expression was evaluated from.
	postfix string
	// n is the root of the infix tree.
	n *node
	// val is the result.
	val float64
	// line is the input line, or 0 if the expression was not read by ReadAll.
	line int
}

// Postfix returns the canonical token string the expression was evaluated
// from.
func (e *Expr) Postfix() string {
	return e.postfix
}

// Value returns the result of the expression.
func (e *Expr) Value() float64 {
	return e.val
}

// Infix returns the expression in infix form. Every subexpression is wrapped
// in parentheses except the outermost one, e.g. "( 1 + 2 ) * 4".
func (e *Expr) Infix() string {
	if e.n == nil {
		return ""
	}
	var b strings.Builder
	e.n.fmt(&b, true)
	return b.String()
}

// Line returns the 1-based input line the expression was read from, or 0.
func (e *Expr) Line() int {
	return e.line
}

// String returns the output line for the expression without the newline,
// e.g. "3 + 4 = 7".
func (e *Expr) String() string {
	return e.Infix() + " = " + FormatValue(e.val)
}
