package postfix

import "strconv"

// InvalidCharacterError indicates a rune that cannot appear in a postfix
// expression. It implements InputError.
type InvalidCharacterError struct {
	// Char is the offending rune.
	Char rune
	// Col is the 1-based column of Char in runes.
	Col int
}

func (err *InvalidCharacterError) Error() string {
	return errpos(err.Col, "invalid character "+strconv.QuoteRune(err.Char))
}

func (err *InvalidCharacterError) Pos() int {
	return err.Col
}

// ParseError indicates a numeric token that is not a valid number, e.g.
// "1.2.3" or ".". It implements InputError.
type ParseError struct {
	// Text is the token that failed to parse.
	Text string
	// Col is the 1-based index of the token in the token string.
	Col int
	// Err is the error from strconv.
	Err error
}

func (err *ParseError) Error() string {
	return errpos(err.Col, "invalid number "+strconv.Quote(err.Text))
}

func (err *ParseError) Pos() int {
	return err.Col
}

func (err *ParseError) Unwrap() error {
	return err.Err
}

// Reasons given by StructuralError.
const (
	ReasonInsufficient = "insufficient operands"
	ReasonMalformed    = "malformed expression: leftover or insufficient operands"
)

// StructuralError indicates a mismatch between the numbers of operators and
// operands. It implements InputError.
type StructuralError struct {
	// Col is the 1-based index of the token at which the mismatch was found.
	// For a leftover operand, it is one past the last token.
	Col int
	// Token is the operator that lacked operands, or "" when the expression
	// ended with the wrong number of values.
	Token string
	// Reason is ReasonInsufficient or ReasonMalformed.
	Reason string
	// Len is the number of values on the stack when the error occurred.
	Len int
}

func (err *StructuralError) Error() string {
	if err.Token == "" {
		return errpos(err.Col, err.Reason+" ("+strconv.Itoa(err.Len)+" values)")
	}
	return errpos(err.Col, err.Reason+" for "+strconv.Quote(err.Token))
}

func (err *StructuralError) Pos() int {
	return err.Col
}

// DivisionError indicates a division by zero. It is only produced when
// evaluating with StrictDivision. It implements InputError.
type DivisionError struct {
	// Col is the 1-based index of the division operator.
	Col int
	// Dividend is the left operand of the division.
	Dividend float64
}

func (err *DivisionError) Error() string {
	return errpos(err.Col, "division of "+FormatValue(err.Dividend)+" by zero")
}

func (err *DivisionError) Pos() int {
	return err.Col
}

// LineError attaches an input line number to an error from a batch.
type LineError struct {
	// Line is the 1-based line number.
	Line int
	// Err is the error on that line.
	Err error
}

func (err *LineError) Error() string {
	return "line " + strconv.Itoa(err.Line) + ": " + err.Err.Error()
}

func (err *LineError) Unwrap() error {
	return err.Err
}

// IOError is a failure to read or write a batch of expressions.
type IOError struct {
	// Op is the operation that failed, e.g. "open", "read", "create", "write".
	Op string
	// Path is the file involved, if known.
	Path string
	// Err is the underlying error.
	Err error
}

func (err *IOError) Error() string {
	if err.Path == "" {
		return err.Op + ": " + err.Err.Error()
	}
	return err.Op + " " + err.Path + ": " + err.Err.Error()
}

func (err *IOError) Unwrap() error {
	return err.Err
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error. For InvalidCharacterError it is
	// a rune column; for the others it is a token index.
	Pos() int
}

var (
	_ InputError = (*InvalidCharacterError)(nil)
	_ InputError = (*ParseError)(nil)
	_ InputError = (*StructuralError)(nil)
	_ InputError = (*DivisionError)(nil)
)
