// Package postfix evaluates postfix (reverse Polish) arithmetic expressions
// and prints them back in infix form.
//
// Input lines are filtered by Tokenize into a canonical token string: numbers
// made of digits and decimal points, the operators + - * /, and single spaces
// between them. "34+" and " 3 4  + " both become "34 +" and "3 4 +". There is
// no unary minus; "-3" is a subtraction missing its operands.
//
// Eval runs a canonical token string on a value stack and a parallel stack of
// infix subexpressions, so "5 1 2 + 4 * + 3 -" evaluates to 14 and prints as
// "( 5 + ( ( 1 + 2 ) * 4 ) ) - 3". ReadAll and WriteAll apply the same to
// whole files, and Sort orders the results by value.
//
package postfix
