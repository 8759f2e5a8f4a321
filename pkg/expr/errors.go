package expr

import "github.com/cockroachdb/errors"

var (
	ErrUndefinedVariable   = errors.New("expr: undefined variable")
	ErrDivideByZero        = errors.New("expr: division by zero")
	ErrInvalidAssignment   = errors.New("expr: assignment target is not a variable")
	ErrStackUnderflow      = errors.New("expr: not enough operands")
	ErrMalformedExpression = errors.New("expr: malformed expression")
	ErrEmptyExpression     = errors.New("expr: empty expression")
	ErrInvalidToken        = errors.New("expr: invalid token")
)
