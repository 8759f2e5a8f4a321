package expr

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
)

// Parse builds an expression tree from tokens in reverse polish notation.
// Integer tokens become Numbers, operator tokens take their operands off
// the stack, and any other valid identifier becomes a Variable.
func Parse(tokens []string) (Node, error) {
	if len(tokens) == 0 {
		return nil, ErrEmptyExpression
	}
	stack := make([]Node, 0, len(tokens))
	pop := func(tok string) (Node, error) {
		if len(stack) == 0 {
			return nil, errors.Wrapf(ErrStackUnderflow, "operator %q", tok)
		}
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return n, nil
	}
	for _, tok := range tokens {
		if op, ok := unaryOps[tok]; ok {
			operand, err := pop(tok)
			if err != nil {
				return nil, err
			}
			stack = append(stack, Unary{Op: op, Operand: operand})
			continue
		}
		if op, ok := binaryOps[tok]; ok {
			right, err := pop(tok)
			if err != nil {
				return nil, err
			}
			left, err := pop(tok)
			if err != nil {
				return nil, err
			}
			if _, isVar := left.(Variable); op.IsAssignment() && !isVar {
				return nil, errors.Wrapf(ErrInvalidAssignment, "%s %s", left.Format(), tok)
			}
			stack = append(stack, Binary{Op: op, Left: left, Right: right})
			continue
		}
		if n, err := strconv.Atoi(tok); err == nil {
			stack = append(stack, Number{Value: n})
			continue
		}
		if !isIdentifier(tok) {
			return nil, errors.Wrapf(ErrInvalidToken, "%q", tok)
		}
		stack = append(stack, Variable{Name: tok})
	}
	if len(stack) != 1 {
		return nil, errors.Wrapf(ErrMalformedExpression, "%d operands left on the stack", len(stack))
	}
	return stack[0], nil
}

// ParseString splits s on white space and parses the tokens
func ParseString(s string) (Node, error) {
	return Parse(strings.Fields(s))
}

// isIdentifier reports whether tok is a letter, '_' or '$' followed by
// letters, digits, '_' or '$'
func isIdentifier(tok string) bool {
	for i, r := range tok {
		switch {
		case unicode.IsLetter(r), r == '_', r == '$':
		case unicode.IsDigit(r) && i > 0:
		default:
			return false
		}
	}
	return tok != ""
}
