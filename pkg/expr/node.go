package expr

import (
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/scottcagno/lphash/pkg/hashmap/linear"
)

// SymbolTable maps variable names to their last assigned value.
// *linear.Table[string, int] satisfies it.
type SymbolTable interface {
	Find(name string) (int, error)
	Insert(name string, value int) error
}

var _ SymbolTable = (*linear.Table[string, int])(nil)

// Node is a node in an expression tree. The concrete types are Number,
// Variable, Unary and Binary.
type Node interface {
	// Eval evaluates the sub-tree rooted at this node
	Eval(st SymbolTable) (int, error)
	// Format formats the sub-tree rooted at this node in RPN
	Format() string
}

// Number is an integer literal
type Number struct {
	Value int
}

func (n Number) Eval(SymbolTable) (int, error) {
	return n.Value, nil
}

func (n Number) Format() string {
	return strconv.Itoa(n.Value)
}

// Variable is a reference to a named value in the symbol table
type Variable struct {
	Name string
}

func (v Variable) Eval(st SymbolTable) (int, error) {
	val, err := st.Find(v.Name)
	if err != nil {
		if errors.Is(err, linear.ErrKeyNotFound) {
			return 0, errors.Mark(errors.Wrapf(err, "variable %s", v.Name), ErrUndefinedVariable)
		}
		return 0, err
	}
	return val, nil
}

func (v Variable) Format() string {
	return v.Name
}

// Unary applies a one operand operator
type Unary struct {
	Op      UnaryOp
	Operand Node
}

func (u Unary) Eval(st SymbolTable) (int, error) {
	x, err := u.Operand.Eval(st)
	if err != nil {
		return 0, err
	}
	switch u.Op {
	case OpNegate:
		return -x, nil
	case OpIncrement:
		return x + 1, nil
	}
	return 0, errors.Wrapf(ErrInvalidToken, "unary operator %q", string(u.Op))
}

func (u Unary) Format() string {
	return u.Operand.Format() + " " + string(u.Op)
}

// Binary applies a two operand operator. Assignment operators store
// their result in the variable on the left.
type Binary struct {
	Op    BinaryOp
	Left  Node
	Right Node
}

func (b Binary) Eval(st SymbolTable) (int, error) {
	if b.Op.IsAssignment() {
		return b.assign(st)
	}
	x, err := b.Left.Eval(st)
	if err != nil {
		return 0, err
	}
	y, err := b.Right.Eval(st)
	if err != nil {
		return 0, err
	}
	return apply(b.Op, x, y)
}

// assign evaluates =, +=, -=, *=, /= and %=. The stored value is read
// back from the symbol table and returned.
func (b Binary) assign(st SymbolTable) (int, error) {
	v, ok := b.Left.(Variable)
	if !ok {
		return 0, errors.Wrapf(ErrInvalidAssignment, "%s %s", b.Left.Format(), string(b.Op))
	}
	y, err := b.Right.Eval(st)
	if err != nil {
		return 0, err
	}
	if op := b.Op.arithmetic(); op != OpAssign {
		x, err := v.Eval(st)
		if err != nil {
			return 0, err
		}
		if y, err = apply(op, x, y); err != nil {
			return 0, err
		}
	}
	if err := st.Insert(v.Name, y); err != nil {
		return 0, err
	}
	return v.Eval(st)
}

func (b Binary) Format() string {
	return b.Left.Format() + " " + b.Right.Format() + " " + string(b.Op)
}

func apply(op BinaryOp, x, y int) (int, error) {
	switch op {
	case OpAdd:
		return x + y, nil
	case OpSubtract:
		return x - y, nil
	case OpMultiply:
		return x * y, nil
	case OpDivide:
		if y == 0 {
			return 0, errors.Wrapf(ErrDivideByZero, "%d / %d", x, y)
		}
		return x / y, nil
	case OpModulo:
		if y == 0 {
			return 0, errors.Wrapf(ErrDivideByZero, "%d %% %d", x, y)
		}
		return x % y, nil
	}
	return 0, errors.Wrapf(ErrInvalidToken, "binary operator %q", string(op))
}
