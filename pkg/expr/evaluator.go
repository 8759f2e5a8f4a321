package expr

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/scottcagno/lphash/pkg/hashmap/linear"
)

// Result is the outcome of evaluating one expression
type Result struct {
	Expr  string
	Value int
}

// String renders the result as "<rpn> = <value>"
func (r Result) String() string {
	return fmt.Sprintf("%s = %d", r.Expr, r.Value)
}

// Evaluator evaluates expressions against a symbol table that persists
// between calls, so a variable assigned in one expression can be read
// in the next.
type Evaluator struct {
	symbols *linear.Table[string, int]
	log     *zap.Logger
}

// NewEvaluator returns an Evaluator using symbols as its symbol table. A
// nil symbols gets a fresh table and a nil logger discards everything.
func NewEvaluator(symbols *linear.Table[string, int], logger *zap.Logger) *Evaluator {
	if symbols == nil {
		symbols = linear.New[string, int](linear.DefaultCapacity)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Evaluator{
		symbols: symbols,
		log:     logger,
	}
}

// Symbols returns the symbol table
func (e *Evaluator) Symbols() *linear.Table[string, int] {
	return e.symbols
}

// Eval parses line as an RPN expression and evaluates it
func (e *Evaluator) Eval(line string) (Result, error) {
	node, err := ParseString(line)
	if err != nil {
		return Result{}, err
	}
	return e.EvalNode(node)
}

// EvalNode evaluates an already parsed expression
func (e *Evaluator) EvalNode(node Node) (Result, error) {
	v, err := node.Eval(e.symbols)
	if err != nil {
		return Result{}, err
	}
	res := Result{Expr: node.Format(), Value: v}
	e.log.Debug("expression evaluated",
		zap.String("expr", res.Expr),
		zap.Int("value", res.Value),
		zap.Int("symbols", e.symbols.Len()))
	return res, nil
}
