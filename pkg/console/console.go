package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"go.uber.org/zap"

	"github.com/scottcagno/lphash/pkg/expr"
	"github.com/scottcagno/lphash/pkg/hashmap/linear"
)

const DefaultPrompt = "Command: "

// Console reads commands one line at a time and runs them against a
// string table and an expression evaluator
type Console struct {
	in       *bufio.Scanner
	out      io.Writer
	prompt   string
	capacity int
	log      *zap.Logger
	metrics  *linear.Metrics
	gatherer prometheus.Gatherer
	table    *linear.Table[string, string]
	eval     *expr.Evaluator
}

// Option configures a Console in New
type Option func(*Console)

// WithPrompt sets the text printed before every line is read
func WithPrompt(prompt string) Option {
	return func(c *Console) {
		c.prompt = prompt
	}
}

// WithCapacity sets the initial capacity of the tables the console creates
func WithCapacity(capacity int) Option {
	return func(c *Console) {
		c.capacity = capacity
	}
}

// WithLogger sets the logger used by the console and its tables
func WithLogger(logger *zap.Logger) Option {
	return func(c *Console) {
		c.log = logger
	}
}

// WithMetrics instruments the console table with m. The stats command
// prints whatever g gathers.
func WithMetrics(m *linear.Metrics, g prometheus.Gatherer) Option {
	return func(c *Console) {
		c.metrics = m
		c.gatherer = g
	}
}

// New returns a Console reading commands from in and writing to out
func New(in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		in:       bufio.NewScanner(in),
		out:      out,
		prompt:   DefaultPrompt,
		capacity: linear.DefaultCapacity,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.table = c.newTable()
	c.eval = expr.NewEvaluator(linear.New[string, int](c.capacity, linear.WithLogger(c.log)), c.log)
	return c
}

func (c *Console) newTable() *linear.Table[string, string] {
	return linear.New[string, string](c.capacity, linear.WithLogger(c.log), linear.WithMetrics(c.metrics))
}

// Table returns the table the console is currently operating on
func (c *Console) Table() *linear.Table[string, string] {
	return c.table
}

// Run prints the prompt, reads a line and executes it until the input
// ends or an exit command is read. Only read and write failures are
// returned; command failures are reported on the output.
func (c *Console) Run() error {
	for {
		if _, err := io.WriteString(c.out, c.prompt); err != nil {
			return err
		}
		if !c.in.Scan() {
			return c.in.Err()
		}
		stop, err := c.Exec(c.in.Text())
		if err != nil || stop {
			return err
		}
	}
}

// Exec runs a single command line. It reports whether the line asked
// the console to stop.
func (c *Console) Exec(line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "hash":
		return false, c.withKey(cmd, args, func(key string) error {
			return c.printf("%s = %d\n", key, c.table.Hash(key))
		})
	case "index":
		return false, c.withKey(cmd, args, func(key string) error {
			return c.printf("%s = %d\n", key, c.table.Index(key))
		})
	case "contains":
		return false, c.withKey(cmd, args, func(key string) error {
			return c.printf("%t\n", c.table.Contains(key))
		})
	case "add", "insert":
		return false, c.withKey(cmd, args, func(key string) error {
			value := key
			if len(args) > 1 {
				value = strings.Join(args[1:], " ")
			}
			if err := c.table.Insert(key, value); err != nil {
				return c.fail(cmd, err)
			}
			return nil
		})
	case "delete", "remove":
		return false, c.withKey(cmd, args, func(key string) error {
			if err := c.table.Delete(key); err != nil {
				return c.fail(cmd, err)
			}
			return nil
		})
	case "find":
		return false, c.withKey(cmd, args, func(key string) error {
			value, ok := c.table.Get(key)
			if !ok {
				return c.printf("%s not found\n", key)
			}
			return c.printf("%s = %s\n", key, value)
		})
	case "print":
		return false, c.table.Dump(c.out)
	case "size":
		return false, c.printf("size=%d capacity=%d\n", c.table.Len(), c.table.Cap())
	case "clear":
		c.table = c.newTable()
		return false, nil
	case "eval":
		if len(args) == 0 {
			return false, c.printf("usage: eval <rpn tokens>\n")
		}
		res, err := c.eval.Eval(strings.Join(args, " "))
		if err != nil {
			return false, c.fail(cmd, err)
		}
		return false, c.printf("%s\n", res)
	case "stats":
		return false, c.stats()
	case "end", "exit", "quit":
		return true, nil
	}
	c.log.Warn("invalid command", zap.String("command", cmd))
	return false, c.printf("Invalid command: %s\n", cmd)
}

// withKey runs fn with the first argument, or prints a usage line when
// there is none
func (c *Console) withKey(cmd string, args []string, fn func(key string) error) error {
	if len(args) == 0 {
		return c.printf("usage: %s <key>\n", cmd)
	}
	return fn(args[0])
}

// fail reports a command failure on the output and the log
func (c *Console) fail(cmd string, err error) error {
	c.log.Warn("command failed", zap.String("command", cmd), zap.Error(err))
	return c.printf("error: %v\n", err)
}

func (c *Console) stats() error {
	if c.gatherer == nil {
		return c.printf("metrics are disabled\n")
	}
	families, err := c.gatherer.Gather()
	if err != nil {
		return c.fail("stats", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(c.out, mf); err != nil {
			return err
		}
	}
	return nil
}

func (c *Console) printf(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(c.out, format, args...)
	return err
}
