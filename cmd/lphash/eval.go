package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scottcagno/lphash/pkg/expr"
	"github.com/scottcagno/lphash/pkg/hashmap/linear"
)

func (a *app) evalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <tokens...>",
		Short: "Evaluate one expression in reverse polish notation",
		Long: `Evaluates an RPN expression and prints it with its value, e.g.

  lphash eval x 5 = ++ 3 2 '*' +

Quote '*' so the shell does not expand it, and put negative literals
after -- so they are not read as flags.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			symbols := linear.New[string, int](a.cfg.Capacity, linear.WithLogger(a.log))
			res, err := expr.NewEvaluator(symbols, a.log).Eval(strings.Join(args, " "))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), res)
			return err
		},
	}
}
