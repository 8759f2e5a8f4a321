package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/scottcagno/lphash/pkg/console"
	"github.com/scottcagno/lphash/pkg/hashmap/linear"
)

const metricsNamespace = "lphash"

func (a *app) consoleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "console",
		Short: "Run commands against a hash table read from standard input",
		Long: `Reads one command per line until end of input or exit:

  hash <key>            print the hash of key
  index <key>           print the home slot of key
  contains <key>        print true if key is present
  add|insert <key> [v]  insert key with value v (default: key)
  delete|remove <key>   remove key if present
  find <key>            print the value of key
  print                 print every slot of the table
  size                  print the entry count and capacity
  clear                 replace the table with an empty one
  eval <rpn tokens>     evaluate an RPN expression
  stats                 print table metrics (when enabled)
  end|exit|quit         stop`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := []console.Option{
				console.WithPrompt(a.cfg.Prompt),
				console.WithCapacity(a.cfg.Capacity),
				console.WithLogger(a.log),
			}
			if a.cfg.Metrics {
				reg := prometheus.NewRegistry()
				m, err := linear.NewMetrics(reg, metricsNamespace)
				if err != nil {
					return err
				}
				opts = append(opts, console.WithMetrics(m, reg))
			}
			return console.New(cmd.InOrStdin(), cmd.OutOrStdout(), opts...).Run()
		},
	}
}
