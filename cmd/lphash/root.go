package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/scottcagno/lphash/pkg/config"
	"github.com/scottcagno/lphash/pkg/logging"
)

var version = "dev"

// app holds the flag values and the state built from them before any
// subcommand runs
type app struct {
	cfgPath  string
	capacity int
	logLevel string

	cfg *config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:                "lphash",
		Short:              "Linear probing hash table console and RPN evaluator",
		SilenceUsage:       true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
	}
	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgPath, "config", "", "path to a TOML config file")
	flags.IntVar(&a.capacity, "capacity", 0, "initial table capacity (overrides the config file)")
	flags.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (overrides the config file)")

	root.AddCommand(
		a.consoleCmd(),
		a.evalCmd(),
		versionCmd(),
	)
	return root
}

// setup loads the config, applies any flags that were set on the command
// line and builds the logger
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("capacity") {
		cfg.Capacity = a.capacity
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	lg, err := logging.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, lg
	a.log.Debug("configuration loaded",
		zap.String("path", a.cfgPath),
		zap.Int("capacity", cfg.Capacity),
		zap.String("log_level", cfg.LogLevel),
		zap.Bool("metrics", cfg.Metrics))
	return nil
}

func (a *app) teardown(*cobra.Command, []string) error {
	if a.log != nil {
		_ = a.log.Sync()
	}
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := cmd.OutOrStdout().Write([]byte("lphash " + version + "\n"))
			return err
		},
	}
}
