package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexshd/langtour"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

// app carries state shared by every subcommand.
type app struct {
	// Global flags
	configPath string
	verbose    bool

	cfg      *langtour.Config
	registry *langtour.Registry
	logger   *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{registry: langtour.DefaultRegistry()}

	root := &cobra.Command{
		Use:   "langtour",
		Short: "A runnable tour of basic language features",
		Long: `langtour runs small, self-contained demonstrations of language features:
loops, functions, sequences, generics, enumerations, objects, tuples and
optional values.

Run without arguments to execute the configured demos (by default only the
entry-point demo, "main").`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConfigured(cmd)
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "langtour.yaml", "Path to YAML config")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		a.runCmd(),
		a.demoCmd(),
		a.listCmd(),
		a.explainCmd(),
		a.sizeCmd(),
		a.initConfigCmd(),
	)
	return root
}

// setup loads config and installs the tint logger on stderr.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := langtour.LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	// Demo names are checked only by commands that run them, so a bad
	// config can still be listed, explained or rewritten with init-config.
	level, levelErr := cfg.SlogLevel()
	if levelErr != nil {
		level = slog.LevelInfo
	}
	if a.verbose {
		level = slog.LevelDebug
	}

	a.cfg = cfg
	a.logger = slog.New(tint.NewHandler(cmd.ErrOrStderr(), &tint.Options{
		Level:      level,
		TimeFormat: cfg.Logging.TimeFormat,
		NoColor:    cfg.Logging.NoColor,
	}))
	if levelErr != nil {
		a.logger.Warn("falling back to info level", "err", levelErr)
	}
	a.logger.Debug("config loaded", "path", a.configPath, "demos", cfg.Demos)
	return nil
}

// runConfigured validates the config against the registry and runs its demos.
func (a *app) runConfigured(cmd *cobra.Command) error {
	if err := a.cfg.Validate(a.registry); err != nil {
		return err
	}
	return a.runDemos(cmd, a.cfg.Demos)
}

func (a *app) runDemos(cmd *cobra.Command, names []string) error {
	tour := langtour.NewTour(a.registry, a.logger)
	return tour.Run(cmd.Context(), cmd.OutOrStdout(), names...)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
