// Package cli defines the hexmean command tree. The root command owns
// global flags and the configuration/logging initialisation chain;
// subcommands receive their dependencies through the command context.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/turtacn/hexmean/internal/config"
	"github.com/turtacn/hexmean/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/hexmean/pkg/errors"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// rootOptions holds global CLI flags.
type rootOptions struct {
	configPath string
	logLevel   string
	logFormat  string
}

// cliContext carries initialized dependencies through the command tree.
type cliContext struct {
	cfg    *config.Config
	logger logging.Logger
}

// cliContextKey is the context key for cliContext.
type cliContextKey struct{}

// NewRootCommand creates the root cobra command with all global flags and
// subcommands.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "hexmean",
		Short: "Aggregate scored point features into H3 hexagon cells",
		Long: "hexmean assigns each point of a scored point layer to an H3 hexagonal\n" +
			"cell at a chosen resolution, averages the score per cell, and writes the\n" +
			"cell polygons with their mean scores to an output file.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildDate),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initContext(cmd, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "config file path (optional; HEXMEAN_* env vars always apply)")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVar(&opts.logFormat, "log-format", "", "log format (console, json)")

	cmd.AddCommand(
		newAggregateCmd(),
		newInspectCmd(),
	)

	return cmd
}

// initContext loads configuration, applies flag overrides, builds the
// logger, and stores both in the command context for subcommands.
func initContext(cmd *cobra.Command, opts *rootOptions) error {
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.Load(opts.configPath)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if opts.logFormat != "" {
		cfg.Log.Format = opts.logFormat
	}

	logger, err := logging.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	ctx := context.WithValue(cmd.Context(), cliContextKey{}, &cliContext{cfg: cfg, logger: logger})
	cmd.SetContext(ctx)
	return nil
}

// getCLIContext extracts the initialized dependencies from the command
// context.
func getCLIContext(cmd *cobra.Command) (*cliContext, error) {
	cc, ok := cmd.Context().Value(cliContextKey{}).(*cliContext)
	if !ok || cc == nil {
		return nil, errors.Internal("CLI context not initialized")
	}
	return cc, nil
}

// Execute runs the root command. It is the single entry point used by
// cmd/hexmean/main.go.
func Execute() error {
	return NewRootCommand().Execute()
}
