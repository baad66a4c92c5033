// Package cmd implements the livecheck command line.
package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/livecheck/pkg/config"
	"github.com/dmitrymomot/livecheck/pkg/logger"
)

// Context keys for attributes added to every record logged during a command.
type (
	commandKey struct{}
	rulesKey   struct{}
	recordKey  struct{}
)

type rootOptions struct {
	envFiles []string
	verbose  bool
}

// NewRootCmd builds the livecheck command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "livecheck",
		Short: "Validate records against declarative rule files",
		Long: `livecheck evaluates field rules and multi-field combinations
against a record and reports the resulting messages.

Settings are read from LIVECHECK_* environment variables and optional .env files.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringSliceVar(&opts.envFiles, "env", nil, "additional .env files to load")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(newValidateCmd(opts))
	return root
}

// Execute runs the command line with os.Args.
func Execute() error {
	root := NewRootCmd()
	err := root.Execute()
	if err != nil && !errors.Is(err, errValidationFailed) {
		printError(root, err)
	}
	return err
}

func (o *rootOptions) setup(cmd *cobra.Command) (config.Config, *slog.Logger, error) {
	cfg, err := config.FromEnv(o.envFiles...)
	if err != nil {
		return cfg, nil, fmt.Errorf("load configuration: %w", err)
	}

	logOpts := append(cfg.LoggerOptions(),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithContextValue("command", commandKey{}),
		logger.WithContextValue("rules", rulesKey{}),
		logger.WithContextValue("record", recordKey{}),
	)
	if o.verbose {
		logOpts = append(logOpts, logger.WithLevel(slog.LevelDebug))
	}
	return cfg, logger.New(logOpts...), nil
}

func printError(cmd *cobra.Command, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
}
