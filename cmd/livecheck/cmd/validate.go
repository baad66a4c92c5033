package cmd

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/livecheck/pkg/logger"
	"github.com/dmitrymomot/livecheck/pkg/observable"
	"github.com/dmitrymomot/livecheck/pkg/ruleset"
	"github.com/dmitrymomot/livecheck/pkg/validation"
)

// errValidationFailed is returned when the record has messages.
// The messages themselves were already printed.
var errValidationFailed = errors.New("validation failed")

type validateOptions struct {
	*rootOptions
	rules  string
	record string
}

func newValidateCmd(root *rootOptions) *cobra.Command {
	opts := &validateOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a YAML record against a rule file",
		Long: `Loads the rule file and the record, runs a full validation pass and
prints one "field: message" line per failing field, sorted by field.

Exits with a non-zero status when any message is reported.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.rules, "rules", "r", "", "rule file (YAML)")
	cmd.Flags().StringVarP(&opts.record, "record", "f", "", "record file (YAML mapping of field to value)")
	_ = cmd.MarkFlagRequired("rules")
	_ = cmd.MarkFlagRequired("record")

	return cmd
}

func runValidate(cmd *cobra.Command, opts *validateOptions) error {
	cfg, log, err := opts.setup(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = context.WithValue(ctx, commandKey{}, cmd.Name())
	ctx = context.WithValue(ctx, rulesKey{}, opts.rules)
	ctx = context.WithValue(ctx, recordKey{}, opts.record)

	rs, err := ruleset.Load(opts.rules)
	if err != nil {
		return err
	}
	log.DebugContext(ctx, "rules loaded", logger.Count(len(rs.Rules)+len(rs.Combinations)))

	values, err := loadRecord(opts.record)
	if err != nil {
		return err
	}
	log.DebugContext(ctx, "record loaded", logger.Count(len(values)))

	rec := observable.NewRecord(values)
	v := validation.New(rec, cfg.Options(log)...)
	defer v.Close()

	if err := ruleset.Apply(rs, v); err != nil {
		return err
	}
	v.Validate()

	msgs := v.Messages()
	log.DebugContext(ctx, "validation finished", logger.Count(len(msgs)))
	out := cmd.OutOrStdout()
	for _, field := range slices.Sorted(maps.Keys(msgs)) {
		fmt.Fprintf(out, "%s: %s\n", field, msgs[field])
	}

	if len(msgs) > 0 {
		return errValidationFailed
	}
	fmt.Fprintln(out, "ok")
	return nil
}

func loadRecord(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read record: %w", err)
	}
	values := make(map[string]any)
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("parse record %s: %w", path, err)
	}
	return values, nil
}
