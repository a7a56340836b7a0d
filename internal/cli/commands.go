// =============================================================================
// internal/cli/commands.go - CLI command definitions
// =============================================================================
package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/bryanCE/dnsgen/internal/config"
	"github.com/bryanCE/dnsgen/internal/dataset"
	"github.com/bryanCE/dnsgen/internal/generator"
	"github.com/bryanCE/dnsgen/internal/logging"
	"github.com/bryanCE/dnsgen/internal/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewGenerateCommand creates the generate subcommand
func NewGenerateCommand() *cobra.Command {
	var configFlag string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a synthetic DNS record dataset",
		Long: `Generate a fixed-size collection of plausible-looking DNS records
(A, AAAA, CNAME, MX, NS, TXT) and write it to a file.
Every run logs its seed; pass it back with --seed to reproduce the dataset.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags(), configFlag)
			if err != nil {
				return err
			}

			logger, err := logging.New(cfg.Debug)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			logger.Debug("config has been initialised", zap.Any("config", cfg))
			return runGenerate(logger, cfg)
		},
	}

	config.BindFlags(cmd.Flags())
	cmd.Flags().StringVar(&configFlag, "config", "", "Path to a dnsgen.yaml config file")

	return cmd
}

func runGenerate(logger *zap.Logger, cfg *config.Config) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
		logger.Info("no seed given, seeding from the clock", zap.Uint64("seed", seed))
	}

	gen, err := generator.New(logger, generator.NewRand(seed), cfg.GeneratorOptions())
	if err != nil {
		return err
	}

	start := time.Now()
	recs, err := gen.Generate()
	if err != nil {
		logging.LogError(logger, err, "failed to generate records",
			zap.Int("count", cfg.Count), zap.Uint64("seed", seed))
		return err
	}

	format, err := output.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	formatter := output.NewFormatter(format).WithTTL(cfg.TTL)

	err = output.WriteFile(cfg.Output, func(w io.Writer) error {
		return formatter.FormatRecords(recs, w)
	})
	if err != nil {
		logging.LogError(logger, err, "failed to write records", zap.String("output", cfg.Output))
		return err
	}

	stats := gen.Stats()
	logger.Info("Successfully generated DNS records",
		zap.Int("count", len(recs)),
		zap.String("output", cfg.Output),
		zap.String("format", string(format)),
		zap.Uint64("seed", seed),
		zap.Int("roots", stats.Roots),
		zap.Int("collisions", stats.Collisions),
		zap.Duration("took", time.Since(start)))
	return nil
}

// NewValidateCommand creates the validate subcommand
func NewValidateCommand() *cobra.Command {
	var (
		formatFlag string
		tldFlag    string
	)

	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a generated dataset for malformed records",
		Long: `Load a dataset (JSON, YAML or zone file) and check every record:
address syntax, MX priorities, NS targets, root uniqueness and secondary records.
Exits non-zero when a high-severity issue is found.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := commandLogger(cmd)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			recs, err := dataset.Load(args[0])
			if err != nil {
				logging.LogError(logger, err, "failed to load dataset", zap.String("file", args[0]))
				return err
			}

			issues := dataset.NewChecker(tldFlag).Check(recs)
			logger.Debug("dataset checked", zap.Int("records", len(recs)), zap.Int("issues", len(issues)))

			format, err := output.ParseFormat(formatFlag)
			if err != nil {
				return err
			}
			if err := output.NewFormatter(format).FormatIssues(issues, cmd.OutOrStdout()); err != nil {
				return err
			}

			if dataset.HasSeverity(issues, dataset.SeverityHigh) {
				return fmt.Errorf("%s failed validation with %d issues", args[0], len(issues))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&formatFlag, "format", "f", "table", "Output format (table, json, yaml, csv)")
	cmd.Flags().StringVar(&tldFlag, "tld", "", "Require every name to end in this label")

	return cmd
}

// NewStatsCommand creates the stats subcommand
func NewStatsCommand() *cobra.Command {
	var formatFlag string

	cmd := &cobra.Command{
		Use:   "stats [file]",
		Short: "Show the record type distribution of a dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := commandLogger(cmd)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			recs, err := dataset.Load(args[0])
			if err != nil {
				logging.LogError(logger, err, "failed to load dataset", zap.String("file", args[0]))
				return err
			}

			format, err := output.ParseFormat(formatFlag)
			if err != nil {
				return err
			}
			return output.NewFormatter(format).FormatStats(dataset.Summarize(recs), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&formatFlag, "format", "f", "table", "Output format (table, json, yaml, csv)")

	return cmd
}

// commandLogger builds a logger honoring the root --debug flag when present
func commandLogger(cmd *cobra.Command) (*zap.Logger, error) {
	debug, _ := cmd.Flags().GetBool("debug")
	return logging.New(debug)
}
