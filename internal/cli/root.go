// Package cli provides the command-line interface for swatch.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/analysis"
	"github.com/jmylchreest/swatch/internal/config"
	"github.com/jmylchreest/swatch/internal/version"
)

// app carries the resolved configuration and logger for one invocation.
type app struct {
	cfg    config.Config
	logger hclog.Logger

	// Raw persistent flag values, applied over cfg when set.
	envFiles  []string
	verbose   bool
	quiet     bool
	lang      langValue
	format    config.OutputFormat
	preview   config.Preview
	normalise bool
	cbDeltaE  float64
}

// NewRootCmd builds the swatch command tree.
func NewRootCmd() *cobra.Command {
	a := &app{cfg: config.Default(), logger: hclog.NewNullLogger()}

	rootCmd := &cobra.Command{
		Use:   "swatch",
		Short: "Analyse, compare and generate colour palettes",
		Long: `Swatch scores colour palettes for contrast, harmony, balance, diversity,
accessibility and colour-blind safety, explains the results, and compares
palettes side by side.

It can also simulate colour vision deficiencies, generate palettes from
harmony rules, extract palettes from images and export them for other tools.`,
		Version:           version.Get().Version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	flags.BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")
	flags.StringSliceVar(&a.envFiles, "env-file", nil, "load settings from these .env files (default .env)")
	flags.Var(&a.lang, "lang", "language for suggestions, insights and names (en, ja)")
	flags.VarP(newChoice(&a.format, config.FormatText, "format", config.ParseOutputFormat), "format", "f", "output format (text, json)")
	flags.Var(newChoice(&a.preview, config.PreviewAuto, "preview", config.ParsePreview), "preview", "colour previews in text output (auto, always, never)")
	flags.BoolVar(&a.normalise, "normalise-weights", false, "divide the total score by the sum of the weights")
	flags.Float64Var(&a.cbDeltaE, "cb-delta-e", 0, "ΔE a pair must exceed to count as colour-blind safe (default 15)")

	rootCmd.SetVersionTemplate(version.Get().String() + "\n")

	rootCmd.AddCommand(
		newAnalyzeCmd(a),
		newCompareCmd(a),
		newSimulateCmd(a),
		newInspectCmd(a),
		newSuggestCmd(a),
		newGenerateCmd(a),
		newExtractCmd(a),
		newExportCmd(a),
		newNameCmd(a),
		newVersionCmd(a),
	)
	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// setup resolves configuration: defaults, then .env and environment, then flags.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.envFiles...)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("lang") {
		cfg.Lang = a.lang.tag
	}
	if flags.Changed("format") {
		cfg.Format = a.format
	}
	if flags.Changed("preview") {
		cfg.Preview = a.preview
	}
	if flags.Changed("normalise-weights") {
		cfg.NormaliseWeights = a.normalise
	}
	if flags.Changed("cb-delta-e") {
		if a.cbDeltaE <= 0 {
			return fmt.Errorf("--cb-delta-e must be positive, got %v", a.cbDeltaE)
		}
		cfg.ColourBlindDeltaE = a.cbDeltaE
	}
	a.cfg = cfg

	level := hclog.Warn
	switch {
	case a.quiet:
		level = hclog.Off
	case a.verbose:
		level = hclog.Debug
	}
	a.logger = hclog.New(&hclog.LoggerOptions{
		Name:   "swatch",
		Output: cmd.ErrOrStderr(),
		Level:  level,
	})
	a.logger.Debug("configuration resolved",
		"lang", cfg.Lang.String(),
		"format", cfg.Format,
		"preview", cfg.Preview,
		"normalise_weights", cfg.NormaliseWeights,
	)
	return nil
}

// scorer returns a scorer honouring the configured weights and threshold.
func (a *app) scorer() (*analysis.Scorer, error) {
	cfg := analysis.DefaultConfig()
	cfg.NormaliseWeights = a.cfg.NormaliseWeights
	if a.cfg.ColourBlindDeltaE > 0 {
		cfg.ColourBlindDeltaE = a.cfg.ColourBlindDeltaE
	}
	if cfg.NormaliseWeights {
		a.logger.Debug("normalising weights", "sum", cfg.Weights.Sum())
	}
	return analysis.NewScorer(cfg)
}
