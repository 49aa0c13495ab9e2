package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/jadenpxrk/pacont/internal/analyze"
	"github.com/jadenpxrk/pacont/internal/concat"
	"github.com/jadenpxrk/pacont/internal/logging"
	"github.com/jadenpxrk/pacont/internal/output"
	"github.com/jadenpxrk/pacont/internal/tokens"
)

// version is the application version, set via ldflags.
var version = "dev"

// newTokenCounter loads the tokenizer for a model. Replaced in tests.
var newTokenCounter = func(model string, logger *zap.Logger) (analyze.TokenCounter, error) {
	c, err := tokens.New(model, logger)
	if err != nil {
		return nil, err
	}
	logger.Debug("Counting tokens", zap.String("model", c.Model()))
	return c, nil
}

func newRootCmd(w *output.Writer) *cobra.Command {
	var cfgFile string
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "pacont [PATHS...]",
		Short: "Concatenate files and directories into one labeled document.",
		Long: `pacont reads the given files and directory trees and joins their contents into
a single text, each file under a bold label line. Use -o for totals only and
-c to send the result to the clipboard.`,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := bindFlags(v, cmd.Flags()); err != nil {
				return err
			}
			used, err := initConfig(v, cfgFile)
			if err != nil {
				return err
			}
			settings, err := loadSettings(v)
			if err != nil {
				return err
			}

			logger := logging.New(w.Stderr, settings.Verbose)
			defer func() { _ = logger.Sync() }()
			if used != "" {
				logger.Debug("Using config file", zap.String("path", used))
			}
			return run(args, settings, w, logger)
		},
	}

	flags := cmd.Flags()
	flags.IntP("max-depth", "m", 10, "Maximum directory depth to descend")
	flags.BoolP("include-errors", "i", false, "Report files and directories that could not be processed")
	flags.BoolP("output-information", "o", false, "Print totals instead of file contents")
	flags.BoolP("copy", "c", false, "Copy the output to the clipboard instead of printing it")
	flags.StringSliceP("exclude", "e", nil, "Glob patterns (doublestar syntax) of entries to skip inside directories")
	flags.Bool("gitignore", false, "Skip entries matched by the .gitignore at each directory root")
	flags.BoolP("tokens", "t", false, "Add a token total to the summary")
	flags.String("model", tokens.DefaultModel, "Model whose tokenizer is used with --tokens")
	flags.BoolP("verbose", "v", false, "Enable debug logging")
	flags.StringVar(&cfgFile, "config", "", "Config file (default $HOME/.config/pacont/config.toml, then ./config.toml)")

	return cmd
}

func run(paths []string, s Settings, w *output.Writer, logger *zap.Logger) error {
	var counter analyze.TokenCounter
	switch {
	case s.Tokens && s.OutputInformation:
		c, err := newTokenCounter(s.Model, logger)
		if err != nil {
			logger.Debug("Token counting disabled", zap.Error(err))
		} else {
			counter = c
		}
	case s.Tokens:
		logger.Debug("Token totals are only shown with --output-information")
	}

	agg, err := concat.New(concat.Options{
		MaxDepth:         s.MaxDepth,
		IncludeErrors:    s.IncludeErrors,
		SummaryOnly:      s.OutputInformation,
		Exclude:          s.Exclude,
		RespectGitignore: s.Gitignore,
		Tokens:           counter,
	}, logger)
	if err != nil {
		return err
	}

	res, err := agg.Aggregate(paths)
	if err != nil {
		return err
	}
	logger.Debug("Aggregation finished",
		zap.Int("files", len(res.Files)),
		zap.Int("errors", len(res.Errors)),
		zap.Int("chars", res.Counts.Chars))

	return w.Deliver(agg.Render(res), s.Copy)
}

func main() {
	w := output.NewWriter()
	if err := newRootCmd(w).Execute(); err != nil {
		w.Fatal(err)
		os.Exit(1)
	}
}
