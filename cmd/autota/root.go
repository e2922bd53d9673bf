package main

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/noah-isme/autota-go-api/internal/config"
	"github.com/noah-isme/autota-go-api/internal/middleware"
	"github.com/noah-isme/autota-go-api/pkg/ai"
)

// globalOptions holds the persistent flag values shared by every subcommand.
type globalOptions struct {
	verbose bool
	noColor bool
	json    bool
}

// newCompleter is swapped in tests.
var newCompleter = func(ctx context.Context, cfg config.Config, logger zerolog.Logger) (ai.Completer, error) {
	return ai.NewCompleter(ctx, ai.Config{
		Provider:    cfg.AIProvider,
		APIKey:      cfg.AIAPIKey,
		Model:       cfg.AIModel,
		BaseURL:     cfg.AIBaseURL,
		Temperature: &cfg.AITemperature,
		MaxTokens:   cfg.AIMaxTokens,
		Timeout:     cfg.AITimeout,
		Logger:      logger,
	})
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "autota",
		Short: "Debugging hints and error prediction for student code",
		Long: `AutoTA is a teaching assistant for first-year programming students.
It predicts the error a piece of code would produce and explains what broke
without ever writing the solution.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if opts.noColor {
				color.NoColor = true
			}
			cmd.SetContext(middleware.ContextWithCorrelation(cmd.Context(), uuid.NewString()))
		},
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log completion calls to stderr")
	root.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	root.PersistentFlags().BoolVar(&opts.json, "json", false, "print results as JSON")

	root.AddCommand(newHintCmd(opts))
	root.AddCommand(newDetectCmd(opts))
	root.AddCommand(newExtractPDFCmd(opts))
	root.AddCommand(newLanguagesCmd(opts))

	return root
}

func (o *globalOptions) logger(cmd *cobra.Command) zerolog.Logger {
	if !o.verbose {
		return zerolog.Nop()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: color.NoColor}).With().
		Timestamp().
		Str("correlation_id", middleware.CorrelationIDFromContext(cmd.Context())).
		Logger()
}

// completer loads configuration and builds the completion gateway.
func (o *globalOptions) completer(cmd *cobra.Command) (ai.Completer, zerolog.Logger, error) {
	logger := o.logger(cmd)

	cfg, err := config.Load()
	if err != nil {
		return nil, logger, err
	}

	completer, err := newCompleter(cmd.Context(), cfg, logger)
	if err != nil {
		return nil, logger, err
	}
	return completer, logger, nil
}

func newValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

func writeJSON(w io.Writer, value interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}

func readSource(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}
