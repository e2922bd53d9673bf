package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/noah-isme/autota-go-api/internal/dto"
	"github.com/noah-isme/autota-go-api/internal/language"
	"github.com/noah-isme/autota-go-api/internal/service"
)

func newDetectCmd(global *globalOptions) *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "detect <code-file>",
		Short: "Predict the error a program would print when run",
		Long: `Predict what the compiler or interpreter would print for <code-file>.
The language is taken from --language or derived from the file extension.
The exit status is 0 whether or not an error is predicted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := readSource(args[0])
			if err != nil {
				return fmt.Errorf("read code: %w", err)
			}

			if lang == "" {
				lang = language.FromFilename(args[0])
			}

			completer, logger, err := global.completer(cmd)
			if err != nil {
				return err
			}

			svc := service.NewDetectionService(completer, newValidator(), logger)
			result, err := svc.Detect(cmd.Context(), dto.DetectErrorRequest{Code: code, Language: lang})
			if err != nil {
				return err
			}

			if global.json {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			printDetection(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&lang, "language", "l", "", "source language (default: from file extension)")

	return cmd
}

func printDetection(w io.Writer, result dto.DetectErrorResponse) {
	if !result.HasError {
		color.New(color.Bold, color.FgGreen).Fprintln(w, "No errors detected")
		return
	}

	color.New(color.Bold, color.FgRed).Fprintf(w, "Predicted %s error:\n", result.ErrorType)
	fmt.Fprintln(w, result.ErrorMessage)
}
