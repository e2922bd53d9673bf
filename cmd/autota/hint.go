package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/noah-isme/autota-go-api/internal/dto"
	"github.com/noah-isme/autota-go-api/internal/service"
	"github.com/noah-isme/autota-go-api/pkg/pdf"
)

type hintOptions struct {
	errorText      string
	errorFile      string
	assignment     string
	assignmentFile string
}

func newHintCmd(global *globalOptions) *cobra.Command {
	opts := &hintOptions{}

	cmd := &cobra.Command{
		Use:   "hint <code-file>",
		Short: "Explain what broke and suggest where to look",
		Long: `Ask the teaching assistant for a hint about a failing program.
The code is read from <code-file> ("-" for stdin). The observed error comes from
--error or --error-file. An assignment description can be given inline or as a
PDF/text file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := readSource(args[0])
			if err != nil {
				return fmt.Errorf("read code: %w", err)
			}

			observed := opts.errorText
			if opts.errorFile != "" {
				data, err := os.ReadFile(opts.errorFile)
				if err != nil {
					return fmt.Errorf("read error file: %w", err)
				}
				observed = string(data)
			}

			assignment, err := opts.loadAssignment(cmd.Context())
			if err != nil {
				return err
			}

			completer, logger, err := global.completer(cmd)
			if err != nil {
				return err
			}

			svc := service.NewHintService(completer, newValidator(), logger)
			result, err := svc.Generate(cmd.Context(), dto.HintRequest{
				Assignment: assignment,
				Code:       code,
				Error:      observed,
			})
			if err != nil {
				return err
			}

			if global.json {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			printHint(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.errorText, "error", "e", "", "error message the program produced")
	cmd.Flags().StringVar(&opts.errorFile, "error-file", "", "file containing the error output")
	cmd.Flags().StringVarP(&opts.assignment, "assignment", "a", "", "assignment description")
	cmd.Flags().StringVar(&opts.assignmentFile, "assignment-file", "", "assignment description file (.pdf or plain text)")

	return cmd
}

func (o *hintOptions) loadAssignment(ctx context.Context) (string, error) {
	if o.assignmentFile == "" {
		return o.assignment, nil
	}

	data, err := os.ReadFile(o.assignmentFile)
	if err != nil {
		return "", fmt.Errorf("read assignment: %w", err)
	}
	if !strings.EqualFold(filepath.Ext(o.assignmentFile), ".pdf") {
		return string(data), nil
	}

	text, err := pdf.NewTextExtractor(pdfTextLimit).Extract(ctx, data)
	if err != nil {
		return "", fmt.Errorf("extract assignment: %w", err)
	}
	return text, nil
}

func printHint(w io.Writer, hint dto.HintResponse) {
	label := color.New(color.Bold, color.FgRed)
	concept := color.New(color.Bold, color.FgCyan)
	nudge := color.New(color.Bold, color.FgGreen)

	label.Fprint(w, "What broke: ")
	fmt.Fprintln(w, hint.Broke)
	concept.Fprint(w, "Concept:    ")
	fmt.Fprintln(w, hint.Concept)
	nudge.Fprint(w, "Next step:  ")
	fmt.Fprintln(w, hint.Nudge)
}
