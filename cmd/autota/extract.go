package main

import (
	"fmt"
	"os"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/cobra"

	"github.com/noah-isme/autota-go-api/internal/dto"
	"github.com/noah-isme/autota-go-api/pkg/pdf"
)

// pdfTextLimit caps the characters returned for one assignment document.
const pdfTextLimit = 50000

func newExtractPDFCmd(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "extract-pdf <file.pdf>",
		Short: "Print the plain text of an assignment PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read pdf: %w", err)
			}
			if !mimetype.Detect(data).Is("application/pdf") {
				return fmt.Errorf("%s: PDF file required", args[0])
			}

			text, err := pdf.NewTextExtractor(pdfTextLimit).Extract(cmd.Context(), data)
			if err != nil {
				return fmt.Errorf("extract %s: %w", args[0], err)
			}

			if global.json {
				return writeJSON(cmd.OutOrStdout(), dto.ExtractPDFResponse{Text: text})
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
}
