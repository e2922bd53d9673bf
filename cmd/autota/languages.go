package main

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/noah-isme/autota-go-api/internal/service"
)

func newLanguagesCmd(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List supported languages and the file extensions mapped to them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list := service.NewLanguageService().List()
			if global.json {
				return writeJSON(cmd.OutOrStdout(), list)
			}

			byLanguage := make(map[string][]string, len(list.Languages))
			for ext, lang := range list.Extensions {
				byLanguage[lang] = append(byLanguage[lang], ext)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "LANGUAGE\tEXTENSIONS")
			for _, lang := range list.Languages {
				exts := byLanguage[lang]
				sort.Strings(exts)
				fmt.Fprintf(w, "%s\t%s\n", lang, strings.Join(exts, " "))
			}
			return w.Flush()
		},
	}
}
