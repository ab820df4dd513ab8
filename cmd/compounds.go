package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/plasma-forge/ellingham-cli/internal/model"
)

var compoundsCmd = &cobra.Command{
	Use:   "compounds",
	Short: "List available compounds",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		env, err := initEnv(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		category, _ := cmd.Flags().GetString("category")
		asJSON, _ := cmd.Flags().GetBool("json")

		var summaries []model.Summary
		if category != "" {
			cat := model.Category(category)
			if !cat.Valid() {
				return eris.Errorf("unknown category %q", category)
			}
			summaries = env.Registry.ListByCategory(cat)
		} else {
			summaries = env.Registry.List()
		}

		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(summaries)
		}

		if len(summaries) == 0 {
			fmt.Fprintln(os.Stderr, "No compounds found.")
			return nil
		}

		formatCompoundsList(os.Stdout, summaries)
		return nil
	},
}

// formatCompoundsList writes a tabular list of compound summaries to w.
func formatCompoundsList(out io.Writer, summaries []model.Summary) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tFORMULA\tELEMENT\tCATEGORY\tSOURCE\tCUSTOM")
	_, _ = fmt.Fprintln(w, "----\t-------\t-------\t--------\t------\t------")

	for _, s := range summaries {
		custom := ""
		if s.Custom {
			custom = "yes"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			s.Name, s.Formula, s.Element, s.Category, s.Source, custom)
	}
	_ = w.Flush()
}

func init() {
	compoundsCmd.Flags().String("category", "", "filter by category (oxide, nitride, carbide, ...)")
	compoundsCmd.Flags().Bool("json", false, "output as JSON")
	rootCmd.AddCommand(compoundsCmd)
}
