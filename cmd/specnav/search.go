// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/specnav/internal/search"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the bibliography",
	Long: `Search ranks bibliography entries against a query. A query made only of
digits and dots lists the clauses whose number starts with it; any other
query is fuzzy-matched against entry keys and ranked by relevance.`,
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	if cmd.Flags().Changed("max-results") {
		cfg.Search.MaxResults, _ = cmd.Flags().GetInt("max-results")
	}

	doc, err := loadDocument(cmd)
	if err != nil {
		return err
	}
	n, err := newNavigator(cmd, doc, nil)
	if err != nil {
		return err
	}

	out := n.Search(strings.Join(args, " "))
	if jsonOutput {
		return search.FormatJSON(out, os.Stdout)
	}
	search.FormatTable(out, doc.linker, os.Stdout)
	return nil
}

func init() {
	searchCmd.Flags().Int("max-results", 0, "maximum number of results (default from config, 50)")
	searchCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(searchCmd)
}
