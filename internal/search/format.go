// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/specnav/internal/biblio"
	"github.com/pdiddy/specnav/pkg/types"
)

// Label returns the text shown for a result: clauses are prefixed with their
// number, other entries show their key.
func Label(r types.SearchResult) string {
	if r.Entry.Type == types.EntryClause && r.Entry.Number != "" {
		return string(r.Entry.Number) + " " + r.Key
	}
	return r.Key
}

// FormatTable writes results as a human-readable table to w.
func FormatTable(out SearchOutput, linker biblio.Linker, w io.Writer) {
	if !out.Visible {
		return
	}
	if len(out.Results) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-10s  %-60s  %-8s  %s\n",
		"Rank", "Type", "Entry", "Score", "Link")
	fmt.Fprintln(w, strings.Repeat("-", 110))

	for i, r := range out.Results {
		score := "-"
		if r.Relevance != nil {
			score = fmt.Sprintf("%d", *r.Relevance)
		}
		fmt.Fprintf(w, "%-4d  %-10s  %-60s  %-8s  %s\n",
			i+1, r.Entry.Type, truncate(Label(r), 60), score, linker.LinkTo(r.Entry.LinkID()))
	}

	fmt.Fprintf(w, "\n%d results\n", len(out.Results))
}

// FormatJSON writes results as indented JSON to w.
func FormatJSON(out SearchOutput, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	results := out.Results
	if results == nil {
		results = []types.SearchResult{}
	}
	return enc.Encode(results)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
