// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package refpane

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// FormatReferences writes reference rows as a table. Extra references from
// the same clause follow the first link, numbered from 2.
func FormatReferences(id string, rows []Row, w io.Writer) {
	fmt.Fprintf(w, "References to #%s\n", id)
	if len(rows) == 0 {
		fmt.Fprintln(w, "No references.")
		return
	}
	fmt.Fprintf(w, "%-10s  %-60s  %s\n", "Clause", "Title", "Links")
	fmt.Fprintln(w, strings.Repeat("-", 100))
	for _, r := range rows {
		fmt.Fprintf(w, "%-10s  %-60s  %s\n", r.Number, r.Title, joinLinks(r.Link, r.Extra))
	}
}

// FormatSDOs writes operation rows as a table.
func FormatSDOs(altID string, rows []SDORow, w io.Writer) {
	fmt.Fprintf(w, "Syntax-Directed Operations for #%s\n", altID)
	if len(rows) == 0 {
		fmt.Fprintln(w, "No operations.")
		return
	}
	fmt.Fprintf(w, "%-10s  %-45s  %s\n", "Clause", "Operation", "Links")
	fmt.Fprintln(w, strings.Repeat("-", 100))
	for _, r := range rows {
		fmt.Fprintf(w, "%-10s  %-45s  %s\n", r.Clause, r.Name, joinLinks(r.Link, r.Extra))
	}
}

// FormatJSON writes v, a slice of Row or SDORow, as indented JSON.
func FormatJSON(v any, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func joinLinks(first string, extra []string) string {
	var b strings.Builder
	b.WriteString(first)
	for i, l := range extra {
		fmt.Fprintf(&b, " (%d: %s)", i+2, l)
	}
	return b.String()
}
