// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package refpane builds the rows of the reference pane: the clauses that
// reference an entry, or the syntax-directed operations defined over a
// grammar alternative.
package refpane

import (
	"sort"

	"github.com/pdiddy/specnav/internal/biblio"
	"github.com/pdiddy/specnav/pkg/types"
)

// Row lists the references to an entry from one clause. Link points at the
// first reference; Extra holds the links to further references from the same
// clause, numbered 2, 3, ... when shown.
type Row struct {
	ClauseID string   `json:"clause_id"`
	Number   string   `json:"number"`
	Title    string   `json:"title"`
	Link     string   `json:"link"`
	Extra    []string `json:"extra,omitempty"`
}

// SDORow is one syntax-directed operation defined for a grammar alternative.
type SDORow struct {
	Clause string   `json:"clause"`
	Name   string   `json:"name"`
	Link   string   `json:"link"`
	Extra  []string `json:"extra,omitempty"`
}

type ref struct {
	id     string
	clause types.Entry
}

// ReferencesFor returns the reference rows for entry ordered by clause
// number. A reference with no owning clause aborts with a
// *biblio.MissingClauseError.
func ReferencesFor(idx *biblio.Index, linker biblio.Linker, entry types.Entry) ([]Row, error) {
	refs := make([]ref, 0, len(entry.ReferencingIDs))
	for _, id := range entry.ReferencingIDs {
		clause, err := idx.OwningClause(id)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref{id: id, clause: clause})
	}

	sort.SliceStable(refs, func(i, j int) bool {
		return biblio.CompareClauseNumbers(string(refs[i].clause.Number), string(refs[j].clause.Number)) < 0
	})

	var rows []Row
	for _, r := range refs {
		link := linker.LinkTo(r.id)
		if n := len(rows); n > 0 && rows[n-1].ClauseID == r.clause.ID {
			rows[n-1].Extra = append(rows[n-1].Extra, link)
			continue
		}
		rows = append(rows, Row{
			ClauseID: r.clause.ID,
			Number:   string(r.clause.Number),
			Title:    r.clause.TitleHTML,
			Link:     link,
		})
	}
	return rows, nil
}

// SDOsFor returns the operations defined for the grammar alternative altID,
// ordered by clause number and then name. An unknown alternative has none.
func SDOsFor(sdos types.SDOMap, linker biblio.Linker, altID string) []SDORow {
	ops := sdos[altID]
	rows := make([]SDORow, 0, len(ops))
	for name, loc := range ops {
		row := SDORow{Clause: loc.Clause, Name: name}
		for i, id := range loc.IDs {
			if i == 0 {
				row.Link = linker.LinkTo(id)
				continue
			}
			row.Extra = append(row.Extra, linker.LinkTo(id))
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if c := biblio.CompareClauseNumbers(rows[i].Clause, rows[j].Clause); c != 0 {
			return c < 0
		}
		return rows[i].Name < rows[j].Name
	})
	return rows
}
