// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package biblio builds the lookup index over a document bibliography: entries
// by id, the clause that owns each cross-reference, the clause list used for
// number lookups, and the resolved search key of every entry.
//
// An Index is immutable once built and safe for concurrent readers.
package biblio

import (
	"fmt"
	"sort"

	"github.com/pdiddy/specnav/pkg/types"
)

// Index is the derived, read-only view of a Bibliography.
type Index struct {
	entries         []types.Entry
	keys            []string
	byID            map[string]int
	refParentClause map[string]string
	clauses         []int
}

// NewIndex resolves keys and builds the lookup maps for b. Entries sharing
// an id resolve to the last one. Entries without an id are searchable but
// cannot be looked up by id. An entry of unknown type fails the build.
func NewIndex(b types.Bibliography) (*Index, error) {
	idx := &Index{
		entries:         b.Entries,
		keys:            make([]string, len(b.Entries)),
		byID:            make(map[string]int, len(b.Entries)),
		refParentClause: make(map[string]string),
	}

	for i, e := range b.Entries {
		key, err := Key(e)
		if err != nil {
			return nil, fmt.Errorf("entry %d (id %q): %w", i, e.ID, err)
		}
		idx.keys[i] = key

		if e.ID != "" {
			idx.byID[e.ID] = i
		}
		if e.Type == types.EntryClause {
			idx.clauses = append(idx.clauses, i)
		}
	}

	clauseIDs := make([]string, 0, len(b.RefsByClause))
	for id := range b.RefsByClause {
		clauseIDs = append(clauseIDs, id)
	}
	sort.Strings(clauseIDs)
	for _, clauseID := range clauseIDs {
		for _, ref := range b.RefsByClause[clauseID] {
			idx.refParentClause[ref] = clauseID
		}
	}

	return idx, nil
}

// Len returns the number of entries.
func (x *Index) Len() int { return len(x.entries) }

// Entry returns entry i in bibliography order.
func (x *Index) Entry(i int) types.Entry { return x.entries[i] }

// EntryKey returns the resolved search key of entry i; empty when the entry
// is not searchable.
func (x *Index) EntryKey(i int) string { return x.keys[i] }

// Entries returns a copy of all entries in bibliography order.
func (x *Index) Entries() []types.Entry {
	out := make([]types.Entry, len(x.entries))
	copy(out, x.entries)
	return out
}

// Clauses returns the clause entries in bibliography order.
func (x *Index) Clauses() []types.Entry {
	out := make([]types.Entry, len(x.clauses))
	for i, j := range x.clauses {
		out[i] = x.entries[j]
	}
	return out
}

// ClauseKeys returns the resolved keys of Clauses, aligned by position.
func (x *Index) ClauseKeys() []string {
	out := make([]string, len(x.clauses))
	for i, j := range x.clauses {
		out[i] = x.keys[j]
	}
	return out
}

// ByID looks up an entry by its element id.
func (x *Index) ByID(id string) (types.Entry, bool) {
	i, ok := x.byID[id]
	if !ok {
		return types.Entry{}, false
	}
	return x.entries[i], true
}

// KeyOf returns the search key of the entry with the given id.
func (x *Index) KeyOf(id string) (string, bool) {
	i, ok := x.byID[id]
	if !ok {
		return "", false
	}
	return x.keys[i], true
}

// OwningClause returns the clause that contains the reference refID. A
// reference that does not resolve to a clause entry means the payload is
// inconsistent and yields a *MissingClauseError.
func (x *Index) OwningClause(refID string) (types.Entry, error) {
	clauseID, ok := x.refParentClause[refID]
	if !ok {
		return types.Entry{}, &MissingClauseError{RefID: refID}
	}
	clause, ok := x.ByID(clauseID)
	if !ok || clause.Type != types.EntryClause {
		return types.Entry{}, &MissingClauseError{RefID: refID, ClauseID: clauseID}
	}
	return clause, nil
}

// Validate checks that every referencing id of every entry resolves to a
// clause. It returns the first failure.
func (x *Index) Validate() error {
	for _, e := range x.entries {
		for _, ref := range e.ReferencingIDs {
			if _, err := x.OwningClause(ref); err != nil {
				return fmt.Errorf("entry %q: %w", e.LinkID(), err)
			}
		}
	}
	return nil
}
