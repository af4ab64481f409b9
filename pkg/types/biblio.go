// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for specnav: the bibliography
// payload emitted by the document generator, search results, configuration,
// and the session snapshots exchanged with the state store.
package types

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go.yaml.in/yaml/v3"
)

// EntryType categorizes a bibliography entry.
type EntryType string

const (
	EntryClause     EntryType = "clause"
	EntryProduction EntryType = "production"
	EntryOp         EntryType = "op"
	EntryTerm       EntryType = "term"
	EntryTable      EntryType = "table"
	EntryFigure     EntryType = "figure"
	EntryExample    EntryType = "example"
	EntryNote       EntryType = "note"
	EntryStep       EntryType = "step"
)

// Number is a dotted hierarchical number such as "2.3.1" or "A". Generators
// emit clause numbers as strings and table/figure numbers as bare integers,
// so Number accepts both encodings.
type Number string

// UnmarshalJSON accepts a JSON string, a JSON number, or null.
func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decoding number: %w", err)
		}
		*n = Number(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("decoding number %s: %w", data, err)
	}
	*n = Number(num.String())
	return nil
}

// UnmarshalYAML accepts any scalar.
func (n *Number) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: number must be a scalar", value.Line)
	}
	if value.Tag == "!!null" {
		*n = ""
		return nil
	}
	*n = Number(value.Value)
	return nil
}

// String returns the number as written.
func (n Number) String() string { return string(n) }

// Entry is a single searchable or cross-referenceable item of the document.
// Exactly one of the display fields is the entry's search key, depending on
// Type; see biblio.Key.
type Entry struct {
	Type EntryType `json:"type" yaml:"type"`

	// ID is the element id of the entry in the document. Operations and terms
	// defined inside another clause may carry only RefID.
	ID    string `json:"id,omitempty" yaml:"id,omitempty"`
	RefID string `json:"refId,omitempty" yaml:"refId,omitempty"`

	// Key overrides the type-specific key when present.
	Key string `json:"key,omitempty" yaml:"key,omitempty"`

	Title     string `json:"title,omitempty" yaml:"title,omitempty"`
	TitleHTML string `json:"titleHTML,omitempty" yaml:"titleHTML,omitempty"`
	Name      string `json:"name,omitempty" yaml:"name,omitempty"`
	AOID      string `json:"aoid,omitempty" yaml:"aoid,omitempty"`
	Term      string `json:"term,omitempty" yaml:"term,omitempty"`
	Caption   string `json:"caption,omitempty" yaml:"caption,omitempty"`

	// Number is set for clauses (and numbered tables/figures).
	Number Number `json:"number,omitempty" yaml:"number,omitempty"`

	// ReferencingIDs lists, in document order, the ids of the places that
	// reference this entry.
	ReferencingIDs []string `json:"referencingIds,omitempty" yaml:"referencingIds,omitempty"`
}

// LinkID returns the id a link to this entry should target.
func (e Entry) LinkID() string {
	if e.ID != "" {
		return e.ID
	}
	return e.RefID
}

// Bibliography is the serialized payload embedded by the document generator.
type Bibliography struct {
	Entries []Entry `json:"entries" yaml:"entries"`

	// RefsByClause maps a clause id to the reference ids located inside it.
	RefsByClause map[string][]string `json:"refsByClause" yaml:"refsByClause"`
}

// SDOLocation names the clause defining one syntax-directed operation for a
// grammar alternative, and the ids of its algorithm steps.
type SDOLocation struct {
	Clause string   `json:"clause" yaml:"clause"`
	IDs    []string `json:"ids" yaml:"ids"`
}

// SDOMap maps a grammar alternative id to the syntax-directed operations
// defined over it, keyed by operation name.
type SDOMap map[string]map[string]SDOLocation
