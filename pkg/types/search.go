// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// MatchResult describes how a query matched a candidate key.
type MatchResult struct {
	// CaseMatch is true when the match needed no case folding.
	CaseMatch bool `json:"case_match" yaml:"case_match"`

	// Chunks counts the contiguous runs of matched characters (fewer is better).
	Chunks int `json:"chunks" yaml:"chunks"`

	// Prefix is true when the match starts at the first character of the key.
	Prefix bool `json:"prefix" yaml:"prefix"`
}

// SearchResult is a bibliography entry matched by a query. Match and
// Relevance are nil for clause-number lookups, which are not ranked.
type SearchResult struct {
	// Key is the searchable text of the entry.
	Key string `json:"key" yaml:"key"`

	// Entry is the matched bibliography entry.
	Entry Entry `json:"entry" yaml:"entry"`

	// Match is the fuzzy match descriptor.
	Match *MatchResult `json:"match,omitempty" yaml:"match,omitempty"`

	// Relevance is the ordering score; higher ranks first.
	Relevance *int `json:"relevance,omitempty" yaml:"relevance,omitempty"`
}
