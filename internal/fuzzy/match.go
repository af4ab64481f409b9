// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fuzzy matches a query against a candidate key as an ordered
// subsequence and scores the match for ranking. Both functions are pure and
// safe to call from any goroutine.
package fuzzy

import (
	"strings"

	"github.com/pdiddy/specnav/pkg/types"
)

// Match reports whether every character of query appears in candidate in
// order. Characters are compared as runes. A case-sensitive scan is tried
// first; if it fails, the scan is repeated on the lowercased strings and a
// success is reported with CaseMatch false.
func Match(query, candidate string) (types.MatchResult, bool) {
	q := []rune(query)
	c := []rune(candidate)

	if len(q) > len(c) {
		return types.MatchResult{}, false
	}
	if len(q) == len(c) {
		switch {
		case query == candidate:
			return types.MatchResult{CaseMatch: true, Chunks: 1, Prefix: true}, true
		case strings.ToLower(query) == strings.ToLower(candidate):
			return types.MatchResult{CaseMatch: false, Chunks: 1, Prefix: true}, true
		default:
			return types.MatchResult{}, false
		}
	}

	if m, ok := scan(q, c); ok {
		m.CaseMatch = true
		return m, true
	}
	if m, ok := scan([]rune(strings.ToLower(query)), []rune(strings.ToLower(candidate))); ok {
		m.CaseMatch = false
		return m, true
	}
	return types.MatchResult{}, false
}

// scan walks c with a single cursor, consuming one candidate rune per query
// rune. Skipping candidate runes after a run of matches starts a new chunk.
func scan(q, c []rune) (types.MatchResult, bool) {
	chunks := 1
	finding := false
	j := 0

	for _, want := range q {
		found := false
		for j < len(c) {
			got := c[j]
			j++
			if got == want {
				finding = true
				found = true
				break
			}
			if finding {
				chunks++
				finding = false
			}
		}
		if !found {
			return types.MatchResult{}, false
		}
	}

	return types.MatchResult{Chunks: chunks, Prefix: j <= len(q)}, true
}
