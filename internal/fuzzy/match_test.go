// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/specnav/pkg/types"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		candidate string
		want      types.MatchResult
		ok        bool
	}{
		{"identical", "StructTail", "StructTail", types.MatchResult{CaseMatch: true, Chunks: 1, Prefix: true}, true},
		{"equal length case folded", "structtail", "StructTail", types.MatchResult{CaseMatch: false, Chunks: 1, Prefix: true}, true},
		{"equal length different", "abcdf", "abcde", types.MatchResult{}, false},
		{"query longer", "abcdef", "abc", types.MatchResult{}, false},
		{"prefix", "ab", "abcde", types.MatchResult{CaseMatch: true, Chunks: 1, Prefix: true}, true},
		{"gap", "bd", "abcde", types.MatchResult{CaseMatch: true, Chunks: 2, Prefix: false}, true},
		{"leading skip is not a chunk", "cd", "abcde", types.MatchResult{CaseMatch: true, Chunks: 1, Prefix: false}, true},
		{"three chunks", "ace", "abcde", types.MatchResult{CaseMatch: true, Chunks: 3, Prefix: false}, true},
		{"case insensitive retry", "DEF", "define", types.MatchResult{CaseMatch: false, Chunks: 1, Prefix: true}, true},
		{"case insensitive with gaps", "dm", "DefineMethod", types.MatchResult{CaseMatch: false, Chunks: 2, Prefix: false}, true},
		{"case sensitive with gaps", "DM", "DefineMethod", types.MatchResult{CaseMatch: true, Chunks: 2, Prefix: false}, true},
		{"out of order", "ba", "abc", types.MatchResult{}, false},
		{"missing char", "xz", "abcde", types.MatchResult{}, false},
		{"empty query", "", "abc", types.MatchResult{CaseMatch: true, Chunks: 1, Prefix: true}, true},
		{"both empty", "", "", types.MatchResult{CaseMatch: true, Chunks: 1, Prefix: true}, true},
		{"runes", "éa", "éta", types.MatchResult{CaseMatch: true, Chunks: 2, Prefix: false}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Match(tt.query, tt.candidate)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchProperties(t *testing.T) {
	samples := []string{
		"", "a", "A", "ab", "Ab", "Shared Struct", "%SharedArray%",
		"Runtime Semantics: Evaluation", "[[Get]] ( P, Receiver )", "ünïcödé",
	}

	for _, s := range samples {
		m, ok := Match(s, s)
		assert.True(t, ok, "self match %q", s)
		assert.Equal(t, types.MatchResult{CaseMatch: true, Chunks: 1, Prefix: true}, m, "self match %q", s)
	}

	for _, q := range samples {
		for _, k := range samples {
			if len([]rune(q)) <= len([]rune(k)) {
				continue
			}
			_, ok := Match(q, k)
			assert.False(t, ok, "longer query %q must not match %q", q, k)
		}
	}
}

func TestMatchPrefixMeansQueryConsumedWithinQueryLength(t *testing.T) {
	m, ok := Match("Shared", "SharedArrayCreate")
	assert.True(t, ok)
	assert.True(t, m.Prefix)

	m, ok = Match("Array", "SharedArrayCreate")
	assert.True(t, ok)
	assert.False(t, m.Prefix)
	assert.Equal(t, 1, m.Chunks)
}
