// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fuzzy

import "github.com/pdiddy/specnav/pkg/types"

// Score layout, high bits first:
//
//	bit 11     set when the match is a prefix of the key (2048)
//	bits 7-10  (8 - chunks), doubled when the case matched
//	bits 0-7   255 - key length
//
// Case-sensitive matches with fewer chunks rank first, then shorter keys.
// The fields are added rather than masked, so a full-case, zero-chunk match
// would reach the prefix bit; chunks is always at least 1 in practice.
const (
	maxChunks   = 8
	chunkShift  = 7
	prefixBonus = 2048
	maxKeyLen   = 255
)

// Relevance converts a match and the length of the matched key into an
// ordering score. Higher is better.
func Relevance(m types.MatchResult, keyLength int) int {
	score := max(0, maxChunks-m.Chunks) << chunkShift
	if m.CaseMatch {
		score *= 2
	}
	if m.Prefix {
		score += prefixBonus
	}
	score += max(0, maxKeyLen-keyLength)
	return score
}
