// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search answers search-box queries against a bibliography index:
// clause-number lookups for numeric queries and fuzzy-ranked results for
// everything else.
package search

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/pdiddy/specnav/internal/biblio"
	"github.com/pdiddy/specnav/internal/fuzzy"
	"github.com/pdiddy/specnav/pkg/types"
)

// clauseNumberQuery matches queries made only of digits and dots.
var clauseNumberQuery = regexp.MustCompile(`^[0-9.]*$`)

// SearchOutput holds the results of one query.
type SearchOutput struct {
	Query string

	// Visible reports whether the search box should be shown. It is false
	// only for the empty query; a short query keeps the box open with no
	// results.
	Visible bool

	Results []types.SearchResult
}

// Engine runs queries against an immutable index. It keeps no state between
// calls and may be shared.
type Engine struct {
	idx *biblio.Index
	cfg types.SearchConfig
	log *zap.Logger
}

// NewEngine returns an Engine over idx. Zero config fields take their defaults.
func NewEngine(idx *biblio.Index, cfg types.SearchConfig, log *zap.Logger) *Engine {
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = types.DefaultMaxResults
	}
	if cfg.MinQueryLength <= 0 {
		cfg.MinQueryLength = types.DefaultMinQueryLength
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{idx: idx, cfg: cfg, log: log}
}

// Search returns the results for query, capped at MaxResults.
func (e *Engine) Search(query string) SearchOutput {
	out := SearchOutput{Query: query}
	if query == "" {
		return out
	}
	out.Visible = true

	if utf8.RuneCountInString(query) < e.cfg.MinQueryLength {
		return out
	}

	if clauseNumberQuery.MatchString(query) {
		out.Results = e.clausesByNumber(query)
	} else {
		out.Results = e.ranked(query)
	}

	if len(out.Results) > e.cfg.MaxResults {
		out.Results = out.Results[:e.cfg.MaxResults]
	}

	e.log.Debug("search",
		zap.String("query", query),
		zap.Int("results", len(out.Results)))
	return out
}

// clausesByNumber returns clauses whose number starts with the literal
// query, in bibliography order.
func (e *Engine) clausesByNumber(query string) []types.SearchResult {
	clauses := e.idx.Clauses()
	keys := e.idx.ClauseKeys()

	var results []types.SearchResult
	for i, c := range clauses {
		if strings.HasPrefix(string(c.Number), query) {
			results = append(results, types.SearchResult{Key: keys[i], Entry: c})
		}
	}
	return results
}

// ranked fuzzy-matches every searchable entry and orders the matches by
// relevance. Ties keep bibliography order.
func (e *Engine) ranked(query string) []types.SearchResult {
	var results []types.SearchResult
	for i := 0; i < e.idx.Len(); i++ {
		key := e.idx.EntryKey(i)
		if key == "" {
			continue
		}
		m, ok := fuzzy.Match(query, key)
		if !ok {
			continue
		}
		relevance := fuzzy.Relevance(m, utf8.RuneCountInString(key))
		results = append(results, types.SearchResult{
			Key:       key,
			Entry:     e.idx.Entry(i),
			Match:     &m,
			Relevance: &relevance,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return *results[i].Relevance > *results[j].Relevance
	})
	return results
}
