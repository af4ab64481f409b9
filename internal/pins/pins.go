// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pins keeps the ordered list of bibliography entries a reader has
// pinned for quick access.
package pins

import (
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/pdiddy/specnav/internal/biblio"
	"github.com/pdiddy/specnav/pkg/types"
)

// ErrNoPin indicates a pin position outside the list.
var ErrNoPin = errors.New("no pin at position")

// Set is an ordered set of pinned entry ids. Every id in the set resolves in
// the index. It is not safe for concurrent use.
type Set struct {
	idx    *biblio.Index
	linker biblio.Linker
	ids    []string
	log    *zap.Logger
}

// NewSet returns an empty Set over idx.
func NewSet(idx *biblio.Index, linker biblio.Linker, log *zap.Logger) *Set {
	if log == nil {
		log = zap.NewNop()
	}
	return &Set{idx: idx, linker: linker, log: log}
}

// Add pins id at the end of the list. It reports false when id is already
// pinned or no longer resolves, in which case nothing changes.
func (s *Set) Add(id string) bool {
	if s.Has(id) {
		return false
	}
	if _, ok := s.idx.ByID(id); !ok {
		s.log.Debug("dropping pin for unknown id", zap.String("id", id))
		return false
	}
	s.ids = append(s.ids, id)
	return true
}

// Remove unpins id and reports whether it was pinned.
func (s *Set) Remove(id string) bool {
	i := slices.Index(s.ids, id)
	if i < 0 {
		return false
	}
	s.ids = slices.Delete(s.ids, i, i+1)
	return true
}

// Toggle pins id if it is not pinned and unpins it otherwise. It reports
// whether id is pinned afterwards.
func (s *Set) Toggle(id string) (bool, error) {
	if s.Remove(id) {
		return false, nil
	}
	if !s.Add(id) {
		return false, fmt.Errorf("pin %q: %w", id, biblio.ErrNotFound)
	}
	return true, nil
}

// Load replaces the set with ids, keeping their order. Ids that no longer
// resolve are dropped and returned.
func (s *Set) Load(ids []string) (dropped []string) {
	s.ids = nil
	for _, id := range ids {
		if s.Has(id) {
			continue
		}
		if !s.Add(id) {
			dropped = append(dropped, id)
		}
	}
	return dropped
}

// Has reports whether id is pinned.
func (s *Set) Has(id string) bool { return slices.Contains(s.ids, id) }

// IDs returns the pinned ids in pin order.
func (s *Set) IDs() []string { return slices.Clone(s.ids) }

// Len returns the number of pins.
func (s *Set) Len() int { return len(s.ids) }

// Select returns the link to the n-th pin, counting from zero.
func (s *Set) Select(n int) (string, error) {
	if n < 0 || n >= len(s.ids) {
		return "", fmt.Errorf("%w %d (have %d)", ErrNoPin, n, len(s.ids))
	}
	return s.linker.LinkTo(s.ids[n]), nil
}

// Labels returns the menu text of every pin in pin order.
func (s *Set) Labels() []string {
	out := make([]string, 0, len(s.ids))
	for _, id := range s.ids {
		e, _ := s.idx.ByID(id)
		out = append(out, Label(e))
	}
	return out
}

// Label returns the pin text for e: number and title for clauses, the
// search key for everything else.
func Label(e types.Entry) string {
	if e.Type == types.EntryClause {
		if e.Number != "" {
			return string(e.Number) + " " + e.TitleHTML
		}
		return e.TitleHTML
	}
	key, _ := biblio.Key(e)
	return key
}
