// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package refpane

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/pdiddy/specnav/internal/biblio"
	"github.com/pdiddy/specnav/pkg/types"
)

// Pane is the reference pane: closed, or showing references to one entry or
// the operations over one grammar alternative. It is not safe for concurrent
// use.
type Pane struct {
	idx    *biblio.Index
	sdos   types.SDOMap
	linker biblio.Linker
	log    *zap.Logger

	state *types.PaneState
	refs  []Row
	ops   []SDORow
}

// NewPane returns a closed pane.
func NewPane(idx *biblio.Index, sdos types.SDOMap, linker biblio.Linker, log *zap.Logger) *Pane {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pane{idx: idx, sdos: sdos, linker: linker, log: log}
}

// ShowReferences opens the pane on the references to the entry with id.
func (p *Pane) ShowReferences(id string) ([]Row, error) {
	entry, ok := p.idx.ByID(id)
	if !ok {
		return nil, fmt.Errorf("references for %q: %w", id, biblio.ErrNotFound)
	}
	rows, err := ReferencesFor(p.idx, p.linker, entry)
	if err != nil {
		return nil, err
	}
	p.state = &types.PaneState{Type: types.PaneReferences, ID: id}
	p.refs, p.ops = rows, nil
	return rows, nil
}

// ShowSDOs opens the pane on the operations over the alternative altID.
func (p *Pane) ShowSDOs(altID string) []SDORow {
	rows := SDOsFor(p.sdos, p.linker, altID)
	p.state = &types.PaneState{Type: types.PaneSDOs, ID: altID}
	p.refs, p.ops = nil, rows
	return rows
}

// Deactivate closes the pane.
func (p *Pane) Deactivate() {
	p.state = nil
	p.refs, p.ops = nil, nil
}

// IsActive reports whether the pane is open.
func (p *Pane) IsActive() bool { return p.state != nil }

// State returns the restorable pane state, nil when closed.
func (p *Pane) State() *types.PaneState {
	if p.state == nil {
		return nil
	}
	s := *p.state
	return &s
}

// References returns the rows shown for a reference pane.
func (p *Pane) References() []Row { return p.refs }

// SDOs returns the rows shown for an operations pane.
func (p *Pane) SDOs() []SDORow { return p.ops }

// Restore reopens the pane from a saved state. A nil state closes the pane.
// State that no longer resolves leaves the pane closed.
func (p *Pane) Restore(s *types.PaneState) error {
	p.Deactivate()
	if s == nil {
		return nil
	}
	switch s.Type {
	case types.PaneReferences:
		if _, ok := p.idx.ByID(s.ID); !ok {
			p.log.Debug("not restoring references for unknown entry", zap.String("id", s.ID))
			return nil
		}
		_, err := p.ShowReferences(s.ID)
		return err
	case types.PaneSDOs:
		if _, ok := p.sdos[s.ID]; !ok {
			p.log.Debug("not restoring operations for unknown alternative", zap.String("id", s.ID))
			return nil
		}
		p.ShowSDOs(s.ID)
		return nil
	default:
		return fmt.Errorf("unknown pane type %q", s.Type)
	}
}
