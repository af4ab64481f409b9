// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package navigator ties the search engine, section tracker, table of
// contents, pins and reference pane into one reader session. All
// collaborators are injected; the navigator holds no package-level state.
package navigator

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/pdiddy/specnav/internal/biblio"
	"github.com/pdiddy/specnav/internal/outline"
	"github.com/pdiddy/specnav/internal/pins"
	"github.com/pdiddy/specnav/internal/refpane"
	"github.com/pdiddy/specnav/internal/search"
	"github.com/pdiddy/specnav/internal/toc"
	"github.com/pdiddy/specnav/pkg/types"
)

// ErrNoActiveSection indicates an operation on the active section while none
// is active.
var ErrNoActiveSection = errors.New("no active section")

// Deps are the collaborators of a Navigator. Index and Engine are required.
// Tracker and Menu may be nil when no document layout is loaded; Pins and
// Pane default to empty ones over Index.
type Deps struct {
	Index   *biblio.Index
	Engine  *search.Engine
	Tracker *outline.Tracker
	Menu    *toc.Menu
	Pins    *pins.Set
	Pane    *refpane.Pane
	Linker  biblio.Linker
	Logger  *zap.Logger
}

// Navigator is one reader session. It is safe for concurrent use.
type Navigator struct {
	idx     *biblio.Index
	engine  *search.Engine
	tracker *outline.Tracker
	menu    *toc.Menu
	pins    *pins.Set
	pane    *refpane.Pane
	linker  biblio.Linker
	log     *zap.Logger

	mu          sync.Mutex
	searchValue string
	active      []string
	tocScroll   int
}

// New returns a Navigator over d.
func New(d Deps) (*Navigator, error) {
	if d.Index == nil {
		return nil, fmt.Errorf("navigator: index is required")
	}
	if d.Engine == nil {
		return nil, fmt.Errorf("navigator: search engine is required")
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Pins == nil {
		d.Pins = pins.NewSet(d.Index, d.Linker, d.Logger)
	}
	if d.Pane == nil {
		d.Pane = refpane.NewPane(d.Index, nil, d.Linker, d.Logger)
	}
	return &Navigator{
		idx:     d.Index,
		engine:  d.Engine,
		tracker: d.Tracker,
		menu:    d.Menu,
		pins:    d.Pins,
		pane:    d.Pane,
		linker:  d.Linker,
		log:     d.Logger,
	}, nil
}

// Search runs query and remembers it as the search box value.
func (n *Navigator) Search(query string) search.SearchOutput {
	n.mu.Lock()
	n.searchValue = query
	n.mu.Unlock()
	return n.engine.Search(query)
}

// SearchValue returns the last query.
func (n *Navigator) SearchValue() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.searchValue
}

// UpdateActive tracks the active section below root, remembers its id path
// and reveals it in the table of contents.
func (n *Navigator) UpdateActive(root outline.Node) ([]string, error) {
	if n.tracker == nil {
		return nil, fmt.Errorf("navigator: no section tracker configured")
	}
	ids := outline.PathIDs(n.tracker.FindActivePath(root))

	n.mu.Lock()
	defer n.mu.Unlock()
	n.active = ids
	if n.menu != nil {
		n.menu.Reveal(ids)
	}
	return slices.Clone(ids), nil
}

// ActivePath returns the ids of the active section path, outermost first.
func (n *Navigator) ActivePath() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return slices.Clone(n.active)
}

// TogglePin pins or unpins id and reports the id acted on and whether it is
// pinned afterwards. An empty id means the active section.
func (n *Navigator) TogglePin(id string) (string, bool, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if id == "" {
		if len(n.active) == 0 {
			return "", false, ErrNoActiveSection
		}
		id = n.active[len(n.active)-1]
	}
	pinned, err := n.pins.Toggle(id)
	if err != nil {
		return id, false, err
	}
	n.log.Debug("toggled pin", zap.String("id", id), zap.Bool("pinned", pinned))
	return id, pinned, nil
}

// Pins returns the pin set.
func (n *Navigator) Pins() *pins.Set { return n.pins }

// Menu returns the table of contents menu, nil when no layout is loaded.
func (n *Navigator) Menu() *toc.Menu { return n.menu }

// Link returns the href for id.
func (n *Navigator) Link(id string) string { return n.linker.LinkTo(id) }

// ShowReferences opens the reference pane on the references to id.
func (n *Navigator) ShowReferences(id string) ([]refpane.Row, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.pane.ShowReferences(id)
}

// ShowSDOs opens the reference pane on the operations over altID.
func (n *Navigator) ShowSDOs(altID string) []refpane.SDORow {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.pane.ShowSDOs(altID)
}

// ClosePane closes the reference pane.
func (n *Navigator) ClosePane() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.pane.Deactivate()
}

// SetTOCScroll records the scroll offset of the table of contents panel.
func (n *Navigator) SetTOCScroll(offset int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.tocScroll = offset
}

// Snapshot captures the restorable presentation state for session.
func (n *Navigator) Snapshot(session string) types.Snapshot {
	n.mu.Lock()
	defer n.mu.Unlock()
	snap := types.Snapshot{
		Session:     session,
		SearchValue: n.searchValue,
		TOCScroll:   n.tocScroll,
		Pane:        n.pane.State(),
	}
	if n.menu != nil {
		snap.MenuVisible = n.menu.IsVisible()
		snap.ExpandedPaths = n.menu.ExpandedPaths()
	}
	return snap
}

// Restore reapplies a snapshot: the table of contents, the reference pane,
// then the saved search, whose output is returned.
func (n *Navigator) Restore(snap types.Snapshot) (search.SearchOutput, error) {
	n.mu.Lock()
	if n.menu != nil {
		n.menu.RestoreExpanded(snap.ExpandedPaths)
		if snap.MenuVisible {
			n.menu.Show()
		} else {
			n.menu.Hide()
		}
	}
	n.tocScroll = snap.TOCScroll
	err := n.pane.Restore(snap.Pane)
	n.mu.Unlock()
	if err != nil {
		return search.SearchOutput{}, fmt.Errorf("restoring pane: %w", err)
	}

	n.log.Debug("restored snapshot", zap.String("id", snap.ID), zap.String("session", snap.Session))
	return n.Search(snap.SearchValue), nil
}
