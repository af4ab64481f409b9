// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/specnav/internal/biblio"
	"github.com/pdiddy/specnav/internal/navigator"
	"github.com/pdiddy/specnav/internal/outline"
	"github.com/pdiddy/specnav/internal/pins"
	"github.com/pdiddy/specnav/internal/refpane"
	"github.com/pdiddy/specnav/internal/search"
	"github.com/pdiddy/specnav/internal/state"
	"github.com/pdiddy/specnav/internal/toc"
	"github.com/pdiddy/specnav/pkg/types"
)

// document holds the loaded payloads a command works on.
type document struct {
	idx    *biblio.Index
	sdos   types.SDOMap
	linker biblio.Linker
}

// loadDocument reads the bibliography and, when configured, the SDO and
// section maps.
func loadDocument(cmd *cobra.Command) (*document, error) {
	bc := cfg.Bibliography
	if bc.Path == "" {
		return nil, fmt.Errorf("no bibliography configured: pass --biblio or set bibliography.path")
	}
	log := logFor(cmd)

	idx, err := biblio.LoadIndex(bc.Path)
	if err != nil {
		return nil, err
	}
	if err := idx.Validate(); err != nil {
		return nil, err
	}
	doc := &document{idx: idx, sdos: types.SDOMap{}}

	if bc.SDOPath != "" {
		doc.sdos, err = biblio.LoadSDOMap(bc.SDOPath)
		if err != nil {
			return nil, err
		}
	}
	if bc.SectionsPath != "" {
		sections, err := biblio.LoadSections(bc.SectionsPath)
		if err != nil {
			return nil, err
		}
		doc.linker = biblio.Linker{IDToSection: sections}
	}

	log.Debug("loaded bibliography")
	return doc, nil
}

// newNavigator assembles a navigator over doc. layout may be nil.
func newNavigator(cmd *cobra.Command, doc *document, layout *outline.Layout) (*navigator.Navigator, error) {
	log := logFor(cmd)

	d := navigator.Deps{
		Index:  doc.idx,
		Engine: search.NewEngine(doc.idx, cfg.Search, log),
		Pins:   pins.NewSet(doc.idx, doc.linker, log),
		Pane:   refpane.NewPane(doc.idx, doc.sdos, doc.linker, log),
		Linker: doc.linker,
		Logger: log,
	}
	if layout != nil {
		height := cfg.Tracker.ViewportHeight
		if layout.Viewport > 0 {
			height = layout.Viewport
		}
		d.Tracker = outline.NewTracker(height, log)
		d.Menu = toc.NewMenu(toc.FromLayout(layout.Root), log)
	}

	return navigator.New(d)
}

// navigatorFromFlags builds a navigator over doc, with a section tracker
// and table of contents when the command's --layout flag is set.
func navigatorFromFlags(cmd *cobra.Command, doc *document) (*navigator.Navigator, *outline.Layout, error) {
	var l *outline.Layout
	if path, _ := cmd.Flags().GetString("layout"); path != "" {
		var err error
		if l, err = layoutFromFlags(cmd); err != nil {
			return nil, nil, err
		}
	}
	n, err := newNavigator(cmd, doc, l)
	if err != nil {
		return nil, nil, err
	}
	return n, l, nil
}

// openStore opens the state store and loads the stored pins into n when n
// is not nil.
func openStore(cmd *cobra.Command, n *navigator.Navigator) (*state.Store, error) {
	store, err := state.NewStore(cfg.State)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return store, nil
	}
	ids, err := store.Pins(cmd.Context())
	if err != nil {
		store.Close()
		return nil, err
	}
	if dropped := n.Pins().Load(ids); len(dropped) > 0 {
		logFor(cmd).Info("dropped pins that no longer resolve", zap.Strings("ids", dropped))
		if err := store.SavePins(cmd.Context(), n.Pins().IDs()); err != nil {
			store.Close()
			return nil, err
		}
	}
	return store, nil
}
