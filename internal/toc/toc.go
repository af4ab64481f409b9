// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package toc holds the table of contents behind the navigation menu: the
// item tree built from a document layout, which items are expanded, and
// which chain of items is revealed for the active section.
package toc

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/specnav/internal/outline"
)

// ErrInvalidPath indicates a child-index path that names no item.
var ErrInvalidPath = errors.New("no toc item at path")

// Item is one entry of the table of contents.
type Item struct {
	ID       string
	Number   string
	Title    string
	Children []*Item
}

// Label returns the number and title as shown in the menu.
func (it *Item) Label() string {
	if it.Number == "" {
		return it.Title
	}
	return it.Number + " " + it.Title
}

// FromLayout builds the table of contents from the section containers of a
// layout, looking through transclusion wrappers.
func FromLayout(root *outline.Element) []*Item {
	if root == nil {
		return nil
	}
	var items []*Item
	for _, c := range root.Children {
		switch {
		case outline.IsTransparent(c.Tag):
			items = append(items, FromLayout(c)...)
		case outline.IsContainer(c.Tag):
			items = append(items, &Item{
				ID:       c.ID,
				Number:   c.Number,
				Title:    c.Title,
				Children: FromLayout(c),
			})
		}
	}
	return items
}

// Revealed is the outcome of Reveal: the child-index path of every item
// marked revealed and the leaf item, nil when the chain stopped early.
type Revealed struct {
	Path []int
	Leaf *Item
}

// Menu is the navigation menu state. It is not safe for concurrent use.
type Menu struct {
	items    []*Item
	visible  bool
	expanded map[string][]int
	revealed Revealed
	log      *zap.Logger
}

// NewMenu returns a hidden menu over items with nothing expanded.
func NewMenu(items []*Item, log *zap.Logger) *Menu {
	if log == nil {
		log = zap.NewNop()
	}
	return &Menu{items: items, expanded: map[string][]int{}, log: log}
}

// Items returns the top-level items.
func (m *Menu) Items() []*Item { return m.items }

func (m *Menu) Toggle()         { m.visible = !m.visible }
func (m *Menu) Show()           { m.visible = true }
func (m *Menu) Hide()           { m.visible = false }
func (m *Menu) IsVisible() bool { return m.visible }

// Lookup returns the item at a child-index path.
func (m *Menu) Lookup(path []int) (*Item, error) {
	if len(path) == 0 {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	level := m.items
	var it *Item
	for _, i := range path {
		if i < 0 || i >= len(level) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPath, path)
		}
		it = level[i]
		level = it.Children
	}
	return it, nil
}

// ToggleItem flips the expanded state of the item at path and reports the
// new state.
func (m *Menu) ToggleItem(path []int) (bool, error) {
	if _, err := m.Lookup(path); err != nil {
		return false, err
	}
	k := pathKey(path)
	if _, ok := m.expanded[k]; ok {
		delete(m.expanded, k)
		return false, nil
	}
	m.expanded[k] = slices.Clone(path)
	return true, nil
}

// IsExpanded reports whether the item at path is expanded.
func (m *Menu) IsExpanded(path []int) bool {
	_, ok := m.expanded[pathKey(path)]
	return ok
}

// ExpandedPaths returns the expanded items in document order.
func (m *Menu) ExpandedPaths() [][]int {
	out := make([][]int, 0, len(m.expanded))
	for _, p := range m.expanded {
		out = append(out, slices.Clone(p))
	}
	slices.SortFunc(out, func(a, b []int) int { return slices.Compare(a, b) })
	return out
}

// RestoreExpanded replaces the expanded set. Paths that no longer name an
// item are skipped.
func (m *Menu) RestoreExpanded(paths [][]int) {
	m.expanded = map[string][]int{}
	for _, p := range paths {
		if _, err := m.Lookup(p); err != nil {
			m.log.Debug("skipping stale toc path", zap.Ints("path", p))
			continue
		}
		m.expanded[pathKey(p)] = slices.Clone(p)
	}
}

// Reveal clears the previous reveal and marks the chain of items whose ids
// follow ids level by level. The last item is the revealed leaf. When an id
// has no item at its level the chain stops there and Reveal reports false.
func (m *Menu) Reveal(ids []string) (Revealed, bool) {
	m.revealed = Revealed{}

	level := m.items
	for depth, id := range ids {
		i := slices.IndexFunc(level, func(it *Item) bool { return it.ID == id })
		if i < 0 {
			m.log.Info("could not find location in table of contents",
				zap.Strings("path", ids),
				zap.Int("depth", depth))
			return m.Revealed(), false
		}
		m.revealed.Path = append(m.revealed.Path, i)
		if depth == len(ids)-1 {
			m.revealed.Leaf = level[i]
		}
		level = level[i].Children
	}
	return m.Revealed(), true
}

// Revealed returns the result of the last Reveal.
func (m *Menu) Revealed() Revealed {
	return Revealed{Path: slices.Clone(m.revealed.Path), Leaf: m.revealed.Leaf}
}

// Walk calls fn for every item in document order with its child-index path.
func (m *Menu) Walk(fn func(path []int, it *Item)) {
	var walk func(prefix []int, items []*Item)
	walk = func(prefix []int, items []*Item) {
		for i, it := range items {
			p := append(slices.Clone(prefix), i)
			fn(p, it)
			walk(p, it.Children)
		}
	}
	walk(nil, m.items)
}

func pathKey(path []int) string {
	parts := make([]string, len(path))
	for i, n := range path {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ".")
}
