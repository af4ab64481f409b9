// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package outline

import (
	"sort"

	"go.uber.org/zap"
)

// Tracker selects the active section path for a viewport of fixed height.
// It keeps no state between calls.
type Tracker struct {
	ViewportHeight float64
	log            *zap.Logger
}

// NewTracker returns a Tracker for a viewport of the given height.
func NewTracker(viewportHeight float64, log *zap.Logger) *Tracker {
	if log == nil {
		log = zap.NewNop()
	}
	return &Tracker{ViewportHeight: viewportHeight, log: log}
}

type candidate struct {
	node Node
	path []Node
	rect Rect
}

// FindActivePath returns the containers from the outermost down to the active
// section, or an empty path when no container qualifies.
//
// A container whose top lies strictly between the top of the viewport and its
// midpoint and whose bottom is on screen wins outright, first in document
// order. Otherwise the deepest container whose margin-extended extent covers
// the midpoint wins.
func (t *Tracker) FindActivePath(root Node) []Node {
	return t.findFrom(root, []Node{})
}

func (t *Tracker) findFrom(root Node, path []Node) []Node {
	candidates := t.visible(root, path)
	mid := t.ViewportHeight / 2

	for _, c := range candidates {
		if c.rect.Top > 0 && c.rect.Top < mid && c.rect.Bottom <= t.ViewportHeight {
			t.log.Debug("active section above fold", zap.Strings("path", PathIDs(c.path)))
			return c.path
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return len(candidates[i].path) > len(candidates[j].path)
	})
	for _, c := range candidates {
		m := c.node.Margins()
		if c.rect.Top-m.Top <= mid && mid <= c.rect.Bottom+m.Bottom {
			t.log.Debug("active section straddles midpoint", zap.Strings("path", PathIDs(c.path)))
			return c.path
		}
	}

	return path
}

// visible lists, in document order, every container below parent that is at
// least partly inside the viewport. Children of off-screen containers are not
// examined, and a run of visible siblings ends the scan at the first
// off-screen sibling after it.
func (t *Tracker) visible(parent Node, path []Node) []candidate {
	var out []candidate
	seen := false
	for _, c := range ChildContainers(parent) {
		r := c.Rect()
		if !t.inView(r) {
			if seen {
				break
			}
			continue
		}
		seen = true

		p := make([]Node, len(path)+1)
		copy(p, path)
		p[len(path)] = c

		out = append(out, candidate{node: c, path: p, rect: r})
		out = append(out, t.visible(c, p)...)
	}
	return out
}

func (t *Tracker) inView(r Rect) bool {
	return r.Bottom > 0 && r.Top < t.ViewportHeight
}
