// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package outline tracks which section of a rendered document is active for
// the current scroll position. It reads geometry through the Node interface,
// so the same tracker runs against a live layout engine or a recorded layout
// snapshot (see Element).
package outline

// Rect is the vertical extent of a node relative to the top of the viewport.
// Negative values lie above the viewport.
type Rect struct {
	Top    float64
	Bottom float64
}

// Margins are the effective computed vertical margins of a node.
type Margins struct {
	Top    float64
	Bottom float64
}

// Node is a read-only view of one element of the document tree. Geometry is
// read fresh on every call.
type Node interface {
	Tag() string
	ID() string
	Children() []Node
	Rect() Rect
	Margins() Margins
}

// Structural tags.
const (
	TagClause = "emu-clause"
	TagIntro  = "emu-intro"
	TagAnnex  = "emu-annex"
	TagImport = "emu-import"
)

// IsContainer reports whether tag marks a section worth tracking.
func IsContainer(tag string) bool {
	switch tag {
	case TagClause, TagIntro, TagAnnex:
		return true
	}
	return false
}

// IsTransparent reports whether tag is a transclusion wrapper whose children
// belong to the enclosing container.
func IsTransparent(tag string) bool {
	return tag == TagImport
}

// ChildContainers returns the containers directly below n in document order,
// looking through transparent wrappers. Other elements are ignored.
func ChildContainers(n Node) []Node {
	var out []Node
	for _, c := range n.Children() {
		switch {
		case IsTransparent(c.Tag()):
			out = append(out, ChildContainers(c)...)
		case IsContainer(c.Tag()):
			out = append(out, c)
		}
	}
	return out
}

// PathIDs returns the ids along path.
func PathIDs(path []Node) []string {
	ids := make([]string, len(path))
	for i, n := range path {
		ids[i] = n.ID()
	}
	return ids
}
