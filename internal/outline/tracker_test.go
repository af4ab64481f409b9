// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package outline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureLayout(t *testing.T) *Layout {
	t.Helper()
	l, err := LoadLayout("testdata/layout.yaml")
	require.NoError(t, err)
	return l
}

func TestFindActivePath(t *testing.T) {
	l := fixtureLayout(t)
	tr := NewTracker(800, nil)

	tests := []struct {
		name   string
		scroll float64
		want   []string
	}{
		// intro sits at top 0 and never wins the first pass.
		{"top of document falls back to deepest straddler", 0, []string{"sec-1", "sec-1-1"}},
		{"midpoint inside a clause", 1000, []string{"sec-1", "sec-1-2"}},
		{"clause fully below the top edge", 1250, []string{"sec-1", "sec-1-3"}},
		{"annex", 2100, []string{"annex-a"}},
		{"scrolled past the end", 5000, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tr.FindActivePath(l.Root.At(tt.scroll))
			assert.Equal(t, tt.want, PathIDs(got))
		})
	}
}

func TestFindActivePathEmptyTree(t *testing.T) {
	tr := NewTracker(800, nil)
	got := tr.FindActivePath((&Element{Tag: "body", Bottom: 1000}).At(0))
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFindActivePathIdempotent(t *testing.T) {
	l := fixtureLayout(t)
	tr := NewTracker(800, nil)

	root := l.Root.At(1000)
	first := PathIDs(tr.FindActivePath(root))
	second := PathIDs(tr.FindActivePath(root))
	assert.Equal(t, first, second)
}

func TestFindActivePathFirstPassInDocumentOrder(t *testing.T) {
	root := &Element{Tag: "body", Bottom: 1000, Children: []*Element{
		{Tag: TagClause, ID: "a", Top: 100, Bottom: 300},
		{Tag: TagClause, ID: "b", Top: 300, Bottom: 600},
	}}
	tr := NewTracker(800, nil)
	assert.Equal(t, []string{"a"}, PathIDs(tr.FindActivePath(root.At(0))))
}

func TestFindActivePathMargins(t *testing.T) {
	// The midpoint (400) falls in the gap between a and b.
	build := func(aBottom, bTop float64) *Element {
		return &Element{Tag: "body", Bottom: 1000, Children: []*Element{
			{Tag: TagClause, ID: "a", Top: 0, Bottom: 390, MarginBottom: aBottom},
			{Tag: TagClause, ID: "b", Top: 420, Bottom: 1000, MarginTop: bTop},
		}}
	}
	tr := NewTracker(800, nil)

	assert.Equal(t, []string{"a"}, PathIDs(tr.FindActivePath(build(20, 0).At(0))))
	assert.Equal(t, []string{"b"}, PathIDs(tr.FindActivePath(build(0, 30).At(0))))
	assert.Empty(t, tr.FindActivePath(build(0, 0).At(0)))
}

func TestFindActivePathPrefersDeepest(t *testing.T) {
	root := &Element{Tag: "body", Bottom: 3000, Children: []*Element{
		{Tag: TagClause, ID: "outer", Top: -100, Bottom: 2000, Children: []*Element{
			{Tag: TagClause, ID: "mid", Top: -50, Bottom: 1500, Children: []*Element{
				{Tag: TagClause, ID: "inner", Top: -20, Bottom: 1000},
			}},
		}},
	}}
	tr := NewTracker(800, nil)
	assert.Equal(t, []string{"outer", "mid", "inner"}, PathIDs(tr.FindActivePath(root.At(0))))
}

// countingNode records how often its geometry is read.
type countingNode struct {
	id       string
	tag      string
	rect     Rect
	children []Node
	reads    *int
}

func (n *countingNode) Tag() string      { return n.tag }
func (n *countingNode) ID() string       { return n.id }
func (n *countingNode) Children() []Node { return n.children }
func (n *countingNode) Margins() Margins { return Margins{} }

func (n *countingNode) Rect() Rect {
	*n.reads++
	return n.rect
}

func TestFindActivePathPrunesSiblingsAfterVisibleRun(t *testing.T) {
	var reads int
	clause := func(id string, top, bottom float64, kids ...Node) *countingNode {
		return &countingNode{id: id, tag: TagClause, rect: Rect{Top: top, Bottom: bottom}, children: kids, reads: &reads}
	}

	hiddenChild := clause("hidden-child", 1200, 1300)
	root := clause("root", 0, 2000,
		clause("above", -500, -100),
		clause("on-screen", 50, 700),
		clause("below", 900, 1100),
		clause("far-below", 1100, 1500, hiddenChild),
	)

	tr := NewTracker(800, nil)
	got := tr.FindActivePath(root)
	assert.Equal(t, []string{"on-screen"}, PathIDs(got))

	// above, on-screen, below. far-below and its child are never read.
	assert.Equal(t, 3, reads)
}

func TestFindActivePathSkipsChildrenOfHiddenContainers(t *testing.T) {
	var reads int
	child := &countingNode{id: "child", tag: TagClause, rect: Rect{Top: 100, Bottom: 200}, reads: &reads}
	hidden := &countingNode{id: "hidden", tag: TagClause, rect: Rect{Top: -900, Bottom: -10}, children: []Node{child}, reads: &reads}
	root := &countingNode{id: "root", tag: "body", children: []Node{hidden}, reads: &reads}

	tr := NewTracker(800, nil)
	assert.Empty(t, tr.FindActivePath(root))
	assert.Equal(t, 1, reads)
}
