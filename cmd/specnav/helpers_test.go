// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/specnav/internal/biblio"
	"github.com/pdiddy/specnav/internal/navigator"
	"github.com/pdiddy/specnav/internal/outline"
	"github.com/pdiddy/specnav/internal/search"
	"github.com/pdiddy/specnav/internal/toc"
	"github.com/pdiddy/specnav/pkg/types"
)

func TestParsePath(t *testing.T) {
	got, err := parsePath("1.0.2")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 2}, got)

	_, err = parsePath("1.x")
	assert.Error(t, err)
}

func TestIsPrefix(t *testing.T) {
	assert.True(t, isPrefix([]int{1}, []int{1, 2}))
	assert.True(t, isPrefix([]int{1, 2}, []int{1, 2}))
	assert.False(t, isPrefix([]int{1, 3}, []int{1, 2}))
	assert.False(t, isPrefix(nil, []int{1}))
	assert.False(t, isPrefix([]int{1, 2, 0}, []int{1, 2}))
}

func TestPrintActive(t *testing.T) {
	idx, err := biblio.LoadIndex("../../internal/biblio/testdata/biblio.json")
	require.NoError(t, err)
	l, err := outline.LoadLayout("../../internal/outline/testdata/layout.yaml")
	require.NoError(t, err)

	n, err := navigator.New(navigator.Deps{
		Index:   idx,
		Engine:  search.NewEngine(idx, types.SearchConfig{}, nil),
		Tracker: outline.NewTracker(l.Viewport, nil),
		Menu:    toc.NewMenu(toc.FromLayout(l.Root), nil),
	})
	require.NoError(t, err)

	ids, err := n.UpdateActive(l.Root.At(1250))
	require.NoError(t, err)

	var buf bytes.Buffer
	printActive(&buf, n, ids)
	out := buf.String()
	assert.Contains(t, out, "Active: sec-1 > sec-1-3\n")
	assert.Contains(t, out, "> 1 Shared Structs  #sec-1\n")
	assert.Contains(t, out, "*   1.3 Imported Clause  #sec-1-3\n")
	assert.Contains(t, out, "\n    1.1 Syntax  #sec-1-1\n")
}
