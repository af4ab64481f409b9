// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package state

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/specnav/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(types.StateConfig{Dir: filepath.Join(t.TempDir(), "state")})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestNewStoreCreatesDatabase(t *testing.T) {
	s := testStore(t)
	_, err := os.Stat(s.Path())
	assert.NoError(t, err)
}

func TestSaveTake(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	id, err := s.Save(ctx, types.Snapshot{
		Session:       "tab-1",
		CreatedAt:     created,
		SearchValue:   "struct",
		MenuVisible:   true,
		ExpandedPaths: [][]int{{1}, {1, 2}},
		TOCScroll:     240,
		Pane:          &types.PaneState{Type: types.PaneReferences, ID: "prod-StructTail"},
	})
	require.NoError(t, err)
	_, err = uuid.Parse(id)
	require.NoError(t, err)

	snap, err := s.Take(ctx, "tab-1")
	require.NoError(t, err)
	assert.Equal(t, types.Snapshot{
		ID:            id,
		Session:       "tab-1",
		CreatedAt:     created,
		SearchValue:   "struct",
		MenuVisible:   true,
		ExpandedPaths: [][]int{{1}, {1, 2}},
		TOCScroll:     240,
		Pane:          &types.PaneState{Type: types.PaneReferences, ID: "prod-StructTail"},
	}, snap)

	_, err = s.Take(ctx, "tab-1")
	assert.ErrorIs(t, err, ErrNoSnapshot)
}

func TestTakeReturnsLatestPerSession(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)

	_, err := s.Save(ctx, types.Snapshot{Session: "a", SearchValue: "first"})
	require.NoError(t, err)
	_, err = s.Save(ctx, types.Snapshot{Session: "b", SearchValue: "other"})
	require.NoError(t, err)
	_, err = s.Save(ctx, types.Snapshot{Session: "a", SearchValue: "second"})
	require.NoError(t, err)

	snap, err := s.Take(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "second", snap.SearchValue)
	assert.Nil(t, snap.Pane)
	assert.Empty(t, snap.ExpandedPaths)

	snap, err = s.Take(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "first", snap.SearchValue)

	remaining, err := s.Snapshots(ctx, "")
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "b", remaining[0].Session)
}

func TestDefaultSession(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)

	_, err := s.Save(ctx, types.Snapshot{SearchValue: "x"})
	require.NoError(t, err)
	snap, err := s.Take(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, types.DefaultSession, snap.Session)
	assert.False(t, snap.CreatedAt.IsZero())
}

func TestPins(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)

	ids, err := s.Pins(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)

	require.NoError(t, s.SavePins(ctx, []string{"sec-structs", "intro", "sec-structs", "prod-StructTail"}))
	ids, err = s.Pins(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"sec-structs", "intro", "prod-StructTail"}, ids)

	require.NoError(t, s.SavePins(ctx, []string{"intro"}))
	ids, err = s.Pins(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"intro"}, ids)
}

func TestPersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	cfg := types.StateConfig{Dir: t.TempDir()}

	s, err := NewStore(cfg)
	require.NoError(t, err)
	require.NoError(t, s.SavePins(ctx, []string{"intro"}))
	_, err = s.Save(ctx, types.Snapshot{Session: "s", TOCScroll: 7})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = NewStore(cfg)
	require.NoError(t, err)
	defer s.Close()

	ids, err := s.Pins(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"intro"}, ids)

	snap, err := s.Take(ctx, "s")
	require.NoError(t, err)
	assert.Equal(t, 7, snap.TOCScroll)
}

func TestExport(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)

	require.NoError(t, s.SavePins(ctx, []string{"intro"}))
	id, err := s.Save(ctx, types.Snapshot{
		Session: "tab",
		Pane:    &types.PaneState{Type: types.PaneSDOs, ID: "prod-e2ZCr45r"},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, s.ExportYAML(ctx, &buf))
	var fromYAML Export
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &fromYAML))
	assert.Equal(t, []string{"intro"}, fromYAML.Pins)
	require.Len(t, fromYAML.Snapshots, 1)
	assert.Equal(t, id, fromYAML.Snapshots[0].ID)
	assert.Equal(t, types.PaneSDOs, fromYAML.Snapshots[0].Pane.Type)

	buf.Reset()
	require.NoError(t, s.ExportJSON(ctx, &buf))
	var fromJSON Export
	require.NoError(t, json.Unmarshal(buf.Bytes(), &fromJSON))
	assert.Equal(t, fromYAML.Pins, fromJSON.Pins)
	require.Len(t, fromJSON.Snapshots, 1)
	assert.Equal(t, "tab", fromJSON.Snapshots[0].Session)
}
