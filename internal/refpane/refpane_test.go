// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package refpane

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/specnav/internal/biblio"
	"github.com/pdiddy/specnav/pkg/types"
)

func fixtures(t *testing.T) (*biblio.Index, types.SDOMap) {
	t.Helper()
	idx, err := biblio.LoadIndex("../biblio/testdata/biblio.json")
	require.NoError(t, err)
	sdos, err := biblio.LoadSDOMap("../biblio/testdata/sdomap.json")
	require.NoError(t, err)
	return idx, sdos
}

func TestReferencesFor(t *testing.T) {
	idx, _ := fixtures(t)
	entry, ok := idx.ByID("prod-StructTail")
	require.True(t, ok)

	rows, err := ReferencesFor(idx, biblio.Linker{}, entry)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, Row{
		ClauseID: "sec-structs-syntax-and-eval",
		Number:   "1.1",
		Title:    "Syntax",
		Link:     "#_ref_129",
		Extra:    []string{"#_ref_130", "#_ref_131"},
	}, rows[0])

	var numbers []string
	for _, r := range rows {
		numbers = append(numbers, r.Number)
	}
	assert.Equal(t, []string{"1.1", "1.1.7", "1.1.8", "2.2.7"}, numbers)
	assert.Len(t, rows[2].Extra, 4)
	assert.Empty(t, rows[3].Extra)
}

func TestReferencesForCollapsesAfterSort(t *testing.T) {
	idx, err := biblio.NewIndex(types.Bibliography{
		Entries: []types.Entry{
			{Type: types.EntryClause, ID: "a", TitleHTML: "A", Number: "1"},
			{Type: types.EntryClause, ID: "b", TitleHTML: "B", Number: "2"},
			{Type: types.EntryTerm, ID: "t", Term: "thing", ReferencingIDs: []string{"r3", "r1", "r4", "r2"}},
		},
		RefsByClause: map[string][]string{"a": {"r1", "r2"}, "b": {"r3", "r4"}},
	})
	require.NoError(t, err)
	term, _ := idx.ByID("t")

	rows, err := ReferencesFor(idx, biblio.Linker{}, term)
	require.NoError(t, err)
	assert.Equal(t, []Row{
		{ClauseID: "a", Number: "1", Title: "A", Link: "#r1", Extra: []string{"#r2"}},
		{ClauseID: "b", Number: "2", Title: "B", Link: "#r3", Extra: []string{"#r4"}},
	}, rows)
}

func TestReferencesForMissingClause(t *testing.T) {
	idx, err := biblio.NewIndex(types.Bibliography{
		Entries: []types.Entry{
			{Type: types.EntryTerm, ID: "t", Term: "thing", ReferencingIDs: []string{"orphan"}},
		},
	})
	require.NoError(t, err)
	term, _ := idx.ByID("t")

	_, err = ReferencesFor(idx, biblio.Linker{}, term)
	var missing *biblio.MissingClauseError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "orphan", missing.RefID)
}

func TestReferencesForNoReferences(t *testing.T) {
	idx, _ := fixtures(t)
	entry, _ := idx.ByID("sec-structs")
	rows, err := ReferencesFor(idx, biblio.Linker{}, entry)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestSDOsFor(t *testing.T) {
	_, sdos := fixtures(t)
	linker := biblio.Linker{IDToSection: map[string]string{"prod-CJdKR16y": "index"}}

	rows := SDOsFor(sdos, linker, "prod-e2ZCr45r")
	assert.Equal(t, []SDORow{
		{Clause: "1.1.7", Name: "BindingStructDeclarationEvaluation", Link: "#prod-s2PPFPsU"},
		{Clause: "1.1.8", Name: "Evaluation", Link: "./#prod-CJdKR16y"},
	}, rows)

	rows = SDOsFor(sdos, biblio.Linker{}, "prod-jM8QIEAP")
	require.Len(t, rows, 1)
	assert.Equal(t, "#prod-Zme3aNfH", rows[0].Link)
	assert.Equal(t, []string{"#prod-Zjo3aZoe"}, rows[0].Extra)

	assert.Empty(t, SDOsFor(sdos, biblio.Linker{}, "prod-unknown"))
}

func TestPaneState(t *testing.T) {
	idx, sdos := fixtures(t)
	p := NewPane(idx, sdos, biblio.Linker{}, nil)
	assert.False(t, p.IsActive())
	assert.Nil(t, p.State())

	rows, err := p.ShowReferences("prod-StructTail")
	require.NoError(t, err)
	assert.Len(t, rows, 4)
	assert.Equal(t, &types.PaneState{Type: types.PaneReferences, ID: "prod-StructTail"}, p.State())

	ops := p.ShowSDOs("prod-e2ZCr45r")
	assert.Len(t, ops, 2)
	assert.Nil(t, p.References())
	assert.Equal(t, &types.PaneState{Type: types.PaneSDOs, ID: "prod-e2ZCr45r"}, p.State())

	p.Deactivate()
	assert.False(t, p.IsActive())

	_, err = p.ShowReferences("missing")
	assert.ErrorIs(t, err, biblio.ErrNotFound)
	assert.False(t, p.IsActive())
}

func TestPaneRestore(t *testing.T) {
	idx, sdos := fixtures(t)
	p := NewPane(idx, sdos, biblio.Linker{}, nil)

	require.NoError(t, p.Restore(&types.PaneState{Type: types.PaneReferences, ID: "prod-StructTail"}))
	assert.Len(t, p.References(), 4)

	require.NoError(t, p.Restore(&types.PaneState{Type: types.PaneSDOs, ID: "prod-jM8QIEAP"}))
	assert.Len(t, p.SDOs(), 1)

	require.NoError(t, p.Restore(&types.PaneState{Type: types.PaneReferences, ID: "gone"}))
	assert.False(t, p.IsActive())

	require.NoError(t, p.Restore(nil))
	assert.False(t, p.IsActive())

	assert.Error(t, p.Restore(&types.PaneState{Type: "bogus", ID: "x"}))
}
