// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package steps

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabel(t *testing.T) {
	tests := []struct {
		index []int
		want  string
	}{
		{[]int{0}, "1"},
		{[]int{99}, "100"},
		{[]int{100}, "?"},
		{[]int{0, 0}, "a"},
		{[]int{3, 25}, "z"},
		{[]int{3, 26}, "?"},
		{[]int{0, 0, 3}, "iv"},
		{[]int{0, 0, 24}, "xxv"},
		{[]int{0, 0, 25}, "?"},
		{[]int{0, 0, 0, 4}, "5"},
		{[]int{0, 0, 0, 0, 1}, "b"},
		{[]int{0, 0, 0, 0, 0, 8}, "ix"},
		{[]int{0, 0, 0, 0, 0, 0, 8}, "ix"},
		{[]int{0, 0, 0, 0, 0, 0, 0, 30}, "?"},
		{[]int{-1}, "?"},
		{nil, "?"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Label(tt.index), "index %v", tt.index)
	}
}

func TestLoadAndNumber(t *testing.T) {
	steps, err := Load("testdata/algorithm.yaml")
	require.NoError(t, err)
	require.Len(t, steps, 4)

	lines := Number(steps)
	require.Len(t, lines, 8)
	assert.Equal(t, Line{Index: []int{2, 1, 0}, Label: "i", Text: "Throw a TypeError exception."}, lines[6])
	assert.Equal(t, 2, lines[6].Depth())

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, lines))
	assert.Equal(t, `1. Let struct be the this value.
2. If struct is not a Shared Struct, then
  a. Throw a TypeError exception.
3. For each field of fields, do
  a. Let value be ? Get(struct, field).
  b. If CanBeSharedAcrossAgents(value) is false, then
    i. Throw a TypeError exception.
4. Return unused.
`, buf.String())
}

func TestNumberEmpty(t *testing.T) {
	assert.Empty(t, Number(nil))
}
