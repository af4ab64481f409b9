// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package refpane

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatReferences(t *testing.T) {
	var buf bytes.Buffer
	FormatReferences("t", []Row{
		{ClauseID: "a", Number: "1.2", Title: "Alpha", Link: "#r1", Extra: []string{"#r2", "#r3"}},
	}, &buf)
	out := buf.String()
	assert.Contains(t, out, "References to #t")
	assert.Contains(t, out, "#r1 (2: #r2) (3: #r3)")

	buf.Reset()
	FormatReferences("t", nil, &buf)
	assert.Contains(t, buf.String(), "No references.")
}

func TestFormatSDOs(t *testing.T) {
	var buf bytes.Buffer
	FormatSDOs("prod-x", []SDORow{{Clause: "1.1.8", Name: "Evaluation", Link: "#a", Extra: []string{"#b"}}}, &buf)
	assert.Contains(t, buf.String(), "Evaluation")
	assert.Contains(t, buf.String(), "#a (2: #b)")

	buf.Reset()
	FormatSDOs("prod-x", nil, &buf)
	assert.Contains(t, buf.String(), "No operations.")
}

func TestFormatJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatJSON([]Row{{ClauseID: "a", Number: "1", Title: "A", Link: "#r"}}, &buf))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0]["clause_id"])
	assert.NotContains(t, got[0], "extra")
}
