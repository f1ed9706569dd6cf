package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/columnlab/tabular/pkg/columnar"
)

func TestAnalyzeText(t *testing.T) {
	store, err := columnar.ReadFrom(
		strings.NewReader("id,energy,tag\n1,10.0,a\n2,20.0,b\n3,30.0,c\n"),
		[]columnar.ColumnType{columnar.TypeInt, columnar.TypeFloat, columnar.TypeString})
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, analyze(&buf, store, false))

	out := buf.String()
	assert.Contains(t, out, "[0] id (int):")
	assert.Contains(t, out, "[1] energy (float):")
	assert.Contains(t, out, "mean:   20.0000")
	// String columns are not summarized.
	assert.NotContains(t, out, "tag")
}

func TestAnalyzeDuplicateColumnNames(t *testing.T) {
	store, err := columnar.ReadFrom(
		strings.NewReader("v,v\n1,10\n2,20\n"),
		[]columnar.ColumnType{columnar.TypeInt, columnar.TypeInt})
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, analyze(&buf, store, false))

	// Each position reports its own summary even when names collide.
	out := buf.String()
	assert.Contains(t, out, "[0] v (int):")
	assert.Contains(t, out, "[1] v (int):")
	assert.Contains(t, out, "mean:   1.5000")
	assert.Contains(t, out, "mean:   15.0000")
}

func TestAnalyzeJSONKeepsAllColumns(t *testing.T) {
	store, err := columnar.ReadFrom(
		strings.NewReader("v,v\n1,10\n"),
		[]columnar.ColumnType{columnar.TypeInt, columnar.TypeInt})
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, analyze(&buf, store, true))
	assert.Equal(t, 2, strings.Count(buf.String(), `"column": "v"`))
}
