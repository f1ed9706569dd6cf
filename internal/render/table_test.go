package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/columnlab/tabular/pkg/columnar"
)

func TestTable(t *testing.T) {
	store, err := columnar.ReadFrom(strings.NewReader("id,energy\n1,13.6\n2,2.2\n3,511\n"),
		[]columnar.ColumnType{columnar.TypeInt, columnar.TypeFloat})
	require.NoError(t, err)

	var buf strings.Builder
	printed, err := Table(&buf, store, -1)
	require.NoError(t, err)
	assert.Equal(t, 3, printed)

	out := buf.String()
	assert.Contains(t, out, "id")
	assert.Contains(t, out, "energy")
	assert.Contains(t, out, "13.6")
	assert.Contains(t, out, "511")
	assert.NotContains(t, out, "more rows")
}

func TestTableTruncates(t *testing.T) {
	store, err := columnar.ReadFrom(strings.NewReader("id\n1\n2\n3\n4\n"),
		[]columnar.ColumnType{columnar.TypeInt})
	require.NoError(t, err)

	var buf strings.Builder
	printed, err := Table(&buf, store, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, printed)
	assert.Contains(t, buf.String(), "... 2 more rows")
}

func TestTableZeroRows(t *testing.T) {
	store, err := columnar.ReadFrom(strings.NewReader("id,tag\n"),
		[]columnar.ColumnType{columnar.TypeInt, columnar.TypeString})
	require.NoError(t, err)

	var buf strings.Builder
	printed, err := Table(&buf, store, -1)
	require.NoError(t, err)
	assert.Equal(t, 0, printed)
	assert.Contains(t, buf.String(), "tag")
}
