package columnar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/columnlab/tabular/pkg/errors"
)

func mustRead(t *testing.T, src string, types []ColumnType) *Store {
	t.Helper()
	store, err := ReadFrom(strings.NewReader(src), types)
	require.NoError(t, err)
	return store
}

func TestRowSynthesis(t *testing.T) {
	store := mustRead(t, "id,energy,tag\n7,13.6,alpha\n8,2.2,beta\n",
		[]ColumnType{TypeInt, TypeFloat, TypeString})

	row, err := store.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{int64(7), 13.6, "alpha"}, row)

	row, err = store.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{int64(8), 2.2, "beta"}, row)
}

func TestRowRoundTripAgainstViews(t *testing.T) {
	store := mustRead(t, "id,energy,tag\n1,1.5,x\n2,2.5,y\n3,3.5,z\n",
		[]ColumnType{TypeInt, TypeFloat, TypeString})

	ids := View[int64](store, 0)
	energies := View[float64](store, 1)
	tags := View[string](store, 2)

	for i := 0; i < store.NumRows(); i++ {
		row, err := store.Row(i)
		require.NoError(t, err)
		assert.Equal(t, []interface{}{ids[i], energies[i], tags[i]}, row)
	}
}

func TestRowIndexBounds(t *testing.T) {
	store := mustRead(t, simpleCSV, simpleTypes)

	// Last valid index succeeds.
	_, err := store.Row(store.NumRows() - 1)
	require.NoError(t, err)

	// index == NumRows fails.
	_, err = store.Row(store.NumRows())
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeRowIndexOutOfBounds))

	_, err = store.Row(-1)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeRowIndexOutOfBounds))
}

func TestViewNamed(t *testing.T) {
	store := mustRead(t, "id,energy\n1,10.5\n2,20.5\n", []ColumnType{TypeInt, TypeFloat})

	energies, err := ViewNamed[float64](store, "energy")
	require.NoError(t, err)
	assert.Equal(t, []float64{10.5, 20.5}, energies)

	_, err = ViewNamed[float64](store, "momentum")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeColumnNotFound))

	// Name matches, requested type does not.
	_, err = ViewNamed[int64](store, "energy")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeColumnTypeMismatch))

	// Lookup is case-sensitive.
	_, err = ViewNamed[float64](store, "Energy")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeColumnNotFound))
}

func TestViewNamedDuplicateTakesFirst(t *testing.T) {
	store := mustRead(t, "v,v\n1,2\n3,4\n", simpleTypes)

	vals, err := ViewNamed[int64](store, "v")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3}, vals)
}

func TestViewWrongTypePanics(t *testing.T) {
	store := mustRead(t, simpleCSV, simpleTypes)

	assert.Panics(t, func() { View[float64](store, 0) })
	assert.Panics(t, func() { View[int64](store, 5) })
}

func TestColumnNamesReturnsCopy(t *testing.T) {
	store := mustRead(t, simpleCSV, simpleTypes)

	names := store.ColumnNames()
	names[0] = "clobbered"
	assert.Equal(t, []string{"id", "value"}, store.ColumnNames())
}

func TestColumnAccessor(t *testing.T) {
	store := mustRead(t, "id,tag\n1,a\n2,b\n", []ColumnType{TypeInt, TypeString})

	col := store.Column(1)
	assert.Equal(t, TypeString, col.Type())
	assert.Equal(t, 2, col.Len())
	assert.Equal(t, "b", col.Value(1))

	sc, ok := col.(*StringColumn)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, sc.Values())
}

func TestColumnTypeString(t *testing.T) {
	assert.Equal(t, "int", TypeInt.String())
	assert.Equal(t, "float", TypeFloat.String())
	assert.Equal(t, "string", TypeString.String())
}
