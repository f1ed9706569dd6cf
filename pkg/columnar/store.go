package columnar

import (
	"fmt"

	"github.com/columnlab/tabular/pkg/errors"
)

// Store is an immutable typed columnar table: an ordered, fixed-arity
// sequence of homogeneously typed columns, their names, and a row count.
// A Store is created only by ingestion (ReadFromCSV/ReadFrom) or by Filter;
// no operation mutates an existing Store's data or shape.
type Store struct {
	columns []Column
	names   []string
	rows    int
}

// NumRows returns the number of data rows.
func (s *Store) NumRows() int { return s.rows }

// NumCols returns the fixed column arity.
func (s *Store) NumCols() int { return len(s.columns) }

// ColumnNames returns the ordered column names, as read verbatim from the
// source header. The returned slice is a copy.
func (s *Store) ColumnNames() []string {
	names := make([]string, len(s.names))
	copy(names, s.names)
	return names
}

// ColumnTypes returns the ordered declared column types.
func (s *Store) ColumnTypes() []ColumnType {
	types := make([]ColumnType, len(s.columns))
	for i, c := range s.columns {
		types[i] = c.Type()
	}
	return types
}

// Column returns the column at the given ordinal index. Index validity is a
// construction constraint: out-of-range indices panic rather than error.
func (s *Store) Column(i int) Column {
	return s.columns[i]
}

// Row synthesizes the tuple of values at the given row index, one owned copy
// per column in declaration order.
func (s *Store) Row(index int) ([]interface{}, error) {
	if index < 0 || index >= s.rows {
		return nil, errors.Newf(errors.ErrorTypeRowIndexOutOfBounds,
			"row index %d out of range [0, %d)", index, s.rows)
	}

	row := make([]interface{}, len(s.columns))
	for i, col := range s.columns {
		row[i] = col.Value(index)
	}
	return row, nil
}

// lookup resolves a column by exact name match, taking the first match when
// names collide. Lookup is case-sensitive and performs no trimming.
func (s *Store) lookup(name string) (int, error) {
	for i, n := range s.names {
		if n == name {
			return i, nil
		}
	}
	return 0, errors.Newf(errors.ErrorTypeColumnNotFound, "no column named %q", name)
}

// View returns a typed, read-only window over the column at the given
// ordinal index. The element type T is fixed at the call site and must equal
// the column's declared type; using the wrong index or type is a programming
// error and panics. The slice aliases the store's backing array: it must not
// be mutated and must not outlive the store.
func View[T Value](s *Store, index int) []T {
	col := s.columns[index]
	if v, ok := typedValues[T](col); ok {
		return v
	}
	panic(fmt.Sprintf("columnar: column %d holds %s values, not %T",
		index, col.Type(), *new(T)))
}

// ViewNamed returns a typed, read-only window over the first column whose
// name equals the argument exactly. It fails with ColumnNotFound when no
// name matches, and with ColumnTypeMismatch when the name matches but the
// requested element type differs from the column's declared type.
func ViewNamed[T Value](s *Store, name string) ([]T, error) {
	index, err := s.lookup(name)
	if err != nil {
		return nil, err
	}

	col := s.columns[index]
	v, ok := typedValues[T](col)
	if !ok {
		return nil, errors.Newf(errors.ErrorTypeColumnTypeMismatch,
			"column %q holds %s values, not %T", name, col.Type(), *new(T))
	}
	return v, nil
}

// typedValues extracts the backing slice of a column when its element type
// is exactly T.
func typedValues[T Value](col Column) ([]T, bool) {
	switch c := col.(type) {
	case *IntColumn:
		if v, ok := interface{}(c.values).([]T); ok {
			return v, true
		}
	case *FloatColumn:
		if v, ok := interface{}(c.values).([]T); ok {
			return v, true
		}
	case *StringColumn:
		if v, ok := interface{}(c.values).([]T); ok {
			return v, true
		}
	}
	return nil, false
}
