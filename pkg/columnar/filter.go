package columnar

// Filter derives a new Store containing only the rows for which the
// predicate holds over the named column, preserving original row order and
// every column. The column is resolved by the same name lookup as ViewNamed,
// so ColumnNotFound and ColumnTypeMismatch propagate unchanged.
//
// The predicate is evaluated exactly once per row, in row order, and must be
// free of observable side effects. The source Store is never modified, so
// filters chain: a filtered Store is a fully valid Store of the same shape.
func Filter[T Value](s *Store, column string, predicate func(T) bool) (*Store, error) {
	values, err := ViewNamed[T](s, column)
	if err != nil {
		return nil, err
	}

	keep := make([]int, 0, s.rows)
	for i, v := range values {
		if predicate(v) {
			keep = append(keep, i)
		}
	}

	// Filtering selects whole rows: every column copies the retained
	// indices, not only the predicate's column.
	columns := make([]Column, len(s.columns))
	for i, col := range s.columns {
		columns[i] = col.take(keep)
	}

	names := make([]string, len(s.names))
	copy(names, s.names)

	return &Store{columns: columns, names: names, rows: len(keep)}, nil
}
