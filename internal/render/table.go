// Package render prints stores as fixed-width text tables for the CLI.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/columnlab/tabular/pkg/columnar"
)

const minColumnWidth = 8

// Table writes up to maxRows rows of the store as a fixed-width table.
// A negative maxRows prints every row. Returns the number of rows printed.
func Table(w io.Writer, s *columnar.Store, maxRows int) (int, error) {
	names := s.ColumnNames()
	widths := make([]int, len(names))
	for i, name := range names {
		widths[i] = minColumnWidth
		if len(name)+2 > widths[i] {
			widths[i] = len(name) + 2
		}
	}

	rows := s.NumRows()
	if maxRows >= 0 && maxRows < rows {
		rows = maxRows
	}

	var b strings.Builder
	for i, name := range names {
		fmt.Fprintf(&b, "%*s", widths[i], name)
	}
	b.WriteByte('\n')
	total := 0
	for _, width := range widths {
		total += width
	}
	b.WriteString(strings.Repeat("-", total))
	b.WriteByte('\n')

	for i := 0; i < rows; i++ {
		row, err := s.Row(i)
		if err != nil {
			return 0, err
		}
		for j, v := range row {
			fmt.Fprintf(&b, "%*s", widths[j], formatValue(v))
		}
		b.WriteByte('\n')
	}

	if rows < s.NumRows() {
		fmt.Fprintf(&b, "... %d more rows\n", s.NumRows()-rows)
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return 0, err
	}
	return rows, nil
}

func formatValue(v interface{}) string {
	switch x := v.(type) {
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'g', 6, 64)
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}
