package columnar

import (
	"strconv"
	"strings"

	"github.com/columnlab/tabular/pkg/errors"
)

// ColumnType represents the declared scalar type of a column.
type ColumnType int

const (
	// TypeInt is a base-10 64-bit signed integer column.
	TypeInt ColumnType = iota
	// TypeFloat is a 64-bit floating point column.
	TypeFloat
	// TypeString is a verbatim text column.
	TypeString
)

// String returns the manifest spelling of the type.
func (t ColumnType) String() string {
	switch t {
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeString:
		return "string"
	default:
		return "unknown"
	}
}

// Value constrains the Go representations of column scalars. The constraint
// is exact (no type approximations) so that typed views and predicates bind
// to the storage representation itself.
type Value interface {
	int64 | float64 | string
}

// Column is one homogeneously typed, contiguous sequence of scalar values
// within a Store. Concrete columns expose their storage through typed views;
// this interface carries the type-erased operations the Store needs.
type Column interface {
	// Type returns the declared scalar type.
	Type() ColumnType
	// Len returns the number of values.
	Len() int
	// Value returns the scalar at index i as an owned copy.
	Value(i int) interface{}

	// appendField parses a raw text field against the column's type and
	// appends it. Used only during ingestion, before a store is published.
	appendField(field string) error
	// take builds a new column holding the values at the given row
	// indices, in order. Used by Filter.
	take(indices []int) Column
}

// newColumn creates an empty column of the given type.
func newColumn(colType ColumnType) Column {
	switch colType {
	case TypeInt:
		return &IntColumn{}
	case TypeFloat:
		return &FloatColumn{}
	default:
		return &StringColumn{}
	}
}

// IntColumn stores base-10 integer values.
type IntColumn struct {
	values []int64
}

// Type returns TypeInt.
func (c *IntColumn) Type() ColumnType { return TypeInt }

// Len returns the number of values.
func (c *IntColumn) Len() int { return len(c.values) }

// Value returns the value at index i.
func (c *IntColumn) Value(i int) interface{} { return c.values[i] }

// Values returns a read-only view over the column storage. The slice aliases
// the store's backing array and must not be mutated or outlive the store.
func (c *IntColumn) Values() []int64 { return c.values }

func (c *IntColumn) appendField(field string) error {
	// The entire field must parse, and the sign grammar is an optional
	// '-' only: no leading '+', no partial parse, no trailing characters.
	if strings.HasPrefix(field, "+") {
		return errors.New(errors.ErrorTypeParse, "not a base-10 integer").
			WithDetail("field", field)
	}
	v, err := strconv.ParseInt(field, 10, 64)
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeParse, "not a base-10 integer").
			WithDetail("field", field)
	}
	c.values = append(c.values, v)
	return nil
}

func (c *IntColumn) take(indices []int) Column {
	out := make([]int64, len(indices))
	for i, idx := range indices {
		out[i] = c.values[idx]
	}
	return &IntColumn{values: out}
}

// FloatColumn stores floating point values.
type FloatColumn struct {
	values []float64
}

// Type returns TypeFloat.
func (c *FloatColumn) Type() ColumnType { return TypeFloat }

// Len returns the number of values.
func (c *FloatColumn) Len() int { return len(c.values) }

// Value returns the value at index i.
func (c *FloatColumn) Value(i int) interface{} { return c.values[i] }

// Values returns a read-only view over the column storage.
func (c *FloatColumn) Values() []float64 { return c.values }

func (c *FloatColumn) appendField(field string) error {
	// Locale-independent decimal point; range errors are parse failures.
	// The same sign grammar as integers: no leading '+'.
	if strings.HasPrefix(field, "+") {
		return errors.New(errors.ErrorTypeParse, "not a floating point number").
			WithDetail("field", field)
	}
	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeParse, "not a floating point number").
			WithDetail("field", field)
	}
	c.values = append(c.values, v)
	return nil
}

func (c *FloatColumn) take(indices []int) Column {
	out := make([]float64, len(indices))
	for i, idx := range indices {
		out[i] = c.values[idx]
	}
	return &FloatColumn{values: out}
}

// StringColumn stores text values verbatim.
type StringColumn struct {
	values []string
}

// Type returns TypeString.
func (c *StringColumn) Type() ColumnType { return TypeString }

// Len returns the number of values.
func (c *StringColumn) Len() int { return len(c.values) }

// Value returns the value at index i.
func (c *StringColumn) Value(i int) interface{} { return c.values[i] }

// Values returns a read-only view over the column storage.
func (c *StringColumn) Values() []string { return c.values }

func (c *StringColumn) appendField(field string) error {
	// Text fields are accepted verbatim; no failure is possible.
	c.values = append(c.values, field)
	return nil
}

func (c *StringColumn) take(indices []int) Column {
	out := make([]string, len(indices))
	for i, idx := range indices {
		out[i] = c.values[idx]
	}
	return &StringColumn{values: out}
}
