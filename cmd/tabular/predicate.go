package main

import (
	"strconv"
	"strings"

	"github.com/columnlab/tabular/pkg/columnar"
	"github.com/columnlab/tabular/pkg/errors"
)

// operators in match order: two-character forms before their one-character
// prefixes.
var operators = []string{"<=", ">=", "==", "!=", "<", ">"}

type clause struct {
	column  string
	op      string
	literal string
}

// parseClause splits a predicate expression of the form "column OP literal".
// Column name and literal are trimmed of surrounding whitespace; the column
// name itself may not contain an operator character.
func parseClause(expr string) (clause, error) {
	for _, op := range operators {
		idx := strings.Index(expr, op)
		if idx < 0 {
			continue
		}
		cl := clause{
			column:  strings.TrimSpace(expr[:idx]),
			op:      op,
			literal: strings.TrimSpace(expr[idx+len(op):]),
		}
		if cl.column == "" {
			return clause{}, errors.Newf(errors.ErrorTypeConfig, "predicate %q has no column", expr)
		}
		if cl.literal == "" {
			return clause{}, errors.Newf(errors.ErrorTypeConfig, "predicate %q has no literal", expr)
		}
		return cl, nil
	}
	return clause{}, errors.Newf(errors.ErrorTypeConfig,
		"predicate %q has no operator (expected one of %s)", expr, strings.Join(operators, " "))
}

// applyWhere parses one predicate expression and filters the store with it.
// The literal is converted to the column's declared type before filtering.
func applyWhere(s *columnar.Store, expr string) (*columnar.Store, error) {
	cl, err := parseClause(expr)
	if err != nil {
		return nil, err
	}

	colType, err := columnTypeOf(s, cl.column)
	if err != nil {
		return nil, err
	}

	switch colType {
	case columnar.TypeInt:
		rhs, err := strconv.ParseInt(cl.literal, 10, 64)
		if err != nil {
			return nil, errors.Newf(errors.ErrorTypeConfig,
				"predicate %q: literal %q is not an integer", expr, cl.literal)
		}
		return columnar.Filter(s, cl.column, compare(cl.op, rhs))
	case columnar.TypeFloat:
		rhs, err := strconv.ParseFloat(cl.literal, 64)
		if err != nil {
			return nil, errors.Newf(errors.ErrorTypeConfig,
				"predicate %q: literal %q is not a number", expr, cl.literal)
		}
		return columnar.Filter(s, cl.column, compare(cl.op, rhs))
	default:
		return columnar.Filter(s, cl.column, compare(cl.op, cl.literal))
	}
}

func columnTypeOf(s *columnar.Store, name string) (columnar.ColumnType, error) {
	types := s.ColumnTypes()
	for i, n := range s.ColumnNames() {
		if n == name {
			return types[i], nil
		}
	}
	return 0, errors.Newf(errors.ErrorTypeColumnNotFound, "no column named %q", name)
}

// compare builds a typed predicate for one comparison operator. Strings
// compare lexicographically.
func compare[T columnar.Value](op string, rhs T) func(T) bool {
	switch op {
	case "<":
		return func(v T) bool { return v < rhs }
	case "<=":
		return func(v T) bool { return v <= rhs }
	case ">":
		return func(v T) bool { return v > rhs }
	case ">=":
		return func(v T) bool { return v >= rhs }
	case "!=":
		return func(v T) bool { return v != rhs }
	default: // "=="
		return func(v T) bool { return v == rhs }
	}
}
