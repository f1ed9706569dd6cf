package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndError(t *testing.T) {
	err := New(ErrorTypeColumnNotFound, "no column named \"px\"")
	assert.Equal(t, `column_not_found: no column named "px"`, err.Error())
	assert.NotEmpty(t, err.Stack)
}

func TestWrapPreservesCause(t *testing.T) {
	cause := fmt.Errorf("disk on fire")
	err := Wrap(cause, ErrorTypeSourceNotFound, "cannot open source")

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "disk on fire")
	assert.Nil(t, Wrap(nil, ErrorTypeParse, "ignored"))
}

func TestWrapKeepsInnerStack(t *testing.T) {
	inner := New(ErrorTypeParse, "bad field")
	outer := Wrap(inner, ErrorTypeParse, "row 3")

	require.NotEmpty(t, outer.Stack)
	assert.Equal(t, inner.Stack, outer.Stack)
}

func TestIsTypeAndTypeOf(t *testing.T) {
	err := Newf(ErrorTypeRowIndexOutOfBounds, "row index %d out of range", 9)

	assert.True(t, IsType(err, ErrorTypeRowIndexOutOfBounds))
	assert.False(t, IsType(err, ErrorTypeParse))
	assert.Equal(t, ErrorTypeRowIndexOutOfBounds, TypeOf(err))

	// Wrapped foreign errors still resolve through errors.As.
	wrapped := fmt.Errorf("outer: %w", err)
	assert.True(t, IsType(wrapped, ErrorTypeRowIndexOutOfBounds))

	assert.False(t, IsType(fmt.Errorf("plain"), ErrorTypeParse))
	assert.Equal(t, ErrorType(""), TypeOf(fmt.Errorf("plain")))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrorTypeParse, "bad field").
		WithDetail("line", 7).
		WithDetail("column", "energy")

	assert.Equal(t, 7, err.Details["line"])
	assert.Equal(t, "energy", err.Details["column"])
}
