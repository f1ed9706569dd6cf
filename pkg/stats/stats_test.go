package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	assert.InDelta(t, 30.0, Mean([]int64{10, 20, 30, 40, 50}), 1e-9)
	assert.InDelta(t, 2.5, Mean([]float64{1.5, 3.5}), 1e-9)
	assert.Equal(t, 0.0, Mean([]float64(nil)))
}

func TestStdDev(t *testing.T) {
	// Population stddev of {10,20,30,40,50} is sqrt(200).
	assert.InDelta(t, 14.142135623, StdDev([]int64{10, 20, 30, 40, 50}), 1e-6)
	assert.Equal(t, 0.0, StdDev([]float64{4.2}))
	assert.Equal(t, 0.0, StdDev([]int64(nil)))
}

func TestMinMax(t *testing.T) {
	vals := []float64{3.5, -1.25, 7.0, 0.0}
	assert.Equal(t, -1.25, Min(vals))
	assert.Equal(t, 7.0, Max(vals))
	assert.Equal(t, 0.0, Min([]int64(nil)))
	assert.Equal(t, 0.0, Max([]int64(nil)))
}

func TestSummarize(t *testing.T) {
	s := Summarize([]int64{10, 20, 30, 40, 50})
	assert.Equal(t, 5, s.Count)
	assert.InDelta(t, 30.0, s.Mean, 1e-9)
	assert.InDelta(t, 14.142135623, s.StdDev, 1e-6)
	assert.Equal(t, 10.0, s.Min)
	assert.Equal(t, 50.0, s.Max)
}
