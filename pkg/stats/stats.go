// Package stats provides descriptive statistics over numeric column views.
package stats

import "math"

// Number constrains the numeric column representations.
type Number interface {
	int64 | float64
}

// Summary holds descriptive statistics for one numeric sequence.
type Summary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Mean returns the arithmetic mean, or 0 for an empty sequence.
func Mean[T Number](values []T) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += float64(v)
	}
	return sum / float64(len(values))
}

// StdDev returns the population standard deviation, or 0 for an empty
// sequence.
func StdDev[T Number](values []T) float64 {
	if len(values) == 0 {
		return 0
	}
	mean := Mean(values)
	var sumSq float64
	for _, v := range values {
		d := float64(v) - mean
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(values)))
}

// Min returns the smallest value, or 0 for an empty sequence.
func Min[T Number](values []T) float64 {
	if len(values) == 0 {
		return 0
	}
	min := float64(values[0])
	for _, v := range values[1:] {
		if float64(v) < min {
			min = float64(v)
		}
	}
	return min
}

// Max returns the largest value, or 0 for an empty sequence.
func Max[T Number](values []T) float64 {
	if len(values) == 0 {
		return 0
	}
	max := float64(values[0])
	for _, v := range values[1:] {
		if float64(v) > max {
			max = float64(v)
		}
	}
	return max
}

// Summarize computes all statistics for one sequence.
func Summarize[T Number](values []T) Summary {
	return Summary{
		Count:  len(values),
		Mean:   Mean(values),
		StdDev: StdDev(values),
		Min:    Min(values),
		Max:    Max(values),
	}
}
