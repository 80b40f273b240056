// Package sequence builds and filters slices: evenly spaced interpolation,
// cyclic patterns, and order-preserving deduplication.
package sequence

import (
	"strconv"

	"github.com/roach88/getkit/internal/errs"
)

// MaxLength caps the number of elements a single call may produce.
const MaxLength = 1 << 24

// Intervals returns evenly spaced values between a and b with steps values
// strictly in between. With edges, a and b themselves are included, giving
// steps+2 values; without, only the steps interior values are returned.
//
// Each value is rounded to 15 decimal places so that 0.1+0.2-style noise
// does not leak into the output.
func Intervals(a, b float64, steps int, edges bool) ([]float64, error) {
	first, last, n, err := bounds(steps, edges)
	if err != nil {
		return nil, err
	}

	out := make([]float64, 0, last-first+1)
	for i := first; i <= last; i++ {
		out = append(out, lerp(a, b, i, n))
	}
	return out, nil
}

// IntervalsVec is Intervals applied element-wise to two equal-length
// vectors. Each output element is one interpolated vector.
func IntervalsVec(a, b []float64, steps int, edges bool) ([][]float64, error) {
	if len(a) != len(b) {
		return nil, errs.Invalid("intervals", "vector lengths differ: %d and %d", len(a), len(b))
	}
	first, last, n, err := bounds(steps, edges)
	if err != nil {
		return nil, err
	}
	if len(a) > 0 && last-first+1 > MaxLength/len(a) {
		return nil, errs.Invalid("intervals", "%d steps of %d-element vectors exceed %d values", steps, len(a), MaxLength)
	}

	out := make([][]float64, 0, last-first+1)
	for i := first; i <= last; i++ {
		v := make([]float64, len(a))
		for j := range a {
			v[j] = lerp(a[j], b[j], i, n)
		}
		out = append(out, v)
	}
	return out, nil
}

// Pattern returns a slice of the given length filled by cycling through
// pattern: out[i] = pattern[i % len(pattern)].
func Pattern[T any](length int, pattern []T) ([]T, error) {
	if length < 0 {
		return nil, errs.Invalid("pattern", "negative length %d", length)
	}
	if length > MaxLength {
		return nil, errs.Invalid("pattern", "length %d exceeds %d", length, MaxLength)
	}
	if length > 0 && len(pattern) == 0 {
		return nil, errs.Invalid("pattern", "empty pattern")
	}

	out := make([]T, length)
	for i := range out {
		out[i] = pattern[i%len(pattern)]
	}
	return out, nil
}

// Unique returns s with repeated values removed, keeping the first
// occurrence of each. The input is not modified.
func Unique[T comparable](s []T) []T {
	seen := make(map[T]struct{}, len(s))
	out := make([]T, 0, len(s))
	for _, v := range s {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// bounds returns the inclusive index range and divisor for steps.
func bounds(steps int, edges bool) (first, last, n int, err error) {
	if steps < 0 {
		return 0, 0, 0, errs.Invalid("intervals", "negative step count %d", steps)
	}
	if steps > MaxLength-2 {
		return 0, 0, 0, errs.Invalid("intervals", "step count %d exceeds %d", steps, MaxLength-2)
	}
	n = steps + 1
	if edges {
		return 0, n, n, nil
	}
	return 1, n - 1, n, nil
}

func lerp(a, b float64, i, n int) float64 {
	return round15(a + (b-a)*float64(i)/float64(n))
}

// round15 rounds v to 15 decimal places via its decimal rendering, which
// stays exact where v*1e15 would overflow.
func round15(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 15, 64), 64)
	if err != nil {
		return v
	}
	return r
}
