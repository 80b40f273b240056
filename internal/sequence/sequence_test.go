package sequence

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/getkit/internal/errs"
)

func TestIntervals(t *testing.T) {
	tests := []struct {
		name  string
		a, b  float64
		steps int
		edges bool
		want  []float64
	}{
		{"midpoint with edges", 0, 10, 1, true, []float64{0, 5, 10}},
		{"midpoint without edges", 0, 10, 1, false, []float64{5}},
		{"no steps with edges", 0, 10, 0, true, []float64{0, 10}},
		{"no steps without edges", 0, 10, 0, false, []float64{}},
		{"descending", 10, 0, 3, true, []float64{10, 7.5, 5, 2.5, 0}},
		{"float noise suppressed", 0, 0.3, 2, true, []float64{0, 0.1, 0.2, 0.3}},
		{"negative range", -1, 1, 1, true, []float64{-1, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Intervals(tt.a, tt.b, tt.steps, tt.edges)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIntervals_NegativeSteps(t *testing.T) {
	_, err := Intervals(0, 1, -1, true)
	require.Error(t, err)
	assert.True(t, errs.IsInvalidArgument(err))
}

func TestIntervals_StepLimit(t *testing.T) {
	for _, steps := range []int{MaxLength - 1, 9999999999999, math.MaxInt} {
		_, err := Intervals(0, 1, steps, true)
		assert.True(t, errs.IsInvalidArgument(err), "steps=%d", steps)
	}

	_, err := IntervalsVec(make([]float64, 4), make([]float64, 4), MaxLength/2, true)
	assert.True(t, errs.IsInvalidArgument(err))
}

func TestIntervalsVec(t *testing.T) {
	got, err := IntervalsVec([]float64{0, 10}, []float64{10, 20}, 1, true)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 10}, {5, 15}, {10, 20}}, got)

	got, err = IntervalsVec([]float64{0, 10}, []float64{10, 20}, 1, false)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{5, 15}}, got)
}

func TestIntervalsVec_LengthMismatch(t *testing.T) {
	_, err := IntervalsVec([]float64{0, 1}, []float64{1}, 1, true)
	require.Error(t, err)
	assert.True(t, errs.IsInvalidArgument(err))
}

func TestPattern(t *testing.T) {
	got, err := Pattern(5, []int{1, 2})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 1, 2, 1}, got)

	words, err := Pattern(3, []string{"a", "b", "c", "d"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, words)

	empty, err := Pattern(0, []int{})
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestPattern_Errors(t *testing.T) {
	_, err := Pattern(-1, []int{1})
	assert.True(t, errs.IsInvalidArgument(err))

	_, err = Pattern(2, []int{})
	assert.True(t, errs.IsInvalidArgument(err))

	_, err = Pattern(MaxLength+1, []int{1})
	assert.True(t, errs.IsInvalidArgument(err))
}

func TestUnique(t *testing.T) {
	assert.Equal(t, []int{3, 1, 2}, Unique([]int{3, 1, 3, 2, 1}))
	assert.Equal(t, []string{"b", "a"}, Unique([]string{"b", "a", "b"}))
	assert.Equal(t, []float64{}, Unique([]float64{}))

	in := []int{1, 1, 2}
	_ = Unique(in)
	assert.Equal(t, []int{1, 1, 2}, in, "input must not be modified")
}
