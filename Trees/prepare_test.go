package Trees

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrepare(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		want []float64
	}{
		{"nil", nil, []float64{}},
		{"single", []float64{3}, []float64{3}},
		{"repeats", []float64{2, 2, 2}, []float64{2}},
		{"unsorted", []float64{5, -1, 3.5, 0, -1, 5}, []float64{-1, 0, 3.5, 5}},
		{"nan", []float64{math.NaN(), 1, math.NaN()}, []float64{1}},
		{"infinities", []float64{math.Inf(1), 0, math.Inf(-1)}, []float64{math.Inf(-1), 0, math.Inf(1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Prepare(tt.in))
		})
	}
}

func TestPrepare_DoesNotModify(t *testing.T) {
	in := []int{3, 1, 2, 1}
	Prepare(in)
	assert.Equal(t, []int{3, 1, 2, 1}, in)
}

func TestPrepare_Random(t *testing.T) {
	for range 20 {
		in := make([]int, rg.Intn(2000))
		for i := range in {
			in[i] = rg.Intn(500) - 250
		}
		want := slices.Clone(in)
		slices.Sort(want)
		want = slices.Compact(want)
		if got := Prepare(in); !slices.Equal(got, want) {
			t.Fatalf("Prepare gave %d keys, want %d", len(got), len(want))
		}
	}
}
