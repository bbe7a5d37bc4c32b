package plot

import (
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

func lineStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeColor: col,
		StrokeWidth: 2,
	}
}

// decimate returns at most limit sample indices out of n, evenly strided,
// always including the first and the last.
func decimate(n, limit int) []int {
	if limit < 2 {
		limit = 2
	}
	if n <= limit {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		return idx
	}

	idx := make([]int, limit)
	for i := range limit {
		idx[i] = i * (n - 1) / (limit - 1)
	}
	return idx
}

func pick(vals []float64, idx []int) []float64 {
	out := make([]float64, len(idx))
	for i, j := range idx {
		out[i] = vals[j]
	}
	return out
}
