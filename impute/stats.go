package impute

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// observedColumn collects the non-missing values of column j and counts the
// missing cells that were skipped.
func observedColumn(X mat.Matrix, j int) (observed []float64, missing int) {
	r, _ := X.Dims()
	observed = make([]float64, 0, r)
	for i := 0; i < r; i++ {
		v := X.At(i, j)
		if math.IsNaN(v) {
			missing++
			continue
		}
		observed = append(observed, v)
	}
	return observed, missing
}

// meanOf returns the arithmetic mean of observed. observed must be non-empty.
func meanOf(observed []float64) float64 {
	return stat.Mean(observed, nil)
}

// medianOf returns the median of observed: the middle element for odd counts,
// the average of the two middle elements for even counts. observed must be
// non-empty and is not modified.
func medianOf(observed []float64) float64 {
	sorted := make([]float64, len(observed))
	copy(sorted, observed)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// modeOf returns the most frequent value in observed. Ties are broken by the
// smallest value: counting runs over an ascending-sorted copy with a
// strictly-greater comparison keeps the first maximum. observed must be
// non-empty and is not modified.
func modeOf(observed []float64) float64 {
	sorted := make([]float64, len(observed))
	copy(sorted, observed)
	sort.Float64s(sorted)

	best := sorted[0]
	bestCount := 0
	runValue := sorted[0]
	runCount := 0
	for _, v := range sorted {
		if v == runValue {
			runCount++
		} else {
			runValue = v
			runCount = 1
		}
		if runCount > bestCount {
			bestCount = runCount
			best = runValue
		}
	}
	return best
}
