package stats

import (
	"math"
	"sort"
)

// QuartileAnalysis reports the quartiles and the common display percentiles
// of one sample. Everything is derived from the same interpolated percentile
// formula so quartiles, percentiles and box-plot whiskers agree.
type QuartileAnalysis struct {
	Count int     `json:"count"`
	Q1    float64 `json:"q1"`
	Q2    float64 `json:"q2"` // median
	Q3    float64 `json:"q3"`
	IQR   float64 `json:"iqr"`
	P10   float64 `json:"p10"`
	P90   float64 `json:"p90"`
	P95   float64 `json:"p95"`
	P99   float64 `json:"p99"`
}

// BoxPlotData carries everything a box-and-whisker rendering needs
type BoxPlotData struct {
	LowerWhisker float64   `json:"lower_whisker"`
	Q1           float64   `json:"q1"`
	Median       float64   `json:"median"`
	Q3           float64   `json:"q3"`
	UpperWhisker float64   `json:"upper_whisker"`
	Outliers     []float64 `json:"outliers"`
}

// percentileSorted interpolates linearly between ranks on a pre-sorted
// sample: index = (p/100)·(n−1). This single formula backs every quantile in
// the package.
func percentileSorted(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return sorted[0]
	}
	idx := (p / 100.0) * float64(n-1)
	lo := int(math.Floor(idx))
	hi := int(math.Ceil(idx))
	if lo < 0 {
		lo = 0
	}
	if hi >= n {
		hi = n - 1
	}
	if lo == hi {
		return sorted[lo]
	}
	frac := idx - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// Percentile returns the interpolated p-th percentile of an unsorted sample
func Percentile(values []float64, p float64) float64 {
	return percentileSorted(sortedCopy(values), p)
}

// Quartiles computes Q1/Q2/Q3, the IQR and the display percentiles
func Quartiles(values []float64) QuartileAnalysis {
	if len(values) == 0 {
		return QuartileAnalysis{}
	}
	sorted := sortedCopy(values)
	q1 := percentileSorted(sorted, 25)
	q2 := percentileSorted(sorted, 50)
	q3 := percentileSorted(sorted, 75)
	return QuartileAnalysis{
		Count: len(values),
		Q1:    round2(q1),
		Q2:    round2(q2),
		Q3:    round2(q3),
		IQR:   round2(q3 - q1),
		P10:   round2(percentileSorted(sorted, 10)),
		P90:   round2(percentileSorted(sorted, 90)),
		P95:   round2(percentileSorted(sorted, 95)),
		P99:   round2(percentileSorted(sorted, 99)),
	}
}

// BoxPlot derives whiskers at 1.5·IQR beyond the quartiles, clamped to the
// data range, and lists every point outside the whiskers as an outlier.
func BoxPlot(values []float64) BoxPlotData {
	if len(values) == 0 {
		return BoxPlotData{}
	}
	sorted := sortedCopy(values)
	q1 := percentileSorted(sorted, 25)
	median := percentileSorted(sorted, 50)
	q3 := percentileSorted(sorted, 75)
	iqr := q3 - q1

	lowerFence := q1 - 1.5*iqr
	upperFence := q3 + 1.5*iqr

	lower := sorted[0]
	upper := sorted[len(sorted)-1]
	if lower < lowerFence {
		lower = lowerFence
	}
	if upper > upperFence {
		upper = upperFence
	}

	var outliers []float64
	for _, v := range sorted {
		if v < lowerFence || v > upperFence {
			outliers = append(outliers, v)
		}
	}

	return BoxPlotData{
		LowerWhisker: round2(lower),
		Q1:           round2(q1),
		Median:       round2(median),
		Q3:           round2(q3),
		UpperWhisker: round2(upper),
		Outliers:     outliers,
	}
}

func sortedCopy(values []float64) []float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return sorted
}
