package stats

import (
	"math"
)

// Default fencing parameters. Callers may override per call; zero selects
// the default.
const (
	DefaultIQRMultiplier   = 1.5
	DefaultZScoreThreshold = 3.0
)

// OutlierResult lists the values flagged as outliers and the bounds that
// flagged them
type OutlierResult struct {
	Method     string    `json:"method"`
	SampleSize int       `json:"sample_size"`
	Outliers   []float64 `json:"outliers"`
	Indices    []int     `json:"indices"`
	LowerBound float64   `json:"lower_bound"`
	UpperBound float64   `json:"upper_bound"`
	Parameter  float64   `json:"parameter"` // the multiplier or threshold used
}

// IQROutliers fences the sample at Q1 − k·IQR and Q3 + k·IQR. Fewer than 4
// points cannot support quartile fencing and return an empty result.
func IQROutliers(values []float64, multiplier float64) OutlierResult {
	if multiplier <= 0 {
		multiplier = DefaultIQRMultiplier
	}
	result := OutlierResult{Method: "iqr", SampleSize: len(values), Parameter: multiplier}
	if len(values) < 4 {
		return result
	}

	sorted := sortedCopy(values)
	q1 := percentileSorted(sorted, 25)
	q3 := percentileSorted(sorted, 75)
	iqr := q3 - q1

	result.LowerBound = round2(q1 - multiplier*iqr)
	result.UpperBound = round2(q3 + multiplier*iqr)

	lower := q1 - multiplier*iqr
	upper := q3 + multiplier*iqr
	for i, v := range values {
		if v < lower || v > upper {
			result.Outliers = append(result.Outliers, v)
			result.Indices = append(result.Indices, i)
		}
	}
	return result
}

// ZScoreOutliers flags values whose population z-score magnitude exceeds the
// threshold. Uses the population (n) standard deviation. Fewer than 3 points
// return an empty result, and a zero standard deviation yields zero outliers
// with zero-width bounds rather than dividing by zero.
func ZScoreOutliers(values []float64, threshold float64) OutlierResult {
	if threshold <= 0 {
		threshold = DefaultZScoreThreshold
	}
	result := OutlierResult{Method: "zscore", SampleSize: len(values), Parameter: threshold}
	if len(values) < 3 {
		return result
	}

	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	sumSq := 0.0
	for _, v := range values {
		d := v - mean
		sumSq += d * d
	}
	stdDev := math.Sqrt(sumSq / float64(len(values)))

	if stdDev == 0 {
		result.LowerBound = round2(mean)
		result.UpperBound = round2(mean)
		return result
	}

	result.LowerBound = round2(mean - threshold*stdDev)
	result.UpperBound = round2(mean + threshold*stdDev)
	for i, v := range values {
		if math.Abs((v-mean)/stdDev) > threshold {
			result.Outliers = append(result.Outliers, v)
			result.Indices = append(result.Indices, i)
		}
	}
	return result
}
