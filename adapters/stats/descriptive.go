package stats

import (
	"math"

	"github.com/montanaflynn/stats"
)

// DescriptiveStats summarizes one numeric sample. Nil fields mean "not
// defined for this sample" (empty input, or no mode). Every numeric output
// is rounded to 2 decimal places for display stability.
type DescriptiveStats struct {
	Count    int      `json:"count"`
	Mean     *float64 `json:"mean"`
	Median   *float64 `json:"median"`
	Mode     *float64 `json:"mode"`
	Min      *float64 `json:"min"`
	Max      *float64 `json:"max"`
	Range    *float64 `json:"range"`
	Variance *float64 `json:"variance"`
	StdDev   *float64 `json:"std_dev"`
}

// Describe computes count/mean/median/mode/min/max/range/variance/stddev.
// Variance uses the sample (n−1) denominator when n > 1, else 0.
func Describe(values []float64) DescriptiveStats {
	n := len(values)
	if n == 0 {
		return DescriptiveStats{Count: 0}
	}

	mean, _ := stats.Mean(values)
	median, _ := stats.Median(values)
	min, _ := stats.Min(values)
	max, _ := stats.Max(values)

	variance := 0.0
	if n > 1 {
		variance, _ = stats.SampleVariance(values)
	}
	stdDev := math.Sqrt(variance)

	return DescriptiveStats{
		Count:    n,
		Mean:     ptr(round2(mean)),
		Median:   ptr(round2(median)),
		Mode:     round2p(mode(values)),
		Min:      ptr(round2(min)),
		Max:      ptr(round2(max)),
		Range:    ptr(round2(max - min)),
		Variance: ptr(round2(variance)),
		StdDev:   ptr(round2(stdDev)),
	}
}

// mode returns the most frequent value. When no value repeats and the sample
// has more than one point there is no mode and the result is nil. Ties at
// the maximum frequency resolve to the smallest value for determinism.
func mode(values []float64) *float64 {
	freq := make(map[float64]int, len(values))
	for _, v := range values {
		freq[v]++
	}

	maxFreq := 0
	var best float64
	haveBest := false
	for v, c := range freq {
		if c > maxFreq || (c == maxFreq && haveBest && v < best) {
			maxFreq = c
			best = v
			haveBest = true
		}
	}

	if maxFreq == 1 && len(freq) == len(values) && len(values) > 1 {
		return nil
	}
	return &best
}
