package stats

import (
	"fmt"
	"math"

	"statq/domain/core"

	"github.com/montanaflynn/stats"
)

// TTestResult reports a two-sample mean comparison. The p-value is the
// bucketed table approximation, not an exact t CDF, and the interpretation
// string is part of the contract: the presentation layer surfaces it
// directly.
type TTestResult struct {
	Test             string          `json:"test"`
	N1               int             `json:"n1"`
	N2               int             `json:"n2"`
	Mean1            float64         `json:"mean1"`
	Mean2            float64         `json:"mean2"`
	MeanDifference   float64         `json:"mean_difference"`
	TStatistic       float64         `json:"t_statistic"`
	DegreesOfFreedom int             `json:"degrees_of_freedom"`
	PValue           float64         `json:"p_value"`
	Level            ConfidenceLevel `json:"level"`
	IsSignificant    bool            `json:"is_significant"`
	CohensD          float64         `json:"cohens_d"`
	EffectSize       string          `json:"effect_size"`
	Interpretation   string          `json:"interpretation"`
}

// IndependentTTest compares two independent samples with the pooled-variance
// t statistic (df = n1+n2−2). Samples smaller than 2 on either side return a
// degenerate result instead of an error.
func IndependentTTest(group1, group2 []float64, level ConfidenceLevel) TTestResult {
	if _, ok := zCritical[level]; !ok {
		level = Confidence95
	}
	result := TTestResult{Test: "independent", N1: len(group1), N2: len(group2), Level: level, PValue: 1}
	if len(group1) < 2 || len(group2) < 2 {
		result.Interpretation = "Insufficient data: both groups need at least 2 observations."
		return result
	}

	m1, _ := stats.Mean(group1)
	m2, _ := stats.Mean(group2)
	v1, _ := stats.SampleVariance(group1)
	v2, _ := stats.SampleVariance(group2)
	n1 := float64(len(group1))
	n2 := float64(len(group2))

	df := len(group1) + len(group2) - 2
	pooledVar := ((n1-1)*v1 + (n2-1)*v2) / float64(df)
	pooledSD := math.Sqrt(pooledVar)

	result.Mean1 = round2(m1)
	result.Mean2 = round2(m2)
	result.MeanDifference = round2(m1 - m2)
	result.DegreesOfFreedom = df

	if pooledSD == 0 {
		result.Interpretation = "Both groups have zero variance: no difference to test."
		return result
	}

	t := (m1 - m2) / (pooledSD * math.Sqrt(1/n1+1/n2))
	d := (m1 - m2) / pooledSD

	finishTTest(&result, t, d)
	return result
}

// PairedTTest compares paired samples through their per-pair differences.
// Mismatched lengths are a contract violation and fail hard rather than
// silently truncating.
func PairedTTest(before, after []float64, level ConfidenceLevel) (TTestResult, error) {
	if len(before) != len(after) {
		return TTestResult{}, fmt.Errorf("%w: got %d and %d", core.ErrMismatchedPairs, len(before), len(after))
	}
	if _, ok := zCritical[level]; !ok {
		level = Confidence95
	}
	result := TTestResult{Test: "paired", N1: len(before), N2: len(after), Level: level, PValue: 1}
	if len(before) < 2 {
		result.Interpretation = "Insufficient data: need at least 2 pairs."
		return result, nil
	}

	diffs := make([]float64, len(before))
	for i := range before {
		diffs[i] = after[i] - before[i]
	}
	meanDiff, _ := stats.Mean(diffs)
	sdDiff, _ := stats.StandardDeviationSample(diffs)

	m1, _ := stats.Mean(before)
	m2, _ := stats.Mean(after)
	result.Mean1 = round2(m1)
	result.Mean2 = round2(m2)
	result.MeanDifference = round2(meanDiff)
	result.DegreesOfFreedom = len(diffs) - 1

	if sdDiff == 0 {
		if meanDiff == 0 {
			result.Interpretation = "All pairs are identical: no change to test."
			return result, nil
		}
		// Constant nonzero shift across every pair
		result.IsSignificant = true
		result.PValue = 0.01
		result.Interpretation = "Every pair shifted by the same amount; the change is uniform."
		return result, nil
	}

	t := meanDiff / (sdDiff / math.Sqrt(float64(len(diffs))))
	d := meanDiff / sdDiff

	finishTTest(&result, t, d)
	return result, nil
}

// finishTTest applies the shared p-value approximation, effect size labeling
// and interpretation wording
func finishTTest(result *TTestResult, t, d float64) {
	result.TStatistic = round2(t)
	result.PValue = approxTTestPValue(math.Abs(t), result.DegreesOfFreedom)
	result.IsSignificant = result.PValue <= alphaFor(result.Level)
	result.CohensD = round2(d)
	result.EffectSize = effectSizeLabel(math.Abs(d))

	if result.IsSignificant {
		result.Interpretation = fmt.Sprintf(
			"Significant difference between groups (t=%.2f, p≈%.2f, %s effect, d=%.2f).",
			result.TStatistic, result.PValue, result.EffectSize, result.CohensD)
	} else {
		result.Interpretation = fmt.Sprintf(
			"No significant difference between groups (t=%.2f, p≈%.2f, d=%.2f).",
			result.TStatistic, result.PValue, result.CohensD)
	}
}

// alphaFor maps a confidence level to its significance threshold
func alphaFor(level ConfidenceLevel) float64 {
	switch level {
	case Confidence90:
		return 0.10
	case Confidence99:
		return 0.01
	default:
		return 0.05
	}
}

// effectSizeLabel applies the conventional Cohen's d thresholds
func effectSizeLabel(absD float64) string {
	switch {
	case absD < 0.2:
		return "negligible"
	case absD < 0.5:
		return "small"
	case absD < 0.8:
		return "medium"
	default:
		return "large"
	}
}
