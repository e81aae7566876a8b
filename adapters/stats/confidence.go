package stats

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

// ConfidenceInterval is a t-based interval around a sample mean
type ConfidenceInterval struct {
	SampleSize     int             `json:"sample_size"`
	Level          ConfidenceLevel `json:"level"`
	Mean           float64         `json:"mean"`
	Lower          float64         `json:"lower"`
	Upper          float64         `json:"upper"`
	MarginOfError  float64         `json:"margin_of_error"`
	StandardError  float64         `json:"standard_error"`
	Interpretation string          `json:"interpretation"`
}

// ProportionInterval is a Wilson score interval for a success proportion.
// Wilson is used instead of the normal approximation because it stays within
// [0,1] and behaves better for small samples.
type ProportionInterval struct {
	Successes      int             `json:"successes"`
	Total          int             `json:"total"`
	Level          ConfidenceLevel `json:"level"`
	Proportion     float64         `json:"proportion"`
	Lower          float64         `json:"lower"`
	Upper          float64         `json:"upper"`
	Interpretation string          `json:"interpretation"`
}

// MeanConfidenceInterval builds mean ± (t-or-z × standard error) with the
// sample (n−1) standard deviation. The t table covers df 1..30; beyond that
// the fixed z values apply. Fewer than 2 points yield a degenerate zero-width
// interval (single-point mean when n = 1).
func MeanConfidenceInterval(values []float64, level ConfidenceLevel) ConfidenceInterval {
	if _, ok := zCritical[level]; !ok {
		level = Confidence95
	}
	ci := ConfidenceInterval{SampleSize: len(values), Level: level}

	if len(values) == 0 {
		ci.Interpretation = "No data: interval is undefined."
		return ci
	}
	mean, _ := stats.Mean(values)
	if len(values) < 2 {
		ci.Mean = round2(mean)
		ci.Lower = ci.Mean
		ci.Upper = ci.Mean
		ci.Interpretation = "Single observation: the interval collapses to the point estimate."
		return ci
	}

	sd, _ := stats.StandardDeviationSample(values)
	se := sd / math.Sqrt(float64(len(values)))
	crit := tCritical(len(values)-1, level)
	margin := crit * se

	ci.Mean = round2(mean)
	ci.Lower = round2(mean - margin)
	ci.Upper = round2(mean + margin)
	ci.MarginOfError = round2(margin)
	ci.StandardError = round2(se)
	ci.Interpretation = fmt.Sprintf(
		"We are %d%% confident the true mean lies between %.2f and %.2f.",
		level, ci.Lower, ci.Upper)
	return ci
}

// WilsonInterval computes the Wilson score interval for successes/total at
// the given confidence level.
func WilsonInterval(successes, total int, level ConfidenceLevel) ProportionInterval {
	if _, ok := zCritical[level]; !ok {
		level = Confidence95
	}
	pi := ProportionInterval{Successes: successes, Total: total, Level: level}
	if total <= 0 {
		pi.Interpretation = "No trials: interval is undefined."
		return pi
	}
	if successes < 0 {
		successes = 0
	}
	if successes > total {
		successes = total
	}

	n := float64(total)
	p := float64(successes) / n
	z := zCritical[level]
	z2 := z * z

	denom := 1 + z2/n
	center := (p + z2/(2*n)) / denom
	margin := z * math.Sqrt(p*(1-p)/n+z2/(4*n*n)) / denom

	pi.Proportion = round2(p)
	pi.Lower = round2(math.Max(0, center-margin))
	pi.Upper = round2(math.Min(1, center+margin))
	pi.Interpretation = fmt.Sprintf(
		"We are %d%% confident the true proportion lies between %.0f%% and %.0f%%.",
		level, pi.Lower*100, pi.Upper*100)
	return pi
}
