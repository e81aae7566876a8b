package stats

import (
	"math"
)

// QQPoint pairs a theoretical normal quantile with the observed sample
// quantile at the same plotting position
type QQPoint struct {
	Theoretical float64 `json:"theoretical"`
	Sample      float64 `json:"sample"`
}

// NormalityTestResult reports the shape diagnostics for one sample. The
// normality verdict is a coarse moment heuristic, not a formal test: the
// sample counts as approximately normal iff |skewness| < 2 and
// |excess kurtosis| < 2.
type NormalityTestResult struct {
	SampleSize      int       `json:"sample_size"`
	Skewness        float64   `json:"skewness"`
	ExcessKurtosis  float64   `json:"excess_kurtosis"`
	AndersonDarling float64   `json:"anderson_darling"`
	IsApproxNormal  bool      `json:"is_approx_normal"`
	QQData          []QQPoint `json:"qq_data,omitempty"`
	Interpretation  string    `json:"interpretation"`
}

// Skewness computes the third standardized population moment. Needs at least
// 3 points, else 0.
func Skewness(values []float64) float64 {
	if len(values) < 3 {
		return 0
	}
	mean, stdDev := populationMoments(values)
	if stdDev == 0 {
		return 0
	}
	n := float64(len(values))
	sum := 0.0
	for _, v := range values {
		z := (v - mean) / stdDev
		sum += z * z * z
	}
	return sum / n
}

// ExcessKurtosis computes the fourth standardized population moment minus 3.
// Needs at least 4 points, else 0.
func ExcessKurtosis(values []float64) float64 {
	if len(values) < 4 {
		return 0
	}
	mean, stdDev := populationMoments(values)
	if stdDev == 0 {
		return 0
	}
	n := float64(len(values))
	sum := 0.0
	for _, v := range values {
		z := (v - mean) / stdDev
		sum += z * z * z * z
	}
	return sum/n - 3
}

// TestNormality runs the moment heuristic plus the Anderson-Darling
// approximation and emits Q-Q plot data against the approximated normal
// quantiles.
func TestNormality(values []float64) NormalityTestResult {
	result := NormalityTestResult{SampleSize: len(values)}
	if len(values) < 3 {
		result.Interpretation = "Sample too small to assess normality (need at least 3 values)."
		return result
	}

	skew := Skewness(values)
	kurt := ExcessKurtosis(values)
	result.Skewness = round2(skew)
	result.ExcessKurtosis = round2(kurt)
	result.IsApproxNormal = math.Abs(skew) < 2 && math.Abs(kurt) < 2
	result.AndersonDarling = round2(andersonDarling(values))
	result.QQData = qqData(values)

	if result.IsApproxNormal {
		result.Interpretation = "Distribution is approximately normal (|skewness| < 2 and |excess kurtosis| < 2)."
	} else {
		result.Interpretation = "Distribution deviates from normality based on skewness/kurtosis heuristics."
	}
	return result
}

// andersonDarling computes the A² statistic against the approximated normal
// CDF after standardizing with the sample moments. The approximation, not an
// exact distribution, is the documented behavior.
func andersonDarling(values []float64) float64 {
	n := len(values)
	if n < 3 {
		return 0
	}
	mean, stdDev := populationMoments(values)
	if stdDev == 0 {
		return 0
	}

	sorted := sortedCopy(values)
	nf := float64(n)
	sum := 0.0
	for i := 0; i < n; i++ {
		zi := (sorted[i] - mean) / stdDev
		zr := (sorted[n-1-i] - mean) / stdDev
		fi := clampProb(normalCDF(zi))
		fr := clampProb(normalCDF(zr))
		sum += (2*float64(i+1) - 1) * (math.Log(fi) + math.Log(1-fr))
	}
	return -nf - sum/nf
}

// qqData pairs each order statistic with the normal quantile at plotting
// position (i + 0.5) / n
func qqData(values []float64) []QQPoint {
	sorted := sortedCopy(values)
	n := len(sorted)
	points := make([]QQPoint, n)
	for i, v := range sorted {
		p := (float64(i) + 0.5) / float64(n)
		points[i] = QQPoint{
			Theoretical: round2(normalQuantile(p)),
			Sample:      round2(v),
		}
	}
	return points
}

func populationMoments(values []float64) (mean, stdDev float64) {
	n := float64(len(values))
	if n == 0 {
		return 0, 0
	}
	for _, v := range values {
		mean += v
	}
	mean /= n
	sumSq := 0.0
	for _, v := range values {
		d := v - mean
		sumSq += d * d
	}
	return mean, math.Sqrt(sumSq / n)
}

// clampProb keeps CDF outputs strictly inside (0,1) so the A² logs stay finite
func clampProb(p float64) float64 {
	const eps = 1e-10
	if p < eps {
		return eps
	}
	if p > 1-eps {
		return 1 - eps
	}
	return p
}
