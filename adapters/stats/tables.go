package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// ConfidenceLevel selects a column of the critical-value tables
type ConfidenceLevel int

const (
	Confidence90 ConfidenceLevel = 90
	Confidence95 ConfidenceLevel = 95
	Confidence99 ConfidenceLevel = 99
)

// Two-tailed t critical values for df 1..30. Beyond df 30 the z fallback
// applies. These literal tables are the contract: results are compared
// against the tabulated approximation, not an exact distribution.
var tCriticalTable = map[ConfidenceLevel][30]float64{
	Confidence90: {
		6.314, 2.920, 2.353, 2.132, 2.015, 1.943, 1.895, 1.860, 1.833, 1.812,
		1.796, 1.782, 1.771, 1.761, 1.753, 1.746, 1.740, 1.734, 1.729, 1.725,
		1.721, 1.717, 1.714, 1.711, 1.708, 1.706, 1.703, 1.701, 1.699, 1.697,
	},
	Confidence95: {
		12.706, 4.303, 3.182, 2.776, 2.571, 2.447, 2.365, 2.306, 2.262, 2.228,
		2.201, 2.179, 2.160, 2.145, 2.131, 2.120, 2.110, 2.101, 2.093, 2.086,
		2.080, 2.074, 2.069, 2.064, 2.060, 2.056, 2.052, 2.048, 2.045, 2.042,
	},
	Confidence99: {
		63.657, 9.925, 5.841, 4.604, 4.032, 3.707, 3.499, 3.355, 3.250, 3.169,
		3.106, 3.055, 3.012, 2.977, 2.947, 2.921, 2.898, 2.878, 2.861, 2.845,
		2.831, 2.819, 2.807, 2.797, 2.787, 2.779, 2.771, 2.763, 2.756, 2.750,
	},
}

// z critical values used beyond df 30
var zCritical = map[ConfidenceLevel]float64{
	Confidence90: 1.645,
	Confidence95: 1.960,
	Confidence99: 2.576,
}

// tCritical looks up the two-tailed critical value for the given confidence
// level, falling back to the z value past the end of the table. Unknown
// levels resolve to 95%.
func tCritical(df int, level ConfidenceLevel) float64 {
	col, ok := tCriticalTable[level]
	if !ok {
		col = tCriticalTable[Confidence95]
		level = Confidence95
	}
	if df < 1 {
		df = 1
	}
	if df > 30 {
		return zCritical[level]
	}
	return col[df-1]
}

// approxTTestPValue buckets a two-tailed p-value by comparing |t| against the
// tabulated critical values for the df. A coarse threshold approximation,
// not a t CDF.
func approxTTestPValue(tAbs float64, df int) float64 {
	switch {
	case tAbs >= tCritical(df, Confidence99):
		return 0.01
	case tAbs >= tCritical(df, Confidence95):
		return 0.05
	case tAbs >= tCritical(df, Confidence90):
		return 0.10
	default:
		return 0.50
	}
}

// approxFPValue buckets an ANOVA F statistic by fixed thresholds
func approxFPValue(f float64) float64 {
	switch {
	case f >= 7.0:
		return 0.01
	case f >= 4.0:
		return 0.05
	case f >= 2.8:
		return 0.10
	default:
		return 0.50
	}
}

// Chi-square critical values keyed by df for the 0.10/0.05/0.01 levels.
// Untabulated df fall back to the z-score approximation below.
var chiSquareCritical = map[int][3]float64{
	1:  {2.706, 3.841, 6.635},
	2:  {4.605, 5.991, 9.210},
	3:  {6.251, 7.815, 11.345},
	4:  {7.779, 9.488, 13.277},
	5:  {9.236, 11.070, 15.086},
	6:  {10.645, 12.592, 16.812},
	7:  {12.017, 14.067, 18.475},
	8:  {13.362, 15.507, 20.090},
	9:  {14.684, 16.919, 21.666},
	10: {15.987, 18.307, 23.209},
}

// approxChiSquarePValue buckets a chi-square statistic for tabulated df and
// uses the classic sqrt(2χ²)−sqrt(2df−1) z approximation for the rest.
func approxChiSquarePValue(chiSq float64, df int) float64 {
	if crit, ok := chiSquareCritical[df]; ok {
		switch {
		case chiSq >= crit[2]:
			return 0.01
		case chiSq >= crit[1]:
			return 0.05
		case chiSq >= crit[0]:
			return 0.10
		default:
			return 0.50
		}
	}
	if chiSq <= 0 || df < 1 {
		return 1.0
	}
	z := math.Sqrt(2*chiSq) - math.Sqrt(2*float64(df)-1)
	return 1 - normalCDF(z)
}

// normalCDF is the standard normal cumulative distribution function
func normalCDF(z float64) float64 {
	return distuv.UnitNormal.CDF(z)
}

// normalQuantile approximates the standard normal inverse CDF with the
// Beasley-Springer-Moro algorithm. Kept hand-rolled: the approximation is
// part of the observable contract (Q-Q plot data depends on it).
func normalQuantile(p float64) float64 {
	if p <= 0 {
		return math.Inf(-1)
	}
	if p >= 1 {
		return math.Inf(1)
	}

	a := [4]float64{2.50662823884, -18.61500062529, 41.39119773534, -25.44106049637}
	b := [4]float64{-8.47351093090, 23.08336743743, -21.06224101826, 3.13082909833}
	c := [9]float64{
		0.3374754822726147, 0.9761690190917186, 0.1607979714918209,
		0.0276438810333863, 0.0038405729373609, 0.0003951896511919,
		0.0000321767881768, 0.0000002888167364, 0.0000003960315187,
	}

	y := p - 0.5
	if math.Abs(y) < 0.42 {
		r := y * y
		num := ((a[3]*r+a[2])*r+a[1])*r + a[0]
		den := (((b[3]*r+b[2])*r+b[1])*r+b[0])*r + 1.0
		return y * num / den
	}

	r := p
	if y > 0 {
		r = 1 - p
	}
	r = math.Log(-math.Log(r))
	x := c[0]
	for i, pow := 1, r; i < len(c); i, pow = i+1, pow*r {
		x += c[i] * pow
	}
	if y < 0 {
		return -x
	}
	return x
}

// round2 rounds to 2 decimal places, the display-stability contract for all
// reported statistics
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// round2p rounds through a pointer, passing nil through
func round2p(v *float64) *float64 {
	if v == nil {
		return nil
	}
	r := round2(*v)
	return &r
}

func ptr(v float64) *float64 { return &v }
