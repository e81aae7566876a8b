package stats

import (
	"math"
	"testing"
)

func TestSkewness_Symmetric(t *testing.T) {
	if s := Skewness([]float64{1, 2, 3, 4, 5}); s != 0 {
		t.Errorf("symmetric sample skewness = %v, want 0", s)
	}
}

func TestSkewness_RightTail(t *testing.T) {
	if s := Skewness([]float64{1, 1, 1, 1, 1, 1, 1, 1, 1, 50}); s <= 0 {
		t.Errorf("a heavy right tail must skew positive, got %v", s)
	}
}

func TestSkewness_TooFewPoints(t *testing.T) {
	if s := Skewness([]float64{1, 2}); s != 0 {
		t.Errorf("fewer than 3 points yield 0, got %v", s)
	}
}

func TestExcessKurtosis_Uniformish(t *testing.T) {
	// A flat distribution has negative excess kurtosis
	flat := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	if k := ExcessKurtosis(flat); k >= 0 {
		t.Errorf("flat sample excess kurtosis = %v, want negative", k)
	}
}

func TestTestNormality_RoughlyNormal(t *testing.T) {
	// Symmetric bell-ish sample
	values := []float64{4, 5, 5, 6, 6, 6, 7, 7, 7, 7, 8, 8, 8, 9, 9, 10}
	result := TestNormality(values)
	if !result.IsApproxNormal {
		t.Errorf("moment heuristic should accept a bell-ish sample: %+v", result)
	}
	if len(result.QQData) != len(values) {
		t.Errorf("Q-Q data has %d points, want %d", len(result.QQData), len(values))
	}
	// Q-Q points are ordered by plotting position
	for i := 1; i < len(result.QQData); i++ {
		if result.QQData[i].Theoretical < result.QQData[i-1].Theoretical {
			t.Error("theoretical quantiles must be nondecreasing")
			break
		}
	}
}

func TestTestNormality_ExtremeSkewRejected(t *testing.T) {
	values := make([]float64, 30)
	for i := range values {
		values[i] = 1
	}
	values[29] = 1000
	result := TestNormality(values)
	if result.IsApproxNormal {
		t.Error("a point mass with one extreme value is not normal")
	}
}

func TestTestNormality_TooSmall(t *testing.T) {
	result := TestNormality([]float64{1, 2})
	if result.IsApproxNormal {
		t.Error("a 2-point sample cannot be assessed")
	}
	if result.Interpretation == "" {
		t.Error("the degenerate result must explain itself")
	}
}

func TestNormalQuantile_MatchesCDF(t *testing.T) {
	// The Beasley-Springer-Moro inverse should invert the CDF to ~3 decimals
	for _, p := range []float64{0.05, 0.25, 0.5, 0.75, 0.95} {
		z := normalQuantile(p)
		back := normalCDF(z)
		if math.Abs(back-p) > 0.001 {
			t.Errorf("CDF(quantile(%v)) = %v, drift too large", p, back)
		}
	}
	if normalQuantile(0.5) != 0 {
		t.Errorf("median quantile = %v, want 0", normalQuantile(0.5))
	}
}
