package stats

import (
	"testing"
)

func TestIQROutliers_FlagsExtremeValue(t *testing.T) {
	values := []float64{10, 12, 11, 13, 12, 11, 100}
	result := IQROutliers(values, 0)

	if result.Method != "iqr" {
		t.Errorf("method = %q, want iqr", result.Method)
	}
	if result.Parameter != DefaultIQRMultiplier {
		t.Errorf("zero multiplier must select the default, got %v", result.Parameter)
	}
	if len(result.Outliers) != 1 || result.Outliers[0] != 100 {
		t.Fatalf("outliers = %v, want [100]", result.Outliers)
	}
	if result.Indices[0] != 6 {
		t.Errorf("outlier index = %d, want 6 (original position)", result.Indices[0])
	}
}

func TestIQROutliers_TooFewPoints(t *testing.T) {
	result := IQROutliers([]float64{1, 2, 100}, 1.5)
	if len(result.Outliers) != 0 {
		t.Errorf("fewer than 4 points cannot support IQR fencing, got %v", result.Outliers)
	}
	if result.SampleSize != 3 {
		t.Errorf("sample size = %d, want 3", result.SampleSize)
	}
}

func TestZScoreOutliers_FlagsExtremeValue(t *testing.T) {
	values := []float64{10, 11, 10, 12, 11, 10, 11, 12, 10, 11, 200}
	result := ZScoreOutliers(values, 3)

	if len(result.Outliers) != 1 || result.Outliers[0] != 200 {
		t.Errorf("outliers = %v, want [200]", result.Outliers)
	}
}

func TestZScoreOutliers_ZeroStdDev(t *testing.T) {
	result := ZScoreOutliers([]float64{5, 5, 5, 5}, 3)
	if len(result.Outliers) != 0 {
		t.Errorf("constant sample has no outliers, got %v", result.Outliers)
	}
	if result.LowerBound != 5 || result.UpperBound != 5 {
		t.Errorf("bounds = [%v, %v], want the zero-width [5, 5]", result.LowerBound, result.UpperBound)
	}
}

func TestZScoreOutliers_TooFewPoints(t *testing.T) {
	result := ZScoreOutliers([]float64{1, 100}, 3)
	if len(result.Outliers) != 0 {
		t.Error("fewer than 3 points cannot support z-score fencing")
	}
}
