package stats

import (
	"math"
	"testing"
)

func TestPercentile_InterpolationFormula(t *testing.T) {
	// index = (p/100)·(n−1) with linear interpolation between ranks
	values := []float64{10, 20, 30, 40, 50}

	tests := []struct {
		p    float64
		want float64
	}{
		{0, 10},
		{25, 20},
		{50, 30},
		{75, 40},
		{100, 50},
		{10, 14},   // index 0.4 -> 10 + 0.4*10
		{90, 46},   // index 3.6 -> 40 + 0.6*10
		{62.5, 35}, // index 2.5 -> midpoint of 30 and 40
	}
	for _, tc := range tests {
		got := Percentile(values, tc.p)
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("P%.1f = %v, want %v", tc.p, got, tc.want)
		}
	}
}

func TestPercentile_Degenerate(t *testing.T) {
	if got := Percentile(nil, 50); got != 0 {
		t.Errorf("empty sample percentile = %v, want 0", got)
	}
	if got := Percentile([]float64{42}, 99); got != 42 {
		t.Errorf("single point percentile = %v, want 42", got)
	}
}

func TestQuartiles_KnownSample(t *testing.T) {
	q := Quartiles([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	if q.Q1 != 3 || q.Q2 != 5 || q.Q3 != 7 {
		t.Errorf("quartiles = %v/%v/%v, want 3/5/7", q.Q1, q.Q2, q.Q3)
	}
	if q.IQR != 4 {
		t.Errorf("IQR = %v, want 4", q.IQR)
	}
	if q.Count != 9 {
		t.Errorf("count = %d, want 9", q.Count)
	}
}

func TestBoxPlot_WhiskersAndOutliers(t *testing.T) {
	// 100 is far outside the 1.5·IQR fence
	b := BoxPlot([]float64{1, 2, 3, 4, 5, 6, 7, 8, 100})
	if len(b.Outliers) != 1 || b.Outliers[0] != 100 {
		t.Errorf("outliers = %v, want [100]", b.Outliers)
	}
	if b.UpperWhisker >= 100 {
		t.Errorf("upper whisker %v must be clamped below the outlier", b.UpperWhisker)
	}
	if b.LowerWhisker != 1 {
		t.Errorf("lower whisker = %v, want the sample minimum 1", b.LowerWhisker)
	}
}

func TestBoxPlot_Empty(t *testing.T) {
	b := BoxPlot(nil)
	if b.Q1 != 0 || b.Median != 0 || len(b.Outliers) != 0 {
		t.Errorf("empty sample must produce the zero box plot, got %+v", b)
	}
}
