package stats

import (
	"testing"
)

func TestMeanConfidenceInterval_Known(t *testing.T) {
	// n=4, mean 10, sample SD 2, SE 1, t95(3) = 3.182
	values := []float64{8, 9, 11, 12}

	ci := MeanConfidenceInterval(values, Confidence95)
	if ci.Mean != 10 {
		t.Errorf("mean = %v, want 10", ci.Mean)
	}
	if ci.StandardError != 0.91 {
		t.Errorf("SE = %v, want 0.91", ci.StandardError)
	}
	if ci.Lower >= ci.Mean || ci.Upper <= ci.Mean {
		t.Error("the interval must bracket the mean")
	}
	if ci.Upper-ci.Lower <= 0 {
		t.Error("interval width must be positive for n > 1")
	}
}

func TestMeanConfidenceInterval_WiderAtHigherLevel(t *testing.T) {
	values := []float64{3, 5, 7, 9, 11, 13}
	narrow := MeanConfidenceInterval(values, Confidence90)
	wide := MeanConfidenceInterval(values, Confidence99)
	if wide.Upper-wide.Lower <= narrow.Upper-narrow.Lower {
		t.Error("a 99% interval must be wider than a 90% interval")
	}
}

func TestMeanConfidenceInterval_Degenerate(t *testing.T) {
	empty := MeanConfidenceInterval(nil, Confidence95)
	if empty.SampleSize != 0 || empty.Lower != 0 || empty.Upper != 0 {
		t.Errorf("empty sample: got %+v", empty)
	}

	single := MeanConfidenceInterval([]float64{42}, Confidence95)
	if single.Lower != 42 || single.Upper != 42 {
		t.Errorf("single point must collapse to [42, 42], got [%v, %v]", single.Lower, single.Upper)
	}
}

func TestMeanConfidenceInterval_InvalidLevelDefaults(t *testing.T) {
	ci := MeanConfidenceInterval([]float64{1, 2, 3}, ConfidenceLevel(85))
	if ci.Level != Confidence95 {
		t.Errorf("unsupported level must fall back to 95, got %v", ci.Level)
	}
}

func TestWilsonInterval_Known(t *testing.T) {
	// 8/10 at 95%: Wilson gives roughly [0.49, 0.94]
	pi := WilsonInterval(8, 10, Confidence95)
	if pi.Proportion != 0.8 {
		t.Errorf("proportion = %v, want 0.8", pi.Proportion)
	}
	if pi.Lower < 0.44 || pi.Lower > 0.54 {
		t.Errorf("lower = %v, want near 0.49", pi.Lower)
	}
	if pi.Upper < 0.90 || pi.Upper > 0.97 {
		t.Errorf("upper = %v, want near 0.94", pi.Upper)
	}
}

func TestWilsonInterval_StaysInUnitRange(t *testing.T) {
	all := WilsonInterval(10, 10, Confidence99)
	if all.Upper > 1 {
		t.Errorf("upper = %v, must not exceed 1", all.Upper)
	}
	none := WilsonInterval(0, 10, Confidence99)
	if none.Lower < 0 {
		t.Errorf("lower = %v, must not go below 0", none.Lower)
	}
	if none.Upper <= 0 {
		t.Error("even 0/10 has a positive upper bound under Wilson")
	}
}

func TestWilsonInterval_NoTrials(t *testing.T) {
	pi := WilsonInterval(0, 0, Confidence95)
	if pi.Lower != 0 || pi.Upper != 0 || pi.Proportion != 0 {
		t.Errorf("no trials: got %+v", pi)
	}
}

func TestWilsonInterval_ClampsSuccesses(t *testing.T) {
	pi := WilsonInterval(15, 10, Confidence95)
	if pi.Proportion != 1 {
		t.Errorf("successes above total must clamp, got proportion %v", pi.Proportion)
	}
}
