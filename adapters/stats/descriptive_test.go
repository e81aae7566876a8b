package stats

import (
	"testing"
)

func TestDescribe_Empty(t *testing.T) {
	d := Describe(nil)
	if d.Count != 0 {
		t.Errorf("count = %d, want 0", d.Count)
	}
	if d.Mean != nil || d.Median != nil || d.Mode != nil || d.Min != nil ||
		d.Max != nil || d.Range != nil || d.Variance != nil || d.StdDev != nil {
		t.Error("all statistics must be nil for an empty sample")
	}
}

func TestDescribe_SingleValue(t *testing.T) {
	d := Describe([]float64{5})
	if d.Count != 1 {
		t.Fatalf("count = %d, want 1", d.Count)
	}
	if *d.Mean != 5 || *d.Median != 5 || *d.Min != 5 || *d.Max != 5 {
		t.Error("all location statistics of a single point are the point")
	}
	if *d.Variance != 0 || *d.StdDev != 0 || *d.Range != 0 {
		t.Error("spread statistics of a single point are zero")
	}
	if d.Mode == nil || *d.Mode != 5 {
		t.Error("a single value is its own mode")
	}
}

func TestDescribe_KnownSample(t *testing.T) {
	// 2, 4, 4, 4, 5, 5, 7, 9: mean 5, sample variance 4.57
	d := Describe([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if *d.Mean != 5 {
		t.Errorf("mean = %v, want 5", *d.Mean)
	}
	if *d.Median != 4.5 {
		t.Errorf("median = %v, want 4.5", *d.Median)
	}
	if *d.Mode != 4 {
		t.Errorf("mode = %v, want 4", *d.Mode)
	}
	if *d.Variance != 4.57 {
		t.Errorf("sample variance = %v, want 4.57", *d.Variance)
	}
	if *d.Range != 7 {
		t.Errorf("range = %v, want 7", *d.Range)
	}
}

func TestDescribe_NoMode(t *testing.T) {
	d := Describe([]float64{1, 2, 3, 4})
	if d.Mode != nil {
		t.Errorf("a sample with no repeats has no mode, got %v", *d.Mode)
	}
}

func TestDescribe_ModeTieBreaksToSmallest(t *testing.T) {
	d := Describe([]float64{3, 3, 7, 7, 1})
	if d.Mode == nil || *d.Mode != 3 {
		t.Errorf("tied modes must resolve to the smallest value, got %v", d.Mode)
	}
}
