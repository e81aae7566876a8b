package stats

import (
	"testing"
)

func TestOneWayANOVA_SeparatedGroups(t *testing.T) {
	groups := []ANOVAGroup{
		{Label: "low", Values: []float64{1, 2, 3, 2, 1}},
		{Label: "mid", Values: []float64{10, 11, 12, 11, 10}},
		{Label: "high", Values: []float64{20, 21, 22, 21, 20}},
	}

	result := OneWayANOVA(groups)

	if result.DFBetween != 2 {
		t.Errorf("df between = %d, want 2", result.DFBetween)
	}
	if result.DFWithin != 12 {
		t.Errorf("df within = %d, want 12", result.DFWithin)
	}
	if !result.IsSignificant {
		t.Error("cleanly separated groups must be significant")
	}
	if result.PValue != 0.01 {
		t.Errorf("p = %v, want the 0.01 bucket for a huge F", result.PValue)
	}
	if result.EffectSize != "large" {
		t.Errorf("effect size = %q, want large", result.EffectSize)
	}
	if result.GroupMeans["mid"] != 10.8 {
		t.Errorf("mid group mean = %v, want 10.8", result.GroupMeans["mid"])
	}
}

func TestOneWayANOVA_NoSeparation(t *testing.T) {
	groups := []ANOVAGroup{
		{Label: "a", Values: []float64{5, 7, 6, 8, 4}},
		{Label: "b", Values: []float64{6, 5, 7, 4, 8}},
	}

	result := OneWayANOVA(groups)
	if result.IsSignificant {
		t.Error("identical distributions must not be significant")
	}
}

func TestOneWayANOVA_InsufficientGroups(t *testing.T) {
	result := OneWayANOVA([]ANOVAGroup{
		{Label: "only", Values: []float64{1, 2, 3}},
		{Label: "tiny", Values: []float64{5}}, // below the per-group minimum
	})
	if result.IsSignificant {
		t.Error("one usable group cannot be significant")
	}
	if result.Interpretation == "" {
		t.Error("the degenerate result must explain itself")
	}
}

func TestOneWayANOVA_AllIdentical(t *testing.T) {
	result := OneWayANOVA([]ANOVAGroup{
		{Label: "a", Values: []float64{4, 4, 4}},
		{Label: "b", Values: []float64{4, 4, 4}},
	})
	if result.IsSignificant {
		t.Error("identical constants have nothing to compare")
	}
}

func TestOneWayANOVA_ConstantButDifferentGroups(t *testing.T) {
	result := OneWayANOVA([]ANOVAGroup{
		{Label: "a", Values: []float64{4, 4, 4}},
		{Label: "b", Values: []float64{9, 9, 9}},
	})
	if !result.IsSignificant {
		t.Error("internally constant groups with different levels differ exactly")
	}
	if result.EtaSquared != 1 {
		t.Errorf("eta squared = %v, want 1 for a perfect separation", result.EtaSquared)
	}
}
