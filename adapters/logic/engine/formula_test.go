package engine

import (
	"math"
	"testing"

	"statq/domain/core"
)

func TestEvaluateFormula_Arithmetic(t *testing.T) {
	tests := []struct {
		formula string
		vars    map[string]float64
		want    float64
	}{
		{"1 + 2", nil, 3},
		{"2 + 3 * 4", nil, 14},
		{"(2 + 3) * 4", nil, 20},
		{"10 / 4", nil, 2.5},
		{"-5 + 3", nil, -2},
		{"-(2 + 3)", nil, -5},
		{"2 * -3", nil, -6},
		{"Q1 + Q2", map[string]float64{"Q1": 10, "Q2": 5}, 15},
		{"q1 * 2", map[string]float64{"Q1": 7}, 14},
		{"(Q1 + Q2) / 2", map[string]float64{"Q1": 4, "Q2": 6}, 5},
		{"0.5 * Q1", map[string]float64{"Q1": 8}, 4},
	}

	for _, tc := range tests {
		got, err := EvaluateFormula(tc.formula, tc.vars)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", tc.formula, err)
			continue
		}
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("%q = %v, want %v", tc.formula, got, tc.want)
		}
	}
}

func TestEvaluateFormula_DivisionByZero(t *testing.T) {
	_, err := EvaluateFormula("Q1 / Q2", map[string]float64{"Q1": 1, "Q2": 0})
	if err == nil {
		t.Fatal("expected an error for division by zero")
	}
	if !core.IsFormulaError(err) {
		t.Errorf("expected a formula error, got %v", err)
	}
}

func TestEvaluateFormula_UnboundPlaceholder(t *testing.T) {
	_, err := EvaluateFormula("Q1 + Q9", map[string]float64{"Q1": 1})
	if err == nil {
		t.Fatal("expected an error for an unbound placeholder")
	}
}

func TestEvaluateFormula_ParseErrors(t *testing.T) {
	for _, formula := range []string{
		"1 +",
		"(1 + 2",
		"1 ** 2",
		"1 $ 2",
		"1..5",
		"",
	} {
		if _, err := EvaluateFormula(formula, nil); err == nil {
			t.Errorf("%q: expected a parse error", formula)
		}
	}
}
