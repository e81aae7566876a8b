package stats

import (
	"errors"
	"testing"

	"statq/domain/core"
)

func TestSimpleLinearRegression_PerfectLine(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{3, 5, 7, 9, 11} // y = 2x + 1

	result, err := SimpleLinearRegression(x, y)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Slope != 2 {
		t.Errorf("slope = %v, want 2", result.Slope)
	}
	if result.Intercept != 1 {
		t.Errorf("intercept = %v, want 1", result.Intercept)
	}
	if result.RSquared != 1 {
		t.Errorf("R² = %v, want 1 for an exact fit", result.RSquared)
	}
	if result.Correlation != 1 {
		t.Errorf("r = %v, want 1", result.Correlation)
	}
	if result.Predictions[0] != 3 || result.Predictions[4] != 11 {
		t.Errorf("predictions = %v, want the exact line", result.Predictions)
	}
	if result.Residuals[2] != 0 {
		t.Errorf("residuals = %v, want zeros", result.Residuals)
	}
}

func TestSimpleLinearRegression_NegativeSlope(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	y := []float64{10, 8, 6, 4}

	result, err := SimpleLinearRegression(x, y)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Slope != -2 {
		t.Errorf("slope = %v, want -2", result.Slope)
	}
	if result.Correlation != -1 {
		t.Errorf("r = %v, want -1 (sign follows the slope)", result.Correlation)
	}
}

func TestSimpleLinearRegression_MismatchedLengths(t *testing.T) {
	_, err := SimpleLinearRegression([]float64{1, 2, 3}, []float64{1, 2})
	if err == nil {
		t.Fatal("mismatched lengths must fail hard")
	}
	if !errors.Is(err, core.ErrMismatchedPairs) {
		t.Errorf("expected ErrMismatchedPairs, got %v", err)
	}
}

func TestSimpleLinearRegression_TooFewPoints(t *testing.T) {
	result, err := SimpleLinearRegression([]float64{1, 2}, []float64{3, 4})
	if err != nil {
		t.Fatalf("too-few points is a degenerate result, not an error: %v", err)
	}
	if result.Slope != 0 || result.RSquared != 0 {
		t.Errorf("degenerate result must be the zero model, got %+v", result)
	}
	if result.Interpretation == "" {
		t.Error("the degenerate result must explain itself")
	}
}

func TestSimpleLinearRegression_NoPredictorVariance(t *testing.T) {
	result, err := SimpleLinearRegression([]float64{4, 4, 4, 4}, []float64{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Slope != 0 {
		t.Errorf("slope = %v, want 0 when x is constant", result.Slope)
	}
	if result.Intercept != 2.5 {
		t.Errorf("intercept = %v, want the mean of y", result.Intercept)
	}
}

func TestSimpleLinearRegression_NoisyFit(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6}
	y := []float64{2.1, 3.9, 6.2, 7.8, 10.1, 11.9}

	result, err := SimpleLinearRegression(x, y)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.RSquared < 0.99 {
		t.Errorf("R² = %v, want near 1 for tight noise", result.RSquared)
	}
	if result.Slope < 1.9 || result.Slope > 2.1 {
		t.Errorf("slope = %v, want near 2", result.Slope)
	}
}
