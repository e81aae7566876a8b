package stats

import (
	"fmt"
	"math"

	"statq/domain/core"

	"gonum.org/v1/gonum/stat"
)

// RegressionResult reports an ordinary least squares fit of y on x
type RegressionResult struct {
	SampleSize     int       `json:"sample_size"`
	Slope          float64   `json:"slope"`
	Intercept      float64   `json:"intercept"`
	RSquared       float64   `json:"r_squared"`
	AdjRSquared    float64   `json:"adj_r_squared"`
	Correlation    float64   `json:"correlation"`
	StdErrEstimate float64   `json:"std_err_estimate"`
	Predictions    []float64 `json:"predictions,omitempty"`
	Residuals      []float64 `json:"residuals,omitempty"`
	ResidualMean   float64   `json:"residual_mean"`
	ResidualStdDev float64   `json:"residual_std_dev"`
	Interpretation string    `json:"interpretation"`
}

// SimpleLinearRegression fits y = intercept + slope·x by ordinary least
// squares. Fewer than 3 points return the zero model with an explanation.
// When x has no variance the slope is undefined and the fit degrades to the
// mean-only model. Mismatched input lengths are a contract violation.
func SimpleLinearRegression(x, y []float64) (RegressionResult, error) {
	if len(x) != len(y) {
		return RegressionResult{}, fmt.Errorf("%w: got %d x values and %d y values", core.ErrMismatchedPairs, len(x), len(y))
	}
	result := RegressionResult{SampleSize: len(x)}
	if len(x) < 3 {
		result.Interpretation = "Insufficient data: regression needs at least 3 points."
		return result, nil
	}

	n := float64(len(x))
	meanY := 0.0
	for _, v := range y {
		meanY += v
	}
	meanY /= n

	if !hasVariance(x) {
		// Vertical data: fall back to the mean-only model
		result.Intercept = round2(meanY)
		result.Interpretation = "Predictor has no variance: falling back to the mean-only model."
		return result, nil
	}

	intercept, slope := stat.LinearRegression(x, y, nil, false)

	predictions := make([]float64, len(x))
	residuals := make([]float64, len(x))
	ssRes := 0.0
	ssTot := 0.0
	for i := range x {
		predictions[i] = round2(intercept + slope*x[i])
		resid := y[i] - (intercept + slope*x[i])
		residuals[i] = round2(resid)
		ssRes += resid * resid
		d := y[i] - meanY
		ssTot += d * d
	}

	rSquared := 0.0
	if ssTot > 0 {
		rSquared = 1 - ssRes/ssTot
	} else if ssRes == 0 {
		rSquared = 1
	}
	adjRSquared := 1 - (1-rSquared)*(n-1)/(n-2)

	correlation := math.Sqrt(math.Max(0, rSquared))
	if slope < 0 {
		correlation = -correlation
	}

	stdErr := math.Sqrt(ssRes / (n - 2))

	residMean := 0.0
	for _, r := range residuals {
		residMean += r
	}
	residMean /= n
	residVar := 0.0
	for _, r := range residuals {
		d := r - residMean
		residVar += d * d
	}
	residSD := math.Sqrt(residVar / n)

	result.Slope = round2(slope)
	result.Intercept = round2(intercept)
	result.RSquared = round2(rSquared)
	result.AdjRSquared = round2(adjRSquared)
	result.Correlation = round2(correlation)
	result.StdErrEstimate = round2(stdErr)
	result.Predictions = predictions
	result.Residuals = residuals
	result.ResidualMean = round2(residMean)
	result.ResidualStdDev = round2(residSD)
	result.Interpretation = fmt.Sprintf(
		"Fitted y = %.2f + %.2f·x explaining %.0f%% of the variance (r=%.2f).",
		result.Intercept, result.Slope, result.RSquared*100, result.Correlation)
	return result, nil
}

func hasVariance(values []float64) bool {
	for i := 1; i < len(values); i++ {
		if values[i] != values[0] {
			return true
		}
	}
	return false
}
