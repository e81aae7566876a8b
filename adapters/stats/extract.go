package stats

import (
	"statq/domain/core"
	"statq/domain/survey"
)

// Extraction utilities: pull typed values out of heterogeneous answer
// shapes. Answers whose value has no reading for the requested type are
// skipped rather than surfaced as errors, so statistics degrade gracefully
// when the shape is ambiguous.

// NumericValues extracts every numeric reading from a set of answers
func NumericValues(answers []survey.Answer) []float64 {
	var out []float64
	for _, a := range answers {
		if v, ok := a.Value.Numeric(); ok {
			out = append(out, v)
		}
	}
	return out
}

// Categories extracts the categorical reading of every answer that has one
func Categories(answers []survey.Answer) []string {
	var out []string
	for _, a := range answers {
		if c := a.Value.Category(); c != "" {
			out = append(out, c)
		}
	}
	return out
}

// TextValues extracts every non-empty free-text reading
func TextValues(answers []survey.Answer) []string {
	var out []string
	for _, a := range answers {
		if t := a.Value.TextValue(); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// NumericByResponse indexes numeric readings by response id for paired
// analysis
func NumericByResponse(answers []survey.Answer) map[core.ResponseID]float64 {
	out := make(map[core.ResponseID]float64, len(answers))
	for _, a := range answers {
		if v, ok := a.Value.Numeric(); ok {
			out[a.ResponseID] = v
		}
	}
	return out
}

// PairedNumeric joins two answer sets on response id and returns the aligned
// numeric pairs. Responses missing a numeric reading on either side are
// dropped.
func PairedNumeric(xAnswers, yAnswers []survey.Answer) (xs, ys []float64) {
	yByResponse := NumericByResponse(yAnswers)
	for _, a := range xAnswers {
		xv, ok := a.Value.Numeric()
		if !ok {
			continue
		}
		yv, ok := yByResponse[a.ResponseID]
		if !ok {
			continue
		}
		xs = append(xs, xv)
		ys = append(ys, yv)
	}
	return xs, ys
}

// FrequencyDistribution counts category occurrences across a set of answers
func FrequencyDistribution(answers []survey.Answer) map[string]int {
	freq := make(map[string]int)
	for _, a := range answers {
		if c := a.Value.Category(); c != "" {
			freq[c]++
		}
	}
	return freq
}
