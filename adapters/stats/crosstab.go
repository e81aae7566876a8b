package stats

import (
	"sort"

	"statq/domain/core"
	"statq/domain/survey"
)

// CategoryBlock is the stat block for the target question within one filter
// category. Exactly one of Numeric/Frequencies/TextSamples is populated,
// depending on the target question's type.
type CategoryBlock struct {
	Category    string            `json:"category"`
	Count       int               `json:"count"`
	Numeric     *DescriptiveStats `json:"numeric,omitempty"`
	Frequencies map[string]int    `json:"frequencies,omitempty"`
	TextSamples []string          `json:"text_samples,omitempty"`
}

// CrossTabResult groups a target question's answers by a filter question's
// category, with the per-category stat block appropriate to the target type
type CrossTabResult struct {
	FilterQuestionID core.QuestionID     `json:"filter_question_id"`
	TargetQuestionID core.QuestionID     `json:"target_question_id"`
	TargetType       survey.QuestionType `json:"target_type"`
	Categories       []CategoryBlock     `json:"categories"`
	TotalPaired      int                 `json:"total_paired"`
}

// textSampleLimit caps the free-text excerpts carried per category
const textSampleLimit = 5

// CrossTabulate groups the target question's answers by the filter
// question's category value, matched on shared response id, and computes the
// appropriate stat block per category: numeric stats for scale/slider
// targets, a frequency distribution for choice targets, a sample of 5 plus
// count for free text. Categories come back sorted by descending count.
func CrossTabulate(target survey.Question, targetAnswers, filterAnswers []survey.Answer) CrossTabResult {
	result := CrossTabResult{
		TargetQuestionID: target.ID,
		TargetType:       target.Type,
	}
	if len(filterAnswers) > 0 {
		result.FilterQuestionID = filterAnswers[0].QuestionID
	}

	categoryByResponse := make(map[core.ResponseID]string, len(filterAnswers))
	for _, a := range filterAnswers {
		if c := a.Value.Category(); c != "" {
			categoryByResponse[a.ResponseID] = c
		}
	}

	grouped := make(map[string][]survey.Answer)
	for _, a := range targetAnswers {
		cat, ok := categoryByResponse[a.ResponseID]
		if !ok || a.Value.IsEmpty() {
			continue
		}
		grouped[cat] = append(grouped[cat], a)
		result.TotalPaired++
	}

	for cat, answers := range grouped {
		block := CategoryBlock{Category: cat, Count: len(answers)}
		switch {
		case target.Type.IsNumeric():
			stats := Describe(NumericValues(answers))
			block.Numeric = &stats
		case target.Type.IsChoice():
			block.Frequencies = FrequencyDistribution(answers)
		default:
			texts := TextValues(answers)
			if len(texts) > textSampleLimit {
				texts = texts[:textSampleLimit]
			}
			block.TextSamples = texts
		}
		result.Categories = append(result.Categories, block)
	}

	sort.Slice(result.Categories, func(i, j int) bool {
		if result.Categories[i].Count != result.Categories[j].Count {
			return result.Categories[i].Count > result.Categories[j].Count
		}
		return result.Categories[i].Category < result.Categories[j].Category
	})
	return result
}
