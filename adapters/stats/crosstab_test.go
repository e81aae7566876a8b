package stats

import (
	"fmt"
	"testing"

	"statq/domain/core"
	"statq/domain/survey"
)

func buildCrossTabFixture() (survey.Question, []survey.Answer, []survey.Answer) {
	target := survey.Question{ID: "q_rating", Type: survey.TypeLinearScale}

	var targetAnswers, filterAnswers []survey.Answer
	add := func(i int, segment string, rating float64) {
		id := core.ResponseID(fmt.Sprintf("r%03d", i))
		filterAnswers = append(filterAnswers, survey.Answer{
			QuestionID: "q_segment", ResponseID: id,
			Value: survey.AnswerValue{ChoiceID: segment},
		})
		targetAnswers = append(targetAnswers, survey.Answer{
			QuestionID: "q_rating", ResponseID: id,
			Value: survey.AnswerValue{ScaleValue: &rating},
		})
	}

	add(0, "new", 4)
	add(1, "new", 5)
	add(2, "new", 6)
	add(3, "returning", 8)
	add(4, "returning", 9)
	add(5, "returning", 10)
	add(6, "returning", 9)
	return target, targetAnswers, filterAnswers
}

func TestCrossTabulate_NumericTarget(t *testing.T) {
	target, targetAnswers, filterAnswers := buildCrossTabFixture()

	result := CrossTabulate(target, targetAnswers, filterAnswers)
	if result.TotalPaired != 7 {
		t.Errorf("paired = %d, want 7", result.TotalPaired)
	}
	if len(result.Categories) != 2 {
		t.Fatalf("categories = %d, want 2", len(result.Categories))
	}
	// Sorted by descending count: returning (4) before new (3)
	if result.Categories[0].Category != "returning" {
		t.Errorf("first category = %q, want returning", result.Categories[0].Category)
	}
	ret := result.Categories[0]
	if ret.Numeric == nil || *ret.Numeric.Mean != 9 {
		t.Errorf("returning mean = %v, want 9", ret.Numeric)
	}
	if ret.Frequencies != nil || ret.TextSamples != nil {
		t.Error("a numeric target gets only the numeric block")
	}
}

func TestCrossTabulate_ChoiceTarget(t *testing.T) {
	target := survey.Question{ID: "q_plan", Type: survey.TypeMultipleChoice}
	var targetAnswers, filterAnswers []survey.Answer
	for i := 0; i < 6; i++ {
		id := core.ResponseID(fmt.Sprintf("r%03d", i))
		filterAnswers = append(filterAnswers, survey.Answer{
			QuestionID: "q_segment", ResponseID: id,
			Value: survey.AnswerValue{ChoiceID: "all"},
		})
		targetAnswers = append(targetAnswers, survey.Answer{
			QuestionID: "q_plan", ResponseID: id,
			Value: survey.AnswerValue{ChoiceID: []string{"basic", "premium"}[i%2]},
		})
	}

	result := CrossTabulate(target, targetAnswers, filterAnswers)
	if len(result.Categories) != 1 {
		t.Fatalf("categories = %d, want 1", len(result.Categories))
	}
	freq := result.Categories[0].Frequencies
	if freq["basic"] != 3 || freq["premium"] != 3 {
		t.Errorf("frequencies = %v, want 3/3", freq)
	}
}

func TestCrossTabulate_TextTargetSamplesCapped(t *testing.T) {
	target := survey.Question{ID: "q_comment", Type: survey.TypeLongText}
	var targetAnswers, filterAnswers []survey.Answer
	for i := 0; i < 9; i++ {
		id := core.ResponseID(fmt.Sprintf("r%03d", i))
		filterAnswers = append(filterAnswers, survey.Answer{
			QuestionID: "q_segment", ResponseID: id,
			Value: survey.AnswerValue{ChoiceID: "all"},
		})
		targetAnswers = append(targetAnswers, survey.Answer{
			QuestionID: "q_comment", ResponseID: id,
			Value: survey.AnswerValue{Text: fmt.Sprintf("comment %d", i)},
		})
	}

	result := CrossTabulate(target, targetAnswers, filterAnswers)
	block := result.Categories[0]
	if block.Count != 9 {
		t.Errorf("count = %d, want the full 9", block.Count)
	}
	if len(block.TextSamples) != 5 {
		t.Errorf("samples = %d, want capped at 5", len(block.TextSamples))
	}
}

func TestCrossTabulate_UnpairedAndEmptySkipped(t *testing.T) {
	target, targetAnswers, filterAnswers := buildCrossTabFixture()
	// An answer with no matching filter response
	v := 7.0
	targetAnswers = append(targetAnswers, survey.Answer{
		QuestionID: "q_rating", ResponseID: "r999",
		Value: survey.AnswerValue{ScaleValue: &v},
	})
	// An empty answer from a paired respondent
	targetAnswers = append(targetAnswers, survey.Answer{
		QuestionID: "q_rating", ResponseID: "r000",
	})

	result := CrossTabulate(target, targetAnswers, filterAnswers)
	if result.TotalPaired != 7 {
		t.Errorf("paired = %d, want 7 (unpaired and empty answers skipped)", result.TotalPaired)
	}
}
