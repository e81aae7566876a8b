package app

import (
	"sort"

	"statq/adapters/logic/engine"
	"statq/domain/core"
	"statq/domain/logic"
	"statq/domain/survey"
)

// EvaluationService fronts the conditional logic engine. It is stateless:
// every call recomputes the full result from the inputs.
type EvaluationService struct {
	evaluator *engine.Evaluator
}

// NewEvaluationService creates the service
func NewEvaluationService() *EvaluationService {
	return &EvaluationService{evaluator: engine.NewEvaluator()}
}

// Evaluate runs one evaluation pass over the rule set
func (s *EvaluationService) Evaluate(questions []survey.Question, answers map[core.QuestionID]survey.AnswerValue, rules []logic.Rule) *logic.EvaluationResult {
	return s.evaluator.Evaluate(questions, answers, rules)
}

// CheckCycles reports every question implicated in a rule dependency cycle,
// sorted for stable output. An empty slice means the rule set is safe to
// save; acting on a non-empty result is the caller's decision.
func (s *EvaluationService) CheckCycles(questions []survey.Question, rules []logic.Rule) []core.QuestionID {
	circular := engine.FindCircularQuestions(rules, questions)
	ids := make([]core.QuestionID, 0, len(circular))
	for id := range circular {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// VisibleQuestions filters the question list down to what the respondent
// should currently see, preserving order index.
func (s *EvaluationService) VisibleQuestions(questions []survey.Question, result *logic.EvaluationResult) []survey.Question {
	visible := make([]survey.Question, 0, len(questions))
	for _, q := range questions {
		if !result.IsHidden(q.ID) {
			visible = append(visible, q)
		}
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].OrderIndex < visible[j].OrderIndex
	})
	return visible
}
