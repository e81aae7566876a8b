package testkit

import (
	"fmt"
	"time"

	"statq/domain/core"
	"statq/domain/survey"
)

// TestKit builds deterministic surveys and response sets for tests and
// demos. All randomness comes from a seeded linear congruential generator so
// the same seed always produces the same data.
type TestKit struct {
	state uint64
}

// NewTestKit creates a kit with the given seed
func NewTestKit(seed uint64) *TestKit {
	if seed == 0 {
		seed = 42
	}
	return &TestKit{state: seed}
}

func (k *TestKit) next() uint64 {
	k.state = k.state*6364136223846793005 + 1442695040888963407
	return k.state
}

// Intn returns a deterministic value in [0, n)
func (k *TestKit) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int((k.next() >> 33) % uint64(n))
}

// Float returns a deterministic value in [0, 1)
func (k *TestKit) Float() float64 {
	return float64(k.next()>>11) / float64(1<<53)
}

// SatisfactionSurvey builds a small fixed survey covering the main question
// kinds: one choice filter, one scale target, one checkbox, one free text.
func (k *TestKit) SatisfactionSurvey() []survey.Question {
	return []survey.Question{
		{
			ID: "q_segment", OrderIndex: 0, Type: survey.TypeMultipleChoice,
			Title: "Which best describes you?",
			Options: survey.QuestionOptions{Choices: []survey.Choice{
				{ID: "new", Label: "New customer"},
				{ID: "returning", Label: "Returning customer"},
			}},
		},
		{
			ID: "q_rating", OrderIndex: 1, Type: survey.TypeLinearScale,
			Title:    "How satisfied are you?",
			Required: true,
			Options:  survey.QuestionOptions{Min: 1, Max: 10, Step: 1},
		},
		{
			ID: "q_features", OrderIndex: 2, Type: survey.TypeCheckboxes,
			Title: "Which features do you use?",
			Options: survey.QuestionOptions{Choices: []survey.Choice{
				{ID: "reports", Label: "Reports"},
				{ID: "exports", Label: "Exports"},
				{ID: "alerts", Label: "Alerts"},
			}},
		},
		{
			ID: "q_comment", OrderIndex: 3, Type: survey.TypeLongText,
			Title: "Anything else?",
		},
	}
}

// Responses generates n deterministic responses to the satisfaction survey.
// Returning customers skew toward higher ratings so cross-tab and group
// comparisons have signal to find.
func (k *TestKit) Responses(n int, start time.Time) []survey.Response {
	segments := []string{"new", "returning"}
	features := []string{"reports", "exports", "alerts"}

	responses := make([]survey.Response, 0, n)
	for i := 0; i < n; i++ {
		id := core.ResponseID(fmt.Sprintf("resp-%04d", i))
		segment := segments[k.Intn(len(segments))]

		base := 4
		if segment == "returning" {
			base = 7
		}
		rating := float64(base + k.Intn(4))
		if rating > 10 {
			rating = 10
		}

		answers := []survey.Answer{
			{QuestionID: "q_segment", ResponseID: id, Value: survey.AnswerValue{ChoiceID: segment}},
			{QuestionID: "q_rating", ResponseID: id, Value: survey.AnswerValue{ScaleValue: &rating}},
			{QuestionID: "q_features", ResponseID: id, Value: survey.AnswerValue{
				ChoiceIDs: []string{features[k.Intn(len(features))]},
			}},
		}
		if k.Intn(3) == 0 {
			answers = append(answers, survey.Answer{
				QuestionID: "q_comment", ResponseID: id,
				Value: survey.AnswerValue{Text: fmt.Sprintf("comment %d", i)},
			})
		}

		responses = append(responses, survey.Response{
			ID:          id,
			SurveyID:    "survey-demo",
			SubmittedAt: core.NewTimestamp(start.Add(time.Duration(i) * 37 * time.Minute)),
			Answers:     answers,
		})
	}
	return responses
}

// AnswersFor flattens all answers for one question id across responses
func AnswersFor(responses []survey.Response, questionID core.QuestionID) []survey.Answer {
	var out []survey.Answer
	for _, r := range responses {
		for _, a := range r.Answers {
			if a.QuestionID == questionID {
				out = append(out, a)
			}
		}
	}
	return out
}
