package ports

import (
	"context"

	"statq/domain/core"
	"statq/domain/logic"
	"statq/domain/survey"
)

// SurveyRepository persists question and rule definitions
type SurveyRepository interface {
	GetQuestions(ctx context.Context, surveyID core.SurveyID) ([]survey.Question, error)
	SaveQuestion(ctx context.Context, q survey.Question) error
	GetRules(ctx context.Context, surveyID core.SurveyID) ([]logic.Rule, error)
	SaveRule(ctx context.Context, surveyID core.SurveyID, rule logic.Rule) error
}

// ResponseRepository persists respondent submissions
type ResponseRepository interface {
	GetResponses(ctx context.Context, surveyID core.SurveyID) ([]survey.Response, error)
	SaveResponse(ctx context.Context, r survey.Response) error
	GetAnswers(ctx context.Context, questionID core.QuestionID) ([]survey.Answer, error)
}
