package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"statq/domain/core"
	"statq/domain/survey"
	"statq/ports"

	"github.com/jmoiron/sqlx"
)

// responseRepository implements the ResponseRepository interface
type responseRepository struct {
	db *sqlx.DB
}

// NewResponseRepository creates a new response repository
func NewResponseRepository(db *sqlx.DB) ports.ResponseRepository {
	return &responseRepository{db: db}
}

// GetResponses retrieves all responses for a survey with their answers,
// oldest first
func (r *responseRepository) GetResponses(ctx context.Context, surveyID core.SurveyID) ([]survey.Response, error) {
	query := `SELECT id, survey_id, submitted_at
	FROM responses
	WHERE survey_id = $1
	ORDER BY submitted_at`

	rows, err := r.db.QueryContext(ctx, query, surveyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query responses: %w", err)
	}
	defer rows.Close()

	var responses []survey.Response
	byID := make(map[core.ResponseID]int)
	for rows.Next() {
		var resp survey.Response
		var submittedAt sql.NullTime

		if err := rows.Scan(&resp.ID, &resp.SurveyID, &submittedAt); err != nil {
			return nil, fmt.Errorf("failed to scan response: %w", err)
		}
		if submittedAt.Valid {
			resp.SubmittedAt = core.NewTimestamp(submittedAt.Time)
		}

		byID[resp.ID] = len(responses)
		responses = append(responses, resp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(responses) == 0 {
		return responses, nil
	}

	answerQuery := `SELECT a.response_id, a.question_id, a.value
	FROM answers a
	JOIN responses r ON r.id = a.response_id
	WHERE r.survey_id = $1`

	answerRows, err := r.db.QueryContext(ctx, answerQuery, surveyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query answers: %w", err)
	}
	defer answerRows.Close()

	for answerRows.Next() {
		answer, err := scanAnswer(answerRows)
		if err != nil {
			return nil, err
		}
		if idx, ok := byID[answer.ResponseID]; ok {
			responses[idx].Answers = append(responses[idx].Answers, answer)
		}
	}

	return responses, answerRows.Err()
}

// SaveResponse inserts a response and its answers in one transaction
func (r *responseRepository) SaveResponse(ctx context.Context, resp survey.Response) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO responses (id, survey_id, submitted_at) VALUES ($1, $2, $3)`,
		resp.ID, resp.SurveyID, resp.SubmittedAt.Time(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert response: %w", err)
	}

	for _, a := range resp.Answers {
		valueJSON, err := json.Marshal(a.Value)
		if err != nil {
			return fmt.Errorf("failed to marshal answer value: %w", err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO answers (response_id, question_id, value) VALUES ($1, $2, $3)`,
			resp.ID, a.QuestionID, valueJSON,
		)
		if err != nil {
			return fmt.Errorf("failed to insert answer for question %s: %w", a.QuestionID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit response: %w", err)
	}
	return nil
}

// GetAnswers retrieves every answer given to one question across responses
func (r *responseRepository) GetAnswers(ctx context.Context, questionID core.QuestionID) ([]survey.Answer, error) {
	query := `SELECT response_id, question_id, value
	FROM answers
	WHERE question_id = $1
	ORDER BY response_id`

	rows, err := r.db.QueryContext(ctx, query, questionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query answers: %w", err)
	}
	defer rows.Close()

	var answers []survey.Answer
	for rows.Next() {
		answer, err := scanAnswer(rows)
		if err != nil {
			return nil, err
		}
		answers = append(answers, answer)
	}

	return answers, rows.Err()
}

func scanAnswer(rows *sql.Rows) (survey.Answer, error) {
	var a survey.Answer
	var valueJSON []byte

	if err := rows.Scan(&a.ResponseID, &a.QuestionID, &valueJSON); err != nil {
		return a, fmt.Errorf("failed to scan answer: %w", err)
	}
	if len(valueJSON) > 0 {
		if err := json.Unmarshal(valueJSON, &a.Value); err != nil {
			return a, fmt.Errorf("failed to unmarshal answer value: %w", err)
		}
	}
	return a, nil
}

// Ensure responseRepository implements ResponseRepository
var _ ports.ResponseRepository = (*responseRepository)(nil)
