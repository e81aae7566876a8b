package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"statq/domain/core"
	"statq/domain/logic"
	"statq/domain/survey"
	"statq/ports"

	"github.com/jmoiron/sqlx"
)

// surveyRepository implements the SurveyRepository interface
type surveyRepository struct {
	db *sqlx.DB
}

// NewSurveyRepository creates a new survey repository
func NewSurveyRepository(db *sqlx.DB) ports.SurveyRepository {
	return &surveyRepository{db: db}
}

// GetQuestions retrieves all questions for a survey ordered by position
func (r *surveyRepository) GetQuestions(ctx context.Context, surveyID core.SurveyID) ([]survey.Question, error) {
	query := `SELECT
		id, survey_id, order_index, type, title,
		COALESCE(description, '') as description, required, options
	FROM questions
	WHERE survey_id = $1
	ORDER BY order_index`

	rows, err := r.db.QueryContext(ctx, query, surveyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	defer rows.Close()

	var questions []survey.Question
	for rows.Next() {
		var q survey.Question
		var optionsJSON []byte

		err := rows.Scan(&q.ID, &q.SurveyID, &q.OrderIndex, &q.Type, &q.Title, &q.Description, &q.Required, &optionsJSON)
		if err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}

		if len(optionsJSON) > 0 {
			if err := json.Unmarshal(optionsJSON, &q.Options); err != nil {
				return nil, fmt.Errorf("failed to unmarshal question options: %w", err)
			}
		}

		questions = append(questions, q)
	}

	return questions, rows.Err()
}

// SaveQuestion inserts or updates a question definition
func (r *surveyRepository) SaveQuestion(ctx context.Context, q survey.Question) error {
	optionsJSON, err := json.Marshal(q.Options)
	if err != nil {
		return fmt.Errorf("failed to marshal question options: %w", err)
	}

	query := `INSERT INTO questions (
		id, survey_id, order_index, type, title, description, required, options
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8
	) ON CONFLICT (id) DO UPDATE SET
		order_index = EXCLUDED.order_index,
		type = EXCLUDED.type,
		title = EXCLUDED.title,
		description = EXCLUDED.description,
		required = EXCLUDED.required,
		options = EXCLUDED.options`

	_, err = r.db.ExecContext(ctx, query,
		q.ID, q.SurveyID, q.OrderIndex, q.Type, q.Title, q.Description, q.Required, optionsJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to save question: %w", err)
	}

	return nil
}

// GetRules retrieves all logic rules for a survey, highest priority first
func (r *surveyRepository) GetRules(ctx context.Context, surveyID core.SurveyID) ([]logic.Rule, error) {
	query := `SELECT id, definition
	FROM logic_rules
	WHERE survey_id = $1
	ORDER BY priority DESC, id`

	rows, err := r.db.QueryContext(ctx, query, surveyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query rules: %w", err)
	}
	defer rows.Close()

	var rules []logic.Rule
	for rows.Next() {
		var id core.RuleID
		var definitionJSON []byte

		if err := rows.Scan(&id, &definitionJSON); err != nil {
			return nil, fmt.Errorf("failed to scan rule: %w", err)
		}

		var rule logic.Rule
		if err := json.Unmarshal(definitionJSON, &rule); err != nil {
			return nil, fmt.Errorf("failed to unmarshal rule %s: %w", id, err)
		}
		rule.ID = id

		rules = append(rules, rule)
	}

	return rules, rows.Err()
}

// SaveRule inserts or updates a logic rule. The full rule document lives in a
// JSON column; priority is duplicated into its own column for ordering.
func (r *surveyRepository) SaveRule(ctx context.Context, surveyID core.SurveyID, rule logic.Rule) error {
	if rule.ID == "" {
		rule.ID = core.RuleID(core.NewID())
	}

	definitionJSON, err := json.Marshal(rule)
	if err != nil {
		return fmt.Errorf("failed to marshal rule: %w", err)
	}

	query := `INSERT INTO logic_rules (
		id, survey_id, priority, enabled, definition
	) VALUES (
		$1, $2, $3, $4, $5
	) ON CONFLICT (id) DO UPDATE SET
		priority = EXCLUDED.priority,
		enabled = EXCLUDED.enabled,
		definition = EXCLUDED.definition`

	_, err = r.db.ExecContext(ctx, query, rule.ID, surveyID, rule.Priority, rule.Enabled, definitionJSON)
	if err != nil {
		return fmt.Errorf("failed to save rule: %w", err)
	}

	return nil
}

// GetQuestion retrieves a single question by id
func (r *surveyRepository) GetQuestion(ctx context.Context, id core.QuestionID) (*survey.Question, error) {
	query := `SELECT
		id, survey_id, order_index, type, title,
		COALESCE(description, '') as description, required, options
	FROM questions WHERE id = $1`

	var q survey.Question
	var optionsJSON []byte

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&q.ID, &q.SurveyID, &q.OrderIndex, &q.Type, &q.Title, &q.Description, &q.Required, &optionsJSON,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("question %s: %w", id, core.ErrQuestionNotFound)
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}

	if len(optionsJSON) > 0 {
		if err := json.Unmarshal(optionsJSON, &q.Options); err != nil {
			return nil, fmt.Errorf("failed to unmarshal question options: %w", err)
		}
	}

	return &q, nil
}

// Ensure surveyRepository implements SurveyRepository
var _ ports.SurveyRepository = (*surveyRepository)(nil)
