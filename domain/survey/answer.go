package survey

import (
	"strconv"
	"strings"

	"statq/domain/core"
)

// FileMeta describes one uploaded file attached to a file_upload answer
type FileMeta struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
	URL  string `json:"url,omitempty"`
}

// AnswerValue is the polymorphic answer payload. Exactly the fields matching
// the associated question's type are populated; all others stay zero. The
// value is "empty" iff none of the type-specific fields are populated.
type AnswerValue struct {
	Text        string            `json:"text,omitempty"`
	ChoiceID    string            `json:"choice_id,omitempty"`
	ChoiceIDs   []string          `json:"choice_ids,omitempty"`
	ScaleValue  *float64          `json:"scale_value,omitempty"`
	MatrixRows  map[string]string `json:"matrix_rows,omitempty"` // row id -> column id
	Date        string            `json:"date,omitempty"`
	Time        string            `json:"time,omitempty"`
	Files       []FileMeta        `json:"files,omitempty"`
	RankedIDs   []string          `json:"ranked_ids,omitempty"`
	SliderValue *float64          `json:"slider_value,omitempty"`
	OtherText   string            `json:"other_text,omitempty"`
}

// Answer ties an AnswerValue to its question and the respondent submission it
// belongs to. ResponseID is the correlation key for cross-tabulation and
// paired analysis.
type Answer struct {
	QuestionID core.QuestionID `json:"question_id"`
	ResponseID core.ResponseID `json:"response_id"`
	Value      AnswerValue     `json:"value"`
}

// Response is one respondent submission
type Response struct {
	ID          core.ResponseID `json:"id"`
	SurveyID    core.SurveyID   `json:"survey_id"`
	SubmittedAt core.Timestamp  `json:"submitted_at"`
	Answers     []Answer        `json:"answers"`
}

// IsEmpty reports whether no type-specific field is populated. Required-ness
// checks and most condition operators must consult this before looking at the
// payload.
func (v AnswerValue) IsEmpty() bool {
	if v.Text != "" || v.ChoiceID != "" || v.Date != "" || v.Time != "" {
		return false
	}
	if len(v.ChoiceIDs) > 0 || len(v.RankedIDs) > 0 || len(v.Files) > 0 || len(v.MatrixRows) > 0 {
		return false
	}
	if v.ScaleValue != nil || v.SliderValue != nil {
		return false
	}
	return true
}

// Unwrap reduces the payload to a scalar or array for condition evaluation
// and piping. Unwrap priority when multiple fields could match: checkbox
// array first, then single choice, then text, then scale, then date-or-time.
// Slider and ranking extend the same ladder for the newer question kinds.
// Returns nil for an empty value.
func (v AnswerValue) Unwrap() interface{} {
	switch {
	case len(v.ChoiceIDs) > 0:
		return v.ChoiceIDs
	case v.ChoiceID != "":
		return v.ChoiceID
	case v.Text != "":
		return v.Text
	case v.ScaleValue != nil:
		return *v.ScaleValue
	case v.SliderValue != nil:
		return *v.SliderValue
	case v.Date != "":
		return v.Date
	case v.Time != "":
		return v.Time
	case len(v.RankedIDs) > 0:
		return v.RankedIDs
	}
	return nil
}

// Numeric extracts a float64 from the value, coercing numeric-looking text
// and choice ids. The second return is false when no finite number can be
// produced.
func (v AnswerValue) Numeric() (float64, bool) {
	if v.ScaleValue != nil {
		return *v.ScaleValue, true
	}
	if v.SliderValue != nil {
		return *v.SliderValue, true
	}
	for _, s := range []string{v.Text, v.ChoiceID} {
		if s == "" {
			continue
		}
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return f, true
		}
	}
	return 0, false
}

// Category extracts the categorical label of the value for contingency and
// cross-tab grouping. Multi-select answers contribute only their first
// selection. Returns "" when the value has no categorical reading.
func (v AnswerValue) Category() string {
	switch {
	case v.ChoiceID != "":
		return v.ChoiceID
	case len(v.ChoiceIDs) > 0:
		return v.ChoiceIDs[0]
	case v.Text != "":
		return v.Text
	case v.ScaleValue != nil:
		return strconv.FormatFloat(*v.ScaleValue, 'f', -1, 64)
	case v.SliderValue != nil:
		return strconv.FormatFloat(*v.SliderValue, 'f', -1, 64)
	}
	return ""
}

// TextValue extracts the free-text reading of the value, falling back to the
// "other" text for choice questions that allow it.
func (v AnswerValue) TextValue() string {
	if v.Text != "" {
		return v.Text
	}
	return v.OtherText
}
