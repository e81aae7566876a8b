package survey

import (
	"statq/domain/core"
)

// QuestionType enumerates the supported question kinds. The options payload
// and the answer value shape are both keyed by this tag.
type QuestionType string

const (
	TypeShortText      QuestionType = "short_text"
	TypeLongText       QuestionType = "long_text"
	TypeMultipleChoice QuestionType = "multiple_choice"
	TypeCheckboxes     QuestionType = "checkboxes"
	TypeDropdown       QuestionType = "dropdown"
	TypeLinearScale    QuestionType = "linear_scale"
	TypeMatrix         QuestionType = "matrix"
	TypeDateTime       QuestionType = "date_time"
	TypeFileUpload     QuestionType = "file_upload"
	TypeRanking        QuestionType = "ranking"
	TypeSlider         QuestionType = "slider"
)

// IsChoice reports whether the type selects from a fixed choice list
func (t QuestionType) IsChoice() bool {
	return t == TypeMultipleChoice || t == TypeCheckboxes || t == TypeDropdown
}

// IsNumeric reports whether the type produces a numeric answer value
func (t QuestionType) IsNumeric() bool {
	return t == TypeLinearScale || t == TypeSlider
}

// IsText reports whether the type produces free text
func (t QuestionType) IsText() bool {
	return t == TypeShortText || t == TypeLongText
}

// Choice is one selectable option of a choice-type question
type Choice struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// MatrixItem is one row or column of a matrix question
type MatrixItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// RankItem is one rankable item of a ranking question
type RankItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// QuestionOptions carries the per-type configuration payload. Only the fields
// relevant to the question's type are populated; the rest stay zero.
type QuestionOptions struct {
	// Choice lists (multiple_choice, checkboxes, dropdown)
	Choices    []Choice `json:"choices,omitempty"`
	AllowOther bool     `json:"allow_other,omitempty"`

	// Numeric range (linear_scale, slider)
	Min      float64 `json:"min,omitempty"`
	Max      float64 `json:"max,omitempty"`
	Step     float64 `json:"step,omitempty"`
	MinLabel string  `json:"min_label,omitempty"`
	MaxLabel string  `json:"max_label,omitempty"`

	// Matrix grid
	Rows    []MatrixItem `json:"rows,omitempty"`
	Columns []MatrixItem `json:"columns,omitempty"`

	// Date/time bounds
	IncludeTime bool   `json:"include_time,omitempty"`
	MinDate     string `json:"min_date,omitempty"`
	MaxDate     string `json:"max_date,omitempty"`

	// File constraints
	MaxFiles      int      `json:"max_files,omitempty"`
	MaxFileSizeMB int      `json:"max_file_size_mb,omitempty"`
	AllowedTypes  []string `json:"allowed_types,omitempty"`

	// Ranking item list
	Items []RankItem `json:"items,omitempty"`
}

// Question describes one survey question. Questions are immutable once handed
// to the engines; mutation happens upstream of this package.
type Question struct {
	ID          core.QuestionID `json:"id"`
	SurveyID    core.SurveyID   `json:"survey_id,omitempty"`
	OrderIndex  int             `json:"order_index"`
	Type        QuestionType    `json:"type"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Required    bool            `json:"required"`
	Options     QuestionOptions `json:"options"`
}
