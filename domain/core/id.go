package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	// Use UUID v7 for time-ordered, sortable IDs
	// Falls back to v4 if v7 is not available (for compatibility)
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// Domain-specific ID types
type (
	SurveyID   ID
	QuestionID ID
	ResponseID ID
	RuleID     ID
)

// String conversions for domain IDs
func (id SurveyID) String() string   { return ID(id).String() }
func (id QuestionID) String() string { return ID(id).String() }
func (id ResponseID) String() string { return ID(id).String() }
func (id RuleID) String() string     { return ID(id).String() }

// ParseQuestionID parses a string into QuestionID
func ParseQuestionID(s string) (QuestionID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("question ID cannot be empty")
	}
	return QuestionID(s), nil
}

// ParseResponseID parses a string into ResponseID
func ParseResponseID(s string) (ResponseID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("response ID cannot be empty")
	}
	return ResponseID(s), nil
}

// ParseSurveyID parses a string into SurveyID
func ParseSurveyID(s string) (SurveyID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("survey ID cannot be empty")
	}
	return SurveyID(s), nil
}
