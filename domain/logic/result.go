package logic

import (
	"statq/domain/core"
)

// EvaluationResult is the derived outcome of one evaluation pass over a rule
// set. It is never persisted; it is recomputed whenever any answer changes.
type EvaluationResult struct {
	Hidden        map[core.QuestionID]bool        `json:"hidden"`
	ForceRequired map[core.QuestionID]bool        `json:"force_required"`
	ForceOptional map[core.QuestionID]bool        `json:"force_optional"`
	PipedValues   map[core.QuestionID]interface{} `json:"piped_values"`
	Calculated    map[core.QuestionID]float64     `json:"calculated"`
}

// NewEvaluationResult returns an empty result with all maps allocated
func NewEvaluationResult() *EvaluationResult {
	return &EvaluationResult{
		Hidden:        make(map[core.QuestionID]bool),
		ForceRequired: make(map[core.QuestionID]bool),
		ForceOptional: make(map[core.QuestionID]bool),
		PipedValues:   make(map[core.QuestionID]interface{}),
		Calculated:    make(map[core.QuestionID]float64),
	}
}

// IsHidden reports whether the question ends the pass hidden
func (r *EvaluationResult) IsHidden(id core.QuestionID) bool {
	return r.Hidden[id]
}

// IsRequired resolves the effective required-ness for a question given its
// static default: force-required wins over force-optional, which wins over
// the question's own flag.
func (r *EvaluationResult) IsRequired(id core.QuestionID, defaultRequired bool) bool {
	if r.ForceRequired[id] {
		return true
	}
	if r.ForceOptional[id] {
		return false
	}
	return defaultRequired
}
