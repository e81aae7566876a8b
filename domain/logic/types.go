package logic

import (
	"statq/domain/core"
)

// Operator compares a source answer against a configured value
type Operator string

const (
	OpEquals      Operator = "equals"
	OpNotEquals   Operator = "not_equals"
	OpContains    Operator = "contains"
	OpNotContains Operator = "not_contains"
	OpGreaterThan Operator = "greater_than"
	OpLessThan    Operator = "less_than"
	OpIsEmpty     Operator = "is_empty"
	OpIsNotEmpty  Operator = "is_not_empty"
)

// Combinator joins conditions within a group, and groups within a rule
type Combinator string

const (
	CombineAnd Combinator = "and"
	CombineOr  Combinator = "or"
)

// Action is what a rule does to its target questions when its conditions hold
type Action string

const (
	ActionShow      Action = "show"
	ActionHide      Action = "hide"
	ActionRequire   Action = "require"
	ActionUnrequire Action = "unrequire"
	ActionSetValue  Action = "set_value"
	ActionCalculate Action = "calculate"
)

// PipedValue is the sentinel configured value that means "resolve from the
// rule's source question's current answer" instead of using a literal.
const PipedValue = "piped"

// Condition is one atomic comparison. Pure value object, no identity beyond
// its containing rule.
type Condition struct {
	SourceQuestionID core.QuestionID `json:"source_question_id"`
	Operator         Operator        `json:"operator"`
	Value            interface{}     `json:"value,omitempty"`
}

// ConditionGroup is an ordered set of conditions joined by a combinator.
// An empty group evaluates to true (vacuous truth, by contract).
type ConditionGroup struct {
	Combinator Combinator  `json:"combinator"`
	Conditions []Condition `json:"conditions"`
}

// Rule is the advanced rule form: condition groups joined by a group-level
// combinator, driving an action against one or more target questions.
type Rule struct {
	ID              core.RuleID       `json:"id"`
	Groups          []ConditionGroup  `json:"groups"`
	GroupCombinator Combinator        `json:"group_combinator"`
	Action          Action            `json:"action"`
	TargetIDs       []core.QuestionID `json:"target_ids"`
	Enabled         bool              `json:"enabled"`
	Priority        int               `json:"priority"` // higher wins; default 0

	// set_value: the literal to inject, or the PipedValue sentinel together
	// with SourceQuestionIDs[0] naming where to pipe from.
	SetValue interface{} `json:"set_value,omitempty"`

	// calculate: arithmetic formula with Q1..Qn placeholders bound
	// positionally to SourceQuestionIDs (1-indexed).
	Formula           string            `json:"formula,omitempty"`
	SourceQuestionIDs []core.QuestionID `json:"source_question_ids,omitempty"`
}

// SourceIDs collects every question id the rule reads from: condition sources
// plus piping/formula sources. Used to build the dependency graph.
func (r Rule) SourceIDs() []core.QuestionID {
	seen := make(map[core.QuestionID]bool)
	var out []core.QuestionID
	add := func(id core.QuestionID) {
		if id != "" && !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	for _, g := range r.Groups {
		for _, c := range g.Conditions {
			add(c.SourceQuestionID)
		}
	}
	for _, id := range r.SourceQuestionIDs {
		add(id)
	}
	return out
}
