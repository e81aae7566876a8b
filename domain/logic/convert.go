package logic

import (
	"statq/domain/core"
)

// SimpleRule is the legacy rule form: one source question, one condition,
// show/hide only. Kept for stored rule sets that predate condition groups.
type SimpleRule struct {
	ID               core.RuleID     `json:"id"`
	SourceQuestionID core.QuestionID `json:"source_question_id"`
	Operator         Operator        `json:"operator"`
	Value            interface{}     `json:"value,omitempty"`
	Action           Action          `json:"action"` // show or hide
	TargetID         core.QuestionID `json:"target_id"`
	Enabled          bool            `json:"enabled"`
}

// ToRule lifts a legacy rule into the advanced form: a single group holding
// the single condition.
func (s SimpleRule) ToRule() Rule {
	return Rule{
		ID:              s.ID,
		GroupCombinator: CombineAnd,
		Groups: []ConditionGroup{{
			Combinator: CombineAnd,
			Conditions: []Condition{{
				SourceQuestionID: s.SourceQuestionID,
				Operator:         s.Operator,
				Value:            s.Value,
			}},
		}},
		Action:    s.Action,
		TargetIDs: []core.QuestionID{s.TargetID},
		Enabled:   s.Enabled,
	}
}

// ToSimpleRule lowers an advanced rule back to the legacy form. Returns
// (zero, false) when the rule is not representable: more than one group,
// more than one condition, more than one target, or a non-show/hide action.
func (r Rule) ToSimpleRule() (SimpleRule, bool) {
	if r.Action != ActionShow && r.Action != ActionHide {
		return SimpleRule{}, false
	}
	if len(r.Groups) != 1 || len(r.Groups[0].Conditions) != 1 || len(r.TargetIDs) != 1 {
		return SimpleRule{}, false
	}
	c := r.Groups[0].Conditions[0]
	return SimpleRule{
		ID:               r.ID,
		SourceQuestionID: c.SourceQuestionID,
		Operator:         c.Operator,
		Value:            c.Value,
		Action:           r.Action,
		TargetID:         r.TargetIDs[0],
		Enabled:          r.Enabled,
	}, true
}
