package engine

import (
	"fmt"
	"sort"

	"statq/domain/core"
	"statq/domain/logic"
	"statq/domain/survey"
)

// Evaluator runs a rule set against the current answers and produces the
// visibility/requirement/piping/calculation outcome for every target
// question. Evaluation is pure: same inputs, same result.
type Evaluator struct{}

// NewEvaluator creates a new rule evaluator
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// actionKind buckets actions that share one priority gate per target.
// Show/hide contend for the visibility gate, require/unrequire for the
// requirement gate. set_value and calculate are ungated.
type actionKind int

const (
	kindVisibility actionKind = iota
	kindRequirement
)

// Evaluate processes rules in descending priority order, original order
// breaking ties. For gated actions a rule applies only when its priority is
// >= the priority already recorded for that target and action kind, so a
// strictly higher-priority decision cannot be overridden and the last rule
// wins at equal priority. set_value has no gate: the last rule processed
// always wins.
func (e *Evaluator) Evaluate(questions []survey.Question, answers map[core.QuestionID]survey.AnswerValue, rules []logic.Rule) *logic.EvaluationResult {
	result := logic.NewEvaluationResult()

	ordered := make([]logic.Rule, 0, len(rules))
	for _, r := range rules {
		if r.Enabled {
			ordered = append(ordered, r)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority > ordered[j].Priority
	})

	gates := make(map[core.QuestionID]map[actionKind]int)
	applies := func(target core.QuestionID, kind actionKind, priority int) bool {
		kinds, ok := gates[target]
		if !ok {
			kinds = make(map[actionKind]int)
			gates[target] = kinds
		}
		if stored, seen := kinds[kind]; seen && priority < stored {
			return false
		}
		kinds[kind] = priority
		return true
	}

	for _, rule := range ordered {
		if !RuleApplies(rule, answers) {
			continue
		}
		for _, target := range rule.TargetIDs {
			switch rule.Action {
			case logic.ActionShow:
				if applies(target, kindVisibility, rule.Priority) {
					delete(result.Hidden, target)
				}
			case logic.ActionHide:
				if applies(target, kindVisibility, rule.Priority) {
					result.Hidden[target] = true
				}
			case logic.ActionRequire:
				if applies(target, kindRequirement, rule.Priority) {
					result.ForceRequired[target] = true
					delete(result.ForceOptional, target)
				}
			case logic.ActionUnrequire:
				if applies(target, kindRequirement, rule.Priority) {
					result.ForceOptional[target] = true
					delete(result.ForceRequired, target)
				}
			case logic.ActionSetValue:
				if v, ok := e.resolveSetValue(rule, answers); ok {
					result.PipedValues[target] = v
				}
			case logic.ActionCalculate:
				if v, ok := e.calculate(rule, answers); ok {
					result.Calculated[target] = v
				}
			}
		}
	}

	return result
}

// resolveSetValue produces the value a set_value rule injects. The PipedValue
// sentinel pulls the current unwrapped value from the rule's source question;
// anything else is used literally.
func (e *Evaluator) resolveSetValue(rule logic.Rule, answers map[core.QuestionID]survey.AnswerValue) (interface{}, bool) {
	if s, ok := rule.SetValue.(string); ok && s == logic.PipedValue {
		source, ok := pipeSource(rule)
		if !ok {
			return nil, false
		}
		v := answers[source].Unwrap()
		if v == nil {
			return nil, false
		}
		return v, true
	}
	if rule.SetValue == nil {
		return nil, false
	}
	return rule.SetValue, true
}

func pipeSource(rule logic.Rule) (core.QuestionID, bool) {
	if len(rule.SourceQuestionIDs) > 0 {
		return rule.SourceQuestionIDs[0], true
	}
	for _, g := range rule.Groups {
		for _, c := range g.Conditions {
			if c.SourceQuestionID != "" {
				return c.SourceQuestionID, true
			}
		}
	}
	return "", false
}

// calculate binds Q1..Qn positionally to the rule's source questions and
// evaluates the formula. Any non-coercible source or parse failure aborts the
// calculation without error: one bad rule must not block the rest of the
// pass.
func (e *Evaluator) calculate(rule logic.Rule, answers map[core.QuestionID]survey.AnswerValue) (float64, bool) {
	vars := make(map[string]float64, len(rule.SourceQuestionIDs))
	for i, src := range rule.SourceQuestionIDs {
		n, ok := answers[src].Numeric()
		if !ok {
			return 0, false
		}
		vars[fmt.Sprintf("Q%d", i+1)] = n
	}
	v, err := EvaluateFormula(rule.Formula, vars)
	if err != nil {
		return 0, false
	}
	return v, true
}

// EvaluateGroup combines a group's conditions with its combinator. A group
// with zero conditions evaluates to true.
func EvaluateGroup(g logic.ConditionGroup, answers map[core.QuestionID]survey.AnswerValue) bool {
	if len(g.Conditions) == 0 {
		return true
	}
	if g.Combinator == logic.CombineOr {
		for _, c := range g.Conditions {
			if EvaluateCondition(c.Operator, answers[c.SourceQuestionID], c.Value) {
				return true
			}
		}
		return false
	}
	for _, c := range g.Conditions {
		if !EvaluateCondition(c.Operator, answers[c.SourceQuestionID], c.Value) {
			return false
		}
	}
	return true
}

// RuleApplies combines a rule's condition groups with the group combinator.
// A rule with zero groups evaluates to true.
func RuleApplies(r logic.Rule, answers map[core.QuestionID]survey.AnswerValue) bool {
	if len(r.Groups) == 0 {
		return true
	}
	if r.GroupCombinator == logic.CombineOr {
		for _, g := range r.Groups {
			if EvaluateGroup(g, answers) {
				return true
			}
		}
		return false
	}
	for _, g := range r.Groups {
		if !EvaluateGroup(g, answers) {
			return false
		}
	}
	return true
}
