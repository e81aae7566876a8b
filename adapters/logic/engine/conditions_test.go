package engine

import (
	"testing"

	"statq/domain/logic"
	"statq/domain/survey"
)

func scale(v float64) survey.AnswerValue {
	return survey.AnswerValue{ScaleValue: &v}
}

func TestEvaluateCondition_EmptyAnswerFastPath(t *testing.T) {
	empty := survey.AnswerValue{}

	if !EvaluateCondition(logic.OpIsEmpty, empty, nil) {
		t.Error("is_empty should be true for an empty answer")
	}
	if EvaluateCondition(logic.OpIsNotEmpty, empty, nil) {
		t.Error("is_not_empty should be false for an empty answer")
	}
	// Every other operator must also be false on an empty answer
	for _, op := range []logic.Operator{
		logic.OpEquals, logic.OpNotEquals, logic.OpContains,
		logic.OpNotContains, logic.OpGreaterThan, logic.OpLessThan,
	} {
		if EvaluateCondition(op, empty, "anything") {
			t.Errorf("%s should be false for an empty answer", op)
		}
	}
}

func TestEvaluateCondition_NonEmptyAnswer(t *testing.T) {
	answered := survey.AnswerValue{ChoiceID: "yes"}

	if EvaluateCondition(logic.OpIsEmpty, answered, nil) {
		t.Error("is_empty should be false for a non-empty answer")
	}
	if !EvaluateCondition(logic.OpIsNotEmpty, answered, nil) {
		t.Error("is_not_empty should be true for a non-empty answer")
	}
	if !EvaluateCondition(logic.OpEquals, answered, "yes") {
		t.Error("equals should match the choice id")
	}
	if !EvaluateCondition(logic.OpNotEquals, answered, "no") {
		t.Error("not_equals should hold for a different value")
	}
}

func TestEvaluateCondition_NumericCoercion(t *testing.T) {
	if !EvaluateCondition(logic.OpEquals, scale(7), "7") {
		t.Error("numeric answer should equal its string form")
	}
	if !EvaluateCondition(logic.OpEquals, survey.AnswerValue{Text: "7.0"}, 7.0) {
		t.Error("numeric-looking text should coerce for equality")
	}
	if !EvaluateCondition(logic.OpGreaterThan, scale(8), 5) {
		t.Error("8 > 5 should hold")
	}
	if !EvaluateCondition(logic.OpGreaterThan, scale(8), "5") {
		t.Error("8 > \"5\" should hold via coercion")
	}
	if EvaluateCondition(logic.OpLessThan, scale(8), 5) {
		t.Error("8 < 5 should not hold")
	}
}

func TestEvaluateCondition_OrderedStrings(t *testing.T) {
	apple := survey.AnswerValue{Text: "apple"}
	if !EvaluateCondition(logic.OpLessThan, apple, "banana") {
		t.Error("strings should compare lexicographically when neither is numeric")
	}
	// Non-string, non-numeric pairings are unordered
	multi := survey.AnswerValue{ChoiceIDs: []string{"a", "b"}}
	if EvaluateCondition(logic.OpGreaterThan, multi, "a") {
		t.Error("an array is not orderable against a scalar")
	}
}

func TestEvaluateCondition_ArraySetEquality(t *testing.T) {
	multi := survey.AnswerValue{ChoiceIDs: []string{"a", "b", "c"}}

	if !EvaluateCondition(logic.OpEquals, multi, []interface{}{"c", "a", "b"}) {
		t.Error("arrays should compare as unordered sets")
	}
	if EvaluateCondition(logic.OpEquals, multi, []interface{}{"a", "b"}) {
		t.Error("arrays of different size must not be equal")
	}
	if EvaluateCondition(logic.OpEquals, multi, []interface{}{"a", "b", "d"}) {
		t.Error("arrays with a differing element must not be equal")
	}
}

func TestEvaluateCondition_SingletonArrayVsScalar(t *testing.T) {
	single := survey.AnswerValue{ChoiceIDs: []string{"only"}}
	if !EvaluateCondition(logic.OpEquals, single, "only") {
		t.Error("a singleton array should equal its lone element")
	}
	double := survey.AnswerValue{ChoiceIDs: []string{"a", "b"}}
	if EvaluateCondition(logic.OpEquals, double, "a") {
		t.Error("a multi-element array never equals a scalar")
	}
}

func TestEvaluateCondition_Contains(t *testing.T) {
	multi := survey.AnswerValue{ChoiceIDs: []string{"alerts", "exports"}}
	if !EvaluateCondition(logic.OpContains, multi, "alerts") {
		t.Error("array contains should test membership")
	}
	if EvaluateCondition(logic.OpContains, multi, "reports") {
		t.Error("array contains should be false for a missing element")
	}
	if !EvaluateCondition(logic.OpNotContains, multi, "reports") {
		t.Error("not_contains should invert membership")
	}

	text := survey.AnswerValue{Text: "The Quick Brown Fox"}
	if !EvaluateCondition(logic.OpContains, text, "quick brown") {
		t.Error("text contains should be case-insensitive substring")
	}
	if EvaluateCondition(logic.OpContains, scale(5), "5") {
		t.Error("a number is not containable")
	}
}
