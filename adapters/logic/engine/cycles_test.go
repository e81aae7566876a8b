package engine

import (
	"testing"

	"statq/domain/core"
	"statq/domain/logic"
	"statq/domain/survey"
)

func depRule(source, target core.QuestionID) logic.Rule {
	return showHideRule(logic.ActionShow, source, "x", target, 0)
}

func questionList(ids ...core.QuestionID) []survey.Question {
	qs := make([]survey.Question, len(ids))
	for i, id := range ids {
		qs[i] = survey.Question{ID: id, Type: survey.TypeShortText}
	}
	return qs
}

func TestFindCircularQuestions_NoCycle(t *testing.T) {
	rules := []logic.Rule{
		depRule("a", "b"),
		depRule("b", "c"),
	}
	circular := FindCircularQuestions(rules, questionList("a", "b", "c"))
	if len(circular) != 0 {
		t.Errorf("linear chain must have no cycles, got %v", circular)
	}
}

func TestFindCircularQuestions_DirectCycle(t *testing.T) {
	rules := []logic.Rule{
		depRule("a", "b"),
		depRule("b", "a"),
	}
	circular := FindCircularQuestions(rules, questionList("a", "b"))
	if !circular["a"] || !circular["b"] {
		t.Errorf("both members of a 2-cycle must be flagged, got %v", circular)
	}
}

func TestFindCircularQuestions_ThreeCycleComplete(t *testing.T) {
	// a -> b -> c -> a: all three must be reported, not a representative pair
	rules := []logic.Rule{
		depRule("a", "b"),
		depRule("b", "c"),
		depRule("c", "a"),
	}
	circular := FindCircularQuestions(rules, questionList("a", "b", "c"))
	for _, id := range []core.QuestionID{"a", "b", "c"} {
		if !circular[id] {
			t.Errorf("question %s is on the cycle but was not flagged (got %v)", id, circular)
		}
	}
}

func TestFindCircularQuestions_SelfReference(t *testing.T) {
	rules := []logic.Rule{depRule("a", "a")}
	circular := FindCircularQuestions(rules, questionList("a"))
	if !circular["a"] {
		t.Error("a self-referencing rule is a cycle")
	}
}

func TestFindCircularQuestions_BranchOffCycleNotFlagged(t *testing.T) {
	rules := []logic.Rule{
		depRule("a", "b"),
		depRule("b", "a"),
		depRule("a", "d"), // d depends on the cycle but is not on it
	}
	circular := FindCircularQuestions(rules, questionList("a", "b", "d"))
	if circular["d"] {
		t.Error("a question that merely depends on a cycle is not itself circular")
	}
	if !circular["a"] || !circular["b"] {
		t.Errorf("cycle members must still be flagged, got %v", circular)
	}
}

func TestFindCircularQuestions_FormulaSources(t *testing.T) {
	// calculate rules contribute their source list to the dependency graph
	calc := logic.Rule{
		Action:            logic.ActionCalculate,
		TargetIDs:         []core.QuestionID{"total"},
		Enabled:           true,
		Formula:           "Q1 + Q2",
		SourceQuestionIDs: []core.QuestionID{"price", "total"},
	}
	circular := FindCircularQuestions([]logic.Rule{calc}, questionList("price", "total"))
	if !circular["total"] {
		t.Error("a calculation reading its own target is a cycle")
	}
	if circular["price"] {
		t.Error("price is an input, not a cycle member")
	}
}
