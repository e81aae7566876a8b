package engine

import (
	"statq/domain/core"
	"statq/domain/logic"
	"statq/domain/survey"
)

// FindCircularQuestions detects dependency cycles in a rule set. Edges run
// target -> source (a target depends on the questions its rule reads from).
// Every id in the question list is visited, not just those with rules, so
// coverage is complete. The returned set contains every question involved in
// any cycle, never just one representative pair.
func FindCircularQuestions(rules []logic.Rule, questions []survey.Question) map[core.QuestionID]bool {
	adjacency := make(map[core.QuestionID][]core.QuestionID)
	for _, r := range rules {
		sources := r.SourceIDs()
		for _, target := range r.TargetIDs {
			adjacency[target] = append(adjacency[target], sources...)
		}
	}

	circular := make(map[core.QuestionID]bool)
	visited := make(map[core.QuestionID]bool)
	onStack := make(map[core.QuestionID]bool)
	var stack []core.QuestionID

	var visit func(id core.QuestionID)
	visit = func(id core.QuestionID) {
		visited[id] = true
		onStack[id] = true
		stack = append(stack, id)
		for _, dep := range adjacency[id] {
			if onStack[dep] {
				// Everything from dep up to the current node lies on the
				// cycle, so mark the whole stack segment.
				for i := len(stack) - 1; i >= 0; i-- {
					circular[stack[i]] = true
					if stack[i] == dep {
						break
					}
				}
				continue
			}
			if !visited[dep] {
				visit(dep)
			}
		}
		stack = stack[:len(stack)-1]
		onStack[id] = false
	}

	for _, q := range questions {
		if !visited[q.ID] {
			visit(q.ID)
		}
	}
	// Rules may reference ids beyond the question list; cover those too.
	for target := range adjacency {
		if !visited[target] {
			visit(target)
		}
	}

	return circular
}
