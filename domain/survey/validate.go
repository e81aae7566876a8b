package survey

// ValidationIssue describes one failed check on a submitted answer
type ValidationIssue struct {
	QuestionID string `json:"question_id"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

// ValidateAnswer checks a value against its question's constraints. Unknown
// question types pass through as valid: the type union is expected to grow
// and validation must degrade gracefully rather than crash.
func ValidateAnswer(q Question, v AnswerValue) []ValidationIssue {
	var issues []ValidationIssue

	if q.Required && v.IsEmpty() {
		issues = append(issues, ValidationIssue{
			QuestionID: q.ID.String(),
			Code:       "required",
			Message:    "an answer is required for this question",
		})
		return issues
	}
	if v.IsEmpty() {
		return nil
	}

	switch q.Type {
	case TypeMultipleChoice, TypeDropdown:
		if v.ChoiceID != "" && !hasChoice(q.Options.Choices, v.ChoiceID) && !(q.Options.AllowOther && v.OtherText != "") {
			issues = append(issues, ValidationIssue{
				QuestionID: q.ID.String(),
				Code:       "unknown_choice",
				Message:    "selected choice is not among the question's options",
			})
		}
	case TypeCheckboxes:
		for _, id := range v.ChoiceIDs {
			if !hasChoice(q.Options.Choices, id) {
				issues = append(issues, ValidationIssue{
					QuestionID: q.ID.String(),
					Code:       "unknown_choice",
					Message:    "selected choice is not among the question's options",
				})
				break
			}
		}
	case TypeLinearScale:
		if v.ScaleValue != nil && q.Options.Max > q.Options.Min {
			if *v.ScaleValue < q.Options.Min || *v.ScaleValue > q.Options.Max {
				issues = append(issues, ValidationIssue{
					QuestionID: q.ID.String(),
					Code:       "out_of_range",
					Message:    "scale value is outside the configured range",
				})
			}
		}
	case TypeSlider:
		if v.SliderValue != nil && q.Options.Max > q.Options.Min {
			if *v.SliderValue < q.Options.Min || *v.SliderValue > q.Options.Max {
				issues = append(issues, ValidationIssue{
					QuestionID: q.ID.String(),
					Code:       "out_of_range",
					Message:    "slider value is outside the configured range",
				})
			}
		}
	case TypeFileUpload:
		if q.Options.MaxFiles > 0 && len(v.Files) > q.Options.MaxFiles {
			issues = append(issues, ValidationIssue{
				QuestionID: q.ID.String(),
				Code:       "too_many_files",
				Message:    "number of files exceeds the configured maximum",
			})
		}
	}
	// Remaining types (text, matrix, date_time, ranking) and any future type
	// tags have no structural constraints here.

	return issues
}

func hasChoice(choices []Choice, id string) bool {
	for _, c := range choices {
		if c.ID == id {
			return true
		}
	}
	return false
}
