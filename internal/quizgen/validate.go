package quizgen

import "fmt"

// validateShape checks that an extracted payload describes a playable
// quiz. Structural checks beyond what the JSON schema can express live
// here: option ID uniqueness, answer references, question counts.
func validateShape(out *quizOutput, want int) error {
	if len(out.Questions) == 0 {
		return &ErrInvalidShape{QuestionIndex: -1, Message: "no questions"}
	}
	if want > 0 && len(out.Questions) > want {
		// Models overshoot occasionally; trim rather than reject.
		out.Questions = out.Questions[:want]
	}

	for i, q := range out.Questions {
		if q.Text == "" {
			return &ErrInvalidShape{QuestionIndex: i, Message: "empty question text"}
		}
		if len(q.Options) < 2 {
			return &ErrInvalidShape{QuestionIndex: i, Message: fmt.Sprintf("%d options, need at least 2", len(q.Options))}
		}

		seen := make(map[string]bool, len(q.Options))
		for _, o := range q.Options {
			if o.ID == "" {
				return &ErrInvalidShape{QuestionIndex: i, Message: "option with empty id"}
			}
			if seen[o.ID] {
				return &ErrInvalidShape{QuestionIndex: i, Message: fmt.Sprintf("duplicate option id %q", o.ID)}
			}
			seen[o.ID] = true
		}

		if q.CorrectOptionID == "" {
			return &ErrInvalidShape{QuestionIndex: i, Message: "missing correctOptionId"}
		}
		if !seen[q.CorrectOptionID] {
			return &ErrInvalidShape{QuestionIndex: i, Message: fmt.Sprintf("correctOptionId %q does not match any option", q.CorrectOptionID)}
		}
	}

	return nil
}
