package quiz

import "fmt"

// ValidateQuestion checks the structural invariants of a single question:
// non-empty id and text, at least two options with unique non-empty IDs,
// and a correctOptionId referencing exactly one option.
func ValidateQuestion(q Question) error {
	if q.ID == "" {
		return fmt.Errorf("question has empty id")
	}
	if q.Text == "" {
		return fmt.Errorf("question %s has empty text", q.ID)
	}
	if len(q.Options) < 2 {
		return fmt.Errorf("question %s has %d options, need at least 2", q.ID, len(q.Options))
	}

	seen := make(map[string]bool, len(q.Options))
	for _, o := range q.Options {
		if o.ID == "" {
			return fmt.Errorf("question %s has an option with empty id", q.ID)
		}
		if o.Text == "" {
			return fmt.Errorf("question %s option %s has empty text", q.ID, o.ID)
		}
		if seen[o.ID] {
			return fmt.Errorf("question %s has duplicate option id %s", q.ID, o.ID)
		}
		seen[o.ID] = true
	}

	if q.CorrectOptionID == "" {
		return fmt.Errorf("question %s has empty correctOptionId", q.ID)
	}
	if !seen[q.CorrectOptionID] {
		return fmt.Errorf("question %s correctOptionId %q does not match any option", q.ID, q.CorrectOptionID)
	}
	return nil
}

// ValidateCatalog checks the static catalog invariants. Called once at
// startup; a failure here is a programming error in the seed data.
func ValidateCatalog(categories []Category) error {
	catIDs := make(map[string]bool, len(categories))
	quizIDs := make(map[string]bool)

	for _, c := range categories {
		if c.ID == "" || c.Title == "" {
			return fmt.Errorf("category %q must have id and title", c.ID)
		}
		if catIDs[c.ID] {
			return fmt.Errorf("duplicate category id %s", c.ID)
		}
		catIDs[c.ID] = true

		for _, q := range c.Quizzes {
			if quizIDs[q.ID] {
				return fmt.Errorf("duplicate quiz id %s", q.ID)
			}
			quizIDs[q.ID] = true

			for _, question := range q.Questions {
				if err := ValidateQuestion(question); err != nil {
					return fmt.Errorf("category %s quiz %s: %w", c.ID, q.ID, err)
				}
			}
		}
	}
	return nil
}
