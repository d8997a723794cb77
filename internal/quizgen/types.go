package quizgen

import "github.com/solveuxq/solveuxq/internal/quiz"

// GenerateInput holds all context needed to generate a quiz.
type GenerateInput struct {
	// Category is the quiz subject, e.g. "Usability Principles".
	Category string

	// Industry optionally narrows the focus, e.g. "e-commerce".
	// Empty means general knowledge.
	Industry string

	// Difficulty selects the proficiency level and question count.
	Difficulty quiz.Difficulty
}

// quizOutput is the raw LLM payload before validation.
type quizOutput struct {
	Questions []questionOutput `json:"questions"`
}

type questionOutput struct {
	ID              string         `json:"id"`
	Text            string         `json:"text"`
	Options         []optionOutput `json:"options"`
	CorrectOptionID string         `json:"correctOptionId"`
	Explanation     string         `json:"explanation"`
}

type optionOutput struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}
