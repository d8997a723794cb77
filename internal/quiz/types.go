package quiz

// Option is one selectable answer within a question.
type Option struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Question is a single multiple-choice question.
type Question struct {
	// ID identifies the question within its quiz, e.g. "q1".
	ID string `json:"id"`

	// Text is the question prompt shown to the user.
	Text string `json:"text"`

	// Options are the selectable answers. Option IDs are unique within
	// the question.
	Options []Option `json:"options"`

	// CorrectOptionID references the ID of exactly one entry in Options.
	CorrectOptionID string `json:"correctOptionId"`

	// Explanation is shown after the question is answered.
	Explanation string `json:"explanation"`

	// ImageURL is an optional illustration.
	ImageURL string `json:"imageUrl,omitempty"`
}

// Quiz is a seed quiz definition within a category. Once AI generation is
// in use the seed questions serve as a fallback and the quiz acts mainly
// as an identifier for routing.
type Quiz struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	QuestionCount int        `json:"questionCount"`
	EstimatedTime string     `json:"estimatedTime"`
	Difficulty    string     `json:"difficulty"`
	Questions     []Question `json:"questions"`
}

// Category groups quizzes by subject. Categories are defined at build time
// and immutable at runtime.
type Category struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Quizzes     []Quiz `json:"quizzes"`
}

// AnsweredResult records the user's selection for one question. The ordered
// list of these is the finished-quiz payload handed to the grader.
type AnsweredResult struct {
	Question         Question `json:"question"`
	SelectedOptionID string   `json:"selectedOptionId"`
}

// Correct reports whether the selected option is the correct one.
func (r AnsweredResult) Correct() bool {
	return r.SelectedOptionID == r.Question.CorrectOptionID
}

// OptionByID returns the option with the given ID, if present.
func (q Question) OptionByID(id string) (Option, bool) {
	for _, o := range q.Options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

// Difficulty is a quiz difficulty preset selected before generation.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
)

// Level returns the proficiency label sent to the prompt builder.
func (d Difficulty) Level() string {
	switch d {
	case DifficultyEasy:
		return "Beginner"
	case DifficultyHard:
		return "Advanced"
	default:
		return "Intermediate"
	}
}

// QuestionCount returns the number of questions generated for this preset.
func (d Difficulty) QuestionCount() int {
	switch d {
	case DifficultyEasy:
		return 5
	case DifficultyHard:
		return 15
	default:
		return 10
	}
}

// ParseDifficulty maps a user-supplied label to a preset, defaulting to
// normal for unknown values.
func ParseDifficulty(s string) Difficulty {
	switch s {
	case "easy":
		return DifficultyEasy
	case "hard":
		return DifficultyHard
	default:
		return DifficultyNormal
	}
}
