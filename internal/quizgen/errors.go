package quizgen

import "fmt"

// previewLimit bounds how much raw model output is carried in error
// messages and logs.
const previewLimit = 500

// ErrUnparseable means no JSON could be recovered from the model output
// after all extraction strategies were tried.
type ErrUnparseable struct {
	// Content is a bounded preview of the raw model output, for diagnostics.
	Content string
}

func (e *ErrUnparseable) Error() string {
	return fmt.Sprintf("could not extract quiz JSON from model output: %q", e.Content)
}

// ErrInvalidShape means the extracted JSON parsed but does not describe a
// playable quiz. QuestionIndex is -1 for quiz-level failures.
type ErrInvalidShape struct {
	QuestionIndex int
	Message       string
}

func (e *ErrInvalidShape) Error() string {
	if e.QuestionIndex < 0 {
		return fmt.Sprintf("invalid quiz: %s", e.Message)
	}
	return fmt.Sprintf("invalid quiz: question %d: %s", e.QuestionIndex, e.Message)
}

// preview truncates s to previewLimit runes for inclusion in errors.
func preview(s string) string {
	runes := []rune(s)
	if len(runes) <= previewLimit {
		return s
	}
	return string(runes[:previewLimit]) + "..."
}
