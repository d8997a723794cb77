package quizgen

import (
	"fmt"
	"strings"
)

// buildUserMessage constructs the generation prompt. Free-tier models do
// not honor structured output, so the expected JSON shape is spelled out
// inline and the response is recovered by the extractor.
func buildUserMessage(input GenerateInput) string {
	focus := input.Industry
	if focus == "" {
		focus = "general knowledge"
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Generate a quiz about %s with focus on %s\n", input.Category, focus)
	fmt.Fprintf(&b, "at %s level with exactly %d questions.\n", input.Difficulty.Level(), input.Difficulty.QuestionCount())
	b.WriteString(`
Each question should have 4 options with ONE correct answer.

Format the response as a JSON object with the following structure:
{
  "questions": [
    {
      "id": "q1",
      "text": "Question text here?",
      "options": [
        {"id": "a", "text": "Option A"},
        {"id": "b", "text": "Option B"},
        {"id": "c", "text": "Option C"},
        {"id": "d", "text": "Option D"}
      ],
      "correctOptionId": "a",
      "explanation": "Brief explanation"
    },
    ... more questions
  ]
}

Make the questions concise and direct. Return just the JSON, nothing else.`)

	return b.String()
}
