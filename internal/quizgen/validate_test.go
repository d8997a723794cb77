package quizgen

import (
	"errors"
	"testing"
)

func validOutput() *quizOutput {
	return &quizOutput{
		Questions: []questionOutput{
			{
				ID:   "q1",
				Text: "Which Nielsen heuristic covers undo?",
				Options: []optionOutput{
					{ID: "a", Text: "User control and freedom"},
					{ID: "b", Text: "Consistency and standards"},
					{ID: "c", Text: "Visibility of system status"},
					{ID: "d", Text: "Error prevention"},
				},
				CorrectOptionID: "a",
				Explanation:     "Undo and redo are the canonical examples.",
			},
			{
				ID:   "q2",
				Text: "What does a high SUS score indicate?",
				Options: []optionOutput{
					{ID: "a", Text: "Poor usability"},
					{ID: "b", Text: "Good usability"},
				},
				CorrectOptionID: "b",
			},
		},
	}
}

func TestValidateShape_Valid(t *testing.T) {
	if err := validateShape(validOutput(), 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateShape_TrimsOvershoot(t *testing.T) {
	out := validOutput()
	if err := validateShape(out, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Questions) != 1 {
		t.Fatalf("expected overshoot trimmed to 1, got %d", len(out.Questions))
	}
}

func TestValidateShape_Errors(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*quizOutput)
		wantIndex int
	}{
		{
			name:      "no questions",
			mutate:    func(o *quizOutput) { o.Questions = nil },
			wantIndex: -1,
		},
		{
			name:      "empty text",
			mutate:    func(o *quizOutput) { o.Questions[1].Text = "" },
			wantIndex: 1,
		},
		{
			name:      "too few options",
			mutate:    func(o *quizOutput) { o.Questions[0].Options = o.Questions[0].Options[:1] },
			wantIndex: 0,
		},
		{
			name:      "empty option id",
			mutate:    func(o *quizOutput) { o.Questions[0].Options[2].ID = "" },
			wantIndex: 0,
		},
		{
			name:      "duplicate option id",
			mutate:    func(o *quizOutput) { o.Questions[1].Options[1].ID = "a" },
			wantIndex: 1,
		},
		{
			name:      "missing correctOptionId",
			mutate:    func(o *quizOutput) { o.Questions[0].CorrectOptionID = "" },
			wantIndex: 0,
		},
		{
			name:      "dangling correctOptionId",
			mutate:    func(o *quizOutput) { o.Questions[1].CorrectOptionID = "z" },
			wantIndex: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := validOutput()
			tt.mutate(out)

			err := validateShape(out, 0)
			if err == nil {
				t.Fatal("expected error")
			}
			var shapeErr *ErrInvalidShape
			if !errors.As(err, &shapeErr) {
				t.Fatalf("expected ErrInvalidShape, got: %T", err)
			}
			if shapeErr.QuestionIndex != tt.wantIndex {
				t.Fatalf("question index = %d, want %d", shapeErr.QuestionIndex, tt.wantIndex)
			}
		})
	}
}
