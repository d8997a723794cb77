package quiz

import (
	"strings"
	"testing"
)

func validQuestion() Question {
	return Question{
		ID:   "q1",
		Text: "What is the answer?",
		Options: []Option{
			{ID: "a", Text: "One"},
			{ID: "b", Text: "Two"},
			{ID: "c", Text: "Three"},
			{ID: "d", Text: "Four"},
		},
		CorrectOptionID: "b",
		Explanation:     "Because.",
	}
}

func TestValidateQuestion(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Question)
		wantErr string
	}{
		{"valid", func(q *Question) {}, ""},
		{"missing correct option id", func(q *Question) { q.CorrectOptionID = "" }, "empty correctOptionId"},
		{"dangling correct option id", func(q *Question) { q.CorrectOptionID = "z" }, "does not match any option"},
		{"duplicate option ids", func(q *Question) { q.Options[1].ID = "a" }, "duplicate option id"},
		{"empty text", func(q *Question) { q.Text = "" }, "empty text"},
		{"too few options", func(q *Question) { q.Options = q.Options[:1] }, "need at least 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuestion()
			tt.mutate(&q)
			err := ValidateQuestion(q)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("ValidateQuestion() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("ValidateQuestion() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestCatalogIsValid(t *testing.T) {
	if err := ValidateCatalog(Categories); err != nil {
		t.Fatalf("seed catalog invalid: %v", err)
	}
}

func TestCategoryByID(t *testing.T) {
	c, err := CategoryByID("uiux")
	if err != nil {
		t.Fatalf("CategoryByID(uiux): %v", err)
	}
	if c.Title != "UI/UX Design" {
		t.Errorf("unexpected title %q", c.Title)
	}

	if _, err := CategoryByID("nope"); err == nil {
		t.Error("expected error for unknown category")
	}
}

func TestCategoryForQuiz(t *testing.T) {
	c, err := CategoryForQuiz("usability")
	if err != nil {
		t.Fatalf("CategoryForQuiz(usability): %v", err)
	}
	if c.ID != "uiux" {
		t.Errorf("got category %s, want uiux", c.ID)
	}
}

func TestDifficultyPresets(t *testing.T) {
	tests := []struct {
		in    string
		level string
		count int
	}{
		{"easy", "Beginner", 5},
		{"normal", "Intermediate", 10},
		{"hard", "Advanced", 15},
		{"bogus", "Intermediate", 10},
	}

	for _, tt := range tests {
		d := ParseDifficulty(tt.in)
		if d.Level() != tt.level {
			t.Errorf("ParseDifficulty(%q).Level() = %q, want %q", tt.in, d.Level(), tt.level)
		}
		if d.QuestionCount() != tt.count {
			t.Errorf("ParseDifficulty(%q).QuestionCount() = %d, want %d", tt.in, d.QuestionCount(), tt.count)
		}
	}
}
