package scoring

import (
	"testing"

	"github.com/solveuxq/solveuxq/internal/quiz"
)

func TestScoreCounts(t *testing.T) {
	p := DefaultPolicy()

	tests := []struct {
		name        string
		correct     int
		total       int
		wantBase    int
		wantBonus   int
		wantPoints  int
		wantPercent float64
	}{
		{"perfect ten", 10, 10, 100, 50, 150, 100},
		{"ninety percent", 9, 10, 90, 50, 140, 90},
		{"eighty percent", 8, 10, 80, 25, 105, 80},
		{"seventy five percent", 15, 20, 150, 25, 175, 75},
		{"half right", 5, 10, 50, 10, 60, 50},
		{"below half", 4, 10, 40, 0, 40, 40},
		{"all wrong", 0, 10, 0, 0, 0, 0},
		{"empty quiz", 0, 0, 0, 0, 0, 0},
		{"short quiz perfect", 5, 5, 50, 50, 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ScoreCounts(tt.correct, tt.total, p)
			if res.BasePoints != tt.wantBase {
				t.Errorf("base = %d, want %d", res.BasePoints, tt.wantBase)
			}
			if res.BonusPoints != tt.wantBonus {
				t.Errorf("bonus = %d, want %d", res.BonusPoints, tt.wantBonus)
			}
			if res.Points != tt.wantPoints {
				t.Errorf("points = %d, want %d", res.Points, tt.wantPoints)
			}
			if res.Percentage != tt.wantPercent {
				t.Errorf("percentage = %f, want %f", res.Percentage, tt.wantPercent)
			}
		})
	}
}

func TestScore_FromResults(t *testing.T) {
	q := quiz.Question{
		ID:              "q1",
		Options:         []quiz.Option{{ID: "a"}, {ID: "b"}},
		CorrectOptionID: "a",
	}
	results := []quiz.AnsweredResult{
		{Question: q, SelectedOptionID: "a"},
		{Question: q, SelectedOptionID: "b"},
		{Question: q, SelectedOptionID: "a"},
		{Question: q, SelectedOptionID: "a"},
	}

	res := Score(results, DefaultPolicy())
	if res.CorrectCount != 3 {
		t.Fatalf("correct = %d, want 3", res.CorrectCount)
	}
	if res.TotalQuestions != 4 {
		t.Fatalf("total = %d, want 4", res.TotalQuestions)
	}
	// 75% hits the middle tier: 30 base + 25 bonus.
	if res.Points != 55 {
		t.Fatalf("points = %d, want 55", res.Points)
	}
}

func TestScore_Deterministic(t *testing.T) {
	p := DefaultPolicy()
	a := ScoreCounts(7, 10, p)
	b := ScoreCounts(7, 10, p)
	if a != b {
		t.Fatalf("same input graded differently: %+v vs %+v", a, b)
	}
}

func TestScore_CustomPolicy(t *testing.T) {
	p := Policy{
		PointsPerCorrect: 5,
		Bonuses:          []BonusTier{{Threshold: 100, Points: 100}},
	}

	res := ScoreCounts(10, 10, p)
	if res.Points != 150 {
		t.Fatalf("points = %d, want 150", res.Points)
	}

	res = ScoreCounts(9, 10, p)
	if res.Points != 45 {
		t.Fatalf("points = %d, want 45", res.Points)
	}
}
