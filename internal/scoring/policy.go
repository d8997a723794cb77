// Package scoring turns an answered quiz into points. Grading is a pure
// function of the results and the policy; persistence is best-effort and
// never blocks showing the user their score.
package scoring

import "github.com/solveuxq/solveuxq/internal/quiz"

// BonusTier awards extra points when the score percentage reaches Threshold.
type BonusTier struct {
	Threshold float64 `yaml:"threshold"`
	Points    int     `yaml:"points"`
}

// Policy holds the point values used for grading. Values live in config,
// not in call sites, so client and server grade identically.
type Policy struct {
	// PointsPerCorrect is the base award per correct answer.
	PointsPerCorrect int `yaml:"points_per_correct"`

	// Bonuses are checked highest threshold first; only the first
	// matching tier applies.
	Bonuses []BonusTier `yaml:"bonuses"`
}

// DefaultPolicy returns the standard grading policy: 10 points per correct
// answer, with a single bonus tier applied at 90/75/50 percent.
func DefaultPolicy() Policy {
	return Policy{
		PointsPerCorrect: 10,
		Bonuses: []BonusTier{
			{Threshold: 90, Points: 50},
			{Threshold: 75, Points: 25},
			{Threshold: 50, Points: 10},
		},
	}
}

// Result is the graded outcome of a quiz attempt.
type Result struct {
	CorrectCount   int
	TotalQuestions int

	// Percentage is CorrectCount over TotalQuestions in percent.
	Percentage float64

	BasePoints  int
	BonusPoints int

	// Points is the total award: base plus bonus.
	Points int
}

// Score grades an ordered result list against the policy.
func Score(results []quiz.AnsweredResult, p Policy) Result {
	correct := 0
	for _, r := range results {
		if r.Correct() {
			correct++
		}
	}
	return ScoreCounts(correct, len(results), p)
}

// ScoreCounts grades from raw counts. Exposed for callers that already
// tallied correctness (the HTTP API receives counts, not full results).
func ScoreCounts(correct, total int, p Policy) Result {
	res := Result{
		CorrectCount:   correct,
		TotalQuestions: total,
		BasePoints:     correct * p.PointsPerCorrect,
	}

	if total > 0 {
		res.Percentage = float64(correct) / float64(total) * 100
	}

	for _, tier := range p.Bonuses {
		if res.Percentage >= tier.Threshold {
			res.BonusPoints = tier.Points
			break
		}
	}

	res.Points = res.BasePoints + res.BonusPoints
	return res
}
