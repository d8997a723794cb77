package store

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/solveuxq/solveuxq/ent"
	"github.com/solveuxq/solveuxq/ent/quizattempt"
)

// DefaultHistoryLimit caps how many attempts the history view returns
// when the caller does not specify a limit.
const DefaultHistoryLimit = 14

// attemptRepo implements AttemptRepo backed by ent.
type attemptRepo struct {
	client *ent.Client
}

func (r *attemptRepo) AppendAttempt(ctx context.Context, data QuizAttemptData) error {
	takenAt := data.TakenAt
	if takenAt.IsZero() {
		takenAt = time.Now()
	}

	_, err := r.client.QuizAttempt.Create().
		SetUserID(data.UserID).
		SetCategoryID(data.CategoryID).
		SetQuizID(data.QuizID).
		SetDifficulty(data.Difficulty).
		SetCorrectCount(data.CorrectCount).
		SetTotalQuestions(data.TotalQuestions).
		SetScorePercent(data.ScorePercent).
		SetPoints(data.Points).
		SetTakenAt(takenAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save quiz attempt: %w", err)
	}
	return nil
}

// History returns the user's most recent attempts ordered oldest first,
// so charts read left to right.
func (r *attemptRepo) History(ctx context.Context, userID string, limit int) ([]QuizAttemptRecord, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	attempts, err := r.client.QuizAttempt.Query().
		Where(quizattempt.UserID(userID)).
		Order(ent.Desc(quizattempt.FieldTakenAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempt history: %w", err)
	}

	records := make([]QuizAttemptRecord, len(attempts))
	for i, a := range attempts {
		// Reverse: the query is newest first, the result oldest first.
		records[len(attempts)-1-i] = attemptRecord(a)
	}
	return records, nil
}

func (r *attemptRepo) CategoryProgress(ctx context.Context, userID string) ([]CategoryProgress, error) {
	attempts, err := r.client.QuizAttempt.Query().
		Where(quizattempt.UserID(userID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}

	byCategory := make(map[string]*CategoryProgress)
	scoreSums := make(map[string]float64)

	for _, a := range attempts {
		p, ok := byCategory[a.CategoryID]
		if !ok {
			p = &CategoryProgress{CategoryID: a.CategoryID}
			byCategory[a.CategoryID] = p
		}
		p.Attempts++
		p.TotalPoints += a.Points
		scoreSums[a.CategoryID] += a.ScorePercent
		if a.ScorePercent > p.BestScore {
			p.BestScore = a.ScorePercent
		}
		if a.TakenAt.After(p.LastTakenAt) {
			p.LastTakenAt = a.TakenAt
		}
	}

	out := make([]CategoryProgress, 0, len(byCategory))
	for id, p := range byCategory {
		p.AverageScore = scoreSums[id] / float64(p.Attempts)
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CategoryID < out[j].CategoryID })
	return out, nil
}

func attemptRecord(a *ent.QuizAttempt) QuizAttemptRecord {
	return QuizAttemptRecord{
		ID: a.ID,
		QuizAttemptData: QuizAttemptData{
			UserID:         a.UserID,
			CategoryID:     a.CategoryID,
			QuizID:         a.QuizID,
			Difficulty:     a.Difficulty,
			CorrectCount:   a.CorrectCount,
			TotalQuestions: a.TotalQuestions,
			ScorePercent:   a.ScorePercent,
			Points:         a.Points,
			TakenAt:        a.TakenAt,
		},
	}
}
