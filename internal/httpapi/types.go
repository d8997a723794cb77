package httpapi

import (
	"time"

	"github.com/solveuxq/solveuxq/internal/quiz"
)

type generateQuizRequest struct {
	UserID     string `json:"user_id,omitempty"`
	Category   string `json:"category"`
	Industry   string `json:"industry,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
}

type generateQuizResponse struct {
	Quiz *quiz.Quiz `json:"quiz"`
}

type pointsRequest struct {
	UserID         string `json:"user_id"`
	CategoryID     string `json:"category_id"`
	QuizID         string `json:"quiz_id"`
	Difficulty     string `json:"difficulty,omitempty"`
	CorrectCount   int    `json:"correct_count"`
	TotalQuestions int    `json:"total_questions"`
}

type pointsResponse struct {
	CorrectCount   int     `json:"correct_count"`
	TotalQuestions int     `json:"total_questions"`
	Percentage     float64 `json:"percentage"`
	BasePoints     int     `json:"base_points"`
	BonusPoints    int     `json:"bonus_points"`
	Points         int     `json:"points"`
}

type statsResponse struct {
	UserID           string  `json:"user_id"`
	QuizzesCompleted int     `json:"quizzes_completed"`
	AverageScore     float64 `json:"average_score"`
	TotalPoints      int     `json:"total_points"`
	Rank             string  `json:"rank"`
	Streak           int     `json:"streak"`
	Plan             string  `json:"plan"`
}

type quotaResponse struct {
	Used      int    `json:"used"`
	Limit     int    `json:"limit"`
	Remaining int    `json:"remaining"`
	Plan      string `json:"plan"`
}

type attemptResponse struct {
	CategoryID     string    `json:"category_id"`
	QuizID         string    `json:"quiz_id"`
	Difficulty     string    `json:"difficulty"`
	CorrectCount   int       `json:"correct_count"`
	TotalQuestions int       `json:"total_questions"`
	ScorePercent   float64   `json:"score_percent"`
	Points         int       `json:"points"`
	TakenAt        time.Time `json:"taken_at"`
}

type historyResponse struct {
	UserID   string            `json:"user_id"`
	Attempts []attemptResponse `json:"attempts"`
}

type categoryProgressResponse struct {
	CategoryID   string    `json:"category_id"`
	Attempts     int       `json:"attempts"`
	AverageScore float64   `json:"average_score"`
	BestScore    float64   `json:"best_score"`
	TotalPoints  int       `json:"total_points"`
	LastTakenAt  time.Time `json:"last_taken_at"`
}

type progressResponse struct {
	UserID     string                     `json:"user_id"`
	Categories []categoryProgressResponse `json:"categories"`
}

type leaderboardEntryResponse struct {
	Position    int    `json:"position"`
	UserID      string `json:"user_id"`
	TotalPoints int    `json:"total_points"`
	Rank        string `json:"rank"`
}

type leaderboardResponse struct {
	Leaderboard []leaderboardEntryResponse `json:"leaderboard"`
}

type generateStudyRequest struct {
	Category string `json:"category"`
	Topic    string `json:"topic"`
	Length   string `json:"length,omitempty"`
	Save     bool   `json:"save,omitempty"`
}

type articleResponse struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Title     string    `json:"title"`
	Content   string    `json:"content,omitempty"`
	Length    string    `json:"length"`
	Model     string    `json:"model,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type studyCategoriesResponse struct {
	Categories []string `json:"categories"`
}

type studyLibraryResponse struct {
	Category string            `json:"category"`
	Articles []articleResponse `json:"articles"`
}

type errorResponse struct {
	Error string `json:"error"`
}
