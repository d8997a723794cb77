package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a stored LLM request event.
type LLMRequestEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStats aggregates LLM usage per purpose.
type LLMUsageStats struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates LLM usage per model, for cost estimation.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns the event with the given ID, or nil if absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)

	// LLMUsageByModel aggregates token usage per model ID.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}

// QuizAttemptData captures a finished, graded quiz for persistence.
type QuizAttemptData struct {
	UserID         string
	CategoryID     string
	QuizID         string
	Difficulty     string
	CorrectCount   int
	TotalQuestions int
	ScorePercent   float64
	Points         int
	TakenAt        time.Time
}

// QuizAttemptRecord is a stored quiz attempt.
type QuizAttemptRecord struct {
	ID int
	QuizAttemptData
}

// CategoryProgress summarizes a user's attempts within one category.
type CategoryProgress struct {
	CategoryID   string
	Attempts     int
	AverageScore float64
	BestScore    float64
	TotalPoints  int
	LastTakenAt  time.Time
}

// AttemptRepo provides append and query access to quiz attempts.
type AttemptRepo interface {
	// AppendAttempt records a finished quiz. Attempts are never updated
	// or deleted.
	AppendAttempt(ctx context.Context, data QuizAttemptData) error

	// History returns the user's attempts, oldest first, capped at limit.
	History(ctx context.Context, userID string, limit int) ([]QuizAttemptRecord, error)

	// CategoryProgress aggregates the user's attempts per category.
	CategoryProgress(ctx context.Context, userID string) ([]CategoryProgress, error)
}

// UserStats is the per-user aggregate read model.
type UserStats struct {
	UserID           string
	QuizzesCompleted int
	AverageScore     float64
	TotalPoints      int
	Rank             string
	Streak           int
	LastQuizDate     time.Time
	DailyQuizzes     int
	DailyDate        time.Time
	Plan             string
}

// LeaderboardEntry is one row of the points leaderboard.
type LeaderboardEntry struct {
	Position    int
	UserID      string
	TotalPoints int
	Rank        string
}

// StatsRepo maintains per-user aggregates. The row is created lazily on
// first access.
type StatsRepo interface {
	// Get returns the user's stats, creating the row if absent.
	Get(ctx context.Context, userID string) (*UserStats, error)

	// AddPoints atomically increments total points and returns the new
	// total. Creates the row if absent.
	AddPoints(ctx context.Context, userID string, points int) (int, error)

	// RecordAttempt folds a finished attempt into the aggregates:
	// completion count, running average, streak, and rank.
	RecordAttempt(ctx context.Context, userID string, scorePct float64) error

	// IncrementDaily bumps today's generation counter and returns the
	// new count, resetting it when the stored day is not today.
	IncrementDaily(ctx context.Context, userID string, today time.Time) (int, error)

	// DailyCount returns today's generation count without incrementing.
	DailyCount(ctx context.Context, userID string, today time.Time) (int, error)

	// Leaderboard returns the top users by total points.
	Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error)
}

// StudyMaterialData captures a generated article for persistence.
type StudyMaterialData struct {
	ArticleID string
	Category  string
	Title     string
	Content   string
	Length    string
	Model     string
}

// StudyMaterialRecord is a stored study article.
type StudyMaterialRecord struct {
	ID        int
	CreatedAt time.Time
	StudyMaterialData
}

// MaterialRepo stores generated study articles.
type MaterialRepo interface {
	// Save persists an article.
	Save(ctx context.Context, data StudyMaterialData) error

	// Categories returns the distinct categories with saved articles.
	Categories(ctx context.Context) ([]string, error)

	// ByCategory returns articles in a category, newest first.
	ByCategory(ctx context.Context, category string) ([]StudyMaterialRecord, error)

	// Get returns the article with the given article ID, or nil if absent.
	Get(ctx context.Context, articleID string) (*StudyMaterialRecord, error)
}
