package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/solveuxq/solveuxq/internal/quiz"
	"github.com/solveuxq/solveuxq/internal/quizgen"
	"github.com/solveuxq/solveuxq/internal/scoring"
	"github.com/solveuxq/solveuxq/internal/store"
	"github.com/solveuxq/solveuxq/internal/study"
)

const defaultLeaderboardLimit = 10

func (a *API) HandleGenerateQuiz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}
	if a.generator == nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "quiz generation unavailable"})
		return
	}

	defer r.Body.Close()

	var request generateQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	category := strings.TrimSpace(request.Category)
	if category == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "category is required"})
		return
	}

	userID := strings.TrimSpace(request.UserID)
	if userID != "" && a.limiter != nil {
		if err := a.limiter.Reserve(r.Context(), userID); err != nil {
			writeGenerationError(w, err)
			return
		}
	}

	generated, err := a.generator.Generate(r.Context(), quizgen.GenerateInput{
		Category:   category,
		Industry:   strings.TrimSpace(request.Industry),
		Difficulty: quiz.ParseDifficulty(request.Difficulty),
	})
	if err != nil {
		a.logger.Warn("quiz generation failed", "category", category, "error", err)
		writeGenerationError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, generateQuizResponse{Quiz: generated})
}

func (a *API) HandlePoints(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}

	defer r.Body.Close()

	var request pointsRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	if request.TotalQuestions <= 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "total_questions must be positive"})
		return
	}
	if request.CorrectCount < 0 || request.CorrectCount > request.TotalQuestions {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "correct_count must be between 0 and total_questions"})
		return
	}

	result := scoring.ScoreCounts(request.CorrectCount, request.TotalQuestions, a.scoring.Policy())

	// Persistence is best-effort: the client always gets the graded result.
	a.scoring.Record(r.Context(), scoring.Attempt{
		UserID:     strings.TrimSpace(request.UserID),
		CategoryID: request.CategoryID,
		QuizID:     request.QuizID,
		Difficulty: request.Difficulty,
		Result:     result,
	})

	writeJSON(w, http.StatusOK, pointsResponse{
		CorrectCount:   result.CorrectCount,
		TotalQuestions: result.TotalQuestions,
		Percentage:     result.Percentage,
		BasePoints:     result.BasePoints,
		BonusPoints:    result.BonusPoints,
		Points:         result.Points,
	})
}

func (a *API) HandleUserStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}

	userID := strings.TrimSpace(r.PathValue("user_id"))
	if userID == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "user_id is required"})
		return
	}

	stats, err := a.stats.Get(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to load user stats"})
		return
	}

	writeJSON(w, http.StatusOK, statsResponse{
		UserID:           stats.UserID,
		QuizzesCompleted: stats.QuizzesCompleted,
		AverageScore:     stats.AverageScore,
		TotalPoints:      stats.TotalPoints,
		Rank:             stats.Rank,
		Streak:           stats.Streak,
		Plan:             stats.Plan,
	})
}

func (a *API) HandleUserQuota(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}
	if a.limiter == nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "limits unavailable"})
		return
	}

	userID := strings.TrimSpace(r.PathValue("user_id"))
	status, err := a.limiter.Status(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to load quota"})
		return
	}

	writeJSON(w, http.StatusOK, quotaResponse{
		Used:      status.Used,
		Limit:     status.Limit,
		Remaining: status.Remaining,
		Plan:      status.Plan,
	})
}

func (a *API) HandleUserHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}

	userID := strings.TrimSpace(r.PathValue("user_id"))
	limit, err := parseIntParam(r, "limit", store.DefaultHistoryLimit)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	records, err := a.attempts.History(r.Context(), userID, limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to load history"})
		return
	}

	attempts := make([]attemptResponse, 0, len(records))
	for _, rec := range records {
		attempts = append(attempts, attemptResponse{
			CategoryID:     rec.CategoryID,
			QuizID:         rec.QuizID,
			Difficulty:     rec.Difficulty,
			CorrectCount:   rec.CorrectCount,
			TotalQuestions: rec.TotalQuestions,
			ScorePercent:   rec.ScorePercent,
			Points:         rec.Points,
			TakenAt:        rec.TakenAt,
		})
	}

	writeJSON(w, http.StatusOK, historyResponse{UserID: userID, Attempts: attempts})
}

func (a *API) HandleUserProgress(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}

	userID := strings.TrimSpace(r.PathValue("user_id"))
	progress, err := a.attempts.CategoryProgress(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to load progress"})
		return
	}

	categories := make([]categoryProgressResponse, 0, len(progress))
	for _, p := range progress {
		categories = append(categories, categoryProgressResponse{
			CategoryID:   p.CategoryID,
			Attempts:     p.Attempts,
			AverageScore: p.AverageScore,
			BestScore:    p.BestScore,
			TotalPoints:  p.TotalPoints,
			LastTakenAt:  p.LastTakenAt,
		})
	}

	writeJSON(w, http.StatusOK, progressResponse{UserID: userID, Categories: categories})
}

func (a *API) HandleLeaderboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}

	limit, err := parseIntParam(r, "limit", defaultLeaderboardLimit)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	entries, err := a.stats.Leaderboard(r.Context(), limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to load leaderboard"})
		return
	}

	items := make([]leaderboardEntryResponse, 0, len(entries))
	for _, entry := range entries {
		items = append(items, leaderboardEntryResponse{
			Position:    entry.Position,
			UserID:      entry.UserID,
			TotalPoints: entry.TotalPoints,
			Rank:        entry.Rank,
		})
	}

	writeJSON(w, http.StatusOK, leaderboardResponse{Leaderboard: items})
}

func (a *API) HandleGenerateStudy(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}
	if a.study == nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "study generation unavailable"})
		return
	}

	defer r.Body.Close()

	var request generateStudyRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	if strings.TrimSpace(request.Category) == "" || strings.TrimSpace(request.Topic) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "category and topic are required"})
		return
	}

	article, err := a.study.Generate(r.Context(), study.GenerateInput{
		Category: strings.TrimSpace(request.Category),
		Topic:    strings.TrimSpace(request.Topic),
		Length:   study.ParseLength(request.Length),
	})
	if err != nil {
		a.logger.Warn("study generation failed", "category", request.Category, "error", err)
		writeGenerationError(w, err)
		return
	}

	if request.Save {
		if err := a.study.Save(r.Context(), article); err != nil {
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to save article"})
			return
		}
	}

	writeJSON(w, http.StatusOK, toArticleResponse(*article, true))
}

func (a *API) HandleStudyCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}

	categories, err := a.study.Categories(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to load categories"})
		return
	}
	if categories == nil {
		categories = []string{}
	}

	writeJSON(w, http.StatusOK, studyCategoriesResponse{Categories: categories})
}

func (a *API) HandleStudyCategory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}

	category := strings.TrimSpace(r.PathValue("category"))
	articles, err := a.study.ByCategory(r.Context(), category)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to load articles"})
		return
	}

	items := make([]articleResponse, 0, len(articles))
	for _, article := range articles {
		// Listing omits the body; fetch the article for the full text.
		items = append(items, toArticleResponse(article, false))
	}

	writeJSON(w, http.StatusOK, studyLibraryResponse{Category: category, Articles: items})
}

func (a *API) HandleStudyArticle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}

	articleID := strings.TrimSpace(r.PathValue("article_id"))
	article, err := a.study.Get(r.Context(), articleID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to load article"})
		return
	}
	if article == nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "article not found"})
		return
	}

	writeJSON(w, http.StatusOK, toArticleResponse(*article, true))
}

func toArticleResponse(a study.Article, withContent bool) articleResponse {
	resp := articleResponse{
		ID:        a.ID,
		Category:  a.Category,
		Title:     a.Title,
		Length:    string(a.Length),
		Model:     a.Model,
		CreatedAt: a.CreatedAt,
	}
	if withContent {
		resp.Content = a.Content
	}
	return resp
}
