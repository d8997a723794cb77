package httpapi

import "net/http"

// NewRouter mounts the API under /api/v1.
func NewRouter(api *API) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/quiz/generate", api.HandleGenerateQuiz)
	mux.HandleFunc("/api/v1/quiz/points", api.HandlePoints)

	mux.HandleFunc("/api/v1/users/{user_id}/stats", api.HandleUserStats)
	mux.HandleFunc("/api/v1/users/{user_id}/quota", api.HandleUserQuota)
	mux.HandleFunc("/api/v1/users/{user_id}/history", api.HandleUserHistory)
	mux.HandleFunc("/api/v1/users/{user_id}/progress", api.HandleUserProgress)

	mux.HandleFunc("/api/v1/leaderboard", api.HandleLeaderboard)

	mux.HandleFunc("/api/v1/study/generate", api.HandleGenerateStudy)
	mux.HandleFunc("/api/v1/study/categories", api.HandleStudyCategories)
	mux.HandleFunc("/api/v1/study/categories/{category}", api.HandleStudyCategory)
	mux.HandleFunc("/api/v1/study/articles/{article_id}", api.HandleStudyArticle)

	return mux
}
