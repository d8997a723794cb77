package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/solveuxq/solveuxq/internal/limits"
	"github.com/solveuxq/solveuxq/internal/llm"
	"github.com/solveuxq/solveuxq/internal/quizgen"
)

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeMethodNotAllowed(w http.ResponseWriter, allowedMethod string) {
	w.Header().Set("Allow", allowedMethod)
	writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
}

// writeGenerationError maps generation failures to HTTP statuses. Upstream
// model failures are 502 so clients can tell them apart from their own bad
// requests.
func writeGenerationError(w http.ResponseWriter, err error) {
	var limitErr *limits.ErrLimitReached
	var timeoutErr *llm.ErrTimeout
	var unparseableErr *quizgen.ErrUnparseable
	var shapeErr *quizgen.ErrInvalidShape

	switch {
	case errors.As(err, &limitErr):
		writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: limitErr.Error()})
	case errors.As(err, &timeoutErr):
		writeJSON(w, http.StatusGatewayTimeout, errorResponse{Error: "quiz generation timed out"})
	case errors.As(err, &unparseableErr), errors.As(err, &shapeErr):
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: "model returned an unusable quiz, please retry"})
	default:
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: "quiz generation failed"})
	}
}

func parseIntParam(r *http.Request, key string, defaultValue int) (int, error) {
	value := strings.TrimSpace(r.URL.Query().Get(key))
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, errors.New(key + " must be a positive integer")
	}
	return parsed, nil
}
