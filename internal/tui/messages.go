package tui

import (
	"time"

	"github.com/solveuxq/solveuxq/internal/quiz"
	"github.com/solveuxq/solveuxq/internal/scoring"
)

// quizReadyMsg is sent when quiz generation finishes.
type quizReadyMsg struct {
	Quiz *quiz.Quiz
	Err  error
}

// spinnerTickMsg animates the loading spinner while generating.
type spinnerTickMsg time.Time

// statsLoadedMsg carries the header stats loaded at startup.
type statsLoadedMsg struct {
	Points int
	Streak int
}

// gradedMsg is sent after the finished attempt has been graded and the
// persistence calls have run.
type gradedMsg struct {
	Result scoring.Result
}
