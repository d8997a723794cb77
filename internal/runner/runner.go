// Package runner drives a quiz attempt through its lifecycle: one question
// at a time, answer locked in on submit, ordered results collected for the
// grader once every question is answered.
package runner

import (
	"errors"
	"fmt"

	"github.com/solveuxq/solveuxq/internal/quiz"
)

// State is the lifecycle phase of the current question.
type State string

const (
	// StateAwaitingAnswer means the current question is displayed and the
	// selection is still mutable.
	StateAwaitingAnswer State = "awaiting_answer"

	// StateAnswerSubmitted means the current question's answer is locked
	// in; the explanation can be shown and the runner is ready to advance.
	StateAnswerSubmitted State = "answer_submitted"

	// StateCompleted means every question has been answered.
	StateCompleted State = "completed"
)

var (
	// ErrNoSelection is returned by Submit when no option is selected.
	ErrNoSelection = errors.New("no option selected")

	// ErrAlreadySubmitted is returned by Select and Submit after the
	// current question's answer is locked in.
	ErrAlreadySubmitted = errors.New("answer already submitted")

	// ErrCompleted is returned by mutating operations once the quiz is done.
	ErrCompleted = errors.New("quiz already completed")

	// ErrNotSubmitted is returned by Advance before the answer is locked in.
	ErrNotSubmitted = errors.New("answer not submitted yet")
)

// Runner is the state machine for one quiz attempt. It is not safe for
// concurrent use; the UI drives it from a single goroutine.
type Runner struct {
	quiz  *quiz.Quiz
	state State

	// index is the active question: the one whose answer is pending or
	// just submitted. viewIndex trails it during backward review.
	index     int
	viewIndex int

	selected string
	results  []quiz.AnsweredResult
}

// New creates a Runner positioned at the first question.
func New(q *quiz.Quiz) (*Runner, error) {
	if q == nil || len(q.Questions) == 0 {
		return nil, errors.New("quiz has no questions")
	}
	return &Runner{
		quiz:    q,
		state:   StateAwaitingAnswer,
		results: make([]quiz.AnsweredResult, 0, len(q.Questions)),
	}, nil
}

// State returns the current lifecycle phase.
func (r *Runner) State() State {
	return r.state
}

// Quiz returns the quiz being run.
func (r *Runner) Quiz() *quiz.Quiz {
	return r.quiz
}

// Index returns the zero-based position of the active question.
func (r *Runner) Index() int {
	return r.index
}

// ViewIndex returns the zero-based position of the question being shown.
// It trails Index during backward review.
func (r *Runner) ViewIndex() int {
	return r.viewIndex
}

// Len returns the number of questions in the quiz.
func (r *Runner) Len() int {
	return len(r.quiz.Questions)
}

// Current returns the question at the view cursor. During backward review
// this is an earlier, already-answered question.
func (r *Runner) Current() quiz.Question {
	return r.quiz.Questions[r.viewIndex]
}

// Reviewing reports whether the view cursor trails the active question.
func (r *Runner) Reviewing() bool {
	return r.viewIndex < r.index || (r.state == StateCompleted && r.viewIndex < len(r.quiz.Questions))
}

// Selected returns the pending selection for the active question, or the
// recorded selection when reviewing an answered question.
func (r *Runner) Selected() string {
	if res, ok := r.ResultAt(r.viewIndex); ok {
		return res.SelectedOptionID
	}
	return r.selected
}

// Select records or replaces the pending selection for the active
// question. The selection stays mutable until Submit.
func (r *Runner) Select(optionID string) error {
	switch r.state {
	case StateCompleted:
		return ErrCompleted
	case StateAnswerSubmitted:
		return ErrAlreadySubmitted
	}
	if r.viewIndex != r.index {
		return ErrAlreadySubmitted
	}
	if _, ok := r.quiz.Questions[r.index].OptionByID(optionID); !ok {
		return fmt.Errorf("option %q not in question %q", optionID, r.quiz.Questions[r.index].ID)
	}
	r.selected = optionID
	return nil
}

// Submit locks in the pending selection and appends the result. Submitting
// without a selection is rejected.
func (r *Runner) Submit() (quiz.AnsweredResult, error) {
	switch r.state {
	case StateCompleted:
		return quiz.AnsweredResult{}, ErrCompleted
	case StateAnswerSubmitted:
		return quiz.AnsweredResult{}, ErrAlreadySubmitted
	}
	if r.selected == "" {
		return quiz.AnsweredResult{}, ErrNoSelection
	}

	result := quiz.AnsweredResult{
		Question:         r.quiz.Questions[r.index],
		SelectedOptionID: r.selected,
	}
	r.results = append(r.results, result)
	r.state = StateAnswerSubmitted
	return result, nil
}

// Advance moves to the next question, or completes the quiz after the
// last one. Requires the current answer to be submitted.
func (r *Runner) Advance() error {
	switch r.state {
	case StateCompleted:
		return ErrCompleted
	case StateAwaitingAnswer:
		return ErrNotSubmitted
	}

	if r.index == len(r.quiz.Questions)-1 {
		r.state = StateCompleted
		r.index++
		r.viewIndex = 0
		return nil
	}

	r.index++
	r.viewIndex = r.index
	r.selected = ""
	r.state = StateAwaitingAnswer
	return nil
}

// Back moves the view cursor to the previous question for re-display.
// Recorded answers are immutable; Back never changes them.
func (r *Runner) Back() bool {
	if r.viewIndex == 0 {
		return false
	}
	r.viewIndex--
	return true
}

// Forward moves the view cursor toward the active question after a Back.
func (r *Runner) Forward() bool {
	limit := r.index
	if r.state == StateCompleted {
		limit = len(r.quiz.Questions) - 1
	}
	if r.viewIndex >= limit {
		return false
	}
	r.viewIndex++
	return true
}

// ResultAt returns the recorded result for the question at position i.
func (r *Runner) ResultAt(i int) (quiz.AnsweredResult, bool) {
	if i < 0 || i >= len(r.results) {
		return quiz.AnsweredResult{}, false
	}
	return r.results[i], true
}

// Results returns the answered results in question order. The returned
// slice is a copy; recorded results never change.
func (r *Runner) Results() []quiz.AnsweredResult {
	out := make([]quiz.AnsweredResult, len(r.results))
	copy(out, r.results)
	return out
}

// CorrectCount returns how many recorded answers are correct so far.
func (r *Runner) CorrectCount() int {
	n := 0
	for _, res := range r.results {
		if res.Correct() {
			n++
		}
	}
	return n
}
