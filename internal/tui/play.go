// Package tui implements the interactive quiz flow: pick a category and
// difficulty, wait for generation, answer one question at a time, then see
// the graded result.
package tui

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/solveuxq/solveuxq/internal/limits"
	"github.com/solveuxq/solveuxq/internal/quiz"
	"github.com/solveuxq/solveuxq/internal/quizgen"
	"github.com/solveuxq/solveuxq/internal/runner"
	"github.com/solveuxq/solveuxq/internal/scoring"
	"github.com/solveuxq/solveuxq/internal/store"
	"github.com/solveuxq/solveuxq/internal/ui/components"
)

type phase int

const (
	phaseCategory phase = iota
	phaseDifficulty
	phaseIndustry
	phaseGenerating
	phaseQuestion
	phaseResults
	phaseError
)

// Options holds the injected services for the play flow. Limiter and
// Stats may be nil; quota and header stats are then skipped.
type Options struct {
	Generator quizgen.Generator
	Scoring   *scoring.Service
	Limiter   *limits.Limiter
	Stats     store.StatsRepo
	UserID    string
}

// Model is the root Bubble Tea model for the play flow.
type Model struct {
	opts Options

	width  int
	height int
	phase  phase

	categoryMenu   components.Menu
	difficultyMenu components.Menu
	industryInput  components.TextInput

	category   quiz.Category
	difficulty quiz.Difficulty
	industry   string

	spinnerFrame int

	run    *runner.Runner
	choice components.MultiChoice

	result  scoring.Result
	graded  bool
	grading bool // grade() dispatched, result not yet delivered

	points int
	streak int

	errMsg string
}

// NewModel creates the play model positioned at category selection.
func NewModel(opts Options) Model {
	m := Model{opts: opts}
	m.categoryMenu = newCategoryMenu()
	return m
}

func newCategoryMenu() components.Menu {
	items := make([]components.MenuItem, len(quiz.Categories))
	for i, c := range quiz.Categories {
		items[i] = components.MenuItem{
			Label:       c.Icon + " " + c.Title,
			Description: c.Description,
		}
	}
	return components.NewMenu(items)
}

func newDifficultyMenu() components.Menu {
	difficulties := []quiz.Difficulty{quiz.DifficultyEasy, quiz.DifficultyNormal, quiz.DifficultyHard}
	items := make([]components.MenuItem, len(difficulties))
	for i, d := range difficulties {
		items[i] = components.MenuItem{
			Label:       d.Level(),
			Description: fmt.Sprintf("%d questions", d.QuestionCount()),
		}
	}
	return components.NewMenu(items)
}

func (m Model) Init() tea.Cmd {
	return m.loadStats()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case statsLoadedMsg:
		m.points = msg.Points
		m.streak = msg.Streak
		return m, nil

	case spinnerTickMsg:
		if m.phase != phaseGenerating {
			return m, nil
		}
		m.spinnerFrame++
		return m, spinnerTick()

	case quizReadyMsg:
		return m.handleQuizReady(msg)

	case gradedMsg:
		m.result = msg.Result
		m.graded = true
		m.grading = false
		m.points += msg.Result.Points
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.phase == phaseIndustry {
		var cmd tea.Cmd
		m.industryInput, cmd = m.industryInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.phase {
	case phaseCategory:
		if msg.String() == "enter" {
			m.category = quiz.Categories[m.categoryMenu.Selected]
			m.difficultyMenu = newDifficultyMenu()
			m.phase = phaseDifficulty
			return m, nil
		}
		if msg.String() == "q" {
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.categoryMenu, cmd = m.categoryMenu.Update(msg)
		return m, cmd

	case phaseDifficulty:
		switch msg.String() {
		case "enter":
			difficulties := []quiz.Difficulty{quiz.DifficultyEasy, quiz.DifficultyNormal, quiz.DifficultyHard}
			m.difficulty = difficulties[m.difficultyMenu.Selected]
			m.industryInput = components.NewTextInput("Industry focus (optional, Enter to skip)", 60)
			m.phase = phaseIndustry
			return m, m.industryInput.Init()
		case "esc":
			m.phase = phaseCategory
			return m, nil
		}
		var cmd tea.Cmd
		m.difficultyMenu, cmd = m.difficultyMenu.Update(msg)
		return m, cmd

	case phaseIndustry:
		switch msg.String() {
		case "enter":
			m.industry = m.industryInput.Value()
			m.phase = phaseGenerating
			m.spinnerFrame = 0
			return m, tea.Batch(m.generateQuiz(), spinnerTick())
		case "esc":
			m.phase = phaseDifficulty
			return m, nil
		}
		var cmd tea.Cmd
		m.industryInput, cmd = m.industryInput.Update(msg)
		return m, cmd

	case phaseQuestion:
		return m.handleQuestionKey(msg)

	case phaseResults:
		switch msg.String() {
		case "b":
			// Review answered questions; recorded answers are immutable.
			if m.run != nil {
				m.phase = phaseQuestion
				m.syncChoice()
			}
			return m, nil
		case "r":
			m.phase = phaseCategory
			m.categoryMenu = newCategoryMenu()
			m.run = nil
			m.graded = false
			m.grading = false
			return m, nil
		case "enter", "q", "esc":
			return m, tea.Quit
		}
		return m, nil

	case phaseError:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		default:
			m.errMsg = ""
			m.phase = phaseCategory
			return m, nil
		}
	}

	return m, nil
}

func (m Model) handleQuestionKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.run == nil {
		return m, nil
	}

	key := msg.String()

	// Backward navigation re-displays answered questions; answers stay
	// locked.
	switch key {
	case "left", "h":
		if m.run.Back() {
			m.syncChoice()
		}
		return m, nil
	case "right", "l":
		if m.run.Forward() {
			m.syncChoice()
		}
		return m, nil
	}

	if m.run.State() == runner.StateCompleted {
		if key == "enter" || key == "esc" {
			m.phase = phaseResults
			// Grade at most once, even while the first result is in flight.
			if !m.graded && !m.grading {
				m.grading = true
				return m, m.grade()
			}
		}
		return m, nil
	}

	if m.run.Reviewing() {
		return m, nil
	}

	switch m.run.State() {
	case runner.StateAwaitingAnswer:
		if key == "enter" {
			if err := m.run.Select(m.choice.CursorOptionID()); err != nil {
				return m, nil
			}
			if _, err := m.run.Submit(); err != nil {
				// Submit without a selection keeps the question active.
				return m, nil
			}
			m.choice.Lock(m.run.Selected())
			return m, nil
		}
		var cmd tea.Cmd
		m.choice, cmd = m.choice.Update(msg)
		return m, cmd

	case runner.StateAnswerSubmitted:
		if key == "enter" {
			if err := m.run.Advance(); err != nil {
				return m, nil
			}
			if m.run.State() == runner.StateCompleted {
				m.phase = phaseResults
				m.grading = true
				return m, m.grade()
			}
			m.syncChoice()
			return m, nil
		}
	}

	return m, nil
}

func (m Model) handleQuizReady(msg quizReadyMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.errMsg = msg.Err.Error()
		m.phase = phaseError
		return m, nil
	}

	run, err := runner.New(msg.Quiz)
	if err != nil {
		m.errMsg = err.Error()
		m.phase = phaseError
		return m, nil
	}

	m.run = run
	m.choice = components.NewMultiChoice(run.Current())
	m.phase = phaseQuestion
	return m, nil
}

// syncChoice rebuilds the selector for the question at the view cursor.
func (m *Model) syncChoice() {
	q := m.run.Current()
	if m.run.Reviewing() || m.run.State() != runner.StateAwaitingAnswer {
		m.choice = components.NewMultiChoiceLocked(q, m.run.Selected())
		return
	}
	m.choice = components.NewMultiChoice(q)
}

// generateQuiz reserves quota and generates the quiz off the UI loop.
func (m Model) generateQuiz() tea.Cmd {
	opts := m.opts
	input := quizgen.GenerateInput{
		Category:   m.category.Title,
		Industry:   m.industry,
		Difficulty: m.difficulty,
	}
	return func() tea.Msg {
		ctx := context.Background()

		if opts.UserID != "" && opts.Limiter != nil {
			if err := opts.Limiter.Reserve(ctx, opts.UserID); err != nil {
				return quizReadyMsg{Err: err}
			}
		}

		q, err := opts.Generator.Generate(ctx, input)
		if err != nil {
			return quizReadyMsg{Err: err}
		}
		return quizReadyMsg{Quiz: q}
	}
}

// grade scores the finished attempt and persists it best-effort.
func (m Model) grade() tea.Cmd {
	opts := m.opts
	results := m.run.Results()
	categoryID := m.category.ID
	quizID := m.run.Quiz().ID
	difficulty := string(m.difficulty)
	return func() tea.Msg {
		result := scoring.Score(results, opts.Scoring.Policy())
		opts.Scoring.Record(context.Background(), scoring.Attempt{
			UserID:     opts.UserID,
			CategoryID: categoryID,
			QuizID:     quizID,
			Difficulty: difficulty,
			Result:     result,
		})
		return gradedMsg{Result: result}
	}
}

// loadStats fetches header stats; absent stores mean a zeroed header.
func (m Model) loadStats() tea.Cmd {
	opts := m.opts
	if opts.Stats == nil || opts.UserID == "" {
		return nil
	}
	return func() tea.Msg {
		stats, err := opts.Stats.Get(context.Background(), opts.UserID)
		if err != nil || stats == nil {
			return statsLoadedMsg{}
		}
		return statsLoadedMsg{Points: stats.TotalPoints, Streak: stats.Streak}
	}
}

func spinnerTick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
