package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/solveuxq/solveuxq/internal/runner"
	"github.com/solveuxq/solveuxq/internal/ui/components"
	"github.com/solveuxq/solveuxq/internal/ui/layout"
	"github.com/solveuxq/solveuxq/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	header := layout.RenderHeader(m.title(), m.points, m.streak, m.width)
	footer := layout.RenderFooter(m.keyHints(), m.width)
	content := m.content()

	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

func (m Model) title() string {
	switch m.phase {
	case phaseCategory:
		return "Pick a Category"
	case phaseDifficulty:
		return "Pick a Difficulty"
	case phaseIndustry:
		return "Industry Focus"
	case phaseGenerating:
		return "Generating Quiz"
	case phaseQuestion:
		if m.run != nil {
			return fmt.Sprintf("%s — Question %d of %d", m.category.Title, questionNumber(m.run), m.run.Len())
		}
		return "Quiz"
	case phaseResults:
		return "Results"
	case phaseError:
		return "Something Went Wrong"
	}
	return ""
}

// questionNumber is the 1-based position of the question being shown.
func questionNumber(r *runner.Runner) int {
	n := r.ViewIndex() + 1
	if n > r.Len() {
		n = r.Len()
	}
	return n
}

func (m Model) keyHints() []layout.KeyHint {
	switch m.phase {
	case phaseCategory:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Q", Description: "Quit"},
		}
	case phaseDifficulty:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseIndustry:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseQuestion:
		if m.run != nil && m.run.State() == runner.StateAnswerSubmitted {
			return []layout.KeyHint{
				{Key: "Enter", Description: "Next"},
				{Key: "←", Description: "Review"},
			}
		}
		if m.run != nil && m.run.Reviewing() {
			return []layout.KeyHint{
				{Key: "←→", Description: "Browse"},
			}
		}
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Submit"},
			{Key: "←", Description: "Review"},
		}
	case phaseResults:
		return []layout.KeyHint{
			{Key: "B", Description: "Review answers"},
			{Key: "R", Description: "New quiz"},
			{Key: "Enter", Description: "Quit"},
		}
	case phaseError:
		return []layout.KeyHint{
			{Key: "any key", Description: "Back to categories"},
			{Key: "Q", Description: "Quit"},
		}
	}
	return nil
}

func (m Model) content() string {
	switch m.phase {
	case phaseCategory:
		return "\n" + theme.Title.Render("What do you want to practice?") + "\n\n" + m.categoryMenu.View()

	case phaseDifficulty:
		return "\n" + theme.Title.Render(m.category.Title) + "\n\n" + m.difficultyMenu.View()

	case phaseIndustry:
		return "\n" + theme.Title.Render("Narrow the focus?") + "\n\n" +
			theme.Body.Render("  Questions can target a specific industry, e.g. e-commerce or fintech.") + "\n\n" +
			"  " + m.industryInput.View() + "\n"

	case phaseGenerating:
		frame := spinnerFrames[m.spinnerFrame%len(spinnerFrames)]
		return "\n\n" + theme.Title.Render(frame+"  Generating your quiz...") + "\n\n" +
			theme.Subtitle.Render(fmt.Sprintf("%s · %s · %d questions", m.category.Title, m.difficulty.Level(), m.difficulty.QuestionCount()))

	case phaseQuestion:
		return m.renderQuestion()

	case phaseResults:
		return m.renderResults()

	case phaseError:
		return "\n\n" + theme.Incorrect.Render("  "+m.errMsg) + "\n"
	}
	return ""
}

func (m Model) renderQuestion() string {
	if m.run == nil {
		return ""
	}

	answered := len(m.run.Results())
	bar := components.NewProgressBar(
		fmt.Sprintf("  %d/%d", answered, m.run.Len()),
		float64(answered)/float64(m.run.Len()),
		false,
		m.width-10,
	)

	s := "\n" + bar.View() + "\n\n" + m.choice.View()

	if m.run.Reviewing() {
		s += "\n" + theme.Hint.Render("  Reviewing a locked answer. Use ←/→ to browse.") + "\n"
	}

	return s
}

func (m Model) renderResults() string {
	if !m.graded {
		return "\n\n" + theme.Subtitle.Render("Grading...")
	}

	r := m.result
	verdict := theme.Correct
	if r.Percentage < 50 {
		verdict = theme.Incorrect
	}

	s := "\n" + theme.Title.Render("Quiz Complete!") + "\n\n"
	s += verdict.Render(fmt.Sprintf("  %d / %d correct (%.0f%%)", r.CorrectCount, r.TotalQuestions, r.Percentage)) + "\n\n"
	s += theme.Body.Render(fmt.Sprintf("  Base points    %d", r.BasePoints)) + "\n"
	if r.BonusPoints > 0 {
		s += lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("  Bonus          %d", r.BonusPoints)) + "\n"
	}
	s += theme.Body.Bold(true).Render(fmt.Sprintf("  Total          %d", r.Points)) + "\n"
	return s
}
