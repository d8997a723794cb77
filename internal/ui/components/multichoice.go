package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/solveuxq/solveuxq/internal/quiz"
	"github.com/solveuxq/solveuxq/internal/ui/theme"
)

// MultiChoice renders one quiz question with its options. Selection stays
// mutable until the answer is locked; afterwards the correct and chosen
// options are highlighted.
type MultiChoice struct {
	Question quiz.Question
	Cursor   int
	Locked   bool
	ChosenID string
}

// NewMultiChoice creates a selector for the given question.
func NewMultiChoice(q quiz.Question) MultiChoice {
	return MultiChoice{Question: q}
}

// NewMultiChoiceLocked creates a read-only selector showing a recorded
// answer, used during backward review.
func NewMultiChoiceLocked(q quiz.Question, chosenID string) MultiChoice {
	return MultiChoice{Question: q, Locked: true, ChosenID: chosenID}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation. Locked selectors ignore input.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Locked {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Question.Options)-1 {
			m.Cursor++
		}
	}

	return m, nil
}

// CursorOptionID returns the option ID under the cursor.
func (m MultiChoice) CursorOptionID() string {
	if m.Cursor < 0 || m.Cursor >= len(m.Question.Options) {
		return ""
	}
	return m.Question.Options[m.Cursor].ID
}

// Lock freezes the selector on the chosen option.
func (m *MultiChoice) Lock(chosenID string) {
	m.Locked = true
	m.ChosenID = chosenID
}

// View renders the question and its options.
func (m MultiChoice) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(m.Question.Text) + "\n\n"

	for i, opt := range m.Question.Options {
		prefix := "  "
		if !m.Locked && i == m.Cursor {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, opt.ID, opt.Text)

		if m.Locked {
			switch {
			case opt.ID == m.Question.CorrectOptionID:
				s += theme.Correct.Render(line) + "\n"
			case opt.ID == m.ChosenID:
				s += theme.Incorrect.Render(line) + "\n"
			default:
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
		} else {
			if i == m.Cursor {
				s += theme.Selected.Render(line) + "\n"
			} else {
				s += theme.Unselected.Render(line) + "\n"
			}
		}
	}

	if m.Locked && m.Question.Explanation != "" {
		s += "\n" + theme.Hint.Render(m.Question.Explanation) + "\n"
	}

	return s
}

// IsCorrect reports whether the locked-in choice is the correct option.
func (m MultiChoice) IsCorrect() bool {
	return m.Locked && m.ChosenID == m.Question.CorrectOptionID
}
