package quiz

import "fmt"

// Categories is the static category catalog. Seed quizzes carry a handful
// of handwritten questions used as a fallback when generation is
// unavailable; generated quizzes replace them at runtime.
var Categories = []Category{
	{
		ID:          "uiux",
		Title:       "UI/UX Design",
		Description: "Test your knowledge of user interface and experience design principles",
		Icon:        "🎨",
		Quizzes: []Quiz{
			{
				ID:            "usability",
				Title:         "Usability Principles",
				Description:   "Questions related to Nielsen's heuristics, accessibility guidelines, and usability best practices",
				QuestionCount: 10,
				EstimatedTime: "15 min",
				Difficulty:    "Intermediate",
				Questions: []Question{
					{
						ID:   "q1",
						Text: "Which of Nielsen's heuristics refers to keeping users informed about what is happening?",
						Options: []Option{
							{ID: "a", Text: "Match between system and the real world"},
							{ID: "b", Text: "Visibility of system status"},
							{ID: "c", Text: "User control and freedom"},
							{ID: "d", Text: "Recognition rather than recall"},
						},
						CorrectOptionID: "b",
						Explanation:     "Visibility of system status is about keeping users informed through appropriate feedback within reasonable time.",
					},
					{
						ID:   "q2",
						Text: "What is the primary goal of accessible design?",
						Options: []Option{
							{ID: "a", Text: "Making websites visually appealing"},
							{ID: "b", Text: "Ensuring products can be used by people with disabilities"},
							{ID: "c", Text: "Increasing website traffic"},
							{ID: "d", Text: "Reducing development time"},
						},
						CorrectOptionID: "b",
						Explanation:     "Accessible design focuses on ensuring that people with disabilities can perceive, understand, navigate, and interact with websites and tools.",
					},
					{
						ID:   "q3",
						Text: "Which usability principle emphasizes the importance of preventing errors before they occur?",
						Options: []Option{
							{ID: "a", Text: "Error recovery"},
							{ID: "b", Text: "Error prevention"},
							{ID: "c", Text: "Error messaging"},
							{ID: "d", Text: "User forgiveness"},
						},
						CorrectOptionID: "b",
						Explanation:     "Error prevention focuses on eliminating error-prone conditions or checking for them and presenting users with a confirmation option before they commit to an action.",
					},
				},
			},
		},
	},
	{
		ID:          "product",
		Title:       "Product Design",
		Description: "Explore challenges related to product strategy, user research, and development",
		Icon:        "📱",
		Quizzes: []Quiz{
			{
				ID:            "strategy",
				Title:         "Product Strategy",
				Description:   "Questions related to defining product vision, goals, and target audience",
				QuestionCount: 8,
				EstimatedTime: "12 min",
				Difficulty:    "Advanced",
				Questions: []Question{
					{
						ID:   "q1",
						Text: "What is a key component of a product vision statement?",
						Options: []Option{
							{ID: "a", Text: "Detailed technical specifications"},
							{ID: "b", Text: "The target customer and their needs"},
							{ID: "c", Text: "Specific development timelines"},
							{ID: "d", Text: "Complete list of product features"},
						},
						CorrectOptionID: "b",
						Explanation:     "A product vision statement should clearly identify who the target customer is and what needs the product addresses for them.",
					},
				},
			},
		},
	},
	{
		ID:          "problem",
		Title:       "Problem Solving",
		Description: "Challenge your critical thinking and decision-making abilities",
		Icon:        "💡",
		Quizzes: []Quiz{
			{
				ID:            "logical",
				Title:         "Logical Reasoning",
				Description:   "Puzzles and questions that test structured thinking under constraints",
				QuestionCount: 10,
				EstimatedTime: "15 min",
				Difficulty:    "Intermediate",
				Questions: []Question{
					{
						ID:   "q1",
						Text: "When decomposing a complex problem, which approach should come first?",
						Options: []Option{
							{ID: "a", Text: "Implementing the most visible symptom fix"},
							{ID: "b", Text: "Defining the problem and its constraints"},
							{ID: "c", Text: "Brainstorming solutions"},
							{ID: "d", Text: "Assigning owners to subtasks"},
						},
						CorrectOptionID: "b",
						Explanation:     "A clear problem definition with explicit constraints prevents solving the wrong problem.",
					},
				},
			},
		},
	},
	{
		ID:          "research",
		Title:       "User Research",
		Description: "Methods and practices for understanding users and validating designs",
		Icon:        "🔍",
		Quizzes: []Quiz{
			{
				ID:            "methods",
				Title:         "Research Methods",
				Description:   "Qualitative and quantitative research techniques and when to use them",
				QuestionCount: 10,
				EstimatedTime: "15 min",
				Difficulty:    "Beginner",
				Questions: []Question{
					{
						ID:   "q1",
						Text: "Which method is best suited for discovering why users abandon a flow?",
						Options: []Option{
							{ID: "a", Text: "A/B testing"},
							{ID: "b", Text: "Moderated usability interviews"},
							{ID: "c", Text: "Page-view analytics"},
							{ID: "d", Text: "Card sorting"},
						},
						CorrectOptionID: "b",
						Explanation:     "Interviews surface the reasoning behind behavior; analytics and A/B tests show what happens, not why.",
					},
				},
			},
		},
	},
}

// CategoryByID returns the category with the given ID.
func CategoryByID(id string) (Category, error) {
	for _, c := range Categories {
		if c.ID == id {
			return c, nil
		}
	}
	return Category{}, fmt.Errorf("unknown category: %q", id)
}

// CategoryForQuiz returns the category containing the given quiz ID.
func CategoryForQuiz(quizID string) (Category, error) {
	for _, c := range Categories {
		for _, q := range c.Quizzes {
			if q.ID == quizID {
				return c, nil
			}
		}
	}
	return Category{}, fmt.Errorf("no category contains quiz %q", quizID)
}
