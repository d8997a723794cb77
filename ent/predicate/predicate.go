// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// QuizAttempt is the predicate function for quizattempt builders.
type QuizAttempt func(*sql.Selector)

// StudyMaterial is the predicate function for studymaterial builders.
type StudyMaterial func(*sql.Selector)

// UserStats is the predicate function for userstats builders.
type UserStats func(*sql.Selector)
