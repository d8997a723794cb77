// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/solveuxq/solveuxq/ent/quizattempt"
)

// QuizAttempt is the model entity for the QuizAttempt schema.
type QuizAttempt struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Owner of the attempt
	UserID string `json:"user_id,omitempty"`
	// Category the quiz was generated for
	CategoryID string `json:"category_id,omitempty"`
	// Generated quiz identifier
	QuizID string `json:"quiz_id,omitempty"`
	// Difficulty preset: easy, normal, hard
	Difficulty string `json:"difficulty,omitempty"`
	// CorrectCount holds the value of the "correct_count" field.
	CorrectCount int `json:"correct_count,omitempty"`
	// TotalQuestions holds the value of the "total_questions" field.
	TotalQuestions int `json:"total_questions,omitempty"`
	// Correct over total, in percent
	ScorePercent float64 `json:"score_percent,omitempty"`
	// Points awarded including bonus
	Points int `json:"points,omitempty"`
	// TakenAt holds the value of the "taken_at" field.
	TakenAt      time.Time `json:"taken_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuizAttempt) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case quizattempt.FieldScorePercent:
			values[i] = new(sql.NullFloat64)
		case quizattempt.FieldID, quizattempt.FieldCorrectCount, quizattempt.FieldTotalQuestions, quizattempt.FieldPoints:
			values[i] = new(sql.NullInt64)
		case quizattempt.FieldUserID, quizattempt.FieldCategoryID, quizattempt.FieldQuizID, quizattempt.FieldDifficulty:
			values[i] = new(sql.NullString)
		case quizattempt.FieldTakenAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuizAttempt fields.
func (_m *QuizAttempt) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case quizattempt.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case quizattempt.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case quizattempt.FieldCategoryID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category_id", values[i])
			} else if value.Valid {
				_m.CategoryID = value.String
			}
		case quizattempt.FieldQuizID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field quiz_id", values[i])
			} else if value.Valid {
				_m.QuizID = value.String
			}
		case quizattempt.FieldDifficulty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = value.String
			}
		case quizattempt.FieldCorrectCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_count", values[i])
			} else if value.Valid {
				_m.CorrectCount = int(value.Int64)
			}
		case quizattempt.FieldTotalQuestions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_questions", values[i])
			} else if value.Valid {
				_m.TotalQuestions = int(value.Int64)
			}
		case quizattempt.FieldScorePercent:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score_percent", values[i])
			} else if value.Valid {
				_m.ScorePercent = value.Float64
			}
		case quizattempt.FieldPoints:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field points", values[i])
			} else if value.Valid {
				_m.Points = int(value.Int64)
			}
		case quizattempt.FieldTakenAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field taken_at", values[i])
			} else if value.Valid {
				_m.TakenAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuizAttempt.
// This includes values selected through modifiers, order, etc.
func (_m *QuizAttempt) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this QuizAttempt.
// Note that you need to call QuizAttempt.Unwrap() before calling this method if this QuizAttempt
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuizAttempt) Update() *QuizAttemptUpdateOne {
	return NewQuizAttemptClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuizAttempt entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuizAttempt) Unwrap() *QuizAttempt {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuizAttempt is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuizAttempt) String() string {
	var builder strings.Builder
	builder.WriteString("QuizAttempt(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("category_id=")
	builder.WriteString(_m.CategoryID)
	builder.WriteString(", ")
	builder.WriteString("quiz_id=")
	builder.WriteString(_m.QuizID)
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(_m.Difficulty)
	builder.WriteString(", ")
	builder.WriteString("correct_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectCount))
	builder.WriteString(", ")
	builder.WriteString("total_questions=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalQuestions))
	builder.WriteString(", ")
	builder.WriteString("score_percent=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScorePercent))
	builder.WriteString(", ")
	builder.WriteString("points=")
	builder.WriteString(fmt.Sprintf("%v", _m.Points))
	builder.WriteString(", ")
	builder.WriteString("taken_at=")
	builder.WriteString(_m.TakenAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// QuizAttempts is a parsable slice of QuizAttempt.
type QuizAttempts []*QuizAttempt
