// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/solveuxq/solveuxq/ent/userstats"
)

// UserStats is the model entity for the UserStats schema.
type UserStats struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// QuizzesCompleted holds the value of the "quizzes_completed" field.
	QuizzesCompleted int `json:"quizzes_completed,omitempty"`
	// Running average of score percentages
	AverageScore float64 `json:"average_score,omitempty"`
	// TotalPoints holds the value of the "total_points" field.
	TotalPoints int `json:"total_points,omitempty"`
	// Display rank derived from total points
	Rank string `json:"rank,omitempty"`
	// Consecutive days with at least one completed quiz
	Streak int `json:"streak,omitempty"`
	// Date of the most recent completed quiz
	LastQuizDate time.Time `json:"last_quiz_date,omitempty"`
	// Quizzes generated today, for the daily limit
	DailyQuizzes int `json:"daily_quizzes,omitempty"`
	// Day the daily counter belongs to
	DailyDate time.Time `json:"daily_date,omitempty"`
	// Subscription plan: free or paid
	Plan string `json:"plan,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UserStats) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case userstats.FieldAverageScore:
			values[i] = new(sql.NullFloat64)
		case userstats.FieldID, userstats.FieldQuizzesCompleted, userstats.FieldTotalPoints, userstats.FieldStreak, userstats.FieldDailyQuizzes:
			values[i] = new(sql.NullInt64)
		case userstats.FieldUserID, userstats.FieldRank, userstats.FieldPlan:
			values[i] = new(sql.NullString)
		case userstats.FieldLastQuizDate, userstats.FieldDailyDate, userstats.FieldCreatedAt, userstats.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UserStats fields.
func (_m *UserStats) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case userstats.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case userstats.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case userstats.FieldQuizzesCompleted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field quizzes_completed", values[i])
			} else if value.Valid {
				_m.QuizzesCompleted = int(value.Int64)
			}
		case userstats.FieldAverageScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field average_score", values[i])
			} else if value.Valid {
				_m.AverageScore = value.Float64
			}
		case userstats.FieldTotalPoints:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_points", values[i])
			} else if value.Valid {
				_m.TotalPoints = int(value.Int64)
			}
		case userstats.FieldRank:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rank", values[i])
			} else if value.Valid {
				_m.Rank = value.String
			}
		case userstats.FieldStreak:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field streak", values[i])
			} else if value.Valid {
				_m.Streak = int(value.Int64)
			}
		case userstats.FieldLastQuizDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_quiz_date", values[i])
			} else if value.Valid {
				_m.LastQuizDate = value.Time
			}
		case userstats.FieldDailyQuizzes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field daily_quizzes", values[i])
			} else if value.Valid {
				_m.DailyQuizzes = int(value.Int64)
			}
		case userstats.FieldDailyDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field daily_date", values[i])
			} else if value.Valid {
				_m.DailyDate = value.Time
			}
		case userstats.FieldPlan:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plan", values[i])
			} else if value.Valid {
				_m.Plan = value.String
			}
		case userstats.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case userstats.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UserStats.
// This includes values selected through modifiers, order, etc.
func (_m *UserStats) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this UserStats.
// Note that you need to call UserStats.Unwrap() before calling this method if this UserStats
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UserStats) Update() *UserStatsUpdateOne {
	return NewUserStatsClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UserStats entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UserStats) Unwrap() *UserStats {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UserStats is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UserStats) String() string {
	var builder strings.Builder
	builder.WriteString("UserStats(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("quizzes_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuizzesCompleted))
	builder.WriteString(", ")
	builder.WriteString("average_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.AverageScore))
	builder.WriteString(", ")
	builder.WriteString("total_points=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalPoints))
	builder.WriteString(", ")
	builder.WriteString("rank=")
	builder.WriteString(_m.Rank)
	builder.WriteString(", ")
	builder.WriteString("streak=")
	builder.WriteString(fmt.Sprintf("%v", _m.Streak))
	builder.WriteString(", ")
	builder.WriteString("last_quiz_date=")
	builder.WriteString(_m.LastQuizDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("daily_quizzes=")
	builder.WriteString(fmt.Sprintf("%v", _m.DailyQuizzes))
	builder.WriteString(", ")
	builder.WriteString("daily_date=")
	builder.WriteString(_m.DailyDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("plan=")
	builder.WriteString(_m.Plan)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// UserStatsSlice is a parsable slice of UserStats.
type UserStatsSlice []*UserStats
