// Code generated by ent, DO NOT EDIT.

package userstats

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the userstats type in the database.
	Label = "user_stats"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldQuizzesCompleted holds the string denoting the quizzes_completed field in the database.
	FieldQuizzesCompleted = "quizzes_completed"
	// FieldAverageScore holds the string denoting the average_score field in the database.
	FieldAverageScore = "average_score"
	// FieldTotalPoints holds the string denoting the total_points field in the database.
	FieldTotalPoints = "total_points"
	// FieldRank holds the string denoting the rank field in the database.
	FieldRank = "rank"
	// FieldStreak holds the string denoting the streak field in the database.
	FieldStreak = "streak"
	// FieldLastQuizDate holds the string denoting the last_quiz_date field in the database.
	FieldLastQuizDate = "last_quiz_date"
	// FieldDailyQuizzes holds the string denoting the daily_quizzes field in the database.
	FieldDailyQuizzes = "daily_quizzes"
	// FieldDailyDate holds the string denoting the daily_date field in the database.
	FieldDailyDate = "daily_date"
	// FieldPlan holds the string denoting the plan field in the database.
	FieldPlan = "plan"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the userstats in the database.
	Table = "user_stats"
)

// Columns holds all SQL columns for userstats fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldQuizzesCompleted,
	FieldAverageScore,
	FieldTotalPoints,
	FieldRank,
	FieldStreak,
	FieldLastQuizDate,
	FieldDailyQuizzes,
	FieldDailyDate,
	FieldPlan,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// DefaultQuizzesCompleted holds the default value on creation for the "quizzes_completed" field.
	DefaultQuizzesCompleted int
	// QuizzesCompletedValidator is a validator for the "quizzes_completed" field. It is called by the builders before save.
	QuizzesCompletedValidator func(int) error
	// DefaultAverageScore holds the default value on creation for the "average_score" field.
	DefaultAverageScore float64
	// DefaultTotalPoints holds the default value on creation for the "total_points" field.
	DefaultTotalPoints int
	// TotalPointsValidator is a validator for the "total_points" field. It is called by the builders before save.
	TotalPointsValidator func(int) error
	// DefaultRank holds the default value on creation for the "rank" field.
	DefaultRank string
	// DefaultStreak holds the default value on creation for the "streak" field.
	DefaultStreak int
	// StreakValidator is a validator for the "streak" field. It is called by the builders before save.
	StreakValidator func(int) error
	// DefaultDailyQuizzes holds the default value on creation for the "daily_quizzes" field.
	DefaultDailyQuizzes int
	// DailyQuizzesValidator is a validator for the "daily_quizzes" field. It is called by the builders before save.
	DailyQuizzesValidator func(int) error
	// DefaultPlan holds the default value on creation for the "plan" field.
	DefaultPlan string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the UserStats queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByQuizzesCompleted orders the results by the quizzes_completed field.
func ByQuizzesCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuizzesCompleted, opts...).ToFunc()
}

// ByAverageScore orders the results by the average_score field.
func ByAverageScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAverageScore, opts...).ToFunc()
}

// ByTotalPoints orders the results by the total_points field.
func ByTotalPoints(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalPoints, opts...).ToFunc()
}

// ByRank orders the results by the rank field.
func ByRank(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRank, opts...).ToFunc()
}

// ByStreak orders the results by the streak field.
func ByStreak(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreak, opts...).ToFunc()
}

// ByLastQuizDate orders the results by the last_quiz_date field.
func ByLastQuizDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastQuizDate, opts...).ToFunc()
}

// ByDailyQuizzes orders the results by the daily_quizzes field.
func ByDailyQuizzes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDailyQuizzes, opts...).ToFunc()
}

// ByDailyDate orders the results by the daily_date field.
func ByDailyDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDailyDate, opts...).ToFunc()
}

// ByPlan orders the results by the plan field.
func ByPlan(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlan, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
