// Code generated by ent, DO NOT EDIT.

package quizattempt

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the quizattempt type in the database.
	Label = "quiz_attempt"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldCategoryID holds the string denoting the category_id field in the database.
	FieldCategoryID = "category_id"
	// FieldQuizID holds the string denoting the quiz_id field in the database.
	FieldQuizID = "quiz_id"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldCorrectCount holds the string denoting the correct_count field in the database.
	FieldCorrectCount = "correct_count"
	// FieldTotalQuestions holds the string denoting the total_questions field in the database.
	FieldTotalQuestions = "total_questions"
	// FieldScorePercent holds the string denoting the score_percent field in the database.
	FieldScorePercent = "score_percent"
	// FieldPoints holds the string denoting the points field in the database.
	FieldPoints = "points"
	// FieldTakenAt holds the string denoting the taken_at field in the database.
	FieldTakenAt = "taken_at"
	// Table holds the table name of the quizattempt in the database.
	Table = "quiz_attempts"
)

// Columns holds all SQL columns for quizattempt fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldCategoryID,
	FieldQuizID,
	FieldDifficulty,
	FieldCorrectCount,
	FieldTotalQuestions,
	FieldScorePercent,
	FieldPoints,
	FieldTakenAt,
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
	// DefaultCategoryID holds the default value on creation for the "category_id" field.
	DefaultCategoryID string
	// DefaultQuizID holds the default value on creation for the "quiz_id" field.
	DefaultQuizID string
	// DefaultDifficulty holds the default value on creation for the "difficulty" field.
	DefaultDifficulty string
	// CorrectCountValidator is a validator for the "correct_count" field. It is called by the builders before save.
	CorrectCountValidator func(int) error
	// TotalQuestionsValidator is a validator for the "total_questions" field. It is called by the builders before save.
	TotalQuestionsValidator func(int) error
	// PointsValidator is a validator for the "points" field. It is called by the builders before save.
	PointsValidator func(int) error
	// DefaultTakenAt holds the default value on creation for the "taken_at" field.
	DefaultTakenAt func() time.Time
)

// OrderOption defines the ordering options for the QuizAttempt queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByCategoryID orders the results by the category_id field.
func ByCategoryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategoryID, opts...).ToFunc()
}

// ByQuizID orders the results by the quiz_id field.
func ByQuizID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuizID, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByCorrectCount orders the results by the correct_count field.
func ByCorrectCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectCount, opts...).ToFunc()
}

// ByTotalQuestions orders the results by the total_questions field.
func ByTotalQuestions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalQuestions, opts...).ToFunc()
}

// ByScorePercent orders the results by the score_percent field.
func ByScorePercent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScorePercent, opts...).ToFunc()
}

// ByPoints orders the results by the points field.
func ByPoints(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPoints, opts...).ToFunc()
}

// ByTakenAt orders the results by the taken_at field.
func ByTakenAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTakenAt, opts...).ToFunc()
}
