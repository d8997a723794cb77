// Code generated by ent, DO NOT EDIT.

package quizattempt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/solveuxq/solveuxq/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldUserID, v))
}

// CategoryID applies equality check predicate on the "category_id" field. It's identical to CategoryIDEQ.
func CategoryID(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldCategoryID, v))
}

// QuizID applies equality check predicate on the "quiz_id" field. It's identical to QuizIDEQ.
func QuizID(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldQuizID, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldDifficulty, v))
}

// CorrectCount applies equality check predicate on the "correct_count" field. It's identical to CorrectCountEQ.
func CorrectCount(v int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldCorrectCount, v))
}

// TotalQuestions applies equality check predicate on the "total_questions" field. It's identical to TotalQuestionsEQ.
func TotalQuestions(v int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldTotalQuestions, v))
}

// ScorePercent applies equality check predicate on the "score_percent" field. It's identical to ScorePercentEQ.
func ScorePercent(v float64) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldScorePercent, v))
}

// Points applies equality check predicate on the "points" field. It's identical to PointsEQ.
func Points(v int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldPoints, v))
}

// TakenAt applies equality check predicate on the "taken_at" field. It's identical to TakenAtEQ.
func TakenAt(v time.Time) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldTakenAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldContainsFold(FieldUserID, v))
}

// CategoryIDEQ applies the EQ predicate on the "category_id" field.
func CategoryIDEQ(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldCategoryID, v))
}

// CategoryIDNEQ applies the NEQ predicate on the "category_id" field.
func CategoryIDNEQ(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNEQ(FieldCategoryID, v))
}

// CategoryIDIn applies the In predicate on the "category_id" field.
func CategoryIDIn(vs ...string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldIn(FieldCategoryID, vs...))
}

// CategoryIDNotIn applies the NotIn predicate on the "category_id" field.
func CategoryIDNotIn(vs ...string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNotIn(FieldCategoryID, vs...))
}

// CategoryIDGT applies the GT predicate on the "category_id" field.
func CategoryIDGT(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGT(FieldCategoryID, v))
}

// CategoryIDGTE applies the GTE predicate on the "category_id" field.
func CategoryIDGTE(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGTE(FieldCategoryID, v))
}

// CategoryIDLT applies the LT predicate on the "category_id" field.
func CategoryIDLT(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLT(FieldCategoryID, v))
}

// CategoryIDLTE applies the LTE predicate on the "category_id" field.
func CategoryIDLTE(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLTE(FieldCategoryID, v))
}

// CategoryIDContains applies the Contains predicate on the "category_id" field.
func CategoryIDContains(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldContains(FieldCategoryID, v))
}

// CategoryIDHasPrefix applies the HasPrefix predicate on the "category_id" field.
func CategoryIDHasPrefix(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldHasPrefix(FieldCategoryID, v))
}

// CategoryIDHasSuffix applies the HasSuffix predicate on the "category_id" field.
func CategoryIDHasSuffix(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldHasSuffix(FieldCategoryID, v))
}

// CategoryIDEqualFold applies the EqualFold predicate on the "category_id" field.
func CategoryIDEqualFold(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEqualFold(FieldCategoryID, v))
}

// CategoryIDContainsFold applies the ContainsFold predicate on the "category_id" field.
func CategoryIDContainsFold(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldContainsFold(FieldCategoryID, v))
}

// QuizIDEQ applies the EQ predicate on the "quiz_id" field.
func QuizIDEQ(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldQuizID, v))
}

// QuizIDNEQ applies the NEQ predicate on the "quiz_id" field.
func QuizIDNEQ(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNEQ(FieldQuizID, v))
}

// QuizIDIn applies the In predicate on the "quiz_id" field.
func QuizIDIn(vs ...string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldIn(FieldQuizID, vs...))
}

// QuizIDNotIn applies the NotIn predicate on the "quiz_id" field.
func QuizIDNotIn(vs ...string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNotIn(FieldQuizID, vs...))
}

// QuizIDGT applies the GT predicate on the "quiz_id" field.
func QuizIDGT(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGT(FieldQuizID, v))
}

// QuizIDGTE applies the GTE predicate on the "quiz_id" field.
func QuizIDGTE(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGTE(FieldQuizID, v))
}

// QuizIDLT applies the LT predicate on the "quiz_id" field.
func QuizIDLT(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLT(FieldQuizID, v))
}

// QuizIDLTE applies the LTE predicate on the "quiz_id" field.
func QuizIDLTE(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLTE(FieldQuizID, v))
}

// QuizIDContains applies the Contains predicate on the "quiz_id" field.
func QuizIDContains(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldContains(FieldQuizID, v))
}

// QuizIDHasPrefix applies the HasPrefix predicate on the "quiz_id" field.
func QuizIDHasPrefix(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldHasPrefix(FieldQuizID, v))
}

// QuizIDHasSuffix applies the HasSuffix predicate on the "quiz_id" field.
func QuizIDHasSuffix(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldHasSuffix(FieldQuizID, v))
}

// QuizIDEqualFold applies the EqualFold predicate on the "quiz_id" field.
func QuizIDEqualFold(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEqualFold(FieldQuizID, v))
}

// QuizIDContainsFold applies the ContainsFold predicate on the "quiz_id" field.
func QuizIDContainsFold(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldContainsFold(FieldQuizID, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldContainsFold(FieldDifficulty, v))
}

// CorrectCountEQ applies the EQ predicate on the "correct_count" field.
func CorrectCountEQ(v int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldCorrectCount, v))
}

// CorrectCountNEQ applies the NEQ predicate on the "correct_count" field.
func CorrectCountNEQ(v int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNEQ(FieldCorrectCount, v))
}

// CorrectCountIn applies the In predicate on the "correct_count" field.
func CorrectCountIn(vs ...int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldIn(FieldCorrectCount, vs...))
}

// CorrectCountNotIn applies the NotIn predicate on the "correct_count" field.
func CorrectCountNotIn(vs ...int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNotIn(FieldCorrectCount, vs...))
}

// CorrectCountGT applies the GT predicate on the "correct_count" field.
func CorrectCountGT(v int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGT(FieldCorrectCount, v))
}

// CorrectCountGTE applies the GTE predicate on the "correct_count" field.
func CorrectCountGTE(v int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGTE(FieldCorrectCount, v))
}

// CorrectCountLT applies the LT predicate on the "correct_count" field.
func CorrectCountLT(v int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLT(FieldCorrectCount, v))
}

// CorrectCountLTE applies the LTE predicate on the "correct_count" field.
func CorrectCountLTE(v int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLTE(FieldCorrectCount, v))
}

// TotalQuestionsEQ applies the EQ predicate on the "total_questions" field.
func TotalQuestionsEQ(v int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldTotalQuestions, v))
}

// TotalQuestionsNEQ applies the NEQ predicate on the "total_questions" field.
func TotalQuestionsNEQ(v int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNEQ(FieldTotalQuestions, v))
}

// TotalQuestionsIn applies the In predicate on the "total_questions" field.
func TotalQuestionsIn(vs ...int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldIn(FieldTotalQuestions, vs...))
}

// TotalQuestionsNotIn applies the NotIn predicate on the "total_questions" field.
func TotalQuestionsNotIn(vs ...int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNotIn(FieldTotalQuestions, vs...))
}

// TotalQuestionsGT applies the GT predicate on the "total_questions" field.
func TotalQuestionsGT(v int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGT(FieldTotalQuestions, v))
}

// TotalQuestionsGTE applies the GTE predicate on the "total_questions" field.
func TotalQuestionsGTE(v int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGTE(FieldTotalQuestions, v))
}

// TotalQuestionsLT applies the LT predicate on the "total_questions" field.
func TotalQuestionsLT(v int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLT(FieldTotalQuestions, v))
}

// TotalQuestionsLTE applies the LTE predicate on the "total_questions" field.
func TotalQuestionsLTE(v int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLTE(FieldTotalQuestions, v))
}

// ScorePercentEQ applies the EQ predicate on the "score_percent" field.
func ScorePercentEQ(v float64) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldScorePercent, v))
}

// ScorePercentNEQ applies the NEQ predicate on the "score_percent" field.
func ScorePercentNEQ(v float64) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNEQ(FieldScorePercent, v))
}

// ScorePercentIn applies the In predicate on the "score_percent" field.
func ScorePercentIn(vs ...float64) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldIn(FieldScorePercent, vs...))
}

// ScorePercentNotIn applies the NotIn predicate on the "score_percent" field.
func ScorePercentNotIn(vs ...float64) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNotIn(FieldScorePercent, vs...))
}

// ScorePercentGT applies the GT predicate on the "score_percent" field.
func ScorePercentGT(v float64) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGT(FieldScorePercent, v))
}

// ScorePercentGTE applies the GTE predicate on the "score_percent" field.
func ScorePercentGTE(v float64) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGTE(FieldScorePercent, v))
}

// ScorePercentLT applies the LT predicate on the "score_percent" field.
func ScorePercentLT(v float64) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLT(FieldScorePercent, v))
}

// ScorePercentLTE applies the LTE predicate on the "score_percent" field.
func ScorePercentLTE(v float64) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLTE(FieldScorePercent, v))
}

// PointsEQ applies the EQ predicate on the "points" field.
func PointsEQ(v int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldPoints, v))
}

// PointsNEQ applies the NEQ predicate on the "points" field.
func PointsNEQ(v int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNEQ(FieldPoints, v))
}

// PointsIn applies the In predicate on the "points" field.
func PointsIn(vs ...int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldIn(FieldPoints, vs...))
}

// PointsNotIn applies the NotIn predicate on the "points" field.
func PointsNotIn(vs ...int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNotIn(FieldPoints, vs...))
}

// PointsGT applies the GT predicate on the "points" field.
func PointsGT(v int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGT(FieldPoints, v))
}

// PointsGTE applies the GTE predicate on the "points" field.
func PointsGTE(v int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGTE(FieldPoints, v))
}

// PointsLT applies the LT predicate on the "points" field.
func PointsLT(v int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLT(FieldPoints, v))
}

// PointsLTE applies the LTE predicate on the "points" field.
func PointsLTE(v int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLTE(FieldPoints, v))
}

// TakenAtEQ applies the EQ predicate on the "taken_at" field.
func TakenAtEQ(v time.Time) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldTakenAt, v))
}

// TakenAtNEQ applies the NEQ predicate on the "taken_at" field.
func TakenAtNEQ(v time.Time) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNEQ(FieldTakenAt, v))
}

// TakenAtIn applies the In predicate on the "taken_at" field.
func TakenAtIn(vs ...time.Time) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldIn(FieldTakenAt, vs...))
}

// TakenAtNotIn applies the NotIn predicate on the "taken_at" field.
func TakenAtNotIn(vs ...time.Time) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNotIn(FieldTakenAt, vs...))
}

// TakenAtGT applies the GT predicate on the "taken_at" field.
func TakenAtGT(v time.Time) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGT(FieldTakenAt, v))
}

// TakenAtGTE applies the GTE predicate on the "taken_at" field.
func TakenAtGTE(v time.Time) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGTE(FieldTakenAt, v))
}

// TakenAtLT applies the LT predicate on the "taken_at" field.
func TakenAtLT(v time.Time) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLT(FieldTakenAt, v))
}

// TakenAtLTE applies the LTE predicate on the "taken_at" field.
func TakenAtLTE(v time.Time) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLTE(FieldTakenAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuizAttempt) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuizAttempt) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuizAttempt) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.NotPredicates(p))
}
