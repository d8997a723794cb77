// Code generated by ent, DO NOT EDIT.

package userstats

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/solveuxq/solveuxq/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.UserStats {
	return predicate.UserStats(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.UserStats {
	return predicate.UserStats(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.UserStats {
	return predicate.UserStats(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.UserStats {
	return predicate.UserStats(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.UserStats {
	return predicate.UserStats(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.UserStats {
	return predicate.UserStats(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.UserStats {
	return predicate.UserStats(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.UserStats {
	return predicate.UserStats(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.UserStats {
	return predicate.UserStats(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldEQ(FieldUserID, v))
}

// QuizzesCompleted applies equality check predicate on the "quizzes_completed" field. It's identical to QuizzesCompletedEQ.
func QuizzesCompleted(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldEQ(FieldQuizzesCompleted, v))
}

// AverageScore applies equality check predicate on the "average_score" field. It's identical to AverageScoreEQ.
func AverageScore(v float64) predicate.UserStats {
	return predicate.UserStats(sql.FieldEQ(FieldAverageScore, v))
}

// TotalPoints applies equality check predicate on the "total_points" field. It's identical to TotalPointsEQ.
func TotalPoints(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldEQ(FieldTotalPoints, v))
}

// Rank applies equality check predicate on the "rank" field. It's identical to RankEQ.
func Rank(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldEQ(FieldRank, v))
}

// Streak applies equality check predicate on the "streak" field. It's identical to StreakEQ.
func Streak(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldEQ(FieldStreak, v))
}

// LastQuizDate applies equality check predicate on the "last_quiz_date" field. It's identical to LastQuizDateEQ.
func LastQuizDate(v time.Time) predicate.UserStats {
	return predicate.UserStats(sql.FieldEQ(FieldLastQuizDate, v))
}

// DailyQuizzes applies equality check predicate on the "daily_quizzes" field. It's identical to DailyQuizzesEQ.
func DailyQuizzes(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldEQ(FieldDailyQuizzes, v))
}

// DailyDate applies equality check predicate on the "daily_date" field. It's identical to DailyDateEQ.
func DailyDate(v time.Time) predicate.UserStats {
	return predicate.UserStats(sql.FieldEQ(FieldDailyDate, v))
}

// Plan applies equality check predicate on the "plan" field. It's identical to PlanEQ.
func Plan(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldEQ(FieldPlan, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.UserStats {
	return predicate.UserStats(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.UserStats {
	return predicate.UserStats(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.UserStats {
	return predicate.UserStats(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.UserStats {
	return predicate.UserStats(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldContainsFold(FieldUserID, v))
}

// QuizzesCompletedEQ applies the EQ predicate on the "quizzes_completed" field.
func QuizzesCompletedEQ(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldEQ(FieldQuizzesCompleted, v))
}

// QuizzesCompletedNEQ applies the NEQ predicate on the "quizzes_completed" field.
func QuizzesCompletedNEQ(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldNEQ(FieldQuizzesCompleted, v))
}

// QuizzesCompletedIn applies the In predicate on the "quizzes_completed" field.
func QuizzesCompletedIn(vs ...int) predicate.UserStats {
	return predicate.UserStats(sql.FieldIn(FieldQuizzesCompleted, vs...))
}

// QuizzesCompletedNotIn applies the NotIn predicate on the "quizzes_completed" field.
func QuizzesCompletedNotIn(vs ...int) predicate.UserStats {
	return predicate.UserStats(sql.FieldNotIn(FieldQuizzesCompleted, vs...))
}

// QuizzesCompletedGT applies the GT predicate on the "quizzes_completed" field.
func QuizzesCompletedGT(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldGT(FieldQuizzesCompleted, v))
}

// QuizzesCompletedGTE applies the GTE predicate on the "quizzes_completed" field.
func QuizzesCompletedGTE(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldGTE(FieldQuizzesCompleted, v))
}

// QuizzesCompletedLT applies the LT predicate on the "quizzes_completed" field.
func QuizzesCompletedLT(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldLT(FieldQuizzesCompleted, v))
}

// QuizzesCompletedLTE applies the LTE predicate on the "quizzes_completed" field.
func QuizzesCompletedLTE(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldLTE(FieldQuizzesCompleted, v))
}

// AverageScoreEQ applies the EQ predicate on the "average_score" field.
func AverageScoreEQ(v float64) predicate.UserStats {
	return predicate.UserStats(sql.FieldEQ(FieldAverageScore, v))
}

// AverageScoreNEQ applies the NEQ predicate on the "average_score" field.
func AverageScoreNEQ(v float64) predicate.UserStats {
	return predicate.UserStats(sql.FieldNEQ(FieldAverageScore, v))
}

// AverageScoreIn applies the In predicate on the "average_score" field.
func AverageScoreIn(vs ...float64) predicate.UserStats {
	return predicate.UserStats(sql.FieldIn(FieldAverageScore, vs...))
}

// AverageScoreNotIn applies the NotIn predicate on the "average_score" field.
func AverageScoreNotIn(vs ...float64) predicate.UserStats {
	return predicate.UserStats(sql.FieldNotIn(FieldAverageScore, vs...))
}

// AverageScoreGT applies the GT predicate on the "average_score" field.
func AverageScoreGT(v float64) predicate.UserStats {
	return predicate.UserStats(sql.FieldGT(FieldAverageScore, v))
}

// AverageScoreGTE applies the GTE predicate on the "average_score" field.
func AverageScoreGTE(v float64) predicate.UserStats {
	return predicate.UserStats(sql.FieldGTE(FieldAverageScore, v))
}

// AverageScoreLT applies the LT predicate on the "average_score" field.
func AverageScoreLT(v float64) predicate.UserStats {
	return predicate.UserStats(sql.FieldLT(FieldAverageScore, v))
}

// AverageScoreLTE applies the LTE predicate on the "average_score" field.
func AverageScoreLTE(v float64) predicate.UserStats {
	return predicate.UserStats(sql.FieldLTE(FieldAverageScore, v))
}

// TotalPointsEQ applies the EQ predicate on the "total_points" field.
func TotalPointsEQ(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldEQ(FieldTotalPoints, v))
}

// TotalPointsNEQ applies the NEQ predicate on the "total_points" field.
func TotalPointsNEQ(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldNEQ(FieldTotalPoints, v))
}

// TotalPointsIn applies the In predicate on the "total_points" field.
func TotalPointsIn(vs ...int) predicate.UserStats {
	return predicate.UserStats(sql.FieldIn(FieldTotalPoints, vs...))
}

// TotalPointsNotIn applies the NotIn predicate on the "total_points" field.
func TotalPointsNotIn(vs ...int) predicate.UserStats {
	return predicate.UserStats(sql.FieldNotIn(FieldTotalPoints, vs...))
}

// TotalPointsGT applies the GT predicate on the "total_points" field.
func TotalPointsGT(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldGT(FieldTotalPoints, v))
}

// TotalPointsGTE applies the GTE predicate on the "total_points" field.
func TotalPointsGTE(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldGTE(FieldTotalPoints, v))
}

// TotalPointsLT applies the LT predicate on the "total_points" field.
func TotalPointsLT(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldLT(FieldTotalPoints, v))
}

// TotalPointsLTE applies the LTE predicate on the "total_points" field.
func TotalPointsLTE(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldLTE(FieldTotalPoints, v))
}

// RankEQ applies the EQ predicate on the "rank" field.
func RankEQ(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldEQ(FieldRank, v))
}

// RankNEQ applies the NEQ predicate on the "rank" field.
func RankNEQ(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldNEQ(FieldRank, v))
}

// RankIn applies the In predicate on the "rank" field.
func RankIn(vs ...string) predicate.UserStats {
	return predicate.UserStats(sql.FieldIn(FieldRank, vs...))
}

// RankNotIn applies the NotIn predicate on the "rank" field.
func RankNotIn(vs ...string) predicate.UserStats {
	return predicate.UserStats(sql.FieldNotIn(FieldRank, vs...))
}

// RankGT applies the GT predicate on the "rank" field.
func RankGT(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldGT(FieldRank, v))
}

// RankGTE applies the GTE predicate on the "rank" field.
func RankGTE(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldGTE(FieldRank, v))
}

// RankLT applies the LT predicate on the "rank" field.
func RankLT(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldLT(FieldRank, v))
}

// RankLTE applies the LTE predicate on the "rank" field.
func RankLTE(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldLTE(FieldRank, v))
}

// RankContains applies the Contains predicate on the "rank" field.
func RankContains(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldContains(FieldRank, v))
}

// RankHasPrefix applies the HasPrefix predicate on the "rank" field.
func RankHasPrefix(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldHasPrefix(FieldRank, v))
}

// RankHasSuffix applies the HasSuffix predicate on the "rank" field.
func RankHasSuffix(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldHasSuffix(FieldRank, v))
}

// RankEqualFold applies the EqualFold predicate on the "rank" field.
func RankEqualFold(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldEqualFold(FieldRank, v))
}

// RankContainsFold applies the ContainsFold predicate on the "rank" field.
func RankContainsFold(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldContainsFold(FieldRank, v))
}

// StreakEQ applies the EQ predicate on the "streak" field.
func StreakEQ(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldEQ(FieldStreak, v))
}

// StreakNEQ applies the NEQ predicate on the "streak" field.
func StreakNEQ(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldNEQ(FieldStreak, v))
}

// StreakIn applies the In predicate on the "streak" field.
func StreakIn(vs ...int) predicate.UserStats {
	return predicate.UserStats(sql.FieldIn(FieldStreak, vs...))
}

// StreakNotIn applies the NotIn predicate on the "streak" field.
func StreakNotIn(vs ...int) predicate.UserStats {
	return predicate.UserStats(sql.FieldNotIn(FieldStreak, vs...))
}

// StreakGT applies the GT predicate on the "streak" field.
func StreakGT(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldGT(FieldStreak, v))
}

// StreakGTE applies the GTE predicate on the "streak" field.
func StreakGTE(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldGTE(FieldStreak, v))
}

// StreakLT applies the LT predicate on the "streak" field.
func StreakLT(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldLT(FieldStreak, v))
}

// StreakLTE applies the LTE predicate on the "streak" field.
func StreakLTE(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldLTE(FieldStreak, v))
}

// LastQuizDateEQ applies the EQ predicate on the "last_quiz_date" field.
func LastQuizDateEQ(v time.Time) predicate.UserStats {
	return predicate.UserStats(sql.FieldEQ(FieldLastQuizDate, v))
}

// LastQuizDateNEQ applies the NEQ predicate on the "last_quiz_date" field.
func LastQuizDateNEQ(v time.Time) predicate.UserStats {
	return predicate.UserStats(sql.FieldNEQ(FieldLastQuizDate, v))
}

// LastQuizDateIn applies the In predicate on the "last_quiz_date" field.
func LastQuizDateIn(vs ...time.Time) predicate.UserStats {
	return predicate.UserStats(sql.FieldIn(FieldLastQuizDate, vs...))
}

// LastQuizDateNotIn applies the NotIn predicate on the "last_quiz_date" field.
func LastQuizDateNotIn(vs ...time.Time) predicate.UserStats {
	return predicate.UserStats(sql.FieldNotIn(FieldLastQuizDate, vs...))
}

// LastQuizDateGT applies the GT predicate on the "last_quiz_date" field.
func LastQuizDateGT(v time.Time) predicate.UserStats {
	return predicate.UserStats(sql.FieldGT(FieldLastQuizDate, v))
}

// LastQuizDateGTE applies the GTE predicate on the "last_quiz_date" field.
func LastQuizDateGTE(v time.Time) predicate.UserStats {
	return predicate.UserStats(sql.FieldGTE(FieldLastQuizDate, v))
}

// LastQuizDateLT applies the LT predicate on the "last_quiz_date" field.
func LastQuizDateLT(v time.Time) predicate.UserStats {
	return predicate.UserStats(sql.FieldLT(FieldLastQuizDate, v))
}

// LastQuizDateLTE applies the LTE predicate on the "last_quiz_date" field.
func LastQuizDateLTE(v time.Time) predicate.UserStats {
	return predicate.UserStats(sql.FieldLTE(FieldLastQuizDate, v))
}

// LastQuizDateIsNil applies the IsNil predicate on the "last_quiz_date" field.
func LastQuizDateIsNil() predicate.UserStats {
	return predicate.UserStats(sql.FieldIsNull(FieldLastQuizDate))
}

// LastQuizDateNotNil applies the NotNil predicate on the "last_quiz_date" field.
func LastQuizDateNotNil() predicate.UserStats {
	return predicate.UserStats(sql.FieldNotNull(FieldLastQuizDate))
}

// DailyQuizzesEQ applies the EQ predicate on the "daily_quizzes" field.
func DailyQuizzesEQ(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldEQ(FieldDailyQuizzes, v))
}

// DailyQuizzesNEQ applies the NEQ predicate on the "daily_quizzes" field.
func DailyQuizzesNEQ(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldNEQ(FieldDailyQuizzes, v))
}

// DailyQuizzesIn applies the In predicate on the "daily_quizzes" field.
func DailyQuizzesIn(vs ...int) predicate.UserStats {
	return predicate.UserStats(sql.FieldIn(FieldDailyQuizzes, vs...))
}

// DailyQuizzesNotIn applies the NotIn predicate on the "daily_quizzes" field.
func DailyQuizzesNotIn(vs ...int) predicate.UserStats {
	return predicate.UserStats(sql.FieldNotIn(FieldDailyQuizzes, vs...))
}

// DailyQuizzesGT applies the GT predicate on the "daily_quizzes" field.
func DailyQuizzesGT(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldGT(FieldDailyQuizzes, v))
}

// DailyQuizzesGTE applies the GTE predicate on the "daily_quizzes" field.
func DailyQuizzesGTE(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldGTE(FieldDailyQuizzes, v))
}

// DailyQuizzesLT applies the LT predicate on the "daily_quizzes" field.
func DailyQuizzesLT(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldLT(FieldDailyQuizzes, v))
}

// DailyQuizzesLTE applies the LTE predicate on the "daily_quizzes" field.
func DailyQuizzesLTE(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldLTE(FieldDailyQuizzes, v))
}

// DailyDateEQ applies the EQ predicate on the "daily_date" field.
func DailyDateEQ(v time.Time) predicate.UserStats {
	return predicate.UserStats(sql.FieldEQ(FieldDailyDate, v))
}

// DailyDateNEQ applies the NEQ predicate on the "daily_date" field.
func DailyDateNEQ(v time.Time) predicate.UserStats {
	return predicate.UserStats(sql.FieldNEQ(FieldDailyDate, v))
}

// DailyDateIn applies the In predicate on the "daily_date" field.
func DailyDateIn(vs ...time.Time) predicate.UserStats {
	return predicate.UserStats(sql.FieldIn(FieldDailyDate, vs...))
}

// DailyDateNotIn applies the NotIn predicate on the "daily_date" field.
func DailyDateNotIn(vs ...time.Time) predicate.UserStats {
	return predicate.UserStats(sql.FieldNotIn(FieldDailyDate, vs...))
}

// DailyDateGT applies the GT predicate on the "daily_date" field.
func DailyDateGT(v time.Time) predicate.UserStats {
	return predicate.UserStats(sql.FieldGT(FieldDailyDate, v))
}

// DailyDateGTE applies the GTE predicate on the "daily_date" field.
func DailyDateGTE(v time.Time) predicate.UserStats {
	return predicate.UserStats(sql.FieldGTE(FieldDailyDate, v))
}

// DailyDateLT applies the LT predicate on the "daily_date" field.
func DailyDateLT(v time.Time) predicate.UserStats {
	return predicate.UserStats(sql.FieldLT(FieldDailyDate, v))
}

// DailyDateLTE applies the LTE predicate on the "daily_date" field.
func DailyDateLTE(v time.Time) predicate.UserStats {
	return predicate.UserStats(sql.FieldLTE(FieldDailyDate, v))
}

// DailyDateIsNil applies the IsNil predicate on the "daily_date" field.
func DailyDateIsNil() predicate.UserStats {
	return predicate.UserStats(sql.FieldIsNull(FieldDailyDate))
}

// DailyDateNotNil applies the NotNil predicate on the "daily_date" field.
func DailyDateNotNil() predicate.UserStats {
	return predicate.UserStats(sql.FieldNotNull(FieldDailyDate))
}

// PlanEQ applies the EQ predicate on the "plan" field.
func PlanEQ(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldEQ(FieldPlan, v))
}

// PlanNEQ applies the NEQ predicate on the "plan" field.
func PlanNEQ(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldNEQ(FieldPlan, v))
}

// PlanIn applies the In predicate on the "plan" field.
func PlanIn(vs ...string) predicate.UserStats {
	return predicate.UserStats(sql.FieldIn(FieldPlan, vs...))
}

// PlanNotIn applies the NotIn predicate on the "plan" field.
func PlanNotIn(vs ...string) predicate.UserStats {
	return predicate.UserStats(sql.FieldNotIn(FieldPlan, vs...))
}

// PlanGT applies the GT predicate on the "plan" field.
func PlanGT(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldGT(FieldPlan, v))
}

// PlanGTE applies the GTE predicate on the "plan" field.
func PlanGTE(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldGTE(FieldPlan, v))
}

// PlanLT applies the LT predicate on the "plan" field.
func PlanLT(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldLT(FieldPlan, v))
}

// PlanLTE applies the LTE predicate on the "plan" field.
func PlanLTE(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldLTE(FieldPlan, v))
}

// PlanContains applies the Contains predicate on the "plan" field.
func PlanContains(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldContains(FieldPlan, v))
}

// PlanHasPrefix applies the HasPrefix predicate on the "plan" field.
func PlanHasPrefix(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldHasPrefix(FieldPlan, v))
}

// PlanHasSuffix applies the HasSuffix predicate on the "plan" field.
func PlanHasSuffix(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldHasSuffix(FieldPlan, v))
}

// PlanEqualFold applies the EqualFold predicate on the "plan" field.
func PlanEqualFold(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldEqualFold(FieldPlan, v))
}

// PlanContainsFold applies the ContainsFold predicate on the "plan" field.
func PlanContainsFold(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldContainsFold(FieldPlan, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.UserStats {
	return predicate.UserStats(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.UserStats {
	return predicate.UserStats(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.UserStats {
	return predicate.UserStats(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.UserStats {
	return predicate.UserStats(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.UserStats {
	return predicate.UserStats(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.UserStats {
	return predicate.UserStats(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.UserStats {
	return predicate.UserStats(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.UserStats {
	return predicate.UserStats(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.UserStats {
	return predicate.UserStats(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.UserStats {
	return predicate.UserStats(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.UserStats {
	return predicate.UserStats(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.UserStats {
	return predicate.UserStats(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.UserStats {
	return predicate.UserStats(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.UserStats {
	return predicate.UserStats(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.UserStats {
	return predicate.UserStats(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.UserStats {
	return predicate.UserStats(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UserStats) predicate.UserStats {
	return predicate.UserStats(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UserStats) predicate.UserStats {
	return predicate.UserStats(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UserStats) predicate.UserStats {
	return predicate.UserStats(sql.NotPredicates(p))
}
