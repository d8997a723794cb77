// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/solveuxq/solveuxq/ent/predicate"
	"github.com/solveuxq/solveuxq/ent/userstats"
)

// UserStatsUpdate is the builder for updating UserStats entities.
type UserStatsUpdate struct {
	config
	hooks    []Hook
	mutation *UserStatsMutation
}

// Where appends a list predicates to the UserStatsUpdate builder.
func (_u *UserStatsUpdate) Where(ps ...predicate.UserStats) *UserStatsUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *UserStatsUpdate) SetUserID(v string) *UserStatsUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UserStatsUpdate) SetNillableUserID(v *string) *UserStatsUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetQuizzesCompleted sets the "quizzes_completed" field.
func (_u *UserStatsUpdate) SetQuizzesCompleted(v int) *UserStatsUpdate {
	_u.mutation.ResetQuizzesCompleted()
	_u.mutation.SetQuizzesCompleted(v)
	return _u
}

// SetNillableQuizzesCompleted sets the "quizzes_completed" field if the given value is not nil.
func (_u *UserStatsUpdate) SetNillableQuizzesCompleted(v *int) *UserStatsUpdate {
	if v != nil {
		_u.SetQuizzesCompleted(*v)
	}
	return _u
}

// AddQuizzesCompleted adds value to the "quizzes_completed" field.
func (_u *UserStatsUpdate) AddQuizzesCompleted(v int) *UserStatsUpdate {
	_u.mutation.AddQuizzesCompleted(v)
	return _u
}

// SetAverageScore sets the "average_score" field.
func (_u *UserStatsUpdate) SetAverageScore(v float64) *UserStatsUpdate {
	_u.mutation.ResetAverageScore()
	_u.mutation.SetAverageScore(v)
	return _u
}

// SetNillableAverageScore sets the "average_score" field if the given value is not nil.
func (_u *UserStatsUpdate) SetNillableAverageScore(v *float64) *UserStatsUpdate {
	if v != nil {
		_u.SetAverageScore(*v)
	}
	return _u
}

// AddAverageScore adds value to the "average_score" field.
func (_u *UserStatsUpdate) AddAverageScore(v float64) *UserStatsUpdate {
	_u.mutation.AddAverageScore(v)
	return _u
}

// SetTotalPoints sets the "total_points" field.
func (_u *UserStatsUpdate) SetTotalPoints(v int) *UserStatsUpdate {
	_u.mutation.ResetTotalPoints()
	_u.mutation.SetTotalPoints(v)
	return _u
}

// SetNillableTotalPoints sets the "total_points" field if the given value is not nil.
func (_u *UserStatsUpdate) SetNillableTotalPoints(v *int) *UserStatsUpdate {
	if v != nil {
		_u.SetTotalPoints(*v)
	}
	return _u
}

// AddTotalPoints adds value to the "total_points" field.
func (_u *UserStatsUpdate) AddTotalPoints(v int) *UserStatsUpdate {
	_u.mutation.AddTotalPoints(v)
	return _u
}

// SetRank sets the "rank" field.
func (_u *UserStatsUpdate) SetRank(v string) *UserStatsUpdate {
	_u.mutation.SetRank(v)
	return _u
}

// SetNillableRank sets the "rank" field if the given value is not nil.
func (_u *UserStatsUpdate) SetNillableRank(v *string) *UserStatsUpdate {
	if v != nil {
		_u.SetRank(*v)
	}
	return _u
}

// SetStreak sets the "streak" field.
func (_u *UserStatsUpdate) SetStreak(v int) *UserStatsUpdate {
	_u.mutation.ResetStreak()
	_u.mutation.SetStreak(v)
	return _u
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_u *UserStatsUpdate) SetNillableStreak(v *int) *UserStatsUpdate {
	if v != nil {
		_u.SetStreak(*v)
	}
	return _u
}

// AddStreak adds value to the "streak" field.
func (_u *UserStatsUpdate) AddStreak(v int) *UserStatsUpdate {
	_u.mutation.AddStreak(v)
	return _u
}

// SetLastQuizDate sets the "last_quiz_date" field.
func (_u *UserStatsUpdate) SetLastQuizDate(v time.Time) *UserStatsUpdate {
	_u.mutation.SetLastQuizDate(v)
	return _u
}

// SetNillableLastQuizDate sets the "last_quiz_date" field if the given value is not nil.
func (_u *UserStatsUpdate) SetNillableLastQuizDate(v *time.Time) *UserStatsUpdate {
	if v != nil {
		_u.SetLastQuizDate(*v)
	}
	return _u
}

// ClearLastQuizDate clears the value of the "last_quiz_date" field.
func (_u *UserStatsUpdate) ClearLastQuizDate() *UserStatsUpdate {
	_u.mutation.ClearLastQuizDate()
	return _u
}

// SetDailyQuizzes sets the "daily_quizzes" field.
func (_u *UserStatsUpdate) SetDailyQuizzes(v int) *UserStatsUpdate {
	_u.mutation.ResetDailyQuizzes()
	_u.mutation.SetDailyQuizzes(v)
	return _u
}

// SetNillableDailyQuizzes sets the "daily_quizzes" field if the given value is not nil.
func (_u *UserStatsUpdate) SetNillableDailyQuizzes(v *int) *UserStatsUpdate {
	if v != nil {
		_u.SetDailyQuizzes(*v)
	}
	return _u
}

// AddDailyQuizzes adds value to the "daily_quizzes" field.
func (_u *UserStatsUpdate) AddDailyQuizzes(v int) *UserStatsUpdate {
	_u.mutation.AddDailyQuizzes(v)
	return _u
}

// SetDailyDate sets the "daily_date" field.
func (_u *UserStatsUpdate) SetDailyDate(v time.Time) *UserStatsUpdate {
	_u.mutation.SetDailyDate(v)
	return _u
}

// SetNillableDailyDate sets the "daily_date" field if the given value is not nil.
func (_u *UserStatsUpdate) SetNillableDailyDate(v *time.Time) *UserStatsUpdate {
	if v != nil {
		_u.SetDailyDate(*v)
	}
	return _u
}

// ClearDailyDate clears the value of the "daily_date" field.
func (_u *UserStatsUpdate) ClearDailyDate() *UserStatsUpdate {
	_u.mutation.ClearDailyDate()
	return _u
}

// SetPlan sets the "plan" field.
func (_u *UserStatsUpdate) SetPlan(v string) *UserStatsUpdate {
	_u.mutation.SetPlan(v)
	return _u
}

// SetNillablePlan sets the "plan" field if the given value is not nil.
func (_u *UserStatsUpdate) SetNillablePlan(v *string) *UserStatsUpdate {
	if v != nil {
		_u.SetPlan(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserStatsUpdate) SetUpdatedAt(v time.Time) *UserStatsUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the UserStatsMutation object of the builder.
func (_u *UserStatsUpdate) Mutation() *UserStatsMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserStatsUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserStatsUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserStatsUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserStatsUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserStatsUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := userstats.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserStatsUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := userstats.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UserStats.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuizzesCompleted(); ok {
		if err := userstats.QuizzesCompletedValidator(v); err != nil {
			return &ValidationError{Name: "quizzes_completed", err: fmt.Errorf(`ent: validator failed for field "UserStats.quizzes_completed": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalPoints(); ok {
		if err := userstats.TotalPointsValidator(v); err != nil {
			return &ValidationError{Name: "total_points", err: fmt.Errorf(`ent: validator failed for field "UserStats.total_points": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Streak(); ok {
		if err := userstats.StreakValidator(v); err != nil {
			return &ValidationError{Name: "streak", err: fmt.Errorf(`ent: validator failed for field "UserStats.streak": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DailyQuizzes(); ok {
		if err := userstats.DailyQuizzesValidator(v); err != nil {
			return &ValidationError{Name: "daily_quizzes", err: fmt.Errorf(`ent: validator failed for field "UserStats.daily_quizzes": %w`, err)}
		}
	}
	return nil
}

func (_u *UserStatsUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(userstats.Table, userstats.Columns, sqlgraph.NewFieldSpec(userstats.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(userstats.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuizzesCompleted(); ok {
		_spec.SetField(userstats.FieldQuizzesCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuizzesCompleted(); ok {
		_spec.AddField(userstats.FieldQuizzesCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AverageScore(); ok {
		_spec.SetField(userstats.FieldAverageScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAverageScore(); ok {
		_spec.AddField(userstats.FieldAverageScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalPoints(); ok {
		_spec.SetField(userstats.FieldTotalPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalPoints(); ok {
		_spec.AddField(userstats.FieldTotalPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Rank(); ok {
		_spec.SetField(userstats.FieldRank, field.TypeString, value)
	}
	if value, ok := _u.mutation.Streak(); ok {
		_spec.SetField(userstats.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreak(); ok {
		_spec.AddField(userstats.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastQuizDate(); ok {
		_spec.SetField(userstats.FieldLastQuizDate, field.TypeTime, value)
	}
	if _u.mutation.LastQuizDateCleared() {
		_spec.ClearField(userstats.FieldLastQuizDate, field.TypeTime)
	}
	if value, ok := _u.mutation.DailyQuizzes(); ok {
		_spec.SetField(userstats.FieldDailyQuizzes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDailyQuizzes(); ok {
		_spec.AddField(userstats.FieldDailyQuizzes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DailyDate(); ok {
		_spec.SetField(userstats.FieldDailyDate, field.TypeTime, value)
	}
	if _u.mutation.DailyDateCleared() {
		_spec.ClearField(userstats.FieldDailyDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Plan(); ok {
		_spec.SetField(userstats.FieldPlan, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(userstats.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userstats.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserStatsUpdateOne is the builder for updating a single UserStats entity.
type UserStatsUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserStatsMutation
}

// SetUserID sets the "user_id" field.
func (_u *UserStatsUpdateOne) SetUserID(v string) *UserStatsUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UserStatsUpdateOne) SetNillableUserID(v *string) *UserStatsUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetQuizzesCompleted sets the "quizzes_completed" field.
func (_u *UserStatsUpdateOne) SetQuizzesCompleted(v int) *UserStatsUpdateOne {
	_u.mutation.ResetQuizzesCompleted()
	_u.mutation.SetQuizzesCompleted(v)
	return _u
}

// SetNillableQuizzesCompleted sets the "quizzes_completed" field if the given value is not nil.
func (_u *UserStatsUpdateOne) SetNillableQuizzesCompleted(v *int) *UserStatsUpdateOne {
	if v != nil {
		_u.SetQuizzesCompleted(*v)
	}
	return _u
}

// AddQuizzesCompleted adds value to the "quizzes_completed" field.
func (_u *UserStatsUpdateOne) AddQuizzesCompleted(v int) *UserStatsUpdateOne {
	_u.mutation.AddQuizzesCompleted(v)
	return _u
}

// SetAverageScore sets the "average_score" field.
func (_u *UserStatsUpdateOne) SetAverageScore(v float64) *UserStatsUpdateOne {
	_u.mutation.ResetAverageScore()
	_u.mutation.SetAverageScore(v)
	return _u
}

// SetNillableAverageScore sets the "average_score" field if the given value is not nil.
func (_u *UserStatsUpdateOne) SetNillableAverageScore(v *float64) *UserStatsUpdateOne {
	if v != nil {
		_u.SetAverageScore(*v)
	}
	return _u
}

// AddAverageScore adds value to the "average_score" field.
func (_u *UserStatsUpdateOne) AddAverageScore(v float64) *UserStatsUpdateOne {
	_u.mutation.AddAverageScore(v)
	return _u
}

// SetTotalPoints sets the "total_points" field.
func (_u *UserStatsUpdateOne) SetTotalPoints(v int) *UserStatsUpdateOne {
	_u.mutation.ResetTotalPoints()
	_u.mutation.SetTotalPoints(v)
	return _u
}

// SetNillableTotalPoints sets the "total_points" field if the given value is not nil.
func (_u *UserStatsUpdateOne) SetNillableTotalPoints(v *int) *UserStatsUpdateOne {
	if v != nil {
		_u.SetTotalPoints(*v)
	}
	return _u
}

// AddTotalPoints adds value to the "total_points" field.
func (_u *UserStatsUpdateOne) AddTotalPoints(v int) *UserStatsUpdateOne {
	_u.mutation.AddTotalPoints(v)
	return _u
}

// SetRank sets the "rank" field.
func (_u *UserStatsUpdateOne) SetRank(v string) *UserStatsUpdateOne {
	_u.mutation.SetRank(v)
	return _u
}

// SetNillableRank sets the "rank" field if the given value is not nil.
func (_u *UserStatsUpdateOne) SetNillableRank(v *string) *UserStatsUpdateOne {
	if v != nil {
		_u.SetRank(*v)
	}
	return _u
}

// SetStreak sets the "streak" field.
func (_u *UserStatsUpdateOne) SetStreak(v int) *UserStatsUpdateOne {
	_u.mutation.ResetStreak()
	_u.mutation.SetStreak(v)
	return _u
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_u *UserStatsUpdateOne) SetNillableStreak(v *int) *UserStatsUpdateOne {
	if v != nil {
		_u.SetStreak(*v)
	}
	return _u
}

// AddStreak adds value to the "streak" field.
func (_u *UserStatsUpdateOne) AddStreak(v int) *UserStatsUpdateOne {
	_u.mutation.AddStreak(v)
	return _u
}

// SetLastQuizDate sets the "last_quiz_date" field.
func (_u *UserStatsUpdateOne) SetLastQuizDate(v time.Time) *UserStatsUpdateOne {
	_u.mutation.SetLastQuizDate(v)
	return _u
}

// SetNillableLastQuizDate sets the "last_quiz_date" field if the given value is not nil.
func (_u *UserStatsUpdateOne) SetNillableLastQuizDate(v *time.Time) *UserStatsUpdateOne {
	if v != nil {
		_u.SetLastQuizDate(*v)
	}
	return _u
}

// ClearLastQuizDate clears the value of the "last_quiz_date" field.
func (_u *UserStatsUpdateOne) ClearLastQuizDate() *UserStatsUpdateOne {
	_u.mutation.ClearLastQuizDate()
	return _u
}

// SetDailyQuizzes sets the "daily_quizzes" field.
func (_u *UserStatsUpdateOne) SetDailyQuizzes(v int) *UserStatsUpdateOne {
	_u.mutation.ResetDailyQuizzes()
	_u.mutation.SetDailyQuizzes(v)
	return _u
}

// SetNillableDailyQuizzes sets the "daily_quizzes" field if the given value is not nil.
func (_u *UserStatsUpdateOne) SetNillableDailyQuizzes(v *int) *UserStatsUpdateOne {
	if v != nil {
		_u.SetDailyQuizzes(*v)
	}
	return _u
}

// AddDailyQuizzes adds value to the "daily_quizzes" field.
func (_u *UserStatsUpdateOne) AddDailyQuizzes(v int) *UserStatsUpdateOne {
	_u.mutation.AddDailyQuizzes(v)
	return _u
}

// SetDailyDate sets the "daily_date" field.
func (_u *UserStatsUpdateOne) SetDailyDate(v time.Time) *UserStatsUpdateOne {
	_u.mutation.SetDailyDate(v)
	return _u
}

// SetNillableDailyDate sets the "daily_date" field if the given value is not nil.
func (_u *UserStatsUpdateOne) SetNillableDailyDate(v *time.Time) *UserStatsUpdateOne {
	if v != nil {
		_u.SetDailyDate(*v)
	}
	return _u
}

// ClearDailyDate clears the value of the "daily_date" field.
func (_u *UserStatsUpdateOne) ClearDailyDate() *UserStatsUpdateOne {
	_u.mutation.ClearDailyDate()
	return _u
}

// SetPlan sets the "plan" field.
func (_u *UserStatsUpdateOne) SetPlan(v string) *UserStatsUpdateOne {
	_u.mutation.SetPlan(v)
	return _u
}

// SetNillablePlan sets the "plan" field if the given value is not nil.
func (_u *UserStatsUpdateOne) SetNillablePlan(v *string) *UserStatsUpdateOne {
	if v != nil {
		_u.SetPlan(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserStatsUpdateOne) SetUpdatedAt(v time.Time) *UserStatsUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the UserStatsMutation object of the builder.
func (_u *UserStatsUpdateOne) Mutation() *UserStatsMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserStatsUpdate builder.
func (_u *UserStatsUpdateOne) Where(ps ...predicate.UserStats) *UserStatsUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserStatsUpdateOne) Select(field string, fields ...string) *UserStatsUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UserStats entity.
func (_u *UserStatsUpdateOne) Save(ctx context.Context) (*UserStats, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserStatsUpdateOne) SaveX(ctx context.Context) *UserStats {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserStatsUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserStatsUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserStatsUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := userstats.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserStatsUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := userstats.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UserStats.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuizzesCompleted(); ok {
		if err := userstats.QuizzesCompletedValidator(v); err != nil {
			return &ValidationError{Name: "quizzes_completed", err: fmt.Errorf(`ent: validator failed for field "UserStats.quizzes_completed": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalPoints(); ok {
		if err := userstats.TotalPointsValidator(v); err != nil {
			return &ValidationError{Name: "total_points", err: fmt.Errorf(`ent: validator failed for field "UserStats.total_points": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Streak(); ok {
		if err := userstats.StreakValidator(v); err != nil {
			return &ValidationError{Name: "streak", err: fmt.Errorf(`ent: validator failed for field "UserStats.streak": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DailyQuizzes(); ok {
		if err := userstats.DailyQuizzesValidator(v); err != nil {
			return &ValidationError{Name: "daily_quizzes", err: fmt.Errorf(`ent: validator failed for field "UserStats.daily_quizzes": %w`, err)}
		}
	}
	return nil
}

func (_u *UserStatsUpdateOne) sqlSave(ctx context.Context) (_node *UserStats, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(userstats.Table, userstats.Columns, sqlgraph.NewFieldSpec(userstats.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserStats.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, userstats.FieldID)
		for _, f := range fields {
			if !userstats.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != userstats.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(userstats.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuizzesCompleted(); ok {
		_spec.SetField(userstats.FieldQuizzesCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuizzesCompleted(); ok {
		_spec.AddField(userstats.FieldQuizzesCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AverageScore(); ok {
		_spec.SetField(userstats.FieldAverageScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAverageScore(); ok {
		_spec.AddField(userstats.FieldAverageScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalPoints(); ok {
		_spec.SetField(userstats.FieldTotalPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalPoints(); ok {
		_spec.AddField(userstats.FieldTotalPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Rank(); ok {
		_spec.SetField(userstats.FieldRank, field.TypeString, value)
	}
	if value, ok := _u.mutation.Streak(); ok {
		_spec.SetField(userstats.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreak(); ok {
		_spec.AddField(userstats.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastQuizDate(); ok {
		_spec.SetField(userstats.FieldLastQuizDate, field.TypeTime, value)
	}
	if _u.mutation.LastQuizDateCleared() {
		_spec.ClearField(userstats.FieldLastQuizDate, field.TypeTime)
	}
	if value, ok := _u.mutation.DailyQuizzes(); ok {
		_spec.SetField(userstats.FieldDailyQuizzes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDailyQuizzes(); ok {
		_spec.AddField(userstats.FieldDailyQuizzes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DailyDate(); ok {
		_spec.SetField(userstats.FieldDailyDate, field.TypeTime, value)
	}
	if _u.mutation.DailyDateCleared() {
		_spec.ClearField(userstats.FieldDailyDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Plan(); ok {
		_spec.SetField(userstats.FieldPlan, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(userstats.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &UserStats{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userstats.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
