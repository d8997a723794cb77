// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/solveuxq/solveuxq/ent/userstats"
)

// UserStatsCreate is the builder for creating a UserStats entity.
type UserStatsCreate struct {
	config
	mutation *UserStatsMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *UserStatsCreate) SetUserID(v string) *UserStatsCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetQuizzesCompleted sets the "quizzes_completed" field.
func (_c *UserStatsCreate) SetQuizzesCompleted(v int) *UserStatsCreate {
	_c.mutation.SetQuizzesCompleted(v)
	return _c
}

// SetNillableQuizzesCompleted sets the "quizzes_completed" field if the given value is not nil.
func (_c *UserStatsCreate) SetNillableQuizzesCompleted(v *int) *UserStatsCreate {
	if v != nil {
		_c.SetQuizzesCompleted(*v)
	}
	return _c
}

// SetAverageScore sets the "average_score" field.
func (_c *UserStatsCreate) SetAverageScore(v float64) *UserStatsCreate {
	_c.mutation.SetAverageScore(v)
	return _c
}

// SetNillableAverageScore sets the "average_score" field if the given value is not nil.
func (_c *UserStatsCreate) SetNillableAverageScore(v *float64) *UserStatsCreate {
	if v != nil {
		_c.SetAverageScore(*v)
	}
	return _c
}

// SetTotalPoints sets the "total_points" field.
func (_c *UserStatsCreate) SetTotalPoints(v int) *UserStatsCreate {
	_c.mutation.SetTotalPoints(v)
	return _c
}

// SetNillableTotalPoints sets the "total_points" field if the given value is not nil.
func (_c *UserStatsCreate) SetNillableTotalPoints(v *int) *UserStatsCreate {
	if v != nil {
		_c.SetTotalPoints(*v)
	}
	return _c
}

// SetRank sets the "rank" field.
func (_c *UserStatsCreate) SetRank(v string) *UserStatsCreate {
	_c.mutation.SetRank(v)
	return _c
}

// SetNillableRank sets the "rank" field if the given value is not nil.
func (_c *UserStatsCreate) SetNillableRank(v *string) *UserStatsCreate {
	if v != nil {
		_c.SetRank(*v)
	}
	return _c
}

// SetStreak sets the "streak" field.
func (_c *UserStatsCreate) SetStreak(v int) *UserStatsCreate {
	_c.mutation.SetStreak(v)
	return _c
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_c *UserStatsCreate) SetNillableStreak(v *int) *UserStatsCreate {
	if v != nil {
		_c.SetStreak(*v)
	}
	return _c
}

// SetLastQuizDate sets the "last_quiz_date" field.
func (_c *UserStatsCreate) SetLastQuizDate(v time.Time) *UserStatsCreate {
	_c.mutation.SetLastQuizDate(v)
	return _c
}

// SetNillableLastQuizDate sets the "last_quiz_date" field if the given value is not nil.
func (_c *UserStatsCreate) SetNillableLastQuizDate(v *time.Time) *UserStatsCreate {
	if v != nil {
		_c.SetLastQuizDate(*v)
	}
	return _c
}

// SetDailyQuizzes sets the "daily_quizzes" field.
func (_c *UserStatsCreate) SetDailyQuizzes(v int) *UserStatsCreate {
	_c.mutation.SetDailyQuizzes(v)
	return _c
}

// SetNillableDailyQuizzes sets the "daily_quizzes" field if the given value is not nil.
func (_c *UserStatsCreate) SetNillableDailyQuizzes(v *int) *UserStatsCreate {
	if v != nil {
		_c.SetDailyQuizzes(*v)
	}
	return _c
}

// SetDailyDate sets the "daily_date" field.
func (_c *UserStatsCreate) SetDailyDate(v time.Time) *UserStatsCreate {
	_c.mutation.SetDailyDate(v)
	return _c
}

// SetNillableDailyDate sets the "daily_date" field if the given value is not nil.
func (_c *UserStatsCreate) SetNillableDailyDate(v *time.Time) *UserStatsCreate {
	if v != nil {
		_c.SetDailyDate(*v)
	}
	return _c
}

// SetPlan sets the "plan" field.
func (_c *UserStatsCreate) SetPlan(v string) *UserStatsCreate {
	_c.mutation.SetPlan(v)
	return _c
}

// SetNillablePlan sets the "plan" field if the given value is not nil.
func (_c *UserStatsCreate) SetNillablePlan(v *string) *UserStatsCreate {
	if v != nil {
		_c.SetPlan(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UserStatsCreate) SetCreatedAt(v time.Time) *UserStatsCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UserStatsCreate) SetNillableCreatedAt(v *time.Time) *UserStatsCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *UserStatsCreate) SetUpdatedAt(v time.Time) *UserStatsCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *UserStatsCreate) SetNillableUpdatedAt(v *time.Time) *UserStatsCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the UserStatsMutation object of the builder.
func (_c *UserStatsCreate) Mutation() *UserStatsMutation {
	return _c.mutation
}

// Save creates the UserStats in the database.
func (_c *UserStatsCreate) Save(ctx context.Context) (*UserStats, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserStatsCreate) SaveX(ctx context.Context) *UserStats {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserStatsCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserStatsCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserStatsCreate) defaults() {
	if _, ok := _c.mutation.QuizzesCompleted(); !ok {
		v := userstats.DefaultQuizzesCompleted
		_c.mutation.SetQuizzesCompleted(v)
	}
	if _, ok := _c.mutation.AverageScore(); !ok {
		v := userstats.DefaultAverageScore
		_c.mutation.SetAverageScore(v)
	}
	if _, ok := _c.mutation.TotalPoints(); !ok {
		v := userstats.DefaultTotalPoints
		_c.mutation.SetTotalPoints(v)
	}
	if _, ok := _c.mutation.Rank(); !ok {
		v := userstats.DefaultRank
		_c.mutation.SetRank(v)
	}
	if _, ok := _c.mutation.Streak(); !ok {
		v := userstats.DefaultStreak
		_c.mutation.SetStreak(v)
	}
	if _, ok := _c.mutation.DailyQuizzes(); !ok {
		v := userstats.DefaultDailyQuizzes
		_c.mutation.SetDailyQuizzes(v)
	}
	if _, ok := _c.mutation.Plan(); !ok {
		v := userstats.DefaultPlan
		_c.mutation.SetPlan(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := userstats.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := userstats.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserStatsCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "UserStats.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := userstats.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UserStats.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuizzesCompleted(); !ok {
		return &ValidationError{Name: "quizzes_completed", err: errors.New(`ent: missing required field "UserStats.quizzes_completed"`)}
	}
	if v, ok := _c.mutation.QuizzesCompleted(); ok {
		if err := userstats.QuizzesCompletedValidator(v); err != nil {
			return &ValidationError{Name: "quizzes_completed", err: fmt.Errorf(`ent: validator failed for field "UserStats.quizzes_completed": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AverageScore(); !ok {
		return &ValidationError{Name: "average_score", err: errors.New(`ent: missing required field "UserStats.average_score"`)}
	}
	if _, ok := _c.mutation.TotalPoints(); !ok {
		return &ValidationError{Name: "total_points", err: errors.New(`ent: missing required field "UserStats.total_points"`)}
	}
	if v, ok := _c.mutation.TotalPoints(); ok {
		if err := userstats.TotalPointsValidator(v); err != nil {
			return &ValidationError{Name: "total_points", err: fmt.Errorf(`ent: validator failed for field "UserStats.total_points": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Rank(); !ok {
		return &ValidationError{Name: "rank", err: errors.New(`ent: missing required field "UserStats.rank"`)}
	}
	if _, ok := _c.mutation.Streak(); !ok {
		return &ValidationError{Name: "streak", err: errors.New(`ent: missing required field "UserStats.streak"`)}
	}
	if v, ok := _c.mutation.Streak(); ok {
		if err := userstats.StreakValidator(v); err != nil {
			return &ValidationError{Name: "streak", err: fmt.Errorf(`ent: validator failed for field "UserStats.streak": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DailyQuizzes(); !ok {
		return &ValidationError{Name: "daily_quizzes", err: errors.New(`ent: missing required field "UserStats.daily_quizzes"`)}
	}
	if v, ok := _c.mutation.DailyQuizzes(); ok {
		if err := userstats.DailyQuizzesValidator(v); err != nil {
			return &ValidationError{Name: "daily_quizzes", err: fmt.Errorf(`ent: validator failed for field "UserStats.daily_quizzes": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Plan(); !ok {
		return &ValidationError{Name: "plan", err: errors.New(`ent: missing required field "UserStats.plan"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "UserStats.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "UserStats.updated_at"`)}
	}
	return nil
}

func (_c *UserStatsCreate) sqlSave(ctx context.Context) (*UserStats, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *UserStatsCreate) createSpec() (*UserStats, *sqlgraph.CreateSpec) {
	var (
		_node = &UserStats{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(userstats.Table, sqlgraph.NewFieldSpec(userstats.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(userstats.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.QuizzesCompleted(); ok {
		_spec.SetField(userstats.FieldQuizzesCompleted, field.TypeInt, value)
		_node.QuizzesCompleted = value
	}
	if value, ok := _c.mutation.AverageScore(); ok {
		_spec.SetField(userstats.FieldAverageScore, field.TypeFloat64, value)
		_node.AverageScore = value
	}
	if value, ok := _c.mutation.TotalPoints(); ok {
		_spec.SetField(userstats.FieldTotalPoints, field.TypeInt, value)
		_node.TotalPoints = value
	}
	if value, ok := _c.mutation.Rank(); ok {
		_spec.SetField(userstats.FieldRank, field.TypeString, value)
		_node.Rank = value
	}
	if value, ok := _c.mutation.Streak(); ok {
		_spec.SetField(userstats.FieldStreak, field.TypeInt, value)
		_node.Streak = value
	}
	if value, ok := _c.mutation.LastQuizDate(); ok {
		_spec.SetField(userstats.FieldLastQuizDate, field.TypeTime, value)
		_node.LastQuizDate = value
	}
	if value, ok := _c.mutation.DailyQuizzes(); ok {
		_spec.SetField(userstats.FieldDailyQuizzes, field.TypeInt, value)
		_node.DailyQuizzes = value
	}
	if value, ok := _c.mutation.DailyDate(); ok {
		_spec.SetField(userstats.FieldDailyDate, field.TypeTime, value)
		_node.DailyDate = value
	}
	if value, ok := _c.mutation.Plan(); ok {
		_spec.SetField(userstats.FieldPlan, field.TypeString, value)
		_node.Plan = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(userstats.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(userstats.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// UserStatsCreateBulk is the builder for creating many UserStats entities in bulk.
type UserStatsCreateBulk struct {
	config
	err      error
	builders []*UserStatsCreate
}

// Save creates the UserStats entities in the database.
func (_c *UserStatsCreateBulk) Save(ctx context.Context) ([]*UserStats, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UserStats, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserStatsMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *UserStatsCreateBulk) SaveX(ctx context.Context) []*UserStats {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserStatsCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserStatsCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
