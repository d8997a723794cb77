// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/solveuxq/solveuxq/ent/quizattempt"
)

// QuizAttemptCreate is the builder for creating a QuizAttempt entity.
type QuizAttemptCreate struct {
	config
	mutation *QuizAttemptMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *QuizAttemptCreate) SetUserID(v string) *QuizAttemptCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetCategoryID sets the "category_id" field.
func (_c *QuizAttemptCreate) SetCategoryID(v string) *QuizAttemptCreate {
	_c.mutation.SetCategoryID(v)
	return _c
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (_c *QuizAttemptCreate) SetNillableCategoryID(v *string) *QuizAttemptCreate {
	if v != nil {
		_c.SetCategoryID(*v)
	}
	return _c
}

// SetQuizID sets the "quiz_id" field.
func (_c *QuizAttemptCreate) SetQuizID(v string) *QuizAttemptCreate {
	_c.mutation.SetQuizID(v)
	return _c
}

// SetNillableQuizID sets the "quiz_id" field if the given value is not nil.
func (_c *QuizAttemptCreate) SetNillableQuizID(v *string) *QuizAttemptCreate {
	if v != nil {
		_c.SetQuizID(*v)
	}
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *QuizAttemptCreate) SetDifficulty(v string) *QuizAttemptCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_c *QuizAttemptCreate) SetNillableDifficulty(v *string) *QuizAttemptCreate {
	if v != nil {
		_c.SetDifficulty(*v)
	}
	return _c
}

// SetCorrectCount sets the "correct_count" field.
func (_c *QuizAttemptCreate) SetCorrectCount(v int) *QuizAttemptCreate {
	_c.mutation.SetCorrectCount(v)
	return _c
}

// SetTotalQuestions sets the "total_questions" field.
func (_c *QuizAttemptCreate) SetTotalQuestions(v int) *QuizAttemptCreate {
	_c.mutation.SetTotalQuestions(v)
	return _c
}

// SetScorePercent sets the "score_percent" field.
func (_c *QuizAttemptCreate) SetScorePercent(v float64) *QuizAttemptCreate {
	_c.mutation.SetScorePercent(v)
	return _c
}

// SetPoints sets the "points" field.
func (_c *QuizAttemptCreate) SetPoints(v int) *QuizAttemptCreate {
	_c.mutation.SetPoints(v)
	return _c
}

// SetTakenAt sets the "taken_at" field.
func (_c *QuizAttemptCreate) SetTakenAt(v time.Time) *QuizAttemptCreate {
	_c.mutation.SetTakenAt(v)
	return _c
}

// SetNillableTakenAt sets the "taken_at" field if the given value is not nil.
func (_c *QuizAttemptCreate) SetNillableTakenAt(v *time.Time) *QuizAttemptCreate {
	if v != nil {
		_c.SetTakenAt(*v)
	}
	return _c
}

// Mutation returns the QuizAttemptMutation object of the builder.
func (_c *QuizAttemptCreate) Mutation() *QuizAttemptMutation {
	return _c.mutation
}

// Save creates the QuizAttempt in the database.
func (_c *QuizAttemptCreate) Save(ctx context.Context) (*QuizAttempt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuizAttemptCreate) SaveX(ctx context.Context) *QuizAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizAttemptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizAttemptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuizAttemptCreate) defaults() {
	if _, ok := _c.mutation.CategoryID(); !ok {
		v := quizattempt.DefaultCategoryID
		_c.mutation.SetCategoryID(v)
	}
	if _, ok := _c.mutation.QuizID(); !ok {
		v := quizattempt.DefaultQuizID
		_c.mutation.SetQuizID(v)
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		v := quizattempt.DefaultDifficulty
		_c.mutation.SetDifficulty(v)
	}
	if _, ok := _c.mutation.TakenAt(); !ok {
		v := quizattempt.DefaultTakenAt()
		_c.mutation.SetTakenAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuizAttemptCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "QuizAttempt.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := quizattempt.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CategoryID(); !ok {
		return &ValidationError{Name: "category_id", err: errors.New(`ent: missing required field "QuizAttempt.category_id"`)}
	}
	if _, ok := _c.mutation.QuizID(); !ok {
		return &ValidationError{Name: "quiz_id", err: errors.New(`ent: missing required field "QuizAttempt.quiz_id"`)}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "QuizAttempt.difficulty"`)}
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		return &ValidationError{Name: "correct_count", err: errors.New(`ent: missing required field "QuizAttempt.correct_count"`)}
	}
	if v, ok := _c.mutation.CorrectCount(); ok {
		if err := quizattempt.CorrectCountValidator(v); err != nil {
			return &ValidationError{Name: "correct_count", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.correct_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalQuestions(); !ok {
		return &ValidationError{Name: "total_questions", err: errors.New(`ent: missing required field "QuizAttempt.total_questions"`)}
	}
	if v, ok := _c.mutation.TotalQuestions(); ok {
		if err := quizattempt.TotalQuestionsValidator(v); err != nil {
			return &ValidationError{Name: "total_questions", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.total_questions": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ScorePercent(); !ok {
		return &ValidationError{Name: "score_percent", err: errors.New(`ent: missing required field "QuizAttempt.score_percent"`)}
	}
	if _, ok := _c.mutation.Points(); !ok {
		return &ValidationError{Name: "points", err: errors.New(`ent: missing required field "QuizAttempt.points"`)}
	}
	if v, ok := _c.mutation.Points(); ok {
		if err := quizattempt.PointsValidator(v); err != nil {
			return &ValidationError{Name: "points", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.points": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TakenAt(); !ok {
		return &ValidationError{Name: "taken_at", err: errors.New(`ent: missing required field "QuizAttempt.taken_at"`)}
	}
	return nil
}

func (_c *QuizAttemptCreate) sqlSave(ctx context.Context) (*QuizAttempt, error) {
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

func (_c *QuizAttemptCreate) createSpec() (*QuizAttempt, *sqlgraph.CreateSpec) {
	var (
		_node = &QuizAttempt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quizattempt.Table, sqlgraph.NewFieldSpec(quizattempt.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(quizattempt.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.CategoryID(); ok {
		_spec.SetField(quizattempt.FieldCategoryID, field.TypeString, value)
		_node.CategoryID = value
	}
	if value, ok := _c.mutation.QuizID(); ok {
		_spec.SetField(quizattempt.FieldQuizID, field.TypeString, value)
		_node.QuizID = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(quizattempt.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.CorrectCount(); ok {
		_spec.SetField(quizattempt.FieldCorrectCount, field.TypeInt, value)
		_node.CorrectCount = value
	}
	if value, ok := _c.mutation.TotalQuestions(); ok {
		_spec.SetField(quizattempt.FieldTotalQuestions, field.TypeInt, value)
		_node.TotalQuestions = value
	}
	if value, ok := _c.mutation.ScorePercent(); ok {
		_spec.SetField(quizattempt.FieldScorePercent, field.TypeFloat64, value)
		_node.ScorePercent = value
	}
	if value, ok := _c.mutation.Points(); ok {
		_spec.SetField(quizattempt.FieldPoints, field.TypeInt, value)
		_node.Points = value
	}
	if value, ok := _c.mutation.TakenAt(); ok {
		_spec.SetField(quizattempt.FieldTakenAt, field.TypeTime, value)
		_node.TakenAt = value
	}
	return _node, _spec
}

// QuizAttemptCreateBulk is the builder for creating many QuizAttempt entities in bulk.
type QuizAttemptCreateBulk struct {
	config
	err      error
	builders []*QuizAttemptCreate
}

// Save creates the QuizAttempt entities in the database.
func (_c *QuizAttemptCreateBulk) Save(ctx context.Context) ([]*QuizAttempt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuizAttempt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuizAttemptMutation)
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
func (_c *QuizAttemptCreateBulk) SaveX(ctx context.Context) []*QuizAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizAttemptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizAttemptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
