// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/solveuxq/solveuxq/ent/predicate"
	"github.com/solveuxq/solveuxq/ent/quizattempt"
)

// QuizAttemptUpdate is the builder for updating QuizAttempt entities.
type QuizAttemptUpdate struct {
	config
	hooks    []Hook
	mutation *QuizAttemptMutation
}

// Where appends a list predicates to the QuizAttemptUpdate builder.
func (_u *QuizAttemptUpdate) Where(ps ...predicate.QuizAttempt) *QuizAttemptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *QuizAttemptUpdate) SetUserID(v string) *QuizAttemptUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *QuizAttemptUpdate) SetNillableUserID(v *string) *QuizAttemptUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetCategoryID sets the "category_id" field.
func (_u *QuizAttemptUpdate) SetCategoryID(v string) *QuizAttemptUpdate {
	_u.mutation.SetCategoryID(v)
	return _u
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (_u *QuizAttemptUpdate) SetNillableCategoryID(v *string) *QuizAttemptUpdate {
	if v != nil {
		_u.SetCategoryID(*v)
	}
	return _u
}

// SetQuizID sets the "quiz_id" field.
func (_u *QuizAttemptUpdate) SetQuizID(v string) *QuizAttemptUpdate {
	_u.mutation.SetQuizID(v)
	return _u
}

// SetNillableQuizID sets the "quiz_id" field if the given value is not nil.
func (_u *QuizAttemptUpdate) SetNillableQuizID(v *string) *QuizAttemptUpdate {
	if v != nil {
		_u.SetQuizID(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *QuizAttemptUpdate) SetDifficulty(v string) *QuizAttemptUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *QuizAttemptUpdate) SetNillableDifficulty(v *string) *QuizAttemptUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *QuizAttemptUpdate) SetCorrectCount(v int) *QuizAttemptUpdate {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *QuizAttemptUpdate) SetNillableCorrectCount(v *int) *QuizAttemptUpdate {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *QuizAttemptUpdate) AddCorrectCount(v int) *QuizAttemptUpdate {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *QuizAttemptUpdate) SetTotalQuestions(v int) *QuizAttemptUpdate {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *QuizAttemptUpdate) SetNillableTotalQuestions(v *int) *QuizAttemptUpdate {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *QuizAttemptUpdate) AddTotalQuestions(v int) *QuizAttemptUpdate {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetScorePercent sets the "score_percent" field.
func (_u *QuizAttemptUpdate) SetScorePercent(v float64) *QuizAttemptUpdate {
	_u.mutation.ResetScorePercent()
	_u.mutation.SetScorePercent(v)
	return _u
}

// SetNillableScorePercent sets the "score_percent" field if the given value is not nil.
func (_u *QuizAttemptUpdate) SetNillableScorePercent(v *float64) *QuizAttemptUpdate {
	if v != nil {
		_u.SetScorePercent(*v)
	}
	return _u
}

// AddScorePercent adds value to the "score_percent" field.
func (_u *QuizAttemptUpdate) AddScorePercent(v float64) *QuizAttemptUpdate {
	_u.mutation.AddScorePercent(v)
	return _u
}

// SetPoints sets the "points" field.
func (_u *QuizAttemptUpdate) SetPoints(v int) *QuizAttemptUpdate {
	_u.mutation.ResetPoints()
	_u.mutation.SetPoints(v)
	return _u
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_u *QuizAttemptUpdate) SetNillablePoints(v *int) *QuizAttemptUpdate {
	if v != nil {
		_u.SetPoints(*v)
	}
	return _u
}

// AddPoints adds value to the "points" field.
func (_u *QuizAttemptUpdate) AddPoints(v int) *QuizAttemptUpdate {
	_u.mutation.AddPoints(v)
	return _u
}

// Mutation returns the QuizAttemptMutation object of the builder.
func (_u *QuizAttemptUpdate) Mutation() *QuizAttemptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizAttemptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizAttemptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizAttemptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizAttemptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizAttemptUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := quizattempt.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectCount(); ok {
		if err := quizattempt.CorrectCountValidator(v); err != nil {
			return &ValidationError{Name: "correct_count", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.correct_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalQuestions(); ok {
		if err := quizattempt.TotalQuestionsValidator(v); err != nil {
			return &ValidationError{Name: "total_questions", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.total_questions": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Points(); ok {
		if err := quizattempt.PointsValidator(v); err != nil {
			return &ValidationError{Name: "points", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.points": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizAttemptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizattempt.Table, quizattempt.Columns, sqlgraph.NewFieldSpec(quizattempt.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(quizattempt.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CategoryID(); ok {
		_spec.SetField(quizattempt.FieldCategoryID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuizID(); ok {
		_spec.SetField(quizattempt.FieldQuizID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(quizattempt.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(quizattempt.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(quizattempt.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(quizattempt.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(quizattempt.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ScorePercent(); ok {
		_spec.SetField(quizattempt.FieldScorePercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScorePercent(); ok {
		_spec.AddField(quizattempt.FieldScorePercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Points(); ok {
		_spec.SetField(quizattempt.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPoints(); ok {
		_spec.AddField(quizattempt.FieldPoints, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizAttemptUpdateOne is the builder for updating a single QuizAttempt entity.
type QuizAttemptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizAttemptMutation
}

// SetUserID sets the "user_id" field.
func (_u *QuizAttemptUpdateOne) SetUserID(v string) *QuizAttemptUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *QuizAttemptUpdateOne) SetNillableUserID(v *string) *QuizAttemptUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetCategoryID sets the "category_id" field.
func (_u *QuizAttemptUpdateOne) SetCategoryID(v string) *QuizAttemptUpdateOne {
	_u.mutation.SetCategoryID(v)
	return _u
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (_u *QuizAttemptUpdateOne) SetNillableCategoryID(v *string) *QuizAttemptUpdateOne {
	if v != nil {
		_u.SetCategoryID(*v)
	}
	return _u
}

// SetQuizID sets the "quiz_id" field.
func (_u *QuizAttemptUpdateOne) SetQuizID(v string) *QuizAttemptUpdateOne {
	_u.mutation.SetQuizID(v)
	return _u
}

// SetNillableQuizID sets the "quiz_id" field if the given value is not nil.
func (_u *QuizAttemptUpdateOne) SetNillableQuizID(v *string) *QuizAttemptUpdateOne {
	if v != nil {
		_u.SetQuizID(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *QuizAttemptUpdateOne) SetDifficulty(v string) *QuizAttemptUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *QuizAttemptUpdateOne) SetNillableDifficulty(v *string) *QuizAttemptUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *QuizAttemptUpdateOne) SetCorrectCount(v int) *QuizAttemptUpdateOne {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *QuizAttemptUpdateOne) SetNillableCorrectCount(v *int) *QuizAttemptUpdateOne {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *QuizAttemptUpdateOne) AddCorrectCount(v int) *QuizAttemptUpdateOne {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *QuizAttemptUpdateOne) SetTotalQuestions(v int) *QuizAttemptUpdateOne {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *QuizAttemptUpdateOne) SetNillableTotalQuestions(v *int) *QuizAttemptUpdateOne {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *QuizAttemptUpdateOne) AddTotalQuestions(v int) *QuizAttemptUpdateOne {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetScorePercent sets the "score_percent" field.
func (_u *QuizAttemptUpdateOne) SetScorePercent(v float64) *QuizAttemptUpdateOne {
	_u.mutation.ResetScorePercent()
	_u.mutation.SetScorePercent(v)
	return _u
}

// SetNillableScorePercent sets the "score_percent" field if the given value is not nil.
func (_u *QuizAttemptUpdateOne) SetNillableScorePercent(v *float64) *QuizAttemptUpdateOne {
	if v != nil {
		_u.SetScorePercent(*v)
	}
	return _u
}

// AddScorePercent adds value to the "score_percent" field.
func (_u *QuizAttemptUpdateOne) AddScorePercent(v float64) *QuizAttemptUpdateOne {
	_u.mutation.AddScorePercent(v)
	return _u
}

// SetPoints sets the "points" field.
func (_u *QuizAttemptUpdateOne) SetPoints(v int) *QuizAttemptUpdateOne {
	_u.mutation.ResetPoints()
	_u.mutation.SetPoints(v)
	return _u
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_u *QuizAttemptUpdateOne) SetNillablePoints(v *int) *QuizAttemptUpdateOne {
	if v != nil {
		_u.SetPoints(*v)
	}
	return _u
}

// AddPoints adds value to the "points" field.
func (_u *QuizAttemptUpdateOne) AddPoints(v int) *QuizAttemptUpdateOne {
	_u.mutation.AddPoints(v)
	return _u
}

// Mutation returns the QuizAttemptMutation object of the builder.
func (_u *QuizAttemptUpdateOne) Mutation() *QuizAttemptMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuizAttemptUpdate builder.
func (_u *QuizAttemptUpdateOne) Where(ps ...predicate.QuizAttempt) *QuizAttemptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizAttemptUpdateOne) Select(field string, fields ...string) *QuizAttemptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuizAttempt entity.
func (_u *QuizAttemptUpdateOne) Save(ctx context.Context) (*QuizAttempt, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizAttemptUpdateOne) SaveX(ctx context.Context) *QuizAttempt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizAttemptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizAttemptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizAttemptUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := quizattempt.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectCount(); ok {
		if err := quizattempt.CorrectCountValidator(v); err != nil {
			return &ValidationError{Name: "correct_count", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.correct_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalQuestions(); ok {
		if err := quizattempt.TotalQuestionsValidator(v); err != nil {
			return &ValidationError{Name: "total_questions", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.total_questions": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Points(); ok {
		if err := quizattempt.PointsValidator(v); err != nil {
			return &ValidationError{Name: "points", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.points": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizAttemptUpdateOne) sqlSave(ctx context.Context) (_node *QuizAttempt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizattempt.Table, quizattempt.Columns, sqlgraph.NewFieldSpec(quizattempt.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuizAttempt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizattempt.FieldID)
		for _, f := range fields {
			if !quizattempt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quizattempt.FieldID {
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
		_spec.SetField(quizattempt.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CategoryID(); ok {
		_spec.SetField(quizattempt.FieldCategoryID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuizID(); ok {
		_spec.SetField(quizattempt.FieldQuizID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(quizattempt.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(quizattempt.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(quizattempt.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(quizattempt.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(quizattempt.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ScorePercent(); ok {
		_spec.SetField(quizattempt.FieldScorePercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScorePercent(); ok {
		_spec.AddField(quizattempt.FieldScorePercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Points(); ok {
		_spec.SetField(quizattempt.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPoints(); ok {
		_spec.AddField(quizattempt.FieldPoints, field.TypeInt, value)
	}
	_node = &QuizAttempt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
