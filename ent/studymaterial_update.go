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
	"github.com/solveuxq/solveuxq/ent/studymaterial"
)

// StudyMaterialUpdate is the builder for updating StudyMaterial entities.
type StudyMaterialUpdate struct {
	config
	hooks    []Hook
	mutation *StudyMaterialMutation
}

// Where appends a list predicates to the StudyMaterialUpdate builder.
func (_u *StudyMaterialUpdate) Where(ps ...predicate.StudyMaterial) *StudyMaterialUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetArticleID sets the "article_id" field.
func (_u *StudyMaterialUpdate) SetArticleID(v string) *StudyMaterialUpdate {
	_u.mutation.SetArticleID(v)
	return _u
}

// SetNillableArticleID sets the "article_id" field if the given value is not nil.
func (_u *StudyMaterialUpdate) SetNillableArticleID(v *string) *StudyMaterialUpdate {
	if v != nil {
		_u.SetArticleID(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *StudyMaterialUpdate) SetCategory(v string) *StudyMaterialUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *StudyMaterialUpdate) SetNillableCategory(v *string) *StudyMaterialUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *StudyMaterialUpdate) SetTitle(v string) *StudyMaterialUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *StudyMaterialUpdate) SetNillableTitle(v *string) *StudyMaterialUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *StudyMaterialUpdate) SetContent(v string) *StudyMaterialUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *StudyMaterialUpdate) SetNillableContent(v *string) *StudyMaterialUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetLength sets the "length" field.
func (_u *StudyMaterialUpdate) SetLength(v string) *StudyMaterialUpdate {
	_u.mutation.SetLength(v)
	return _u
}

// SetNillableLength sets the "length" field if the given value is not nil.
func (_u *StudyMaterialUpdate) SetNillableLength(v *string) *StudyMaterialUpdate {
	if v != nil {
		_u.SetLength(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *StudyMaterialUpdate) SetModel(v string) *StudyMaterialUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *StudyMaterialUpdate) SetNillableModel(v *string) *StudyMaterialUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// Mutation returns the StudyMaterialMutation object of the builder.
func (_u *StudyMaterialUpdate) Mutation() *StudyMaterialMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StudyMaterialUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudyMaterialUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StudyMaterialUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudyMaterialUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudyMaterialUpdate) check() error {
	if v, ok := _u.mutation.ArticleID(); ok {
		if err := studymaterial.ArticleIDValidator(v); err != nil {
			return &ValidationError{Name: "article_id", err: fmt.Errorf(`ent: validator failed for field "StudyMaterial.article_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := studymaterial.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "StudyMaterial.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := studymaterial.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "StudyMaterial.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Content(); ok {
		if err := studymaterial.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "StudyMaterial.content": %w`, err)}
		}
	}
	return nil
}

func (_u *StudyMaterialUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studymaterial.Table, studymaterial.Columns, sqlgraph.NewFieldSpec(studymaterial.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ArticleID(); ok {
		_spec.SetField(studymaterial.FieldArticleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(studymaterial.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(studymaterial.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(studymaterial.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Length(); ok {
		_spec.SetField(studymaterial.FieldLength, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(studymaterial.FieldModel, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studymaterial.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StudyMaterialUpdateOne is the builder for updating a single StudyMaterial entity.
type StudyMaterialUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StudyMaterialMutation
}

// SetArticleID sets the "article_id" field.
func (_u *StudyMaterialUpdateOne) SetArticleID(v string) *StudyMaterialUpdateOne {
	_u.mutation.SetArticleID(v)
	return _u
}

// SetNillableArticleID sets the "article_id" field if the given value is not nil.
func (_u *StudyMaterialUpdateOne) SetNillableArticleID(v *string) *StudyMaterialUpdateOne {
	if v != nil {
		_u.SetArticleID(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *StudyMaterialUpdateOne) SetCategory(v string) *StudyMaterialUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *StudyMaterialUpdateOne) SetNillableCategory(v *string) *StudyMaterialUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *StudyMaterialUpdateOne) SetTitle(v string) *StudyMaterialUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *StudyMaterialUpdateOne) SetNillableTitle(v *string) *StudyMaterialUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *StudyMaterialUpdateOne) SetContent(v string) *StudyMaterialUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *StudyMaterialUpdateOne) SetNillableContent(v *string) *StudyMaterialUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetLength sets the "length" field.
func (_u *StudyMaterialUpdateOne) SetLength(v string) *StudyMaterialUpdateOne {
	_u.mutation.SetLength(v)
	return _u
}

// SetNillableLength sets the "length" field if the given value is not nil.
func (_u *StudyMaterialUpdateOne) SetNillableLength(v *string) *StudyMaterialUpdateOne {
	if v != nil {
		_u.SetLength(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *StudyMaterialUpdateOne) SetModel(v string) *StudyMaterialUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *StudyMaterialUpdateOne) SetNillableModel(v *string) *StudyMaterialUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// Mutation returns the StudyMaterialMutation object of the builder.
func (_u *StudyMaterialUpdateOne) Mutation() *StudyMaterialMutation {
	return _u.mutation
}

// Where appends a list predicates to the StudyMaterialUpdate builder.
func (_u *StudyMaterialUpdateOne) Where(ps ...predicate.StudyMaterial) *StudyMaterialUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StudyMaterialUpdateOne) Select(field string, fields ...string) *StudyMaterialUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StudyMaterial entity.
func (_u *StudyMaterialUpdateOne) Save(ctx context.Context) (*StudyMaterial, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudyMaterialUpdateOne) SaveX(ctx context.Context) *StudyMaterial {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StudyMaterialUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudyMaterialUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudyMaterialUpdateOne) check() error {
	if v, ok := _u.mutation.ArticleID(); ok {
		if err := studymaterial.ArticleIDValidator(v); err != nil {
			return &ValidationError{Name: "article_id", err: fmt.Errorf(`ent: validator failed for field "StudyMaterial.article_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := studymaterial.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "StudyMaterial.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := studymaterial.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "StudyMaterial.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Content(); ok {
		if err := studymaterial.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "StudyMaterial.content": %w`, err)}
		}
	}
	return nil
}

func (_u *StudyMaterialUpdateOne) sqlSave(ctx context.Context) (_node *StudyMaterial, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studymaterial.Table, studymaterial.Columns, sqlgraph.NewFieldSpec(studymaterial.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StudyMaterial.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, studymaterial.FieldID)
		for _, f := range fields {
			if !studymaterial.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != studymaterial.FieldID {
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
	if value, ok := _u.mutation.ArticleID(); ok {
		_spec.SetField(studymaterial.FieldArticleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(studymaterial.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(studymaterial.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(studymaterial.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Length(); ok {
		_spec.SetField(studymaterial.FieldLength, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(studymaterial.FieldModel, field.TypeString, value)
	}
	_node = &StudyMaterial{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studymaterial.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
