// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/solveuxq/solveuxq/ent/studymaterial"
)

// StudyMaterialCreate is the builder for creating a StudyMaterial entity.
type StudyMaterialCreate struct {
	config
	mutation *StudyMaterialMutation
	hooks    []Hook
}

// SetArticleID sets the "article_id" field.
func (_c *StudyMaterialCreate) SetArticleID(v string) *StudyMaterialCreate {
	_c.mutation.SetArticleID(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *StudyMaterialCreate) SetCategory(v string) *StudyMaterialCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *StudyMaterialCreate) SetTitle(v string) *StudyMaterialCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *StudyMaterialCreate) SetContent(v string) *StudyMaterialCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetLength sets the "length" field.
func (_c *StudyMaterialCreate) SetLength(v string) *StudyMaterialCreate {
	_c.mutation.SetLength(v)
	return _c
}

// SetNillableLength sets the "length" field if the given value is not nil.
func (_c *StudyMaterialCreate) SetNillableLength(v *string) *StudyMaterialCreate {
	if v != nil {
		_c.SetLength(*v)
	}
	return _c
}

// SetModel sets the "model" field.
func (_c *StudyMaterialCreate) SetModel(v string) *StudyMaterialCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_c *StudyMaterialCreate) SetNillableModel(v *string) *StudyMaterialCreate {
	if v != nil {
		_c.SetModel(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StudyMaterialCreate) SetCreatedAt(v time.Time) *StudyMaterialCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StudyMaterialCreate) SetNillableCreatedAt(v *time.Time) *StudyMaterialCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the StudyMaterialMutation object of the builder.
func (_c *StudyMaterialCreate) Mutation() *StudyMaterialMutation {
	return _c.mutation
}

// Save creates the StudyMaterial in the database.
func (_c *StudyMaterialCreate) Save(ctx context.Context) (*StudyMaterial, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StudyMaterialCreate) SaveX(ctx context.Context) *StudyMaterial {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudyMaterialCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudyMaterialCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StudyMaterialCreate) defaults() {
	if _, ok := _c.mutation.Length(); !ok {
		v := studymaterial.DefaultLength
		_c.mutation.SetLength(v)
	}
	if _, ok := _c.mutation.Model(); !ok {
		v := studymaterial.DefaultModel
		_c.mutation.SetModel(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := studymaterial.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StudyMaterialCreate) check() error {
	if _, ok := _c.mutation.ArticleID(); !ok {
		return &ValidationError{Name: "article_id", err: errors.New(`ent: missing required field "StudyMaterial.article_id"`)}
	}
	if v, ok := _c.mutation.ArticleID(); ok {
		if err := studymaterial.ArticleIDValidator(v); err != nil {
			return &ValidationError{Name: "article_id", err: fmt.Errorf(`ent: validator failed for field "StudyMaterial.article_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "StudyMaterial.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := studymaterial.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "StudyMaterial.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "StudyMaterial.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := studymaterial.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "StudyMaterial.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "StudyMaterial.content"`)}
	}
	if v, ok := _c.mutation.Content(); ok {
		if err := studymaterial.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "StudyMaterial.content": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Length(); !ok {
		return &ValidationError{Name: "length", err: errors.New(`ent: missing required field "StudyMaterial.length"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "StudyMaterial.model"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StudyMaterial.created_at"`)}
	}
	return nil
}

func (_c *StudyMaterialCreate) sqlSave(ctx context.Context) (*StudyMaterial, error) {
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

func (_c *StudyMaterialCreate) createSpec() (*StudyMaterial, *sqlgraph.CreateSpec) {
	var (
		_node = &StudyMaterial{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(studymaterial.Table, sqlgraph.NewFieldSpec(studymaterial.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ArticleID(); ok {
		_spec.SetField(studymaterial.FieldArticleID, field.TypeString, value)
		_node.ArticleID = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(studymaterial.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(studymaterial.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(studymaterial.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Length(); ok {
		_spec.SetField(studymaterial.FieldLength, field.TypeString, value)
		_node.Length = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(studymaterial.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(studymaterial.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// StudyMaterialCreateBulk is the builder for creating many StudyMaterial entities in bulk.
type StudyMaterialCreateBulk struct {
	config
	err      error
	builders []*StudyMaterialCreate
}

// Save creates the StudyMaterial entities in the database.
func (_c *StudyMaterialCreateBulk) Save(ctx context.Context) ([]*StudyMaterial, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StudyMaterial, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StudyMaterialMutation)
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
func (_c *StudyMaterialCreateBulk) SaveX(ctx context.Context) []*StudyMaterial {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudyMaterialCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudyMaterialCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
