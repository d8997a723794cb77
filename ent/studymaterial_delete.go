// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/solveuxq/solveuxq/ent/predicate"
	"github.com/solveuxq/solveuxq/ent/studymaterial"
)

// StudyMaterialDelete is the builder for deleting a StudyMaterial entity.
type StudyMaterialDelete struct {
	config
	hooks    []Hook
	mutation *StudyMaterialMutation
}

// Where appends a list predicates to the StudyMaterialDelete builder.
func (_d *StudyMaterialDelete) Where(ps ...predicate.StudyMaterial) *StudyMaterialDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *StudyMaterialDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *StudyMaterialDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *StudyMaterialDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(studymaterial.Table, sqlgraph.NewFieldSpec(studymaterial.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// StudyMaterialDeleteOne is the builder for deleting a single StudyMaterial entity.
type StudyMaterialDeleteOne struct {
	_d *StudyMaterialDelete
}

// Where appends a list predicates to the StudyMaterialDelete builder.
func (_d *StudyMaterialDeleteOne) Where(ps ...predicate.StudyMaterial) *StudyMaterialDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *StudyMaterialDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{studymaterial.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *StudyMaterialDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
