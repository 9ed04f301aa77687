// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/prepmate/engine/ent/achievementunlock"
	"github.com/prepmate/engine/ent/predicate"
)

// AchievementUnlockDelete is the builder for deleting a AchievementUnlock entity.
type AchievementUnlockDelete struct {
	config
	hooks    []Hook
	mutation *AchievementUnlockMutation
}

// Where appends a list predicates to the AchievementUnlockDelete builder.
func (_d *AchievementUnlockDelete) Where(ps ...predicate.AchievementUnlock) *AchievementUnlockDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AchievementUnlockDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AchievementUnlockDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AchievementUnlockDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(achievementunlock.Table, sqlgraph.NewFieldSpec(achievementunlock.FieldID, field.TypeInt))
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

// AchievementUnlockDeleteOne is the builder for deleting a single AchievementUnlock entity.
type AchievementUnlockDeleteOne struct {
	_d *AchievementUnlockDelete
}

// Where appends a list predicates to the AchievementUnlockDelete builder.
func (_d *AchievementUnlockDeleteOne) Where(ps ...predicate.AchievementUnlock) *AchievementUnlockDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AchievementUnlockDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{achievementunlock.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AchievementUnlockDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
