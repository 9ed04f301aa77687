// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/prepmate/engine/ent/achievementunlock"
	"github.com/prepmate/engine/ent/predicate"
)

// AchievementUnlockUpdate is the builder for updating AchievementUnlock entities.
type AchievementUnlockUpdate struct {
	config
	hooks    []Hook
	mutation *AchievementUnlockMutation
}

// Where appends a list predicates to the AchievementUnlockUpdate builder.
func (_u *AchievementUnlockUpdate) Where(ps ...predicate.AchievementUnlock) *AchievementUnlockUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *AchievementUnlockUpdate) SetTitle(v string) *AchievementUnlockUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *AchievementUnlockUpdate) SetNillableTitle(v *string) *AchievementUnlockUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *AchievementUnlockUpdate) SetDescription(v string) *AchievementUnlockUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *AchievementUnlockUpdate) SetNillableDescription(v *string) *AchievementUnlockUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetIcon sets the "icon" field.
func (_u *AchievementUnlockUpdate) SetIcon(v string) *AchievementUnlockUpdate {
	_u.mutation.SetIcon(v)
	return _u
}

// SetNillableIcon sets the "icon" field if the given value is not nil.
func (_u *AchievementUnlockUpdate) SetNillableIcon(v *string) *AchievementUnlockUpdate {
	if v != nil {
		_u.SetIcon(*v)
	}
	return _u
}

// SetRarity sets the "rarity" field.
func (_u *AchievementUnlockUpdate) SetRarity(v string) *AchievementUnlockUpdate {
	_u.mutation.SetRarity(v)
	return _u
}

// SetNillableRarity sets the "rarity" field if the given value is not nil.
func (_u *AchievementUnlockUpdate) SetNillableRarity(v *string) *AchievementUnlockUpdate {
	if v != nil {
		_u.SetRarity(*v)
	}
	return _u
}

// Mutation returns the AchievementUnlockMutation object of the builder.
func (_u *AchievementUnlockUpdate) Mutation() *AchievementUnlockMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AchievementUnlockUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AchievementUnlockUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AchievementUnlockUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AchievementUnlockUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AchievementUnlockUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := achievementunlock.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "AchievementUnlock.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rarity(); ok {
		if err := achievementunlock.RarityValidator(v); err != nil {
			return &ValidationError{Name: "rarity", err: fmt.Errorf(`ent: validator failed for field "AchievementUnlock.rarity": %w`, err)}
		}
	}
	return nil
}

func (_u *AchievementUnlockUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(achievementunlock.Table, achievementunlock.Columns, sqlgraph.NewFieldSpec(achievementunlock.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(achievementunlock.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(achievementunlock.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Icon(); ok {
		_spec.SetField(achievementunlock.FieldIcon, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rarity(); ok {
		_spec.SetField(achievementunlock.FieldRarity, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{achievementunlock.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AchievementUnlockUpdateOne is the builder for updating a single AchievementUnlock entity.
type AchievementUnlockUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AchievementUnlockMutation
}

// SetTitle sets the "title" field.
func (_u *AchievementUnlockUpdateOne) SetTitle(v string) *AchievementUnlockUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *AchievementUnlockUpdateOne) SetNillableTitle(v *string) *AchievementUnlockUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *AchievementUnlockUpdateOne) SetDescription(v string) *AchievementUnlockUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *AchievementUnlockUpdateOne) SetNillableDescription(v *string) *AchievementUnlockUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetIcon sets the "icon" field.
func (_u *AchievementUnlockUpdateOne) SetIcon(v string) *AchievementUnlockUpdateOne {
	_u.mutation.SetIcon(v)
	return _u
}

// SetNillableIcon sets the "icon" field if the given value is not nil.
func (_u *AchievementUnlockUpdateOne) SetNillableIcon(v *string) *AchievementUnlockUpdateOne {
	if v != nil {
		_u.SetIcon(*v)
	}
	return _u
}

// SetRarity sets the "rarity" field.
func (_u *AchievementUnlockUpdateOne) SetRarity(v string) *AchievementUnlockUpdateOne {
	_u.mutation.SetRarity(v)
	return _u
}

// SetNillableRarity sets the "rarity" field if the given value is not nil.
func (_u *AchievementUnlockUpdateOne) SetNillableRarity(v *string) *AchievementUnlockUpdateOne {
	if v != nil {
		_u.SetRarity(*v)
	}
	return _u
}

// Mutation returns the AchievementUnlockMutation object of the builder.
func (_u *AchievementUnlockUpdateOne) Mutation() *AchievementUnlockMutation {
	return _u.mutation
}

// Where appends a list predicates to the AchievementUnlockUpdate builder.
func (_u *AchievementUnlockUpdateOne) Where(ps ...predicate.AchievementUnlock) *AchievementUnlockUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AchievementUnlockUpdateOne) Select(field string, fields ...string) *AchievementUnlockUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AchievementUnlock entity.
func (_u *AchievementUnlockUpdateOne) Save(ctx context.Context) (*AchievementUnlock, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AchievementUnlockUpdateOne) SaveX(ctx context.Context) *AchievementUnlock {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AchievementUnlockUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AchievementUnlockUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AchievementUnlockUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := achievementunlock.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "AchievementUnlock.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rarity(); ok {
		if err := achievementunlock.RarityValidator(v); err != nil {
			return &ValidationError{Name: "rarity", err: fmt.Errorf(`ent: validator failed for field "AchievementUnlock.rarity": %w`, err)}
		}
	}
	return nil
}

func (_u *AchievementUnlockUpdateOne) sqlSave(ctx context.Context) (_node *AchievementUnlock, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(achievementunlock.Table, achievementunlock.Columns, sqlgraph.NewFieldSpec(achievementunlock.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AchievementUnlock.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, achievementunlock.FieldID)
		for _, f := range fields {
			if !achievementunlock.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != achievementunlock.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(achievementunlock.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(achievementunlock.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Icon(); ok {
		_spec.SetField(achievementunlock.FieldIcon, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rarity(); ok {
		_spec.SetField(achievementunlock.FieldRarity, field.TypeString, value)
	}
	_node = &AchievementUnlock{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{achievementunlock.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
