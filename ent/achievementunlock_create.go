// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/prepmate/engine/ent/achievementunlock"
)

// AchievementUnlockCreate is the builder for creating a AchievementUnlock entity.
type AchievementUnlockCreate struct {
	config
	mutation *AchievementUnlockMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *AchievementUnlockCreate) SetOwnerID(v string) *AchievementUnlockCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetAchievementType sets the "achievement_type" field.
func (_c *AchievementUnlockCreate) SetAchievementType(v string) *AchievementUnlockCreate {
	_c.mutation.SetAchievementType(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *AchievementUnlockCreate) SetTitle(v string) *AchievementUnlockCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *AchievementUnlockCreate) SetDescription(v string) *AchievementUnlockCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *AchievementUnlockCreate) SetNillableDescription(v *string) *AchievementUnlockCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetIcon sets the "icon" field.
func (_c *AchievementUnlockCreate) SetIcon(v string) *AchievementUnlockCreate {
	_c.mutation.SetIcon(v)
	return _c
}

// SetNillableIcon sets the "icon" field if the given value is not nil.
func (_c *AchievementUnlockCreate) SetNillableIcon(v *string) *AchievementUnlockCreate {
	if v != nil {
		_c.SetIcon(*v)
	}
	return _c
}

// SetRarity sets the "rarity" field.
func (_c *AchievementUnlockCreate) SetRarity(v string) *AchievementUnlockCreate {
	_c.mutation.SetRarity(v)
	return _c
}

// SetUnlockedAt sets the "unlocked_at" field.
func (_c *AchievementUnlockCreate) SetUnlockedAt(v time.Time) *AchievementUnlockCreate {
	_c.mutation.SetUnlockedAt(v)
	return _c
}

// SetNillableUnlockedAt sets the "unlocked_at" field if the given value is not nil.
func (_c *AchievementUnlockCreate) SetNillableUnlockedAt(v *time.Time) *AchievementUnlockCreate {
	if v != nil {
		_c.SetUnlockedAt(*v)
	}
	return _c
}

// Mutation returns the AchievementUnlockMutation object of the builder.
func (_c *AchievementUnlockCreate) Mutation() *AchievementUnlockMutation {
	return _c.mutation
}

// Save creates the AchievementUnlock in the database.
func (_c *AchievementUnlockCreate) Save(ctx context.Context) (*AchievementUnlock, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AchievementUnlockCreate) SaveX(ctx context.Context) *AchievementUnlock {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AchievementUnlockCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AchievementUnlockCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AchievementUnlockCreate) defaults() {
	if _, ok := _c.mutation.Description(); !ok {
		v := achievementunlock.DefaultDescription
		_c.mutation.SetDescription(v)
	}
	if _, ok := _c.mutation.Icon(); !ok {
		v := achievementunlock.DefaultIcon
		_c.mutation.SetIcon(v)
	}
	if _, ok := _c.mutation.UnlockedAt(); !ok {
		v := achievementunlock.DefaultUnlockedAt()
		_c.mutation.SetUnlockedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AchievementUnlockCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "AchievementUnlock.owner_id"`)}
	}
	if v, ok := _c.mutation.OwnerID(); ok {
		if err := achievementunlock.OwnerIDValidator(v); err != nil {
			return &ValidationError{Name: "owner_id", err: fmt.Errorf(`ent: validator failed for field "AchievementUnlock.owner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AchievementType(); !ok {
		return &ValidationError{Name: "achievement_type", err: errors.New(`ent: missing required field "AchievementUnlock.achievement_type"`)}
	}
	if v, ok := _c.mutation.AchievementType(); ok {
		if err := achievementunlock.AchievementTypeValidator(v); err != nil {
			return &ValidationError{Name: "achievement_type", err: fmt.Errorf(`ent: validator failed for field "AchievementUnlock.achievement_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "AchievementUnlock.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := achievementunlock.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "AchievementUnlock.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "AchievementUnlock.description"`)}
	}
	if _, ok := _c.mutation.Icon(); !ok {
		return &ValidationError{Name: "icon", err: errors.New(`ent: missing required field "AchievementUnlock.icon"`)}
	}
	if _, ok := _c.mutation.Rarity(); !ok {
		return &ValidationError{Name: "rarity", err: errors.New(`ent: missing required field "AchievementUnlock.rarity"`)}
	}
	if v, ok := _c.mutation.Rarity(); ok {
		if err := achievementunlock.RarityValidator(v); err != nil {
			return &ValidationError{Name: "rarity", err: fmt.Errorf(`ent: validator failed for field "AchievementUnlock.rarity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UnlockedAt(); !ok {
		return &ValidationError{Name: "unlocked_at", err: errors.New(`ent: missing required field "AchievementUnlock.unlocked_at"`)}
	}
	return nil
}

func (_c *AchievementUnlockCreate) sqlSave(ctx context.Context) (*AchievementUnlock, error) {
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

func (_c *AchievementUnlockCreate) createSpec() (*AchievementUnlock, *sqlgraph.CreateSpec) {
	var (
		_node = &AchievementUnlock{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(achievementunlock.Table, sqlgraph.NewFieldSpec(achievementunlock.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(achievementunlock.FieldOwnerID, field.TypeString, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.AchievementType(); ok {
		_spec.SetField(achievementunlock.FieldAchievementType, field.TypeString, value)
		_node.AchievementType = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(achievementunlock.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(achievementunlock.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Icon(); ok {
		_spec.SetField(achievementunlock.FieldIcon, field.TypeString, value)
		_node.Icon = value
	}
	if value, ok := _c.mutation.Rarity(); ok {
		_spec.SetField(achievementunlock.FieldRarity, field.TypeString, value)
		_node.Rarity = value
	}
	if value, ok := _c.mutation.UnlockedAt(); ok {
		_spec.SetField(achievementunlock.FieldUnlockedAt, field.TypeTime, value)
		_node.UnlockedAt = value
	}
	return _node, _spec
}

// AchievementUnlockCreateBulk is the builder for creating many AchievementUnlock entities in bulk.
type AchievementUnlockCreateBulk struct {
	config
	err      error
	builders []*AchievementUnlockCreate
}

// Save creates the AchievementUnlock entities in the database.
func (_c *AchievementUnlockCreateBulk) Save(ctx context.Context) ([]*AchievementUnlock, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AchievementUnlock, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AchievementUnlockMutation)
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
func (_c *AchievementUnlockCreateBulk) SaveX(ctx context.Context) []*AchievementUnlock {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AchievementUnlockCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AchievementUnlockCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
