// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/prepmate/engine/ent/pointevent"
)

// PointEventCreate is the builder for creating a PointEvent entity.
type PointEventCreate struct {
	config
	mutation *PointEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *PointEventCreate) SetSequence(v int64) *PointEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *PointEventCreate) SetTimestamp(v time.Time) *PointEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *PointEventCreate) SetNillableTimestamp(v *time.Time) *PointEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetOwnerID sets the "owner_id" field.
func (_c *PointEventCreate) SetOwnerID(v string) *PointEventCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetAmount sets the "amount" field.
func (_c *PointEventCreate) SetAmount(v int) *PointEventCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetActionType sets the "action_type" field.
func (_c *PointEventCreate) SetActionType(v string) *PointEventCreate {
	_c.mutation.SetActionType(v)
	return _c
}

// SetReferenceID sets the "reference_id" field.
func (_c *PointEventCreate) SetReferenceID(v string) *PointEventCreate {
	_c.mutation.SetReferenceID(v)
	return _c
}

// SetNillableReferenceID sets the "reference_id" field if the given value is not nil.
func (_c *PointEventCreate) SetNillableReferenceID(v *string) *PointEventCreate {
	if v != nil {
		_c.SetReferenceID(*v)
	}
	return _c
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_c *PointEventCreate) SetIdempotencyKey(v string) *PointEventCreate {
	_c.mutation.SetIdempotencyKey(v)
	return _c
}

// SetNillableIdempotencyKey sets the "idempotency_key" field if the given value is not nil.
func (_c *PointEventCreate) SetNillableIdempotencyKey(v *string) *PointEventCreate {
	if v != nil {
		_c.SetIdempotencyKey(*v)
	}
	return _c
}

// Mutation returns the PointEventMutation object of the builder.
func (_c *PointEventCreate) Mutation() *PointEventMutation {
	return _c.mutation
}

// Save creates the PointEvent in the database.
func (_c *PointEventCreate) Save(ctx context.Context) (*PointEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PointEventCreate) SaveX(ctx context.Context) *PointEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PointEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PointEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PointEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := pointevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PointEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "PointEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "PointEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "PointEvent.owner_id"`)}
	}
	if v, ok := _c.mutation.OwnerID(); ok {
		if err := pointevent.OwnerIDValidator(v); err != nil {
			return &ValidationError{Name: "owner_id", err: fmt.Errorf(`ent: validator failed for field "PointEvent.owner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "PointEvent.amount"`)}
	}
	if _, ok := _c.mutation.ActionType(); !ok {
		return &ValidationError{Name: "action_type", err: errors.New(`ent: missing required field "PointEvent.action_type"`)}
	}
	if v, ok := _c.mutation.ActionType(); ok {
		if err := pointevent.ActionTypeValidator(v); err != nil {
			return &ValidationError{Name: "action_type", err: fmt.Errorf(`ent: validator failed for field "PointEvent.action_type": %w`, err)}
		}
	}
	return nil
}

func (_c *PointEventCreate) sqlSave(ctx context.Context) (*PointEvent, error) {
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

func (_c *PointEventCreate) createSpec() (*PointEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &PointEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pointevent.Table, sqlgraph.NewFieldSpec(pointevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(pointevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(pointevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(pointevent.FieldOwnerID, field.TypeString, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(pointevent.FieldAmount, field.TypeInt, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.ActionType(); ok {
		_spec.SetField(pointevent.FieldActionType, field.TypeString, value)
		_node.ActionType = value
	}
	if value, ok := _c.mutation.ReferenceID(); ok {
		_spec.SetField(pointevent.FieldReferenceID, field.TypeString, value)
		_node.ReferenceID = &value
	}
	if value, ok := _c.mutation.IdempotencyKey(); ok {
		_spec.SetField(pointevent.FieldIdempotencyKey, field.TypeString, value)
		_node.IdempotencyKey = &value
	}
	return _node, _spec
}

// PointEventCreateBulk is the builder for creating many PointEvent entities in bulk.
type PointEventCreateBulk struct {
	config
	err      error
	builders []*PointEventCreate
}

// Save creates the PointEvent entities in the database.
func (_c *PointEventCreateBulk) Save(ctx context.Context) ([]*PointEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PointEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PointEventMutation)
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
func (_c *PointEventCreateBulk) SaveX(ctx context.Context) []*PointEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PointEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PointEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
