// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/prepmate/engine/ent/submissionevent"
)

// SubmissionEventCreate is the builder for creating a SubmissionEvent entity.
type SubmissionEventCreate struct {
	config
	mutation *SubmissionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *SubmissionEventCreate) SetSequence(v int64) *SubmissionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *SubmissionEventCreate) SetTimestamp(v time.Time) *SubmissionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *SubmissionEventCreate) SetNillableTimestamp(v *time.Time) *SubmissionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetOwnerID sets the "owner_id" field.
func (_c *SubmissionEventCreate) SetOwnerID(v string) *SubmissionEventCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *SubmissionEventCreate) SetQuestionID(v string) *SubmissionEventCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *SubmissionEventCreate) SetSubject(v string) *SubmissionEventCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_c *SubmissionEventCreate) SetNillableSubject(v *string) *SubmissionEventCreate {
	if v != nil {
		_c.SetSubject(*v)
	}
	return _c
}

// SetAnswerText sets the "answer_text" field.
func (_c *SubmissionEventCreate) SetAnswerText(v string) *SubmissionEventCreate {
	_c.mutation.SetAnswerText(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *SubmissionEventCreate) SetScore(v float64) *SubmissionEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *SubmissionEventCreate) SetNillableScore(v *float64) *SubmissionEventCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// Mutation returns the SubmissionEventMutation object of the builder.
func (_c *SubmissionEventCreate) Mutation() *SubmissionEventMutation {
	return _c.mutation
}

// Save creates the SubmissionEvent in the database.
func (_c *SubmissionEventCreate) Save(ctx context.Context) (*SubmissionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SubmissionEventCreate) SaveX(ctx context.Context) *SubmissionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubmissionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubmissionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SubmissionEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := submissionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Subject(); !ok {
		v := submissionevent.DefaultSubject
		_c.mutation.SetSubject(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SubmissionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "SubmissionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "SubmissionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "SubmissionEvent.owner_id"`)}
	}
	if v, ok := _c.mutation.OwnerID(); ok {
		if err := submissionevent.OwnerIDValidator(v); err != nil {
			return &ValidationError{Name: "owner_id", err: fmt.Errorf(`ent: validator failed for field "SubmissionEvent.owner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "SubmissionEvent.question_id"`)}
	}
	if v, ok := _c.mutation.QuestionID(); ok {
		if err := submissionevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "SubmissionEvent.question_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "SubmissionEvent.subject"`)}
	}
	if _, ok := _c.mutation.AnswerText(); !ok {
		return &ValidationError{Name: "answer_text", err: errors.New(`ent: missing required field "SubmissionEvent.answer_text"`)}
	}
	return nil
}

func (_c *SubmissionEventCreate) sqlSave(ctx context.Context) (*SubmissionEvent, error) {
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

func (_c *SubmissionEventCreate) createSpec() (*SubmissionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &SubmissionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(submissionevent.Table, sqlgraph.NewFieldSpec(submissionevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(submissionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(submissionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(submissionevent.FieldOwnerID, field.TypeString, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(submissionevent.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(submissionevent.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.AnswerText(); ok {
		_spec.SetField(submissionevent.FieldAnswerText, field.TypeString, value)
		_node.AnswerText = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(submissionevent.FieldScore, field.TypeFloat64, value)
		_node.Score = &value
	}
	return _node, _spec
}

// SubmissionEventCreateBulk is the builder for creating many SubmissionEvent entities in bulk.
type SubmissionEventCreateBulk struct {
	config
	err      error
	builders []*SubmissionEventCreate
}

// Save creates the SubmissionEvent entities in the database.
func (_c *SubmissionEventCreateBulk) Save(ctx context.Context) ([]*SubmissionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SubmissionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubmissionEventMutation)
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
func (_c *SubmissionEventCreateBulk) SaveX(ctx context.Context) []*SubmissionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubmissionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubmissionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
