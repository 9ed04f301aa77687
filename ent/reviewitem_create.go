// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/prepmate/engine/ent/reviewitem"
)

// ReviewItemCreate is the builder for creating a ReviewItem entity.
type ReviewItemCreate struct {
	config
	mutation *ReviewItemMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *ReviewItemCreate) SetOwnerID(v string) *ReviewItemCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetItemID sets the "item_id" field.
func (_c *ReviewItemCreate) SetItemID(v string) *ReviewItemCreate {
	_c.mutation.SetItemID(v)
	return _c
}

// SetQuestion sets the "question" field.
func (_c *ReviewItemCreate) SetQuestion(v string) *ReviewItemCreate {
	_c.mutation.SetQuestion(v)
	return _c
}

// SetAnswer sets the "answer" field.
func (_c *ReviewItemCreate) SetAnswer(v string) *ReviewItemCreate {
	_c.mutation.SetAnswer(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *ReviewItemCreate) SetDifficulty(v string) *ReviewItemCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_c *ReviewItemCreate) SetNillableDifficulty(v *string) *ReviewItemCreate {
	if v != nil {
		_c.SetDifficulty(*v)
	}
	return _c
}

// SetHint sets the "hint" field.
func (_c *ReviewItemCreate) SetHint(v string) *ReviewItemCreate {
	_c.mutation.SetHint(v)
	return _c
}

// SetNillableHint sets the "hint" field if the given value is not nil.
func (_c *ReviewItemCreate) SetNillableHint(v *string) *ReviewItemCreate {
	if v != nil {
		_c.SetHint(*v)
	}
	return _c
}

// SetIntervalDays sets the "interval_days" field.
func (_c *ReviewItemCreate) SetIntervalDays(v int) *ReviewItemCreate {
	_c.mutation.SetIntervalDays(v)
	return _c
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_c *ReviewItemCreate) SetNillableIntervalDays(v *int) *ReviewItemCreate {
	if v != nil {
		_c.SetIntervalDays(*v)
	}
	return _c
}

// SetNextReviewAt sets the "next_review_at" field.
func (_c *ReviewItemCreate) SetNextReviewAt(v time.Time) *ReviewItemCreate {
	_c.mutation.SetNextReviewAt(v)
	return _c
}

// SetNillableNextReviewAt sets the "next_review_at" field if the given value is not nil.
func (_c *ReviewItemCreate) SetNillableNextReviewAt(v *time.Time) *ReviewItemCreate {
	if v != nil {
		_c.SetNextReviewAt(*v)
	}
	return _c
}

// SetReviewCount sets the "review_count" field.
func (_c *ReviewItemCreate) SetReviewCount(v int) *ReviewItemCreate {
	_c.mutation.SetReviewCount(v)
	return _c
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_c *ReviewItemCreate) SetNillableReviewCount(v *int) *ReviewItemCreate {
	if v != nil {
		_c.SetReviewCount(*v)
	}
	return _c
}

// SetCorrectCount sets the "correct_count" field.
func (_c *ReviewItemCreate) SetCorrectCount(v int) *ReviewItemCreate {
	_c.mutation.SetCorrectCount(v)
	return _c
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_c *ReviewItemCreate) SetNillableCorrectCount(v *int) *ReviewItemCreate {
	if v != nil {
		_c.SetCorrectCount(*v)
	}
	return _c
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (_c *ReviewItemCreate) SetLastReviewedAt(v time.Time) *ReviewItemCreate {
	_c.mutation.SetLastReviewedAt(v)
	return _c
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (_c *ReviewItemCreate) SetNillableLastReviewedAt(v *time.Time) *ReviewItemCreate {
	if v != nil {
		_c.SetLastReviewedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReviewItemCreate) SetCreatedAt(v time.Time) *ReviewItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReviewItemCreate) SetNillableCreatedAt(v *time.Time) *ReviewItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the ReviewItemMutation object of the builder.
func (_c *ReviewItemCreate) Mutation() *ReviewItemMutation {
	return _c.mutation
}

// Save creates the ReviewItem in the database.
func (_c *ReviewItemCreate) Save(ctx context.Context) (*ReviewItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReviewItemCreate) SaveX(ctx context.Context) *ReviewItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReviewItemCreate) defaults() {
	if _, ok := _c.mutation.Difficulty(); !ok {
		v := reviewitem.DefaultDifficulty
		_c.mutation.SetDifficulty(v)
	}
	if _, ok := _c.mutation.IntervalDays(); !ok {
		v := reviewitem.DefaultIntervalDays
		_c.mutation.SetIntervalDays(v)
	}
	if _, ok := _c.mutation.NextReviewAt(); !ok {
		v := reviewitem.DefaultNextReviewAt()
		_c.mutation.SetNextReviewAt(v)
	}
	if _, ok := _c.mutation.ReviewCount(); !ok {
		v := reviewitem.DefaultReviewCount
		_c.mutation.SetReviewCount(v)
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		v := reviewitem.DefaultCorrectCount
		_c.mutation.SetCorrectCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := reviewitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReviewItemCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "ReviewItem.owner_id"`)}
	}
	if v, ok := _c.mutation.OwnerID(); ok {
		if err := reviewitem.OwnerIDValidator(v); err != nil {
			return &ValidationError{Name: "owner_id", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.owner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "ReviewItem.item_id"`)}
	}
	if v, ok := _c.mutation.ItemID(); ok {
		if err := reviewitem.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.item_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Question(); !ok {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required field "ReviewItem.question"`)}
	}
	if v, ok := _c.mutation.Question(); ok {
		if err := reviewitem.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.question": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Answer(); !ok {
		return &ValidationError{Name: "answer", err: errors.New(`ent: missing required field "ReviewItem.answer"`)}
	}
	if v, ok := _c.mutation.Answer(); ok {
		if err := reviewitem.AnswerValidator(v); err != nil {
			return &ValidationError{Name: "answer", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.answer": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "ReviewItem.difficulty"`)}
	}
	if _, ok := _c.mutation.IntervalDays(); !ok {
		return &ValidationError{Name: "interval_days", err: errors.New(`ent: missing required field "ReviewItem.interval_days"`)}
	}
	if v, ok := _c.mutation.IntervalDays(); ok {
		if err := reviewitem.IntervalDaysValidator(v); err != nil {
			return &ValidationError{Name: "interval_days", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.interval_days": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NextReviewAt(); !ok {
		return &ValidationError{Name: "next_review_at", err: errors.New(`ent: missing required field "ReviewItem.next_review_at"`)}
	}
	if _, ok := _c.mutation.ReviewCount(); !ok {
		return &ValidationError{Name: "review_count", err: errors.New(`ent: missing required field "ReviewItem.review_count"`)}
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		return &ValidationError{Name: "correct_count", err: errors.New(`ent: missing required field "ReviewItem.correct_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ReviewItem.created_at"`)}
	}
	return nil
}

func (_c *ReviewItemCreate) sqlSave(ctx context.Context) (*ReviewItem, error) {
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

func (_c *ReviewItemCreate) createSpec() (*ReviewItem, *sqlgraph.CreateSpec) {
	var (
		_node = &ReviewItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reviewitem.Table, sqlgraph.NewFieldSpec(reviewitem.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(reviewitem.FieldOwnerID, field.TypeString, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.ItemID(); ok {
		_spec.SetField(reviewitem.FieldItemID, field.TypeString, value)
		_node.ItemID = value
	}
	if value, ok := _c.mutation.Question(); ok {
		_spec.SetField(reviewitem.FieldQuestion, field.TypeString, value)
		_node.Question = value
	}
	if value, ok := _c.mutation.Answer(); ok {
		_spec.SetField(reviewitem.FieldAnswer, field.TypeString, value)
		_node.Answer = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(reviewitem.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Hint(); ok {
		_spec.SetField(reviewitem.FieldHint, field.TypeString, value)
		_node.Hint = &value
	}
	if value, ok := _c.mutation.IntervalDays(); ok {
		_spec.SetField(reviewitem.FieldIntervalDays, field.TypeInt, value)
		_node.IntervalDays = value
	}
	if value, ok := _c.mutation.NextReviewAt(); ok {
		_spec.SetField(reviewitem.FieldNextReviewAt, field.TypeTime, value)
		_node.NextReviewAt = value
	}
	if value, ok := _c.mutation.ReviewCount(); ok {
		_spec.SetField(reviewitem.FieldReviewCount, field.TypeInt, value)
		_node.ReviewCount = value
	}
	if value, ok := _c.mutation.CorrectCount(); ok {
		_spec.SetField(reviewitem.FieldCorrectCount, field.TypeInt, value)
		_node.CorrectCount = value
	}
	if value, ok := _c.mutation.LastReviewedAt(); ok {
		_spec.SetField(reviewitem.FieldLastReviewedAt, field.TypeTime, value)
		_node.LastReviewedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(reviewitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ReviewItemCreateBulk is the builder for creating many ReviewItem entities in bulk.
type ReviewItemCreateBulk struct {
	config
	err      error
	builders []*ReviewItemCreate
}

// Save creates the ReviewItem entities in the database.
func (_c *ReviewItemCreateBulk) Save(ctx context.Context) ([]*ReviewItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReviewItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReviewItemMutation)
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
func (_c *ReviewItemCreateBulk) SaveX(ctx context.Context) []*ReviewItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
