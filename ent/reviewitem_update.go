// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/prepmate/engine/ent/predicate"
	"github.com/prepmate/engine/ent/reviewitem"
)

// ReviewItemUpdate is the builder for updating ReviewItem entities.
type ReviewItemUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewItemMutation
}

// Where appends a list predicates to the ReviewItemUpdate builder.
func (_u *ReviewItemUpdate) Where(ps ...predicate.ReviewItem) *ReviewItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuestion sets the "question" field.
func (_u *ReviewItemUpdate) SetQuestion(v string) *ReviewItemUpdate {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *ReviewItemUpdate) SetNillableQuestion(v *string) *ReviewItemUpdate {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *ReviewItemUpdate) SetAnswer(v string) *ReviewItemUpdate {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *ReviewItemUpdate) SetNillableAnswer(v *string) *ReviewItemUpdate {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ReviewItemUpdate) SetDifficulty(v string) *ReviewItemUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ReviewItemUpdate) SetNillableDifficulty(v *string) *ReviewItemUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetHint sets the "hint" field.
func (_u *ReviewItemUpdate) SetHint(v string) *ReviewItemUpdate {
	_u.mutation.SetHint(v)
	return _u
}

// SetNillableHint sets the "hint" field if the given value is not nil.
func (_u *ReviewItemUpdate) SetNillableHint(v *string) *ReviewItemUpdate {
	if v != nil {
		_u.SetHint(*v)
	}
	return _u
}

// ClearHint clears the value of the "hint" field.
func (_u *ReviewItemUpdate) ClearHint() *ReviewItemUpdate {
	_u.mutation.ClearHint()
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ReviewItemUpdate) SetIntervalDays(v int) *ReviewItemUpdate {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ReviewItemUpdate) SetNillableIntervalDays(v *int) *ReviewItemUpdate {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ReviewItemUpdate) AddIntervalDays(v int) *ReviewItemUpdate {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetNextReviewAt sets the "next_review_at" field.
func (_u *ReviewItemUpdate) SetNextReviewAt(v time.Time) *ReviewItemUpdate {
	_u.mutation.SetNextReviewAt(v)
	return _u
}

// SetNillableNextReviewAt sets the "next_review_at" field if the given value is not nil.
func (_u *ReviewItemUpdate) SetNillableNextReviewAt(v *time.Time) *ReviewItemUpdate {
	if v != nil {
		_u.SetNextReviewAt(*v)
	}
	return _u
}

// SetReviewCount sets the "review_count" field.
func (_u *ReviewItemUpdate) SetReviewCount(v int) *ReviewItemUpdate {
	_u.mutation.ResetReviewCount()
	_u.mutation.SetReviewCount(v)
	return _u
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_u *ReviewItemUpdate) SetNillableReviewCount(v *int) *ReviewItemUpdate {
	if v != nil {
		_u.SetReviewCount(*v)
	}
	return _u
}

// AddReviewCount adds value to the "review_count" field.
func (_u *ReviewItemUpdate) AddReviewCount(v int) *ReviewItemUpdate {
	_u.mutation.AddReviewCount(v)
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *ReviewItemUpdate) SetCorrectCount(v int) *ReviewItemUpdate {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *ReviewItemUpdate) SetNillableCorrectCount(v *int) *ReviewItemUpdate {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *ReviewItemUpdate) AddCorrectCount(v int) *ReviewItemUpdate {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (_u *ReviewItemUpdate) SetLastReviewedAt(v time.Time) *ReviewItemUpdate {
	_u.mutation.SetLastReviewedAt(v)
	return _u
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (_u *ReviewItemUpdate) SetNillableLastReviewedAt(v *time.Time) *ReviewItemUpdate {
	if v != nil {
		_u.SetLastReviewedAt(*v)
	}
	return _u
}

// ClearLastReviewedAt clears the value of the "last_reviewed_at" field.
func (_u *ReviewItemUpdate) ClearLastReviewedAt() *ReviewItemUpdate {
	_u.mutation.ClearLastReviewedAt()
	return _u
}

// Mutation returns the ReviewItemMutation object of the builder.
func (_u *ReviewItemUpdate) Mutation() *ReviewItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReviewItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReviewItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewItemUpdate) check() error {
	if v, ok := _u.mutation.Question(); ok {
		if err := reviewitem.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.question": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Answer(); ok {
		if err := reviewitem.AnswerValidator(v); err != nil {
			return &ValidationError{Name: "answer", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.answer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IntervalDays(); ok {
		if err := reviewitem.IntervalDaysValidator(v); err != nil {
			return &ValidationError{Name: "interval_days", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.interval_days": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewitem.Table, reviewitem.Columns, sqlgraph.NewFieldSpec(reviewitem.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(reviewitem.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(reviewitem.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(reviewitem.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Hint(); ok {
		_spec.SetField(reviewitem.FieldHint, field.TypeString, value)
	}
	if _u.mutation.HintCleared() {
		_spec.ClearField(reviewitem.FieldHint, field.TypeString)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(reviewitem.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(reviewitem.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextReviewAt(); ok {
		_spec.SetField(reviewitem.FieldNextReviewAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ReviewCount(); ok {
		_spec.SetField(reviewitem.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewCount(); ok {
		_spec.AddField(reviewitem.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(reviewitem.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(reviewitem.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastReviewedAt(); ok {
		_spec.SetField(reviewitem.FieldLastReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.LastReviewedAtCleared() {
		_spec.ClearField(reviewitem.FieldLastReviewedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReviewItemUpdateOne is the builder for updating a single ReviewItem entity.
type ReviewItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewItemMutation
}

// SetQuestion sets the "question" field.
func (_u *ReviewItemUpdateOne) SetQuestion(v string) *ReviewItemUpdateOne {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *ReviewItemUpdateOne) SetNillableQuestion(v *string) *ReviewItemUpdateOne {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *ReviewItemUpdateOne) SetAnswer(v string) *ReviewItemUpdateOne {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *ReviewItemUpdateOne) SetNillableAnswer(v *string) *ReviewItemUpdateOne {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ReviewItemUpdateOne) SetDifficulty(v string) *ReviewItemUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ReviewItemUpdateOne) SetNillableDifficulty(v *string) *ReviewItemUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetHint sets the "hint" field.
func (_u *ReviewItemUpdateOne) SetHint(v string) *ReviewItemUpdateOne {
	_u.mutation.SetHint(v)
	return _u
}

// SetNillableHint sets the "hint" field if the given value is not nil.
func (_u *ReviewItemUpdateOne) SetNillableHint(v *string) *ReviewItemUpdateOne {
	if v != nil {
		_u.SetHint(*v)
	}
	return _u
}

// ClearHint clears the value of the "hint" field.
func (_u *ReviewItemUpdateOne) ClearHint() *ReviewItemUpdateOne {
	_u.mutation.ClearHint()
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ReviewItemUpdateOne) SetIntervalDays(v int) *ReviewItemUpdateOne {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ReviewItemUpdateOne) SetNillableIntervalDays(v *int) *ReviewItemUpdateOne {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ReviewItemUpdateOne) AddIntervalDays(v int) *ReviewItemUpdateOne {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetNextReviewAt sets the "next_review_at" field.
func (_u *ReviewItemUpdateOne) SetNextReviewAt(v time.Time) *ReviewItemUpdateOne {
	_u.mutation.SetNextReviewAt(v)
	return _u
}

// SetNillableNextReviewAt sets the "next_review_at" field if the given value is not nil.
func (_u *ReviewItemUpdateOne) SetNillableNextReviewAt(v *time.Time) *ReviewItemUpdateOne {
	if v != nil {
		_u.SetNextReviewAt(*v)
	}
	return _u
}

// SetReviewCount sets the "review_count" field.
func (_u *ReviewItemUpdateOne) SetReviewCount(v int) *ReviewItemUpdateOne {
	_u.mutation.ResetReviewCount()
	_u.mutation.SetReviewCount(v)
	return _u
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_u *ReviewItemUpdateOne) SetNillableReviewCount(v *int) *ReviewItemUpdateOne {
	if v != nil {
		_u.SetReviewCount(*v)
	}
	return _u
}

// AddReviewCount adds value to the "review_count" field.
func (_u *ReviewItemUpdateOne) AddReviewCount(v int) *ReviewItemUpdateOne {
	_u.mutation.AddReviewCount(v)
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *ReviewItemUpdateOne) SetCorrectCount(v int) *ReviewItemUpdateOne {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *ReviewItemUpdateOne) SetNillableCorrectCount(v *int) *ReviewItemUpdateOne {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *ReviewItemUpdateOne) AddCorrectCount(v int) *ReviewItemUpdateOne {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (_u *ReviewItemUpdateOne) SetLastReviewedAt(v time.Time) *ReviewItemUpdateOne {
	_u.mutation.SetLastReviewedAt(v)
	return _u
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (_u *ReviewItemUpdateOne) SetNillableLastReviewedAt(v *time.Time) *ReviewItemUpdateOne {
	if v != nil {
		_u.SetLastReviewedAt(*v)
	}
	return _u
}

// ClearLastReviewedAt clears the value of the "last_reviewed_at" field.
func (_u *ReviewItemUpdateOne) ClearLastReviewedAt() *ReviewItemUpdateOne {
	_u.mutation.ClearLastReviewedAt()
	return _u
}

// Mutation returns the ReviewItemMutation object of the builder.
func (_u *ReviewItemUpdateOne) Mutation() *ReviewItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReviewItemUpdate builder.
func (_u *ReviewItemUpdateOne) Where(ps ...predicate.ReviewItem) *ReviewItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReviewItemUpdateOne) Select(field string, fields ...string) *ReviewItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReviewItem entity.
func (_u *ReviewItemUpdateOne) Save(ctx context.Context) (*ReviewItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewItemUpdateOne) SaveX(ctx context.Context) *ReviewItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReviewItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewItemUpdateOne) check() error {
	if v, ok := _u.mutation.Question(); ok {
		if err := reviewitem.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.question": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Answer(); ok {
		if err := reviewitem.AnswerValidator(v); err != nil {
			return &ValidationError{Name: "answer", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.answer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IntervalDays(); ok {
		if err := reviewitem.IntervalDaysValidator(v); err != nil {
			return &ValidationError{Name: "interval_days", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.interval_days": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewItemUpdateOne) sqlSave(ctx context.Context) (_node *ReviewItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewitem.Table, reviewitem.Columns, sqlgraph.NewFieldSpec(reviewitem.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReviewItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reviewitem.FieldID)
		for _, f := range fields {
			if !reviewitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reviewitem.FieldID {
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
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(reviewitem.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(reviewitem.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(reviewitem.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Hint(); ok {
		_spec.SetField(reviewitem.FieldHint, field.TypeString, value)
	}
	if _u.mutation.HintCleared() {
		_spec.ClearField(reviewitem.FieldHint, field.TypeString)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(reviewitem.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(reviewitem.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextReviewAt(); ok {
		_spec.SetField(reviewitem.FieldNextReviewAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ReviewCount(); ok {
		_spec.SetField(reviewitem.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewCount(); ok {
		_spec.AddField(reviewitem.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(reviewitem.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(reviewitem.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastReviewedAt(); ok {
		_spec.SetField(reviewitem.FieldLastReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.LastReviewedAtCleared() {
		_spec.ClearField(reviewitem.FieldLastReviewedAt, field.TypeTime)
	}
	_node = &ReviewItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
