// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Wachary/BioPlus-AI-1.1/ent/diagnosisevent"
	"github.com/Wachary/BioPlus-AI-1.1/ent/predicate"
)

// DiagnosisEventUpdate is the builder for updating DiagnosisEvent entities.
type DiagnosisEventUpdate struct {
	config
	hooks    []Hook
	mutation *DiagnosisEventMutation
}

// Where appends a list predicates to the DiagnosisEventUpdate builder.
func (_u *DiagnosisEventUpdate) Where(ps ...predicate.DiagnosisEvent) *DiagnosisEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *DiagnosisEventUpdate) SetSessionID(v string) *DiagnosisEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *DiagnosisEventUpdate) SetNillableSessionID(v *string) *DiagnosisEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetCondition sets the "condition" field.
func (_u *DiagnosisEventUpdate) SetCondition(v string) *DiagnosisEventUpdate {
	_u.mutation.SetCondition(v)
	return _u
}

// SetNillableCondition sets the "condition" field if the given value is not nil.
func (_u *DiagnosisEventUpdate) SetNillableCondition(v *string) *DiagnosisEventUpdate {
	if v != nil {
		_u.SetCondition(*v)
	}
	return _u
}

// SetSimilarity sets the "similarity" field.
func (_u *DiagnosisEventUpdate) SetSimilarity(v float64) *DiagnosisEventUpdate {
	_u.mutation.ResetSimilarity()
	_u.mutation.SetSimilarity(v)
	return _u
}

// SetNillableSimilarity sets the "similarity" field if the given value is not nil.
func (_u *DiagnosisEventUpdate) SetNillableSimilarity(v *float64) *DiagnosisEventUpdate {
	if v != nil {
		_u.SetSimilarity(*v)
	}
	return _u
}

// AddSimilarity adds value to the "similarity" field.
func (_u *DiagnosisEventUpdate) AddSimilarity(v float64) *DiagnosisEventUpdate {
	_u.mutation.AddSimilarity(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *DiagnosisEventUpdate) SetConfidence(v int) *DiagnosisEventUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *DiagnosisEventUpdate) SetNillableConfidence(v *int) *DiagnosisEventUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *DiagnosisEventUpdate) AddConfidence(v int) *DiagnosisEventUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetRank sets the "rank" field.
func (_u *DiagnosisEventUpdate) SetRank(v int) *DiagnosisEventUpdate {
	_u.mutation.ResetRank()
	_u.mutation.SetRank(v)
	return _u
}

// SetNillableRank sets the "rank" field if the given value is not nil.
func (_u *DiagnosisEventUpdate) SetNillableRank(v *int) *DiagnosisEventUpdate {
	if v != nil {
		_u.SetRank(*v)
	}
	return _u
}

// AddRank adds value to the "rank" field.
func (_u *DiagnosisEventUpdate) AddRank(v int) *DiagnosisEventUpdate {
	_u.mutation.AddRank(v)
	return _u
}

// SetRecommendationCount sets the "recommendation_count" field.
func (_u *DiagnosisEventUpdate) SetRecommendationCount(v int) *DiagnosisEventUpdate {
	_u.mutation.ResetRecommendationCount()
	_u.mutation.SetRecommendationCount(v)
	return _u
}

// SetNillableRecommendationCount sets the "recommendation_count" field if the given value is not nil.
func (_u *DiagnosisEventUpdate) SetNillableRecommendationCount(v *int) *DiagnosisEventUpdate {
	if v != nil {
		_u.SetRecommendationCount(*v)
	}
	return _u
}

// AddRecommendationCount adds value to the "recommendation_count" field.
func (_u *DiagnosisEventUpdate) AddRecommendationCount(v int) *DiagnosisEventUpdate {
	_u.mutation.AddRecommendationCount(v)
	return _u
}

// Mutation returns the DiagnosisEventMutation object of the builder.
func (_u *DiagnosisEventUpdate) Mutation() *DiagnosisEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DiagnosisEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DiagnosisEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DiagnosisEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DiagnosisEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DiagnosisEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := diagnosisevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "DiagnosisEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Condition(); ok {
		if err := diagnosisevent.ConditionValidator(v); err != nil {
			return &ValidationError{Name: "condition", err: fmt.Errorf(`ent: validator failed for field "DiagnosisEvent.condition": %w`, err)}
		}
	}
	return nil
}

func (_u *DiagnosisEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(diagnosisevent.Table, diagnosisevent.Columns, sqlgraph.NewFieldSpec(diagnosisevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(diagnosisevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Condition(); ok {
		_spec.SetField(diagnosisevent.FieldCondition, field.TypeString, value)
	}
	if value, ok := _u.mutation.Similarity(); ok {
		_spec.SetField(diagnosisevent.FieldSimilarity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSimilarity(); ok {
		_spec.AddField(diagnosisevent.FieldSimilarity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(diagnosisevent.FieldConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(diagnosisevent.FieldConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Rank(); ok {
		_spec.SetField(diagnosisevent.FieldRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRank(); ok {
		_spec.AddField(diagnosisevent.FieldRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RecommendationCount(); ok {
		_spec.SetField(diagnosisevent.FieldRecommendationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecommendationCount(); ok {
		_spec.AddField(diagnosisevent.FieldRecommendationCount, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{diagnosisevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DiagnosisEventUpdateOne is the builder for updating a single DiagnosisEvent entity.
type DiagnosisEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DiagnosisEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *DiagnosisEventUpdateOne) SetSessionID(v string) *DiagnosisEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *DiagnosisEventUpdateOne) SetNillableSessionID(v *string) *DiagnosisEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetCondition sets the "condition" field.
func (_u *DiagnosisEventUpdateOne) SetCondition(v string) *DiagnosisEventUpdateOne {
	_u.mutation.SetCondition(v)
	return _u
}

// SetNillableCondition sets the "condition" field if the given value is not nil.
func (_u *DiagnosisEventUpdateOne) SetNillableCondition(v *string) *DiagnosisEventUpdateOne {
	if v != nil {
		_u.SetCondition(*v)
	}
	return _u
}

// SetSimilarity sets the "similarity" field.
func (_u *DiagnosisEventUpdateOne) SetSimilarity(v float64) *DiagnosisEventUpdateOne {
	_u.mutation.ResetSimilarity()
	_u.mutation.SetSimilarity(v)
	return _u
}

// SetNillableSimilarity sets the "similarity" field if the given value is not nil.
func (_u *DiagnosisEventUpdateOne) SetNillableSimilarity(v *float64) *DiagnosisEventUpdateOne {
	if v != nil {
		_u.SetSimilarity(*v)
	}
	return _u
}

// AddSimilarity adds value to the "similarity" field.
func (_u *DiagnosisEventUpdateOne) AddSimilarity(v float64) *DiagnosisEventUpdateOne {
	_u.mutation.AddSimilarity(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *DiagnosisEventUpdateOne) SetConfidence(v int) *DiagnosisEventUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *DiagnosisEventUpdateOne) SetNillableConfidence(v *int) *DiagnosisEventUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *DiagnosisEventUpdateOne) AddConfidence(v int) *DiagnosisEventUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetRank sets the "rank" field.
func (_u *DiagnosisEventUpdateOne) SetRank(v int) *DiagnosisEventUpdateOne {
	_u.mutation.ResetRank()
	_u.mutation.SetRank(v)
	return _u
}

// SetNillableRank sets the "rank" field if the given value is not nil.
func (_u *DiagnosisEventUpdateOne) SetNillableRank(v *int) *DiagnosisEventUpdateOne {
	if v != nil {
		_u.SetRank(*v)
	}
	return _u
}

// AddRank adds value to the "rank" field.
func (_u *DiagnosisEventUpdateOne) AddRank(v int) *DiagnosisEventUpdateOne {
	_u.mutation.AddRank(v)
	return _u
}

// SetRecommendationCount sets the "recommendation_count" field.
func (_u *DiagnosisEventUpdateOne) SetRecommendationCount(v int) *DiagnosisEventUpdateOne {
	_u.mutation.ResetRecommendationCount()
	_u.mutation.SetRecommendationCount(v)
	return _u
}

// SetNillableRecommendationCount sets the "recommendation_count" field if the given value is not nil.
func (_u *DiagnosisEventUpdateOne) SetNillableRecommendationCount(v *int) *DiagnosisEventUpdateOne {
	if v != nil {
		_u.SetRecommendationCount(*v)
	}
	return _u
}

// AddRecommendationCount adds value to the "recommendation_count" field.
func (_u *DiagnosisEventUpdateOne) AddRecommendationCount(v int) *DiagnosisEventUpdateOne {
	_u.mutation.AddRecommendationCount(v)
	return _u
}

// Mutation returns the DiagnosisEventMutation object of the builder.
func (_u *DiagnosisEventUpdateOne) Mutation() *DiagnosisEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the DiagnosisEventUpdate builder.
func (_u *DiagnosisEventUpdateOne) Where(ps ...predicate.DiagnosisEvent) *DiagnosisEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DiagnosisEventUpdateOne) Select(field string, fields ...string) *DiagnosisEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DiagnosisEvent entity.
func (_u *DiagnosisEventUpdateOne) Save(ctx context.Context) (*DiagnosisEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DiagnosisEventUpdateOne) SaveX(ctx context.Context) *DiagnosisEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DiagnosisEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DiagnosisEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DiagnosisEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := diagnosisevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "DiagnosisEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Condition(); ok {
		if err := diagnosisevent.ConditionValidator(v); err != nil {
			return &ValidationError{Name: "condition", err: fmt.Errorf(`ent: validator failed for field "DiagnosisEvent.condition": %w`, err)}
		}
	}
	return nil
}

func (_u *DiagnosisEventUpdateOne) sqlSave(ctx context.Context) (_node *DiagnosisEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(diagnosisevent.Table, diagnosisevent.Columns, sqlgraph.NewFieldSpec(diagnosisevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DiagnosisEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, diagnosisevent.FieldID)
		for _, f := range fields {
			if !diagnosisevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != diagnosisevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(diagnosisevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Condition(); ok {
		_spec.SetField(diagnosisevent.FieldCondition, field.TypeString, value)
	}
	if value, ok := _u.mutation.Similarity(); ok {
		_spec.SetField(diagnosisevent.FieldSimilarity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSimilarity(); ok {
		_spec.AddField(diagnosisevent.FieldSimilarity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(diagnosisevent.FieldConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(diagnosisevent.FieldConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Rank(); ok {
		_spec.SetField(diagnosisevent.FieldRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRank(); ok {
		_spec.AddField(diagnosisevent.FieldRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RecommendationCount(); ok {
		_spec.SetField(diagnosisevent.FieldRecommendationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecommendationCount(); ok {
		_spec.AddField(diagnosisevent.FieldRecommendationCount, field.TypeInt, value)
	}
	_node = &DiagnosisEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{diagnosisevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
