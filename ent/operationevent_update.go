// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nehal/linguo/ent/operationevent"
	"github.com/nehal/linguo/ent/predicate"
)

// OperationEventUpdate is the builder for updating OperationEvent entities.
type OperationEventUpdate struct {
	config
	hooks    []Hook
	mutation *OperationEventMutation
}

// Where appends a list predicates to the OperationEventUpdate builder.
func (_u *OperationEventUpdate) Where(ps ...predicate.OperationEvent) *OperationEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOperationID sets the "operation_id" field.
func (_u *OperationEventUpdate) SetOperationID(v string) *OperationEventUpdate {
	_u.mutation.SetOperationID(v)
	return _u
}

// SetNillableOperationID sets the "operation_id" field if the given value is not nil.
func (_u *OperationEventUpdate) SetNillableOperationID(v *string) *OperationEventUpdate {
	if v != nil {
		_u.SetOperationID(*v)
	}
	return _u
}

// SetContext sets the "context" field.
func (_u *OperationEventUpdate) SetContext(v string) *OperationEventUpdate {
	_u.mutation.SetContext(v)
	return _u
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (_u *OperationEventUpdate) SetNillableContext(v *string) *OperationEventUpdate {
	if v != nil {
		_u.SetContext(*v)
	}
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *OperationEventUpdate) SetOutcome(v string) *OperationEventUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *OperationEventUpdate) SetNillableOutcome(v *string) *OperationEventUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *OperationEventUpdate) SetMessage(v string) *OperationEventUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *OperationEventUpdate) SetNillableMessage(v *string) *OperationEventUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *OperationEventUpdate) SetDurationMs(v int64) *OperationEventUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *OperationEventUpdate) SetNillableDurationMs(v *int64) *OperationEventUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *OperationEventUpdate) AddDurationMs(v int64) *OperationEventUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// Mutation returns the OperationEventMutation object of the builder.
func (_u *OperationEventUpdate) Mutation() *OperationEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OperationEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OperationEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OperationEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OperationEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *OperationEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(operationevent.Table, operationevent.Columns, sqlgraph.NewFieldSpec(operationevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OperationID(); ok {
		_spec.SetField(operationevent.FieldOperationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(operationevent.FieldContext, field.TypeString, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(operationevent.FieldOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(operationevent.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(operationevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(operationevent.FieldDurationMs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{operationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OperationEventUpdateOne is the builder for updating a single OperationEvent entity.
type OperationEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OperationEventMutation
}

// SetOperationID sets the "operation_id" field.
func (_u *OperationEventUpdateOne) SetOperationID(v string) *OperationEventUpdateOne {
	_u.mutation.SetOperationID(v)
	return _u
}

// SetNillableOperationID sets the "operation_id" field if the given value is not nil.
func (_u *OperationEventUpdateOne) SetNillableOperationID(v *string) *OperationEventUpdateOne {
	if v != nil {
		_u.SetOperationID(*v)
	}
	return _u
}

// SetContext sets the "context" field.
func (_u *OperationEventUpdateOne) SetContext(v string) *OperationEventUpdateOne {
	_u.mutation.SetContext(v)
	return _u
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (_u *OperationEventUpdateOne) SetNillableContext(v *string) *OperationEventUpdateOne {
	if v != nil {
		_u.SetContext(*v)
	}
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *OperationEventUpdateOne) SetOutcome(v string) *OperationEventUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *OperationEventUpdateOne) SetNillableOutcome(v *string) *OperationEventUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *OperationEventUpdateOne) SetMessage(v string) *OperationEventUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *OperationEventUpdateOne) SetNillableMessage(v *string) *OperationEventUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *OperationEventUpdateOne) SetDurationMs(v int64) *OperationEventUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *OperationEventUpdateOne) SetNillableDurationMs(v *int64) *OperationEventUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *OperationEventUpdateOne) AddDurationMs(v int64) *OperationEventUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// Mutation returns the OperationEventMutation object of the builder.
func (_u *OperationEventUpdateOne) Mutation() *OperationEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the OperationEventUpdate builder.
func (_u *OperationEventUpdateOne) Where(ps ...predicate.OperationEvent) *OperationEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OperationEventUpdateOne) Select(field string, fields ...string) *OperationEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OperationEvent entity.
func (_u *OperationEventUpdateOne) Save(ctx context.Context) (*OperationEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OperationEventUpdateOne) SaveX(ctx context.Context) *OperationEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OperationEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OperationEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *OperationEventUpdateOne) sqlSave(ctx context.Context) (_node *OperationEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(operationevent.Table, operationevent.Columns, sqlgraph.NewFieldSpec(operationevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OperationEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, operationevent.FieldID)
		for _, f := range fields {
			if !operationevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != operationevent.FieldID {
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
	if value, ok := _u.mutation.OperationID(); ok {
		_spec.SetField(operationevent.FieldOperationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(operationevent.FieldContext, field.TypeString, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(operationevent.FieldOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(operationevent.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(operationevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(operationevent.FieldDurationMs, field.TypeInt64, value)
	}
	_node = &OperationEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{operationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
