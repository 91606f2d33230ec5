// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nehal/linguo/ent/operationevent"
)

// OperationEventCreate is the builder for creating a OperationEvent entity.
type OperationEventCreate struct {
	config
	mutation *OperationEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *OperationEventCreate) SetSequence(v int64) *OperationEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *OperationEventCreate) SetTimestamp(v time.Time) *OperationEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *OperationEventCreate) SetNillableTimestamp(v *time.Time) *OperationEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetOperationID sets the "operation_id" field.
func (_c *OperationEventCreate) SetOperationID(v string) *OperationEventCreate {
	_c.mutation.SetOperationID(v)
	return _c
}

// SetContext sets the "context" field.
func (_c *OperationEventCreate) SetContext(v string) *OperationEventCreate {
	_c.mutation.SetContext(v)
	return _c
}

// SetOutcome sets the "outcome" field.
func (_c *OperationEventCreate) SetOutcome(v string) *OperationEventCreate {
	_c.mutation.SetOutcome(v)
	return _c
}

// SetMessage sets the "message" field.
func (_c *OperationEventCreate) SetMessage(v string) *OperationEventCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_c *OperationEventCreate) SetNillableMessage(v *string) *OperationEventCreate {
	if v != nil {
		_c.SetMessage(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *OperationEventCreate) SetDurationMs(v int64) *OperationEventCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *OperationEventCreate) SetNillableDurationMs(v *int64) *OperationEventCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// Mutation returns the OperationEventMutation object of the builder.
func (_c *OperationEventCreate) Mutation() *OperationEventMutation {
	return _c.mutation
}

// Save creates the OperationEvent in the database.
func (_c *OperationEventCreate) Save(ctx context.Context) (*OperationEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OperationEventCreate) SaveX(ctx context.Context) *OperationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OperationEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OperationEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OperationEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := operationevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Message(); !ok {
		v := operationevent.DefaultMessage
		_c.mutation.SetMessage(v)
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		v := operationevent.DefaultDurationMs
		_c.mutation.SetDurationMs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OperationEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "OperationEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "OperationEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.OperationID(); !ok {
		return &ValidationError{Name: "operation_id", err: errors.New(`ent: missing required field "OperationEvent.operation_id"`)}
	}
	if _, ok := _c.mutation.Context(); !ok {
		return &ValidationError{Name: "context", err: errors.New(`ent: missing required field "OperationEvent.context"`)}
	}
	if _, ok := _c.mutation.Outcome(); !ok {
		return &ValidationError{Name: "outcome", err: errors.New(`ent: missing required field "OperationEvent.outcome"`)}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required field "OperationEvent.message"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "OperationEvent.duration_ms"`)}
	}
	return nil
}

func (_c *OperationEventCreate) sqlSave(ctx context.Context) (*OperationEvent, error) {
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

func (_c *OperationEventCreate) createSpec() (*OperationEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &OperationEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(operationevent.Table, sqlgraph.NewFieldSpec(operationevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(operationevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(operationevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.OperationID(); ok {
		_spec.SetField(operationevent.FieldOperationID, field.TypeString, value)
		_node.OperationID = value
	}
	if value, ok := _c.mutation.Context(); ok {
		_spec.SetField(operationevent.FieldContext, field.TypeString, value)
		_node.Context = value
	}
	if value, ok := _c.mutation.Outcome(); ok {
		_spec.SetField(operationevent.FieldOutcome, field.TypeString, value)
		_node.Outcome = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(operationevent.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(operationevent.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	return _node, _spec
}

// OperationEventCreateBulk is the builder for creating many OperationEvent entities in bulk.
type OperationEventCreateBulk struct {
	config
	err      error
	builders []*OperationEventCreate
}

// Save creates the OperationEvent entities in the database.
func (_c *OperationEventCreateBulk) Save(ctx context.Context) ([]*OperationEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OperationEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OperationEventMutation)
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
func (_c *OperationEventCreateBulk) SaveX(ctx context.Context) []*OperationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OperationEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OperationEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
