package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendOperation(ctx context.Context, data OperationEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.OperationEvent.Create().
		SetSequence(seqNum).
		SetOperationID(data.OperationID).
		SetContext(data.Context).
		SetOutcome(data.Outcome).
		SetMessage(data.Message).
		SetDurationMs(data.DurationMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save operation event: %w", err)
	}

	return nil
}
