package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendReview(ctx context.Context, data ReviewEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ReviewEvent.Create().
		SetSequence(seqNum).
		SetRecordID(data.RecordID).
		SetTopic(data.Topic).
		SetFocus(data.Focus).
		SetCorrect(data.Correct).
		SetReviewCount(data.ReviewCount).
		SetMastered(data.Mastered).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save review event: %w", err)
	}

	return nil
}
