package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendNudgeEvent(ctx context.Context, data NudgeEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.NudgeEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetStudentID(data.StudentID).
		SetOfferID(data.OfferID).
		SetStepID(data.StepID).
		SetSource(data.Source).
		SetReason(data.Reason).
		SetSeverity(data.Severity).
		SetAction(data.Action).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save nudge event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendConfusionEvent(ctx context.Context, data ConfusionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ConfusionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetStudentID(data.StudentID).
		SetSource(data.Source).
		SetReason(data.Reason).
		SetSeverity(data.Severity).
		SetStepIDHint(data.StepIDHint).
		SetResolvedStepID(data.ResolvedStepID).
		SetAction(data.Action).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save confusion event: %w", err)
	}
	return nil
}
