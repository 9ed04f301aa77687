package store

import (
	"context"
	"fmt"

	"github.com/prepmate/engine/ent"
	"github.com/prepmate/engine/ent/submissionevent"
)

type submissionRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *submissionRepo) Append(ctx context.Context, data SubmissionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.SubmissionEvent.Create().
		SetSequence(seqNum).
		SetOwnerID(data.OwnerID).
		SetQuestionID(data.QuestionID).
		SetSubject(data.Subject).
		SetAnswerText(data.AnswerText)
	if data.Score != nil {
		builder = builder.SetScore(*data.Score)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save submission event: %w", err)
	}
	return nil
}

func (r *submissionRepo) CountForOwner(ctx context.Context, ownerID string) (int, error) {
	n, err := r.client.SubmissionEvent.Query().
		Where(submissionevent.OwnerID(ownerID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count submission events: %w", err)
	}
	return n, nil
}
