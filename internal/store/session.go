package store

import (
	"context"
	"fmt"
	"time"

	"github.com/prepmate/engine/ent"
	"github.com/prepmate/engine/ent/studysession"
	"github.com/prepmate/engine/internal/errs"
)

type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Start(ctx context.Context, ownerID, sessionID string, startAt time.Time) error {
	_, err := r.client.StudySession.Create().
		SetSessionID(sessionID).
		SetOwnerID(ownerID).
		SetStartTime(startAt).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return &errs.ConflictError{Entity: "study session", Key: sessionID}
		}
		return fmt.Errorf("save study session: %w", err)
	}
	return nil
}

func (r *sessionRepo) Close(ctx context.Context, sessionID string, endAt time.Time) (*SessionRecord, error) {
	ss, err := r.client.StudySession.Query().
		Where(studysession.SessionID(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, &errs.NotFoundError{Entity: "study session", ID: sessionID}
		}
		return nil, fmt.Errorf("query study session: %w", err)
	}
	if ss.EndTime != nil {
		return nil, &errs.ConflictError{Entity: "study session", Key: sessionID}
	}

	duration := int(endAt.Sub(ss.StartTime).Seconds())
	if duration < 0 {
		// Clock skew: never record a negative duration.
		duration = 0
	}

	// Conditional update: only applies while the session is still open,
	// so a concurrent close cannot double-apply.
	n, err := r.client.StudySession.Update().
		Where(
			studysession.SessionID(sessionID),
			studysession.EndTimeIsNil(),
		).
		SetEndTime(endAt).
		SetDurationSecs(duration).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("close study session: %w", err)
	}
	if n == 0 {
		return nil, &errs.ConflictError{Entity: "study session", Key: sessionID}
	}

	return &SessionRecord{
		SessionID:    ss.SessionID,
		OwnerID:      ss.OwnerID,
		StartTime:    ss.StartTime,
		EndTime:      &endAt,
		DurationSecs: duration,
	}, nil
}

func (r *sessionRepo) StartTimesForOwner(ctx context.Context, ownerID string, limit int) ([]time.Time, error) {
	query := r.client.StudySession.Query().
		Where(studysession.OwnerID(ownerID)).
		Order(ent.Desc(studysession.FieldStartTime))
	if limit > 0 {
		query = query.Limit(limit)
	}

	sessions, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query study sessions: %w", err)
	}

	times := make([]time.Time, len(sessions))
	for i, s := range sessions {
		times[i] = s.StartTime
	}
	return times, nil
}

func (r *sessionRepo) DurationSince(ctx context.Context, ownerID string, since time.Time) (int, error) {
	sessions, err := r.client.StudySession.Query().
		Where(
			studysession.OwnerID(ownerID),
			studysession.StartTimeGTE(since),
			studysession.EndTimeNotNil(),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query study sessions: %w", err)
	}

	total := 0
	for _, s := range sessions {
		total += s.DurationSecs
	}
	return total, nil
}
