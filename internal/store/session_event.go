package store

import (
	"context"
	"fmt"

	"github.com/Wachary/BioPlus-AI-1.1/ent"
	"github.com/Wachary/BioPlus-AI-1.1/ent/responseevent"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetCategory(data.Category).
		SetSymptom(data.Symptom).
		SetPhase(data.Phase).
		SetResponseCount(data.ResponseCount).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendResponseEvent(ctx context.Context, data ResponseEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ResponseEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetQuestion(data.Question).
		SetAnswer(data.Answer).
		SetOptions(data.Options).
		SetPhase(data.Phase).
		SetOpenEnded(data.OpenEnded).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save response event: %w", err)
	}
	return nil
}

func (r *eventRepo) SessionResponses(ctx context.Context, sessionID string) ([]ResponseEventData, error) {
	rows, err := r.client.ResponseEvent.Query().
		Where(responseevent.SessionID(sessionID)).
		Order(ent.Asc(responseevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query responses: %w", err)
	}

	out := make([]ResponseEventData, 0, len(rows))
	for _, row := range rows {
		out = append(out, ResponseEventData{
			SessionID: row.SessionID,
			Question:  row.Question,
			Answer:    row.Answer,
			Options:   row.Options,
			Phase:     row.Phase,
			OpenEnded: row.OpenEnded,
		})
	}
	return out, nil
}
