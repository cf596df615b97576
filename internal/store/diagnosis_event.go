package store

import (
	"context"
	"fmt"

	"github.com/Wachary/BioPlus-AI-1.1/ent"
	"github.com/Wachary/BioPlus-AI-1.1/ent/diagnosisevent"
)

func (r *eventRepo) AppendDiagnosisEvent(ctx context.Context, data DiagnosisEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.DiagnosisEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetCondition(data.Condition).
		SetSimilarity(data.Similarity).
		SetConfidence(data.Confidence).
		SetRank(data.Rank).
		SetRecommendationCount(data.RecommendationCount).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save diagnosis event: %w", err)
	}
	return nil
}

func (r *eventRepo) SessionDiagnoses(ctx context.Context, sessionID string) ([]DiagnosisEventData, error) {
	rows, err := r.client.DiagnosisEvent.Query().
		Where(diagnosisevent.SessionID(sessionID)).
		Order(ent.Asc(diagnosisevent.FieldRank)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query diagnoses: %w", err)
	}

	out := make([]DiagnosisEventData, 0, len(rows))
	for _, row := range rows {
		out = append(out, DiagnosisEventData{
			SessionID:           row.SessionID,
			Condition:           row.Condition,
			Similarity:          row.Similarity,
			Confidence:          row.Confidence,
			Rank:                row.Rank,
			RecommendationCount: row.RecommendationCount,
		})
	}
	return out, nil
}
