package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only checked with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSessionAndResponseEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "sess-1",
		Action:    "started",
		Category:  "I am feeling...",
		Symptom:   "Pain",
		Phase:     "initial",
	})
	if err != nil {
		t.Fatalf("append session event: %v", err)
	}

	responses := []ResponseEventData{
		{SessionID: "sess-1", Question: "Where is the pain located?", Answer: "Lower back", Options: []string{"Head", "Chest", "Abdomen", "Lower back", "Limbs"}, Phase: "initial"},
		{SessionID: "sess-1", Question: "How severe is the pain?", Answer: "Moderate", Options: []string{"Barely noticeable", "Mild", "Moderate", "Severe", "Unbearable"}, Phase: "initial"},
	}
	for _, r := range responses {
		if err := repo.AppendResponseEvent(ctx, r); err != nil {
			t.Fatalf("append response event: %v", err)
		}
	}

	got, err := repo.SessionResponses(ctx, "sess-1")
	if err != nil {
		t.Fatalf("session responses: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 responses, got %d", len(got))
	}
	if got[0].Question != "Where is the pain located?" {
		t.Errorf("responses out of order: first is %q", got[0].Question)
	}
	if got[1].Answer != "Moderate" {
		t.Errorf("unexpected answer: %q", got[1].Answer)
	}
}

func TestDiagnosisEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := []DiagnosisEventData{
		{SessionID: "sess-2", Condition: "Tension headache", Similarity: 0.91, Confidence: 96, Rank: 1, RecommendationCount: 3},
		{SessionID: "sess-2", Condition: "Migraine", Similarity: 0.78, Confidence: 89, Rank: 2, RecommendationCount: 2},
	}
	for _, d := range data {
		if err := repo.AppendDiagnosisEvent(ctx, d); err != nil {
			t.Fatalf("append diagnosis event: %v", err)
		}
	}

	got, err := repo.SessionDiagnoses(ctx, "sess-2")
	if err != nil {
		t.Fatalf("session diagnoses: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 diagnoses, got %d", len(got))
	}
	if got[0].Rank != 1 || got[0].Condition != "Tension headache" {
		t.Errorf("expected rank 1 Tension headache first, got %+v", got[0])
	}
}

func TestLLMEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "openai",
		Model:        "gpt-4o-mini",
		Purpose:      "question-gen",
		InputTokens:  120,
		OutputTokens: 80,
		LatencyMs:    350,
		Success:      true,
		RequestBody:  "[system]\nprompt",
		ResponseBody: `{"questions":[]}`,
	})
	if err != nil {
		t.Fatalf("append LLM request: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query LLM events: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Purpose != "question-gen" {
		t.Errorf("unexpected purpose: %q", events[0].Purpose)
	}

	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get LLM event: %v", err)
	}
	if got == nil || got.ResponseBody != `{"questions":[]}` {
		t.Errorf("unexpected event body: %+v", got)
	}

	stats, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(stats) != 1 || stats[0].Calls != 1 || stats[0].InputTokens != 120 {
		t.Errorf("unexpected usage stats: %+v", stats)
	}
}

func TestSequenceMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var prev int64 = -1
	for range 5 {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next sequence: %v", err)
		}
		if seq <= prev {
			t.Fatalf("sequence not monotonic: %d after %d", seq, prev)
		}
		prev = seq
	}
}
