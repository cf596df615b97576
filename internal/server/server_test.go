package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wachary/BioPlus-AI-1.1/internal/assessment"
	"github.com/Wachary/BioPlus-AI-1.1/internal/diagnosis"
	"github.com/Wachary/BioPlus-AI-1.1/internal/questiongen"
	"github.com/Wachary/BioPlus-AI-1.1/internal/store"
)

type fakeGenerator struct {
	result *questiongen.Result
	err    error
	inputs []questiongen.Input
}

func (f *fakeGenerator) Next(_ context.Context, input questiongen.Input) (*questiongen.Result, error) {
	f.inputs = append(f.inputs, input)
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type fakeDiffer struct {
	matches []diagnosis.Match
	err     error
}

func (f *fakeDiffer) ComputeDiagnosis(_ context.Context, responses []assessment.Response) ([]diagnosis.Match, error) {
	if err := assessment.ValidateResponses(responses); err != nil {
		return nil, err
	}
	if len(responses) == 0 {
		return nil, &assessment.ErrInvalidInput{Field: "responses", Index: -1, Reason: "must not be empty"}
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.matches, nil
}

type fakeRecorder struct {
	mu        sync.Mutex
	sessions  []store.SessionEventData
	responses []store.ResponseEventData
	diagnoses []store.DiagnosisEventData
}

func (f *fakeRecorder) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions = append(f.sessions, data)
	return nil
}

func (f *fakeRecorder) AppendResponseEvent(_ context.Context, data store.ResponseEventData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses = append(f.responses, data)
	return nil
}

func (f *fakeRecorder) AppendDiagnosisEvent(_ context.Context, data store.DiagnosisEventData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.diagnoses = append(f.diagnoses, data)
	return nil
}

func sampleResult() *questiongen.Result {
	return &questiongen.Result{
		Questions: []assessment.Question{{
			Text:    "How severe is the pain?",
			Options: []string{"Mild", "Moderate", "Significant", "Severe", "Unbearable", "Other"},
		}},
		TotalPredictedQuestions: 5,
		CurrentQuestionNumber:   1,
	}
}

func sampleTranscript() []assessment.Response {
	return []assessment.Response{{
		Question: "How severe is the pain?",
		Answer:   "Moderate",
		QuestionData: assessment.Question{
			Text:    "How severe is the pain?",
			Options: []string{"Mild", "Moderate", "Significant", "Severe", "Unbearable", "Other"},
		},
	}}
}

func postJSON(t *testing.T, handler http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	srv := New(DefaultConfig(), &fakeGenerator{result: sampleResult()}, &fakeDiffer{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestCatalog(t *testing.T) {
	srv := New(DefaultConfig(), &fakeGenerator{result: sampleResult()}, &fakeDiffer{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/catalog", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Categories []struct {
			Title    string   `json:"title"`
			Symptoms []string `json:"symptoms"`
		} `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Categories, 3)
	assert.Equal(t, "I am feeling...", body.Categories[0].Title)
	assert.Contains(t, body.Categories[0].Symptoms, "Pain")
}

func TestQuestions_NewSession(t *testing.T) {
	gen := &fakeGenerator{result: sampleResult()}
	recorder := &fakeRecorder{}
	srv := New(DefaultConfig(), gen, &fakeDiffer{}, recorder)

	rec := postJSON(t, srv.Handler(), "/api/questions", map[string]any{
		"category": "I am feeling...",
		"symptom":  "Pain",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var body questionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.SessionID)
	require.Len(t, body.Questions, 1)
	assert.Len(t, body.Questions[0].Options, 6)

	// A missing session ID starts a session; the empty transcript records
	// no response event.
	require.Len(t, recorder.sessions, 1)
	assert.Equal(t, "started", recorder.sessions[0].Action)
	assert.Empty(t, recorder.responses)

	require.Len(t, gen.inputs, 1)
	assert.Equal(t, assessment.PhaseInitial, gen.inputs[0].Phase)
}

func TestQuestions_RecordsLatestResponse(t *testing.T) {
	recorder := &fakeRecorder{}
	srv := New(DefaultConfig(), &fakeGenerator{result: sampleResult()}, &fakeDiffer{}, recorder)

	rec := postJSON(t, srv.Handler(), "/api/questions", map[string]any{
		"sessionId": "existing-session",
		"category":  "I am feeling...",
		"symptom":   "Pain",
		"phase":     "detailed",
		"responses": sampleTranscript(),
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, recorder.sessions, "existing session must not be restarted")
	require.Len(t, recorder.responses, 1)
	assert.Equal(t, "existing-session", recorder.responses[0].SessionID)
	assert.Equal(t, "Moderate", recorder.responses[0].Answer)
	assert.Equal(t, "detailed", recorder.responses[0].Phase)
}

func TestQuestions_MissingFields(t *testing.T) {
	srv := New(DefaultConfig(), &fakeGenerator{result: sampleResult()}, &fakeDiffer{}, nil)

	rec := postJSON(t, srv.Handler(), "/api/questions", map[string]any{
		"category": "I am feeling...",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postJSON(t, srv.Handler(), "/api/questions", map[string]any{
		"category": "I am wondering...",
		"symptom":  "Pain",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code, "unknown category is rejected")
}

func TestQuestions_GenerationFailure(t *testing.T) {
	gen := &fakeGenerator{err: &questiongen.ErrGeneration{Reason: "empty completion content"}}
	events := &fakeRecorder{}
	srv := New(DefaultConfig(), gen, &fakeDiffer{}, events)

	rec := postJSON(t, srv.Handler(), "/api/questions", map[string]any{
		"category": "I am feeling...",
		"symptom":  "Pain",
	})
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	// No batch was produced, so the session must not be persisted.
	// A client retry without a sessionId would otherwise leave an
	// orphan row per failed attempt.
	assert.Empty(t, events.sessions)
	assert.Empty(t, events.responses)
}

func TestQuestions_InvalidTranscript(t *testing.T) {
	gen := &fakeGenerator{err: &assessment.ErrInvalidInput{Field: "answer", Index: 0, Reason: "must not be empty"}}
	srv := New(DefaultConfig(), gen, &fakeDiffer{}, nil)

	rec := postJSON(t, srv.Handler(), "/api/questions", map[string]any{
		"category":  "I am feeling...",
		"symptom":   "Pain",
		"responses": []map[string]string{{"question": "Q"}},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDiagnose(t *testing.T) {
	matches := []diagnosis.Match{
		{Condition: "Tension headache", Similarity: 0.92, Confidence: 96,
			Recommendations: []diagnosis.Recommendation{{Text: "See a doctor", Urgency: diagnosis.UrgencyMedium}}},
		{Condition: "Migraine", Similarity: 0.81, Confidence: 91},
	}
	recorder := &fakeRecorder{}
	srv := New(DefaultConfig(), &fakeGenerator{result: sampleResult()}, &fakeDiffer{matches: matches}, recorder)

	rec := postJSON(t, srv.Handler(), "/api/diagnose", map[string]any{
		"sessionId": "existing-session",
		"responses": sampleTranscript(),
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var body diagnoseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Diagnoses, 2)
	assert.Equal(t, "Tension headache", body.Diagnoses[0].Condition)

	require.Len(t, recorder.diagnoses, 2)
	assert.Equal(t, 1, recorder.diagnoses[0].Rank)
	assert.Equal(t, 1, recorder.diagnoses[0].RecommendationCount)
	require.Len(t, recorder.sessions, 1)
	assert.Equal(t, "completed", recorder.sessions[0].Action)
}

func TestDiagnose_Malformed(t *testing.T) {
	srv := New(DefaultConfig(), &fakeGenerator{result: sampleResult()}, &fakeDiffer{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/diagnose", bytes.NewBufferString("not json"))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postJSON(t, srv.Handler(), "/api/diagnose", map[string]any{"responses": []any{}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDiagnose_ProfileFailure(t *testing.T) {
	recorder := &fakeRecorder{}
	differ := &fakeDiffer{err: &diagnosis.ErrProfile{Reason: "wrong condition count"}}
	srv := New(DefaultConfig(), &fakeGenerator{result: sampleResult()}, differ, recorder)

	rec := postJSON(t, srv.Handler(), "/api/diagnose", map[string]any{
		"responses": sampleTranscript(),
	})
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Empty(t, recorder.diagnoses, "no events recorded on failure")
	assert.Empty(t, recorder.sessions)
}
