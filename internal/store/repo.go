package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SessionEventData captures a session lifecycle transition.
type SessionEventData struct {
	SessionID     string
	Action        string // started, reset, completed
	Category      string
	Symptom       string
	Phase         string
	ResponseCount int
}

// ResponseEventData captures one answered question within a session.
type ResponseEventData struct {
	SessionID string
	Question  string
	Answer    string
	Options   []string
	Phase     string // initial or detailed
	OpenEnded bool
}

// DiagnosisEventData captures one ranked condition from a diagnosis run.
type DiagnosisEventData struct {
	SessionID           string
	Condition           string
	Similarity          float64
	Confidence          int
	Rank                int
	RecommendationCount int
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a stored LLM request event.
type LLMRequestEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStat aggregates token usage for one purpose label.
type LLMUsageStat struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendSessionEvent records a session lifecycle event.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendResponseEvent records an answered question.
	AppendResponseEvent(ctx context.Context, data ResponseEventData) error

	// AppendDiagnosisEvent records one ranked condition of a diagnosis.
	AppendDiagnosisEvent(ctx context.Context, data DiagnosisEventData) error

	// SessionResponses returns the ordered response sequence for a session.
	SessionResponses(ctx context.Context, sessionID string) ([]ResponseEventData, error)

	// SessionDiagnoses returns stored diagnosis results for a session,
	// ordered by rank.
	SessionDiagnoses(ctx context.Context, sessionID string) ([]DiagnosisEventData, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns recent LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns a single LLM request event by ID, or nil.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
