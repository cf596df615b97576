package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Wachary/BioPlus-AI-1.1/internal/assessment"
	"github.com/Wachary/BioPlus-AI-1.1/internal/diagnosis"
)

// State is the lifecycle stage of one assessment session.
//
//	Initial -> (all areas covered) -> Detailed -> (ready) -> Diagnosing -> Complete
//
// Complete is terminal; a new assessment starts a fresh session.
type State string

const (
	StateInitial    State = "initial"
	StateDetailed   State = "detailed"
	StateDiagnosing State = "diagnosing"
	StateComplete   State = "complete"
)

// ErrState indicates an operation that is not legal in the session's
// current state.
type ErrState struct {
	State State
	Op    string
}

func (e *ErrState) Error() string {
	return fmt.Sprintf("session state %s does not allow %s", e.State, e.Op)
}

// Session owns one assessment's mutable state. Core computations never
// read ambient globals; everything they need is passed in from here. A
// session is confined to a single goroutine by design: the state machine
// disallows submitting a new answer while a question request is in
// flight, so there is nothing to lock.
type Session struct {
	ID        uuid.UUID
	Category  string
	Symptom   string
	State     State
	Responses []assessment.Response
	Diagnosis []diagnosis.Match
	StartedAt time.Time
}

// New starts a session for a validated category/symptom selection.
func New(category, symptom string) (*Session, error) {
	if category == "" {
		return nil, &assessment.ErrInvalidInput{Field: "category", Index: -1, Reason: "must not be empty"}
	}
	if !ValidSelection(category, symptom) {
		return nil, &assessment.ErrInvalidInput{Field: "category", Index: -1, Reason: "unknown category or empty symptom"}
	}

	return &Session{
		ID:        uuid.New(),
		Category:  category,
		Symptom:   symptom,
		State:     StateInitial,
		StartedAt: time.Now(),
	}, nil
}

// Phase maps the session state to the questioning phase.
func (s *Session) Phase() assessment.Phase {
	if s.State == StateInitial {
		return assessment.PhaseInitial
	}
	return assessment.PhaseDetailed
}

// AddResponse validates and appends one answered question. The response
// sequence is append-only; recorded responses are never edited. Covering
// the last open area advances the session to the detailed state.
func (s *Session) AddResponse(r assessment.Response) error {
	if s.State == StateDiagnosing || s.State == StateComplete {
		return &ErrState{State: s.State, Op: "adding a response"}
	}
	if err := assessment.ValidateResponses([]assessment.Response{r}); err != nil {
		return err
	}

	s.Responses = append(s.Responses, r)

	if s.State == StateInitial && assessment.ComputeAreas(s.Responses).Complete() {
		s.State = StateDetailed
	}
	return nil
}

// Areas recomputes coverage from the full response sequence.
func (s *Session) Areas() assessment.Areas {
	return assessment.ComputeAreas(s.Responses)
}

// BeginDiagnosis transitions to the diagnosing state. Legal only from the
// detailed state, once the orchestrator has reported readiness.
func (s *Session) BeginDiagnosis() error {
	if s.State != StateDetailed {
		return &ErrState{State: s.State, Op: "beginning diagnosis"}
	}
	s.State = StateDiagnosing
	return nil
}

// CompleteDiagnosis records the ranked result and ends the session.
func (s *Session) CompleteDiagnosis(matches []diagnosis.Match) error {
	if s.State != StateDiagnosing {
		return &ErrState{State: s.State, Op: "completing diagnosis"}
	}
	s.Diagnosis = matches
	s.State = StateComplete
	return nil
}

// Reset discards all session state and returns a fresh session for the
// same selection. The old session's responses and any diagnosis are gone;
// only the category/symptom choice carries over.
func (s *Session) Reset() *Session {
	return &Session{
		ID:        uuid.New(),
		Category:  s.Category,
		Symptom:   s.Symptom,
		State:     StateInitial,
		StartedAt: time.Now(),
	}
}
