package session

import (
	"errors"
	"testing"

	"github.com/Wachary/BioPlus-AI-1.1/internal/assessment"
	"github.com/Wachary/BioPlus-AI-1.1/internal/diagnosis"
)

func answered(question, answer string) assessment.Response {
	return assessment.Response{
		Question: question,
		Answer:   answer,
		QuestionData: assessment.Question{
			Text:    question,
			Options: []string{answer, "A", "B", "C", "D", assessment.OpenEndedOption},
		},
	}
}

// coveringResponses touch all five assessment areas.
func coveringResponses() []assessment.Response {
	return []assessment.Response{
		answered("Where is the pain located?", "Lower back"),
		answered("How severe is the pain?", "Moderate"),
		answered("When did the symptoms start?", "Last week"),
		answered("What makes it worse?", "Heavy lifting"),
		answered("Do you have a family history of similar conditions?", "No"),
	}
}

func TestNew(t *testing.T) {
	s, err := New("I am feeling...", "Pain")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.State != StateInitial {
		t.Errorf("state = %q, want initial", s.State)
	}
	if s.Phase() != assessment.PhaseInitial {
		t.Errorf("phase = %q, want initial", s.Phase())
	}
	if s.ID.String() == "" {
		t.Error("missing session ID")
	}
}

func TestNew_FreeTextSymptom(t *testing.T) {
	// An unlisted symptom is an "Other" selection within a known category.
	if _, err := New("I am noticing...", "A persistent metallic taste"); err != nil {
		t.Errorf("free-text symptom rejected: %v", err)
	}
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		category string
		symptom  string
	}{
		{"empty category", "", "Pain"},
		{"unknown category", "I am wondering...", "Pain"},
		{"empty symptom", "I am feeling...", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.category, tt.symptom)
			var inv *assessment.ErrInvalidInput
			if !errors.As(err, &inv) {
				t.Fatalf("expected *assessment.ErrInvalidInput, got %T: %v", err, err)
			}
		})
	}
}

func TestAddResponse_PhaseTransition(t *testing.T) {
	s, _ := New("I am feeling...", "Pain")

	responses := coveringResponses()
	for i, r := range responses {
		if err := s.AddResponse(r); err != nil {
			t.Fatalf("AddResponse %d: %v", i, err)
		}
		if i < len(responses)-1 && s.State != StateInitial {
			t.Fatalf("transitioned early at response %d", i)
		}
	}
	if s.State != StateDetailed {
		t.Errorf("state = %q, want detailed after covering all areas", s.State)
	}
	if s.Phase() != assessment.PhaseDetailed {
		t.Errorf("phase = %q, want detailed", s.Phase())
	}
	if !s.Areas().Complete() {
		t.Error("areas should be complete")
	}
}

func TestAddResponse_Invalid(t *testing.T) {
	s, _ := New("I am feeling...", "Pain")
	err := s.AddResponse(assessment.Response{Question: "Q", Answer: ""})
	var inv *assessment.ErrInvalidInput
	if !errors.As(err, &inv) {
		t.Fatalf("expected *assessment.ErrInvalidInput, got %T: %v", err, err)
	}
	if len(s.Responses) != 0 {
		t.Error("invalid response must not be recorded")
	}
}

func TestLifecycle(t *testing.T) {
	s, _ := New("I am feeling...", "Pain")

	if err := s.BeginDiagnosis(); err == nil {
		t.Error("diagnosis must not start from the initial state")
	}

	for _, r := range coveringResponses() {
		if err := s.AddResponse(r); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.BeginDiagnosis(); err != nil {
		t.Fatalf("BeginDiagnosis: %v", err)
	}
	if err := s.AddResponse(answered("How severe now?", "Mild")); err == nil {
		t.Error("responses must not be accepted while diagnosing")
	}

	matches := []diagnosis.Match{{Condition: "Tension headache", Confidence: 82}}
	if err := s.CompleteDiagnosis(matches); err != nil {
		t.Fatalf("CompleteDiagnosis: %v", err)
	}
	if s.State != StateComplete {
		t.Errorf("state = %q, want complete", s.State)
	}
	if err := s.CompleteDiagnosis(matches); err == nil {
		t.Error("complete is terminal")
	}

	var stateErr *ErrState
	if err := s.AddResponse(answered("Q", "A")); !errors.As(err, &stateErr) {
		t.Errorf("expected *ErrState, got %T", err)
	}
}

func TestReset(t *testing.T) {
	s, _ := New("I am feeling...", "Pain")
	for _, r := range coveringResponses() {
		if err := s.AddResponse(r); err != nil {
			t.Fatal(err)
		}
	}
	_ = s.BeginDiagnosis()
	_ = s.CompleteDiagnosis([]diagnosis.Match{{Condition: "X", Confidence: 70}})

	fresh := s.Reset()
	if fresh.ID == s.ID {
		t.Error("reset must mint a new session ID")
	}
	if fresh.Category != s.Category || fresh.Symptom != s.Symptom {
		t.Error("reset should keep the selection")
	}
	if fresh.State != StateInitial || len(fresh.Responses) != 0 || fresh.Diagnosis != nil {
		t.Error("reset must discard responses, diagnosis, and state")
	}
}

func TestCatalog(t *testing.T) {
	cats := Catalog()
	if len(cats) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(cats))
	}
	for _, c := range cats {
		if c.Title == "" || c.Description == "" {
			t.Errorf("incomplete category: %+v", c)
		}
		if c.Symptoms[len(c.Symptoms)-1] != "Other" {
			t.Errorf("category %q missing trailing Other option", c.Title)
		}
	}
}
