package questiongen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/Wachary/BioPlus-AI-1.1/internal/assessment"
	"github.com/Wachary/BioPlus-AI-1.1/internal/llm"
)

func batchJSON(options ...string) json.RawMessage {
	optsJSON, _ := json.Marshal(options)
	return json.RawMessage(fmt.Sprintf(`{
		"questions": [{"text": "How severe is the pain?", "options": %s}],
		"assessedAreas": {"location": false, "characterSeverity": false, "timing": false, "triggers": false, "riskFactors": false},
		"totalPredictedQuestions": 7,
		"currentQuestionNumber": 3,
		"readyForDiagnosis": true
	}`, optsJSON))
}

func testResponse(question, answer string) assessment.Response {
	return assessment.Response{
		Question: question,
		Answer:   answer,
		QuestionData: assessment.Question{
			Text:    question,
			Options: []string{answer, "A", "B", "C", "D", assessment.OpenEndedOption},
		},
	}
}

func thoroughTranscript() []assessment.Response {
	return []assessment.Response{
		testResponse("Where exactly is the pain located?", "Lower back"),
		testResponse("Which side of your body is affected?", "Left side"),
		testResponse("How severe is the pain?", "Moderate"),
		testResponse("Describe the intensity of the discomfort", "A dull ache"),
		testResponse("When did the symptoms start?", "Last week"),
		testResponse("How long does each episode last?", "About an hour"),
		testResponse("What triggers make it worse?", "Heavy lifting"),
		testResponse("Do any activities improve the symptoms?", "Gentle stretching"),
		testResponse("Do you have a family history of similar conditions?", "No"),
		testResponse("Are you taking any medication currently?", "None"),
	}
}

func TestNext_InitialPhase(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: batchJSON("Mild", "Moderate", "Significant", "Severe", "Unbearable"),
	})
	gen := New(mock, DefaultConfig())

	result, err := gen.Next(context.Background(), Input{
		Category: "I am feeling...",
		Symptom:  "Pain",
		Phase:    assessment.PhaseInitial,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(result.Questions))
	}

	want := []string{"Mild", "Moderate", "Significant", "Severe", "Unbearable", "Other"}
	if got := result.Questions[0].Options; !reflect.DeepEqual(got, want) {
		t.Errorf("options = %v, want %v", got, want)
	}

	// Progress and readiness come from the engine, not the model.
	if result.ReadyForDiagnosis {
		t.Error("initial phase must never report readiness")
	}
	if result.TotalPredictedQuestions != 5 {
		t.Errorf("total = %d, want 5", result.TotalPredictedQuestions)
	}
	if result.CurrentQuestionNumber != 0 {
		t.Errorf("current = %d, want 0 with an empty transcript", result.CurrentQuestionNumber)
	}
	if result.AssessedAreas == nil {
		t.Error("initial phase should include assessed areas")
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected 1 provider call, got %d", mock.CallCount())
	}
}

func TestNext_DetailedPhaseReady(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: batchJSON("Yes", "No", "Sometimes at night", "Only in the morning", "After meals"),
	})
	gen := New(mock, DefaultConfig())

	transcript := thoroughTranscript()
	result, err := gen.Next(context.Background(), Input{
		Category:  "I am feeling...",
		Symptom:   "Pain",
		Responses: transcript,
		Phase:     assessment.PhaseDetailed,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.ReadyForDiagnosis {
		t.Error("expected readiness for a thorough transcript")
	}
	if result.TotalPredictedQuestions != 10 {
		t.Errorf("total = %d, want 10", result.TotalPredictedQuestions)
	}
	if result.CurrentQuestionNumber != 10 {
		t.Errorf("current = %d, want 10", result.CurrentQuestionNumber)
	}
	if result.AssessedAreas != nil {
		t.Error("detailed phase should omit assessed areas")
	}

	// The system prompt carries the transcript and derived state.
	req := mock.Calls[0]
	for _, fragment := range []string{
		"Detailed Assessment",
		"Ready for diagnosis: true",
		"Lower back",
	} {
		if !strings.Contains(req.System, fragment) {
			t.Errorf("system prompt missing %q", fragment)
		}
	}
	if len(req.Messages) != len(transcript)+2 {
		t.Errorf("expected %d messages, got %d", len(transcript)+2, len(req.Messages))
	}
	last := req.Messages[len(req.Messages)-1].Content
	if !strings.Contains(last, "detailed follow-up") {
		t.Errorf("final instruction missing detailed guidance: %q", last)
	}
}

func TestNext_UncoveredAreasInstruction(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: batchJSON("A", "B", "C", "D", "E"),
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.Next(context.Background(), Input{
		Category:  "I am feeling...",
		Symptom:   "Pain",
		Responses: []assessment.Response{testResponse("Where is the pain located?", "Head")},
		Phase:     assessment.PhaseInitial,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	last := mock.Calls[0].Messages[len(mock.Calls[0].Messages)-1].Content
	if strings.Contains(last, "location") {
		t.Errorf("covered area listed as uncovered: %q", last)
	}
	for _, area := range []string{"characterSeverity", "timing", "triggers", "riskFactors"} {
		if !strings.Contains(last, area) {
			t.Errorf("instruction missing uncovered area %q: %q", area, last)
		}
	}
}

func TestNext_StripsOtherAndFillsOptions(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: batchJSON("Mild", "Moderate", "Severe", "Other (please specify)")},
		llm.MockResponse{Content: json.RawMessage(`{"options": ["Very severe", "Unbearable"]}`)},
	)
	gen := New(mock, DefaultConfig())

	result, err := gen.Next(context.Background(), Input{
		Category: "I am feeling...",
		Symptom:  "Pain",
		Phase:    assessment.PhaseInitial,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"Mild", "Moderate", "Severe", "Very severe", "Unbearable", "Other"}
	if got := result.Questions[0].Options; !reflect.DeepEqual(got, want) {
		t.Errorf("options = %v, want %v", got, want)
	}
	if mock.CallCount() != 2 {
		t.Errorf("expected an option-fill call, got %d calls", mock.CallCount())
	}
}

func TestNext_PadsWhenFillFails(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: batchJSON("Mild", "Severe")},
		llm.MockResponse{Err: &llm.ErrRateLimit{}},
	)
	gen := New(mock, DefaultConfig())

	result, err := gen.Next(context.Background(), Input{
		Category: "I am feeling...",
		Symptom:  "Pain",
		Phase:    assessment.PhaseInitial,
	})
	if err != nil {
		t.Fatalf("a failed option-fill must not fail the batch: %v", err)
	}

	want := []string{"Mild", "Severe", "Not sure", "Not sure", "Not sure", "Other"}
	if got := result.Questions[0].Options; !reflect.DeepEqual(got, want) {
		t.Errorf("options = %v, want %v", got, want)
	}
}

func TestNext_TruncatesExcessOptions(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: batchJSON("A", "B", "C", "D", "E", "F", "G"),
	})
	gen := New(mock, DefaultConfig())

	result, err := gen.Next(context.Background(), Input{
		Category: "I am feeling...",
		Symptom:  "Pain",
		Phase:    assessment.PhaseInitial,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"A", "B", "C", "D", "E", "Other"}
	if got := result.Questions[0].Options; !reflect.DeepEqual(got, want) {
		t.Errorf("options = %v, want %v", got, want)
	}
	if mock.CallCount() != 1 {
		t.Errorf("no option-fill call expected, got %d calls", mock.CallCount())
	}
}

func TestNext_GenerationErrors(t *testing.T) {
	tests := []struct {
		name string
		resp llm.MockResponse
	}{
		{"provider failure", llm.MockResponse{Err: &llm.ErrProviderUnavailable{}}},
		{"provider deadline expired", llm.MockResponse{Err: &llm.ErrTimeout{Limit: time.Second, Err: context.DeadlineExceeded}}},
		{"malformed JSON", llm.MockResponse{Content: json.RawMessage(`not json at all`)}},
		{"empty content", llm.MockResponse{Content: json.RawMessage(``)}},
		{"missing questions", llm.MockResponse{Content: json.RawMessage(`{"questions": [], "assessedAreas": {}, "totalPredictedQuestions": 5, "currentQuestionNumber": 1, "readyForDiagnosis": false}`)}},
		{"empty question text", llm.MockResponse{Content: json.RawMessage(`{"questions": [{"text": "", "options": ["A"]}], "assessedAreas": {}, "totalPredictedQuestions": 5, "currentQuestionNumber": 1, "readyForDiagnosis": false}`)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(tt.resp)
			gen := New(mock, DefaultConfig())

			result, err := gen.Next(context.Background(), Input{
				Category: "I am feeling...",
				Symptom:  "Pain",
				Phase:    assessment.PhaseInitial,
			})
			if result != nil {
				t.Error("no partial result on failure")
			}
			var genErr *ErrGeneration
			if !errors.As(err, &genErr) {
				t.Fatalf("expected *ErrGeneration, got %T: %v", err, err)
			}
		})
	}
}

func TestNext_InvalidInput(t *testing.T) {
	mock := llm.NewMockProvider()
	gen := New(mock, DefaultConfig())

	_, err := gen.Next(context.Background(), Input{
		Category:  "I am feeling...",
		Symptom:   "Pain",
		Responses: []assessment.Response{{Question: "Q", Answer: ""}},
		Phase:     assessment.PhaseInitial,
	})

	var inv *assessment.ErrInvalidInput
	if !errors.As(err, &inv) {
		t.Fatalf("expected *assessment.ErrInvalidInput, got %T: %v", err, err)
	}
	if mock.CallCount() != 0 {
		t.Error("invalid input must not reach the provider")
	}
}
