package assessment

import (
	"errors"
	"reflect"
	"testing"
)

func resp(question, answer string) Response {
	return Response{
		Question: question,
		Answer:   answer,
		QuestionData: Question{
			Text:    question,
			Options: []string{answer, "A", "B", "C", "D", OpenEndedOption},
		},
	}
}

// thoroughResponses covers every area with at least two detailed responses
// and contains no opposing answer pairs.
func thoroughResponses() []Response {
	return []Response{
		resp("Where exactly is the pain located?", "Lower back"),
		resp("Which side of your body is affected?", "Left side"),
		resp("How severe is the pain?", "Moderate"),
		resp("Describe the intensity of the discomfort", "A dull ache"),
		resp("When did the symptoms start?", "Last week"),
		resp("How long does each episode last?", "About an hour"),
		resp("What triggers make it worse?", "Heavy lifting"),
		resp("Do any activities improve the symptoms?", "Gentle stretching"),
		resp("Do you have a family history of similar conditions?", "No"),
		resp("Are you taking any medication currently?", "None"),
	}
}

func TestComputeAreas(t *testing.T) {
	responses := []Response{
		resp("Where is the pain located?", "Head"),
		resp("How severe is the pain?", "Moderate"),
	}

	areas := ComputeAreas(responses)
	if !areas.Location {
		t.Error("expected location to be covered")
	}
	if !areas.CharacterSeverity {
		t.Error("expected characterSeverity to be covered")
	}
	if areas.Timing || areas.Triggers || areas.RiskFactors {
		t.Errorf("unexpected coverage: %+v", areas)
	}
}

func TestComputeAreasIsPure(t *testing.T) {
	responses := thoroughResponses()
	first := ComputeAreas(responses)

	// Repeated and interleaved calls must not accumulate hidden state.
	ComputeAreas(nil)
	ComputeAreas(responses[:3])
	if got := ComputeAreas(responses); got != first {
		t.Errorf("ComputeAreas not pure: %+v then %+v", first, got)
	}
}

func TestComputeAreasEmpty(t *testing.T) {
	if got := ComputeAreas(nil); got != (Areas{}) {
		t.Errorf("expected zero areas for no responses, got %+v", got)
	}
}

func TestCompleteAllCombinations(t *testing.T) {
	// Complete must be true iff all five flags are true. Exhaustive over
	// the 32 combinations.
	for bits := 0; bits < 32; bits++ {
		a := Areas{
			Location:          bits&1 != 0,
			CharacterSeverity: bits&2 != 0,
			Timing:            bits&4 != 0,
			Triggers:          bits&8 != 0,
			RiskFactors:       bits&16 != 0,
		}
		want := bits == 31
		if got := a.Complete(); got != want {
			t.Errorf("Complete(%+v) = %v, want %v", a, got, want)
		}
	}
}

func TestUncovered(t *testing.T) {
	a := Areas{Location: true, Timing: true}
	want := []Area{AreaCharacterSeverity, AreaTriggers, AreaRiskFactors}
	if got := a.Uncovered(); !reflect.DeepEqual(got, want) {
		t.Errorf("Uncovered() = %v, want %v", got, want)
	}
	if a.CoveredCount() != 2 {
		t.Errorf("CoveredCount() = %d, want 2", a.CoveredCount())
	}
}

func TestIsReadyForDiagnosis_Thorough(t *testing.T) {
	responses := thoroughResponses()
	areas := ComputeAreas(responses)

	if !areas.Complete() {
		t.Fatalf("fixture should cover all areas: %+v", areas)
	}
	if !IsReadyForDiagnosis(responses, areas, DefaultConfig()) {
		t.Error("expected readiness for a thorough, contradiction-free assessment")
	}
}

func TestIsReadyForDiagnosis_ContradictionVeto(t *testing.T) {
	responses := thoroughResponses()
	responses[4].Answer = "It just started"
	responses[5].Answer = "I have had this for years"

	areas := ComputeAreas(responses)
	contradictions := FindContradictions(responses)
	if len(contradictions) == 0 {
		t.Fatal("expected a timing contradiction")
	}
	if contradictions[0].Category != ContradictionTiming {
		t.Errorf("expected timing category, got %q", contradictions[0].Category)
	}
	if IsReadyForDiagnosis(responses, areas, DefaultConfig()) {
		t.Error("contradiction must veto readiness")
	}
}

func TestIsReadyForDiagnosis_TooFewResponses(t *testing.T) {
	responses := thoroughResponses()[:6]
	areas := ComputeAreas(responses)
	if IsReadyForDiagnosis(responses, areas, DefaultConfig()) {
		t.Error("readiness requires the minimum total response count")
	}
}

func TestIsReadyForDiagnosis_ShallowArea(t *testing.T) {
	// All areas covered, but riskFactors only once.
	responses := thoroughResponses()[:9]
	areas := ComputeAreas(responses)
	if !areas.Complete() {
		t.Fatalf("fixture should still cover all areas: %+v", areas)
	}
	if IsReadyForDiagnosis(responses, areas, DefaultConfig()) {
		t.Error("readiness requires the per-area minimum")
	}
}

func TestCountByArea(t *testing.T) {
	counts := CountByArea(thoroughResponses())
	for _, area := range AllAreas {
		if counts[area] < 2 {
			t.Errorf("area %s counted %d, want >= 2", area, counts[area])
		}
	}
}

func TestSummarize(t *testing.T) {
	responses := []Response{
		resp("Where is the pain located?", "Head"),
		resp("Where exactly does it hurt?", "Temples"),
		resp("How severe is the pain?", "Moderate"),
	}
	summary := Summarize(responses)
	if summary[AreaLocation] != "Temples" {
		t.Errorf("later answers should win: got %q", summary[AreaLocation])
	}
	if summary[AreaCharacterSeverity] != "Moderate" {
		t.Errorf("unexpected severity summary: %q", summary[AreaCharacterSeverity])
	}
	if _, ok := summary[AreaTiming]; ok {
		t.Error("timing should be absent from the summary")
	}
}

func TestSummarize_OneAreaPerQuestion(t *testing.T) {
	responses := []Response{
		// "where" outranks "pain": files under location only.
		resp("Where is the pain worst?", "Lower back"),
		resp("Describe the pain", "Burning"),
		resp("Is there a family history of this?", "Yes"),
	}
	summary := Summarize(responses)
	if summary[AreaLocation] != "Lower back" {
		t.Errorf("location = %q, want %q", summary[AreaLocation], "Lower back")
	}
	if summary[AreaCharacterSeverity] != "Burning" {
		t.Errorf("severity = %q, want %q", summary[AreaCharacterSeverity], "Burning")
	}
	if summary[AreaRiskFactors] != "Yes" {
		t.Errorf("risk factors = %q, want %q", summary[AreaRiskFactors], "Yes")
	}
	if len(summary) != 3 {
		t.Errorf("summary has %d areas, want 3", len(summary))
	}
}

func TestSummarize_NarrowerThanCoverage(t *testing.T) {
	// Covers the severity area for readiness purposes but carries no
	// summary keyword, so it stays out of the prompt digest.
	responses := []Response{resp("How severe is it?", "Mild")}
	if got := Classify("How severe is it?"); len(got) == 0 {
		t.Fatal("expected coverage classification")
	}
	if summary := Summarize(responses); len(summary) != 0 {
		t.Errorf("summary = %v, want empty", summary)
	}
}

func TestValidateResponses(t *testing.T) {
	valid := thoroughResponses()
	if err := ValidateResponses(valid); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name   string
		mutate func([]Response)
	}{
		{"missing question", func(rs []Response) { rs[2].Question = "" }},
		{"missing answer", func(rs []Response) { rs[2].Answer = "" }},
		{"missing options", func(rs []Response) { rs[2].QuestionData.Options = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs := thoroughResponses()
			tt.mutate(rs)
			err := ValidateResponses(rs)
			if err == nil {
				t.Fatal("expected validation error")
			}
			var inv *ErrInvalidInput
			if !errors.As(err, &inv) {
				t.Fatalf("expected *ErrInvalidInput, got %T", err)
			}
			if inv.Index != 2 {
				t.Errorf("expected index 2, got %d", inv.Index)
			}
		})
	}
}
