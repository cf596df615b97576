package assessment

import "testing"

func TestFindContradictions(t *testing.T) {
	tests := []struct {
		name     string
		answer1  string
		answer2  string
		category ContradictionCategory
	}{
		{"timing", "It just started", "I have had this for years", ContradictionTiming},
		{"severity", "The pain is mild", "It is unbearable at night", ContradictionSeverity},
		{"frequency", "It happens rarely", "It is there all the time", ContradictionFrequency},
		{"improvement", "Rest helps a lot", "Walking gets worse every day", ContradictionImprovement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			responses := []Response{
				resp("Question one?", tt.answer1),
				resp("Question two?", tt.answer2),
			}
			found := FindContradictions(responses)
			if len(found) != 1 {
				t.Fatalf("expected 1 contradiction, got %d", len(found))
			}
			c := found[0]
			if c.Category != tt.category {
				t.Errorf("category = %q, want %q", c.Category, tt.category)
			}
			if c.Response1.Answer != tt.answer1 || c.Response2.Answer != tt.answer2 {
				t.Errorf("contradiction pairs wrong responses: %q / %q", c.Response1.Answer, c.Response2.Answer)
			}
		})
	}
}

func TestFindContradictionsOrderIndependent(t *testing.T) {
	a := resp("Question one?", "It began recently")
	b := resp("Question two?", "This is chronic")

	forward := FindContradictions([]Response{a, b})
	reversed := FindContradictions([]Response{b, a})
	if len(forward) != 1 || len(reversed) != 1 {
		t.Fatalf("expected 1 contradiction each way, got %d and %d", len(forward), len(reversed))
	}
	if forward[0].Category != reversed[0].Category {
		t.Errorf("category differs by order: %q vs %q", forward[0].Category, reversed[0].Category)
	}
}

func TestFindContradictionsNone(t *testing.T) {
	responses := []Response{
		resp("Where is the pain?", "Lower back"),
		resp("How severe?", "Moderate"),
		resp("When did it start?", "Last week"),
	}
	if found := FindContradictions(responses); len(found) != 0 {
		t.Errorf("expected no contradictions, got %d", len(found))
	}
}

func TestFindContradictionsSamePolarity(t *testing.T) {
	// Two answers on the same side of a category do not contradict.
	responses := []Response{
		resp("How severe?", "Quite mild"),
		resp("Describe the intensity", "A minor ache"),
	}
	if found := FindContradictions(responses); len(found) != 0 {
		t.Errorf("same-polarity answers flagged: %d", len(found))
	}
}

func TestFindContradictionsAmbiguousAnswer(t *testing.T) {
	// An answer matching both polarities resolves to the first polarity in
	// the table, so pairing it with another first-polarity answer is clean.
	responses := []Response{
		resp("How severe?", "Mild but sometimes severe"),
		resp("Describe the intensity", "Slight"),
	}
	if found := FindContradictions(responses); len(found) != 0 {
		t.Errorf("ambiguous answer should resolve to its first match, got %d contradictions", len(found))
	}
}

func TestFindContradictionsCaseInsensitive(t *testing.T) {
	responses := []Response{
		resp("How often?", "RARELY"),
		resp("How often at night?", "It is CONSTANT"),
	}
	found := FindContradictions(responses)
	if len(found) != 1 || found[0].Category != ContradictionFrequency {
		t.Fatalf("expected one frequency contradiction, got %+v", found)
	}
}

func TestFindContradictionsMultiple(t *testing.T) {
	responses := []Response{
		resp("When did it start?", "Just started"),
		resp("How severe?", "Mild"),
		resp("How long have you had it?", "Years"),
		resp("Describe the worst episode", "Severe"),
	}
	found := FindContradictions(responses)
	if len(found) != 2 {
		t.Fatalf("expected 2 contradictions, got %d", len(found))
	}
	seen := map[ContradictionCategory]bool{}
	for _, c := range found {
		seen[c.Category] = true
	}
	if !seen[ContradictionTiming] || !seen[ContradictionSeverity] {
		t.Errorf("expected timing and severity categories, got %v", seen)
	}
}
