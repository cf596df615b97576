package assessment

import (
	"reflect"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		question string
		want     []Area
	}{
		{"location", "Where is the pain located?", []Area{AreaLocation}},
		{"severity", "How severe is the pain?", []Area{AreaCharacterSeverity}},
		{"timing", "When did the symptoms begin?", []Area{AreaTiming}},
		{"triggers", "Does anything make it worse?", []Area{AreaTriggers}},
		{"risk factors", "Do you have a family history of heart disease?", []Area{AreaRiskFactors}},
		{"multiple areas", "When did the pain start and where is it located?", []Area{AreaLocation, AreaTiming}},
		{"case insensitive", "WHERE IS THE PAIN?", []Area{AreaLocation}},
		{"no match", "Thank you for your patience.", nil},
		{"empty text", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.question)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Classify(%q) = %v, want %v", tt.question, got, tt.want)
			}
		})
	}
}

func TestClassifyIsPure(t *testing.T) {
	q := "Where is the pain located?"
	first := Classify(q)
	for range 3 {
		if got := Classify(q); !reflect.DeepEqual(got, first) {
			t.Fatalf("Classify not stable: %v then %v", first, got)
		}
	}
}

func TestOpenEnded(t *testing.T) {
	q := Question{Text: "How severe is the pain?", Options: []string{"Mild", "Moderate", "Severe", "Very severe", "Unbearable", OpenEndedOption}}

	tests := []struct {
		answer string
		want   bool
	}{
		{"Moderate", false},
		{OpenEndedOption, true},
		{"something not listed", true},
	}
	for _, tt := range tests {
		r := Response{Question: q.Text, Answer: tt.answer, QuestionData: q}
		if got := r.OpenEnded(); got != tt.want {
			t.Errorf("OpenEnded(%q) = %v, want %v", tt.answer, got, tt.want)
		}
	}
}
