package diagnosis

import (
	"fmt"
	"strings"

	"github.com/Wachary/BioPlus-AI-1.1/internal/assessment"
)

const profileSystemPrompt = `You are a medical assessment assistant. Based on the patient's responses, list the top 3 most likely diagnoses. For each diagnosis, answer the same questions as if a typical patient with that condition was responding. Every simulated answer must be chosen from that question's listed options; use "Other" only when none fit. Answer every question, in the same order it was asked.`

const recommendationSystemPrompt = `You are a medical assessment assistant providing recommendations for a preliminary condition match.

GUIDELINES:
1. Recommendations must be practical next steps, not treatment prescriptions
2. Grade urgency honestly: "high" only for findings that warrant prompt medical attention
3. Always include seeing a healthcare professional for confirmation
4. Keep each recommendation to one or two sentences`

// buildProfileMessage serializes the transcript with each question's
// option list so the simulated patients answer from the same choices.
func buildProfileMessage(responses []assessment.Response) string {
	var b strings.Builder
	b.WriteString("Patient responses:\n")
	for _, r := range responses {
		fmt.Fprintf(&b, "Q: %s\n", r.Question)
		fmt.Fprintf(&b, "Options: %s\n", strings.Join(r.QuestionData.Options, " | "))
		fmt.Fprintf(&b, "A: %s\n", r.Answer)
	}
	return b.String()
}

// buildRecommendationMessage gives the recommendation call the matched
// condition plus the raw transcript for severity context.
func buildRecommendationMessage(condition string, responses []assessment.Response) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Matched condition: %s\n\nPatient responses:\n", condition)
	for _, r := range responses {
		fmt.Fprintf(&b, "Q: %s\nA: %s\n", r.Question, r.Answer)
	}
	return b.String()
}
