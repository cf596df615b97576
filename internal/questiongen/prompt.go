package questiongen

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Wachary/BioPlus-AI-1.1/internal/assessment"
	"github.com/Wachary/BioPlus-AI-1.1/internal/llm"
)

const systemPromptBase = `You are a medical assessment assistant. Your role is to ask relevant follow-up questions about the user's symptoms to gather comprehensive information for diagnosis. Always provide exactly 5 answer options; an "Other" option is appended separately, so do not include one yourself.

Based on the user's responses, estimate the total number of questions needed and track the current question number. Include this in your response.

In the initial phase, focus on gathering basic information about all assessment areas: location, character and severity, timing, triggers, and risk factors.

In the detailed phase:
1. Ask detailed follow-up questions based on the initial responses
2. If you detect any contradictions in the responses, ask clarifying questions to resolve them
3. Ensure you have at least 2 detailed responses for each assessment area
4. Pay special attention to severity, timing, and progression of symptoms
5. Verify any concerning or unusual combinations of symptoms`

const optionFillSystemPrompt = `You are helping to generate additional answer options for a medical assessment question. Provide options that are relevant to the question context and distinct from the existing ones. Return exactly the number of additional options requested.`

// buildSystemPrompt embeds the serialized transcript and derived state into
// the system instruction. The model sees the same readiness value the
// engine computed; it never decides readiness on its own.
func buildSystemPrompt(input Input, areas assessment.Areas, ready bool) string {
	responsesJSON, _ := json.Marshal(input.Responses)
	areasJSON, _ := json.Marshal(areas)

	phaseLabel := "Initial Assessment"
	if input.Phase == assessment.PhaseDetailed {
		phaseLabel = "Detailed Assessment"
	}

	var b strings.Builder
	b.WriteString(systemPromptBase)
	fmt.Fprintf(&b, "\n\nPrevious responses: %s\n", responsesJSON)
	fmt.Fprintf(&b, "Current phase: %s\n", phaseLabel)
	fmt.Fprintf(&b, "Areas assessed: %s\n", areasJSON)
	fmt.Fprintf(&b, "Ready for diagnosis: %t", ready)

	if input.Phase == assessment.PhaseDetailed {
		summary := assessment.Summarize(input.Responses)
		if len(summary) > 0 {
			b.WriteString("\n\nLatest answer per area:\n")
			for _, area := range assessment.AllAreas {
				if answer, ok := summary[area]; ok {
					fmt.Fprintf(&b, "- %s: %s\n", area, answer)
				}
			}
		}
	}

	return b.String()
}

// buildMessages turns the transcript into a conversation history and
// appends the phase-specific generation instruction.
func buildMessages(input Input, areas assessment.Areas) []llm.Message {
	messages := make([]llm.Message, 0, len(input.Responses)+2)
	for _, r := range input.Responses {
		messages = append(messages, llm.Message{
			Role:    llm.RoleUser,
			Content: fmt.Sprintf("Question: %s\nAnswer: %s", r.Question, r.Answer),
		})
	}

	messages = append(messages, llm.Message{
		Role:    llm.RoleUser,
		Content: fmt.Sprintf("Category: %s\nSymptom: %s", input.Category, input.Symptom),
	})

	var instruction string
	if input.Phase == assessment.PhaseDetailed {
		instruction = "Generate the next most relevant follow-up question. Ask detailed follow-up questions based on the collected information. Focus on any concerning symptoms or unclear responses."
	} else {
		uncovered := areas.Uncovered()
		labels := make([]string, len(uncovered))
		for i, a := range uncovered {
			labels[i] = string(a)
		}
		instruction = fmt.Sprintf("Generate the next most relevant follow-up question. Focus on uncovered areas: %s", strings.Join(labels, ", "))
	}
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: instruction})

	return messages
}

// buildOptionFillMessage constructs the user message for the option-fill
// follow-up call.
func buildOptionFillMessage(questionText string, existing []string, needed int) string {
	existingJSON, _ := json.Marshal(existing)
	return fmt.Sprintf("Question: %q\nExisting options: %s\nNumber of additional options needed: %d",
		questionText, existingJSON, needed)
}
