// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/Wachary/BioPlus-AI-1.1/ent/diagnosisevent"
	"github.com/Wachary/BioPlus-AI-1.1/ent/llmrequestevent"
	"github.com/Wachary/BioPlus-AI-1.1/ent/responseevent"
	"github.com/Wachary/BioPlus-AI-1.1/ent/schema"
	"github.com/Wachary/BioPlus-AI-1.1/ent/sessionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	diagnosiseventMixin := schema.DiagnosisEvent{}.Mixin()
	diagnosiseventMixinFields0 := diagnosiseventMixin[0].Fields()
	_ = diagnosiseventMixinFields0
	diagnosiseventFields := schema.DiagnosisEvent{}.Fields()
	_ = diagnosiseventFields
	// diagnosiseventDescTimestamp is the schema descriptor for timestamp field.
	diagnosiseventDescTimestamp := diagnosiseventMixinFields0[1].Descriptor()
	// diagnosisevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	diagnosisevent.DefaultTimestamp = diagnosiseventDescTimestamp.Default.(func() time.Time)
	// diagnosiseventDescSessionID is the schema descriptor for session_id field.
	diagnosiseventDescSessionID := diagnosiseventFields[0].Descriptor()
	// diagnosisevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	diagnosisevent.SessionIDValidator = diagnosiseventDescSessionID.Validators[0].(func(string) error)
	// diagnosiseventDescCondition is the schema descriptor for condition field.
	diagnosiseventDescCondition := diagnosiseventFields[1].Descriptor()
	// diagnosisevent.ConditionValidator is a validator for the "condition" field. It is called by the builders before save.
	diagnosisevent.ConditionValidator = diagnosiseventDescCondition.Validators[0].(func(string) error)
	// diagnosiseventDescRecommendationCount is the schema descriptor for recommendation_count field.
	diagnosiseventDescRecommendationCount := diagnosiseventFields[5].Descriptor()
	// diagnosisevent.DefaultRecommendationCount holds the default value on creation for the recommendation_count field.
	diagnosisevent.DefaultRecommendationCount = diagnosiseventDescRecommendationCount.Default.(int)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	responseeventMixin := schema.ResponseEvent{}.Mixin()
	responseeventMixinFields0 := responseeventMixin[0].Fields()
	_ = responseeventMixinFields0
	responseeventFields := schema.ResponseEvent{}.Fields()
	_ = responseeventFields
	// responseeventDescTimestamp is the schema descriptor for timestamp field.
	responseeventDescTimestamp := responseeventMixinFields0[1].Descriptor()
	// responseevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	responseevent.DefaultTimestamp = responseeventDescTimestamp.Default.(func() time.Time)
	// responseeventDescSessionID is the schema descriptor for session_id field.
	responseeventDescSessionID := responseeventFields[0].Descriptor()
	// responseevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	responseevent.SessionIDValidator = responseeventDescSessionID.Validators[0].(func(string) error)
	// responseeventDescQuestion is the schema descriptor for question field.
	responseeventDescQuestion := responseeventFields[1].Descriptor()
	// responseevent.QuestionValidator is a validator for the "question" field. It is called by the builders before save.
	responseevent.QuestionValidator = responseeventDescQuestion.Validators[0].(func(string) error)
	// responseeventDescAnswer is the schema descriptor for answer field.
	responseeventDescAnswer := responseeventFields[2].Descriptor()
	// responseevent.AnswerValidator is a validator for the "answer" field. It is called by the builders before save.
	responseevent.AnswerValidator = responseeventDescAnswer.Validators[0].(func(string) error)
	// responseeventDescPhase is the schema descriptor for phase field.
	responseeventDescPhase := responseeventFields[4].Descriptor()
	// responseevent.PhaseValidator is a validator for the "phase" field. It is called by the builders before save.
	responseevent.PhaseValidator = responseeventDescPhase.Validators[0].(func(string) error)
	// responseeventDescOpenEnded is the schema descriptor for open_ended field.
	responseeventDescOpenEnded := responseeventFields[5].Descriptor()
	// responseevent.DefaultOpenEnded holds the default value on creation for the open_ended field.
	responseevent.DefaultOpenEnded = responseeventDescOpenEnded.Default.(bool)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescCategory is the schema descriptor for category field.
	sessioneventDescCategory := sessioneventFields[2].Descriptor()
	// sessionevent.DefaultCategory holds the default value on creation for the category field.
	sessionevent.DefaultCategory = sessioneventDescCategory.Default.(string)
	// sessioneventDescSymptom is the schema descriptor for symptom field.
	sessioneventDescSymptom := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultSymptom holds the default value on creation for the symptom field.
	sessionevent.DefaultSymptom = sessioneventDescSymptom.Default.(string)
	// sessioneventDescPhase is the schema descriptor for phase field.
	sessioneventDescPhase := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultPhase holds the default value on creation for the phase field.
	sessionevent.DefaultPhase = sessioneventDescPhase.Default.(string)
	// sessioneventDescResponseCount is the schema descriptor for response_count field.
	sessioneventDescResponseCount := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultResponseCount holds the default value on creation for the response_count field.
	sessionevent.DefaultResponseCount = sessioneventDescResponseCount.Default.(int)
}
