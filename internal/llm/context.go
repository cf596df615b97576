package llm

import "context"

// Purpose labels for the engine's LLM call sites. Every Generate call is
// tagged with one of these so logged events can be grouped per concern.
const (
	PurposeQuestionGen = "question-gen"
	PurposeOptionFill  = "option-fill"
	PurposeProfiles    = "reference-profiles"
	PurposeRecommend   = "recommendations"
)

type ctxKey int

const purposeCtxKey ctxKey = iota

// WithPurpose tags ctx with the purpose of the upcoming Generate call.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeCtxKey, purpose)
}

// PurposeFrom returns the purpose tag carried by ctx, or "unknown" for
// an untagged context.
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeCtxKey).(string); ok {
		return p
	}
	return "unknown"
}
