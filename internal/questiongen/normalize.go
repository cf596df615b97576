package questiongen

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/Wachary/BioPlus-AI-1.1/internal/llm"
)

// optionFillOutput is the raw option-fill response.
type optionFillOutput struct {
	Options []string `json:"options"`
}

// normalizeOptions enforces the option invariant: exactly cfg.OptionCount
// substantive options followed by the fixed open-ended option. Model-
// supplied "other"-like entries are stripped first. If the list comes up
// short, one follow-up completion asks for the missing count; whatever the
// follow-up does not supply is padded deterministically.
func (g *LLMGenerator) normalizeOptions(ctx context.Context, questionText string, options []string) []string {
	filtered := make([]string, 0, len(options))
	for _, opt := range options {
		if strings.Contains(strings.ToLower(opt), "other") {
			continue
		}
		if strings.TrimSpace(opt) == "" {
			continue
		}
		filtered = append(filtered, opt)
	}

	if missing := g.config.OptionCount - len(filtered); missing > 0 {
		filtered = append(filtered, g.fillOptions(ctx, questionText, filtered, missing)...)
	}
	for len(filtered) < g.config.OptionCount {
		filtered = append(filtered, g.config.PadOption)
	}
	if len(filtered) > g.config.OptionCount {
		filtered = filtered[:g.config.OptionCount]
	}

	return append(filtered, openEndedOption)
}

// fillOptions issues the single option-fill follow-up. A failed or
// malformed follow-up yields no options; the caller pads instead. The
// question batch itself is already valid at this point, so the follow-up
// is best-effort.
func (g *LLMGenerator) fillOptions(ctx context.Context, questionText string, existing []string, needed int) []string {
	ctx = llm.WithPurpose(ctx, llm.PurposeOptionFill)

	req := llm.Request{
		System: optionFillSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildOptionFillMessage(questionText, existing, needed)},
		},
		Schema:      OptionFillSchema,
		MaxTokens:   g.config.FollowUpMaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil
	}

	var raw optionFillOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil
	}

	out := make([]string, 0, needed)
	for _, opt := range raw.Options {
		if strings.TrimSpace(opt) == "" || strings.Contains(strings.ToLower(opt), "other") {
			continue
		}
		out = append(out, opt)
		if len(out) == needed {
			break
		}
	}
	return out
}
