package assessment

// OpenEndedOption is the fixed label of the free-text choice appended to
// every question's option list.
const OpenEndedOption = "Other"

// Question is a presented question with its ordered option list.
type Question struct {
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

// Response is one answered question. The answer is either exactly one
// member of QuestionData.Options or free text entered through the
// open-ended option. Responses are immutable once recorded and form an
// ordered, append-only sequence for the lifetime of a session.
type Response struct {
	Question     string   `json:"question"`
	Answer       string   `json:"answer"`
	QuestionData Question `json:"questionData"`
}

// OpenEnded reports whether the answer came through the open-ended option
// rather than one of the presented choices.
func (r Response) OpenEnded() bool {
	if r.Answer == OpenEndedOption {
		return true
	}
	for _, opt := range r.QuestionData.Options {
		if opt == r.Answer {
			return false
		}
	}
	return true
}

// Phase is the questioning stage of an assessment. The initial phase
// gathers broad coverage of every area; the detailed phase deepens it and
// resolves contradictions.
type Phase string

const (
	PhaseInitial  Phase = "initial"
	PhaseDetailed Phase = "detailed"
)

// Area is one of the five clinical assessment areas a questionnaire is
// expected to cover before diagnosis.
type Area string

const (
	AreaLocation          Area = "location"
	AreaCharacterSeverity Area = "characterSeverity"
	AreaTiming            Area = "timing"
	AreaTriggers          Area = "triggers"
	AreaRiskFactors       Area = "riskFactors"
)

// AllAreas lists the assessment areas in their canonical order.
var AllAreas = []Area{
	AreaLocation,
	AreaCharacterSeverity,
	AreaTiming,
	AreaTriggers,
	AreaRiskFactors,
}

// Areas holds the per-area coverage flags. It is derived state, recomputed
// from the full response sequence whenever needed, never stored.
type Areas struct {
	Location          bool `json:"location"`
	CharacterSeverity bool `json:"characterSeverity"`
	Timing            bool `json:"timing"`
	Triggers          bool `json:"triggers"`
	RiskFactors       bool `json:"riskFactors"`
}

// Covered reports whether the given area flag is set.
func (a Areas) Covered(area Area) bool {
	switch area {
	case AreaLocation:
		return a.Location
	case AreaCharacterSeverity:
		return a.CharacterSeverity
	case AreaTiming:
		return a.Timing
	case AreaTriggers:
		return a.Triggers
	case AreaRiskFactors:
		return a.RiskFactors
	}
	return false
}

// set marks the given area as covered.
func (a *Areas) set(area Area) {
	switch area {
	case AreaLocation:
		a.Location = true
	case AreaCharacterSeverity:
		a.CharacterSeverity = true
	case AreaTiming:
		a.Timing = true
	case AreaTriggers:
		a.Triggers = true
	case AreaRiskFactors:
		a.RiskFactors = true
	}
}

// Complete reports whether every area has been covered. This is the
// condition for the initial-to-detailed phase transition.
func (a Areas) Complete() bool {
	return a.Location && a.CharacterSeverity && a.Timing && a.Triggers && a.RiskFactors
}

// Uncovered returns the areas not yet covered, in canonical order.
func (a Areas) Uncovered() []Area {
	var out []Area
	for _, area := range AllAreas {
		if !a.Covered(area) {
			out = append(out, area)
		}
	}
	return out
}

// CoveredCount returns how many areas have been covered.
func (a Areas) CoveredCount() int {
	n := 0
	for _, area := range AllAreas {
		if a.Covered(area) {
			n++
		}
	}
	return n
}
